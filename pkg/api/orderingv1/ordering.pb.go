// Package orderingv1 contains hand-maintained protobuf bindings for
// peoplesmarkets.ordering.v1. Keep in sync with
// proto/peoplesmarkets/ordering/v1/ordering.proto.
package orderingv1

import (
	proto "github.com/golang/protobuf/proto"
)

type Direction int32

const (
	Direction_DIRECTION_UNSPECIFIED Direction = 0
	Direction_DIRECTION_ASC         Direction = 1
	Direction_DIRECTION_DESC        Direction = 2
)

var Direction_name = map[int32]string{
	0: "DIRECTION_UNSPECIFIED",
	1: "DIRECTION_ASC",
	2: "DIRECTION_DESC",
}

var Direction_value = map[string]int32{
	"DIRECTION_UNSPECIFIED": 0,
	"DIRECTION_ASC":         1,
	"DIRECTION_DESC":        2,
}

func (x Direction) String() string {
	return proto.EnumName(Direction_name, int32(x))
}

func init() {
	proto.RegisterEnum("peoplesmarkets.ordering.v1.Direction", Direction_name, Direction_value)
}
