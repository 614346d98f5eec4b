// Package paginationv1 contains hand-maintained protobuf bindings for
// peoplesmarkets.pagination.v1. Keep in sync with
// proto/peoplesmarkets/pagination/v1/pagination.proto.
package paginationv1

import (
	proto "github.com/golang/protobuf/proto"
)

type Pagination struct {
	Page uint32 `protobuf:"varint,1,opt,name=page,proto3" json:"page,omitempty"`
	Size uint32 `protobuf:"varint,2,opt,name=size,proto3" json:"size,omitempty"`
}

func (m *Pagination) Reset()         { *m = Pagination{} }
func (m *Pagination) String() string { return proto.CompactTextString(m) }
func (*Pagination) ProtoMessage()    {}

func (m *Pagination) GetPage() uint32 {
	if m != nil {
		return m.Page
	}
	return 0
}

func (m *Pagination) GetSize() uint32 {
	if m != nil {
		return m.Size
	}
	return 0
}

func init() {
	proto.RegisterType((*Pagination)(nil), "peoplesmarkets.pagination.v1.Pagination")
}
