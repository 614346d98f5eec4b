// Package commercev1 contains hand-maintained protobuf bindings for the
// subset of peoplesmarkets.commerce.v1 used by the media service. Keep in
// sync with proto/peoplesmarkets/commerce/v1/offer.proto.
package commercev1

import (
	proto "github.com/golang/protobuf/proto"
)

type OfferAccessPolicy int32

const (
	OfferAccessPolicy_OFFER_ACCESS_POLICY_UNSPECIFIED  OfferAccessPolicy = 0
	OfferAccessPolicy_OFFER_ACCESS_POLICY_PUBLIC       OfferAccessPolicy = 1
	OfferAccessPolicy_OFFER_ACCESS_POLICY_SUBSCRIPTION OfferAccessPolicy = 2
)

var OfferAccessPolicy_name = map[int32]string{
	0: "OFFER_ACCESS_POLICY_UNSPECIFIED",
	1: "OFFER_ACCESS_POLICY_PUBLIC",
	2: "OFFER_ACCESS_POLICY_SUBSCRIPTION",
}

var OfferAccessPolicy_value = map[string]int32{
	"OFFER_ACCESS_POLICY_UNSPECIFIED":  0,
	"OFFER_ACCESS_POLICY_PUBLIC":       1,
	"OFFER_ACCESS_POLICY_SUBSCRIPTION": 2,
}

func (x OfferAccessPolicy) String() string {
	return proto.EnumName(OfferAccessPolicy_name, int32(x))
}

type OfferResponse struct {
	OfferId             string            `protobuf:"bytes,1,opt,name=offer_id,json=offerId,proto3" json:"offer_id,omitempty"`
	UserId              string            `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	AccessPolicy        OfferAccessPolicy `protobuf:"varint,3,opt,name=access_policy,json=accessPolicy,proto3,enum=peoplesmarkets.commerce.v1.OfferAccessPolicy" json:"access_policy,omitempty"`
	SubscriptionOfferId string            `protobuf:"bytes,4,opt,name=subscription_offer_id,json=subscriptionOfferId,proto3" json:"subscription_offer_id,omitempty"`
}

func (m *OfferResponse) Reset()         { *m = OfferResponse{} }
func (m *OfferResponse) String() string { return proto.CompactTextString(m) }
func (*OfferResponse) ProtoMessage()    {}

func (m *OfferResponse) GetOfferId() string {
	if m != nil {
		return m.OfferId
	}
	return ""
}

func (m *OfferResponse) GetUserId() string {
	if m != nil {
		return m.UserId
	}
	return ""
}

func (m *OfferResponse) GetAccessPolicy() OfferAccessPolicy {
	if m != nil {
		return m.AccessPolicy
	}
	return OfferAccessPolicy_OFFER_ACCESS_POLICY_UNSPECIFIED
}

func (m *OfferResponse) GetSubscriptionOfferId() string {
	if m != nil {
		return m.SubscriptionOfferId
	}
	return ""
}

type GetOfferRequest struct {
	OfferId string `protobuf:"bytes,1,opt,name=offer_id,json=offerId,proto3" json:"offer_id,omitempty"`
}

func (m *GetOfferRequest) Reset()         { *m = GetOfferRequest{} }
func (m *GetOfferRequest) String() string { return proto.CompactTextString(m) }
func (*GetOfferRequest) ProtoMessage()    {}

func (m *GetOfferRequest) GetOfferId() string {
	if m != nil {
		return m.OfferId
	}
	return ""
}

type GetOfferResponse struct {
	Offer *OfferResponse `protobuf:"bytes,1,opt,name=offer,proto3" json:"offer,omitempty"`
}

func (m *GetOfferResponse) Reset()         { *m = GetOfferResponse{} }
func (m *GetOfferResponse) String() string { return proto.CompactTextString(m) }
func (*GetOfferResponse) ProtoMessage()    {}

func (m *GetOfferResponse) GetOffer() *OfferResponse {
	if m != nil {
		return m.Offer
	}
	return nil
}

func init() {
	proto.RegisterEnum("peoplesmarkets.commerce.v1.OfferAccessPolicy", OfferAccessPolicy_name, OfferAccessPolicy_value)
	proto.RegisterType((*OfferResponse)(nil), "peoplesmarkets.commerce.v1.OfferResponse")
	proto.RegisterType((*GetOfferRequest)(nil), "peoplesmarkets.commerce.v1.GetOfferRequest")
	proto.RegisterType((*GetOfferResponse)(nil), "peoplesmarkets.commerce.v1.GetOfferResponse")
}
