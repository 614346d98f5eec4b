// Package mediav1 contains hand-maintained protobuf bindings for
// peoplesmarkets.media.v1. Keep in sync with
// proto/peoplesmarkets/media/v1/media.proto.
package mediav1

import (
	proto "github.com/golang/protobuf/proto"

	orderingv1 "github.com/peoplesmarkets/media/pkg/api/orderingv1"
	paginationv1 "github.com/peoplesmarkets/media/pkg/api/paginationv1"
)

type MediaOrderByField int32

const (
	MediaOrderByField_MEDIA_ORDER_BY_FIELD_UNSPECIFIED MediaOrderByField = 0
	MediaOrderByField_MEDIA_ORDER_BY_FIELD_CREATED_AT  MediaOrderByField = 1
	MediaOrderByField_MEDIA_ORDER_BY_FIELD_UPDATED_AT  MediaOrderByField = 2
)

var MediaOrderByField_name = map[int32]string{
	0: "MEDIA_ORDER_BY_FIELD_UNSPECIFIED",
	1: "MEDIA_ORDER_BY_FIELD_CREATED_AT",
	2: "MEDIA_ORDER_BY_FIELD_UPDATED_AT",
}

var MediaOrderByField_value = map[string]int32{
	"MEDIA_ORDER_BY_FIELD_UNSPECIFIED": 0,
	"MEDIA_ORDER_BY_FIELD_CREATED_AT":  1,
	"MEDIA_ORDER_BY_FIELD_UPDATED_AT":  2,
}

func (x MediaOrderByField) String() string {
	return proto.EnumName(MediaOrderByField_name, int32(x))
}

type MediaFilterField int32

const (
	MediaFilterField_MEDIA_FILTER_FIELD_UNSPECIFIED MediaFilterField = 0
	MediaFilterField_MEDIA_FILTER_FIELD_NAME        MediaFilterField = 1
	MediaFilterField_MEDIA_FILTER_FIELD_OFFER_ID    MediaFilterField = 2
)

var MediaFilterField_name = map[int32]string{
	0: "MEDIA_FILTER_FIELD_UNSPECIFIED",
	1: "MEDIA_FILTER_FIELD_NAME",
	2: "MEDIA_FILTER_FIELD_OFFER_ID",
}

var MediaFilterField_value = map[string]int32{
	"MEDIA_FILTER_FIELD_UNSPECIFIED": 0,
	"MEDIA_FILTER_FIELD_NAME":        1,
	"MEDIA_FILTER_FIELD_OFFER_ID":    2,
}

func (x MediaFilterField) String() string {
	return proto.EnumName(MediaFilterField_name, int32(x))
}

type MediaResponse struct {
	MediaId       string   `protobuf:"bytes,1,opt,name=media_id,json=mediaId,proto3" json:"media_id,omitempty"`
	OfferIds      []string `protobuf:"bytes,2,rep,name=offer_ids,json=offerIds,proto3" json:"offer_ids,omitempty"`
	MarketBoothId string   `protobuf:"bytes,3,opt,name=market_booth_id,json=marketBoothId,proto3" json:"market_booth_id,omitempty"`
	UserId        string   `protobuf:"bytes,4,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	CreatedAt     int64    `protobuf:"varint,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     int64    `protobuf:"varint,6,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	Name          string   `protobuf:"bytes,7,opt,name=name,proto3" json:"name,omitempty"`
	Data          []byte   `protobuf:"bytes,8,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *MediaResponse) Reset()         { *m = MediaResponse{} }
func (m *MediaResponse) String() string { return proto.CompactTextString(m) }
func (*MediaResponse) ProtoMessage()    {}

func (m *MediaResponse) GetMediaId() string {
	if m != nil {
		return m.MediaId
	}
	return ""
}

func (m *MediaResponse) GetOfferIds() []string {
	if m != nil {
		return m.OfferIds
	}
	return nil
}

func (m *MediaResponse) GetMarketBoothId() string {
	if m != nil {
		return m.MarketBoothId
	}
	return ""
}

func (m *MediaResponse) GetUserId() string {
	if m != nil {
		return m.UserId
	}
	return ""
}

func (m *MediaResponse) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *MediaResponse) GetData() []byte {
	if m != nil {
		return m.Data
	}
	return nil
}

type MediaUpload struct {
	ContentType string `protobuf:"bytes,1,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	Data        []byte `protobuf:"bytes,2,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *MediaUpload) Reset()         { *m = MediaUpload{} }
func (m *MediaUpload) String() string { return proto.CompactTextString(m) }
func (*MediaUpload) ProtoMessage()    {}

func (m *MediaUpload) GetContentType() string {
	if m != nil {
		return m.ContentType
	}
	return ""
}

func (m *MediaUpload) GetData() []byte {
	if m != nil {
		return m.Data
	}
	return nil
}

type CreateMediaRequest struct {
	MarketBoothId string       `protobuf:"bytes,1,opt,name=market_booth_id,json=marketBoothId,proto3" json:"market_booth_id,omitempty"`
	Name          string       `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	File          *MediaUpload `protobuf:"bytes,3,opt,name=file,proto3" json:"file,omitempty"`
}

func (m *CreateMediaRequest) Reset()         { *m = CreateMediaRequest{} }
func (m *CreateMediaRequest) String() string { return proto.CompactTextString(m) }
func (*CreateMediaRequest) ProtoMessage()    {}

func (m *CreateMediaRequest) GetMarketBoothId() string {
	if m != nil {
		return m.MarketBoothId
	}
	return ""
}

func (m *CreateMediaRequest) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *CreateMediaRequest) GetFile() *MediaUpload {
	if m != nil {
		return m.File
	}
	return nil
}

type CreateMediaResponse struct {
	Media *MediaResponse `protobuf:"bytes,1,opt,name=media,proto3" json:"media,omitempty"`
}

func (m *CreateMediaResponse) Reset()         { *m = CreateMediaResponse{} }
func (m *CreateMediaResponse) String() string { return proto.CompactTextString(m) }
func (*CreateMediaResponse) ProtoMessage()    {}

func (m *CreateMediaResponse) GetMedia() *MediaResponse {
	if m != nil {
		return m.Media
	}
	return nil
}

type GetMediaRequest struct {
	MediaId string `protobuf:"bytes,1,opt,name=media_id,json=mediaId,proto3" json:"media_id,omitempty"`
}

func (m *GetMediaRequest) Reset()         { *m = GetMediaRequest{} }
func (m *GetMediaRequest) String() string { return proto.CompactTextString(m) }
func (*GetMediaRequest) ProtoMessage()    {}

func (m *GetMediaRequest) GetMediaId() string {
	if m != nil {
		return m.MediaId
	}
	return ""
}

type GetMediaResponse struct {
	Media *MediaResponse `protobuf:"bytes,1,opt,name=media,proto3" json:"media,omitempty"`
}

func (m *GetMediaResponse) Reset()         { *m = GetMediaResponse{} }
func (m *GetMediaResponse) String() string { return proto.CompactTextString(m) }
func (*GetMediaResponse) ProtoMessage()    {}

func (m *GetMediaResponse) GetMedia() *MediaResponse {
	if m != nil {
		return m.Media
	}
	return nil
}

type MediaOrderBy struct {
	Field     MediaOrderByField    `protobuf:"varint,1,opt,name=field,proto3,enum=peoplesmarkets.media.v1.MediaOrderByField" json:"field,omitempty"`
	Direction orderingv1.Direction `protobuf:"varint,2,opt,name=direction,proto3,enum=peoplesmarkets.ordering.v1.Direction" json:"direction,omitempty"`
}

func (m *MediaOrderBy) Reset()         { *m = MediaOrderBy{} }
func (m *MediaOrderBy) String() string { return proto.CompactTextString(m) }
func (*MediaOrderBy) ProtoMessage()    {}

func (m *MediaOrderBy) GetField() MediaOrderByField {
	if m != nil {
		return m.Field
	}
	return MediaOrderByField_MEDIA_ORDER_BY_FIELD_UNSPECIFIED
}

func (m *MediaOrderBy) GetDirection() orderingv1.Direction {
	if m != nil {
		return m.Direction
	}
	return orderingv1.Direction_DIRECTION_UNSPECIFIED
}

type MediaFilter struct {
	Field MediaFilterField `protobuf:"varint,1,opt,name=field,proto3,enum=peoplesmarkets.media.v1.MediaFilterField" json:"field,omitempty"`
	Query string           `protobuf:"bytes,2,opt,name=query,proto3" json:"query,omitempty"`
}

func (m *MediaFilter) Reset()         { *m = MediaFilter{} }
func (m *MediaFilter) String() string { return proto.CompactTextString(m) }
func (*MediaFilter) ProtoMessage()    {}

func (m *MediaFilter) GetField() MediaFilterField {
	if m != nil {
		return m.Field
	}
	return MediaFilterField_MEDIA_FILTER_FIELD_UNSPECIFIED
}

func (m *MediaFilter) GetQuery() string {
	if m != nil {
		return m.Query
	}
	return ""
}

type ListMediaRequest struct {
	MarketBoothId string                   `protobuf:"bytes,1,opt,name=market_booth_id,json=marketBoothId,proto3" json:"market_booth_id,omitempty"`
	Pagination    *paginationv1.Pagination `protobuf:"bytes,2,opt,name=pagination,proto3" json:"pagination,omitempty"`
	OrderBy       *MediaOrderBy            `protobuf:"bytes,3,opt,name=order_by,json=orderBy,proto3" json:"order_by,omitempty"`
	Filter        *MediaFilter             `protobuf:"bytes,4,opt,name=filter,proto3" json:"filter,omitempty"`
}

func (m *ListMediaRequest) Reset()         { *m = ListMediaRequest{} }
func (m *ListMediaRequest) String() string { return proto.CompactTextString(m) }
func (*ListMediaRequest) ProtoMessage()    {}

func (m *ListMediaRequest) GetMarketBoothId() string {
	if m != nil {
		return m.MarketBoothId
	}
	return ""
}

func (m *ListMediaRequest) GetPagination() *paginationv1.Pagination {
	if m != nil {
		return m.Pagination
	}
	return nil
}

func (m *ListMediaRequest) GetOrderBy() *MediaOrderBy {
	if m != nil {
		return m.OrderBy
	}
	return nil
}

func (m *ListMediaRequest) GetFilter() *MediaFilter {
	if m != nil {
		return m.Filter
	}
	return nil
}

type ListMediaResponse struct {
	Medias     []*MediaResponse         `protobuf:"bytes,1,rep,name=medias,proto3" json:"medias,omitempty"`
	Pagination *paginationv1.Pagination `protobuf:"bytes,2,opt,name=pagination,proto3" json:"pagination,omitempty"`
}

func (m *ListMediaResponse) Reset()         { *m = ListMediaResponse{} }
func (m *ListMediaResponse) String() string { return proto.CompactTextString(m) }
func (*ListMediaResponse) ProtoMessage()    {}

func (m *ListMediaResponse) GetMedias() []*MediaResponse {
	if m != nil {
		return m.Medias
	}
	return nil
}

func (m *ListMediaResponse) GetPagination() *paginationv1.Pagination {
	if m != nil {
		return m.Pagination
	}
	return nil
}

type ListAccessibleMediaRequest struct {
	Pagination *paginationv1.Pagination `protobuf:"bytes,2,opt,name=pagination,proto3" json:"pagination,omitempty"`
	OrderBy    *MediaOrderBy            `protobuf:"bytes,3,opt,name=order_by,json=orderBy,proto3" json:"order_by,omitempty"`
	Filter     *MediaFilter             `protobuf:"bytes,4,opt,name=filter,proto3" json:"filter,omitempty"`
}

func (m *ListAccessibleMediaRequest) Reset()         { *m = ListAccessibleMediaRequest{} }
func (m *ListAccessibleMediaRequest) String() string { return proto.CompactTextString(m) }
func (*ListAccessibleMediaRequest) ProtoMessage()    {}

func (m *ListAccessibleMediaRequest) GetPagination() *paginationv1.Pagination {
	if m != nil {
		return m.Pagination
	}
	return nil
}

func (m *ListAccessibleMediaRequest) GetOrderBy() *MediaOrderBy {
	if m != nil {
		return m.OrderBy
	}
	return nil
}

func (m *ListAccessibleMediaRequest) GetFilter() *MediaFilter {
	if m != nil {
		return m.Filter
	}
	return nil
}

type ListAccessibleMediaResponse struct {
	Medias     []*MediaResponse         `protobuf:"bytes,1,rep,name=medias,proto3" json:"medias,omitempty"`
	Pagination *paginationv1.Pagination `protobuf:"bytes,2,opt,name=pagination,proto3" json:"pagination,omitempty"`
}

func (m *ListAccessibleMediaResponse) Reset()         { *m = ListAccessibleMediaResponse{} }
func (m *ListAccessibleMediaResponse) String() string { return proto.CompactTextString(m) }
func (*ListAccessibleMediaResponse) ProtoMessage()    {}

func (m *ListAccessibleMediaResponse) GetMedias() []*MediaResponse {
	if m != nil {
		return m.Medias
	}
	return nil
}

func (m *ListAccessibleMediaResponse) GetPagination() *paginationv1.Pagination {
	if m != nil {
		return m.Pagination
	}
	return nil
}

type UpdateMediaRequest struct {
	MediaId string       `protobuf:"bytes,1,opt,name=media_id,json=mediaId,proto3" json:"media_id,omitempty"`
	Name    string       `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	File    *MediaUpload `protobuf:"bytes,3,opt,name=file,proto3" json:"file,omitempty"`
}

func (m *UpdateMediaRequest) Reset()         { *m = UpdateMediaRequest{} }
func (m *UpdateMediaRequest) String() string { return proto.CompactTextString(m) }
func (*UpdateMediaRequest) ProtoMessage()    {}

func (m *UpdateMediaRequest) GetMediaId() string {
	if m != nil {
		return m.MediaId
	}
	return ""
}

func (m *UpdateMediaRequest) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *UpdateMediaRequest) GetFile() *MediaUpload {
	if m != nil {
		return m.File
	}
	return nil
}

type UpdateMediaResponse struct {
	Media *MediaResponse `protobuf:"bytes,1,opt,name=media,proto3" json:"media,omitempty"`
}

func (m *UpdateMediaResponse) Reset()         { *m = UpdateMediaResponse{} }
func (m *UpdateMediaResponse) String() string { return proto.CompactTextString(m) }
func (*UpdateMediaResponse) ProtoMessage()    {}

func (m *UpdateMediaResponse) GetMedia() *MediaResponse {
	if m != nil {
		return m.Media
	}
	return nil
}

type DeleteMediaRequest struct {
	MediaId string `protobuf:"bytes,1,opt,name=media_id,json=mediaId,proto3" json:"media_id,omitempty"`
}

func (m *DeleteMediaRequest) Reset()         { *m = DeleteMediaRequest{} }
func (m *DeleteMediaRequest) String() string { return proto.CompactTextString(m) }
func (*DeleteMediaRequest) ProtoMessage()    {}

func (m *DeleteMediaRequest) GetMediaId() string {
	if m != nil {
		return m.MediaId
	}
	return ""
}

type DeleteMediaResponse struct{}

func (m *DeleteMediaResponse) Reset()         { *m = DeleteMediaResponse{} }
func (m *DeleteMediaResponse) String() string { return proto.CompactTextString(m) }
func (*DeleteMediaResponse) ProtoMessage()    {}

type InitiateMultipartUploadRequest struct {
	MediaId     string `protobuf:"bytes,1,opt,name=media_id,json=mediaId,proto3" json:"media_id,omitempty"`
	ContentType string `protobuf:"bytes,2,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
}

func (m *InitiateMultipartUploadRequest) Reset()         { *m = InitiateMultipartUploadRequest{} }
func (m *InitiateMultipartUploadRequest) String() string { return proto.CompactTextString(m) }
func (*InitiateMultipartUploadRequest) ProtoMessage()    {}

func (m *InitiateMultipartUploadRequest) GetMediaId() string {
	if m != nil {
		return m.MediaId
	}
	return ""
}

func (m *InitiateMultipartUploadRequest) GetContentType() string {
	if m != nil {
		return m.ContentType
	}
	return ""
}

type InitiateMultipartUploadResponse struct {
	Key      string `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	UploadId string `protobuf:"bytes,2,opt,name=upload_id,json=uploadId,proto3" json:"upload_id,omitempty"`
}

func (m *InitiateMultipartUploadResponse) Reset()         { *m = InitiateMultipartUploadResponse{} }
func (m *InitiateMultipartUploadResponse) String() string { return proto.CompactTextString(m) }
func (*InitiateMultipartUploadResponse) ProtoMessage()    {}

func (m *InitiateMultipartUploadResponse) GetKey() string {
	if m != nil {
		return m.Key
	}
	return ""
}

func (m *InitiateMultipartUploadResponse) GetUploadId() string {
	if m != nil {
		return m.UploadId
	}
	return ""
}

type PutMultipartChunkRequest struct {
	MediaId    string `protobuf:"bytes,1,opt,name=media_id,json=mediaId,proto3" json:"media_id,omitempty"`
	UploadId   string `protobuf:"bytes,2,opt,name=upload_id,json=uploadId,proto3" json:"upload_id,omitempty"`
	PartNumber uint32 `protobuf:"varint,3,opt,name=part_number,json=partNumber,proto3" json:"part_number,omitempty"`
	Chunk      []byte `protobuf:"bytes,4,opt,name=chunk,proto3" json:"chunk,omitempty"`
}

func (m *PutMultipartChunkRequest) Reset()         { *m = PutMultipartChunkRequest{} }
func (m *PutMultipartChunkRequest) String() string { return proto.CompactTextString(m) }
func (*PutMultipartChunkRequest) ProtoMessage()    {}

func (m *PutMultipartChunkRequest) GetMediaId() string {
	if m != nil {
		return m.MediaId
	}
	return ""
}

func (m *PutMultipartChunkRequest) GetUploadId() string {
	if m != nil {
		return m.UploadId
	}
	return ""
}

func (m *PutMultipartChunkRequest) GetPartNumber() uint32 {
	if m != nil {
		return m.PartNumber
	}
	return 0
}

func (m *PutMultipartChunkRequest) GetChunk() []byte {
	if m != nil {
		return m.Chunk
	}
	return nil
}

type Part struct {
	PartNumber uint32 `protobuf:"varint,1,opt,name=part_number,json=partNumber,proto3" json:"part_number,omitempty"`
	Etag       string `protobuf:"bytes,2,opt,name=etag,proto3" json:"etag,omitempty"`
}

func (m *Part) Reset()         { *m = Part{} }
func (m *Part) String() string { return proto.CompactTextString(m) }
func (*Part) ProtoMessage()    {}

func (m *Part) GetPartNumber() uint32 {
	if m != nil {
		return m.PartNumber
	}
	return 0
}

func (m *Part) GetEtag() string {
	if m != nil {
		return m.Etag
	}
	return ""
}

type PutMultipartChunkResponse struct {
	Part *Part `protobuf:"bytes,1,opt,name=part,proto3" json:"part,omitempty"`
}

func (m *PutMultipartChunkResponse) Reset()         { *m = PutMultipartChunkResponse{} }
func (m *PutMultipartChunkResponse) String() string { return proto.CompactTextString(m) }
func (*PutMultipartChunkResponse) ProtoMessage()    {}

func (m *PutMultipartChunkResponse) GetPart() *Part {
	if m != nil {
		return m.Part
	}
	return nil
}

type CompleteMultipartUploadRequest struct {
	MediaId  string  `protobuf:"bytes,1,opt,name=media_id,json=mediaId,proto3" json:"media_id,omitempty"`
	UploadId string  `protobuf:"bytes,2,opt,name=upload_id,json=uploadId,proto3" json:"upload_id,omitempty"`
	Parts    []*Part `protobuf:"bytes,3,rep,name=parts,proto3" json:"parts,omitempty"`
}

func (m *CompleteMultipartUploadRequest) Reset()         { *m = CompleteMultipartUploadRequest{} }
func (m *CompleteMultipartUploadRequest) String() string { return proto.CompactTextString(m) }
func (*CompleteMultipartUploadRequest) ProtoMessage()    {}

func (m *CompleteMultipartUploadRequest) GetMediaId() string {
	if m != nil {
		return m.MediaId
	}
	return ""
}

func (m *CompleteMultipartUploadRequest) GetUploadId() string {
	if m != nil {
		return m.UploadId
	}
	return ""
}

func (m *CompleteMultipartUploadRequest) GetParts() []*Part {
	if m != nil {
		return m.Parts
	}
	return nil
}

type CompleteMultipartUploadResponse struct{}

func (m *CompleteMultipartUploadResponse) Reset()         { *m = CompleteMultipartUploadResponse{} }
func (m *CompleteMultipartUploadResponse) String() string { return proto.CompactTextString(m) }
func (*CompleteMultipartUploadResponse) ProtoMessage()    {}

type AddMediaToOfferRequest struct {
	MediaId string `protobuf:"bytes,1,opt,name=media_id,json=mediaId,proto3" json:"media_id,omitempty"`
	OfferId string `protobuf:"bytes,2,opt,name=offer_id,json=offerId,proto3" json:"offer_id,omitempty"`
}

func (m *AddMediaToOfferRequest) Reset()         { *m = AddMediaToOfferRequest{} }
func (m *AddMediaToOfferRequest) String() string { return proto.CompactTextString(m) }
func (*AddMediaToOfferRequest) ProtoMessage()    {}

func (m *AddMediaToOfferRequest) GetMediaId() string {
	if m != nil {
		return m.MediaId
	}
	return ""
}

func (m *AddMediaToOfferRequest) GetOfferId() string {
	if m != nil {
		return m.OfferId
	}
	return ""
}

type AddMediaToOfferResponse struct{}

func (m *AddMediaToOfferResponse) Reset()         { *m = AddMediaToOfferResponse{} }
func (m *AddMediaToOfferResponse) String() string { return proto.CompactTextString(m) }
func (*AddMediaToOfferResponse) ProtoMessage()    {}

type RemoveMediaFromOfferRequest struct {
	MediaId string `protobuf:"bytes,1,opt,name=media_id,json=mediaId,proto3" json:"media_id,omitempty"`
	OfferId string `protobuf:"bytes,2,opt,name=offer_id,json=offerId,proto3" json:"offer_id,omitempty"`
}

func (m *RemoveMediaFromOfferRequest) Reset()         { *m = RemoveMediaFromOfferRequest{} }
func (m *RemoveMediaFromOfferRequest) String() string { return proto.CompactTextString(m) }
func (*RemoveMediaFromOfferRequest) ProtoMessage()    {}

func (m *RemoveMediaFromOfferRequest) GetMediaId() string {
	if m != nil {
		return m.MediaId
	}
	return ""
}

func (m *RemoveMediaFromOfferRequest) GetOfferId() string {
	if m != nil {
		return m.OfferId
	}
	return ""
}

type RemoveMediaFromOfferResponse struct{}

func (m *RemoveMediaFromOfferResponse) Reset()         { *m = RemoveMediaFromOfferResponse{} }
func (m *RemoveMediaFromOfferResponse) String() string { return proto.CompactTextString(m) }
func (*RemoveMediaFromOfferResponse) ProtoMessage()    {}

type PutMediaSubscriptionRequest struct {
	MediaSubscriptionId string `protobuf:"bytes,1,opt,name=media_subscription_id,json=mediaSubscriptionId,proto3" json:"media_subscription_id,omitempty"`
	BuyerUserId         string `protobuf:"bytes,2,opt,name=buyer_user_id,json=buyerUserId,proto3" json:"buyer_user_id,omitempty"`
	OfferId             string `protobuf:"bytes,3,opt,name=offer_id,json=offerId,proto3" json:"offer_id,omitempty"`
	CurrentPeriodStart  uint64 `protobuf:"varint,4,opt,name=current_period_start,json=currentPeriodStart,proto3" json:"current_period_start,omitempty"`
	CurrentPeriodEnd    uint64 `protobuf:"varint,5,opt,name=current_period_end,json=currentPeriodEnd,proto3" json:"current_period_end,omitempty"`
	SubscriptionStatus  string `protobuf:"bytes,6,opt,name=subscription_status,json=subscriptionStatus,proto3" json:"subscription_status,omitempty"`
	PayedAt             uint64 `protobuf:"varint,7,opt,name=payed_at,json=payedAt,proto3" json:"payed_at,omitempty"`
	PayedUntil          uint64 `protobuf:"varint,8,opt,name=payed_until,json=payedUntil,proto3" json:"payed_until,omitempty"`
}

func (m *PutMediaSubscriptionRequest) Reset()         { *m = PutMediaSubscriptionRequest{} }
func (m *PutMediaSubscriptionRequest) String() string { return proto.CompactTextString(m) }
func (*PutMediaSubscriptionRequest) ProtoMessage()    {}

func (m *PutMediaSubscriptionRequest) GetMediaSubscriptionId() string {
	if m != nil {
		return m.MediaSubscriptionId
	}
	return ""
}

func (m *PutMediaSubscriptionRequest) GetBuyerUserId() string {
	if m != nil {
		return m.BuyerUserId
	}
	return ""
}

func (m *PutMediaSubscriptionRequest) GetOfferId() string {
	if m != nil {
		return m.OfferId
	}
	return ""
}

func (m *PutMediaSubscriptionRequest) GetSubscriptionStatus() string {
	if m != nil {
		return m.SubscriptionStatus
	}
	return ""
}

type PutMediaSubscriptionResponse struct{}

func (m *PutMediaSubscriptionResponse) Reset()         { *m = PutMediaSubscriptionResponse{} }
func (m *PutMediaSubscriptionResponse) String() string { return proto.CompactTextString(m) }
func (*PutMediaSubscriptionResponse) ProtoMessage()    {}

func init() {
	proto.RegisterEnum("peoplesmarkets.media.v1.MediaOrderByField", MediaOrderByField_name, MediaOrderByField_value)
	proto.RegisterEnum("peoplesmarkets.media.v1.MediaFilterField", MediaFilterField_name, MediaFilterField_value)
	proto.RegisterType((*MediaResponse)(nil), "peoplesmarkets.media.v1.MediaResponse")
	proto.RegisterType((*MediaUpload)(nil), "peoplesmarkets.media.v1.MediaUpload")
	proto.RegisterType((*CreateMediaRequest)(nil), "peoplesmarkets.media.v1.CreateMediaRequest")
	proto.RegisterType((*CreateMediaResponse)(nil), "peoplesmarkets.media.v1.CreateMediaResponse")
	proto.RegisterType((*GetMediaRequest)(nil), "peoplesmarkets.media.v1.GetMediaRequest")
	proto.RegisterType((*GetMediaResponse)(nil), "peoplesmarkets.media.v1.GetMediaResponse")
	proto.RegisterType((*MediaOrderBy)(nil), "peoplesmarkets.media.v1.MediaOrderBy")
	proto.RegisterType((*MediaFilter)(nil), "peoplesmarkets.media.v1.MediaFilter")
	proto.RegisterType((*ListMediaRequest)(nil), "peoplesmarkets.media.v1.ListMediaRequest")
	proto.RegisterType((*ListMediaResponse)(nil), "peoplesmarkets.media.v1.ListMediaResponse")
	proto.RegisterType((*ListAccessibleMediaRequest)(nil), "peoplesmarkets.media.v1.ListAccessibleMediaRequest")
	proto.RegisterType((*ListAccessibleMediaResponse)(nil), "peoplesmarkets.media.v1.ListAccessibleMediaResponse")
	proto.RegisterType((*UpdateMediaRequest)(nil), "peoplesmarkets.media.v1.UpdateMediaRequest")
	proto.RegisterType((*UpdateMediaResponse)(nil), "peoplesmarkets.media.v1.UpdateMediaResponse")
	proto.RegisterType((*DeleteMediaRequest)(nil), "peoplesmarkets.media.v1.DeleteMediaRequest")
	proto.RegisterType((*DeleteMediaResponse)(nil), "peoplesmarkets.media.v1.DeleteMediaResponse")
	proto.RegisterType((*InitiateMultipartUploadRequest)(nil), "peoplesmarkets.media.v1.InitiateMultipartUploadRequest")
	proto.RegisterType((*InitiateMultipartUploadResponse)(nil), "peoplesmarkets.media.v1.InitiateMultipartUploadResponse")
	proto.RegisterType((*PutMultipartChunkRequest)(nil), "peoplesmarkets.media.v1.PutMultipartChunkRequest")
	proto.RegisterType((*Part)(nil), "peoplesmarkets.media.v1.Part")
	proto.RegisterType((*PutMultipartChunkResponse)(nil), "peoplesmarkets.media.v1.PutMultipartChunkResponse")
	proto.RegisterType((*CompleteMultipartUploadRequest)(nil), "peoplesmarkets.media.v1.CompleteMultipartUploadRequest")
	proto.RegisterType((*CompleteMultipartUploadResponse)(nil), "peoplesmarkets.media.v1.CompleteMultipartUploadResponse")
	proto.RegisterType((*AddMediaToOfferRequest)(nil), "peoplesmarkets.media.v1.AddMediaToOfferRequest")
	proto.RegisterType((*AddMediaToOfferResponse)(nil), "peoplesmarkets.media.v1.AddMediaToOfferResponse")
	proto.RegisterType((*RemoveMediaFromOfferRequest)(nil), "peoplesmarkets.media.v1.RemoveMediaFromOfferRequest")
	proto.RegisterType((*RemoveMediaFromOfferResponse)(nil), "peoplesmarkets.media.v1.RemoveMediaFromOfferResponse")
	proto.RegisterType((*PutMediaSubscriptionRequest)(nil), "peoplesmarkets.media.v1.PutMediaSubscriptionRequest")
	proto.RegisterType((*PutMediaSubscriptionResponse)(nil), "peoplesmarkets.media.v1.PutMediaSubscriptionResponse")
}
