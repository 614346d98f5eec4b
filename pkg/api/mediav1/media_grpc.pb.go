package mediav1

import (
	context "context"

	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// MediaServiceClient is the client API for the
// peoplesmarkets.media.v1.MediaService service.
type MediaServiceClient interface {
	CreateMedia(ctx context.Context, in *CreateMediaRequest, opts ...grpc.CallOption) (*CreateMediaResponse, error)
	GetMedia(ctx context.Context, in *GetMediaRequest, opts ...grpc.CallOption) (*GetMediaResponse, error)
	ListMedia(ctx context.Context, in *ListMediaRequest, opts ...grpc.CallOption) (*ListMediaResponse, error)
	ListAccessibleMedia(ctx context.Context, in *ListAccessibleMediaRequest, opts ...grpc.CallOption) (*ListAccessibleMediaResponse, error)
	UpdateMedia(ctx context.Context, in *UpdateMediaRequest, opts ...grpc.CallOption) (*UpdateMediaResponse, error)
	DeleteMedia(ctx context.Context, in *DeleteMediaRequest, opts ...grpc.CallOption) (*DeleteMediaResponse, error)
	InitiateMultipartUpload(ctx context.Context, in *InitiateMultipartUploadRequest, opts ...grpc.CallOption) (*InitiateMultipartUploadResponse, error)
	PutMultipartChunk(ctx context.Context, in *PutMultipartChunkRequest, opts ...grpc.CallOption) (*PutMultipartChunkResponse, error)
	CompleteMultipartUpload(ctx context.Context, in *CompleteMultipartUploadRequest, opts ...grpc.CallOption) (*CompleteMultipartUploadResponse, error)
	AddMediaToOffer(ctx context.Context, in *AddMediaToOfferRequest, opts ...grpc.CallOption) (*AddMediaToOfferResponse, error)
	RemoveMediaFromOffer(ctx context.Context, in *RemoveMediaFromOfferRequest, opts ...grpc.CallOption) (*RemoveMediaFromOfferResponse, error)
}

type mediaServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMediaServiceClient(cc grpc.ClientConnInterface) MediaServiceClient {
	return &mediaServiceClient{cc}
}

func (c *mediaServiceClient) CreateMedia(ctx context.Context, in *CreateMediaRequest, opts ...grpc.CallOption) (*CreateMediaResponse, error) {
	out := new(CreateMediaResponse)
	err := c.cc.Invoke(ctx, "/peoplesmarkets.media.v1.MediaService/CreateMedia", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mediaServiceClient) GetMedia(ctx context.Context, in *GetMediaRequest, opts ...grpc.CallOption) (*GetMediaResponse, error) {
	out := new(GetMediaResponse)
	err := c.cc.Invoke(ctx, "/peoplesmarkets.media.v1.MediaService/GetMedia", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mediaServiceClient) ListMedia(ctx context.Context, in *ListMediaRequest, opts ...grpc.CallOption) (*ListMediaResponse, error) {
	out := new(ListMediaResponse)
	err := c.cc.Invoke(ctx, "/peoplesmarkets.media.v1.MediaService/ListMedia", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mediaServiceClient) ListAccessibleMedia(ctx context.Context, in *ListAccessibleMediaRequest, opts ...grpc.CallOption) (*ListAccessibleMediaResponse, error) {
	out := new(ListAccessibleMediaResponse)
	err := c.cc.Invoke(ctx, "/peoplesmarkets.media.v1.MediaService/ListAccessibleMedia", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mediaServiceClient) UpdateMedia(ctx context.Context, in *UpdateMediaRequest, opts ...grpc.CallOption) (*UpdateMediaResponse, error) {
	out := new(UpdateMediaResponse)
	err := c.cc.Invoke(ctx, "/peoplesmarkets.media.v1.MediaService/UpdateMedia", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mediaServiceClient) DeleteMedia(ctx context.Context, in *DeleteMediaRequest, opts ...grpc.CallOption) (*DeleteMediaResponse, error) {
	out := new(DeleteMediaResponse)
	err := c.cc.Invoke(ctx, "/peoplesmarkets.media.v1.MediaService/DeleteMedia", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mediaServiceClient) InitiateMultipartUpload(ctx context.Context, in *InitiateMultipartUploadRequest, opts ...grpc.CallOption) (*InitiateMultipartUploadResponse, error) {
	out := new(InitiateMultipartUploadResponse)
	err := c.cc.Invoke(ctx, "/peoplesmarkets.media.v1.MediaService/InitiateMultipartUpload", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mediaServiceClient) PutMultipartChunk(ctx context.Context, in *PutMultipartChunkRequest, opts ...grpc.CallOption) (*PutMultipartChunkResponse, error) {
	out := new(PutMultipartChunkResponse)
	err := c.cc.Invoke(ctx, "/peoplesmarkets.media.v1.MediaService/PutMultipartChunk", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mediaServiceClient) CompleteMultipartUpload(ctx context.Context, in *CompleteMultipartUploadRequest, opts ...grpc.CallOption) (*CompleteMultipartUploadResponse, error) {
	out := new(CompleteMultipartUploadResponse)
	err := c.cc.Invoke(ctx, "/peoplesmarkets.media.v1.MediaService/CompleteMultipartUpload", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mediaServiceClient) AddMediaToOffer(ctx context.Context, in *AddMediaToOfferRequest, opts ...grpc.CallOption) (*AddMediaToOfferResponse, error) {
	out := new(AddMediaToOfferResponse)
	err := c.cc.Invoke(ctx, "/peoplesmarkets.media.v1.MediaService/AddMediaToOffer", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mediaServiceClient) RemoveMediaFromOffer(ctx context.Context, in *RemoveMediaFromOfferRequest, opts ...grpc.CallOption) (*RemoveMediaFromOfferResponse, error) {
	out := new(RemoveMediaFromOfferResponse)
	err := c.cc.Invoke(ctx, "/peoplesmarkets.media.v1.MediaService/RemoveMediaFromOffer", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MediaServiceServer is the server API for the
// peoplesmarkets.media.v1.MediaService service.
type MediaServiceServer interface {
	CreateMedia(context.Context, *CreateMediaRequest) (*CreateMediaResponse, error)
	GetMedia(context.Context, *GetMediaRequest) (*GetMediaResponse, error)
	ListMedia(context.Context, *ListMediaRequest) (*ListMediaResponse, error)
	ListAccessibleMedia(context.Context, *ListAccessibleMediaRequest) (*ListAccessibleMediaResponse, error)
	UpdateMedia(context.Context, *UpdateMediaRequest) (*UpdateMediaResponse, error)
	DeleteMedia(context.Context, *DeleteMediaRequest) (*DeleteMediaResponse, error)
	InitiateMultipartUpload(context.Context, *InitiateMultipartUploadRequest) (*InitiateMultipartUploadResponse, error)
	PutMultipartChunk(context.Context, *PutMultipartChunkRequest) (*PutMultipartChunkResponse, error)
	CompleteMultipartUpload(context.Context, *CompleteMultipartUploadRequest) (*CompleteMultipartUploadResponse, error)
	AddMediaToOffer(context.Context, *AddMediaToOfferRequest) (*AddMediaToOfferResponse, error)
	RemoveMediaFromOffer(context.Context, *RemoveMediaFromOfferRequest) (*RemoveMediaFromOfferResponse, error)
}

// UnimplementedMediaServiceServer can be embedded to have forward compatible
// implementations.
type UnimplementedMediaServiceServer struct{}

func (*UnimplementedMediaServiceServer) CreateMedia(context.Context, *CreateMediaRequest) (*CreateMediaResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateMedia not implemented")
}

func (*UnimplementedMediaServiceServer) GetMedia(context.Context, *GetMediaRequest) (*GetMediaResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetMedia not implemented")
}

func (*UnimplementedMediaServiceServer) ListMedia(context.Context, *ListMediaRequest) (*ListMediaResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListMedia not implemented")
}

func (*UnimplementedMediaServiceServer) ListAccessibleMedia(context.Context, *ListAccessibleMediaRequest) (*ListAccessibleMediaResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListAccessibleMedia not implemented")
}

func (*UnimplementedMediaServiceServer) UpdateMedia(context.Context, *UpdateMediaRequest) (*UpdateMediaResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateMedia not implemented")
}

func (*UnimplementedMediaServiceServer) DeleteMedia(context.Context, *DeleteMediaRequest) (*DeleteMediaResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteMedia not implemented")
}

func (*UnimplementedMediaServiceServer) InitiateMultipartUpload(context.Context, *InitiateMultipartUploadRequest) (*InitiateMultipartUploadResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method InitiateMultipartUpload not implemented")
}

func (*UnimplementedMediaServiceServer) PutMultipartChunk(context.Context, *PutMultipartChunkRequest) (*PutMultipartChunkResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PutMultipartChunk not implemented")
}

func (*UnimplementedMediaServiceServer) CompleteMultipartUpload(context.Context, *CompleteMultipartUploadRequest) (*CompleteMultipartUploadResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CompleteMultipartUpload not implemented")
}

func (*UnimplementedMediaServiceServer) AddMediaToOffer(context.Context, *AddMediaToOfferRequest) (*AddMediaToOfferResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AddMediaToOffer not implemented")
}

func (*UnimplementedMediaServiceServer) RemoveMediaFromOffer(context.Context, *RemoveMediaFromOfferRequest) (*RemoveMediaFromOfferResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RemoveMediaFromOffer not implemented")
}

func RegisterMediaServiceServer(s grpc.ServiceRegistrar, srv MediaServiceServer) {
	s.RegisterService(&MediaService_ServiceDesc, srv)
}

func _MediaService_CreateMedia_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateMediaRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MediaServiceServer).CreateMedia(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/peoplesmarkets.media.v1.MediaService/CreateMedia",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MediaServiceServer).CreateMedia(ctx, req.(*CreateMediaRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MediaService_GetMedia_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetMediaRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MediaServiceServer).GetMedia(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/peoplesmarkets.media.v1.MediaService/GetMedia",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MediaServiceServer).GetMedia(ctx, req.(*GetMediaRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MediaService_ListMedia_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListMediaRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MediaServiceServer).ListMedia(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/peoplesmarkets.media.v1.MediaService/ListMedia",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MediaServiceServer).ListMedia(ctx, req.(*ListMediaRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MediaService_ListAccessibleMedia_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListAccessibleMediaRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MediaServiceServer).ListAccessibleMedia(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/peoplesmarkets.media.v1.MediaService/ListAccessibleMedia",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MediaServiceServer).ListAccessibleMedia(ctx, req.(*ListAccessibleMediaRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MediaService_UpdateMedia_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateMediaRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MediaServiceServer).UpdateMedia(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/peoplesmarkets.media.v1.MediaService/UpdateMedia",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MediaServiceServer).UpdateMedia(ctx, req.(*UpdateMediaRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MediaService_DeleteMedia_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteMediaRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MediaServiceServer).DeleteMedia(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/peoplesmarkets.media.v1.MediaService/DeleteMedia",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MediaServiceServer).DeleteMedia(ctx, req.(*DeleteMediaRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MediaService_InitiateMultipartUpload_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(InitiateMultipartUploadRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MediaServiceServer).InitiateMultipartUpload(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/peoplesmarkets.media.v1.MediaService/InitiateMultipartUpload",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MediaServiceServer).InitiateMultipartUpload(ctx, req.(*InitiateMultipartUploadRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MediaService_PutMultipartChunk_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PutMultipartChunkRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MediaServiceServer).PutMultipartChunk(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/peoplesmarkets.media.v1.MediaService/PutMultipartChunk",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MediaServiceServer).PutMultipartChunk(ctx, req.(*PutMultipartChunkRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MediaService_CompleteMultipartUpload_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CompleteMultipartUploadRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MediaServiceServer).CompleteMultipartUpload(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/peoplesmarkets.media.v1.MediaService/CompleteMultipartUpload",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MediaServiceServer).CompleteMultipartUpload(ctx, req.(*CompleteMultipartUploadRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MediaService_AddMediaToOffer_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AddMediaToOfferRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MediaServiceServer).AddMediaToOffer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/peoplesmarkets.media.v1.MediaService/AddMediaToOffer",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MediaServiceServer).AddMediaToOffer(ctx, req.(*AddMediaToOfferRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MediaService_RemoveMediaFromOffer_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RemoveMediaFromOfferRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MediaServiceServer).RemoveMediaFromOffer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/peoplesmarkets.media.v1.MediaService/RemoveMediaFromOffer",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MediaServiceServer).RemoveMediaFromOffer(ctx, req.(*RemoveMediaFromOfferRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// MediaService_ServiceDesc is the grpc.ServiceDesc for the MediaService
// service.
var MediaService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "peoplesmarkets.media.v1.MediaService",
	HandlerType: (*MediaServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateMedia",
			Handler:    _MediaService_CreateMedia_Handler,
		},
		{
			MethodName: "GetMedia",
			Handler:    _MediaService_GetMedia_Handler,
		},
		{
			MethodName: "ListMedia",
			Handler:    _MediaService_ListMedia_Handler,
		},
		{
			MethodName: "ListAccessibleMedia",
			Handler:    _MediaService_ListAccessibleMedia_Handler,
		},
		{
			MethodName: "UpdateMedia",
			Handler:    _MediaService_UpdateMedia_Handler,
		},
		{
			MethodName: "DeleteMedia",
			Handler:    _MediaService_DeleteMedia_Handler,
		},
		{
			MethodName: "InitiateMultipartUpload",
			Handler:    _MediaService_InitiateMultipartUpload_Handler,
		},
		{
			MethodName: "PutMultipartChunk",
			Handler:    _MediaService_PutMultipartChunk_Handler,
		},
		{
			MethodName: "CompleteMultipartUpload",
			Handler:    _MediaService_CompleteMultipartUpload_Handler,
		},
		{
			MethodName: "AddMediaToOffer",
			Handler:    _MediaService_AddMediaToOffer_Handler,
		},
		{
			MethodName: "RemoveMediaFromOffer",
			Handler:    _MediaService_RemoveMediaFromOffer_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "peoplesmarkets/media/v1/media.proto",
}

// MediaSubscriptionServiceClient is the client API for the
// peoplesmarkets.media.v1.MediaSubscriptionService service.
type MediaSubscriptionServiceClient interface {
	PutMediaSubscription(ctx context.Context, in *PutMediaSubscriptionRequest, opts ...grpc.CallOption) (*PutMediaSubscriptionResponse, error)
}

type mediaSubscriptionServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMediaSubscriptionServiceClient(cc grpc.ClientConnInterface) MediaSubscriptionServiceClient {
	return &mediaSubscriptionServiceClient{cc}
}

func (c *mediaSubscriptionServiceClient) PutMediaSubscription(ctx context.Context, in *PutMediaSubscriptionRequest, opts ...grpc.CallOption) (*PutMediaSubscriptionResponse, error) {
	out := new(PutMediaSubscriptionResponse)
	err := c.cc.Invoke(ctx, "/peoplesmarkets.media.v1.MediaSubscriptionService/PutMediaSubscription", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MediaSubscriptionServiceServer is the server API for the
// peoplesmarkets.media.v1.MediaSubscriptionService service.
type MediaSubscriptionServiceServer interface {
	PutMediaSubscription(context.Context, *PutMediaSubscriptionRequest) (*PutMediaSubscriptionResponse, error)
}

// UnimplementedMediaSubscriptionServiceServer can be embedded to have forward
// compatible implementations.
type UnimplementedMediaSubscriptionServiceServer struct{}

func (*UnimplementedMediaSubscriptionServiceServer) PutMediaSubscription(context.Context, *PutMediaSubscriptionRequest) (*PutMediaSubscriptionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PutMediaSubscription not implemented")
}

func RegisterMediaSubscriptionServiceServer(s grpc.ServiceRegistrar, srv MediaSubscriptionServiceServer) {
	s.RegisterService(&MediaSubscriptionService_ServiceDesc, srv)
}

func _MediaSubscriptionService_PutMediaSubscription_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PutMediaSubscriptionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MediaSubscriptionServiceServer).PutMediaSubscription(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/peoplesmarkets.media.v1.MediaSubscriptionService/PutMediaSubscription",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MediaSubscriptionServiceServer).PutMediaSubscription(ctx, req.(*PutMediaSubscriptionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// MediaSubscriptionService_ServiceDesc is the grpc.ServiceDesc for the
// MediaSubscriptionService service.
var MediaSubscriptionService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "peoplesmarkets.media.v1.MediaSubscriptionService",
	HandlerType: (*MediaSubscriptionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "PutMediaSubscription",
			Handler:    _MediaSubscriptionService_PutMediaSubscription_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "peoplesmarkets/media/v1/media.proto",
}
