// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: icp/v1/icp.proto

package icpv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	TanksService_CreateTank_FullMethodName = "/icp.v1.TanksService/CreateTank"
	TanksService_ListTanks_FullMethodName  = "/icp.v1.TanksService/ListTanks"
)

// TanksServiceClient is the client API for TanksService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type TanksServiceClient interface {
	CreateTank(ctx context.Context, in *CreateTankRequest, opts ...grpc.CallOption) (*CreateTankResponse, error)
	ListTanks(ctx context.Context, in *ListTanksRequest, opts ...grpc.CallOption) (*ListTanksResponse, error)
}

type tanksServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewTanksServiceClient(cc grpc.ClientConnInterface) TanksServiceClient {
	return &tanksServiceClient{cc}
}

func (c *tanksServiceClient) CreateTank(ctx context.Context, in *CreateTankRequest, opts ...grpc.CallOption) (*CreateTankResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateTankResponse)
	err := c.cc.Invoke(ctx, TanksService_CreateTank_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *tanksServiceClient) ListTanks(ctx context.Context, in *ListTanksRequest, opts ...grpc.CallOption) (*ListTanksResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListTanksResponse)
	err := c.cc.Invoke(ctx, TanksService_ListTanks_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// TanksServiceServer is the server API for TanksService service.
// All implementations must embed UnimplementedTanksServiceServer
// for forward compatibility.
type TanksServiceServer interface {
	CreateTank(context.Context, *CreateTankRequest) (*CreateTankResponse, error)
	ListTanks(context.Context, *ListTanksRequest) (*ListTanksResponse, error)
	mustEmbedUnimplementedTanksServiceServer()
}

// UnimplementedTanksServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedTanksServiceServer struct{}

func (UnimplementedTanksServiceServer) CreateTank(context.Context, *CreateTankRequest) (*CreateTankResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateTank not implemented")
}
func (UnimplementedTanksServiceServer) ListTanks(context.Context, *ListTanksRequest) (*ListTanksResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListTanks not implemented")
}
func (UnimplementedTanksServiceServer) mustEmbedUnimplementedTanksServiceServer() {}
func (UnimplementedTanksServiceServer) testEmbeddedByValue()                      {}

// UnsafeTanksServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to TanksServiceServer will
// result in compilation errors.
type UnsafeTanksServiceServer interface {
	mustEmbedUnimplementedTanksServiceServer()
}

func RegisterTanksServiceServer(s grpc.ServiceRegistrar, srv TanksServiceServer) {
	// If the following call pancis, it indicates UnimplementedTanksServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&TanksService_ServiceDesc, srv)
}

func _TanksService_CreateTank_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateTankRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TanksServiceServer).CreateTank(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TanksService_CreateTank_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TanksServiceServer).CreateTank(ctx, req.(*CreateTankRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TanksService_ListTanks_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListTanksRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TanksServiceServer).ListTanks(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TanksService_ListTanks_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TanksServiceServer).ListTanks(ctx, req.(*ListTanksRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// TanksService_ServiceDesc is the grpc.ServiceDesc for TanksService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var TanksService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "icp.v1.TanksService",
	HandlerType: (*TanksServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateTank",
			Handler:    _TanksService_CreateTank_Handler,
		},
		{
			MethodName: "ListTanks",
			Handler:    _TanksService_ListTanks_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "icp/v1/icp.proto",
}

const (
	IngestionService_IngestFile_FullMethodName      = "/icp.v1.IngestionService/IngestFile"
	IngestionService_IngestDirectory_FullMethodName = "/icp.v1.IngestionService/IngestDirectory"
	IngestionService_ListJobs_FullMethodName        = "/icp.v1.IngestionService/ListJobs"
)

// IngestionServiceClient is the client API for IngestionService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type IngestionServiceClient interface {
	IngestFile(ctx context.Context, in *IngestFileRequest, opts ...grpc.CallOption) (*IngestResponse, error)
	IngestDirectory(ctx context.Context, in *IngestDirectoryRequest, opts ...grpc.CallOption) (*IngestDirectoryResponse, error)
	ListJobs(ctx context.Context, in *ListJobsRequest, opts ...grpc.CallOption) (*ListJobsResponse, error)
}

type ingestionServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewIngestionServiceClient(cc grpc.ClientConnInterface) IngestionServiceClient {
	return &ingestionServiceClient{cc}
}

func (c *ingestionServiceClient) IngestFile(ctx context.Context, in *IngestFileRequest, opts ...grpc.CallOption) (*IngestResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(IngestResponse)
	err := c.cc.Invoke(ctx, IngestionService_IngestFile_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ingestionServiceClient) IngestDirectory(ctx context.Context, in *IngestDirectoryRequest, opts ...grpc.CallOption) (*IngestDirectoryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(IngestDirectoryResponse)
	err := c.cc.Invoke(ctx, IngestionService_IngestDirectory_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ingestionServiceClient) ListJobs(ctx context.Context, in *ListJobsRequest, opts ...grpc.CallOption) (*ListJobsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListJobsResponse)
	err := c.cc.Invoke(ctx, IngestionService_ListJobs_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// IngestionServiceServer is the server API for IngestionService service.
// All implementations must embed UnimplementedIngestionServiceServer
// for forward compatibility.
type IngestionServiceServer interface {
	IngestFile(context.Context, *IngestFileRequest) (*IngestResponse, error)
	IngestDirectory(context.Context, *IngestDirectoryRequest) (*IngestDirectoryResponse, error)
	ListJobs(context.Context, *ListJobsRequest) (*ListJobsResponse, error)
	mustEmbedUnimplementedIngestionServiceServer()
}

// UnimplementedIngestionServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedIngestionServiceServer struct{}

func (UnimplementedIngestionServiceServer) IngestFile(context.Context, *IngestFileRequest) (*IngestResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method IngestFile not implemented")
}
func (UnimplementedIngestionServiceServer) IngestDirectory(context.Context, *IngestDirectoryRequest) (*IngestDirectoryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method IngestDirectory not implemented")
}
func (UnimplementedIngestionServiceServer) ListJobs(context.Context, *ListJobsRequest) (*ListJobsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListJobs not implemented")
}
func (UnimplementedIngestionServiceServer) mustEmbedUnimplementedIngestionServiceServer() {}
func (UnimplementedIngestionServiceServer) testEmbeddedByValue()                          {}

// UnsafeIngestionServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to IngestionServiceServer will
// result in compilation errors.
type UnsafeIngestionServiceServer interface {
	mustEmbedUnimplementedIngestionServiceServer()
}

func RegisterIngestionServiceServer(s grpc.ServiceRegistrar, srv IngestionServiceServer) {
	// If the following call pancis, it indicates UnimplementedIngestionServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&IngestionService_ServiceDesc, srv)
}

func _IngestionService_IngestFile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IngestFileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IngestionServiceServer).IngestFile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: IngestionService_IngestFile_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IngestionServiceServer).IngestFile(ctx, req.(*IngestFileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _IngestionService_IngestDirectory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IngestDirectoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IngestionServiceServer).IngestDirectory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: IngestionService_IngestDirectory_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IngestionServiceServer).IngestDirectory(ctx, req.(*IngestDirectoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _IngestionService_ListJobs_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListJobsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IngestionServiceServer).ListJobs(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: IngestionService_ListJobs_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IngestionServiceServer).ListJobs(ctx, req.(*ListJobsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// IngestionService_ServiceDesc is the grpc.ServiceDesc for IngestionService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var IngestionService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "icp.v1.IngestionService",
	HandlerType: (*IngestionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "IngestFile",
			Handler:    _IngestionService_IngestFile_Handler,
		},
		{
			MethodName: "IngestDirectory",
			Handler:    _IngestionService_IngestDirectory_Handler,
		},
		{
			MethodName: "ListJobs",
			Handler:    _IngestionService_ListJobs_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "icp/v1/icp.proto",
}

const (
	TestsService_ListTests_FullMethodName     = "/icp.v1.TestsService/ListTests"
	TestsService_GetTest_FullMethodName       = "/icp.v1.TestsService/GetTest"
	TestsService_GetLatestTest_FullMethodName = "/icp.v1.TestsService/GetLatestTest"
	TestsService_DeleteTest_FullMethodName    = "/icp.v1.TestsService/DeleteTest"
	TestsService_ExportTests_FullMethodName   = "/icp.v1.TestsService/ExportTests"
)

// TestsServiceClient is the client API for TestsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type TestsServiceClient interface {
	ListTests(ctx context.Context, in *ListTestsRequest, opts ...grpc.CallOption) (*ListTestsResponse, error)
	GetTest(ctx context.Context, in *GetTestRequest, opts ...grpc.CallOption) (*GetTestResponse, error)
	GetLatestTest(ctx context.Context, in *GetLatestTestRequest, opts ...grpc.CallOption) (*GetTestResponse, error)
	DeleteTest(ctx context.Context, in *DeleteTestRequest, opts ...grpc.CallOption) (*DeleteTestResponse, error)
	ExportTests(ctx context.Context, in *ExportTestsRequest, opts ...grpc.CallOption) (*ExportTestsResponse, error)
}

type testsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewTestsServiceClient(cc grpc.ClientConnInterface) TestsServiceClient {
	return &testsServiceClient{cc}
}

func (c *testsServiceClient) ListTests(ctx context.Context, in *ListTestsRequest, opts ...grpc.CallOption) (*ListTestsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListTestsResponse)
	err := c.cc.Invoke(ctx, TestsService_ListTests_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *testsServiceClient) GetTest(ctx context.Context, in *GetTestRequest, opts ...grpc.CallOption) (*GetTestResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetTestResponse)
	err := c.cc.Invoke(ctx, TestsService_GetTest_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *testsServiceClient) GetLatestTest(ctx context.Context, in *GetLatestTestRequest, opts ...grpc.CallOption) (*GetTestResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetTestResponse)
	err := c.cc.Invoke(ctx, TestsService_GetLatestTest_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *testsServiceClient) DeleteTest(ctx context.Context, in *DeleteTestRequest, opts ...grpc.CallOption) (*DeleteTestResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteTestResponse)
	err := c.cc.Invoke(ctx, TestsService_DeleteTest_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *testsServiceClient) ExportTests(ctx context.Context, in *ExportTestsRequest, opts ...grpc.CallOption) (*ExportTestsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportTestsResponse)
	err := c.cc.Invoke(ctx, TestsService_ExportTests_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// TestsServiceServer is the server API for TestsService service.
// All implementations must embed UnimplementedTestsServiceServer
// for forward compatibility.
type TestsServiceServer interface {
	ListTests(context.Context, *ListTestsRequest) (*ListTestsResponse, error)
	GetTest(context.Context, *GetTestRequest) (*GetTestResponse, error)
	GetLatestTest(context.Context, *GetLatestTestRequest) (*GetTestResponse, error)
	DeleteTest(context.Context, *DeleteTestRequest) (*DeleteTestResponse, error)
	ExportTests(context.Context, *ExportTestsRequest) (*ExportTestsResponse, error)
	mustEmbedUnimplementedTestsServiceServer()
}

// UnimplementedTestsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedTestsServiceServer struct{}

func (UnimplementedTestsServiceServer) ListTests(context.Context, *ListTestsRequest) (*ListTestsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListTests not implemented")
}
func (UnimplementedTestsServiceServer) GetTest(context.Context, *GetTestRequest) (*GetTestResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetTest not implemented")
}
func (UnimplementedTestsServiceServer) GetLatestTest(context.Context, *GetLatestTestRequest) (*GetTestResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetLatestTest not implemented")
}
func (UnimplementedTestsServiceServer) DeleteTest(context.Context, *DeleteTestRequest) (*DeleteTestResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteTest not implemented")
}
func (UnimplementedTestsServiceServer) ExportTests(context.Context, *ExportTestsRequest) (*ExportTestsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportTests not implemented")
}
func (UnimplementedTestsServiceServer) mustEmbedUnimplementedTestsServiceServer() {}
func (UnimplementedTestsServiceServer) testEmbeddedByValue()                      {}

// UnsafeTestsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to TestsServiceServer will
// result in compilation errors.
type UnsafeTestsServiceServer interface {
	mustEmbedUnimplementedTestsServiceServer()
}

func RegisterTestsServiceServer(s grpc.ServiceRegistrar, srv TestsServiceServer) {
	// If the following call pancis, it indicates UnimplementedTestsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&TestsService_ServiceDesc, srv)
}

func _TestsService_ListTests_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListTestsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TestsServiceServer).ListTests(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TestsService_ListTests_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TestsServiceServer).ListTests(ctx, req.(*ListTestsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TestsService_GetTest_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetTestRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TestsServiceServer).GetTest(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TestsService_GetTest_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TestsServiceServer).GetTest(ctx, req.(*GetTestRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TestsService_GetLatestTest_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetLatestTestRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TestsServiceServer).GetLatestTest(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TestsService_GetLatestTest_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TestsServiceServer).GetLatestTest(ctx, req.(*GetLatestTestRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TestsService_DeleteTest_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteTestRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TestsServiceServer).DeleteTest(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TestsService_DeleteTest_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TestsServiceServer).DeleteTest(ctx, req.(*DeleteTestRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TestsService_ExportTests_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportTestsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TestsServiceServer).ExportTests(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TestsService_ExportTests_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TestsServiceServer).ExportTests(ctx, req.(*ExportTestsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// TestsService_ServiceDesc is the grpc.ServiceDesc for TestsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var TestsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "icp.v1.TestsService",
	HandlerType: (*TestsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListTests",
			Handler:    _TestsService_ListTests_Handler,
		},
		{
			MethodName: "GetTest",
			Handler:    _TestsService_GetTest_Handler,
		},
		{
			MethodName: "GetLatestTest",
			Handler:    _TestsService_GetLatestTest_Handler,
		},
		{
			MethodName: "DeleteTest",
			Handler:    _TestsService_DeleteTest_Handler,
		},
		{
			MethodName: "ExportTests",
			Handler:    _TestsService_ExportTests_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "icp/v1/icp.proto",
}
