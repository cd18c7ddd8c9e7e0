package dashboardv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	DashboardAnalytics_Authenticate_FullMethodName          = "/dashboard.v1.DashboardAnalytics/Authenticate"
	DashboardAnalytics_GetRatingSummary_FullMethodName      = "/dashboard.v1.DashboardAnalytics/GetRatingSummary"
	DashboardAnalytics_GetSessionRollup_FullMethodName      = "/dashboard.v1.DashboardAnalytics/GetSessionRollup"
	DashboardAnalytics_GetIndicatorBreakdown_FullMethodName = "/dashboard.v1.DashboardAnalytics/GetIndicatorBreakdown"
	DashboardAnalytics_ListFacetValues_FullMethodName       = "/dashboard.v1.DashboardAnalytics/ListFacetValues"
)

type DashboardAnalyticsClient interface {
	Authenticate(ctx context.Context, in *AuthenticateRequest, opts ...grpc.CallOption) (*AuthenticateResponse, error)
	GetRatingSummary(ctx context.Context, in *SummaryRequest, opts ...grpc.CallOption) (*SummaryResponse, error)
	GetSessionRollup(ctx context.Context, in *RollupRequest, opts ...grpc.CallOption) (*RollupResponse, error)
	GetIndicatorBreakdown(ctx context.Context, in *BreakdownRequest, opts ...grpc.CallOption) (*BreakdownResponse, error)
	ListFacetValues(ctx context.Context, in *FacetValuesRequest, opts ...grpc.CallOption) (*FacetValuesResponse, error)
}

type dashboardAnalyticsClient struct {
	cc grpc.ClientConnInterface
}

func NewDashboardAnalyticsClient(cc grpc.ClientConnInterface) DashboardAnalyticsClient {
	return &dashboardAnalyticsClient{cc: cc}
}

func (c *dashboardAnalyticsClient) Authenticate(ctx context.Context, in *AuthenticateRequest, opts ...grpc.CallOption) (*AuthenticateResponse, error) {
	out := new(AuthenticateResponse)
	if err := c.cc.Invoke(ctx, DashboardAnalytics_Authenticate_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dashboardAnalyticsClient) GetRatingSummary(ctx context.Context, in *SummaryRequest, opts ...grpc.CallOption) (*SummaryResponse, error) {
	out := new(SummaryResponse)
	if err := c.cc.Invoke(ctx, DashboardAnalytics_GetRatingSummary_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dashboardAnalyticsClient) GetSessionRollup(ctx context.Context, in *RollupRequest, opts ...grpc.CallOption) (*RollupResponse, error) {
	out := new(RollupResponse)
	if err := c.cc.Invoke(ctx, DashboardAnalytics_GetSessionRollup_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dashboardAnalyticsClient) GetIndicatorBreakdown(ctx context.Context, in *BreakdownRequest, opts ...grpc.CallOption) (*BreakdownResponse, error) {
	out := new(BreakdownResponse)
	if err := c.cc.Invoke(ctx, DashboardAnalytics_GetIndicatorBreakdown_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dashboardAnalyticsClient) ListFacetValues(ctx context.Context, in *FacetValuesRequest, opts ...grpc.CallOption) (*FacetValuesResponse, error) {
	out := new(FacetValuesResponse)
	if err := c.cc.Invoke(ctx, DashboardAnalytics_ListFacetValues_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

type DashboardAnalyticsServer interface {
	Authenticate(context.Context, *AuthenticateRequest) (*AuthenticateResponse, error)
	GetRatingSummary(context.Context, *SummaryRequest) (*SummaryResponse, error)
	GetSessionRollup(context.Context, *RollupRequest) (*RollupResponse, error)
	GetIndicatorBreakdown(context.Context, *BreakdownRequest) (*BreakdownResponse, error)
	ListFacetValues(context.Context, *FacetValuesRequest) (*FacetValuesResponse, error)
	mustEmbedUnimplementedDashboardAnalyticsServer()
}

type UnimplementedDashboardAnalyticsServer struct{}

func (UnimplementedDashboardAnalyticsServer) Authenticate(context.Context, *AuthenticateRequest) (*AuthenticateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Authenticate not implemented")
}
func (UnimplementedDashboardAnalyticsServer) GetRatingSummary(context.Context, *SummaryRequest) (*SummaryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetRatingSummary not implemented")
}
func (UnimplementedDashboardAnalyticsServer) GetSessionRollup(context.Context, *RollupRequest) (*RollupResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetSessionRollup not implemented")
}
func (UnimplementedDashboardAnalyticsServer) GetIndicatorBreakdown(context.Context, *BreakdownRequest) (*BreakdownResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetIndicatorBreakdown not implemented")
}
func (UnimplementedDashboardAnalyticsServer) ListFacetValues(context.Context, *FacetValuesRequest) (*FacetValuesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListFacetValues not implemented")
}
func (UnimplementedDashboardAnalyticsServer) mustEmbedUnimplementedDashboardAnalyticsServer() {}

func RegisterDashboardAnalyticsServer(s grpc.ServiceRegistrar, srv DashboardAnalyticsServer) {
	s.RegisterService(&DashboardAnalytics_ServiceDesc, srv)
}

func _DashboardAnalytics_Authenticate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AuthenticateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DashboardAnalyticsServer).Authenticate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: DashboardAnalytics_Authenticate_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DashboardAnalyticsServer).Authenticate(ctx, req.(*AuthenticateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DashboardAnalytics_GetRatingSummary_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SummaryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DashboardAnalyticsServer).GetRatingSummary(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: DashboardAnalytics_GetRatingSummary_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DashboardAnalyticsServer).GetRatingSummary(ctx, req.(*SummaryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DashboardAnalytics_GetSessionRollup_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RollupRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DashboardAnalyticsServer).GetSessionRollup(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: DashboardAnalytics_GetSessionRollup_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DashboardAnalyticsServer).GetSessionRollup(ctx, req.(*RollupRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DashboardAnalytics_GetIndicatorBreakdown_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BreakdownRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DashboardAnalyticsServer).GetIndicatorBreakdown(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: DashboardAnalytics_GetIndicatorBreakdown_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DashboardAnalyticsServer).GetIndicatorBreakdown(ctx, req.(*BreakdownRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DashboardAnalytics_ListFacetValues_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(FacetValuesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DashboardAnalyticsServer).ListFacetValues(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: DashboardAnalytics_ListFacetValues_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DashboardAnalyticsServer).ListFacetValues(ctx, req.(*FacetValuesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var DashboardAnalytics_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "dashboard.v1.DashboardAnalytics",
	HandlerType: (*DashboardAnalyticsServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Authenticate", Handler: _DashboardAnalytics_Authenticate_Handler},
		{MethodName: "GetRatingSummary", Handler: _DashboardAnalytics_GetRatingSummary_Handler},
		{MethodName: "GetSessionRollup", Handler: _DashboardAnalytics_GetSessionRollup_Handler},
		{MethodName: "GetIndicatorBreakdown", Handler: _DashboardAnalytics_GetIndicatorBreakdown_Handler},
		{MethodName: "ListFacetValues", Handler: _DashboardAnalytics_ListFacetValues_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/v1/dashboard.proto",
}
