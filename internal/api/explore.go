package api

import (
	"context"

	"google.golang.org/grpc"
)

const (
	ExploreService_ListCandidates_FullMethodName    = "/lovespark.v1.ExploreService/ListCandidates"
	ExploreService_Swipe_FullMethodName             = "/lovespark.v1.ExploreService/Swipe"
	ExploreService_ListMatches_FullMethodName       = "/lovespark.v1.ExploreService/ListMatches"
	ExploreService_ListNegativeChats_FullMethodName = "/lovespark.v1.ExploreService/ListNegativeChats"
	ExploreService_ListSwipes_FullMethodName        = "/lovespark.v1.ExploreService/ListSwipes"
)

// ExploreServiceServer is the server API for ExploreService.
type ExploreServiceServer interface {
	ListCandidates(context.Context, *ListCandidatesRequest) (*ListCandidatesResponse, error)
	Swipe(context.Context, *SwipeRequest) (*SwipeResponse, error)
	ListMatches(context.Context, *PageRequest) (*ListProfilesResponse, error)
	ListNegativeChats(context.Context, *PageRequest) (*ListProfilesResponse, error)
	ListSwipes(context.Context, *PageRequest) (*ListSwipesResponse, error)
}

// ExploreService_ServiceDesc is the grpc.ServiceDesc for ExploreService.
var ExploreService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "lovespark.v1.ExploreService",
	HandlerType: (*ExploreServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListCandidates", Handler: unaryHandler(ExploreService_ListCandidates_FullMethodName, ExploreServiceServer.ListCandidates)},
		{MethodName: "Swipe", Handler: unaryHandler(ExploreService_Swipe_FullMethodName, ExploreServiceServer.Swipe)},
		{MethodName: "ListMatches", Handler: unaryHandler(ExploreService_ListMatches_FullMethodName, ExploreServiceServer.ListMatches)},
		{MethodName: "ListNegativeChats", Handler: unaryHandler(ExploreService_ListNegativeChats_FullMethodName, ExploreServiceServer.ListNegativeChats)},
		{MethodName: "ListSwipes", Handler: unaryHandler(ExploreService_ListSwipes_FullMethodName, ExploreServiceServer.ListSwipes)},
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterExploreServiceServer(s grpc.ServiceRegistrar, srv ExploreServiceServer) {
	s.RegisterService(&ExploreService_ServiceDesc, srv)
}

// ExploreServiceClient is the client API for ExploreService.
type ExploreServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewExploreServiceClient(cc grpc.ClientConnInterface) *ExploreServiceClient {
	return &ExploreServiceClient{cc: cc}
}

func (c *ExploreServiceClient) ListCandidates(ctx context.Context, in *ListCandidatesRequest, opts ...grpc.CallOption) (*ListCandidatesResponse, error) {
	return invoke[ListCandidatesResponse](ctx, c.cc, ExploreService_ListCandidates_FullMethodName, in, opts)
}

func (c *ExploreServiceClient) Swipe(ctx context.Context, in *SwipeRequest, opts ...grpc.CallOption) (*SwipeResponse, error) {
	return invoke[SwipeResponse](ctx, c.cc, ExploreService_Swipe_FullMethodName, in, opts)
}

func (c *ExploreServiceClient) ListMatches(ctx context.Context, in *PageRequest, opts ...grpc.CallOption) (*ListProfilesResponse, error) {
	return invoke[ListProfilesResponse](ctx, c.cc, ExploreService_ListMatches_FullMethodName, in, opts)
}

func (c *ExploreServiceClient) ListNegativeChats(ctx context.Context, in *PageRequest, opts ...grpc.CallOption) (*ListProfilesResponse, error) {
	return invoke[ListProfilesResponse](ctx, c.cc, ExploreService_ListNegativeChats_FullMethodName, in, opts)
}

func (c *ExploreServiceClient) ListSwipes(ctx context.Context, in *PageRequest, opts ...grpc.CallOption) (*ListSwipesResponse, error) {
	return invoke[ListSwipesResponse](ctx, c.cc, ExploreService_ListSwipes_FullMethodName, in, opts)
}
