package api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

const (
	AccountService_Signup_FullMethodName         = "/lovespark.v1.AccountService/Signup"
	AccountService_Login_FullMethodName          = "/lovespark.v1.AccountService/Login"
	AccountService_GetProfile_FullMethodName     = "/lovespark.v1.AccountService/GetProfile"
	AccountService_UpdateProfile_FullMethodName  = "/lovespark.v1.AccountService/UpdateProfile"
	AccountService_AddImage_FullMethodName       = "/lovespark.v1.AccountService/AddImage"
	AccountService_RemoveImage_FullMethodName    = "/lovespark.v1.AccountService/RemoveImage"
	AccountService_AddInterest_FullMethodName    = "/lovespark.v1.AccountService/AddInterest"
	AccountService_RemoveInterest_FullMethodName = "/lovespark.v1.AccountService/RemoveInterest"
	AccountService_GetSettings_FullMethodName    = "/lovespark.v1.AccountService/GetSettings"
	AccountService_UpdateSettings_FullMethodName = "/lovespark.v1.AccountService/UpdateSettings"
	AccountService_DeleteAccount_FullMethodName  = "/lovespark.v1.AccountService/DeleteAccount"
)

// AccountServiceServer is the server API for AccountService.
type AccountServiceServer interface {
	Signup(context.Context, *SignupRequest) (*AuthResponse, error)
	Login(context.Context, *LoginRequest) (*AuthResponse, error)
	GetProfile(context.Context, *emptypb.Empty) (*ProfileResponse, error)
	UpdateProfile(context.Context, *UpdateProfileRequest) (*ProfileResponse, error)
	AddImage(context.Context, *AddImageRequest) (*ProfileResponse, error)
	RemoveImage(context.Context, *RemoveImageRequest) (*ProfileResponse, error)
	AddInterest(context.Context, *InterestRequest) (*ProfileResponse, error)
	RemoveInterest(context.Context, *InterestRequest) (*ProfileResponse, error)
	GetSettings(context.Context, *emptypb.Empty) (*SettingsResponse, error)
	UpdateSettings(context.Context, *UpdateSettingsRequest) (*SettingsResponse, error)
	DeleteAccount(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
}

// AccountService_ServiceDesc is the grpc.ServiceDesc for AccountService.
var AccountService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "lovespark.v1.AccountService",
	HandlerType: (*AccountServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Signup", Handler: unaryHandler(AccountService_Signup_FullMethodName, AccountServiceServer.Signup)},
		{MethodName: "Login", Handler: unaryHandler(AccountService_Login_FullMethodName, AccountServiceServer.Login)},
		{MethodName: "GetProfile", Handler: unaryHandler(AccountService_GetProfile_FullMethodName, AccountServiceServer.GetProfile)},
		{MethodName: "UpdateProfile", Handler: unaryHandler(AccountService_UpdateProfile_FullMethodName, AccountServiceServer.UpdateProfile)},
		{MethodName: "AddImage", Handler: unaryHandler(AccountService_AddImage_FullMethodName, AccountServiceServer.AddImage)},
		{MethodName: "RemoveImage", Handler: unaryHandler(AccountService_RemoveImage_FullMethodName, AccountServiceServer.RemoveImage)},
		{MethodName: "AddInterest", Handler: unaryHandler(AccountService_AddInterest_FullMethodName, AccountServiceServer.AddInterest)},
		{MethodName: "RemoveInterest", Handler: unaryHandler(AccountService_RemoveInterest_FullMethodName, AccountServiceServer.RemoveInterest)},
		{MethodName: "GetSettings", Handler: unaryHandler(AccountService_GetSettings_FullMethodName, AccountServiceServer.GetSettings)},
		{MethodName: "UpdateSettings", Handler: unaryHandler(AccountService_UpdateSettings_FullMethodName, AccountServiceServer.UpdateSettings)},
		{MethodName: "DeleteAccount", Handler: unaryHandler(AccountService_DeleteAccount_FullMethodName, AccountServiceServer.DeleteAccount)},
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterAccountServiceServer(s grpc.ServiceRegistrar, srv AccountServiceServer) {
	s.RegisterService(&AccountService_ServiceDesc, srv)
}

// AccountServiceClient is the client API for AccountService.
type AccountServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAccountServiceClient(cc grpc.ClientConnInterface) *AccountServiceClient {
	return &AccountServiceClient{cc: cc}
}

func (c *AccountServiceClient) Signup(ctx context.Context, in *SignupRequest, opts ...grpc.CallOption) (*AuthResponse, error) {
	return invoke[AuthResponse](ctx, c.cc, AccountService_Signup_FullMethodName, in, opts)
}

func (c *AccountServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*AuthResponse, error) {
	return invoke[AuthResponse](ctx, c.cc, AccountService_Login_FullMethodName, in, opts)
}

func (c *AccountServiceClient) GetProfile(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*ProfileResponse, error) {
	return invoke[ProfileResponse](ctx, c.cc, AccountService_GetProfile_FullMethodName, in, opts)
}

func (c *AccountServiceClient) UpdateProfile(ctx context.Context, in *UpdateProfileRequest, opts ...grpc.CallOption) (*ProfileResponse, error) {
	return invoke[ProfileResponse](ctx, c.cc, AccountService_UpdateProfile_FullMethodName, in, opts)
}

func (c *AccountServiceClient) AddImage(ctx context.Context, in *AddImageRequest, opts ...grpc.CallOption) (*ProfileResponse, error) {
	return invoke[ProfileResponse](ctx, c.cc, AccountService_AddImage_FullMethodName, in, opts)
}

func (c *AccountServiceClient) RemoveImage(ctx context.Context, in *RemoveImageRequest, opts ...grpc.CallOption) (*ProfileResponse, error) {
	return invoke[ProfileResponse](ctx, c.cc, AccountService_RemoveImage_FullMethodName, in, opts)
}

func (c *AccountServiceClient) AddInterest(ctx context.Context, in *InterestRequest, opts ...grpc.CallOption) (*ProfileResponse, error) {
	return invoke[ProfileResponse](ctx, c.cc, AccountService_AddInterest_FullMethodName, in, opts)
}

func (c *AccountServiceClient) RemoveInterest(ctx context.Context, in *InterestRequest, opts ...grpc.CallOption) (*ProfileResponse, error) {
	return invoke[ProfileResponse](ctx, c.cc, AccountService_RemoveInterest_FullMethodName, in, opts)
}

func (c *AccountServiceClient) GetSettings(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*SettingsResponse, error) {
	return invoke[SettingsResponse](ctx, c.cc, AccountService_GetSettings_FullMethodName, in, opts)
}

func (c *AccountServiceClient) UpdateSettings(ctx context.Context, in *UpdateSettingsRequest, opts ...grpc.CallOption) (*SettingsResponse, error) {
	return invoke[SettingsResponse](ctx, c.cc, AccountService_UpdateSettings_FullMethodName, in, opts)
}

func (c *AccountServiceClient) DeleteAccount(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, AccountService_DeleteAccount_FullMethodName, in, opts)
}
