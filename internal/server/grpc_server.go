package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/oggyb/lovespark/internal/api"
	"github.com/oggyb/lovespark/internal/app"
	svcErr "github.com/oggyb/lovespark/internal/errors"
	"github.com/oggyb/lovespark/internal/metrics"
	"github.com/oggyb/lovespark/internal/middleware"
	"github.com/oggyb/lovespark/internal/repository"
)

// credentialMethods are reachable without a session and are rate limited.
var credentialMethods = map[string]bool{
	api.AccountService_Signup_FullMethodName: true,
	api.AccountService_Login_FullMethodName:  true,
}

// GRPCServer is the lovespark gRPC server with its interceptor chain.
type GRPCServer struct {
	srv     *grpc.Server
	health  *health.Server
	limiter *middleware.LimiterStore
	appCtx  *app.AppContext
}

// NewGRPCServer builds the server and registers all provided services.
// Interceptors run in order: metrics, rate limit, auth.
func NewGRPCServer(appCtx *app.AppContext, registrars ...Registrar) *GRPCServer {
	cfg := appCtx.Config
	limiter := middleware.NewLimiterStore(cfg.RateLimit.RPM, cfg.RateLimit.Burst, 0)

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			metrics.UnaryInterceptor(),
			middleware.RateLimitUnaryInterceptor(limiter, credentialMethods),
			middleware.AuthUnaryInterceptor(appCtx.JWT, accountLookup(repository.NewUserRepository(appCtx.Store)), credentialMethods),
		),
	)

	// register all services
	for _, r := range registrars {
		r.Register(grpcServer)
	}

	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	// Reflection lists the services, but the descriptors are hand-written
	// and carry no file descriptors, so grpcurl can list lovespark.v1 but not
	// describe or invoke it. Health and reflection itself are fully described.
	reflection.Register(grpcServer)

	return &GRPCServer{srv: grpcServer, health: hs, limiter: limiter, appCtx: appCtx}
}

// accountLookup resolves token subjects against the users record.
func accountLookup(users *repository.UserRepository) middleware.AccountLookup {
	return func(ctx context.Context, userID uint64) (string, bool, error) {
		u, err := users.GetByID(ctx, userID)
		if svcErr.IsNotFound(err) {
			return "", false, nil
		} else if err != nil {
			return "", false, err
		}
		return u.Email, true, nil
	}
}

// Serve accepts connections on lis until the server is stopped.
func (s *GRPCServer) Serve(lis net.Listener) error {
	if err := s.srv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}

// GracefulStop reports NOT_SERVING, drains in-flight calls and releases
// the rate limiter.
func (s *GRPCServer) GracefulStop() {
	s.health.Shutdown()
	s.srv.GracefulStop()
	s.limiter.Stop()
}

// StartGRPCServer listens on the configured address and serves until ctx is
// cancelled, then stops gracefully.
func StartGRPCServer(ctx context.Context, appCtx *app.AppContext, registrars ...Registrar) error {
	addr := fmt.Sprintf("%s:%s", appCtx.Config.GRPC.Host, appCtx.Config.GRPC.Port)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	s := NewGRPCServer(appCtx, registrars...)
	go func() {
		<-ctx.Done()
		appCtx.Logger.Info("stopping gRPC server")
		s.GracefulStop()
	}()

	appCtx.Logger.Info("starting gRPC server", "addr", addr)
	return s.Serve(lis)
}
