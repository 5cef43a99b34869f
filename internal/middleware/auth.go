package middleware

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/oggyb/lovespark/internal/auth"
	"github.com/oggyb/lovespark/internal/session"
)

// AccountLookup returns the stored email of userID. ok is false when the
// account no longer exists.
type AccountLookup func(ctx context.Context, userID uint64) (email string, ok bool, err error)

// AuthUnaryInterceptor resolves the bearer token into a session.Session for
// every method except those in open. The token's user must still exist
// with the email it was issued for.
func AuthUnaryInterceptor(j *auth.JWTManager, accounts AccountLookup, open map[string]bool) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if open[info.FullMethod] || strings.HasPrefix(info.FullMethod, "/grpc.") {
			return handler(ctx, req)
		}

		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Errorf(codes.Unauthenticated, "missing metadata")
		}
		authHeaders := md.Get("authorization")
		if len(authHeaders) == 0 {
			return nil, status.Errorf(codes.Unauthenticated, "missing authorization header")
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeaders[0], "Bearer"))
		if token == "" {
			return nil, status.Errorf(codes.Unauthenticated, "invalid token")
		}

		claims, err := j.VerifyToken(token)
		if err != nil {
			return nil, status.Errorf(codes.Unauthenticated, "unauthenticated: %v", err)
		}

		email, ok, err := accounts(ctx, claims.UserID)
		if err != nil {
			return nil, status.Errorf(codes.Internal, "resolve account: %v", err)
		}
		if !ok || email != claims.Email {
			return nil, status.Errorf(codes.Unauthenticated, "account no longer exists")
		}

		ctx = session.NewContext(ctx, session.Session{UserID: claims.UserID, Email: claims.Email})
		return handler(ctx, req)
	}
}
