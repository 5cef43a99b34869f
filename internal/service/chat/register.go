package chat

import (
	"google.golang.org/grpc"

	"github.com/oggyb/lovespark/internal/api"
	"github.com/oggyb/lovespark/internal/app"
)

// Registrar ties the Chat service into the gRPC server
type Registrar struct {
	appCtx *app.AppContext
}

// NewRegistrar creates a new Registrar for the Chat service
func NewRegistrar(appCtx *app.AppContext) *Registrar {
	return &Registrar{appCtx: appCtx}
}

// Register attaches the Chat service implementation to the gRPC server
func (r *Registrar) Register(s grpc.ServiceRegistrar) {
	api.RegisterChatServiceServer(s, NewChatService(r.appCtx))
}
