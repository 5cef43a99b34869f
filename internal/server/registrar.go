package server

import "google.golang.org/grpc"

// Registrar attaches one lovespark.v1 service to a gRPC server.
type Registrar interface {
	Register(s grpc.ServiceRegistrar)
}
