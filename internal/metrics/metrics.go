// Package metrics holds the process-wide Prometheus collectors served on /metrics.
package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

var (
	// SwipesTotal counts recorded swipes by outcome
	SwipesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lovespark_swipes_total",
		Help: "Total recorded swipes by outcome",
	}, []string{"outcome"})

	// MessagesTotal counts chat messages by conversation kind
	MessagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lovespark_messages_total",
		Help: "Total chat messages by conversation kind",
	}, []string{"kind"})

	// rpcDuration tracks unary RPC latency
	rpcDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lovespark_rpc_duration_seconds",
		Help:    "Unary RPC duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14), // 0.5ms to ~4s
	}, []string{"method", "code"})
)

// UnaryInterceptor observes the duration and status code of every unary call.
func UnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		rpcDuration.
			WithLabelValues(info.FullMethod, status.Code(err).String()).
			Observe(time.Since(start).Seconds())
		return resp, err
	}
}
