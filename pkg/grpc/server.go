// Package grpc runs the sidecar gRPC server: the standard health-check
// service (grpc.health.v1.Health) for load-balancer probes, plus server
// reflection so grpcurl works without proto files.
//
// Usage in server bootstrap:
//
//	srv, _, err := grpc.Start(config.GRPCPort())
//	// ...run until signal...
//	grpc.Stop(srv)
package grpc

import (
	"context"
	"fmt"
	"net"
	"runtime/debug"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/shashiranjanraj/kirana/pkg/logger"
	"github.com/shashiranjanraj/kirana/pkg/metrics"
)

// ─── Prometheus metrics ───────────────────────────────────────────────────────

var (
	grpcRequestsTotal = promauto.With(metrics.DefaultRegistry).NewCounterVec(prometheus.CounterOpts{
		Namespace: "kirana",
		Name:      "grpc_server_handled_total",
		Help:      "Total number of gRPC calls completed by method and code.",
	}, []string{"grpc_method", "grpc_code"})

	grpcRequestDuration = promauto.With(metrics.DefaultRegistry).NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "kirana",
		Name:      "grpc_server_handling_seconds",
		Help:      "Histogram of gRPC response latency in seconds.",
		Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"grpc_method"})
)

// ─── Interceptors ─────────────────────────────────────────────────────────────

// recoveryInterceptor catches panics in handlers and returns INTERNAL
// instead of crashing the process.
func recoveryInterceptor(
	ctx context.Context,
	req interface{},
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (resp interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("grpc: panic recovered",
				"method", info.FullMethod,
				"panic", r,
				"stack", string(debug.Stack()),
			)
			err = status.Errorf(codes.Internal, "internal server error")
		}
	}()
	return handler(ctx, req)
}

// loggingInterceptor logs each unary RPC with its duration and result.
func loggingInterceptor(
	ctx context.Context,
	req interface{},
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	dur := time.Since(start)

	code := codes.OK
	if err != nil {
		code = status.Code(err)
	}

	logger.Info("grpc: request",
		"method", info.FullMethod,
		"duration_ms", dur.Milliseconds(),
		"code", code.String(),
	)
	return resp, err
}

// metricsInterceptor records counters and histograms per RPC.
func metricsInterceptor(
	ctx context.Context,
	req interface{},
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	dur := time.Since(start)

	code := codes.OK
	if err != nil {
		code = status.Code(err)
	}

	grpcRequestsTotal.WithLabelValues(info.FullMethod, code.String()).Inc()
	grpcRequestDuration.WithLabelValues(info.FullMethod).Observe(dur.Seconds())
	return resp, err
}

// chainUnary chains interceptors: interceptors[0] wraps interceptors[1]
// wraps ... handler.
func chainUnary(interceptors ...grpc.UnaryServerInterceptor) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		chain := handler
		for i := len(interceptors) - 1; i >= 0; i-- {
			i := i
			next := chain
			chain = func(ctx context.Context, req interface{}) (interface{}, error) {
				return interceptors[i](ctx, req, info, next)
			}
		}
		return chain(ctx, req)
	}
}

// ─── Health service ───────────────────────────────────────────────────────────

type healthServer struct {
	grpc_health_v1.UnimplementedHealthServer
}

func (h *healthServer) Check(
	_ context.Context,
	req *grpc_health_v1.HealthCheckRequest,
) (*grpc_health_v1.HealthCheckResponse, error) {
	return &grpc_health_v1.HealthCheckResponse{
		Status: grpc_health_v1.HealthCheckResponse_SERVING,
	}, nil
}

func (h *healthServer) Watch(
	req *grpc_health_v1.HealthCheckRequest,
	stream grpc_health_v1.Health_WatchServer,
) error {
	return stream.Send(&grpc_health_v1.HealthCheckResponse{
		Status: grpc_health_v1.HealthCheckResponse_SERVING,
	})
}

// ─── Public API ───────────────────────────────────────────────────────────────

// Start creates and starts the gRPC server on the given port. Returns the
// server and the net.Listener so callers can gracefully stop it.
func Start(port string) (*grpc.Server, net.Listener, error) {
	addr := ":" + port

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, fmt.Errorf("grpc: listen on %s: %w", addr, err)
	}

	srv := grpc.NewServer(
		grpc.UnaryInterceptor(
			chainUnary(
				recoveryInterceptor,
				loggingInterceptor,
				metricsInterceptor,
			),
		),
		grpc.MaxRecvMsgSize(4*1024*1024), // 4 MB
		grpc.MaxSendMsgSize(4*1024*1024),
	)

	grpc_health_v1.RegisterHealthServer(srv, &healthServer{})
	reflection.Register(srv)

	logger.Info("gRPC server starting", "addr", addr)

	go func() {
		if err := srv.Serve(lis); err != nil {
			logger.Error("grpc: serve error", "error", err)
		}
	}()

	return srv, lis, nil
}

// Stop gracefully shuts down the gRPC server, waiting for in-flight RPCs.
func Stop(srv *grpc.Server) {
	if srv == nil {
		return
	}
	logger.Info("gRPC server shutting down")
	srv.GracefulStop()
}
