// Package gamesvc serves and consumes the game gRPC API.
package gamesvc

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/beka-birhanu/vinom-world/service/i"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

// Server hosts the game gRPC API and its health service.
type Server struct {
	listener   net.Listener
	grpcServer *grpc.Server
	health     *health.Server
	logger     i.Logger
}

// New creates a Server listening on addr.
func New(addr string, games i.GameService, logger i.Logger) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	s, err := NewWithListener(listener, games, logger)
	if err != nil {
		_ = listener.Close()
		return nil, err
	}
	return s, nil
}

// NewWithListener creates a Server on an existing listener.
func NewWithListener(listener net.Listener, games i.GameService, logger i.Logger) (*Server, error) {
	if listener == nil {
		return nil, errors.New("listener is required")
	}
	if games == nil {
		return nil, errors.New("game service is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	grpcServer := grpc.NewServer(
		grpc.ForceServerCodec(protoCodec{}),
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(loggingInterceptor(logger)),
	)
	healthServer := health.NewServer()
	RegisterGameServer(grpcServer, &handler{games: games})
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	return &Server{
		listener:   listener,
		grpcServer: grpcServer,
		health:     healthServer,
		logger:     logger,
	}, nil
}

// Addr returns the listener address for the server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Serve starts the gRPC server and blocks until ctx is cancelled or serving
// fails. In-flight calls are drained on cancellation.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	defer s.Close()

	s.logger.Info(fmt.Sprintf("game server listening at %v", s.listener.Addr()))
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		s.health.Shutdown()
		s.grpcServer.GracefulStop()
		return serveResult(<-serveErr)
	case err := <-serveErr:
		return serveResult(err)
	}
}

// Close stops the server and releases the listener.
func (s *Server) Close() {
	if s == nil {
		return
	}
	s.health.Shutdown()
	s.grpcServer.Stop()
	_ = s.listener.Close()
}

func serveResult(err error) error {
	if err == nil || errors.Is(err, grpc.ErrServerStopped) {
		return nil
	}
	return fmt.Errorf("serve gRPC: %w", err)
}
