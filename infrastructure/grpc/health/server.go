package health

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	grpc3 "github.com/mama165/sdk-go/grpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// GameServiceName is the health service name reported while games are accepted.
const GameServiceName = "caiu-perdeu.GameService"

// Worker serves the standard gRPC health service until its context is canceled.
type Worker struct {
	log      *slog.Logger
	address  string
	listener net.Listener
}

func NewWorker(log *slog.Logger, port int) *Worker {
	return &Worker{log: log, address: fmt.Sprintf("0.0.0.0:%d", port)}
}

// WithListener serves on an existing listener instead of opening the configured port.
func (w *Worker) WithListener(listener net.Listener) *Worker {
	w.listener = listener
	return w
}

func (w *Worker) Run(ctx context.Context) error {
	listener := w.listener
	if listener == nil {
		var err error
		listener, err = net.Listen("tcp", w.address)
		if err != nil {
			return fmt.Errorf("failed to listen on %s: %w", w.address, err)
		}
	}

	s := grpc.NewServer(grpc.ChainUnaryInterceptor(grpc3.UnaryLoggingInterceptor(w.log)))
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(s, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(GameServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	errChan := make(chan error, 1)
	go func() {
		w.log.Info("Starting gRPC health server", "address", listener.Addr().String(), "at", time.Now().UTC())
		if err := s.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		healthServer.Shutdown()
		s.GracefulStop()
		w.log.Info("gRPC health server stopped")
		return nil
	case err := <-errChan:
		return err
	}
}
