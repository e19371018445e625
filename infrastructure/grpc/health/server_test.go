package health

import (
	"context"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"
)

func TestWorker_Reports_Serving_Until_Canceled(t *testing.T) {
	req := require.New(t)
	listener := bufconn.Listen(1024 * 1024)
	worker := NewWorker(slog.Default(), 0).WithListener(listener)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	req.NoError(err)
	defer conn.Close()
	client := grpc_health_v1.NewHealthClient(conn)

	// Then the server and the game service are reported serving
	for _, service := range []string{"", GameServiceName} {
		var resp *grpc_health_v1.HealthCheckResponse
		req.Eventually(func() bool {
			resp, err = client.Check(context.Background(), &grpc_health_v1.HealthCheckRequest{Service: service})
			return err == nil
		}, time.Second, 10*time.Millisecond)
		req.Equal(grpc_health_v1.HealthCheckResponse_SERVING, resp.GetStatus())
	}

	// When the worker is canceled it stops cleanly
	cancel()
	select {
	case err := <-done:
		req.NoError(err)
	case <-time.After(2 * time.Second):
		req.Fail("health worker should stop on cancel")
	}
}
