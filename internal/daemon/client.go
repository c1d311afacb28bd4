package daemon

import (
	"context"
	"fmt"
	"os"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"

	procctlv1 "procctl/api/proto/procctl/v1"
)

const pingTimeout = 300 * time.Millisecond

// Dial connects to the daemon socket and blocks until the channel is ready
// or ctx ends. grpc's unix resolver handles the "unix:" target. A refused
// connection fails at once instead of waiting out the reconnect backoff.
func Dial(ctx context.Context, paths Paths) (procctlv1.ProcCtlClient, *grpc.ClientConn, error) {
	conn, err := grpc.NewClient("unix:"+paths.Socket,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, err
	}
	conn.Connect()
	for state := conn.GetState(); state != connectivity.Ready; state = conn.GetState() {
		if state == connectivity.TransientFailure || state == connectivity.Shutdown || !conn.WaitForStateChange(ctx, state) {
			_ = conn.Close()
			if ctx.Err() != nil {
				return nil, nil, fmt.Errorf("dial %s: %w", paths.Socket, ctx.Err())
			}
			return nil, nil, fmt.Errorf("dial %s: connection %s", paths.Socket, state)
		}
	}
	return procctlv1.NewProcCtlClient(conn), conn, nil
}

// Ping calls the daemon at paths. The reply carries the daemon's pid and
// uptime.
func Ping(ctx context.Context, paths Paths) (*procctlv1.PingResponse, error) {
	if _, err := os.Stat(paths.Socket); err != nil {
		return nil, err
	}
	client, conn, err := Dial(ctx, paths)
	if err != nil {
		return nil, err
	}
	defer conn.Close()
	return client.Ping(ctx, &procctlv1.PingRequest{})
}

// IsRunning reports whether a daemon answers on the default socket.
func IsRunning() bool {
	return answers(DefaultPaths())
}

func answers(paths Paths) bool {
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	_, err := Ping(ctx, paths)
	return err == nil
}
