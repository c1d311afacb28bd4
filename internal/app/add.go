package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	procctlv1 "procctl/api/proto/procctl/v1"
	"procctl/internal/proc"
)

// AddParams configures PID registration.
type AddParams struct {
	PID int
	// CreateTime pins the identity (ms since epoch); zero means the
	// process currently holding PID.
	CreateTime int64
	Tags       []string
	Groups     []string
	Name       string
	Timeout    time.Duration
}

// AddResult reports the daemon response.
type AddResult struct {
	ID uint64
	// Identity is what the daemon registered; it pins the create time
	// even when the request left it open.
	Identity       proc.Identity
	AlreadyExists  bool
	ExistingReason string
}

// Add registers a running PID with the daemon.
func (a *App) Add(ctx context.Context, params AddParams) (AddResult, error) {
	var result AddResult

	if params.PID <= 0 {
		return result, fmt.Errorf("invalid pid %d", params.PID)
	}

	name := strings.TrimSpace(params.Name)
	tags := append([]string(nil), params.Tags...)
	groups := append([]string(nil), params.Groups...)

	err := a.withDaemon(ctx, params.Timeout, func(ctx context.Context, client procctlv1.ProcCtlClient) error {
		resp, err := client.Add(ctx, &procctlv1.AddRequest{
			Pid:        int32(params.PID),
			CreateTime: params.CreateTime,
			Tags:       tags,
			Groups:     groups,
			Name:       name,
		})
		if err != nil {
			if st, ok := status.FromError(err); ok && st.Code() == codes.AlreadyExists {
				result.AlreadyExists = true
				result.ExistingReason = st.Message()
				return nil
			}
			return fmt.Errorf("daemon add RPC failed: %w", err)
		}
		result.ID = resp.GetId()
		result.Identity = proc.Identity{PID: int32(params.PID), CreateTime: resp.GetCreateTime()}
		return nil
	})
	return result, err
}
