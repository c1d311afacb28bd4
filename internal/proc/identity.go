package proc

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Identity is the stable key of a tracked process. The OS recycles pids, so
// a pid alone is not enough; the creation time (milliseconds since the Unix
// epoch, as reported by the OS) disambiguates a later process reusing it.
type Identity struct {
	PID        int32 `json:"pid"`
	CreateTime int64 `json:"create_time"`
}

// CreatedAt converts the creation timestamp to wall-clock time.
func (id Identity) CreatedAt() time.Time {
	return time.UnixMilli(id.CreateTime)
}

// IsZero reports whether the identity was never set.
func (id Identity) IsZero() bool {
	return id.PID == 0 && id.CreateTime == 0
}

func (id Identity) String() string {
	return fmt.Sprintf("%d@%d", id.PID, id.CreateTime)
}

// ParseIdentity reads the pid@create_time form produced by String.
func ParseIdentity(s string) (Identity, error) {
	pidPart, ctPart, ok := strings.Cut(strings.TrimSpace(s), "@")
	if !ok {
		return Identity{}, fmt.Errorf("%w: identity %q is not pid@create_time", ErrInvalidArgument, s)
	}
	pid, err := strconv.ParseInt(pidPart, 10, 32)
	if err != nil || pid <= 0 {
		return Identity{}, fmt.Errorf("%w: identity %q has a bad pid", ErrInvalidArgument, s)
	}
	ct, err := strconv.ParseInt(ctPart, 10, 64)
	if err != nil || ct <= 0 {
		return Identity{}, fmt.Errorf("%w: identity %q has a bad create time", ErrInvalidArgument, s)
	}
	return Identity{PID: int32(pid), CreateTime: ct}, nil
}
