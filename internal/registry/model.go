package registry

import (
	"errors"
	"time"

	"procctl/internal/proc"
)

var (
	ErrNotFound  = errors.New("proc not found")
	ErrNameTaken = errors.New("name already in use")
)

// ProcID is an internal stable identifier for tracked processes.
type ProcID uint64

// ProcMeta holds user-defined labels.
type ProcMeta struct {
	Tags   []string `json:"tags,omitempty"`   // arbitrary labels
	Groups []string `json:"groups,omitempty"` // used for bulk-ops (kill/list)
}

// Proc holds a tracked process entry. It is immutable outside registry methods.
type Proc struct {
	ID       ProcID        `json:"id"`
	Identity proc.Identity `json:"identity"`
	Cmd      string        `json:"cmd"`
	Cwd      string        `json:"cwd"`
	Name     string        `json:"name"`
	Alive    bool          `json:"alive"`
	AddedAt  time.Time     `json:"added_at"`
	LastSeen time.Time     `json:"last_seen"`
	Meta     ProcMeta      `json:"meta"`
}

func (p Proc) PID() int32 {
	return p.Identity.PID
}

// Entry describes a process being registered.
type Entry struct {
	Identity proc.Identity
	Cmd      string
	Cwd      string
	Name     string
	Tags     []string
	Groups   []string
}

// ListFilter allows narrowing the registry query.
type ListFilter struct {
	TagsAny    []string // include if has ANY of these tags
	TagsAll    []string // include if has ALL of these tags
	GroupsAny  []string // include if in ANY of these groups
	GroupsAll  []string // include if in ALL of these groups
	AliveOnly  bool
	PIDs       []int32
	IDs        []ProcID
	Names      []string
	TextSearch string // naive substring search over Cmd
	// Identities selects exact (pid, create_time) pairs; a recycled pid
	// does not match an identity recorded before the recycle.
	Identities []proc.Identity
	// CreatedAfter and CreatedBefore bound the process start time. Zero
	// values leave the bound open.
	CreatedAfter  time.Time
	CreatedBefore time.Time
}

// LabelChange edits the tags and groups of one entry. Removals apply first.
type LabelChange struct {
	AddTags      []string
	RemoveTags   []string
	AddGroups    []string
	RemoveGroups []string
}

func (c LabelChange) empty() bool {
	return len(c.AddTags)+len(c.RemoveTags)+len(c.AddGroups)+len(c.RemoveGroups) == 0
}
