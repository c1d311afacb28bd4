package proc

// Attr names one attribute of the fixed set captured during enumeration.
type Attr string

const (
	AttrPID        Attr = "pid"
	AttrName       Attr = "name"
	AttrCwd        Attr = "cwd"
	AttrUsername   Attr = "username"
	AttrCreateTime Attr = "create_time"
	AttrCmdline    Attr = "cmdline"
)

// AllAttrs lists the attribute set in a stable order.
var AllAttrs = []Attr{AttrPID, AttrName, AttrCwd, AttrUsername, AttrCreateTime, AttrCmdline}

// Attributes is a snapshot of one process taken during enumeration. Fields
// the OS refused to reveal are marked unavailable and hold zero values.
type Attributes struct {
	PID        int32
	Name       string
	Cwd        string
	Username   string
	CreateTime int64
	Cmdline    []string

	unavailable map[Attr]struct{}
}

// MarkUnavailable records that attr could not be read for this process.
func (a *Attributes) MarkUnavailable(attr Attr) {
	if a.unavailable == nil {
		a.unavailable = make(map[Attr]struct{}, 1)
	}
	a.unavailable[attr] = struct{}{}
}

// Available reports whether attr is part of the set and was readable.
func (a Attributes) Available(attr Attr) bool {
	switch attr {
	case AttrPID, AttrName, AttrCwd, AttrUsername, AttrCreateTime, AttrCmdline:
	default:
		return false
	}
	_, missing := a.unavailable[attr]
	return !missing
}

// Get returns the value of attr, or false when attr is unknown or unavailable.
func (a Attributes) Get(attr Attr) (any, bool) {
	if !a.Available(attr) {
		return nil, false
	}
	switch attr {
	case AttrPID:
		return a.PID, true
	case AttrName:
		return a.Name, true
	case AttrCwd:
		return a.Cwd, true
	case AttrUsername:
		return a.Username, true
	case AttrCreateTime:
		return a.CreateTime, true
	default:
		return a.Cmdline, true
	}
}

// Identity returns the identity pair described by the snapshot.
func (a Attributes) Identity() Identity {
	return Identity{PID: a.PID, CreateTime: a.CreateTime}
}
