// Package registry is the daemon's in-memory catalog of tracked processes.
package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"procctl/internal/proc"
)

const defaultLastSeenInterval = 30 * time.Second

// labelIndex maps a tag or group to the entries carrying it.
type labelIndex map[string]map[ProcID]struct{}

func (ix labelIndex) add(label string, id ProcID) {
	if _, ok := ix[label]; !ok {
		ix[label] = make(map[ProcID]struct{})
	}
	ix[label][id] = struct{}{}
}

func (ix labelIndex) remove(label string, id ProcID) {
	delete(ix[label], id)
	if len(ix[label]) == 0 {
		delete(ix, label)
	}
}

// Registry is a threadsafe in-memory catalog of tracked processes.
// Secondary indexes enable cheap queries by identity, name, tag, and group.
type Registry struct {
	mu         sync.RWMutex
	nextID     ProcID
	byID       map[ProcID]*Proc
	byIdentity map[proc.Identity]ProcID
	byName     map[string]ProcID
	byTag      labelIndex
	byGroup    labelIndex
	// Interval between lastSeen bumps while a process remains alive.
	lastSeenInterval time.Duration
}

// New returns an empty registry.
func New(lastSeenInterval time.Duration) *Registry {
	if lastSeenInterval <= 0 {
		lastSeenInterval = defaultLastSeenInterval
	}
	r := &Registry{lastSeenInterval: lastSeenInterval}
	r.resetLocked()
	return r
}

func (r *Registry) resetLocked() {
	r.nextID = 1
	r.byID = make(map[ProcID]*Proc)
	r.byIdentity = make(map[proc.Identity]ProcID)
	r.byName = make(map[string]ProcID)
	r.byTag = make(labelIndex)
	r.byGroup = make(labelIndex)
}

// Add registers a process. It returns the ID plus a flag indicating whether
// the identity was already tracked; in that case nothing is modified.
func (r *Registry) Add(e Entry) (ProcID, bool, error) {
	if e.Identity.PID <= 0 {
		return 0, false, fmt.Errorf("pid must be > 0, got %d", e.Identity.PID)
	}
	name, err := checkLabel(kindName, e.Name)
	if err != nil {
		return 0, false, err
	}
	tags, err := checkLabels(kindTag, e.Tags)
	if err != nil {
		return 0, false, err
	}
	groups, err := checkLabels(kindGroup, e.Groups)
	if err != nil {
		return 0, false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.byIdentity[e.Identity]; ok {
		return id, true, nil
	}
	if name != "" {
		if other, taken := r.byName[name]; taken {
			return 0, false, fmt.Errorf("%w: %q is used by id %d", ErrNameTaken, name, other)
		}
	}

	id := r.nextID
	r.nextID++
	p := &Proc{
		ID:       id,
		Identity: e.Identity,
		Cmd:      e.Cmd,
		Cwd:      e.Cwd,
		Name:     name,
		Alive:    true, // optimistic; the liveness watcher corrects it
		AddedAt:  now(),
		LastSeen: now(),
		Meta:     ProcMeta{Tags: toSet(tags).slice(), Groups: toSet(groups).slice()},
	}
	r.byID[id] = p
	r.byIdentity[e.Identity] = id
	if name != "" {
		r.byName[name] = id
	}
	for _, t := range p.Meta.Tags {
		r.byTag.add(t, id)
	}
	for _, g := range p.Meta.Groups {
		r.byGroup.add(g, id)
	}
	return id, false, nil
}

// Lookup returns the ID tracking identity, if any.
func (r *Registry) Lookup(identity proc.Identity) (ProcID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byIdentity[identity]
	return id, ok
}

// UpdateIdentity repoints an entry at a replacement process after a restart.
func (r *Registry) UpdateIdentity(id ProcID, identity proc.Identity, cmd, cwd string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.byID[id]
	if p == nil {
		return errNotFound(id)
	}
	delete(r.byIdentity, p.Identity)
	p.Identity = identity
	p.Cmd = cmd
	p.Cwd = cwd
	p.Alive = true
	p.LastSeen = now()
	r.byIdentity[identity] = id
	return nil
}

// Relabel applies a label change to one entry and returns the result.
// Every label is validated before anything is modified.
func (r *Registry) Relabel(id ProcID, c LabelChange) (Proc, error) {
	if c.empty() {
		return Proc{}, fmt.Errorf("%w: no labels to change", ErrInvalidLabel)
	}
	var err error
	if c.AddTags, err = checkLabels(kindTag, c.AddTags); err != nil {
		return Proc{}, err
	}
	if c.AddGroups, err = checkLabels(kindGroup, c.AddGroups); err != nil {
		return Proc{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.byID[id]
	if p == nil {
		return Proc{}, errNotFound(id)
	}
	p.Meta.Tags = relabel(r.byTag, id, p.Meta.Tags, c.AddTags, norm(c.RemoveTags))
	p.Meta.Groups = relabel(r.byGroup, id, p.Meta.Groups, c.AddGroups, norm(c.RemoveGroups))
	return clone(p), nil
}

func relabel(ix labelIndex, id ProcID, current, add, remove []string) []string {
	set := toSet(current)
	for _, l := range remove {
		delete(set, l)
		ix.remove(l, id)
	}
	for _, l := range add {
		set.add(l)
		ix.add(l, id)
	}
	return set.slice()
}

// Remove deletes an entry by ID.
func (r *Registry) Remove(id ProcID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.byID[id]
	if p == nil {
		return false
	}
	delete(r.byID, id)
	delete(r.byIdentity, p.Identity)
	if p.Name != "" {
		delete(r.byName, p.Name)
	}
	for _, t := range p.Meta.Tags {
		r.byTag.remove(t, id)
	}
	for _, g := range p.Meta.Groups {
		r.byGroup.remove(g, id)
	}
	return true
}

// SetAlive updates alive flag (and occasionally lastSeen) for the given process.
func (r *Registry) SetAlive(id ProcID, alive bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.byID[id]
	if p == nil {
		return false
	}

	changed := false
	if p.Alive != alive {
		p.Alive = alive
		changed = true
	}
	if alive {
		now := now()
		if p.LastSeen.IsZero() || now.Sub(p.LastSeen) >= r.lastSeenInterval {
			p.LastSeen = now
			changed = true
		}
	}
	return changed
}

// RenameTag renames a tag across all processes and returns affected count.
func (r *Registry) RenameTag(from, to string) (int, error) {
	return r.renameLabel(kindTag, r.byTag, func(p *Proc) *[]string { return &p.Meta.Tags }, from, to)
}

// RenameGroup renames a group label across all processes and returns affected count.
func (r *Registry) RenameGroup(from, to string) (int, error) {
	return r.renameLabel(kindGroup, r.byGroup, func(p *Proc) *[]string { return &p.Meta.Groups }, from, to)
}

func (r *Registry) renameLabel(kind labelKind, ix labelIndex, field func(*Proc) *[]string, from, to string) (int, error) {
	from = strings.TrimSpace(from)
	to, err := checkLabel(kind, to)
	if err != nil {
		return 0, err
	}
	if from == "" || to == "" || from == to {
		return 0, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for id := range ix[from] {
		p := r.byID[id]
		if p == nil {
			continue
		}
		labels := field(p)
		set := toSet(*labels)
		delete(set, from)
		set.add(to)
		*labels = set.slice()
		ix.add(to, id)
		count++
	}
	delete(ix, from)
	return count, nil
}

// Reset clears the registry, resets the ID counter and reports how many
// entries were dropped.
func (r *Registry) Reset() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := len(r.byID)
	r.resetLocked()
	return n
}

// Get returns a copy of a Proc by ID.
func (r *Registry) Get(id ProcID) (Proc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p := r.byID[id]
	if p == nil {
		return Proc{}, false
	}
	return clone(p), true
}

// Len reports the number of tracked entries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

// List returns matching processes, sorted by ID asc.
func (r *Registry) List(f ListFilter) []Proc {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]ProcID, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}

	if len(f.IDs) > 0 {
		set := make(map[ProcID]struct{}, len(f.IDs))
		for _, id := range f.IDs {
			set[id] = struct{}{}
		}
		ids = filterIDs(ids, func(id ProcID) bool {
			_, ok := set[id]
			return ok
		})
	}
	if len(f.PIDs) > 0 {
		pidSet := make(map[int32]struct{}, len(f.PIDs))
		for _, p := range f.PIDs {
			pidSet[p] = struct{}{}
		}
		ids = filterIDs(ids, func(id ProcID) bool {
			_, ok := pidSet[r.byID[id].PID()]
			return ok
		})
	}
	if len(f.Identities) > 0 {
		want := make(map[proc.Identity]struct{}, len(f.Identities))
		for _, ident := range f.Identities {
			want[ident] = struct{}{}
		}
		ids = filterIDs(ids, func(id ProcID) bool {
			_, ok := want[r.byID[id].Identity]
			return ok
		})
	}
	if !f.CreatedAfter.IsZero() || !f.CreatedBefore.IsZero() {
		ids = filterIDs(ids, func(id ProcID) bool {
			created := r.byID[id].Identity.CreatedAt()
			if !f.CreatedAfter.IsZero() && created.Before(f.CreatedAfter) {
				return false
			}
			return f.CreatedBefore.IsZero() || created.Before(f.CreatedBefore)
		})
	}
	if len(f.Names) > 0 {
		names := toSet(norm(f.Names))
		ids = filterIDs(ids, func(id ProcID) bool {
			return names.has(r.byID[id].Name)
		})
	}

	if len(f.TagsAny) > 0 {
		ids = filterIDs(ids, r.inAny(r.byTag, f.TagsAny))
	}
	if len(f.TagsAll) > 0 {
		ids = filterIDs(ids, func(id ProcID) bool {
			return toSet(r.byID[id].Meta.Tags).hasAll(f.TagsAll)
		})
	}
	if len(f.GroupsAny) > 0 {
		ids = filterIDs(ids, r.inAny(r.byGroup, f.GroupsAny))
	}
	if len(f.GroupsAll) > 0 {
		ids = filterIDs(ids, func(id ProcID) bool {
			return toSet(r.byID[id].Meta.Groups).hasAll(f.GroupsAll)
		})
	}

	if f.AliveOnly {
		ids = filterIDs(ids, func(id ProcID) bool {
			return r.byID[id].Alive
		})
	}

	if s := strings.TrimSpace(f.TextSearch); s != "" {
		ids = filterIDs(ids, func(id ProcID) bool {
			return strings.Contains(r.byID[id].Cmd, s)
		})
	}

	out := make([]Proc, 0, len(ids))
	for _, id := range ids {
		out = append(out, clone(r.byID[id]))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *Registry) inAny(ix labelIndex, labels []string) func(ProcID) bool {
	hit := make(map[ProcID]struct{})
	for _, l := range labels {
		for id := range ix[l] {
			hit[id] = struct{}{}
		}
	}
	return func(id ProcID) bool {
		_, ok := hit[id]
		return ok
	}
}

func clone(p *Proc) Proc {
	cp := *p
	cp.Meta.Tags = append([]string(nil), p.Meta.Tags...)
	cp.Meta.Groups = append([]string(nil), p.Meta.Groups...)
	return cp
}

func errNotFound(id ProcID) error {
	return fmt.Errorf("%w: id %d", ErrNotFound, id)
}
