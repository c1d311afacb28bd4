package registry

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"procctl/internal/proc"
)

func ident(pid int32) proc.Identity {
	return proc.Identity{PID: pid, CreateTime: int64(pid) * 1000}
}

func mustAdd(t *testing.T, r *Registry, e Entry) ProcID {
	t.Helper()
	id, existed, err := r.Add(e)
	require.NoError(t, err)
	require.False(t, existed)
	return id
}

func TestAddAndGet(t *testing.T) {
	r := New(time.Minute)
	id := mustAdd(t, r, Entry{Identity: ident(10), Cmd: "sleep 30", Cwd: "/tmp", Name: " web ", Tags: []string{"a", " a ", ""}, Groups: []string{"g"}})

	p, ok := r.Get(id)
	require.True(t, ok)
	assert.Equal(t, ProcID(1), p.ID)
	assert.Equal(t, int32(10), p.PID())
	assert.Equal(t, "web", p.Name)
	assert.Equal(t, []string{"a"}, p.Meta.Tags)
	assert.True(t, p.Alive)
	assert.Equal(t, 1, r.Len())
}

func TestAddSameIdentityIsIdempotent(t *testing.T) {
	r := New(time.Minute)
	id := mustAdd(t, r, Entry{Identity: ident(10)})

	again, existed, err := r.Add(Entry{Identity: ident(10), Name: "other"})
	require.NoError(t, err)
	assert.True(t, existed)
	assert.Equal(t, id, again)
}

func TestAddRecycledPIDIsNewEntry(t *testing.T) {
	r := New(time.Minute)
	first := mustAdd(t, r, Entry{Identity: proc.Identity{PID: 10, CreateTime: 1}})
	second := mustAdd(t, r, Entry{Identity: proc.Identity{PID: 10, CreateTime: 2}})
	assert.NotEqual(t, first, second)
	assert.Len(t, r.List(ListFilter{PIDs: []int32{10}}), 2)
}

func TestAddValidation(t *testing.T) {
	r := New(time.Minute)
	_, _, err := r.Add(Entry{Identity: proc.Identity{PID: 0}})
	require.Error(t, err)

	_, _, err = r.Add(Entry{Identity: ident(1), Name: "bad name"})
	require.ErrorIs(t, err, ErrInvalidLabel)

	_, _, err = r.Add(Entry{Identity: ident(1), Tags: []string{"a,b"}})
	require.ErrorIs(t, err, ErrInvalidLabel)
	assert.Zero(t, r.Len())

	mustAdd(t, r, Entry{Identity: ident(2), Name: "api"})
	_, _, err = r.Add(Entry{Identity: ident(3), Name: "api"})
	require.ErrorIs(t, err, ErrNameTaken)
}

func TestUpdateIdentity(t *testing.T) {
	r := New(time.Minute)
	id := mustAdd(t, r, Entry{Identity: ident(10), Cmd: "old"})
	r.SetAlive(id, false)

	require.NoError(t, r.UpdateIdentity(id, ident(20), "new", "/srv"))
	p, _ := r.Get(id)
	assert.Equal(t, ident(20), p.Identity)
	assert.Equal(t, "new", p.Cmd)
	assert.True(t, p.Alive)

	_, ok := r.Lookup(ident(10))
	assert.False(t, ok)
	got, ok := r.Lookup(ident(20))
	assert.True(t, ok)
	assert.Equal(t, id, got)

	require.ErrorIs(t, r.UpdateIdentity(99, ident(30), "", ""), ErrNotFound)
}

func TestRelabel(t *testing.T) {
	r := New(time.Minute)
	a := mustAdd(t, r, Entry{Identity: ident(1), Tags: []string{"web"}})
	b := mustAdd(t, r, Entry{Identity: ident(2), Groups: []string{"batch"}})

	p, err := r.Relabel(b, LabelChange{AddTags: []string{"web", "db"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"db", "web"}, p.Meta.Tags)
	_, err = r.Relabel(a, LabelChange{AddGroups: []string{"batch"}})
	require.NoError(t, err)
	assert.Len(t, r.List(ListFilter{TagsAny: []string{"web"}}), 2)
	assert.Len(t, r.List(ListFilter{TagsAll: []string{"web", "db"}}), 1)
	assert.Len(t, r.List(ListFilter{GroupsAll: []string{"batch"}}), 2)

	p, err = r.Relabel(b, LabelChange{RemoveTags: []string{"web"}, AddTags: []string{"web2"}, RemoveGroups: []string{"batch"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"db", "web2"}, p.Meta.Tags)
	assert.Empty(t, p.Meta.Groups)
	assert.Len(t, r.List(ListFilter{TagsAny: []string{"web"}}), 1)
	assert.Len(t, r.List(ListFilter{GroupsAny: []string{"batch"}}), 1)

	_, err = r.Relabel(99, LabelChange{AddTags: []string{"x"}})
	require.ErrorIs(t, err, ErrNotFound)
	_, err = r.Relabel(a, LabelChange{})
	require.ErrorIs(t, err, ErrInvalidLabel)
}

func TestRelabelRejectsBadLabelWithoutPartialWrite(t *testing.T) {
	r := New(time.Minute)
	id := mustAdd(t, r, Entry{Identity: ident(1), Tags: []string{"keep"}})

	_, err := r.Relabel(id, LabelChange{AddTags: []string{"ok"}, AddGroups: []string{"bad group"}})
	require.ErrorIs(t, err, ErrInvalidLabel)

	p, _ := r.Get(id)
	assert.Equal(t, []string{"keep"}, p.Meta.Tags)
	assert.Empty(t, r.List(ListFilter{TagsAny: []string{"ok"}}))
}

func TestRename(t *testing.T) {
	r := New(time.Minute)
	mustAdd(t, r, Entry{Identity: ident(1), Tags: []string{"old"}, Groups: []string{"g1"}})
	mustAdd(t, r, Entry{Identity: ident(2), Tags: []string{"old", "new"}})

	n, err := r.RenameTag("old", "new")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Empty(t, r.List(ListFilter{TagsAny: []string{"old"}}))
	for _, p := range r.List(ListFilter{TagsAny: []string{"new"}}) {
		assert.Equal(t, []string{"new"}, p.Meta.Tags)
	}
	n, _ = r.RenameTag("missing", "x")
	assert.Zero(t, n)
	n, _ = r.RenameGroup("g1", "g1")
	assert.Zero(t, n)
	n, _ = r.RenameGroup("g1", "g2")
	assert.Equal(t, 1, n)

	_, err = r.RenameGroup("g2", "two words")
	require.ErrorIs(t, err, ErrInvalidLabel)
	assert.Len(t, r.List(ListFilter{GroupsAny: []string{"g2"}}), 1)
}

func TestListFilters(t *testing.T) {
	r := New(time.Minute)
	a := mustAdd(t, r, Entry{Identity: ident(1), Cmd: "nginx -g daemon", Name: "edge"})
	b := mustAdd(t, r, Entry{Identity: ident(2), Cmd: "postgres"})
	r.SetAlive(b, false)

	assert.Len(t, r.List(ListFilter{}), 2)
	assert.Len(t, r.List(ListFilter{AliveOnly: true}), 1)
	assert.Len(t, r.List(ListFilter{TextSearch: "nginx"}), 1)
	assert.Len(t, r.List(ListFilter{Names: []string{"edge"}}), 1)
	assert.Len(t, r.List(ListFilter{IDs: []ProcID{a, b}, PIDs: []int32{2}}), 1)
}

func TestListByIdentity(t *testing.T) {
	r := New(time.Minute)
	old := mustAdd(t, r, Entry{Identity: proc.Identity{PID: 10, CreateTime: 1000}})
	recycled := mustAdd(t, r, Entry{Identity: proc.Identity{PID: 10, CreateTime: 5000}})

	got := r.List(ListFilter{Identities: []proc.Identity{{PID: 10, CreateTime: 5000}}})
	require.Len(t, got, 1)
	assert.Equal(t, recycled, got[0].ID)

	assert.Len(t, r.List(ListFilter{PIDs: []int32{10}}), 2)
	assert.Empty(t, r.List(ListFilter{Identities: []proc.Identity{{PID: 10, CreateTime: 3000}}}))

	got = r.List(ListFilter{Identities: []proc.Identity{{PID: 10, CreateTime: 1000}}, PIDs: []int32{10}})
	require.Len(t, got, 1)
	assert.Equal(t, old, got[0].ID)
}

func TestListByCreateTime(t *testing.T) {
	r := New(time.Minute)
	early := mustAdd(t, r, Entry{Identity: proc.Identity{PID: 1, CreateTime: 1_000}})
	mid := mustAdd(t, r, Entry{Identity: proc.Identity{PID: 2, CreateTime: 2_000}})
	late := mustAdd(t, r, Entry{Identity: proc.Identity{PID: 3, CreateTime: 3_000}})

	ids := func(ps []Proc) []ProcID {
		out := make([]ProcID, 0, len(ps))
		for _, p := range ps {
			out = append(out, p.ID)
		}
		return out
	}
	assert.Equal(t, []ProcID{mid, late}, ids(r.List(ListFilter{CreatedAfter: time.UnixMilli(2_000)})))
	assert.Equal(t, []ProcID{early}, ids(r.List(ListFilter{CreatedBefore: time.UnixMilli(2_000)})))
	assert.Equal(t, []ProcID{mid}, ids(r.List(ListFilter{CreatedAfter: time.UnixMilli(1_500), CreatedBefore: time.UnixMilli(2_500)})))
}

func TestRemoveAndReset(t *testing.T) {
	r := New(time.Minute)
	id := mustAdd(t, r, Entry{Identity: ident(1), Name: "api", Tags: []string{"t"}})

	assert.True(t, r.Remove(id))
	assert.False(t, r.Remove(id))
	assert.Empty(t, r.List(ListFilter{TagsAny: []string{"t"}}))
	mustAdd(t, r, Entry{Identity: ident(2), Name: "api"})

	assert.Equal(t, 1, r.Reset())
	assert.Zero(t, r.Len())
	assert.Equal(t, ProcID(1), mustAdd(t, r, Entry{Identity: ident(3)}))
}

func TestSetAlive(t *testing.T) {
	r := New(time.Hour)
	id := mustAdd(t, r, Entry{Identity: ident(1)})

	assert.False(t, r.SetAlive(id, true), "last seen is fresh")
	assert.True(t, r.SetAlive(id, false))
	assert.True(t, r.SetAlive(id, true))
	assert.False(t, r.SetAlive(99, true))
}

func TestListIsSortedAndConsistentProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := New(time.Minute)
		n := rapid.IntRange(0, 30).Draw(t, "n")
		tracked := map[ProcID]proc.Identity{}
		for i := 0; i < n; i++ {
			pid := rapid.Int32Range(1, 8).Draw(t, fmt.Sprintf("pid%d", i))
			ct := rapid.Int64Range(1, 3).Draw(t, fmt.Sprintf("ct%d", i))
			id, _, err := r.Add(Entry{Identity: proc.Identity{PID: pid, CreateTime: ct}})
			if err != nil {
				t.Fatalf("add: %v", err)
			}
			tracked[id] = proc.Identity{PID: pid, CreateTime: ct}
			if rapid.Bool().Draw(t, fmt.Sprintf("rm%d", i)) {
				r.Remove(id)
				delete(tracked, id)
			}
		}

		all := r.List(ListFilter{})
		if len(all) != len(tracked) {
			t.Fatalf("list has %d entries, want %d", len(all), len(tracked))
		}
		for i, p := range all {
			if i > 0 && all[i-1].ID >= p.ID {
				t.Fatalf("list not sorted by id")
			}
			if tracked[p.ID] != p.Identity {
				t.Fatalf("id %d has identity %v, want %v", p.ID, p.Identity, tracked[p.ID])
			}
			if got, ok := r.Lookup(p.Identity); !ok || got != p.ID {
				t.Fatalf("lookup %v = %d,%v", p.Identity, got, ok)
			}
		}
	})
}
