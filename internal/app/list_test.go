package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procctl/internal/proc"
)

func listIDs(procs []Process) []uint64 {
	ids := make([]uint64, 0, len(procs))
	for _, p := range procs {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestAppListRejectsInvalidFilters(t *testing.T) {
	cases := []struct {
		name    string
		filters ListFilters
		want    string
	}{
		{"blank name", ListFilters{Names: []string{"ok", " "}}, "name filters must not be empty"},
		{"negative pid", ListFilters{PIDs: []int{1, -2}}, "invalid pid filter: -2"},
		{"alive and dead", ListFilters{AliveOnly: true, DeadOnly: true}, "alive and dead filters are mutually exclusive"},
		{"zero create time", ListFilters{Identities: []proc.Identity{{PID: 10}}}, "invalid identity filter: 10@0"},
		{
			"inverted window",
			ListFilters{CreatedAfter: time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local), CreatedBefore: time.Date(2024, 4, 1, 0, 0, 0, 0, time.Local)},
			"created-after 2024-05-01 00:00:00 is not before created-before 2024-04-01 00:00:00",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := detach(New(Options{}))
			_, err := app.List(context.Background(), ListParams{Timeout: time.Second, Filters: tc.filters})
			if err == nil || err.Error() != tc.want {
				t.Fatalf("expected %q, got %v", tc.want, err)
			}
		})
	}
}

func TestAppListDaemonNotRunning(t *testing.T) {
	app := detach(New(Options{}))
	_, err := app.List(context.Background(), ListParams{Timeout: time.Second})
	if !errors.Is(err, ErrDaemonNotRunning) {
		t.Fatalf("expected daemon not running error, got %v", err)
	}
}

func TestAppListDialError(t *testing.T) {
	app := dialFailing(New(Options{}), errors.New("dial failed"))
	_, err := app.List(context.Background(), ListParams{Timeout: time.Second})
	if err == nil || err.Error() != "connect to daemon: dial failed" {
		t.Fatalf("expected dial error, got %v", err)
	}
}

func TestAppListByIdentityTellsRecycledPIDApart(t *testing.T) {
	reg := fixtureRegistry()
	app := serve(t, reg)

	byPID, err := app.List(context.Background(), ListParams{Timeout: time.Second, Filters: ListFilters{PIDs: []int{4242}}})
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2}, listIDs(byPID))

	current := proc.Identity{PID: 4242, CreateTime: 1_700_000_600_000}
	byIdentity, err := app.List(context.Background(), ListParams{Timeout: time.Second, Filters: ListFilters{Identities: []proc.Identity{current}}})
	require.NoError(t, err)
	require.Len(t, byIdentity, 1)
	assert.Equal(t, current, byIdentity[0].Identity)
	assert.Equal(t, "api-2", byIdentity[0].Name)
	assert.Equal(t, time.UnixMilli(1_700_000_600_000), byIdentity[0].Started())

	sent := reg.listed()[1].GetIdentities()
	require.Len(t, sent, 1)
	assert.Equal(t, int32(4242), sent[0].GetPid())
	assert.Equal(t, int64(1_700_000_600_000), sent[0].GetCreateTime())
}

func TestAppListAliveAndDead(t *testing.T) {
	app := serve(t, fixtureRegistry())

	alive, err := app.List(context.Background(), ListParams{Timeout: time.Second, Filters: ListFilters{AliveOnly: true}})
	require.NoError(t, err)
	assert.Equal(t, []uint64{2, 3}, listIDs(alive))

	dead, err := app.List(context.Background(), ListParams{Timeout: time.Second, Filters: ListFilters{DeadOnly: true}})
	require.NoError(t, err)
	require.Len(t, dead, 1)
	assert.Equal(t, "4242@1700000000000", dead[0].Identity.String())
	assert.False(t, dead[0].Alive)
}

func TestAppListCreatedWindow(t *testing.T) {
	reg := fixtureRegistry()
	app := serve(t, reg)

	procs, err := app.List(context.Background(), ListParams{
		Timeout: time.Second,
		Filters: ListFilters{
			CreatedAfter:  time.UnixMilli(1_700_000_300_000),
			CreatedBefore: time.UnixMilli(1_700_000_600_000),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []uint64{3}, listIDs(procs), "after is inclusive, before exclusive")

	req := reg.listed()[0]
	assert.Equal(t, int64(1_700_000_300_000), req.GetCreatedAfter())
	assert.Equal(t, int64(1_700_000_600_000), req.GetCreatedBefore())
}

func TestAppListPassesLabelSelectors(t *testing.T) {
	reg := fixtureRegistry()
	app := serve(t, reg)

	procs, err := app.List(context.Background(), ListParams{
		Timeout: 750 * time.Millisecond,
		Filters: ListFilters{TagsAny: []string{"a"}, TagsAll: []string{"web"}, GroupsAll: []string{"prod"}, TextSearch: "srv"},
	})
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2}, listIDs(procs))

	req := reg.listed()[0]
	assert.Equal(t, []string{"a"}, req.GetTagsAny())
	assert.Equal(t, "srv", req.GetTextSearch())
	assert.False(t, req.GetAliveOnly())
}
