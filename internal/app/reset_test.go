package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppResetRequiresConfirmation(t *testing.T) {
	app := detach(New(Options{}))
	_, err := app.Reset(context.Background(), ResetParams{Timeout: time.Second})
	if err == nil || err.Error() != "destructive command: confirmation required" {
		t.Fatalf("expected confirmation error, got %v", err)
	}
}

func TestAppResetDaemonNotRunning(t *testing.T) {
	app := detach(New(Options{}))
	_, err := app.Reset(context.Background(), ResetParams{Timeout: time.Second, Confirmed: true})
	if !errors.Is(err, ErrDaemonNotRunning) {
		t.Fatalf("expected daemon error, got %v", err)
	}
}

func TestAppResetReportsRemoved(t *testing.T) {
	app := serve(t, fixtureRegistry())

	n, err := app.Reset(context.Background(), ResetParams{Timeout: time.Second, Confirmed: true})
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	procs, err := app.List(context.Background(), ListParams{Timeout: time.Second})
	require.NoError(t, err)
	assert.Empty(t, procs)

	n, err = app.Reset(context.Background(), ResetParams{Timeout: time.Second, Confirmed: true})
	require.NoError(t, err)
	assert.Zero(t, n)
}
