package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perftool/internal/history"
)

func TestHistoryCmd(t *testing.T) {
	t.Chdir(t.TempDir())
	ms := &mockStore{runs: []history.Run{
		{
			Bench:     "sort_vec",
			Commit:    "abc123",
			Samples:   50,
			Min:       10,
			Max:       10000,
			Elapsed:   42 * time.Second,
			CreatedAt: time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC),
		},
	}}
	orig := newStoreFunc
	newStoreFunc = func(path string) (history.Store, error) { return ms, nil }
	t.Cleanup(func() { newStoreFunc = orig })

	cmd := newHistoryCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)

	require.NoError(t, cmd.Execute())
	output := buf.String()
	assert.Contains(t, output, "sort_vec")
	assert.Contains(t, output, "abc123")
	assert.Contains(t, output, "[10, 10000)")
	assert.Contains(t, output, "42s")
}

func TestHistoryCmdEmpty(t *testing.T) {
	t.Chdir(t.TempDir())
	orig := newStoreFunc
	newStoreFunc = func(path string) (history.Store, error) { return &mockStore{}, nil }
	t.Cleanup(func() { newStoreFunc = orig })

	cmd := newHistoryCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "No runs recorded.")
}
