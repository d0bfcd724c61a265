package main

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, slog.New(slog.DiscardHandler), config{
		ChunkSize: 4,
		Allocs:    []int{3, 3, 1, 0},
		Clones:    1,
	})
	require.NoError(t, err)
	assert.Equal(t, "chunk 0: 4/4 slots [0,2] [3,3] [4,3]\n"+
		"chunk 1: 3/4 slots [0,2]\n"+
		"handles=2 chunks=2 blocks=4 in_use=7 capacity=8 utilization=87.50%\n", out.String())
}

func TestRunCapacityError(t *testing.T) {
	var out bytes.Buffer
	var logs bytes.Buffer
	err := run(&out, slog.New(slog.NewTextHandler(&logs, nil)), config{
		ChunkSize: 4,
		Allocs:    []int{5, 2},
	})
	require.EqualError(t, err, "1 of 2 allocations failed")
	assert.Contains(t, out.String(), "chunk 0: 2/4 slots [0,1]")
	assert.Contains(t, logs.String(), "allocation failed")
	assert.Contains(t, logs.String(), "released allocator")
}

func TestFlags(t *testing.T) {
	var cfg config
	fs := newFlagSet(&cfg)
	require.NoError(t, fs.Parse([]string{"-c", "16", "-a", "1,2", "--alloc", "3", "--clones", "2", "-L", "debug"}))

	assert.Equal(t, 16, cfg.ChunkSize)
	assert.Equal(t, []int{1, 2, 3}, cfg.Allocs)
	assert.Equal(t, 2, cfg.Clones)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel.Level())
}

func TestRunInvalidClones(t *testing.T) {
	err := run(&bytes.Buffer{}, slog.New(slog.DiscardHandler), config{Clones: -1})
	require.Error(t, err)
}
