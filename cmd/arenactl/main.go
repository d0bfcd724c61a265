// Command arenactl runs a sequence of allocations against a chunk allocator
// and prints the resulting chunk layout.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	arena "github.com/pavanmanishd/chunkarena"
	"github.com/pavanmanishd/chunkarena/internal/flagx"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

const EnvPrefix = "ARENACTL_"

type config struct {
	ChunkSize int
	Allocs    []int
	Clones    int
	LogLevel  *slog.LevelVar
	LogJSON   bool
	Help      bool
}

func newFlagSet(cfg *config) *pflag.FlagSet {
	fs := pflag.NewFlagSet("arenactl", pflag.ContinueOnError)
	fs.IntVarP(&cfg.ChunkSize, "chunk-size", "c", arena.DefaultChunkSize, "slots per chunk")
	fs.IntSliceVarP(&cfg.Allocs, "alloc", "a", nil, "slot counts to allocate, in order")
	fs.IntVar(&cfg.Clones, "clones", 0, "extra handles sharing the allocator (allocations rotate across handles)")
	cfg.LogLevel = flagx.LevelP(fs, "log-level", "L", slog.LevelInfo, "log level")
	fs.BoolVar(&cfg.LogJSON, "log-json", false, "use json logs")
	fs.BoolVarP(&cfg.Help, "help", "h", false, "show this help text")
	return fs
}

func main() {
	var cfg config
	fs := newFlagSet(&cfg)
	if err := flagx.ParseEnv(fs, EnvPrefix, os.Environ()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if cfg.Help || fs.NArg() != 0 {
		fmt.Printf("usage: %s [options]\n%s", os.Args[0], fs.FlagUsages())
		if cfg.Help {
			return
		}
		os.Exit(2)
	}

	if cfg.LogJSON {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: cfg.LogLevel,
		})))
	} else {
		slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level: cfg.LogLevel,
		})))
	}

	if err := run(os.Stdout, slog.Default(), cfg); err != nil {
		slog.Error("failed to run", "error", err)
		os.Exit(1)
	}
}

func run(w io.Writer, logger *slog.Logger, cfg config) error {
	if cfg.Clones < 0 {
		return errors.Errorf("invalid clone count %d", cfg.Clones)
	}

	a := arena.NewChunkAllocator[byte](cfg.ChunkSize,
		arena.WithLogger(logger),
		arena.WithOnFree(func(m arena.AllocatorMetrics) {
			logger.Info("released allocator", "chunks", m.NumChunks, "slots_in_use", m.SizeInUse)
		}),
	)
	handles := []*arena.ChunkAllocator[byte]{a}
	for i := 0; i < cfg.Clones; i++ {
		handles = append(handles, a.Clone())
	}
	defer func() {
		for _, h := range handles {
			h.Release()
		}
	}()

	var failed int
	for i, n := range cfg.Allocs {
		h := i % len(handles)
		s, err := handles[h].Allocate(n)
		if err != nil {
			logger.Error("allocation failed", "slots", n, "handle", h, "error", err)
			failed++
			continue
		}
		logger.Debug("allocated", "slots", len(s), "handle", h)
	}

	for _, c := range a.Layout() {
		var used int
		if len(c.Blocks) > 0 {
			used = c.Blocks[len(c.Blocks)-1].End() + 1
		}
		fmt.Fprintf(w, "chunk %d: %d/%d slots", c.Index, used, c.Size)
		for _, b := range c.Blocks {
			fmt.Fprintf(w, " [%d,%d]", b.Start, b.End())
		}
		fmt.Fprintln(w)
	}
	m := a.Metrics()
	fmt.Fprintf(w, "handles=%d chunks=%d blocks=%d in_use=%d capacity=%d utilization=%.2f%%\n",
		a.RefCount(), m.NumChunks, m.NumBlocks, m.SizeInUse, m.Capacity, m.Utilization*100)

	if failed > 0 {
		return errors.Errorf("%d of %d allocations failed", failed, len(cfg.Allocs))
	}
	return nil
}
