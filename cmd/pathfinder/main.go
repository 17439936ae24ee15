// Command pathfinder builds a random board, runs A* from start to end and
// draws the search in the terminal.
//
// Configuration comes from .env, PATHFINDER_* variables and flags; see
// loadConfig. Exit status: 0 found, 2 not found, 3 cancelled, 1 error.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/astargrid/astar"
	"github.com/katalvlaran/astargrid/gridgraph"
)

// Log colour constants.
const (
	logErrorColor = "\033[31m"
	logInfoColor  = "\033[32m"
)

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("[APP] [FATAL] %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	res, err := run(ctx, cfg, os.Stdout)
	if err != nil {
		log.Printf("%s[APP] [ERROR]%s %v", logErrorColor, colorReset, err)
		os.Exit(1)
	}
	switch res.Outcome {
	case astar.NotFound:
		os.Exit(2)
	case astar.Cancelled:
		os.Exit(3)
	}
}

// run builds the board described by cfg, searches it and draws the result
// to w.
func run(ctx context.Context, cfg Config, w io.Writer) (*astar.Result, error) {
	runID := uuid.New()
	logf := func(format string, args ...any) {
		log.Printf("%s[APP] [INFO]%s [run %s] %s", logInfoColor, colorReset, runID, fmt.Sprintf(format, args...))
	}

	g, err := gridgraph.New(cfg.Rows, gridgraph.WithWidth(cfg.Width))
	if err != nil {
		return nil, err
	}
	ed := gridgraph.NewEditor(g)
	if err := ed.SetStart(cfg.Start); err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	if err := ed.SetEnd(cfg.End); err != nil {
		return nil, fmt.Errorf("end: %w", err)
	}
	placed, err := g.Scatter(cfg.Density, rand.NewSource(cfg.Seed))
	if err != nil {
		return nil, err
	}
	g.RecomputeNeighbors()
	logf("board %dx%d, %d barriers, %d regions, seed %d", cfg.Rows, cfg.Rows, placed, len(g.Regions()), cfg.Seed)

	r := newRenderer(w, g, cfg.Color, cfg.Animate)
	onStep := func() error {
		if !cfg.Animate {
			return nil
		}
		if err := r.Frame(); err != nil {
			return err
		}
		if cfg.Delay <= 0 {
			return nil
		}
		select {
		case <-ctx.Done():
			return astar.ErrStop
		case <-time.After(cfg.Delay):
			return nil
		}
	}

	began := time.Now()
	res, err := astar.Search(g, cfg.Start, cfg.End, astar.WithContext(ctx), astar.WithOnStep(onStep))
	if err != nil {
		return nil, err
	}
	if err := r.Frame(); err != nil {
		return nil, err
	}

	switch res.Outcome {
	case astar.Found:
		logf("path found: cost %d, %d cells expanded, %d frames in %s", res.Cost, res.Expanded, r.frames, time.Since(began))
	case astar.NotFound:
		logf("no path from %v to %v: %d cells expanded, %d frames", cfg.Start, cfg.End, res.Expanded, r.frames)
	default:
		logf("search %s after %d expansions, %d frames", res.Outcome, res.Expanded, r.frames)
	}
	return res, nil
}
