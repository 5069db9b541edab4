// Package subsetsum: parallel fan-out of the branch-and-bound tree.
//
// The tree is first expanded breadth-first, under the same settle rules as
// the sequential search, until the frontier holds at least Workers states
// (or nothing is left to branch). Every frontier state is then searched by
// its own engine inside an errgroup limited to Workers goroutines.
//
// Aggregation is an OR with first-success-wins: a worker that reaches Found
// returns errFound, which cancels the group context and with it every
// sibling. The only shared mutable data are that context and the stats
// merge under a mutex; the Instance tables are read-only.

package subsetsum

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// errFound is the internal signal that stops the group on first success.
var errFound = errors.New("subsetsum: found")

// state is one frontier node of the search tree.
type state struct {
	i    int
	curr int64
}

// expand grows the frontier breadth-first until it holds ≥ width states.
// A non-NotFound outcome (Found or Aborted) settles the whole search.
func (e *bbEngine) expand(width int) ([]state, Outcome) {
	level := []state{{i: 0, curr: 0}}

	var (
		next     []state
		branched bool
		s        state
	)
	for len(level) > 0 && len(level) < width {
		next = make([]state, 0, 2*len(level))
		branched = false
		for _, s = range level {
			if cancelled(e.done) {
				return nil, Aborted
			}
			if out, ok := e.bound(s.i, s.curr); ok {
				if out == Found {
					return nil, Found
				}
				continue
			}
			if e.isLeaf(s.i) || s.i >= e.n {
				next = append(next, s)
				continue
			}
			e.stats.Nodes++
			branched = true
			if nc := s.curr + e.items[s.i]; nc <= e.target {
				next = append(next, state{i: s.i + 1, curr: nc})
			}
			next = append(next, state{i: s.i + 1, curr: s.curr})
		}
		level = next
		if !branched {
			break
		}
	}

	return level, NotFound
}

// parallelSearch evaluates inst with o.Workers goroutines.
func parallelSearch(ctx context.Context, inst Instance, o Options) (Outcome, Stats) {
	root := newEngine(inst, o.MIMThreshold, ctx.Done())
	frontier, out := root.expand(o.Workers)
	stats := root.stats
	if out != NotFound || len(frontier) == 0 {
		return out, stats
	}

	var (
		mu      sync.Mutex
		aborted atomic.Bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for _, s := range frontier {
		// Stop launching once the group is done: either a sibling found
		// the target (Wait reports errFound) or the parent was cancelled.
		if gctx.Err() != nil {
			aborted.Store(true)
			break
		}
		g.Go(func() error {
			e := newEngine(inst, o.MIMThreshold, gctx.Done())
			r := e.search(s.i, s.curr)

			mu.Lock()
			stats.add(e.stats)
			stats.Tasks++
			mu.Unlock()

			switch r {
			case Found:
				return errFound
			case Aborted:
				aborted.Store(true)
			}

			return nil
		})
	}

	err := g.Wait()
	switch {
	case errors.Is(err, errFound):
		return Found, stats
	case aborted.Load():
		return Aborted, stats
	default:
		return NotFound, stats
	}
}
