// Package astar implements A* shortest-path search over a gridgraph.Grid
// with unit edge costs and the Manhattan heuristic.
//
// Notes on implementation choices:
//
//   - Cells are identified by gridgraph.Coord; all score tables are maps
//     keyed by it and are created fresh for every search.
//   - The frontier orders by (f_score, enqueue sequence). A queued cell
//     keeps the key it was enqueued with; a later improvement updates only
//     the score tables and its predecessor.
//   - Neighbours come from each Cell's stored list, so the caller must run
//     Grid.RecomputeNeighbors after changing barriers.
//   - Search is a loop over Stepper.Step; a UI can drive the Stepper
//     directly to interleave expansions with its own event handling.
package astar

import (
	"container/heap"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/astargrid/gridgraph"
)

// Search runs A* from start to end on g until end is dequeued, the
// frontier is exhausted, or the observer or context stops it.
//
// Returns:
//
//   - Found with the forward path and its cost.
//   - NotFound when end is unreachable given the current barriers.
//   - Cancelled when OnStep returned ErrStop or Ctx was done (err == nil),
//     or when OnStep returned any other error (err wraps it). A cell
//     that cannot be read back from the grid also ends as Cancelled.
//   - ErrInvalidInvocation, with a nil Result, for contract violations.
//
// Side effects: tags enqueued cells Open, expanded cells other than start
// Closed, and path cells Path; on success start and end get their own tags
// back. Barrier placement is never changed.
//
// Complexity:
//
//   - Time:  O(E log V) over the explored subgraph.
//   - Space: O(V) for the score tables and the frontier.
func Search(g *gridgraph.Grid, start, end gridgraph.Coord, opts ...Option) (*Result, error) {
	s, err := NewStepper(g, start, end, opts...)
	if err != nil {
		return nil, err
	}
	for {
		done, err := s.Step()
		if done {
			return s.Result(), err
		}
	}
}

// Stepper holds the mutable state of one search and advances it one
// dequeue-and-expand iteration at a time.
type Stepper struct {
	grid       *gridgraph.Grid
	start, end gridgraph.Coord
	opts       Options

	gScore     map[gridgraph.Coord]int
	fScore     map[gridgraph.Coord]int
	cameFrom   map[gridgraph.Coord]gridgraph.Coord
	open       frontier
	inFrontier map[gridgraph.Coord]struct{}
	seq        uint64

	current    gridgraph.Coord
	hasCurrent bool
	res        Result
}

// NewStepper validates the invocation and seeds the frontier with start.
// Nothing is enqueued when validation fails.
func NewStepper(g *gridgraph.Grid, start, end gridgraph.Coord, opts ...Option) (*Stepper, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validate(g, start, end); err != nil {
		return nil, err
	}

	s := &Stepper{
		grid:       g,
		start:      start,
		end:        end,
		opts:       o,
		gScore:     map[gridgraph.Coord]int{start: 0},
		fScore:     map[gridgraph.Coord]int{start: Manhattan(start, end)},
		cameFrom:   make(map[gridgraph.Coord]gridgraph.Coord),
		open:       make(frontier, 0, g.Rows()),
		inFrontier: make(map[gridgraph.Coord]struct{}),
	}
	heap.Init(&s.open)
	heap.Push(&s.open, &entry{at: start, f: s.fScore[start], seq: 0})
	s.inFrontier[start] = struct{}{}

	return s, nil
}

// validate checks the caller contract in order: grid, bounds, distinct
// endpoints, barriers.
func validate(g *gridgraph.Grid, start, end gridgraph.Coord) error {
	if g == nil {
		return fmt.Errorf("%w: grid is nil", ErrInvalidInvocation)
	}
	for _, c := range [...]gridgraph.Coord{start, end} {
		cell, err := g.Cell(c)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInvocation, err)
		}
		if cell.IsBarrier() {
			return fmt.Errorf("%w: endpoint %v is a barrier", ErrInvalidInvocation, c)
		}
	}
	if start == end {
		return fmt.Errorf("%w: start and end are both %v", ErrInvalidInvocation, start)
	}
	return nil
}

// Done reports whether the search has finished.
func (s *Stepper) Done() bool { return s.res.Outcome != Pending }

// Current returns the cell dequeued by the most recent Step.
func (s *Stepper) Current() (gridgraph.Coord, bool) { return s.current, s.hasCurrent }

// Result returns a copy of the search result so far.
func (s *Stepper) Result() *Result {
	r := s.res
	if r.Path != nil {
		r.Path = append([]gridgraph.Coord(nil), r.Path...)
	}
	return &r
}

// Cost returns the best known cost from start to c, or math.MaxInt if c
// has not been reached.
func (s *Stepper) Cost(c gridgraph.Coord) int {
	if g, ok := s.gScore[c]; ok {
		return g
	}
	return math.MaxInt
}

// Step performs one iteration: dequeue the best cell, finish if it is
// end, otherwise relax its neighbours, notify the observer and close it.
// It returns true once the search has finished; further calls are no-ops.
func (s *Stepper) Step() (bool, error) {
	if s.Done() {
		return true, nil
	}

	select {
	case <-s.opts.Ctx.Done():
		return s.stop(ErrStop)
	default:
	}

	if s.open.Len() == 0 {
		s.res.Outcome = NotFound
		return true, nil
	}

	item := heap.Pop(&s.open).(*entry)
	delete(s.inFrontier, item.at)
	current := item.at
	s.current, s.hasCurrent = current, true

	if current == s.end {
		return s.finish()
	}

	cell, err := s.grid.Cell(current)
	if err != nil {
		s.res.Outcome = Cancelled
		return true, fmt.Errorf("astar: expand %v: %w", current, err)
	}
	for _, nb := range cell.Neighbors() {
		s.relax(current, nb)
	}
	s.res.Expanded++

	if err := s.opts.OnStep(); err != nil {
		return s.stop(err)
	}

	if current != s.start {
		cell.MarkClosed()
	}
	return false, nil
}

// relax records a strictly shorter route to nb through current and puts
// nb on the frontier if it is not already queued. An already queued nb
// keeps its original frontier key.
func (s *Stepper) relax(current, nb gridgraph.Coord) {
	tentative := s.gScore[current] + 1
	if tentative >= s.Cost(nb) {
		return
	}
	s.cameFrom[nb] = current
	s.gScore[nb] = tentative
	f := tentative + Manhattan(nb, s.end)
	s.fScore[nb] = f

	if _, queued := s.inFrontier[nb]; queued {
		return
	}
	s.seq++
	heap.Push(&s.open, &entry{at: nb, f: f, seq: s.seq})
	s.inFrontier[nb] = struct{}{}
	if cell, err := s.grid.Cell(nb); err == nil {
		cell.MarkOpen()
	}
}

// finish reconstructs the path after end has been dequeued.
func (s *Stepper) finish() (bool, error) {
	trail, err := Reconstruct(s.grid, s.cameFrom, s.end, s.opts.OnStep)
	if err != nil {
		return s.stop(err)
	}

	path := make([]gridgraph.Coord, 0, len(trail)+1)
	path = append(path, s.start)
	for i := len(trail) - 1; i >= 0; i-- {
		path = append(path, trail[i])
	}

	if cell, err := s.grid.Cell(s.end); err == nil {
		cell.MarkEnd()
	}
	if cell, err := s.grid.Cell(s.start); err == nil {
		cell.MarkStart()
	}

	s.res.Outcome = Found
	s.res.Path = path
	s.res.Cost = s.gScore[s.end]
	return true, nil
}

// stop ends the search as Cancelled. ErrStop is a normal early exit; any
// other observer error is handed back to the caller.
func (s *Stepper) stop(err error) (bool, error) {
	s.res.Outcome = Cancelled
	if errors.Is(err, ErrStop) {
		return true, nil
	}
	return true, fmt.Errorf("astar: step observer: %w", err)
}
