package loop

import (
	"github.com/roach88/pipemaze/internal/grid"
	"github.com/roach88/pipemaze/internal/pipe"
)

// Stats summarizes one exploration from the start tile.
type Stats struct {
	Branches int `json:"branches"`  // branch values created, forks included
	Closed   int `json:"closed"`    // branches that returned to the start
	DeadEnds int `json:"dead_ends"` // branches discarded without closing
}

// Loop is the canonical closed path through the start tile.
// It is read-only once returned by Trace.
type Loop struct {
	cells []grid.Position
	index map[grid.Position]int
	stats Stats
}

func newLoop(cells []grid.Position, stats Stats) *Loop {
	l := &Loop{
		cells: make([]grid.Position, len(cells)),
		index: make(map[grid.Position]int, len(cells)),
		stats: stats,
	}
	copy(l.cells, cells)
	for i, p := range l.cells {
		l.index[p] = i
	}
	return l
}

// Start returns the start tile's position.
func (l *Loop) Start() grid.Position { return l.cells[0] }

// Len returns the number of distinct cells on the loop.
func (l *Loop) Len() int { return len(l.cells) }

// Farthest returns the step count from the start to the farthest loop cell
// along the loop, which is half the loop length in either direction.
func (l *Loop) Farthest() int { return len(l.cells) / 2 }

// Cells returns the loop cells in traversal order, start first.
func (l *Loop) Cells() []grid.Position {
	out := make([]grid.Position, len(l.cells))
	copy(out, l.cells)
	return out
}

// Contains reports whether p lies on the loop.
func (l *Loop) Contains(p grid.Position) bool {
	_, ok := l.Index(p)
	return ok
}

// Index returns p's position in traversal order, start at 0.
func (l *Loop) Index(p grid.Position) (int, bool) {
	i, ok := l.index[p]
	return i, ok
}

// Stats returns exploration statistics gathered while tracing.
func (l *Loop) Stats() Stats { return l.stats }

// FindStart locates the unique start tile.
func FindStart(g *grid.Grid) (grid.Position, error) {
	starts := g.FindAll(func(r rune) bool { return r == pipe.Start })
	switch len(starts) {
	case 0:
		return grid.Position{}, newTraceError(ErrCodeMissingStart, nil, "grid has no start tile")
	case 1:
		return starts[0], nil
	default:
		return grid.Position{}, newTraceError(ErrCodeDuplicateStart, &starts[0],
			"grid has %d start tiles, second at %s", len(starts), starts[1])
	}
}

// Trace finds the canonical loop: the longest closed branch from the start.
// Ties go to the branch discovered first.
func Trace(g *grid.Grid) (*Loop, error) {
	start, err := FindStart(g)
	if err != nil {
		return nil, err
	}

	branches, stats := Explore(g, start)

	var best *Branch
	for _, b := range branches {
		if b.state != Closed {
			continue
		}
		if best == nil || b.Len() > best.Len() {
			best = b
		}
	}
	if best == nil {
		return nil, newTraceError(ErrCodeNoLoop, &start,
			"all %d branches dead-ended", stats.DeadEnds)
	}

	return newLoop(best.path[:len(best.path)-1], stats), nil
}

// Explore runs the backtracking search from start and returns every
// terminal branch in the order it finished.
func Explore(g *grid.Grid, start grid.Position) ([]*Branch, Stats) {
	stats := Stats{Branches: 1}
	work := []*Branch{newBranch(start)}
	var done []*Branch

	for len(work) > 0 {
		b := work[len(work)-1]
		work = work[:len(work)-1]

		var moves []grid.Position
		closing := false
		for _, q := range neighbours(g, b.head()) {
			switch {
			case b.closes(q):
				closing = true
			case b.hasVisited(q):
			default:
				moves = append(moves, q)
			}
		}

		if !closing && len(moves) == 0 {
			b.state = DeadEnd
			stats.DeadEnds++
			done = append(done, b)
			continue
		}

		if closing {
			c := b
			if len(moves) > 0 {
				c = b.fork()
				stats.Branches++
			}
			c.close()
			stats.Closed++
			done = append(done, c)
		}

		// Pushed in reverse so the first direction is popped first. The
		// parent branch takes moves[0] and is mutated last, after every
		// sibling has been forked from it.
		for i := len(moves) - 1; i >= 0; i-- {
			next := b
			if i > 0 {
				next = b.fork()
				stats.Branches++
			}
			next.extend(moves[i])
			work = append(work, next)
		}
	}

	return done, stats
}

// neighbours returns the moves from p on which both tiles agree, in
// direction order.
func neighbours(g *grid.Grid, p grid.Position) []grid.Position {
	tile, ok := g.At(p)
	if !ok {
		return nil
	}

	var out []grid.Position
	for _, d := range grid.Directions {
		if !pipe.AcceptsExit(tile, d) {
			continue
		}
		q := p.Step(d)
		next, ok := g.At(q)
		if !ok || !pipe.AcceptsEntry(next, d) {
			continue
		}
		out = append(out, q)
	}
	return out
}
