package loop

import (
	"maps"

	"github.com/roach88/pipemaze/internal/grid"
)

// BranchState is the lifecycle state of a Branch.
type BranchState int

const (
	// Active branches are still on the worklist.
	Active BranchState = iota
	// Closed branches returned to the start and form a loop.
	Closed
	// DeadEnd branches ran out of moves without closing.
	DeadEnd
)

func (s BranchState) String() string {
	switch s {
	case Active:
		return "active"
	case Closed:
		return "closed"
	case DeadEnd:
		return "dead-end"
	}
	return "unknown"
}

// Branch is one candidate path grown from the start.
//
// A closed branch's path ends with the start position repeated, so its
// length is one more than the number of distinct cells.
type Branch struct {
	path    []grid.Position
	visited map[grid.Position]struct{}
	state   BranchState
}

func newBranch(start grid.Position) *Branch {
	return &Branch{
		path:    []grid.Position{start},
		visited: map[grid.Position]struct{}{start: {}},
		state:   Active,
	}
}

// State returns the branch's lifecycle state.
func (b *Branch) State() BranchState { return b.state }

// Len returns the number of positions on the path, including the repeated
// start of a closed branch.
func (b *Branch) Len() int { return len(b.path) }

// Path returns a copy of the branch's positions.
func (b *Branch) Path() []grid.Position {
	out := make([]grid.Position, len(b.path))
	copy(out, b.path)
	return out
}

func (b *Branch) start() grid.Position { return b.path[0] }

func (b *Branch) head() grid.Position { return b.path[len(b.path)-1] }

func (b *Branch) hasVisited(p grid.Position) bool {
	_, ok := b.visited[p]
	return ok
}

// closes reports whether stepping onto p would close the loop.
func (b *Branch) closes(p grid.Position) bool {
	return p == b.start() && len(b.path) >= 3
}

// fork returns an independent copy of an active branch.
func (b *Branch) fork() *Branch {
	path := make([]grid.Position, len(b.path), len(b.path)+1)
	copy(path, b.path)
	return &Branch{path: path, visited: maps.Clone(b.visited), state: b.state}
}

func (b *Branch) extend(p grid.Position) {
	b.path = append(b.path, p)
	b.visited[p] = struct{}{}
}

func (b *Branch) close() {
	b.path = append(b.path, b.start())
	b.state = Closed
}
