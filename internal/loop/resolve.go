package loop

import (
	"github.com/roach88/pipemaze/internal/grid"
	"github.com/roach88/pipemaze/internal/pipe"
)

// StartEdges returns the directions from the start toward its two loop
// neighbours: the cell after it and the cell before it in traversal order.
func StartEdges(l *Loop) (grid.Direction, grid.Direction, error) {
	start := l.Start()
	a, okA := start.DirectionTo(l.cells[1])
	b, okB := start.DirectionTo(l.cells[len(l.cells)-1])
	if !okA || !okB {
		return 0, 0, newTraceError(ErrCodeUnresolvedStart, &start,
			"loop neighbours %s and %s are not adjacent to the start", l.cells[1], l.cells[len(l.cells)-1])
	}
	return a, b, nil
}

// ResolveStart infers which connector the start tile stands for. The result
// is an override for enclosure classification only; neither the grid nor
// the loop is modified.
func ResolveStart(l *Loop) (rune, error) {
	a, b, err := StartEdges(l)
	if err != nil {
		return 0, err
	}
	shape, ok := pipe.ShapeFor(a, b)
	if !ok {
		start := l.Start()
		return 0, newTraceError(ErrCodeUnresolvedStart, &start,
			"no connector joins %s and %s", a, b)
	}
	return shape, nil
}
