// Package loop discovers the closed pipe loop that passes through the start
// tile and infers the start tile's real shape.
//
// TRACING:
//
// The tracer is a depth-first search driven by an explicit worklist of
// Branch values instead of the call stack. Every branch owns its path and
// its visited set; when a cell offers more than one way forward the branch
// is forked so siblings never share mutable state. A branch ends in one of
// two terminal states:
//   - Closed: it stepped back onto the start after at least three cells
//   - DeadEnd: no unvisited neighbour accepts it
//
// The grid is finite and a branch never revisits a cell, so the search
// always terminates. The longest closed branch becomes the canonical Loop.
//
// NEIGHBOURS:
//
// A move from p toward d is valid only when both ends agree: the tile at p
// must accept an exit toward d and the tile at p+d must accept an entry
// moving in d. The start tile accepts everything until ResolveStart replaces
// it with a concrete connector.
package loop
