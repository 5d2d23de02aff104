// Package solver runs the full pipe-maze pipeline over puzzle text.
//
// Text is normalized, parsed into a grid, traced for the canonical loop,
// the start tile is resolved, and enclosed cells are counted. Each solve is
// synchronous and shares nothing with other solves, so a Solver is safe for
// concurrent use.
package solver
