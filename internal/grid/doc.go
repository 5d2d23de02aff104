// Package grid provides immutable rune storage for pipe-maze puzzles.
//
// A Grid is built once from puzzle text and never mutated afterwards. All
// accessors are bounds-checked: probing outside the grid returns ok=false
// instead of panicking, so neighbour checks read as ordinary conditionals.
//
// Coordinates follow screen convention: X grows to the right, Y grows
// downward, and (0, 0) is the top-left cell.
package grid
