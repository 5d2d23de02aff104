// Package harness runs puzzle scenarios and compares their output against
// golden files.
//
// # Scenario Format
//
// Scenarios are YAML files:
//
//	name: small_square
//	description: "A single 3x3 loop"
//	grid: |
//	  .....
//	  .S-7.
//	  .|.|.
//	  .L-J.
//	  .....
//	expect:
//	  farthest: 4
//	  enclosed: 1
//
// grid_file may replace grid; it is resolved relative to the scenario file.
// A scenario that expects the puzzle to be rejected names the error code:
//
//	expect:
//	  error: NO_LOOP
//
// Unknown fields are rejected so typos fail loudly.
//
// # Golden Files
//
// Each scenario has a golden file holding a canonical JSON header line
// followed by the rendered loop. Regenerate them with:
//
//	go test ./internal/harness -update
//
// or with the CLI's test --update flag.
package harness
