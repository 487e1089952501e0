// Package grid treats rectangular text input as a read-only 2-D array of
// decoded cell values with bounds-checked compass stepping.
//
// What:
//
//   - Grid[T] stores Width×Height cells row-major; cell (col,row) lives at
//     index col + Width*row.
//   - FromRows decodes one cell per rune through a caller-supplied decoder.
//   - Direction (East, North, West, South) moves a Point by one or more steps,
//     returning ok=false instead of leaving [0,Width)×[0,Height).
//   - MoveDirection fuses a step with the lookup of the destination cell, so
//     neighbor functions never need a separate bounds check.
//
// Why:
//
//   - Puzzle maps: pipes, mirrors, heat-loss digits, rocks.
//   - Implicit graphs: a Point plus auxiliary state is a natural search state
//     for the dijkstra, bfs and dfs packages.
//
// Complexity:
//
//   - FromRows:      O(W×H) time and memory.
//   - At, Step:      O(1).
//   - Find, All:     O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid:      no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths (or a cell buffer of the
//     wrong size).
//   - ErrInvalidCell:    the decoder rejected a rune.
//
// Out-of-bounds lookups are not errors: At and MoveDirection report ok=false.
package grid
