// Package render draws diagnostic character grids for wire panels.
//
// What:
//
//   - Grid renders a wire.Panel into a multi-line string: 'O' at the
//     origin, 'X' at crossovers, '+' at corners, '=' and '|' along
//     horizontal and vertical runs, '.' elsewhere, rows emitted with Y
//     descending. Optional axis labels frame the grid.
//   - View shows the same grid in an interactive terminal viewer
//     (gizak/termui); quit with q, Esc or Ctrl-C.
//
// Why:
//
//   - Eyeballing a small panel beats decoding coordinate lists when a
//     crossover result looks wrong.
//
// Everything here is presentation only, built from the same Segment and
// crossover primitives as the queries; the output carries no stability
// contract beyond visual fidelity.
//
// Errors:
//
//   - ErrGridTooLarge: the panel's bounding box exceeds Options.MaxCells.
package render
