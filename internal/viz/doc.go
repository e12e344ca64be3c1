// Package viz draws equipotential lines in the terminal.
//
//   - [Canvas]: Braille dot matrix with a world coordinate mapping
//   - [Segments]: marching squares level-set tracer
//   - [Model]: Bubble Tea explorer that redraws on every parameter change
//
// # Key Bindings
//
//	Tab   - Select parameter (m1, m2, d, g)
//	↑/↓   - Scale selected parameter by 10%
//	N     - Toggle negation
//	L     - Cycle level strategy
//	R     - Reset
//	?     - Help
package viz
