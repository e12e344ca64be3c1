// Package field samples a potential over a square grid.
//
// A [Field] holds the x and y sample sequences and the matrix of values,
// one row per y sample and one column per x sample. It satisfies the
// gonum/plot GridXYZ interface, so it can be handed straight to contour
// and heat map plotters.
//
// Rows are evaluated concurrently; the result is identical to a serial
// evaluation because every cell depends only on its own coordinates.
package field
