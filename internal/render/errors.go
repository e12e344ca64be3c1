package render

import "errors"

var (
	// ErrFormat indicates an output file extension the plotter cannot write.
	ErrFormat = errors.New("render: unsupported output format")

	// ErrNoLevels indicates an empty level sequence.
	ErrNoLevels = errors.New("render: no contour levels")
)
