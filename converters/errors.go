package converters

import "errors"

var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to a To* function.
	ErrNilGraph = errors.New("converters: graph is nil")

	// ErrInvalidMatrix indicates a matrix that is not square, has a non-zero
	// diagonal, or holds NaN/Inf entries.
	ErrInvalidMatrix = errors.New("converters: invalid adjacency matrix")

	// ErrLabelCount indicates that the label slice does not match the matrix size.
	ErrLabelCount = errors.New("converters: label count does not match matrix size")

	// ErrEmptyLabel indicates an edge or adjacency entry with an empty endpoint label.
	ErrEmptyLabel = errors.New("converters: empty node label")
)
