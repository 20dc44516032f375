package renderer

import "errors"

var (
	ErrInvalidDimensions = errors.New("renderer: frame dimensions must be positive")
	ErrNoScene           = errors.New("renderer: no scene defined")
	ErrWindowClosed      = errors.New("renderer: preview window closed unexpectedly")
)
