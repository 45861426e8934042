package sentiment

import "errors"

var (
	ErrEmptyText          = errors.New("please enter some text to analyze")
	ErrInvalidArtifact    = errors.New("invalid artifact")
	ErrDimensionMismatch  = errors.New("feature dimension mismatch")
	ErrUnsupportedPattern = errors.New("unsupported token pattern")
)
