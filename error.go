package bump

import "errors"

var (
	ErrOutOfMemory     = errors.New("out of memory")
	ErrOutOfRange      = errors.New("out of range")
	ErrShrinkBelowBase = errors.New("shrink below base")
	ErrUnsupported     = errors.New("unsupported")
)
