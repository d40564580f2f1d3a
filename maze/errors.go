package maze

import "errors"

// Configuration errors are returned before any run state exists.
// ErrOutOfBounds signals a broken invariant and is never expected at runtime.
var (
	ErrInvalidDimensions   = errors.New("maze: dimensions out of range")
	ErrInvalidStep         = errors.New("maze: step must be at least 1")
	ErrInvalidHeadCount    = errors.New("maze: head count must be at least 1")
	ErrInvalidSwitchChance = errors.New("maze: switch chance must be within [0, 100]")
	ErrUnknownMode         = errors.New("maze: unknown exploration mode")
	ErrInvalidStart        = errors.New("maze: invalid head start")
	ErrOutOfBounds         = errors.New("maze: point out of bounds")
)
