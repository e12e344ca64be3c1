package levels

import "errors"

var (
	// ErrUnknownStrategy indicates a level strategy name that is not registered.
	ErrUnknownStrategy = errors.New("levels: unknown strategy")

	// ErrLevelDomain indicates field extrema that cannot be used as
	// logarithmic exponents, or levels that overflowed.
	ErrLevelDomain = errors.New("levels: extrema outside logarithmic domain")

	// ErrLevelCount indicates fewer than two requested levels.
	ErrLevelCount = errors.New("levels: need at least two levels")
)
