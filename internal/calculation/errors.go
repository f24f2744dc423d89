package calculation

import "errors"

// ErrInvalidAssumptions marks economic assumptions the cash-flow generator
// rejects: discount rate <= -1 or a non-positive analysis period. Per-metric
// failure states that a batch run must survive (non-convergent IRR,
// never-achieved payback, undefined ratios) are reported as flags on the
// result instead.
var ErrInvalidAssumptions = errors.New("invalid economic assumptions")
