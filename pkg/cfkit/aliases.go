package cfkit

import "github.com/hsiuhsiu/cfkit-go/pkg/cfkit/arc"

// Aliases for the ownership types most callers name directly.

// LeakPolicy is an alias for arc.LeakPolicy.
type LeakPolicy = arc.LeakPolicy

// ContractError is an alias for arc.ContractError.
type ContractError = arc.ContractError

// Leak policies re-exported from arc.
const (
	LeakWarn    = arc.LeakWarn
	LeakIgnore  = arc.LeakIgnore
	LeakRelease = arc.LeakRelease
)

// ErrContract is wrapped by every contract violation panic.
var ErrContract = arc.ErrContract

// Outstanding returns the number of live owned references in the process.
func Outstanding() int64 { return arc.Outstanding() }
