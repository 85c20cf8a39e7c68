package cf

import (
	"github.com/hsiuhsiu/cfkit-go/internal/bindings"
	"github.com/hsiuhsiu/cfkit-go/pkg/cfkit/arc"
)

// NewNumberInt64 creates a CFNumber of type kCFNumberSInt64Type.
func NewNumberInt64(v int64) (*arc.R[Number], error) {
	return NumberClass.AdoptNonNull(bindings.CFNumberCreateInt64(v))
}

// NewNumberFloat64 creates a CFNumber of type kCFNumberFloat64Type.
func NewNumberFloat64(v float64) (*arc.R[Number], error) {
	return NumberClass.AdoptNonNull(bindings.CFNumberCreateFloat64(v))
}

// Int64 returns the value as an int64. ok is false if the conversion lost
// information, as for 1.5.
func (n Number) Int64() (v int64, ok bool) { return bindings.CFNumberInt64(n.live()) }

// Float64 returns the value as a float64. ok is false if the conversion lost
// information.
func (n Number) Float64() (v float64, ok bool) { return bindings.CFNumberFloat64(n.live()) }

// IsFloat reports whether the number stores a floating point value.
func (n Number) IsFloat() bool { return bindings.CFNumberIsFloat(n.live()) }
