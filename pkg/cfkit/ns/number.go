package ns

import (
	"github.com/hsiuhsiu/cfkit-go/internal/bindings"
	"github.com/hsiuhsiu/cfkit-go/pkg/cfkit/arc"
)

// NewNumber creates an NSNumber holding v.
func NewNumber(v int64) (*arc.R[Number], error) {
	return NumberClass.AdoptNonNull(bindings.NSNumberCreateInt64(v))
}

// NewNumberFloat64 creates an NSNumber holding v.
func NewNumberFloat64(v float64) (*arc.R[Number], error) {
	return NumberClass.AdoptNonNull(bindings.NSNumberCreateFloat64(v))
}

// Int64 returns longLongValue, truncating floating point values.
func (n Number) Int64() int64 { return bindings.NSNumberInt64(n.live()) }

// Float64 returns doubleValue.
func (n Number) Float64() float64 { return bindings.NSNumberFloat64(n.live()) }
