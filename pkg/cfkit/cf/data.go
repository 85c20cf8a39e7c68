package cf

import (
	"github.com/hsiuhsiu/cfkit-go/internal/bindings"
	"github.com/hsiuhsiu/cfkit-go/pkg/cfkit/arc"
)

// NewData creates an immutable CFData holding a copy of b.
func NewData(b []byte) (*arc.R[Data], error) {
	return DataClass.AdoptNonNull(bindings.CFDataCreate(b))
}

// Bytes returns a copy of the contents.
func (d Data) Bytes() []byte { return bindings.CFDataBytes(d.live()) }

// Len returns the length in bytes.
func (d Data) Len() int { return bindings.CFDataGetLength(d.live()) }
