package cf

import (
	"github.com/hsiuhsiu/cfkit-go/internal/bindings"
	"github.com/hsiuhsiu/cfkit-go/pkg/cfkit/arc"
)

// NewString creates a CFString holding a UTF-8 copy of s.
func NewString(s string) (*arc.R[String], error) {
	return StringClass.AdoptNonNull(bindings.CFStringCreate(s))
}

// String returns the contents as a Go string.
func (s String) String() string { return bindings.CFStringValue(s.live()) }
