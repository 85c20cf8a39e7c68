package cf

import (
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/hsiuhsiu/cfkit-go/internal/bindings"
	"github.com/hsiuhsiu/cfkit-go/pkg/cfkit/arc"
)

// TypeID is a CFTypeID: the runtime identity of a CoreFoundation type.
type TypeID uint

// Type is an opaque handle to any CoreFoundation object. Its zero value is a
// null handle; every method except String panics on it. Values come only
// from a Class declared with Declare.
type Type struct {
	addr uintptr
}

// TypeClass is the base class: every CoreFoundation object is a Type.
var TypeClass = Declare("CFType", nil, func(t Type) Type { return t })

// Addr returns the raw CFTypeRef.
func (t Type) Addr() uintptr { return t.addr }

func (t Type) live() uintptr {
	if t.addr == 0 {
		arc.Violate(arc.NilHandle, "CFType", 0)
	}
	return t.addr
}

// TypeID returns CFGetTypeID of the object.
func (t Type) TypeID() TypeID { return TypeID(bindings.CFGetTypeID(t.live())) }

// RetainCount returns CFGetRetainCount. It is meant for diagnostics and
// tests; constants and tagged pointers report arbitrary large values.
func (t Type) RetainCount() int { return bindings.CFGetRetainCount(t.live()) }

// Equal reports CFEqual.
func (t Type) Equal(other arc.Object) bool {
	if other == nil {
		arc.Violate(arc.NilHandle, "CFType", 0)
	}
	o := other.Addr()
	if o == 0 {
		arc.Violate(arc.NilHandle, "CFType", 0)
	}
	return bindings.CFEqual(t.live(), o)
}

// Hash returns CFHash.
func (t Type) Hash() uint { return bindings.CFHash(t.live()) }

// Description returns CFCopyDescription as a Go string.
func (t Type) Description() string { return bindings.CFCopyDescription(t.live()) }

// IsTaggedPtr reports whether the handle uses the tagged pointer encoding,
// in which case the value lives in the address itself and retain and release
// are no-ops. It is always false off darwin.
func (t Type) IsTaggedPtr() bool { return isTaggedPtr(t.live()) }

// Retained returns a new owner of t.
func (t Type) Retained() *arc.R[Type] { return TypeClass.Retain(t) }

func (t Type) String() string {
	if t.addr == 0 {
		return "cf.Type(nil)"
	}
	return fmt.Sprintf("cf.Type(%#x)", t.addr)
}

// TryAsString narrows t to String.
func (t Type) TryAsString() (String, bool) { return StringClass.TryAs(t) }

// TryAsNumber narrows t to Number.
func (t Type) TryAsNumber() (Number, bool) { return NumberClass.TryAs(t) }

// TryAsBoolean narrows t to Boolean.
func (t Type) TryAsBoolean() (Boolean, bool) { return BooleanClass.TryAs(t) }

// TryAsData narrows t to Data.
func (t Type) TryAsData() (Data, bool) { return DataClass.TryAs(t) }

// DefaultTypeCacheSize is the capacity of the type name cache.
const DefaultTypeCacheSize = 128

var typeNames atomic.Pointer[lru.Cache[TypeID, string]]

func init() {
	if err := SetTypeCacheSize(DefaultTypeCacheSize); err != nil {
		panic(err)
	}
}

// SetTypeCacheSize replaces the type name cache with an empty one of the
// given capacity.
func SetTypeCacheSize(n int) error {
	c, err := lru.New[TypeID, string](n)
	if err != nil {
		return fmt.Errorf("cf: type cache: %w", err)
	}
	typeNames.Store(c)
	return nil
}

// TypeIDDescription returns the runtime's name for a type id, such as
// "CFString". Unknown ids yield "".
func TypeIDDescription(id TypeID) string {
	c := typeNames.Load()
	if name, ok := c.Get(id); ok {
		return name
	}
	name := bindings.CFCopyTypeIDDescription(uint(id))
	if name != "" {
		c.Add(id, name)
	}
	return name
}
