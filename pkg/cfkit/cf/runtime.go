package cf

import (
	"github.com/hsiuhsiu/cfkit-go/internal/bindings"
	"github.com/hsiuhsiu/cfkit-go/pkg/cfkit/arc"
)

type cfRuntime struct{}

func (cfRuntime) Retain(addr uintptr) uintptr {
	if addr == 0 {
		arc.Violate(arc.NilHandle, "CFType", 0)
	}
	return bindings.CFRetain(addr)
}

func (cfRuntime) Release(addr uintptr) {
	if addr == 0 {
		arc.Violate(arc.NilHandle, "CFType", 0)
	}
	bindings.CFRelease(addr)
}

func (cfRuntime) TypeOf(addr uintptr) arc.Tag {
	if addr == 0 {
		arc.Violate(arc.NilHandle, "CFType", 0)
	}
	return arc.Tag(bindings.CFGetTypeID(addr))
}

// Runtime is the CoreFoundation retain/release boundary: CFRetain,
// CFRelease and CFGetTypeID.
var Runtime arc.Runtime = cfRuntime{}

// Declare builds the ownership machinery of a CoreFoundation subtype. typeID
// is the subtype's CF*GetTypeID function; nil declares a base type that
// every CoreFoundation object satisfies.
func Declare[T arc.Object](name string, typeID func() uint, wrap func(Type) T) *arc.Class[T] {
	var tag func() arc.Tag
	if typeID != nil {
		tag = func() arc.Tag { return arc.Tag(typeID()) }
	}
	return arc.Declare(name, Runtime, tag, func(addr uintptr) T { return wrap(Type{addr: addr}) })
}
