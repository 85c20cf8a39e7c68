package ns

import (
	"fmt"

	"github.com/hsiuhsiu/cfkit-go/internal/bindings"
	"github.com/hsiuhsiu/cfkit-go/pkg/cfkit/arc"
)

// Id is an opaque handle to any Objective-C object. The zero value is a null
// handle; every method except String panics on it.
type Id struct {
	addr uintptr
}

// IdClass is the base class: every Objective-C object is an Id.
var IdClass = Declare("NSObject", nil, func(id Id) Id { return id })

// Addr returns the raw object pointer.
func (id Id) Addr() uintptr { return id.addr }

func (id Id) live() uintptr {
	if id.addr == 0 {
		arc.Violate(arc.NilHandle, "NSObject", 0)
	}
	return id.addr
}

// ClassName returns the name of the object's runtime class, which is often
// a private subclass such as __NSCFString.
func (id Id) ClassName() string {
	return bindings.ObjcClassName(bindings.ObjcGetClass(id.live()))
}

// IsKindOf reports whether the object is an instance of the named class or
// one of its subclasses. Unknown class names report false.
func (id Id) IsKindOf(className string) bool {
	cls := bindings.ObjcLookUpClass(className)
	if cls == 0 {
		return false
	}
	return bindings.ObjcIsKindOfClass(id.live(), cls)
}

// RetainCount returns retainCount. Tagged pointers and singletons report
// arbitrary large values.
func (id Id) RetainCount() int { return bindings.ObjcRetainCount(id.live()) }

// Description returns -description.
func (id Id) Description() string { return bindings.ObjcDescription(id.live()) }

// Retained returns a new owner of id.
func (id Id) Retained() *arc.R[Id] { return IdClass.Retain(id) }

func (id Id) String() string {
	if id.addr == 0 {
		return "ns.Id(nil)"
	}
	return fmt.Sprintf("ns.Id(%#x)", id.addr)
}
