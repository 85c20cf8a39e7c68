package ns

import (
	"github.com/hsiuhsiu/cfkit-go/internal/bindings"
	"github.com/hsiuhsiu/cfkit-go/pkg/cfkit/arc"
)

type objcRuntime struct{}

func (objcRuntime) Retain(addr uintptr) uintptr {
	if addr == 0 {
		arc.Violate(arc.NilHandle, "NSObject", 0)
	}
	return bindings.ObjcRetain(addr)
}

func (objcRuntime) Release(addr uintptr) {
	if addr == 0 {
		arc.Violate(arc.NilHandle, "NSObject", 0)
	}
	bindings.ObjcRelease(addr)
}

func (objcRuntime) TypeOf(addr uintptr) arc.Tag {
	if addr == 0 {
		arc.Violate(arc.NilHandle, "NSObject", 0)
	}
	return arc.Tag(bindings.ObjcGetClass(addr))
}

func (objcRuntime) IsKindOf(addr uintptr, tag arc.Tag) bool {
	if tag == 0 {
		return false
	}
	return bindings.ObjcIsKindOfClass(addr, uintptr(tag))
}

// Runtime is the Objective-C retain/release boundary: objc_retain,
// objc_release and object_getClass, with subclass-aware narrowing.
var Runtime arc.Runtime = objcRuntime{}

// ClassNamed returns a lookup of the named class for use as a Declare tag.
// The lookup yields 0 when the class does not exist on the running system,
// and nothing narrows to a missing class.
func ClassNamed(name string) func() uintptr {
	return func() uintptr { return bindings.ObjcLookUpClass(name) }
}

var (
	classNSString = ClassNamed("NSString")
	classNSNumber = ClassNamed("NSNumber")
	classNSArray  = ClassNamed("NSArray")
)

// Declare builds the ownership machinery of an Objective-C class. class
// resolves the class pointer and is called once; nil declares a base type
// that every object satisfies.
func Declare[T arc.Object](name string, class func() uintptr, wrap func(Id) T) *arc.Class[T] {
	var tag func() arc.Tag
	if class != nil {
		tag = func() arc.Tag { return arc.Tag(class()) }
	}
	return arc.Declare(name, Runtime, tag, func(addr uintptr) T { return wrap(Id{addr: addr}) })
}
