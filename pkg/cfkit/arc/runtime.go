package arc

// Tag identifies the concrete foreign type of an object at runtime: a
// CFTypeID for CoreFoundation objects, a Class pointer for Objective-C ones.
type Tag uintptr

// Runtime is the reference counting boundary of one foreign object system.
//
// Implementations forward straight to the native primitives (CFRetain,
// CFRelease, CFGetTypeID; objc_retain, objc_release, object_getClass). They
// must be safe for concurrent use to the extent the native runtime is; no
// locking is added here.
type Runtime interface {
	// Retain increments the foreign count of addr by one and returns addr.
	Retain(addr uintptr) uintptr
	// Release decrements the foreign count of addr by one. The caller must
	// not touch addr afterwards.
	Release(addr uintptr)
	// TypeOf returns the runtime type tag of addr.
	TypeOf(addr uintptr) Tag
}

// KindChecker is implemented by runtimes whose type tags form a hierarchy.
// When present, narrowing accepts instances of subclasses of the target.
type KindChecker interface {
	IsKindOf(addr uintptr, tag Tag) bool
}

// Object is implemented by every foreign handle type. Addr returns the raw
// foreign address for passing back into native calls; it must never be
// dereferenced from Go.
type Object interface {
	Addr() uintptr
}
