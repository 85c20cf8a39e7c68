package arc

import (
	"fmt"
	"sync"

	"github.com/hsiuhsiu/cfkit-go/pkg/cfkit/osstatus"
)

// Class carries the ownership machinery of one foreign subtype T: how to
// wrap a raw address into T, how to retain and release it, and which runtime
// tag identifies it. One Class is declared per wrapper type, normally by
// generated code:
//
//	var StringClass = cf.Declare("CFString", bindings.CFStringGetTypeID,
//		func(t cf.Type) String { return String{t} })
//
// Every path that produces a T from a raw address goes through a Class, so
// the null checks and ownership bookkeeping live here once.
type Class[T Object] struct {
	name string
	rt   Runtime
	tag  func() Tag
	wrap func(addr uintptr) T
}

// Declare builds the Class for T. tag may be nil for a base type that every
// object of the runtime satisfies; otherwise it is resolved once, on first
// use, since native type ids are only valid after the framework has loaded.
func Declare[T Object](name string, rt Runtime, tag func() Tag, wrap func(addr uintptr) T) *Class[T] {
	if rt == nil {
		panic(fmt.Sprintf("arc.Declare(%s): nil runtime", name))
	}
	if wrap == nil {
		panic(fmt.Sprintf("arc.Declare(%s): nil wrap", name))
	}
	c := &Class[T]{name: name, rt: rt, wrap: wrap}
	if tag != nil {
		c.tag = sync.OnceValue(tag)
	}
	return c
}

// Name returns the foreign type name the class was declared with.
func (c *Class[T]) Name() string { return c.name }

// Runtime returns the runtime the class retains and releases through.
func (c *Class[T]) Runtime() Runtime { return c.rt }

// Tag returns the runtime tag of the class. ok is false for base classes.
func (c *Class[T]) Tag() (tag Tag, ok bool) {
	if c.tag == nil {
		return 0, false
	}
	return c.tag(), true
}

// Borrow wraps an address returned by an accessor that does not transfer
// ownership. A zero address means the accessor produced no value.
func (c *Class[T]) Borrow(addr uintptr) (T, bool) {
	if addr == 0 {
		var zero T
		return zero, false
	}
	return c.wrap(addr), true
}

// Adopt takes over the retain count a create call transferred to the caller.
func (c *Class[T]) Adopt(addr uintptr) *R[T] {
	if addr == 0 {
		Violate(NullAdopt, c.name, 0)
	}
	return own(c.rt, c.name, c.wrap(addr))
}

// AdoptNonNull adopts addr, or reports ErrNoObject for create calls that
// signal failure only by returning null.
func (c *Class[T]) AdoptNonNull(addr uintptr) (*R[T], error) {
	if addr == 0 {
		return nil, fmt.Errorf("%s: %w", c.name, ErrNoObject)
	}
	return own(c.rt, c.name, c.wrap(addr)), nil
}

// Create runs a create call of the status plus out-parameter shape. A
// nonzero status is mapped through errs (nil uses the bare code) and no
// reference is constructed, whatever the out parameter holds. A zero status
// with a null result reports ErrNoObject.
func (c *Class[T]) Create(errs *osstatus.Table, create func() (addr uintptr, status int32)) (*R[T], error) {
	addr, status := create()
	if status != 0 {
		if errs != nil {
			return nil, errs.Err(status)
		}
		return nil, osstatus.Status(status).Err()
	}
	return c.AdoptNonNull(addr)
}

// Retain returns a new owner of obj, adding one foreign retain count.
func (c *Class[T]) Retain(obj T) *R[T] {
	addr := obj.Addr()
	if addr == 0 {
		Violate(NilHandle, c.name, 0)
	}
	c.rt.Retain(addr)
	return own(c.rt, c.name, obj)
}

// Is reports whether obj's runtime type matches the class.
func (c *Class[T]) Is(obj Object) bool {
	if obj == nil {
		Violate(NilHandle, c.name, 0)
	}
	addr := obj.Addr()
	if addr == 0 {
		Violate(NilHandle, c.name, 0)
	}
	if c.tag == nil {
		return true
	}
	tag := c.tag()
	if kc, ok := c.rt.(KindChecker); ok {
		return kc.IsKindOf(addr, tag)
	}
	return c.rt.TypeOf(addr) == tag
}

// TryAs narrows obj to T when the runtime type identity matches. It is the
// only narrowing path; nothing else reinterprets a handle as another type.
func (c *Class[T]) TryAs(obj Object) (T, bool) {
	if !c.Is(obj) {
		var zero T
		return zero, false
	}
	return c.wrap(obj.Addr()), true
}
