package arc

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/hsiuhsiu/cfkit-go/pkg/cfkit/logging"
)

// LeakPolicy selects what the finalizer safety net does with an owned
// reference that becomes unreachable without Release.
type LeakPolicy int32

const (
	// LeakWarn logs the leak and keeps the foreign count. A borrowed view
	// obtained from the reference may still be in use, so releasing from a
	// finalizer could free an object under a running native call.
	LeakWarn LeakPolicy = iota
	// LeakIgnore installs no finalizer.
	LeakIgnore
	// LeakRelease logs the leak and releases the reference.
	LeakRelease
)

func (p LeakPolicy) String() string {
	switch p {
	case LeakWarn:
		return "warn"
	case LeakIgnore:
		return "ignore"
	case LeakRelease:
		return "release"
	default:
		return fmt.Sprintf("LeakPolicy(%d)", int32(p))
	}
}

// ParseLeakPolicy parses "warn", "ignore" or "release".
func ParseLeakPolicy(s string) (LeakPolicy, error) {
	switch s {
	case "warn", "":
		return LeakWarn, nil
	case "ignore":
		return LeakIgnore, nil
	case "release":
		return LeakRelease, nil
	default:
		return LeakWarn, fmt.Errorf("arc: unknown leak policy %q", s)
	}
}

var (
	policy      atomic.Int32
	outstanding atomic.Int64
)

// SetLeakPolicy changes the policy applied to references created afterwards.
// Existing references keep the policy they were created under.
func SetLeakPolicy(p LeakPolicy) { policy.Store(int32(p)) }

// CurrentLeakPolicy returns the active policy.
func CurrentLeakPolicy() LeakPolicy { return LeakPolicy(policy.Load()) }

// Outstanding returns the number of owned references that have been created
// and not yet released or transferred.
func Outstanding() int64 { return outstanding.Load() }

// noCopy makes go vet's copylocks check flag accidental copies of R.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// R is an owned reference: the sole accountable owner of one foreign retain
// count on a T. Release must be called exactly once, usually with defer
// right after the reference is obtained:
//
//	s, err := cf.NewString("hello")
//	if err != nil {
//		return err
//	}
//	defer s.Release()
//
// R is always handled by pointer. Passing the pointer around moves nothing;
// a second independent owner needs Retained.
type R[T Object] struct {
	_        noCopy
	obj      T
	typ      string
	rt       Runtime
	policy   LeakPolicy
	released atomic.Bool
}

func own[T Object](rt Runtime, typ string, obj T) *R[T] {
	r := &R[T]{obj: obj, typ: typ, rt: rt, policy: CurrentLeakPolicy()}
	outstanding.Add(1)
	if r.policy != LeakIgnore {
		runtime.SetFinalizer(r, (*R[T]).finalize)
	}
	return r
}

// Get returns the borrowed view. The view must not be used after Release.
func (r *R[T]) Get() T {
	if r == nil {
		Violate(NilHandle, "", 0)
	}
	if r.released.Load() {
		Violate(UseAfterRelease, r.typ, r.obj.Addr())
	}
	return r.obj
}

// Addr returns the foreign address, making *R usable wherever an Object is
// accepted.
func (r *R[T]) Addr() uintptr { return r.Get().Addr() }

// Retained returns a second, independent owner of the same object.
func (r *R[T]) Retained() *R[T] {
	obj := r.Get()
	r.rt.Retain(obj.Addr())
	return own(r.rt, r.typ, obj)
}

// Release gives the retain count back to the foreign runtime. Calling it
// twice panics with a DoubleRelease *ContractError.
func (r *R[T]) Release() {
	if r == nil {
		Violate(NilHandle, "", 0)
	}
	if !r.released.CompareAndSwap(false, true) {
		Violate(DoubleRelease, r.typ, r.obj.Addr())
	}
	runtime.SetFinalizer(r, nil)
	outstanding.Add(-1)
	r.rt.Release(r.obj.Addr())
}

// Transfer hands the retain count to a native call that consumes it and
// returns the raw view. No release happens on this side afterwards.
func (r *R[T]) Transfer() T {
	obj := r.Get()
	if !r.released.CompareAndSwap(false, true) {
		Violate(DoubleRelease, r.typ, obj.Addr())
	}
	runtime.SetFinalizer(r, nil)
	outstanding.Add(-1)
	return obj
}

// Released reports whether Release or Transfer has been called.
func (r *R[T]) Released() bool { return r.released.Load() }

func (r *R[T]) String() string {
	if r == nil {
		return "arc.R(nil)"
	}
	state := ""
	if r.released.Load() {
		state = " released"
	}
	return fmt.Sprintf("arc.R[%s](%#x%s)", r.typ, r.obj.Addr(), state)
}

func (r *R[T]) finalize() {
	if r.released.Load() {
		return
	}
	diag().Warn(context.Background(), "owned reference became unreachable without Release",
		"type", r.typ, logging.Addr("addr", r.obj.Addr()), "policy", r.policy.String())
	if r.policy == LeakRelease {
		r.Release()
	}
}
