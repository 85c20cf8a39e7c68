package at

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/hsiuhsiu/cfkit-go/internal/bindings"
	"github.com/hsiuhsiu/cfkit-go/pkg/cfkit/arc"
)

// Unit is the single owner of an AudioComponentInstance. Close disposes the
// instance; a finalizer disposes units dropped without Close.
type Unit struct {
	mu   sync.Mutex
	inst uintptr
}

func newUnit(inst uintptr) *Unit {
	u := &Unit{inst: inst}
	runtime.SetFinalizer(u, (*Unit).Close)
	return u
}

// with runs fn on the live instance while holding the unit lock, so Close
// cannot dispose it mid-call.
func (u *Unit) with(fn func(inst uintptr) int32) error {
	if u == nil {
		arc.Violate(arc.NilHandle, "AudioUnit", 0)
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.inst == 0 {
		return ErrUnitClosed
	}
	return unitErrs.Err(fn(u.inst))
}

// Initialize allocates the unit's render resources.
func (u *Unit) Initialize() error {
	if err := u.with(bindings.AudioUnitInitialize); err != nil {
		return fmt.Errorf("at: initialize: %w", err)
	}
	return nil
}

// Uninitialize frees the render resources allocated by Initialize.
func (u *Unit) Uninitialize() error {
	if err := u.with(bindings.AudioUnitUninitialize); err != nil {
		return fmt.Errorf("at: uninitialize: %w", err)
	}
	return nil
}

// Float64Property reads a Float64 valued property.
func (u *Unit) Float64Property(prop PropID, scope Scope, el Element) (float64, error) {
	var v float64
	err := u.with(func(inst uintptr) int32 {
		var status int32
		v, status = bindings.AudioUnitGetFloat64Property(inst, uint32(prop), uint32(scope), uint32(el))
		return status
	})
	if err != nil {
		return 0, fmt.Errorf("at: get property %d: %w", prop, err)
	}
	return v, nil
}

// SetFloat64Property writes a Float64 valued property.
func (u *Unit) SetFloat64Property(prop PropID, scope Scope, el Element, v float64) error {
	err := u.with(func(inst uintptr) int32 {
		return bindings.AudioUnitSetFloat64Property(inst, uint32(prop), uint32(scope), uint32(el), v)
	})
	if err != nil {
		return fmt.Errorf("at: set property %d: %w", prop, err)
	}
	return nil
}

// SampleRate returns the sample rate of one bus.
func (u *Unit) SampleRate(scope Scope, el Element) (float64, error) {
	return u.Float64Property(PropSampleRate, scope, el)
}

// SetSampleRate sets the sample rate of one bus.
func (u *Unit) SetSampleRate(scope Scope, el Element, hz float64) error {
	return u.SetFloat64Property(PropSampleRate, scope, el, hz)
}

// Close disposes the instance. Closing twice returns ErrUnitClosed.
func (u *Unit) Close() error {
	if u == nil {
		arc.Violate(arc.NilHandle, "AudioUnit", 0)
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.inst == 0 {
		return ErrUnitClosed
	}
	inst := u.inst
	u.inst = 0
	runtime.SetFinalizer(u, nil)
	if err := componentErrs.Err(bindings.AudioComponentInstanceDispose(inst)); err != nil {
		return fmt.Errorf("at: dispose: %w", err)
	}
	return nil
}
