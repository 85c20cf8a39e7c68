package at

import (
	"errors"
	"fmt"

	"github.com/hsiuhsiu/cfkit-go/internal/bindings"
	"github.com/hsiuhsiu/cfkit-go/pkg/cfkit/arc"
	"github.com/hsiuhsiu/cfkit-go/pkg/cfkit/cf"
)

// Available reports whether audio components can be searched and
// instantiated in this build.
func Available() error {
	if err := bindings.AudioToolboxAvailable(); err != nil {
		if errors.Is(err, bindings.ErrNotBuilt) {
			return ErrNotBuilt
		}
		return fmt.Errorf("at: %w", err)
	}
	return nil
}

// Component is a registered audio component. The zero Component starts a
// search.
type Component struct {
	addr uintptr
}

// Addr returns the raw AudioComponent.
func (c Component) Addr() uintptr { return c.addr }

// FindNext returns the first component after prev matching desc.
func FindNext(prev Component, desc ComponentDesc) (Component, bool) {
	addr := bindings.AudioComponentFindNext(prev.addr, desc.raw())
	if addr == 0 {
		return Component{}, false
	}
	return Component{addr: addr}, true
}

// Components returns every component matching desc.
func Components(desc ComponentDesc) []Component {
	var out []Component
	for c, ok := FindNext(Component{}, desc); ok; c, ok = FindNext(c, desc) {
		out = append(out, c)
	}
	return out
}

func (c Component) live() uintptr {
	if c.addr == 0 {
		arc.Violate(arc.NilHandle, "AudioComponent", 0)
	}
	return c.addr
}

// Name returns the component's "Manufacturer: Name" string.
func (c Component) Name() (string, error) {
	addr := c.live()
	s, err := cf.StringClass.Create(componentErrs, func() (uintptr, int32) {
		return bindings.AudioComponentCopyName(addr)
	})
	if err != nil {
		return "", fmt.Errorf("at: component name: %w", err)
	}
	defer s.Release()
	return s.Get().String(), nil
}

// NewInstance creates an audio unit from the component. The caller owns the
// unit and must Close it.
func (c Component) NewInstance() (*Unit, error) {
	inst, status := bindings.AudioComponentInstanceNew(c.live())
	if status != 0 {
		return nil, fmt.Errorf("at: new instance: %w", componentErrs.Err(status))
	}
	if inst == 0 {
		return nil, fmt.Errorf("at: new instance: %w", arc.ErrNoObject)
	}
	return newUnit(inst), nil
}
