package at

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/cfkit-go/pkg/cfkit/arc"
	"github.com/hsiuhsiu/cfkit-go/pkg/cfkit/osstatus"
)

func defaultOutput() ComponentDesc {
	return ComponentDesc{Type: TypeOutput, SubType: SubTypeDefaultOutput, Manufacturer: ManufacturerApple}
}

func TestDescConstants(t *testing.T) {
	assert.Equal(t, "auou", TypeOutput.String())
	assert.Equal(t, "def ", SubTypeDefaultOutput.String())
	assert.Equal(t, uint32(0x6170706c), defaultOutput().raw().Manufacturer)
}

func TestErrorTablesMatchRawStatus(t *testing.T) {
	assert.ErrorIs(t, unitErrs.Err(-10879), ErrInvalidProperty)
	assert.ErrorIs(t, osstatus.Status(-10867).Err(), ErrUninitialized)
	assert.ErrorIs(t, componentErrs.Err(-66748), ErrNotPermitted)
	assert.Equal(t, "AudioUnit: InvalidProperty (OSStatus -10879)", ErrInvalidProperty.Error())

	unknown := unitErrs.Err(-1)
	code, ok := osstatus.Code(unknown)
	require.True(t, ok)
	assert.Equal(t, osstatus.Status(-1), code)
}

func TestClosedUnit(t *testing.T) {
	u := &Unit{}
	assert.ErrorIs(t, u.Initialize(), ErrUnitClosed)
	_, err := u.SampleRate(ScopeOutput, 0)
	assert.ErrorIs(t, err, ErrUnitClosed)
	assert.ErrorIs(t, u.SetSampleRate(ScopeOutput, 0, 48000), ErrUnitClosed)
	assert.ErrorIs(t, u.Close(), ErrUnitClosed)
}

func TestNilUnitAndComponentAreContractViolations(t *testing.T) {
	for name, fn := range map[string]func(){
		"Unit.Close":            func() { _ = (*Unit)(nil).Close() },
		"Component.Name":        func() { _, _ = Component{}.Name() },
		"Component.NewInstance": func() { _, _ = Component{}.NewInstance() },
	} {
		func() {
			defer func() {
				err, _ := recover().(error)
				assert.True(t, errors.Is(err, arc.ErrContract), name)
			}()
			fn()
			t.Errorf("%s: expected panic", name)
		}()
	}
}

func TestUnavailableFindsNothing(t *testing.T) {
	if Available() == nil {
		t.Skip("AudioToolbox is available")
	}
	assert.ErrorIs(t, Available(), ErrNotBuilt)
	_, ok := FindNext(Component{}, defaultOutput())
	assert.False(t, ok)
	assert.Empty(t, Components(ComponentDesc{}))
}

func TestDefaultOutputLifecycle(t *testing.T) {
	if err := Available(); err != nil {
		t.Skip(err)
	}
	comp, ok := FindNext(Component{}, defaultOutput())
	if !ok {
		t.Skip("no default output component")
	}

	before := arc.Outstanding()
	name, err := comp.Name()
	require.NoError(t, err)
	assert.NotEmpty(t, name)
	assert.Equal(t, before, arc.Outstanding(), "the copied name is released")

	unit, err := comp.NewInstance()
	require.NoError(t, err)
	require.NoError(t, unit.Initialize())

	rate, err := unit.SampleRate(ScopeOutput, 0)
	require.NoError(t, err)
	assert.Positive(t, rate)

	require.NoError(t, unit.Uninitialize())
	require.NoError(t, unit.Close())
	assert.ErrorIs(t, unit.Close(), ErrUnitClosed)
	_, err = unit.SampleRate(ScopeOutput, 0)
	assert.ErrorIs(t, err, ErrUnitClosed)
}

func TestComponentsOfType(t *testing.T) {
	if err := Available(); err != nil {
		t.Skip(err)
	}
	effects := Components(ComponentDesc{Type: TypeEffect, Manufacturer: ManufacturerApple})
	for _, c := range effects {
		_, err := c.Name()
		assert.NoError(t, err)
	}
}
