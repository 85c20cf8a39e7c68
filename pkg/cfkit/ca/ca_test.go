package ca_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/cfkit-go/pkg/cfkit/arc"
	"github.com/hsiuhsiu/cfkit-go/pkg/cfkit/ca"
	"github.com/hsiuhsiu/cfkit-go/pkg/cfkit/ns"
)

func requireTaps(t *testing.T) {
	t.Helper()
	if err := ca.Available(); err != nil {
		t.Skipf("process taps unavailable: %v", err)
	}
}

func TestInitializerFlags(t *testing.T) {
	requireTaps(t)

	tests := []struct {
		name                     string
		create                   func(ns.Array) (*arc.R[ca.TapDesc], error)
		mono, exclusive, mixdown bool
	}{
		{"StereoMixdown", ca.NewStereoMixdown, false, false, true},
		{"StereoGlobalExcluding", ca.NewStereoGlobalExcluding, false, true, true},
		{"MonoMixdown", ca.NewMonoMixdown, true, false, true},
		{"MonoGlobalExcluding", ca.NewMonoGlobalExcluding, true, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tap, err := tt.create(ns.Array{})
			require.NoError(t, err)
			defer tap.Release()

			d := tap.Get()
			assert.Equal(t, tt.mono, d.IsMono())
			assert.Equal(t, tt.exclusive, d.IsExclusive())
			assert.Equal(t, tt.mixdown, d.IsMixdown())
		})
	}
}

func TestProcessList(t *testing.T) {
	requireTaps(t)

	procs, err := ns.NewArrayOfNumbers(41, 42)
	require.NoError(t, err)
	defer procs.Release()

	tap, err := ca.NewStereoMixdown(procs.Get())
	require.NoError(t, err)
	defer tap.Release()

	got, ok := tap.Get().CopyProcesses()
	require.True(t, ok)
	vals, err := got.Get().Int64s()
	got.Release()
	require.NoError(t, err)
	assert.Equal(t, []int64{41, 42}, vals)

	others, err := ns.NewArrayOfNumbers(7)
	require.NoError(t, err)
	defer others.Release()
	tap.Get().SetProcesses(others.Get())
	got, ok = tap.Get().CopyProcesses()
	require.True(t, ok)
	defer got.Release()
	vals, err = got.Get().Int64s()
	require.NoError(t, err)
	assert.Equal(t, []int64{7}, vals)
}

func TestProperties(t *testing.T) {
	requireTaps(t)

	tap, err := ca.NewMonoMixdown(ns.Array{})
	require.NoError(t, err)
	defer tap.Release()
	d := tap.Get()

	require.NoError(t, d.SetName("cfkit test tap"))
	name, ok := d.Name()
	require.True(t, ok)
	assert.Equal(t, "cfkit test tap", name)

	id, err := d.UUID()
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	d.SetPrivate(true)
	assert.True(t, d.IsPrivate())
	d.SetExclusive(true)
	assert.True(t, d.IsExclusive())
	d.SetMono(false)
	assert.False(t, d.IsMono())

	for _, m := range []ca.MuteBehavior{ca.Muted, ca.MutedWhenTapped, ca.Unmuted} {
		d.SetMuteBehavior(m)
		assert.Equal(t, m, d.MuteBehavior())
	}
}

func TestDeviceAndStream(t *testing.T) {
	requireTaps(t)

	tap, err := ca.NewWithProcessesAndDevice(ns.Array{}, "BuiltInSpeakerDevice", 0)
	require.NoError(t, err)
	defer tap.Release()
	d := tap.Get()

	uid, ok := d.DeviceUID()
	require.True(t, ok)
	assert.Equal(t, "BuiltInSpeakerDevice", uid)
	stream, ok := d.Stream()
	require.True(t, ok)
	assert.Zero(t, stream)

	d.SetStream(2)
	stream, ok = d.Stream()
	require.True(t, ok)
	assert.Equal(t, 2, stream)
	d.ClearStream()
	_, ok = d.Stream()
	assert.False(t, ok)

	require.NoError(t, d.SetDeviceUID("OtherDevice"))
	uid, _ = d.DeviceUID()
	assert.Equal(t, "OtherDevice", uid)

	excl, err := ca.NewExcludingProcessesAndDevice(ns.Array{}, "BuiltInSpeakerDevice", 1)
	require.NoError(t, err)
	defer excl.Release()
	assert.True(t, excl.Get().IsExclusive())
}

func TestNarrowing(t *testing.T) {
	requireTaps(t)

	tap, err := ca.NewStereoMixdown(ns.Array{})
	require.NoError(t, err)
	defer tap.Release()

	generic := tap.Get().Id
	_, ok := ns.AsString(generic)
	assert.False(t, ok)
	back, ok := ca.AsTapDesc(generic)
	require.True(t, ok)
	assert.Equal(t, tap.Addr(), back.Addr())

	s, err := ns.NewString("not a tap description")
	require.NoError(t, err)
	defer s.Release()
	_, ok = ca.AsTapDesc(s)
	assert.False(t, ok)
}

func TestCreateAndReleaseLeavesNoOutstanding(t *testing.T) {
	requireTaps(t)

	before := arc.Outstanding()
	tap, err := ca.NewStereoGlobalExcluding(ns.Array{})
	require.NoError(t, err)
	_, _ = tap.Get().Name()
	tap.Release()
	assert.Equal(t, before, arc.Outstanding())
}

func TestMuteBehaviorString(t *testing.T) {
	assert.Equal(t, "muted-when-tapped", ca.MutedWhenTapped.String())
	assert.Equal(t, "MuteBehavior(9)", ca.MuteBehavior(9).String())
}
