package ns_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/cfkit-go/pkg/cfkit/arc"
	"github.com/hsiuhsiu/cfkit-go/pkg/cfkit/cf"
	"github.com/hsiuhsiu/cfkit-go/pkg/cfkit/ns"
)

// Long enough to be heap allocated rather than a tagged pointer.
const longText = "an NSString that is far too long to fit inside a tagged pointer"

func TestStringRoundTrip(t *testing.T) {
	s, err := ns.NewString(longText)
	require.NoError(t, err)
	defer s.Release()

	assert.Equal(t, longText, s.Get().String())
	assert.Equal(t, longText, s.Get().Description())
	assert.True(t, s.Get().IsKindOf("NSString"))
	assert.True(t, s.Get().IsKindOf("NSObject"))
	assert.False(t, s.Get().IsKindOf("NSNumber"))
	assert.False(t, s.Get().IsKindOf("NoSuchClassAnywhere"))
}

func TestRetainedThenReleaseIsNetZero(t *testing.T) {
	s, err := ns.NewString(longText)
	require.NoError(t, err)
	defer s.Release()

	before := s.Get().RetainCount()
	extra := s.Get().Retained()
	assert.Equal(t, before+1, s.Get().RetainCount())
	extra.Release()
	assert.Equal(t, before, s.Get().RetainCount())
}

func TestNarrowingFollowsClassHierarchy(t *testing.T) {
	s, err := ns.NewString(longText)
	require.NoError(t, err)
	defer s.Release()
	n, err := ns.NewNumber(7)
	require.NoError(t, err)
	defer n.Release()

	generic := s.Get().Id
	_, ok := ns.AsNumber(generic)
	assert.False(t, ok)
	_, ok = ns.AsArray(generic)
	assert.False(t, ok)
	str, ok := ns.AsString(generic)
	require.True(t, ok)
	assert.Equal(t, longText, str.String())

	_, ok = ns.AsString(n.Get().Id)
	assert.False(t, ok)
	num, ok := ns.AsNumber(n.Get().Id)
	require.True(t, ok)
	assert.Equal(t, int64(7), num.Int64())

	_, ok = ns.IdClass.TryAs(n)
	assert.True(t, ok, "every object is an Id")
}

func TestTollFreeBridging(t *testing.T) {
	s, err := cf.NewString(longText)
	require.NoError(t, err)
	defer s.Release()

	bridged, ok := ns.AsString(s)
	require.True(t, ok)
	assert.Equal(t, longText, bridged.String())
	_, ok = ns.AsNumber(s)
	assert.False(t, ok)
}

func TestNumberValues(t *testing.T) {
	f, err := ns.NewNumberFloat64(2.75)
	require.NoError(t, err)
	defer f.Release()
	assert.Equal(t, 2.75, f.Get().Float64())
	assert.Equal(t, int64(2), f.Get().Int64())

	i, err := ns.NewNumber(-12)
	require.NoError(t, err)
	defer i.Release()
	assert.Equal(t, -12.0, i.Get().Float64())
}

func TestArrayOfNumbers(t *testing.T) {
	before := arc.Outstanding()
	arr, err := ns.NewArrayOfNumbers(10, 20, 30)
	require.NoError(t, err)
	assert.Equal(t, before+1, arc.Outstanding(), "element numbers are released once the array holds them")

	a := arr.Get()
	assert.Equal(t, 3, a.Len())
	el, ok := a.At(1)
	require.True(t, ok)
	num, ok := ns.AsNumber(el)
	require.True(t, ok)
	assert.Equal(t, int64(20), num.Int64())

	_, ok = a.At(3)
	assert.False(t, ok)
	_, ok = a.At(-1)
	assert.False(t, ok)

	vals, err := a.Int64s()
	require.NoError(t, err)
	assert.Equal(t, []int64{10, 20, 30}, vals)

	arr.Release()
	assert.Equal(t, before, arc.Outstanding())
}

func TestArrayRetainsItsElements(t *testing.T) {
	s, err := ns.NewString(longText)
	require.NoError(t, err)
	defer s.Release()
	before := s.Get().RetainCount()

	arr, err := ns.NewArray(s)
	require.NoError(t, err)
	assert.Equal(t, before+1, s.Get().RetainCount())

	el, ok := arr.Get().At(0)
	require.True(t, ok)
	assert.Equal(t, s.Addr(), el.Addr())

	_, err = arr.Get().Int64s()
	assert.Error(t, err)

	arr.Release()
	assert.Equal(t, before, s.Get().RetainCount())
}

func TestEmptyArray(t *testing.T) {
	arr, err := ns.NewArray()
	require.NoError(t, err)
	defer arr.Release()
	assert.Zero(t, arr.Get().Len())
	_, ok := arr.Get().At(0)
	assert.False(t, ok)
}

func TestBridgedBooleansReadAsNumbers(t *testing.T) {
	yes, ok := ns.AsNumber(cf.True())
	require.True(t, ok)
	assert.Equal(t, int64(1), yes.Int64())
	assert.Equal(t, 1.0, yes.Float64())

	no, ok := ns.AsNumber(cf.False())
	require.True(t, ok)
	assert.Equal(t, int64(0), no.Int64())
	assert.Equal(t, 0.0, no.Float64())
}

func TestNullIdIsContractViolation(t *testing.T) {
	var zero ns.Id
	assert.Equal(t, "ns.Id(nil)", zero.String())

	for name, fn := range map[string]func(){
		"ClassName":   func() { zero.ClassName() },
		"RetainCount": func() { zero.RetainCount() },
		"Retained":    func() { zero.Retained() },
		"AsString":    func() { ns.AsString(zero) },
		"NewArray":    func() { _, _ = ns.NewArray(zero) },
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
