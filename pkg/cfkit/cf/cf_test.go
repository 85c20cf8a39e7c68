package cf_test

import (
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/hsiuhsiu/cfkit-go/pkg/cfkit/arc"
	"github.com/hsiuhsiu/cfkit-go/pkg/cfkit/cf"
)

// Long enough that CoreFoundation never encodes it as a tagged pointer, so
// retain counts are real.
const longText = "the quick brown fox jumps over the lazy dog, twice over"

func newString(t *testing.T, s string) *arc.R[cf.String] {
	t.Helper()
	r, err := cf.NewString(s)
	require.NoError(t, err)
	return r
}

func TestStringRoundTrip(t *testing.T) {
	for _, s := range []string{"", "hello", longText, "héllo wörld ✓"} {
		r := newString(t, s)
		assert.Equal(t, s, r.Get().String())
		r.Release()
	}
}

func TestRetainedThenReleaseIsNetZero(t *testing.T) {
	s := newString(t, longText)
	defer s.Release()

	before := s.Get().RetainCount()
	extra := s.Get().Retained()
	assert.Equal(t, before+1, s.Get().RetainCount())
	extra.Release()
	assert.Equal(t, before, s.Get().RetainCount())
}

func TestTwoOwnersOutliveEachOther(t *testing.T) {
	first := newString(t, longText)
	second := first.Retained()
	view := second.Get()

	first.Release()
	assert.Equal(t, longText, view.String(), "second owner keeps the object alive")
	assert.Equal(t, 1, view.RetainCount())
	second.Release()
}

func TestStringNumberNarrowing(t *testing.T) {
	s := newString(t, "hello")
	defer s.Release()
	n, err := cf.NewNumberInt64(42)
	require.NoError(t, err)
	defer n.Release()

	generic := s.Get().Type
	_, ok := generic.TryAsNumber()
	assert.False(t, ok)
	str, ok := generic.TryAsString()
	require.True(t, ok)
	assert.Equal(t, "hello", str.String())

	_, ok = n.Get().TryAsString()
	assert.False(t, ok)
	num, ok := cf.AsNumber(n.Get())
	require.True(t, ok)
	v, exact := num.Int64()
	assert.True(t, exact)
	assert.Equal(t, int64(42), v)
}

func TestNarrowingAcrossAllTypes(t *testing.T) {
	s := newString(t, longText)
	defer s.Release()
	n, err := cf.NewNumberFloat64(2.5)
	require.NoError(t, err)
	defer n.Release()
	d, err := cf.NewData([]byte{1, 2, 3})
	require.NoError(t, err)
	defer d.Release()

	objects := map[string]cf.Type{
		"CFString":  s.Get().Type,
		"CFNumber":  n.Get().Type,
		"CFData":    d.Get().Type,
		"CFBoolean": cf.True().Type,
	}
	for name, obj := range objects {
		_, isString := obj.TryAsString()
		_, isNumber := obj.TryAsNumber()
		_, isData := obj.TryAsData()
		_, isBoolean := obj.TryAsBoolean()
		assert.Equal(t, name == "CFString", isString, name)
		assert.Equal(t, name == "CFNumber", isNumber, name)
		assert.Equal(t, name == "CFData", isData, name)
		assert.Equal(t, name == "CFBoolean", isBoolean, name)
		assert.Equal(t, name, cf.TypeIDDescription(obj.TypeID()))
	}
}

func TestNumberConversions(t *testing.T) {
	n, err := cf.NewNumberFloat64(1.5)
	require.NoError(t, err)
	defer n.Release()

	assert.True(t, n.Get().IsFloat())
	f, ok := n.Get().Float64()
	assert.True(t, ok)
	assert.Equal(t, 1.5, f)
	_, ok = n.Get().Int64()
	assert.False(t, ok, "1.5 does not convert to int64 exactly")

	i, err := cf.NewNumberInt64(-7)
	require.NoError(t, err)
	defer i.Release()
	assert.False(t, i.Get().IsFloat())
	f, ok = i.Get().Float64()
	assert.True(t, ok)
	assert.Equal(t, -7.0, f)
}

func TestBooleanConstantsAreBorrowed(t *testing.T) {
	before := arc.Outstanding()
	assert.True(t, cf.True().Value())
	assert.False(t, cf.False().Value())
	assert.Equal(t, cf.True().Addr(), cf.BooleanOf(true).Addr())
	assert.Equal(t, before, arc.Outstanding())

	owner := cf.True().Retained()
	assert.True(t, owner.Get().Value())
	owner.Release()
	assert.True(t, cf.True().Value(), "releasing a retained constant leaves it alive")
}

func TestData(t *testing.T) {
	d, err := cf.NewData([]byte("payload"))
	require.NoError(t, err)
	defer d.Release()
	assert.Equal(t, []byte("payload"), d.Get().Bytes())
	assert.Equal(t, 7, d.Get().Len())

	empty, err := cf.NewData(nil)
	require.NoError(t, err)
	defer empty.Release()
	assert.Equal(t, 0, empty.Get().Len())
	assert.Empty(t, empty.Get().Bytes())
}

func TestEqualityHashDescription(t *testing.T) {
	a := newString(t, longText)
	defer a.Release()
	b := newString(t, longText)
	defer b.Release()
	c := newString(t, longText+"!")
	defer c.Release()

	assert.True(t, a.Get().Equal(b))
	assert.False(t, a.Get().Equal(c))
	assert.Equal(t, a.Get().Hash(), b.Get().Hash())
	assert.Equal(t, longText, a.Get().Description())

	n, err := cf.NewNumberInt64(42)
	require.NoError(t, err)
	defer n.Release()
	assert.Contains(t, n.Get().Description(), "42")
}

func TestNullHandleIsContractViolation(t *testing.T) {
	var zero cf.Type
	assert.Equal(t, "cf.Type(nil)", zero.String())

	for name, fn := range map[string]func(){
		"TypeID":      func() { zero.TypeID() },
		"RetainCount": func() { zero.RetainCount() },
		"Retained":    func() { zero.Retained() },
		"TryAsString": func() { zero.TryAsString() },
		"String":      func() { _ = cf.String{}.String() },
		"Equal(nil)":  func() { cf.True().Equal(nil) },
	} {
		func() {
			defer func() {
				err, _ := recover().(error)
				assert.True(t, errors.Is(err, arc.ErrContract), name)
			}()
			fn()
		}()
	}
}

func TestTaggedPointerPredicate(t *testing.T) {
	s := newString(t, longText)
	defer s.Release()
	if runtime.GOOS != "darwin" {
		assert.False(t, s.Get().IsTaggedPtr())
	}
	assert.False(t, cf.True().IsTaggedPtr())
}

func TestCreateAndReleaseLeavesNoOutstanding(t *testing.T) {
	before := arc.Outstanding()
	s := newString(t, longText)
	n, err := cf.NewNumberInt64(1)
	require.NoError(t, err)
	assert.Equal(t, before+2, arc.Outstanding())
	s.Release()
	n.Release()
	assert.Equal(t, before, arc.Outstanding())
}

func TestConcurrentRetainRelease(t *testing.T) {
	s := newString(t, longText)
	defer s.Release()
	before := s.Get().RetainCount()

	var g errgroup.Group
	for i := 0; i < 16; i++ {
		g.Go(func() error {
			for j := 0; j < 200; j++ {
				r := s.Retained()
				if r.Get().String() != longText {
					return errors.New("unexpected contents")
				}
				r.Release()
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, before, s.Get().RetainCount())
}

func TestTypeCacheSize(t *testing.T) {
	require.Error(t, cf.SetTypeCacheSize(0))
	require.NoError(t, cf.SetTypeCacheSize(4))
	defer cf.SetTypeCacheSize(cf.DefaultTypeCacheSize)

	s := newString(t, longText)
	defer s.Release()
	assert.Equal(t, "CFString", cf.TypeIDDescription(s.Get().TypeID()))
	assert.Equal(t, "CFString", cf.TypeIDDescription(s.Get().TypeID()))
}
