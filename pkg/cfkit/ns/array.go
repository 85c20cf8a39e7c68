package ns

import (
	"fmt"

	"github.com/hsiuhsiu/cfkit-go/internal/bindings"
	"github.com/hsiuhsiu/cfkit-go/pkg/cfkit/arc"
)

// NewArray creates an immutable NSArray. The array retains each item; the
// caller keeps its own references.
func NewArray(items ...arc.Object) (*arc.R[Array], error) {
	addrs := make([]uintptr, len(items))
	for i, it := range items {
		if it == nil || it.Addr() == 0 {
			arc.Violate(arc.NilHandle, "NSArray element", 0)
		}
		addrs[i] = it.Addr()
	}
	return ArrayClass.AdoptNonNull(bindings.NSArrayCreate(addrs))
}

// NewArrayOfNumbers creates an NSArray of NSNumber, the shape Core Audio
// uses for lists of audio object ids.
func NewArrayOfNumbers(vals ...int64) (*arc.R[Array], error) {
	items := make([]arc.Object, 0, len(vals))
	defer func() {
		for _, it := range items {
			it.(*arc.R[Number]).Release()
		}
	}()
	for _, v := range vals {
		n, err := NewNumber(v)
		if err != nil {
			return nil, fmt.Errorf("ns: array element %d: %w", v, err)
		}
		items = append(items, n)
	}
	return NewArray(items...)
}

// Len returns count.
func (a Array) Len() int { return bindings.NSArrayCount(a.live()) }

// At returns the element at i, borrowed from the array. It reports false
// when i is out of range.
func (a Array) At(i int) (Id, bool) {
	if i < 0 || i >= a.Len() {
		return Id{}, false
	}
	return IdClass.Borrow(bindings.NSArrayObjectAt(a.addr, i))
}

// Int64s returns the integer values of an array of NSNumber. Elements that
// are not numbers are reported as an error.
func (a Array) Int64s() ([]int64, error) {
	n := a.Len()
	out := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		el, _ := a.At(i)
		num, ok := AsNumber(el)
		if !ok {
			return nil, fmt.Errorf("ns: element %d is %s, not NSNumber", i, el.ClassName())
		}
		out = append(out, num.Int64())
	}
	return out, nil
}
