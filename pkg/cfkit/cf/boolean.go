package cf

import "github.com/hsiuhsiu/cfkit-go/internal/bindings"

// True returns kCFBooleanTrue. The constant is borrowed and never released.
func True() Boolean {
	b, _ := BooleanClass.Borrow(bindings.CFBooleanTrue())
	return b
}

// False returns kCFBooleanFalse.
func False() Boolean {
	b, _ := BooleanClass.Borrow(bindings.CFBooleanFalse())
	return b
}

// BooleanOf returns the constant for v.
func BooleanOf(v bool) Boolean {
	if v {
		return True()
	}
	return False()
}

// Value returns the boolean value.
func (b Boolean) Value() bool { return bindings.CFBooleanValue(b.live()) }
