// Package mactypes holds the small scalar types shared by Apple's C APIs.
package mactypes

import (
	"errors"
	"fmt"
)

// FourCharCode is a 32-bit code built from four ASCII characters, most
// significant byte first ('auou', 'appl', 'fmt?').
type FourCharCode uint32

// ErrInvalidFourCC reports a string that cannot become a FourCharCode.
var ErrInvalidFourCC = errors.New("mactypes: four char code must be exactly 4 ASCII bytes")

// FourCC builds a FourCharCode from a literal and panics if s is not exactly
// four ASCII bytes. Use it for package-level constants.
func FourCC(s string) FourCharCode {
	c, err := ParseFourCC(s)
	if err != nil {
		panic(fmt.Sprintf("mactypes.FourCC(%q): %v", s, err))
	}
	return c
}

// ParseFourCC converts a four byte ASCII string into a FourCharCode.
func ParseFourCC(s string) (FourCharCode, error) {
	if len(s) != 4 {
		return 0, ErrInvalidFourCC
	}
	var c uint32
	for i := 0; i < 4; i++ {
		if s[i] > 0x7e {
			return 0, ErrInvalidFourCC
		}
		c = c<<8 | uint32(s[i])
	}
	return FourCharCode(c), nil
}

// IsPrintable reports whether all four bytes are printable ASCII.
func (c FourCharCode) IsPrintable() bool {
	for _, b := range c.bytes() {
		if b < 0x20 || b > 0x7e {
			return false
		}
	}
	return true
}

// String renders printable codes as their four characters and anything else
// as a hex literal.
func (c FourCharCode) String() string {
	if !c.IsPrintable() {
		return fmt.Sprintf("0x%08x", uint32(c))
	}
	b := c.bytes()
	return string(b[:])
}

func (c FourCharCode) bytes() [4]byte {
	return [4]byte{byte(c >> 24), byte(c >> 16), byte(c >> 8), byte(c)}
}
