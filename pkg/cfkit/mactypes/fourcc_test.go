package mactypes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/cfkit-go/pkg/cfkit/mactypes"
)

func TestParseFourCC(t *testing.T) {
	tests := []struct {
		in      string
		want    mactypes.FourCharCode
		wantErr bool
	}{
		{"auou", 0x61756f75, false},
		{"appl", 0x6170706c, false},
		{"def ", 0x64656620, false},
		{"fmt?", 0x666d743f, false},
		{"abc", 0, true},
		{"abcde", 0, true},
		{"ab\xffc", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := mactypes.ParseFourCC(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, mactypes.ErrInvalidFourCC)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String())
		})
	}
}

func TestFourCCStringNonPrintable(t *testing.T) {
	assert.Equal(t, "0xffffcf2c", mactypes.FourCharCode(0xffffcf2c).String())
	assert.False(t, mactypes.FourCharCode(0).IsPrintable())
}

func TestFourCCPanicsOnBadLiteral(t *testing.T) {
	assert.Panics(t, func() { mactypes.FourCC("toolong") })
}
