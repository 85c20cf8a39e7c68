package cm

import (
	"github.com/hsiuhsiu/cfkit-go/internal/bindings"
	"github.com/hsiuhsiu/cfkit-go/pkg/cfkit/arc"
)

// NewBlockBuf creates a contiguous block buffer holding a copy of data.
func NewBlockBuf(data []byte) (*arc.R[BlockBuf], error) {
	return BlockBufClass.Create(blockBufErrs, func() (uintptr, int32) {
		return bindings.CMBlockBufferCreateWithBytes(data)
	})
}

// Len returns the total data length in bytes.
func (b BlockBuf) Len() int { return bindings.CMBlockBufferGetDataLength(liveAddr(b, "CMBlockBuffer")) }

// Bytes copies the buffer contents.
func (b BlockBuf) Bytes() ([]byte, error) {
	out, st := bindings.CMBlockBufferCopyBytes(liveAddr(b, "CMBlockBuffer"))
	if err := blockBufErrs.Err(st); err != nil {
		return nil, err
	}
	return out, nil
}

// liveAddr returns the address of obj, failing fast on a null handle.
func liveAddr(obj arc.Object, typ string) uintptr {
	addr := obj.Addr()
	if addr == 0 {
		arc.Violate(arc.NilHandle, typ, 0)
	}
	return addr
}
