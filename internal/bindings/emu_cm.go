//go:build !darwin || !cgo

package bindings

import (
	"math"
	"math/big"
)

func CMBlockBufferGetTypeID() uint { return typeIDBlockBuffer }

func CMSampleBufferGetTypeID() uint { return typeIDSampleBuffer }

// CMBlockBufferCreateWithBytes allocates a block buffer owning a copy of b.
func CMBlockBufferCreateWithBytes(b []byte) (uintptr, int32) {
	return emu.alloc(typeIDBlockBuffer, classNSCFType, append([]byte{}, b...)), 0
}

func CMBlockBufferGetDataLength(addr uintptr) int {
	return len(emu.payload(addr, "CMBlockBufferGetDataLength").([]byte))
}

func CMBlockBufferCopyBytes(addr uintptr) ([]byte, int32) {
	return append([]byte{}, emu.payload(addr, "CMBlockBufferCopyDataBytes").([]byte)...), 0
}

// sampleBuf is the payload of an emulated CMSampleBuffer.
type sampleBuf struct {
	dataBuf    uintptr
	ready      bool
	invalid    bool
	numSamples int
	timing     []SampleTimingInfo
	sizes      []int
	outputPTS  *CMTime
}

func (s *sampleBuf) children() []uintptr { return []uintptr{s.dataBuf} }

func sbuf(addr uintptr, op string, fn func(s *sampleBuf)) {
	emu.with(addr, op, func(o *object) {
		s, ok := o.payload.(*sampleBuf)
		if !ok {
			panic("bindings: " + op + " on an object that is not a CMSampleBuffer")
		}
		fn(s)
	})
}

// entryCountValid reports whether a per-sample array has 0, 1 or n entries.
func entryCountValid(entries, n int) bool {
	return entries == 0 || entries == 1 || entries == n
}

// CMSampleBufferCreate creates a sample buffer without a format description
// or a make-data-ready callback.
func CMSampleBufferCreate(dataBuf uintptr, ready bool, numSamples int, timing []SampleTimingInfo, sizes []int) (uintptr, int32) {
	if numSamples < 0 {
		return 0, statusParamErr
	}
	if !entryCountValid(len(timing), numSamples) || !entryCountValid(len(sizes), numSamples) {
		return 0, statusCMSampleBufferEntryCount
	}
	if dataBuf != 0 && emu.typeOf(dataBuf) != typeIDBlockBuffer {
		return 0, statusParamErr
	}
	s := &sampleBuf{
		ready:      ready,
		numSamples: numSamples,
		timing:     append([]SampleTimingInfo(nil), timing...),
		sizes:      append([]int(nil), sizes...),
	}
	if dataBuf != 0 {
		s.dataBuf = emu.retain(dataBuf)
	}
	return emu.alloc(typeIDSampleBuffer, classNSCFType, s), 0
}

func CMSampleBufferDataIsReady(addr uintptr) bool {
	var ready bool
	sbuf(addr, "CMSampleBufferDataIsReady", func(s *sampleBuf) { ready = s.ready })
	return ready
}

func CMSampleBufferSetDataReady(addr uintptr) int32 {
	var st int32
	sbuf(addr, "CMSampleBufferSetDataReady", func(s *sampleBuf) {
		if s.invalid {
			st = statusCMSampleBufferInvalid
			return
		}
		s.ready = true
	})
	return st
}

// CMSampleBufferMakeDataReady has no callback to run here; a buffer with
// attached data becomes ready, one without reports BufferNotReady.
func CMSampleBufferMakeDataReady(addr uintptr) int32 {
	var st int32
	sbuf(addr, "CMSampleBufferMakeDataReady", func(s *sampleBuf) {
		switch {
		case s.invalid:
			st = statusCMSampleBufferInvalid
		case s.ready:
		case s.dataBuf != 0:
			s.ready = true
		default:
			st = statusCMSampleBufferNotReady
		}
	})
	return st
}

func CMSampleBufferSetDataBuffer(addr, dataBuf uintptr) int32 {
	if dataBuf == 0 || emu.typeOf(dataBuf) != typeIDBlockBuffer {
		return statusCMSampleBufferParamMiss
	}
	held := emu.retain(dataBuf)
	var st int32
	sbuf(addr, "CMSampleBufferSetDataBuffer", func(s *sampleBuf) {
		switch {
		case s.invalid:
			st = statusCMSampleBufferInvalid
		case s.dataBuf != 0:
			st = statusCMSampleBufferHasData
		default:
			s.dataBuf = held
		}
	})
	if st != 0 {
		emu.release(held)
	}
	return st
}

func CMSampleBufferGetDataBuffer(addr uintptr) uintptr {
	var d uintptr
	sbuf(addr, "CMSampleBufferGetDataBuffer", func(s *sampleBuf) { d = s.dataBuf })
	return d
}

// Image buffers and format descriptions cannot be created on this backend.
func CMSampleBufferGetImageBuffer(addr uintptr) uintptr {
	sbuf(addr, "CMSampleBufferGetImageBuffer", func(*sampleBuf) {})
	return 0
}

func CMSampleBufferGetFormatDescription(addr uintptr) uintptr {
	sbuf(addr, "CMSampleBufferGetFormatDescription", func(*sampleBuf) {})
	return 0
}

func valid(t CMTime) bool { return t.Flags&CMTimeFlagsValid != 0 }

const cmTimeFlagsHasBeenRounded uint32 = 2

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// CMTimeAdd sums two times in their least common timescale, falling back to
// the larger timescale with rounding when that would overflow.
func CMTimeAdd(a, b CMTime) CMTime {
	if !valid(a) || !valid(b) || a.Epoch != b.Epoch || a.Timescale <= 0 || b.Timescale <= 0 {
		return CMTime{}
	}
	if a.Timescale == b.Timescale {
		a.Value += b.Value
		return a
	}
	sa, sb := int64(a.Timescale), int64(b.Timescale)
	scale := sa / gcd(sa, sb) * sb
	flags := CMTimeFlagsValid
	if scale > math.MaxInt32 {
		scale = max(sa, sb)
		flags |= cmTimeFlagsHasBeenRounded
	}
	rescale := func(t CMTime) int64 {
		return int64(math.Round(float64(t.Value) * float64(scale) / float64(t.Timescale)))
	}
	return CMTime{Value: rescale(a) + rescale(b), Timescale: int32(scale), Flags: flags, Epoch: a.Epoch}
}

func CMTimeMultiply(t CMTime, n int32) CMTime {
	if !valid(t) {
		return CMTime{}
	}
	t.Value *= int64(n)
	return t
}

func CMTimeGetSeconds(t CMTime) float64 {
	if !valid(t) || t.Timescale == 0 {
		return math.NaN()
	}
	return float64(t.Value) / float64(t.Timescale)
}

// CMTimeCompare orders invalid times after every valid one, as CoreMedia
// does.
func CMTimeCompare(a, b CMTime) int {
	switch {
	case !valid(a) && !valid(b):
		return 0
	case !valid(a):
		return 1
	case !valid(b):
		return -1
	}
	l := new(big.Int).Mul(big.NewInt(a.Value), big.NewInt(int64(b.Timescale)))
	r := new(big.Int).Mul(big.NewInt(b.Value), big.NewInt(int64(a.Timescale)))
	return l.Cmp(r)
}

// timingAt expands the timing array the way CoreMedia does: a single entry
// applies to every sample with timestamps advancing by its duration.
func (s *sampleBuf) timingAt(i int) SampleTimingInfo {
	if len(s.timing) > 1 {
		return s.timing[i]
	}
	t := s.timing[0]
	step := CMTimeMultiply(t.Duration, int32(i))
	if valid(t.PTS) && valid(step) {
		t.PTS = CMTimeAdd(t.PTS, step)
	}
	if valid(t.DTS) && valid(step) {
		t.DTS = CMTimeAdd(t.DTS, step)
	}
	return t
}

func CMSampleBufferGetDuration(addr uintptr) CMTime {
	var d CMTime
	sbuf(addr, "CMSampleBufferGetDuration", func(s *sampleBuf) {
		switch {
		case s.invalid, len(s.timing) == 0:
		case len(s.timing) == 1:
			d = CMTimeMultiply(s.timing[0].Duration, int32(s.numSamples))
		default:
			d = s.timing[0].Duration
			for _, t := range s.timing[1:] {
				d = CMTimeAdd(d, t.Duration)
			}
		}
	})
	return d
}

func CMSampleBufferGetPresentationTimeStamp(addr uintptr) CMTime {
	var pts CMTime
	sbuf(addr, "CMSampleBufferGetPresentationTimeStamp", func(s *sampleBuf) { pts = s.firstPTS() })
	return pts
}

// firstPTS is the earliest presentation time of any sample.
func (s *sampleBuf) firstPTS() CMTime {
	var pts CMTime
	if s.invalid {
		return pts
	}
	for _, t := range s.timing {
		if !valid(t.PTS) {
			continue
		}
		if !valid(pts) || CMTimeCompare(t.PTS, pts) < 0 {
			pts = t.PTS
		}
	}
	return pts
}

func CMSampleBufferGetDecodeTimeStamp(addr uintptr) CMTime {
	var dts CMTime
	sbuf(addr, "CMSampleBufferGetDecodeTimeStamp", func(s *sampleBuf) {
		if !s.invalid && len(s.timing) > 0 {
			dts = s.timing[0].DTS
		}
	})
	return dts
}

func CMSampleBufferGetOutputPresentationTimeStamp(addr uintptr) CMTime {
	var pts CMTime
	sbuf(addr, "CMSampleBufferGetOutputPresentationTimeStamp", func(s *sampleBuf) {
		if s.outputPTS != nil {
			pts = *s.outputPTS
			return
		}
		pts = s.firstPTS()
	})
	return pts
}

func CMSampleBufferSetOutputPresentationTimeStamp(addr uintptr, t CMTime) int32 {
	var st int32
	sbuf(addr, "CMSampleBufferSetOutputPresentationTimeStamp", func(s *sampleBuf) {
		if s.invalid {
			st = statusCMSampleBufferInvalid
			return
		}
		s.outputPTS = &t
	})
	return st
}

func CMSampleBufferGetSampleTimingInfo(addr uintptr, i int) (SampleTimingInfo, int32) {
	var (
		out SampleTimingInfo
		st  int32
	)
	sbuf(addr, "CMSampleBufferGetSampleTimingInfo", func(s *sampleBuf) {
		switch {
		case s.invalid:
			st = statusCMSampleBufferInvalid
		case i < 0 || i >= s.numSamples:
			st = statusCMSampleBufferIndexRange
		case len(s.timing) == 0:
			st = statusCMSampleBufferNoTiming
		default:
			out = s.timingAt(i)
		}
	})
	return out, st
}

func CMSampleBufferGetSampleSize(addr uintptr, i int) int {
	var n int
	sbuf(addr, "CMSampleBufferGetSampleSize", func(s *sampleBuf) {
		switch {
		case s.invalid, i < 0, i >= s.numSamples, len(s.sizes) == 0:
		case len(s.sizes) == 1:
			n = s.sizes[0]
		default:
			n = s.sizes[i]
		}
	})
	return n
}

func CMSampleBufferGetTotalSampleSize(addr uintptr) int {
	var n int
	sbuf(addr, "CMSampleBufferGetTotalSampleSize", func(s *sampleBuf) {
		switch {
		case s.invalid, len(s.sizes) == 0:
		case len(s.sizes) == 1:
			n = s.sizes[0] * s.numSamples
		default:
			for _, sz := range s.sizes {
				n += sz
			}
		}
	})
	return n
}

func CMSampleBufferGetNumSamples(addr uintptr) int {
	var n int
	sbuf(addr, "CMSampleBufferGetNumSamples", func(s *sampleBuf) { n = s.numSamples })
	return n
}

func CMSampleBufferIsValid(addr uintptr) bool {
	var ok bool
	sbuf(addr, "CMSampleBufferIsValid", func(s *sampleBuf) { ok = !s.invalid })
	return ok
}

func CMSampleBufferInvalidate(addr uintptr) int32 {
	var st int32
	sbuf(addr, "CMSampleBufferInvalidate", func(s *sampleBuf) {
		if s.invalid {
			st = statusCMSampleBufferInvalid
			return
		}
		s.invalid = true
	})
	return st
}
