package cm

import (
	"fmt"

	"github.com/hsiuhsiu/cfkit-go/internal/bindings"
	"github.com/hsiuhsiu/cfkit-go/pkg/cfkit/arc"
	"github.com/hsiuhsiu/cfkit-go/pkg/cfkit/cf"
	"github.com/hsiuhsiu/cfkit-go/pkg/cfkit/osstatus"
)

// NewSampleBuf creates a sample buffer. dataBuf is a BlockBuf, or nil for a
// buffer whose data is attached later with SetDataBuf. timing and sizes hold
// zero, one (applied to every sample) or numSamples entries.
func NewSampleBuf(dataBuf arc.Object, dataReady bool, numSamples int, timing []SampleTimingInfo, sizes []int) (*arc.R[SampleBuf], error) {
	var data uintptr
	if dataBuf != nil {
		if !BlockBufClass.Is(dataBuf) {
			return nil, fmt.Errorf("cm: data buffer %#x is not a CMBlockBuffer: %w", dataBuf.Addr(), osstatus.ParamErr.Err())
		}
		data = dataBuf.Addr()
	}
	raw := make([]bindings.SampleTimingInfo, len(timing))
	for i, t := range timing {
		raw[i] = t.raw()
	}
	return SampleBufClass.Create(sampleBufErrs, func() (uintptr, int32) {
		return bindings.CMSampleBufferCreate(data, dataReady, numSamples, raw, sizes)
	})
}

func (s SampleBuf) addr() uintptr { return liveAddr(s, "CMSampleBuffer") }

// DataIsReady reports whether the sample data is ready for use.
func (s SampleBuf) DataIsReady() bool { return bindings.CMSampleBufferDataIsReady(s.addr()) }

// SetDataReady marks the data ready.
func (s SampleBuf) SetDataReady() error {
	return sampleBufErrs.Err(bindings.CMSampleBufferSetDataReady(s.addr()))
}

// MakeDataReady asks the buffer to make its data ready. Buffers created here
// carry no make-data-ready callback, so this succeeds only if the data is
// ready already or CoreMedia can satisfy the request on its own.
func (s SampleBuf) MakeDataReady() error {
	return sampleBufErrs.Err(bindings.CMSampleBufferMakeDataReady(s.addr()))
}

// DataBuf returns the attached block buffer, borrowed from s.
func (s SampleBuf) DataBuf() (BlockBuf, bool) {
	return BlockBufClass.Borrow(bindings.CMSampleBufferGetDataBuffer(s.addr()))
}

// SetDataBuf attaches a block buffer; the sample buffer retains it. A
// buffer that already has data reports ErrAlreadyHasDataBuffer.
func (s SampleBuf) SetDataBuf(b BlockBuf) error {
	return sampleBufErrs.Err(bindings.CMSampleBufferSetDataBuffer(s.addr(), liveAddr(b, "CMBlockBuffer")))
}

// ImageBuf returns the attached CVImageBuffer, borrowed from s.
func (s SampleBuf) ImageBuf() (cf.Type, bool) {
	return cf.TypeClass.Borrow(bindings.CMSampleBufferGetImageBuffer(s.addr()))
}

// FormatDesc returns the CMFormatDescription, borrowed from s.
func (s SampleBuf) FormatDesc() (cf.Type, bool) {
	return cf.TypeClass.Borrow(bindings.CMSampleBufferGetFormatDescription(s.addr()))
}

// Duration is the total duration of all samples.
func (s SampleBuf) Duration() Time { return fromRaw(bindings.CMSampleBufferGetDuration(s.addr())) }

// PTS is the presentation timestamp of the earliest sample.
func (s SampleBuf) PTS() Time {
	return fromRaw(bindings.CMSampleBufferGetPresentationTimeStamp(s.addr()))
}

// DTS is the decode timestamp of the first sample.
func (s SampleBuf) DTS() Time { return fromRaw(bindings.CMSampleBufferGetDecodeTimeStamp(s.addr())) }

// OutputPTS is the output presentation timestamp.
func (s SampleBuf) OutputPTS() Time {
	return fromRaw(bindings.CMSampleBufferGetOutputPresentationTimeStamp(s.addr()))
}

// SetOutputPTS overrides the output presentation timestamp.
func (s SampleBuf) SetOutputPTS(t Time) error {
	return sampleBufErrs.Err(bindings.CMSampleBufferSetOutputPresentationTimeStamp(s.addr(), t.raw()))
}

// TimingInfo returns the timing of sample i.
func (s SampleBuf) TimingInfo(i int) (SampleTimingInfo, error) {
	info, st := bindings.CMSampleBufferGetSampleTimingInfo(s.addr(), i)
	if err := sampleBufErrs.Err(st); err != nil {
		return InvalidTimingInfo(), err
	}
	return timingFromRaw(info), nil
}

// SampleSize returns the size of sample i in bytes, 0 if unknown.
func (s SampleBuf) SampleSize(i int) int { return bindings.CMSampleBufferGetSampleSize(s.addr(), i) }

// TotalSampleSize returns the size of all samples in bytes, 0 if unknown.
func (s SampleBuf) TotalSampleSize() int { return bindings.CMSampleBufferGetTotalSampleSize(s.addr()) }

// NumSamples returns the number of samples.
func (s SampleBuf) NumSamples() int { return bindings.CMSampleBufferGetNumSamples(s.addr()) }

// IsValid reports whether the buffer has not been invalidated.
func (s SampleBuf) IsValid() bool { return bindings.CMSampleBufferIsValid(s.addr()) }

// Invalidate makes the buffer invalid. It does not release it.
func (s SampleBuf) Invalidate() error {
	return sampleBufErrs.Err(bindings.CMSampleBufferInvalidate(s.addr()))
}
