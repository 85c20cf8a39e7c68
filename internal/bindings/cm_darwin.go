//go:build darwin && cgo

package bindings

/*
#cgo LDFLAGS: -framework CoreMedia -framework CoreFoundation
#include <stdint.h>
#include <CoreMedia/CoreMedia.h>

static OSStatus cfkit_cm_block_create(const void *bytes, size_t n, uintptr_t *out) {
	CMBlockBufferRef buf = NULL;
	OSStatus st;
	if (n == 0) {
		st = CMBlockBufferCreateEmpty(kCFAllocatorDefault, 0, 0, &buf);
	} else {
		st = CMBlockBufferCreateWithMemoryBlock(kCFAllocatorDefault, NULL, n, kCFAllocatorDefault,
			NULL, 0, n, kCMBlockBufferAssureMemoryNowFlag, &buf);
		if (st == noErr) {
			st = CMBlockBufferReplaceDataBytes(bytes, buf, 0, n);
			if (st != noErr) {
				CFRelease(buf);
				buf = NULL;
			}
		}
	}
	*out = (uintptr_t)buf;
	return st;
}

static size_t cfkit_cm_block_len(uintptr_t p) { return CMBlockBufferGetDataLength((CMBlockBufferRef)p); }

static OSStatus cfkit_cm_block_copy(uintptr_t p, void *dst, size_t n) {
	return CMBlockBufferCopyDataBytes((CMBlockBufferRef)p, 0, n, dst);
}

static OSStatus cfkit_cm_sbuf_create(uintptr_t data, Boolean ready, CMItemCount n,
	CMItemCount nTiming, const CMSampleTimingInfo *timing,
	CMItemCount nSizes, const size_t *sizes, uintptr_t *out) {
	CMSampleBufferRef buf = NULL;
	OSStatus st = CMSampleBufferCreate(kCFAllocatorDefault, (CMBlockBufferRef)data, ready, NULL, NULL,
		NULL, n, nTiming, timing, nSizes, sizes, &buf);
	*out = (uintptr_t)buf;
	return st;
}

static CMTime cfkit_cm_time_add(CMTime a, CMTime b) { return CMTimeAdd(a, b); }
static CMTime cfkit_cm_time_multiply(CMTime t, int32_t n) { return CMTimeMultiply(t, n); }
static Float64 cfkit_cm_time_seconds(CMTime t) { return CMTimeGetSeconds(t); }
static int32_t cfkit_cm_time_compare(CMTime a, CMTime b) { return CMTimeCompare(a, b); }

#define SBUF(p) ((CMSampleBufferRef)(p))

static Boolean cfkit_cm_sbuf_ready(uintptr_t p) { return CMSampleBufferDataIsReady(SBUF(p)); }
static OSStatus cfkit_cm_sbuf_set_ready(uintptr_t p) { return CMSampleBufferSetDataReady(SBUF(p)); }
static OSStatus cfkit_cm_sbuf_make_ready(uintptr_t p) { return CMSampleBufferMakeDataReady(SBUF(p)); }
static OSStatus cfkit_cm_sbuf_set_data(uintptr_t p, uintptr_t d) {
	return CMSampleBufferSetDataBuffer(SBUF(p), (CMBlockBufferRef)d);
}
static uintptr_t cfkit_cm_sbuf_data(uintptr_t p) { return (uintptr_t)CMSampleBufferGetDataBuffer(SBUF(p)); }
static uintptr_t cfkit_cm_sbuf_image(uintptr_t p) { return (uintptr_t)CMSampleBufferGetImageBuffer(SBUF(p)); }
static uintptr_t cfkit_cm_sbuf_format(uintptr_t p) { return (uintptr_t)CMSampleBufferGetFormatDescription(SBUF(p)); }
static CMTime cfkit_cm_sbuf_duration(uintptr_t p) { return CMSampleBufferGetDuration(SBUF(p)); }
static CMTime cfkit_cm_sbuf_pts(uintptr_t p) { return CMSampleBufferGetPresentationTimeStamp(SBUF(p)); }
static CMTime cfkit_cm_sbuf_dts(uintptr_t p) { return CMSampleBufferGetDecodeTimeStamp(SBUF(p)); }
static CMTime cfkit_cm_sbuf_output_pts(uintptr_t p) { return CMSampleBufferGetOutputPresentationTimeStamp(SBUF(p)); }
static OSStatus cfkit_cm_sbuf_set_output_pts(uintptr_t p, CMTime t) {
	return CMSampleBufferSetOutputPresentationTimeStamp(SBUF(p), t);
}
static OSStatus cfkit_cm_sbuf_timing(uintptr_t p, CMItemIndex i, CMSampleTimingInfo *out) {
	return CMSampleBufferGetSampleTimingInfo(SBUF(p), i, out);
}
static size_t cfkit_cm_sbuf_sample_size(uintptr_t p, CMItemIndex i) { return CMSampleBufferGetSampleSize(SBUF(p), i); }
static size_t cfkit_cm_sbuf_total_size(uintptr_t p) { return CMSampleBufferGetTotalSampleSize(SBUF(p)); }
static CMItemCount cfkit_cm_sbuf_num_samples(uintptr_t p) { return CMSampleBufferGetNumSamples(SBUF(p)); }
static Boolean cfkit_cm_sbuf_valid(uintptr_t p) { return CMSampleBufferIsValid(SBUF(p)); }
static OSStatus cfkit_cm_sbuf_invalidate(uintptr_t p) { return CMSampleBufferInvalidate(SBUF(p)); }
*/
import "C"

import "unsafe"

func toCMTime(t CMTime) C.CMTime {
	return C.CMTime{
		value:     C.CMTimeValue(t.Value),
		timescale: C.CMTimeScale(t.Timescale),
		flags:     C.CMTimeFlags(t.Flags),
		epoch:     C.CMTimeEpoch(t.Epoch),
	}
}

func fromCMTime(t C.CMTime) CMTime {
	return CMTime{
		Value:     int64(t.value),
		Timescale: int32(t.timescale),
		Flags:     uint32(t.flags),
		Epoch:     int64(t.epoch),
	}
}

func CMTimeAdd(a, b CMTime) CMTime { return fromCMTime(C.cfkit_cm_time_add(toCMTime(a), toCMTime(b))) }

func CMTimeMultiply(t CMTime, n int32) CMTime {
	return fromCMTime(C.cfkit_cm_time_multiply(toCMTime(t), C.int32_t(n)))
}

func CMTimeGetSeconds(t CMTime) float64 { return float64(C.cfkit_cm_time_seconds(toCMTime(t))) }

func CMTimeCompare(a, b CMTime) int { return int(C.cfkit_cm_time_compare(toCMTime(a), toCMTime(b))) }

func CMBlockBufferGetTypeID() uint { return uint(C.CMBlockBufferGetTypeID()) }

// CMBlockBufferCreateWithBytes allocates a block buffer owning a copy of b.
func CMBlockBufferCreateWithBytes(b []byte) (uintptr, int32) {
	var p unsafe.Pointer
	if len(b) > 0 {
		p = unsafe.Pointer(&b[0])
	}
	var out C.uintptr_t
	st := C.cfkit_cm_block_create(p, C.size_t(len(b)), &out)
	return uintptr(out), int32(st)
}

func CMBlockBufferGetDataLength(addr uintptr) int {
	return int(C.cfkit_cm_block_len(C.uintptr_t(addr)))
}

func CMBlockBufferCopyBytes(addr uintptr) ([]byte, int32) {
	n := CMBlockBufferGetDataLength(addr)
	out := make([]byte, n)
	if n == 0 {
		return out, 0
	}
	st := C.cfkit_cm_block_copy(C.uintptr_t(addr), unsafe.Pointer(&out[0]), C.size_t(n))
	if st != 0 {
		return nil, int32(st)
	}
	return out, 0
}

func CMSampleBufferGetTypeID() uint { return uint(C.CMSampleBufferGetTypeID()) }

// CMSampleBufferCreate creates a sample buffer without a format description
// or a make-data-ready callback.
func CMSampleBufferCreate(dataBuf uintptr, ready bool, numSamples int, timing []SampleTimingInfo, sizes []int) (uintptr, int32) {
	var ctiming *C.CMSampleTimingInfo
	if len(timing) > 0 {
		ct := make([]C.CMSampleTimingInfo, len(timing))
		for i, t := range timing {
			ct[i] = C.CMSampleTimingInfo{
				duration:              toCMTime(t.Duration),
				presentationTimeStamp: toCMTime(t.PTS),
				decodeTimeStamp:       toCMTime(t.DTS),
			}
		}
		ctiming = &ct[0]
	}
	var csizes *C.size_t
	if len(sizes) > 0 {
		cs := make([]C.size_t, len(sizes))
		for i, s := range sizes {
			cs[i] = C.size_t(s)
		}
		csizes = &cs[0]
	}
	var cready C.Boolean
	if ready {
		cready = 1
	}
	var out C.uintptr_t
	st := C.cfkit_cm_sbuf_create(C.uintptr_t(dataBuf), cready, C.CMItemCount(numSamples),
		C.CMItemCount(len(timing)), ctiming, C.CMItemCount(len(sizes)), csizes, &out)
	return uintptr(out), int32(st)
}

func CMSampleBufferDataIsReady(addr uintptr) bool {
	return C.cfkit_cm_sbuf_ready(C.uintptr_t(addr)) != 0
}

func CMSampleBufferSetDataReady(addr uintptr) int32 {
	return int32(C.cfkit_cm_sbuf_set_ready(C.uintptr_t(addr)))
}

func CMSampleBufferMakeDataReady(addr uintptr) int32 {
	return int32(C.cfkit_cm_sbuf_make_ready(C.uintptr_t(addr)))
}

func CMSampleBufferSetDataBuffer(addr, dataBuf uintptr) int32 {
	return int32(C.cfkit_cm_sbuf_set_data(C.uintptr_t(addr), C.uintptr_t(dataBuf)))
}

func CMSampleBufferGetDataBuffer(addr uintptr) uintptr {
	return uintptr(C.cfkit_cm_sbuf_data(C.uintptr_t(addr)))
}

func CMSampleBufferGetImageBuffer(addr uintptr) uintptr {
	return uintptr(C.cfkit_cm_sbuf_image(C.uintptr_t(addr)))
}

func CMSampleBufferGetFormatDescription(addr uintptr) uintptr {
	return uintptr(C.cfkit_cm_sbuf_format(C.uintptr_t(addr)))
}

func CMSampleBufferGetDuration(addr uintptr) CMTime {
	return fromCMTime(C.cfkit_cm_sbuf_duration(C.uintptr_t(addr)))
}

func CMSampleBufferGetPresentationTimeStamp(addr uintptr) CMTime {
	return fromCMTime(C.cfkit_cm_sbuf_pts(C.uintptr_t(addr)))
}

func CMSampleBufferGetDecodeTimeStamp(addr uintptr) CMTime {
	return fromCMTime(C.cfkit_cm_sbuf_dts(C.uintptr_t(addr)))
}

func CMSampleBufferGetOutputPresentationTimeStamp(addr uintptr) CMTime {
	return fromCMTime(C.cfkit_cm_sbuf_output_pts(C.uintptr_t(addr)))
}

func CMSampleBufferSetOutputPresentationTimeStamp(addr uintptr, t CMTime) int32 {
	return int32(C.cfkit_cm_sbuf_set_output_pts(C.uintptr_t(addr), toCMTime(t)))
}

func CMSampleBufferGetSampleTimingInfo(addr uintptr, i int) (SampleTimingInfo, int32) {
	var out C.CMSampleTimingInfo
	st := C.cfkit_cm_sbuf_timing(C.uintptr_t(addr), C.CMItemIndex(i), &out)
	return SampleTimingInfo{
		Duration: fromCMTime(out.duration),
		PTS:      fromCMTime(out.presentationTimeStamp),
		DTS:      fromCMTime(out.decodeTimeStamp),
	}, int32(st)
}

func CMSampleBufferGetSampleSize(addr uintptr, i int) int {
	return int(C.cfkit_cm_sbuf_sample_size(C.uintptr_t(addr), C.CMItemIndex(i)))
}

func CMSampleBufferGetTotalSampleSize(addr uintptr) int {
	return int(C.cfkit_cm_sbuf_total_size(C.uintptr_t(addr)))
}

func CMSampleBufferGetNumSamples(addr uintptr) int {
	return int(C.cfkit_cm_sbuf_num_samples(C.uintptr_t(addr)))
}

func CMSampleBufferIsValid(addr uintptr) bool {
	return C.cfkit_cm_sbuf_valid(C.uintptr_t(addr)) != 0
}

func CMSampleBufferInvalidate(addr uintptr) int32 {
	return int32(C.cfkit_cm_sbuf_invalidate(C.uintptr_t(addr)))
}
