package bindings

import "errors"

var (
	// ErrNotBuilt reports that the framework behind a call is not linked into
	// the current binary.
	ErrNotBuilt = errors.New("cfkit/internal/bindings: native framework not built")

	// ErrUnavailable reports that a class or symbol is missing from the
	// running system, typically because the OS predates it.
	ErrUnavailable = errors.New("cfkit/internal/bindings: not available on this system")
)

// CMTime mirrors the CoreMedia CMTime struct.
type CMTime struct {
	Value     int64
	Timescale int32
	Flags     uint32
	Epoch     int64
}

// CMTimeFlagsValid is kCMTimeFlags_Valid.
const CMTimeFlagsValid uint32 = 1

// SampleTimingInfo mirrors CMSampleTimingInfo.
type SampleTimingInfo struct {
	Duration CMTime
	PTS      CMTime
	DTS      CMTime
}

// ComponentDesc mirrors AudioComponentDescription.
type ComponentDesc struct {
	Type         uint32
	SubType      uint32
	Manufacturer uint32
	Flags        uint32
	FlagsMask    uint32
}

// TapInit selects the CATapDescription initializer.
type TapInit int

const (
	TapStereoMixdown TapInit = iota
	TapStereoGlobalExcluding
	TapMonoMixdown
	TapMonoGlobalExcluding
	TapProcessesAndDevice
	TapExcludingProcessesAndDevice
)

// TapBoolProp names a boolean CATapDescription property.
type TapBoolProp int

const (
	TapMono TapBoolProp = iota
	TapExclusive
	TapMixdown
	TapPrivate
)

// Status codes the emulated backend reports. They are the values the real
// frameworks use for the same conditions.
const (
	statusParamErr      = -50
	statusUnimplemented = -4

	statusCMBlockBufferBadLength   = -12704
	statusCMSampleBufferAllocFail  = -12730
	statusCMSampleBufferParamMiss  = -12731
	statusCMSampleBufferHasData    = -12732
	statusCMSampleBufferNotReady   = -12733
	statusCMSampleBufferIndexRange = -12734
	statusCMSampleBufferNoSizes    = -12735
	statusCMSampleBufferNoTiming   = -12736
	statusCMSampleBufferEntryCount = -12738
	statusCMSampleBufferInvalid    = -12744
)
