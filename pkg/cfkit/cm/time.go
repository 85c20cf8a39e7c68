package cm

import (
	"fmt"

	"github.com/hsiuhsiu/cfkit-go/internal/bindings"
)

// TimeFlags mirrors CMTimeFlags.
type TimeFlags uint32

const (
	TimeFlagsValid                 TimeFlags = 1 << 0
	TimeFlagsHasBeenRounded        TimeFlags = 1 << 1
	TimeFlagsPositiveInfinity      TimeFlags = 1 << 2
	TimeFlagsNegativeInfinity      TimeFlags = 1 << 3
	TimeFlagsIndefinite            TimeFlags = 1 << 4
	TimeFlagsImpliedValueFlagsMask           = TimeFlagsPositiveInfinity | TimeFlagsNegativeInfinity | TimeFlagsIndefinite
)

// Time is a rational time value, Value/Scale seconds. It is a plain value
// type copied in and out of native calls.
type Time struct {
	Value int64
	Scale int32
	Flags TimeFlags
	Epoch int64
}

// MakeTime returns a valid time of value/scale seconds.
func MakeTime(value int64, scale int32) Time {
	return Time{Value: value, Scale: scale, Flags: TimeFlagsValid}
}

// InvalidTime returns kCMTimeInvalid.
func InvalidTime() Time { return Time{} }

// ZeroTime returns kCMTimeZero.
func ZeroTime() Time { return MakeTime(0, 1) }

// IsValid reports whether the valid flag is set.
func (t Time) IsValid() bool { return t.Flags&TimeFlagsValid != 0 }

// IsNumeric reports a valid time that is neither infinite nor indefinite.
func (t Time) IsNumeric() bool {
	return t.IsValid() && t.Flags&TimeFlagsImpliedValueFlagsMask == 0
}

// Seconds returns CMTimeGetSeconds; NaN for invalid times.
func (t Time) Seconds() float64 { return bindings.CMTimeGetSeconds(t.raw()) }

// Add returns CMTimeAdd(t, o).
func (t Time) Add(o Time) Time { return fromRaw(bindings.CMTimeAdd(t.raw(), o.raw())) }

// Mul returns CMTimeMultiply(t, n).
func (t Time) Mul(n int32) Time { return fromRaw(bindings.CMTimeMultiply(t.raw(), n)) }

// Compare returns -1, 0 or 1. Invalid times sort after valid ones.
func (t Time) Compare(o Time) int { return bindings.CMTimeCompare(t.raw(), o.raw()) }

func (t Time) String() string {
	if !t.IsValid() {
		return "invalid"
	}
	return fmt.Sprintf("%d/%d", t.Value, t.Scale)
}

func (t Time) raw() bindings.CMTime {
	return bindings.CMTime{Value: t.Value, Timescale: t.Scale, Flags: uint32(t.Flags), Epoch: t.Epoch}
}

func fromRaw(t bindings.CMTime) Time {
	return Time{Value: t.Value, Scale: t.Timescale, Flags: TimeFlags(t.Flags), Epoch: t.Epoch}
}

// SampleTimingInfo is the duration and timestamps of one sample.
type SampleTimingInfo struct {
	Duration Time
	PTS      Time
	DTS      Time
}

// InvalidTimingInfo returns kCMTimingInfoInvalid.
func InvalidTimingInfo() SampleTimingInfo {
	return SampleTimingInfo{Duration: InvalidTime(), PTS: InvalidTime(), DTS: InvalidTime()}
}

func (s SampleTimingInfo) raw() bindings.SampleTimingInfo {
	return bindings.SampleTimingInfo{Duration: s.Duration.raw(), PTS: s.PTS.raw(), DTS: s.DTS.raw()}
}

func timingFromRaw(s bindings.SampleTimingInfo) SampleTimingInfo {
	return SampleTimingInfo{Duration: fromRaw(s.Duration), PTS: fromRaw(s.PTS), DTS: fromRaw(s.DTS)}
}
