package at

import (
	"github.com/hsiuhsiu/cfkit-go/internal/bindings"
	"github.com/hsiuhsiu/cfkit-go/pkg/cfkit/mactypes"
)

// ComponentDesc selects audio components. Zero fields match anything.
type ComponentDesc struct {
	Type         mactypes.FourCharCode
	SubType      mactypes.FourCharCode
	Manufacturer mactypes.FourCharCode
	Flags        uint32
	FlagsMask    uint32
}

func (d ComponentDesc) raw() bindings.ComponentDesc {
	return bindings.ComponentDesc{
		Type:         uint32(d.Type),
		SubType:      uint32(d.SubType),
		Manufacturer: uint32(d.Manufacturer),
		Flags:        d.Flags,
		FlagsMask:    d.FlagsMask,
	}
}

// Component types (kAudioUnitType_*).
var (
	TypeOutput          = mactypes.FourCC("auou")
	TypeMusicDevice     = mactypes.FourCC("aumu")
	TypeMusicEffect     = mactypes.FourCC("aumf")
	TypeFormatConverter = mactypes.FourCC("aufc")
	TypeEffect          = mactypes.FourCC("aufx")
	TypeMixer           = mactypes.FourCC("aumx")
	TypePanner          = mactypes.FourCC("aupn")
	TypeGenerator       = mactypes.FourCC("augn")
	TypeOfflineEffect   = mactypes.FourCC("auol")
	TypeMIDIProcessor   = mactypes.FourCC("aumi")
)

// Component subtypes (kAudioUnitSubType_*).
var (
	SubTypeDefaultOutput     = mactypes.FourCC("def ")
	SubTypeSystemOutput      = mactypes.FourCC("sys ")
	SubTypeHALOutput         = mactypes.FourCC("ahal")
	SubTypeVoiceProcessingIO = mactypes.FourCC("vpio")
	SubTypeConverter         = mactypes.FourCC("conv")
	SubTypeTimePitch         = mactypes.FourCC("tmpt")
	SubTypeMultiChannelMixer = mactypes.FourCC("mcmx")
	SubTypeMatrixMixer       = mactypes.FourCC("mxmx")
	SubTypeSpatialMixer      = mactypes.FourCC("3dem")
	SubTypePeakLimiter       = mactypes.FourCC("lmtr")
	SubTypeDynamicsProcessor = mactypes.FourCC("dcmp")
	SubTypeLowPassFilter     = mactypes.FourCC("lpas")
	SubTypeHighPassFilter    = mactypes.FourCC("hpas")
	SubTypeDelay             = mactypes.FourCC("dely")
	SubTypeDistortion        = mactypes.FourCC("dist")
	SubTypeNBandEQ           = mactypes.FourCC("nbeq")
	SubTypeDLSSynth          = mactypes.FourCC("dls ")
	SubTypeSampler           = mactypes.FourCC("samp")
	SubTypeAudioFilePlayer   = mactypes.FourCC("afpl")
)

// ManufacturerApple is kAudioUnitManufacturer_Apple.
var ManufacturerApple = mactypes.FourCC("appl")

// Scope is an AudioUnitScope.
type Scope uint32

const (
	ScopeGlobal Scope = iota
	ScopeInput
	ScopeOutput
	ScopeGroup
	ScopePart
	ScopeNote
	ScopeLayer
	ScopeLayerItem
)

// Element is an AudioUnitElement: a bus index within a scope.
type Element uint32

// PropID is an AudioUnitPropertyID.
type PropID uint32

// Float64 valued properties.
const (
	PropSampleRate PropID = 2
	PropCPULoad    PropID = 6
	PropLatency    PropID = 12
	PropTailTime   PropID = 20
)
