package at

import (
	"errors"

	"github.com/hsiuhsiu/cfkit-go/pkg/cfkit/osstatus"
)

var (
	// ErrNotBuilt reports a binary built without AudioToolbox.
	ErrNotBuilt = errors.New("at: AudioToolbox is not available in this build")
	// ErrUnitClosed reports use of a Unit after Close.
	ErrUnitClosed = errors.New("at: audio unit is closed")
)

var unitErrs = osstatus.NewTable("AudioUnit")

// AudioUnit errors (kAudioUnitErr_*).
var (
	ErrInvalidProperty          = unitErrs.Define("InvalidProperty", -10879)
	ErrInvalidParameter         = unitErrs.Define("InvalidParameter", -10878)
	ErrInvalidElement           = unitErrs.Define("InvalidElement", -10877)
	ErrNoConnection             = unitErrs.Define("NoConnection", -10876)
	ErrFailedInitialization     = unitErrs.Define("FailedInitialization", -10875)
	ErrTooManyFramesToProcess   = unitErrs.Define("TooManyFramesToProcess", -10874)
	ErrInvalidFile              = unitErrs.Define("InvalidFile", -10871)
	ErrUnknownFileType          = unitErrs.Define("UnknownFileType", -10870)
	ErrFileNotSpecified         = unitErrs.Define("FileNotSpecified", -10869)
	ErrFormatNotSupported       = unitErrs.Define("FormatNotSupported", -10868)
	ErrUninitialized            = unitErrs.Define("Uninitialized", -10867)
	ErrInvalidScope             = unitErrs.Define("InvalidScope", -10866)
	ErrPropertyNotWritable      = unitErrs.Define("PropertyNotWritable", -10865)
	ErrCannotDoInCurrentContext = unitErrs.Define("CannotDoInCurrentContext", -10863)
	ErrInvalidPropertyValue     = unitErrs.Define("InvalidPropertyValue", -10851)
	ErrPropertyNotInUse         = unitErrs.Define("PropertyNotInUse", -10850)
	ErrInitialized              = unitErrs.Define("Initialized", -10849)
	ErrInvalidOfflineRender     = unitErrs.Define("InvalidOfflineRender", -10848)
	ErrUnauthorized             = unitErrs.Define("Unauthorized", -10847)
	ErrMIDIOutputBufferFull     = unitErrs.Define("MIDIOutputBufferFull", -66753)
	ErrExtensionNotFound        = unitErrs.Define("ExtensionNotFound", -66744)
	ErrInvalidFilterSelection   = unitErrs.Define("InvalidFilterSelection", -66743)
	ErrRenderTimeout            = unitErrs.Define("RenderTimeout", -66745)
)

var componentErrs = osstatus.NewTable("AudioComponent")

// AudioComponent errors (kAudioComponentErr_*).
var (
	ErrInstanceTimedOut       = componentErrs.Define("InstanceTimedOut", -66754)
	ErrDuplicateDescription   = componentErrs.Define("DuplicateDescription", -66752)
	ErrUnsupportedType        = componentErrs.Define("UnsupportedType", -66751)
	ErrTooManyInstances       = componentErrs.Define("TooManyInstances", -66750)
	ErrInstanceInvalidated    = componentErrs.Define("InstanceInvalidated", -66749)
	ErrNotPermitted           = componentErrs.Define("NotPermitted", -66748)
	ErrInitializationTimedOut = componentErrs.Define("InitializationTimedOut", -66747)
	ErrInvalidFormat          = componentErrs.Define("InvalidFormat", -66746)
)
