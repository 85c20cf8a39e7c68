//go:build !darwin || !cgo

package bindings

// AudioToolboxAvailable reports whether AudioUnit calls can be made. No
// audio components exist on this backend.
func AudioToolboxAvailable() error { return ErrNotBuilt }

// AudioComponentFindNext finds nothing: the emulated runtime registers no
// components.
func AudioComponentFindNext(uintptr, ComponentDesc) uintptr { return 0 }

func AudioComponentCopyName(uintptr) (uintptr, int32) { return 0, statusUnimplemented }

func AudioComponentInstanceNew(uintptr) (uintptr, int32) { return 0, statusUnimplemented }

func AudioComponentInstanceDispose(uintptr) int32 { return statusUnimplemented }

func AudioUnitInitialize(uintptr) int32 { return statusUnimplemented }

func AudioUnitUninitialize(uintptr) int32 { return statusUnimplemented }

func AudioUnitGetFloat64Property(uintptr, uint32, uint32, uint32) (float64, int32) {
	return 0, statusUnimplemented
}

func AudioUnitSetFloat64Property(uintptr, uint32, uint32, uint32, float64) int32 {
	return statusUnimplemented
}
