//go:build darwin && cgo

package bindings

/*
#cgo LDFLAGS: -framework AudioToolbox -framework CoreFoundation
#include <stdint.h>
#include <AudioToolbox/AudioToolbox.h>

static uintptr_t cfkit_at_find_next(uintptr_t prev, AudioComponentDescription desc) {
	return (uintptr_t)AudioComponentFindNext((AudioComponent)prev, &desc);
}

static OSStatus cfkit_at_copy_name(uintptr_t comp, uintptr_t *out) {
	CFStringRef name = NULL;
	OSStatus st = AudioComponentCopyName((AudioComponent)comp, &name);
	*out = (uintptr_t)name;
	return st;
}

static OSStatus cfkit_at_instance_new(uintptr_t comp, uintptr_t *out) {
	AudioComponentInstance inst = NULL;
	OSStatus st = AudioComponentInstanceNew((AudioComponent)comp, &inst);
	*out = (uintptr_t)inst;
	return st;
}

static OSStatus cfkit_at_instance_dispose(uintptr_t inst) {
	return AudioComponentInstanceDispose((AudioComponentInstance)inst);
}

static OSStatus cfkit_at_initialize(uintptr_t inst) { return AudioUnitInitialize((AudioUnit)inst); }
static OSStatus cfkit_at_uninitialize(uintptr_t inst) { return AudioUnitUninitialize((AudioUnit)inst); }

static OSStatus cfkit_at_get_f64(uintptr_t inst, AudioUnitPropertyID id, AudioUnitScope scope,
	AudioUnitElement el, Float64 *out) {
	UInt32 size = sizeof(Float64);
	return AudioUnitGetProperty((AudioUnit)inst, id, scope, el, out, &size);
}

static OSStatus cfkit_at_set_f64(uintptr_t inst, AudioUnitPropertyID id, AudioUnitScope scope,
	AudioUnitElement el, Float64 v) {
	return AudioUnitSetProperty((AudioUnit)inst, id, scope, el, &v, sizeof(Float64));
}
*/
import "C"

// AudioToolboxAvailable reports whether AudioUnit calls can be made.
func AudioToolboxAvailable() error { return nil }

func AudioComponentFindNext(prev uintptr, desc ComponentDesc) uintptr {
	cdesc := C.AudioComponentDescription{
		componentType:         C.OSType(desc.Type),
		componentSubType:      C.OSType(desc.SubType),
		componentManufacturer: C.OSType(desc.Manufacturer),
		componentFlags:        C.UInt32(desc.Flags),
		componentFlagsMask:    C.UInt32(desc.FlagsMask),
	}
	return uintptr(C.cfkit_at_find_next(C.uintptr_t(prev), cdesc))
}

// AudioComponentCopyName returns a +1 CFString.
func AudioComponentCopyName(comp uintptr) (uintptr, int32) {
	var out C.uintptr_t
	st := C.cfkit_at_copy_name(C.uintptr_t(comp), &out)
	return uintptr(out), int32(st)
}

func AudioComponentInstanceNew(comp uintptr) (uintptr, int32) {
	var out C.uintptr_t
	st := C.cfkit_at_instance_new(C.uintptr_t(comp), &out)
	return uintptr(out), int32(st)
}

func AudioComponentInstanceDispose(inst uintptr) int32 {
	return int32(C.cfkit_at_instance_dispose(C.uintptr_t(inst)))
}

func AudioUnitInitialize(inst uintptr) int32 {
	return int32(C.cfkit_at_initialize(C.uintptr_t(inst)))
}

func AudioUnitUninitialize(inst uintptr) int32 {
	return int32(C.cfkit_at_uninitialize(C.uintptr_t(inst)))
}

func AudioUnitGetFloat64Property(inst uintptr, prop, scope, element uint32) (float64, int32) {
	var out C.Float64
	st := C.cfkit_at_get_f64(C.uintptr_t(inst), C.AudioUnitPropertyID(prop), C.AudioUnitScope(scope),
		C.AudioUnitElement(element), &out)
	return float64(out), int32(st)
}

func AudioUnitSetFloat64Property(inst uintptr, prop, scope, element uint32, v float64) int32 {
	return int32(C.cfkit_at_set_f64(C.uintptr_t(inst), C.AudioUnitPropertyID(prop), C.AudioUnitScope(scope),
		C.AudioUnitElement(element), C.Float64(v)))
}
