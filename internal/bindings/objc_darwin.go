//go:build darwin && cgo

package bindings

/*
#cgo CFLAGS: -x objective-c -fno-objc-arc -Wno-unguarded-availability-new
#cgo LDFLAGS: -framework Foundation -framework CoreAudio -lobjc
#include <stdint.h>
#include <stdlib.h>
#import <Foundation/Foundation.h>
#import <CoreAudio/CATapDescription.h>
#include <objc/runtime.h>

#define OBJ(p) ((id)(p))

static uintptr_t cfkit_objc_retain(uintptr_t p) { return (uintptr_t)[OBJ(p) retain]; }
static void cfkit_objc_release(uintptr_t p) { [OBJ(p) release]; }
static uintptr_t cfkit_objc_get_class(uintptr_t p) { return (uintptr_t)object_getClass(OBJ(p)); }
static uintptr_t cfkit_objc_look_up_class(const char *name) { return (uintptr_t)objc_lookUpClass(name); }
static const char *cfkit_objc_class_name(uintptr_t cls) { return class_getName((Class)cls); }
static NSUInteger cfkit_objc_retain_count(uintptr_t p) { return [OBJ(p) retainCount]; }

static BOOL cfkit_objc_is_kind_of(uintptr_t p, uintptr_t cls) {
	return [OBJ(p) isKindOfClass:(Class)cls];
}

// The returned buffer is malloc'd; the caller frees it.
static char *cfkit_objc_description(uintptr_t p) {
	@autoreleasepool {
		return strdup([[OBJ(p) description] UTF8String]);
	}
}

static uintptr_t cfkit_ns_string_create(const void *bytes, NSUInteger n) {
	return (uintptr_t)[[NSString alloc] initWithBytes:bytes length:n encoding:NSUTF8StringEncoding];
}

static char *cfkit_ns_string_utf8(uintptr_t p) {
	@autoreleasepool {
		const char *s = [(NSString *)OBJ(p) UTF8String];
		return strdup(s ? s : "");
	}
}

static uintptr_t cfkit_ns_number_create_i64(int64_t v) {
	return (uintptr_t)[[NSNumber alloc] initWithLongLong:v];
}

static uintptr_t cfkit_ns_number_create_f64(double v) {
	return (uintptr_t)[[NSNumber alloc] initWithDouble:v];
}

static int64_t cfkit_ns_number_i64(uintptr_t p) { return [(NSNumber *)OBJ(p) longLongValue]; }
static double cfkit_ns_number_f64(uintptr_t p) { return [(NSNumber *)OBJ(p) doubleValue]; }

static uintptr_t cfkit_ns_array_create(const uintptr_t *items, NSUInteger n) {
	return (uintptr_t)[[NSArray alloc] initWithObjects:(const id *)items count:n];
}

static NSUInteger cfkit_ns_array_count(uintptr_t p) { return [(NSArray *)OBJ(p) count]; }

static uintptr_t cfkit_ns_array_at(uintptr_t p, NSUInteger i) {
	return (uintptr_t)[(NSArray *)OBJ(p) objectAtIndex:i];
}

static uintptr_t cfkit_ca_tap_class(void) { return (uintptr_t)objc_lookUpClass("CATapDescription"); }

#define TAP(p) ((CATapDescription *)(p))

static uintptr_t cfkit_ca_tap_new(int init, uintptr_t processes, uintptr_t deviceUID, NSInteger stream) {
	Class cls = objc_lookUpClass("CATapDescription");
	if (cls == Nil) {
		return 0;
	}
	NSArray *procs = (NSArray *)OBJ(processes);
	CATapDescription *tap = [cls alloc];
	switch (init) {
	case 0: return (uintptr_t)[tap initStereoMixdownOfProcesses:procs];
	case 1: return (uintptr_t)[tap initStereoGlobalTapButExcludeProcesses:procs];
	case 2: return (uintptr_t)[tap initMonoMixdownOfProcesses:procs];
	case 3: return (uintptr_t)[tap initMonoGlobalTapButExcludeProcesses:procs];
	case 4: return (uintptr_t)[tap initWithProcesses:procs andDeviceUID:(NSString *)OBJ(deviceUID) withStream:stream];
	case 5: return (uintptr_t)[tap initExcludingProcesses:procs andDeviceUID:(NSString *)OBJ(deviceUID) withStream:stream];
	}
	[tap release];
	return 0;
}

static BOOL cfkit_ca_tap_bool(uintptr_t p, int prop) {
	switch (prop) {
	case 0: return TAP(p).isMono;
	case 1: return TAP(p).isExclusive;
	case 2: return TAP(p).isMixdown;
	case 3: return TAP(p).isPrivate;
	}
	return NO;
}

static void cfkit_ca_tap_set_bool(uintptr_t p, int prop, BOOL v) {
	switch (prop) {
	case 0: TAP(p).mono = v; break;
	case 1: TAP(p).exclusive = v; break;
	case 2: TAP(p).mixdown = v; break;
	case 3: TAP(p).privateTap = v; break;
	}
}

static uintptr_t cfkit_ca_tap_copy_name(uintptr_t p) {
	@autoreleasepool {
		return (uintptr_t)[TAP(p).name retain];
	}
}

static void cfkit_ca_tap_set_name(uintptr_t p, uintptr_t name) { TAP(p).name = (NSString *)OBJ(name); }

static char *cfkit_ca_tap_uuid(uintptr_t p) {
	@autoreleasepool {
		return strdup([[TAP(p).UUID UUIDString] UTF8String]);
	}
}

static uintptr_t cfkit_ca_tap_copy_processes(uintptr_t p) {
	@autoreleasepool {
		return (uintptr_t)[TAP(p).processes retain];
	}
}

static void cfkit_ca_tap_set_processes(uintptr_t p, uintptr_t arr) { TAP(p).processes = (NSArray *)OBJ(arr); }

static NSInteger cfkit_ca_tap_mute(uintptr_t p) { return (NSInteger)TAP(p).muteBehavior; }
static void cfkit_ca_tap_set_mute(uintptr_t p, NSInteger v) { TAP(p).muteBehavior = (CATapMuteBehavior)v; }

static uintptr_t cfkit_ca_tap_copy_device_uid(uintptr_t p) {
	@autoreleasepool {
		return (uintptr_t)[TAP(p).deviceUID retain];
	}
}

static void cfkit_ca_tap_set_device_uid(uintptr_t p, uintptr_t uid) { TAP(p).deviceUID = (NSString *)OBJ(uid); }

static BOOL cfkit_ca_tap_stream(uintptr_t p, NSInteger *out) {
	@autoreleasepool {
		NSNumber *n = TAP(p).stream;
		if (n == nil) {
			return NO;
		}
		*out = [n integerValue];
		return YES;
	}
}

static void cfkit_ca_tap_set_stream(uintptr_t p, NSInteger v, BOOL present) {
	@autoreleasepool {
		TAP(p).stream = present ? [NSNumber numberWithInteger:v] : nil;
	}
}
*/
import "C"

import "unsafe"

func goStringFree(s *C.char) string {
	if s == nil {
		return ""
	}
	defer C.free(unsafe.Pointer(s))
	return C.GoString(s)
}

func ObjcRetain(addr uintptr) uintptr { return uintptr(C.cfkit_objc_retain(C.uintptr_t(addr))) }

func ObjcRelease(addr uintptr) { C.cfkit_objc_release(C.uintptr_t(addr)) }

func ObjcGetClass(addr uintptr) uintptr { return uintptr(C.cfkit_objc_get_class(C.uintptr_t(addr))) }

func ObjcIsKindOfClass(addr, cls uintptr) bool {
	return C.cfkit_objc_is_kind_of(C.uintptr_t(addr), C.uintptr_t(cls)) != 0
}

// ObjcLookUpClass returns 0 when the class is not registered.
func ObjcLookUpClass(name string) uintptr {
	cs := C.CString(name)
	defer C.free(unsafe.Pointer(cs))
	return uintptr(C.cfkit_objc_look_up_class(cs))
}

func ObjcClassName(cls uintptr) string {
	return C.GoString(C.cfkit_objc_class_name(C.uintptr_t(cls)))
}

func ObjcRetainCount(addr uintptr) int { return int(C.cfkit_objc_retain_count(C.uintptr_t(addr))) }

func ObjcDescription(addr uintptr) string {
	return goStringFree(C.cfkit_objc_description(C.uintptr_t(addr)))
}

func NSStringCreate(s string) uintptr {
	return uintptr(C.cfkit_ns_string_create(unsafe.Pointer(unsafe.StringData(s)), C.NSUInteger(len(s))))
}

func NSStringValue(addr uintptr) string {
	return goStringFree(C.cfkit_ns_string_utf8(C.uintptr_t(addr)))
}

func NSNumberCreateInt64(v int64) uintptr {
	return uintptr(C.cfkit_ns_number_create_i64(C.int64_t(v)))
}

func NSNumberCreateFloat64(v float64) uintptr {
	return uintptr(C.cfkit_ns_number_create_f64(C.double(v)))
}

func NSNumberInt64(addr uintptr) int64 { return int64(C.cfkit_ns_number_i64(C.uintptr_t(addr))) }

func NSNumberFloat64(addr uintptr) float64 { return float64(C.cfkit_ns_number_f64(C.uintptr_t(addr))) }

// NSArrayCreate returns a +1 array retaining each element.
func NSArrayCreate(items []uintptr) uintptr {
	var p *C.uintptr_t
	if len(items) > 0 {
		p = (*C.uintptr_t)(unsafe.Pointer(&items[0]))
	}
	return uintptr(C.cfkit_ns_array_create(p, C.NSUInteger(len(items))))
}

func NSArrayCount(addr uintptr) int { return int(C.cfkit_ns_array_count(C.uintptr_t(addr))) }

// NSArrayObjectAt returns a borrowed element.
func NSArrayObjectAt(addr uintptr, i int) uintptr {
	return uintptr(C.cfkit_ns_array_at(C.uintptr_t(addr), C.NSUInteger(i)))
}

// CATapDescriptionClass returns 0 on systems without process taps.
func CATapDescriptionClass() uintptr { return uintptr(C.cfkit_ca_tap_class()) }

// CATapDescriptionNew returns a +1 tap description.
func CATapDescriptionNew(init TapInit, processes, deviceUID uintptr, stream int) (uintptr, error) {
	if CATapDescriptionClass() == 0 {
		return 0, ErrUnavailable
	}
	return uintptr(C.cfkit_ca_tap_new(C.int(init), C.uintptr_t(processes), C.uintptr_t(deviceUID), C.NSInteger(stream))), nil
}

func CATapDescriptionBool(addr uintptr, prop TapBoolProp) bool {
	return C.cfkit_ca_tap_bool(C.uintptr_t(addr), C.int(prop)) != 0
}

func CATapDescriptionSetBool(addr uintptr, prop TapBoolProp, v bool) {
	var b C.BOOL
	if v {
		b = 1
	}
	C.cfkit_ca_tap_set_bool(C.uintptr_t(addr), C.int(prop), b)
}

// CATapDescriptionCopyName returns a +1 NSString or 0.
func CATapDescriptionCopyName(addr uintptr) uintptr {
	return uintptr(C.cfkit_ca_tap_copy_name(C.uintptr_t(addr)))
}

func CATapDescriptionSetName(addr, name uintptr) {
	C.cfkit_ca_tap_set_name(C.uintptr_t(addr), C.uintptr_t(name))
}

func CATapDescriptionUUID(addr uintptr) string {
	return goStringFree(C.cfkit_ca_tap_uuid(C.uintptr_t(addr)))
}

// CATapDescriptionCopyProcesses returns a +1 NSArray of NSNumber.
func CATapDescriptionCopyProcesses(addr uintptr) uintptr {
	return uintptr(C.cfkit_ca_tap_copy_processes(C.uintptr_t(addr)))
}

func CATapDescriptionSetProcesses(addr, arr uintptr) {
	C.cfkit_ca_tap_set_processes(C.uintptr_t(addr), C.uintptr_t(arr))
}

func CATapDescriptionMuteBehavior(addr uintptr) int {
	return int(C.cfkit_ca_tap_mute(C.uintptr_t(addr)))
}

func CATapDescriptionSetMuteBehavior(addr uintptr, v int) {
	C.cfkit_ca_tap_set_mute(C.uintptr_t(addr), C.NSInteger(v))
}

// CATapDescriptionCopyDeviceUID returns a +1 NSString or 0.
func CATapDescriptionCopyDeviceUID(addr uintptr) uintptr {
	return uintptr(C.cfkit_ca_tap_copy_device_uid(C.uintptr_t(addr)))
}

func CATapDescriptionSetDeviceUID(addr, uid uintptr) {
	C.cfkit_ca_tap_set_device_uid(C.uintptr_t(addr), C.uintptr_t(uid))
}

func CATapDescriptionStream(addr uintptr) (int, bool) {
	var out C.NSInteger
	ok := C.cfkit_ca_tap_stream(C.uintptr_t(addr), &out) != 0
	return int(out), ok
}

func CATapDescriptionSetStream(addr uintptr, v int, present bool) {
	var p C.BOOL
	if present {
		p = 1
	}
	C.cfkit_ca_tap_set_stream(C.uintptr_t(addr), C.NSInteger(v), p)
}
