//go:build darwin && cgo

package bindings

/*
#cgo LDFLAGS: -framework CoreFoundation
#include <stdint.h>
#include <CoreFoundation/CoreFoundation.h>

static uintptr_t cfkit_cf_retain(uintptr_t p) { return (uintptr_t)CFRetain((CFTypeRef)p); }
static void cfkit_cf_release(uintptr_t p) { CFRelease((CFTypeRef)p); }
static CFTypeID cfkit_cf_type_id(uintptr_t p) { return CFGetTypeID((CFTypeRef)p); }
static CFIndex cfkit_cf_retain_count(uintptr_t p) { return CFGetRetainCount((CFTypeRef)p); }
static Boolean cfkit_cf_equal(uintptr_t a, uintptr_t b) { return CFEqual((CFTypeRef)a, (CFTypeRef)b); }
static CFHashCode cfkit_cf_hash(uintptr_t p) { return CFHash((CFTypeRef)p); }
static uintptr_t cfkit_cf_copy_description(uintptr_t p) { return (uintptr_t)CFCopyDescription((CFTypeRef)p); }
static uintptr_t cfkit_cf_copy_type_id_description(CFTypeID id) { return (uintptr_t)CFCopyTypeIDDescription(id); }

static uintptr_t cfkit_cf_string_create(const UInt8 *bytes, CFIndex n) {
	return (uintptr_t)CFStringCreateWithBytes(kCFAllocatorDefault, bytes, n, kCFStringEncodingUTF8, false);
}

static CFIndex cfkit_cf_string_utf8_len(uintptr_t p) {
	CFStringRef s = (CFStringRef)p;
	return CFStringGetMaximumSizeForEncoding(CFStringGetLength(s), kCFStringEncodingUTF8);
}

static CFIndex cfkit_cf_string_utf8(uintptr_t p, UInt8 *buf, CFIndex cap) {
	CFStringRef s = (CFStringRef)p;
	CFIndex used = 0;
	CFStringGetBytes(s, CFRangeMake(0, CFStringGetLength(s)), kCFStringEncodingUTF8, 0, false, buf, cap, &used);
	return used;
}

static uintptr_t cfkit_cf_number_create_i64(int64_t v) {
	return (uintptr_t)CFNumberCreate(kCFAllocatorDefault, kCFNumberSInt64Type, &v);
}

static uintptr_t cfkit_cf_number_create_f64(double v) {
	return (uintptr_t)CFNumberCreate(kCFAllocatorDefault, kCFNumberFloat64Type, &v);
}

static Boolean cfkit_cf_number_i64(uintptr_t p, int64_t *out) {
	return CFNumberGetValue((CFNumberRef)p, kCFNumberSInt64Type, out);
}

static Boolean cfkit_cf_number_f64(uintptr_t p, double *out) {
	return CFNumberGetValue((CFNumberRef)p, kCFNumberFloat64Type, out);
}

static Boolean cfkit_cf_number_is_float(uintptr_t p) { return CFNumberIsFloatType((CFNumberRef)p); }

static uintptr_t cfkit_cf_boolean_true(void) { return (uintptr_t)kCFBooleanTrue; }
static uintptr_t cfkit_cf_boolean_false(void) { return (uintptr_t)kCFBooleanFalse; }
static Boolean cfkit_cf_boolean_value(uintptr_t p) { return CFBooleanGetValue((CFBooleanRef)p); }

static uintptr_t cfkit_cf_data_create(const UInt8 *bytes, CFIndex n) {
	return (uintptr_t)CFDataCreate(kCFAllocatorDefault, bytes, n);
}

static CFIndex cfkit_cf_data_len(uintptr_t p) { return CFDataGetLength((CFDataRef)p); }
static const UInt8 *cfkit_cf_data_ptr(uintptr_t p) { return CFDataGetBytePtr((CFDataRef)p); }
*/
import "C"

import "unsafe"

// Backend names the foreign runtime this binary talks to.
const Backend = "darwin"

func CFRetain(addr uintptr) uintptr { return uintptr(C.cfkit_cf_retain(C.uintptr_t(addr))) }

func CFRelease(addr uintptr) { C.cfkit_cf_release(C.uintptr_t(addr)) }

func CFGetTypeID(addr uintptr) uint { return uint(C.cfkit_cf_type_id(C.uintptr_t(addr))) }

func CFGetRetainCount(addr uintptr) int {
	return int(C.cfkit_cf_retain_count(C.uintptr_t(addr)))
}

func CFEqual(a, b uintptr) bool {
	return C.cfkit_cf_equal(C.uintptr_t(a), C.uintptr_t(b)) != 0
}

func CFHash(addr uintptr) uint { return uint(C.cfkit_cf_hash(C.uintptr_t(addr))) }

// CFCopyDescription returns the description as a Go string; the CFString it
// copies is released before returning.
func CFCopyDescription(addr uintptr) string {
	return takeString(uintptr(C.cfkit_cf_copy_description(C.uintptr_t(addr))))
}

func CFCopyTypeIDDescription(id uint) string {
	return takeString(uintptr(C.cfkit_cf_copy_type_id_description(C.CFTypeID(id))))
}

// takeString reads and releases a +1 CFString.
func takeString(addr uintptr) string {
	if addr == 0 {
		return ""
	}
	defer CFRelease(addr)
	return CFStringValue(addr)
}

func CFStringGetTypeID() uint { return uint(C.CFStringGetTypeID()) }

func CFStringCreate(s string) uintptr {
	return uintptr(C.cfkit_cf_string_create((*C.UInt8)(unsafe.Pointer(unsafe.StringData(s))), C.CFIndex(len(s))))
}

func CFStringValue(addr uintptr) string {
	n := C.cfkit_cf_string_utf8_len(C.uintptr_t(addr))
	if n <= 0 {
		return ""
	}
	buf := make([]byte, int(n))
	used := C.cfkit_cf_string_utf8(C.uintptr_t(addr), (*C.UInt8)(unsafe.Pointer(&buf[0])), n)
	return string(buf[:int(used)])
}

func CFNumberGetTypeID() uint { return uint(C.CFNumberGetTypeID()) }

func CFNumberCreateInt64(v int64) uintptr {
	return uintptr(C.cfkit_cf_number_create_i64(C.int64_t(v)))
}

func CFNumberCreateFloat64(v float64) uintptr {
	return uintptr(C.cfkit_cf_number_create_f64(C.double(v)))
}

// CFNumberInt64 reports false when the conversion was lossy.
func CFNumberInt64(addr uintptr) (int64, bool) {
	var out C.int64_t
	ok := C.cfkit_cf_number_i64(C.uintptr_t(addr), &out) != 0
	return int64(out), ok
}

// CFNumberFloat64 reports false when the conversion was lossy.
func CFNumberFloat64(addr uintptr) (float64, bool) {
	var out C.double
	ok := C.cfkit_cf_number_f64(C.uintptr_t(addr), &out) != 0
	return float64(out), ok
}

func CFNumberIsFloat(addr uintptr) bool {
	return C.cfkit_cf_number_is_float(C.uintptr_t(addr)) != 0
}

func CFBooleanGetTypeID() uint { return uint(C.CFBooleanGetTypeID()) }

func CFBooleanTrue() uintptr { return uintptr(C.cfkit_cf_boolean_true()) }

func CFBooleanFalse() uintptr { return uintptr(C.cfkit_cf_boolean_false()) }

func CFBooleanValue(addr uintptr) bool {
	return C.cfkit_cf_boolean_value(C.uintptr_t(addr)) != 0
}

func CFDataGetTypeID() uint { return uint(C.CFDataGetTypeID()) }

func CFDataCreate(b []byte) uintptr {
	var p *C.UInt8
	if len(b) > 0 {
		p = (*C.UInt8)(unsafe.Pointer(&b[0]))
	}
	return uintptr(C.cfkit_cf_data_create(p, C.CFIndex(len(b))))
}

// CFDataBytes copies the contents of a CFData.
func CFDataBytes(addr uintptr) []byte {
	n := C.cfkit_cf_data_len(C.uintptr_t(addr))
	if n <= 0 {
		return []byte{}
	}
	return C.GoBytes(unsafe.Pointer(C.cfkit_cf_data_ptr(C.uintptr_t(addr))), C.int(n))
}

func CFDataGetLength(addr uintptr) int { return int(C.cfkit_cf_data_len(C.uintptr_t(addr))) }
