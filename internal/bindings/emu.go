//go:build !darwin || !cgo

package bindings

import (
	"bytes"
	"fmt"
	"math"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Backend names the foreign runtime this binary talks to.
const Backend = "emulated"

// Type ids of the emulated runtime. They match the values CoreFoundation
// assigns on current macOS releases where those are stable.
const (
	typeIDClass        uint = 1
	typeIDObject       uint = 2
	typeIDData         uint = 20
	typeIDBoolean      uint = 21
	typeIDNumber       uint = 22
	typeIDString       uint = 7
	typeIDArray        uint = 19
	typeIDBlockBuffer  uint = 0x110
	typeIDSampleBuffer uint = 0x111
)

var typeNames = map[uint]string{
	typeIDClass:        "ObjCClass",
	typeIDObject:       "NSObject",
	typeIDData:         "CFData",
	typeIDBoolean:      "CFBoolean",
	typeIDNumber:       "CFNumber",
	typeIDString:       "CFString",
	typeIDArray:        "CFArray",
	typeIDBlockBuffer:  "CMBlockBuffer",
	typeIDSampleBuffer: "CMSampleBuffer",
}

// immortalRefs is the retain count reported for constants.
const immortalRefs = math.MaxInt32

// object is one allocation on the emulated heap. Freed objects stay in the
// heap so that any later use is caught instead of silently reusing memory.
type object struct {
	typeID   uint
	class    uintptr
	refs     int
	immortal bool
	freed    bool
	payload  any
}

// container is implemented by payloads that retain other objects.
type container interface {
	children() []uintptr
}

type heap struct {
	mu   sync.Mutex
	next uintptr
	objs map[uintptr]*object
}

var emu = &heap{next: 0x100000, objs: make(map[uintptr]*object)}

func (h *heap) alloc(typeID uint, class uintptr, payload any) uintptr {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.allocLocked(typeID, class, payload, false)
}

func (h *heap) allocLocked(typeID uint, class uintptr, payload any, immortal bool) uintptr {
	h.next += 0x10
	h.objs[h.next] = &object{typeID: typeID, class: class, refs: 1, immortal: immortal, payload: payload}
	return h.next
}

// liveLocked returns the object at addr. Touching a freed or unknown address
// is the emulated equivalent of a crash in the native runtime.
func (h *heap) liveLocked(addr uintptr, op string) *object {
	o, ok := h.objs[addr]
	switch {
	case !ok:
		panic(fmt.Sprintf("bindings: %s on unknown object %#x", op, addr))
	case o.freed:
		panic(fmt.Sprintf("bindings: %s on freed object %#x", op, addr))
	}
	return o
}

// with runs fn on the live object at addr under the heap lock.
func (h *heap) with(addr uintptr, op string, fn func(o *object)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	fn(h.liveLocked(addr, op))
}

func (h *heap) retain(addr uintptr) uintptr {
	h.with(addr, "retain", func(o *object) {
		if !o.immortal {
			o.refs++
		}
	})
	return addr
}

func (h *heap) release(addr uintptr) {
	var orphans []uintptr
	h.with(addr, "release", func(o *object) {
		if o.immortal {
			return
		}
		o.refs--
		if o.refs > 0 {
			return
		}
		o.freed = true
		if c, ok := o.payload.(container); ok {
			orphans = c.children()
		}
		o.payload = nil
	})
	for _, child := range orphans {
		if child != 0 {
			h.release(child)
		}
	}
}

func (h *heap) typeOf(addr uintptr) uint {
	var id uint
	h.with(addr, "type id", func(o *object) { id = o.typeID })
	return id
}

func (h *heap) payload(addr uintptr, op string) any {
	var p any
	h.with(addr, op, func(o *object) { p = o.payload })
	return p
}

func CFRetain(addr uintptr) uintptr { return emu.retain(addr) }

func CFRelease(addr uintptr) { emu.release(addr) }

func CFGetTypeID(addr uintptr) uint { return emu.typeOf(addr) }

func CFGetRetainCount(addr uintptr) int {
	n := 0
	emu.with(addr, "retain count", func(o *object) {
		n = o.refs
		if o.immortal {
			n = immortalRefs
		}
	})
	return n
}

func CFEqual(a, b uintptr) bool {
	pa, pb := emu.payload(a, "equal"), emu.payload(b, "equal")
	if a == b {
		return true
	}
	if emu.typeOf(a) != emu.typeOf(b) {
		return false
	}
	switch va := pa.(type) {
	case string:
		return va == pb.(string)
	case number:
		return va.equal(pb.(number))
	case []byte:
		return bytes.Equal(va, pb.([]byte))
	default:
		return false
	}
}

func CFHash(addr uintptr) uint {
	switch v := emu.payload(addr, "hash").(type) {
	case string:
		return uint(xxhash.Sum64String(v))
	case []byte:
		return uint(xxhash.Sum64(v))
	case number:
		return uint(v.i)
	default:
		return uint(addr)
	}
}

func CFCopyDescription(addr uintptr) string {
	id := emu.typeOf(addr)
	switch v := emu.payload(addr, "description").(type) {
	case string:
		return v
	case number:
		return fmt.Sprintf("<%s %#x>{value = %s}", typeNames[id], addr, v)
	case bool:
		return fmt.Sprintf("<%s %#x>{value = %t}", typeNames[id], addr, v)
	case []byte:
		return fmt.Sprintf("<%s %#x>{length = %d}", typeNames[id], addr, len(v))
	default:
		return fmt.Sprintf("<%s %#x>", typeNames[id], addr)
	}
}

// CFCopyTypeIDDescription returns "" for ids the runtime does not know.
func CFCopyTypeIDDescription(id uint) string { return typeNames[id] }

func CFStringGetTypeID() uint { return typeIDString }

func CFStringCreate(s string) uintptr { return emu.alloc(typeIDString, classNSString, s) }

func CFStringValue(addr uintptr) string { return emu.payload(addr, "string value").(string) }

// number is the payload of a CFNumber / NSNumber.
type number struct {
	i       int64
	f       float64
	isFloat bool
}

func (n number) equal(o number) bool {
	if n.isFloat || o.isFloat {
		return n.float() == o.float()
	}
	return n.i == o.i
}

func (n number) float() float64 {
	if n.isFloat {
		return n.f
	}
	return float64(n.i)
}

func (n number) String() string {
	if n.isFloat {
		return fmt.Sprintf("%g", n.f)
	}
	return fmt.Sprintf("%+d", n.i)
}

func CFNumberGetTypeID() uint { return typeIDNumber }

func CFNumberCreateInt64(v int64) uintptr {
	return emu.alloc(typeIDNumber, classNSNumber, number{i: v})
}

func CFNumberCreateFloat64(v float64) uintptr {
	return emu.alloc(typeIDNumber, classNSNumber, number{f: v, i: int64(v), isFloat: true})
}

// numberValue reads a number payload. Booleans answer as 0 and 1, the way
// NSNumber reads kCFBooleanTrue and kCFBooleanFalse.
func numberValue(addr uintptr, op string) number {
	switch v := emu.payload(addr, op).(type) {
	case number:
		return v
	case bool:
		if v {
			return number{i: 1}
		}
		return number{}
	default:
		panic(fmt.Sprintf("bindings: %s on non-number object %#x", op, addr))
	}
}

func CFNumberInt64(addr uintptr) (int64, bool) {
	n := numberValue(addr, "number value")
	if n.isFloat {
		return int64(n.f), float64(int64(n.f)) == n.f
	}
	return n.i, true
}

func CFNumberFloat64(addr uintptr) (float64, bool) {
	n := numberValue(addr, "number value")
	if n.isFloat {
		return n.f, true
	}
	f := float64(n.i)
	return f, int64(f) == n.i
}

func CFNumberIsFloat(addr uintptr) bool {
	return numberValue(addr, "number type").isFloat
}

var cfTrue, cfFalse = func() (uintptr, uintptr) {
	emu.mu.Lock()
	defer emu.mu.Unlock()
	return emu.allocLocked(typeIDBoolean, classNSNumber, true, true),
		emu.allocLocked(typeIDBoolean, classNSNumber, false, true)
}()

func CFBooleanGetTypeID() uint { return typeIDBoolean }

func CFBooleanTrue() uintptr { return cfTrue }

func CFBooleanFalse() uintptr { return cfFalse }

func CFBooleanValue(addr uintptr) bool { return emu.payload(addr, "boolean value").(bool) }

func CFDataGetTypeID() uint { return typeIDData }

func CFDataCreate(b []byte) uintptr {
	return emu.alloc(typeIDData, classNSData, append([]byte{}, b...))
}

func CFDataBytes(addr uintptr) []byte {
	return append([]byte{}, emu.payload(addr, "data bytes").([]byte)...)
}

func CFDataGetLength(addr uintptr) int { return len(emu.payload(addr, "data length").([]byte)) }
