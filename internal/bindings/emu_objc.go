//go:build !darwin || !cgo

package bindings

import (
	"fmt"

	"github.com/google/uuid"
)

// objcClass is the payload of a class object.
type objcClass struct {
	name  string
	super uintptr
}

var classes = map[string]uintptr{}

func defineClass(name string, super uintptr) uintptr {
	emu.mu.Lock()
	defer emu.mu.Unlock()
	cls := emu.allocLocked(typeIDClass, 0, objcClass{name: name, super: super}, true)
	classes[name] = cls
	return cls
}

var (
	classNSObject         = defineClass("NSObject", 0)
	classNSString         = defineClass("NSString", classNSObject)
	classNSValue          = defineClass("NSValue", classNSObject)
	classNSNumber         = defineClass("NSNumber", classNSValue)
	classNSData           = defineClass("NSData", classNSObject)
	classNSArray          = defineClass("NSArray", classNSObject)
	classNSCFType         = defineClass("__NSCFType", classNSObject)
	classCATapDescription = defineClass("CATapDescription", classNSObject)
)

func ObjcRetain(addr uintptr) uintptr { return emu.retain(addr) }

func ObjcRelease(addr uintptr) { emu.release(addr) }

func ObjcGetClass(addr uintptr) uintptr {
	var cls uintptr
	emu.with(addr, "object_getClass", func(o *object) { cls = o.class })
	return cls
}

func ObjcIsKindOfClass(addr, cls uintptr) bool {
	emu.mu.Lock()
	defer emu.mu.Unlock()
	for c := emu.liveLocked(addr, "isKindOfClass").class; c != 0; {
		if c == cls {
			return true
		}
		c = emu.liveLocked(c, "superclass").payload.(objcClass).super
	}
	return false
}

// ObjcLookUpClass returns 0 when the class is not registered.
func ObjcLookUpClass(name string) uintptr {
	emu.mu.Lock()
	defer emu.mu.Unlock()
	return classes[name]
}

func ObjcClassName(cls uintptr) string {
	c, ok := emu.payload(cls, "class_getName").(objcClass)
	if !ok {
		panic(fmt.Sprintf("bindings: %#x is not a class", cls))
	}
	return c.name
}

func ObjcRetainCount(addr uintptr) int { return CFGetRetainCount(addr) }

func ObjcDescription(addr uintptr) string {
	switch v := emu.payload(addr, "description").(type) {
	case string:
		return v
	case number:
		if v.isFloat {
			return fmt.Sprintf("%g", v.f)
		}
		return fmt.Sprintf("%d", v.i)
	case *nsArray:
		return fmt.Sprintf("(%d items)", len(v.items))
	default:
		return fmt.Sprintf("<%s: %#x>", ObjcClassName(ObjcGetClass(addr)), addr)
	}
}

func NSStringCreate(s string) uintptr { return emu.alloc(typeIDString, classNSString, s) }

func NSStringValue(addr uintptr) string { return CFStringValue(addr) }

func NSNumberCreateInt64(v int64) uintptr { return CFNumberCreateInt64(v) }

func NSNumberCreateFloat64(v float64) uintptr { return CFNumberCreateFloat64(v) }

func NSNumberInt64(addr uintptr) int64 {
	v, _ := CFNumberInt64(addr)
	return v
}

func NSNumberFloat64(addr uintptr) float64 {
	v, _ := CFNumberFloat64(addr)
	return v
}

type nsArray struct {
	items []uintptr
}

func (a *nsArray) children() []uintptr { return a.items }

// NSArrayCreate returns a +1 array retaining each element.
func NSArrayCreate(items []uintptr) uintptr {
	held := make([]uintptr, len(items))
	for i, it := range items {
		held[i] = emu.retain(it)
	}
	return emu.alloc(typeIDArray, classNSArray, &nsArray{items: held})
}

func NSArrayCount(addr uintptr) int { return len(emu.payload(addr, "count").(*nsArray).items) }

// NSArrayObjectAt returns a borrowed element.
func NSArrayObjectAt(addr uintptr, i int) uintptr {
	items := emu.payload(addr, "objectAtIndex").(*nsArray).items
	if i < 0 || i >= len(items) {
		panic(fmt.Sprintf("bindings: index %d beyond bounds [0 .. %d]", i, len(items)-1))
	}
	return items[i]
}

// tapDesc is the payload of an emulated CATapDescription.
type tapDesc struct {
	name      uintptr
	uuid      string
	processes uintptr
	bools     [4]bool
	mute      int
	deviceUID uintptr
	stream    int
	hasStream bool
}

func (t *tapDesc) children() []uintptr { return []uintptr{t.name, t.processes, t.deviceUID} }

// CATapDescriptionClass returns 0 on systems without process taps.
func CATapDescriptionClass() uintptr { return classCATapDescription }

// CATapDescriptionNew returns a +1 tap description.
func CATapDescriptionNew(init TapInit, processes, deviceUID uintptr, stream int) (uintptr, error) {
	t := &tapDesc{uuid: uuid.NewString()}
	if processes != 0 {
		t.processes = emu.retain(processes)
	} else {
		t.processes = NSArrayCreate(nil)
	}
	switch init {
	case TapStereoMixdown:
		t.bools[TapMixdown] = true
	case TapStereoGlobalExcluding:
		t.bools[TapMixdown] = true
		t.bools[TapExclusive] = true
	case TapMonoMixdown:
		t.bools[TapMixdown] = true
		t.bools[TapMono] = true
	case TapMonoGlobalExcluding:
		t.bools[TapMixdown] = true
		t.bools[TapMono] = true
		t.bools[TapExclusive] = true
	case TapProcessesAndDevice, TapExcludingProcessesAndDevice:
		t.bools[TapExclusive] = init == TapExcludingProcessesAndDevice
		if deviceUID != 0 {
			t.deviceUID = NSStringCreate(NSStringValue(deviceUID))
		}
		t.stream, t.hasStream = stream, true
	default:
		emu.release(t.processes)
		return 0, fmt.Errorf("bindings: unknown tap initializer %d", init)
	}
	return emu.alloc(typeIDObject, classCATapDescription, t), nil
}

func tap(addr uintptr, fn func(t *tapDesc)) {
	emu.with(addr, "CATapDescription", func(o *object) { fn(o.payload.(*tapDesc)) })
}

func CATapDescriptionBool(addr uintptr, prop TapBoolProp) bool {
	var v bool
	tap(addr, func(t *tapDesc) { v = t.bools[prop] })
	return v
}

func CATapDescriptionSetBool(addr uintptr, prop TapBoolProp, v bool) {
	tap(addr, func(t *tapDesc) { t.bools[prop] = v })
}

// copyProp returns a +1 reference to the object held in a property slot.
func copyProp(addr uintptr, get func(t *tapDesc) uintptr) uintptr {
	var v uintptr
	tap(addr, func(t *tapDesc) { v = get(t) })
	if v == 0 {
		return 0
	}
	return emu.retain(v)
}

// setProp stores a copy-semantics object property: strings are copied,
// immutable arrays are retained.
func setProp(addr, val uintptr, slot func(t *tapDesc) *uintptr) {
	var next uintptr
	switch {
	case val == 0:
	case emu.typeOf(val) == typeIDString:
		next = NSStringCreate(NSStringValue(val))
	default:
		next = emu.retain(val)
	}
	var prev uintptr
	tap(addr, func(t *tapDesc) {
		p := slot(t)
		prev, *p = *p, next
	})
	if prev != 0 {
		emu.release(prev)
	}
}

// CATapDescriptionCopyName returns a +1 NSString or 0.
func CATapDescriptionCopyName(addr uintptr) uintptr {
	return copyProp(addr, func(t *tapDesc) uintptr { return t.name })
}

func CATapDescriptionSetName(addr, name uintptr) {
	setProp(addr, name, func(t *tapDesc) *uintptr { return &t.name })
}

func CATapDescriptionUUID(addr uintptr) string {
	var s string
	tap(addr, func(t *tapDesc) { s = t.uuid })
	return s
}

// CATapDescriptionCopyProcesses returns a +1 NSArray of NSNumber.
func CATapDescriptionCopyProcesses(addr uintptr) uintptr {
	return copyProp(addr, func(t *tapDesc) uintptr { return t.processes })
}

func CATapDescriptionSetProcesses(addr, arr uintptr) {
	setProp(addr, arr, func(t *tapDesc) *uintptr { return &t.processes })
}

func CATapDescriptionMuteBehavior(addr uintptr) int {
	var v int
	tap(addr, func(t *tapDesc) { v = t.mute })
	return v
}

func CATapDescriptionSetMuteBehavior(addr uintptr, v int) {
	tap(addr, func(t *tapDesc) { t.mute = v })
}

// CATapDescriptionCopyDeviceUID returns a +1 NSString or 0.
func CATapDescriptionCopyDeviceUID(addr uintptr) uintptr {
	return copyProp(addr, func(t *tapDesc) uintptr { return t.deviceUID })
}

func CATapDescriptionSetDeviceUID(addr, uid uintptr) {
	setProp(addr, uid, func(t *tapDesc) *uintptr { return &t.deviceUID })
}

func CATapDescriptionStream(addr uintptr) (int, bool) {
	var (
		v  int
		ok bool
	)
	tap(addr, func(t *tapDesc) { v, ok = t.stream, t.hasStream })
	return v, ok
}

func CATapDescriptionSetStream(addr uintptr, v int, present bool) {
	tap(addr, func(t *tapDesc) {
		t.stream, t.hasStream = v, present
		if !present {
			t.stream = 0
		}
	})
}
