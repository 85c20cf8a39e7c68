package arc_test

import (
	"context"
	"fmt"
	"sync"

	"github.com/hsiuhsiu/cfkit-go/pkg/cfkit/arc"
	"github.com/hsiuhsiu/cfkit-go/pkg/cfkit/logging"
)

// recordingRuntime is a foreign runtime double that counts every retain and
// release per address and records contract faults instead of crashing.
type recordingRuntime struct {
	mu       sync.Mutex
	next     uintptr
	refs     map[uintptr]int
	tags     map[uintptr]arc.Tag
	retains  map[uintptr]int
	releases map[uintptr]int
	faults   []string
}

func newRecordingRuntime() *recordingRuntime {
	return &recordingRuntime{
		next:     0x1000,
		refs:     map[uintptr]int{},
		tags:     map[uintptr]arc.Tag{},
		retains:  map[uintptr]int{},
		releases: map[uintptr]int{},
	}
}

// alloc simulates a create call: a new object with a retain count of one.
func (f *recordingRuntime) alloc(tag arc.Tag) uintptr {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.next += 0x10
	f.refs[f.next] = 1
	f.tags[f.next] = tag
	return f.next
}

func (f *recordingRuntime) Retain(addr uintptr) uintptr {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.refs[addr] <= 0 {
		f.faults = append(f.faults, fmt.Sprintf("retain of dead object %#x", addr))
	}
	f.refs[addr]++
	f.retains[addr]++
	return addr
}

func (f *recordingRuntime) Release(addr uintptr) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.refs[addr] <= 0 {
		f.faults = append(f.faults, fmt.Sprintf("release of dead object %#x", addr))
	}
	f.refs[addr]--
	f.releases[addr]++
}

func (f *recordingRuntime) TypeOf(addr uintptr) arc.Tag {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tags[addr]
}

func (f *recordingRuntime) count(addr uintptr) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.refs[addr]
}

func (f *recordingRuntime) released(addr uintptr) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.releases[addr]
}

func (f *recordingRuntime) faultList() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.faults...)
}

// hierarchyRuntime adds class inheritance on top of recordingRuntime.
type hierarchyRuntime struct {
	*recordingRuntime
	parent map[arc.Tag]arc.Tag
}

func (h *hierarchyRuntime) IsKindOf(addr uintptr, tag arc.Tag) bool {
	for t := h.TypeOf(addr); t != 0; t = h.parent[t] {
		if t == tag {
			return true
		}
	}
	return false
}

type handle struct{ addr uintptr }

func (h handle) Addr() uintptr { return h.addr }

type strHandle struct{ handle }
type numHandle struct{ handle }

const (
	tagString arc.Tag = 7
	tagNumber arc.Tag = 22
)

func declareClasses(rt arc.Runtime) (*arc.Class[handle], *arc.Class[strHandle], *arc.Class[numHandle]) {
	base := arc.Declare("Base", rt, nil, func(a uintptr) handle { return handle{a} })
	str := arc.Declare("String", rt, func() arc.Tag { return tagString }, func(a uintptr) strHandle { return strHandle{handle{a}} })
	num := arc.Declare("Number", rt, func() arc.Tag { return tagNumber }, func(a uintptr) numHandle { return numHandle{handle{a}} })
	return base, str, num
}

// captureLogger records warnings for leak assertions.
type captureLogger struct {
	mu    sync.Mutex
	warns []string
}

func (c *captureLogger) Debug(context.Context, string, ...any) {}
func (c *captureLogger) Info(context.Context, string, ...any)  {}
func (c *captureLogger) Error(context.Context, string, ...any) {}
func (c *captureLogger) Warn(_ context.Context, msg string, _ ...any) {
	c.mu.Lock()
	c.warns = append(c.warns, msg)
	c.mu.Unlock()
}
func (c *captureLogger) With(...any) logging.Logger { return c }

func (c *captureLogger) warnings() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.warns)
}
