// Package osstatus maps the signed status codes returned by Apple's C APIs
// onto Go errors.
//
// Zero means success. Any other value is an opaque foreign error code; this
// package never invents codes, it only attaches names to the ones each
// framework documents. Framework packages declare their codes in a Table:
//
//	var errs = osstatus.NewTable("CMSampleBuffer")
//	var ErrBufferNotReady = errs.Define("BufferNotReady", -12733)
//
// and convert raw results with errs.Err(code). errors.Is matches on the code,
// so a status returned by the framework matches the named error even when it
// was produced by a different table.
package osstatus

import (
	"errors"
	"fmt"
	"sync"

	"github.com/hsiuhsiu/cfkit-go/pkg/cfkit/mactypes"
)

// Status is an OSStatus.
type Status int32

// NoErr is the success status.
const NoErr Status = 0

// Common codes shared by most frameworks.
const (
	ParamErr   Status = -50
	MemFullErr Status = -108
	Unimpl     Status = -4
)

// Err returns nil for NoErr and an *Error otherwise.
func (s Status) Err() error {
	if s == NoErr {
		return nil
	}
	return &Error{Code: s}
}

// FourCC returns the status reinterpreted as a four char code. Several
// frameworks (AudioToolbox in particular) encode errors as 'abcd'.
func (s Status) FourCC() mactypes.FourCharCode {
	return mactypes.FourCharCode(uint32(s))
}

func (s Status) String() string {
	if cc := s.FourCC(); cc.IsPrintable() {
		return fmt.Sprintf("'%s' (%d)", cc, int32(s))
	}
	return fmt.Sprintf("%d", int32(s))
}

// Error is a foreign operation failure carrying the status code.
type Error struct {
	Code   Status
	Domain string
	Name   string
}

func (e *Error) Error() string {
	switch {
	case e.Domain != "" && e.Name != "":
		return fmt.Sprintf("%s: %s (OSStatus %s)", e.Domain, e.Name, e.Code)
	case e.Domain != "":
		return fmt.Sprintf("%s: OSStatus %s", e.Domain, e.Code)
	default:
		return fmt.Sprintf("OSStatus %s", e.Code)
	}
}

// Is matches any *Error with the same code.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// Code extracts the status from err. It returns NoErr for nil and false when
// err does not carry a foreign status.
func Code(err error) (Status, bool) {
	if err == nil {
		return NoErr, true
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code, true
	}
	return NoErr, false
}

// Table names the codes of one framework domain.
type Table struct {
	domain string

	mu    sync.RWMutex
	known map[Status]*Error
}

// NewTable returns an empty table for domain.
func NewTable(domain string) *Table {
	return &Table{domain: domain, known: make(map[Status]*Error)}
}

// Domain returns the table's domain name.
func (t *Table) Domain() string { return t.domain }

// Define registers a named code and returns its sentinel error. Defining the
// same code twice returns the first definition.
func (t *Table) Define(name string, code Status) *Error {
	if code == NoErr {
		panic("osstatus: cannot define a name for NoErr")
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if e, ok := t.known[code]; ok {
		return e
	}
	e := &Error{Code: code, Domain: t.domain, Name: name}
	t.known[code] = e
	return e
}

// Err converts a raw status. NoErr yields nil, known codes yield their
// sentinel and unknown codes yield a fresh *Error tagged with the domain.
func (t *Table) Err(code int32) error {
	s := Status(code)
	if s == NoErr {
		return nil
	}
	t.mu.RLock()
	e, ok := t.known[s]
	t.mu.RUnlock()
	if ok {
		return e
	}
	return &Error{Code: s, Domain: t.domain}
}

// Lookup returns the named error for code, if defined.
func (t *Table) Lookup(code Status) (*Error, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	e, ok := t.known[code]
	return e, ok
}
