package arc

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/hsiuhsiu/cfkit-go/pkg/cfkit/logging"
)

// ErrContract is wrapped by every *ContractError.
var ErrContract = errors.New("arc: foreign ownership contract violated")

// ErrNoObject reports a create call that returned success without producing
// an object.
var ErrNoObject = errors.New("arc: foreign create call produced no object")

// Violation classifies a contract violation.
type Violation int

const (
	// NilHandle: a null handle was used where a live object is required.
	NilHandle Violation = iota + 1
	// DoubleRelease: Release was called on an already released reference.
	DoubleRelease
	// UseAfterRelease: the view of a released reference was requested.
	UseAfterRelease
	// NullAdopt: ownership of a null pointer was claimed.
	NullAdopt
)

func (v Violation) String() string {
	switch v {
	case NilHandle:
		return "nil handle"
	case DoubleRelease:
		return "double release"
	case UseAfterRelease:
		return "use after release"
	case NullAdopt:
		return "adopt of null pointer"
	default:
		return fmt.Sprintf("violation(%d)", int(v))
	}
}

// ContractError is the panic value raised on a contract violation. These are
// programmer errors: continuing would risk corrupting foreign memory, so the
// layer fails fast instead of returning them.
type ContractError struct {
	Kind Violation
	Type string
	Addr uintptr
}

func (e *ContractError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("arc: %s (addr %#x)", e.Kind, e.Addr)
	}
	return fmt.Sprintf("arc: %s on %s (addr %#x)", e.Kind, e.Type, e.Addr)
}

func (e *ContractError) Unwrap() error { return ErrContract }

type loggerBox struct{ l logging.Logger }

var logger atomic.Pointer[loggerBox]

func init() {
	logger.Store(&loggerBox{l: logging.New(nil)})
}

// SetLogger routes leak and contract diagnostics. Nil installs a no-op logger.
func SetLogger(l logging.Logger) {
	if l == nil {
		l = logging.Nop()
	}
	logger.Store(&loggerBox{l: l})
}

func diag() logging.Logger { return logger.Load().l }

// Violate logs and panics with a *ContractError. Runtimes and wrapper
// packages call it when handed a null or dead handle.
func Violate(kind Violation, typ string, addr uintptr) {
	e := &ContractError{Kind: kind, Type: typ, Addr: addr}
	diag().Error(context.Background(), "foreign ownership contract violated",
		"kind", kind.String(), "type", typ, logging.Addr("addr", addr))
	panic(e)
}
