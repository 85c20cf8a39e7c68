package ca

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/hsiuhsiu/cfkit-go/internal/bindings"
	"github.com/hsiuhsiu/cfkit-go/pkg/cfkit/arc"
	"github.com/hsiuhsiu/cfkit-go/pkg/cfkit/ns"
)

// ErrUnavailable reports that the running system has no CATapDescription.
var ErrUnavailable = errors.New("ca: CATapDescription is not available on this system")

var classTapDescription = ns.ClassNamed("CATapDescription")

// Available reports whether tap descriptions can be created.
func Available() error {
	if bindings.CATapDescriptionClass() == 0 {
		return ErrUnavailable
	}
	return nil
}

// MuteBehavior controls whether tapped processes are still heard on their
// output device.
type MuteBehavior int

const (
	// Unmuted leaves the tapped audio audible.
	Unmuted MuteBehavior = iota
	// Muted silences the tapped audio.
	Muted
	// MutedWhenTapped silences the tapped audio only while a client reads
	// from the tap.
	MutedWhenTapped
)

func (m MuteBehavior) String() string {
	switch m {
	case Unmuted:
		return "unmuted"
	case Muted:
		return "muted"
	case MutedWhenTapped:
		return "muted-when-tapped"
	default:
		return fmt.Sprintf("MuteBehavior(%d)", int(m))
	}
}

func newTap(init bindings.TapInit, processes ns.Array, deviceUID string, stream int) (*arc.R[TapDesc], error) {
	procs := processes.Addr()
	if procs == 0 {
		empty, err := ns.NewArray()
		if err != nil {
			return nil, fmt.Errorf("ca: process list: %w", err)
		}
		defer empty.Release()
		procs = empty.Addr()
	}
	var uid uintptr
	if deviceUID != "" {
		s, err := ns.NewString(deviceUID)
		if err != nil {
			return nil, fmt.Errorf("ca: device uid: %w", err)
		}
		defer s.Release()
		uid = s.Addr()
	}
	addr, err := bindings.CATapDescriptionNew(init, procs, uid, stream)
	if errors.Is(err, bindings.ErrUnavailable) {
		return nil, ErrUnavailable
	}
	if err != nil {
		return nil, fmt.Errorf("ca: %w", err)
	}
	return TapDescClass.AdoptNonNull(addr)
}

// NewStereoMixdown taps the given processes, mixed down to stereo. A zero
// processes array taps no process.
func NewStereoMixdown(processes ns.Array) (*arc.R[TapDesc], error) {
	return newTap(bindings.TapStereoMixdown, processes, "", 0)
}

// NewStereoGlobalExcluding taps every process except the given ones, mixed
// down to stereo.
func NewStereoGlobalExcluding(processes ns.Array) (*arc.R[TapDesc], error) {
	return newTap(bindings.TapStereoGlobalExcluding, processes, "", 0)
}

// NewMonoMixdown taps the given processes, mixed down to mono.
func NewMonoMixdown(processes ns.Array) (*arc.R[TapDesc], error) {
	return newTap(bindings.TapMonoMixdown, processes, "", 0)
}

// NewMonoGlobalExcluding taps every process except the given ones, mixed
// down to mono.
func NewMonoGlobalExcluding(processes ns.Array) (*arc.R[TapDesc], error) {
	return newTap(bindings.TapMonoGlobalExcluding, processes, "", 0)
}

// NewWithProcessesAndDevice taps the given processes on one stream of the
// output device with the given UID.
func NewWithProcessesAndDevice(processes ns.Array, deviceUID string, stream int) (*arc.R[TapDesc], error) {
	return newTap(bindings.TapProcessesAndDevice, processes, deviceUID, stream)
}

// NewExcludingProcessesAndDevice taps every process except the given ones on
// one stream of the output device with the given UID.
func NewExcludingProcessesAndDevice(processes ns.Array, deviceUID string, stream int) (*arc.R[TapDesc], error) {
	return newTap(bindings.TapExcludingProcessesAndDevice, processes, deviceUID, stream)
}

// Name returns the human readable tap name, if one is set.
func (t TapDesc) Name() (string, bool) {
	r, err := ns.StringClass.AdoptNonNull(bindings.CATapDescriptionCopyName(t.live()))
	if err != nil {
		return "", false
	}
	defer r.Release()
	return r.Get().String(), true
}

// SetName sets the tap name. An empty name clears it.
func (t TapDesc) SetName(name string) error {
	return t.setString(name, bindings.CATapDescriptionSetName)
}

func (t TapDesc) setString(v string, set func(addr, val uintptr)) error {
	addr := t.live()
	if v == "" {
		set(addr, 0)
		return nil
	}
	s, err := ns.NewString(v)
	if err != nil {
		return fmt.Errorf("ca: %w", err)
	}
	defer s.Release()
	set(addr, s.Addr())
	return nil
}

func (t TapDesc) live() uintptr {
	if t.Addr() == 0 {
		arc.Violate(arc.NilHandle, "CATapDescription", 0)
	}
	return t.Addr()
}

// UUID returns the unique identifier the system assigned to the tap.
func (t TapDesc) UUID() (uuid.UUID, error) {
	id, err := uuid.Parse(bindings.CATapDescriptionUUID(t.live()))
	if err != nil {
		return uuid.Nil, fmt.Errorf("ca: tap uuid: %w", err)
	}
	return id, nil
}

// CopyProcesses returns an owned copy of the process object list.
func (t TapDesc) CopyProcesses() (*arc.R[ns.Array], bool) {
	r, err := ns.ArrayClass.AdoptNonNull(bindings.CATapDescriptionCopyProcesses(t.live()))
	if err != nil {
		return nil, false
	}
	return r, true
}

// SetProcesses replaces the process object list.
func (t TapDesc) SetProcesses(processes ns.Array) {
	bindings.CATapDescriptionSetProcesses(t.live(), processes.Addr())
}

// IsMono reports whether the tap mixes down to mono.
func (t TapDesc) IsMono() bool { return bindings.CATapDescriptionBool(t.live(), bindings.TapMono) }

// SetMono selects a mono mixdown.
func (t TapDesc) SetMono(v bool) { bindings.CATapDescriptionSetBool(t.live(), bindings.TapMono, v) }

// IsExclusive reports whether the process list names the processes to
// leave out rather than the ones to tap.
func (t TapDesc) IsExclusive() bool {
	return bindings.CATapDescriptionBool(t.live(), bindings.TapExclusive)
}

// SetExclusive selects whether the process list is an exclusion list.
func (t TapDesc) SetExclusive(v bool) {
	bindings.CATapDescriptionSetBool(t.live(), bindings.TapExclusive, v)
}

// IsMixdown reports whether the tapped audio is mixed down to the tap's
// channel layout.
func (t TapDesc) IsMixdown() bool {
	return bindings.CATapDescriptionBool(t.live(), bindings.TapMixdown)
}

// SetMixdown selects whether tapped audio is mixed down.
func (t TapDesc) SetMixdown(v bool) {
	bindings.CATapDescriptionSetBool(t.live(), bindings.TapMixdown, v)
}

// IsPrivate reports whether the tap is visible only to the creating process.
func (t TapDesc) IsPrivate() bool {
	return bindings.CATapDescriptionBool(t.live(), bindings.TapPrivate)
}

// SetPrivate selects whether the tap is visible only to this process.
func (t TapDesc) SetPrivate(v bool) {
	bindings.CATapDescriptionSetBool(t.live(), bindings.TapPrivate, v)
}

// MuteBehavior reports how tapped processes are muted.
func (t TapDesc) MuteBehavior() MuteBehavior {
	return MuteBehavior(bindings.CATapDescriptionMuteBehavior(t.live()))
}

// SetMuteBehavior sets how tapped processes are muted.
func (t TapDesc) SetMuteBehavior(m MuteBehavior) {
	bindings.CATapDescriptionSetMuteBehavior(t.live(), int(m))
}

// DeviceUID returns the UID of the tapped output device, if any.
func (t TapDesc) DeviceUID() (string, bool) {
	r, err := ns.StringClass.AdoptNonNull(bindings.CATapDescriptionCopyDeviceUID(t.live()))
	if err != nil {
		return "", false
	}
	defer r.Release()
	return r.Get().String(), true
}

// SetDeviceUID sets the tapped output device. An empty UID clears it.
func (t TapDesc) SetDeviceUID(uid string) error {
	return t.setString(uid, bindings.CATapDescriptionSetDeviceUID)
}

// Stream returns the tapped stream index of the device, if one is set.
func (t TapDesc) Stream() (int, bool) { return bindings.CATapDescriptionStream(t.live()) }

// SetStream selects a stream index of the tapped device.
func (t TapDesc) SetStream(i int) { bindings.CATapDescriptionSetStream(t.live(), i, true) }

// ClearStream removes the stream selection.
func (t TapDesc) ClearStream() { bindings.CATapDescriptionSetStream(t.live(), 0, false) }
