// Package arc implements the ownership model shared by every foreign object
// wrapper in cfkit.
//
// Native frameworks hand out pointers to reference-counted objects whose
// layout and allocator Go never sees. The package models them with four
// pieces:
//
//   - Object: a typed, non-owning handle around one non-null address.
//   - Runtime: the retain, release and type-of primitives of a foreign
//     object system (CoreFoundation, the Objective-C runtime).
//   - R: an owned reference, accountable for exactly one retain count and
//     releasing it exactly once.
//   - Class: the per-subtype declaration that wraps addresses, adopts create
//     results, retains, and narrows by runtime type identity.
//
// # Ownership
//
// Create calls that transfer a retain count go through Class.Create or
// Class.Adopt and yield an *R. Accessors that return borrowed pointers go
// through Class.Borrow and yield a plain handle that must not outlive the
// owner it came from. Duplicating ownership is explicit:
//
//	a, err := cf.NewString("shared")
//	if err != nil {
//	    return err
//	}
//	defer a.Release()
//
//	b := a.Retained() // second owner, second release
//	defer b.Release()
//
// # Errors
//
// Misuse (null handles, double release, use after release) panics with a
// *ContractError wrapping ErrContract. Failures reported by the foreign
// runtime are returned as *osstatus.Error values. Absent values are returned
// as (T, false).
//
// # Leaks
//
// A finalizer acts as a safety net for references dropped without Release;
// see LeakPolicy. Outstanding counts live references for leak checks.
package arc
