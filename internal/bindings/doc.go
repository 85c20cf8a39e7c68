// Package bindings contains every foreign call cfkit makes.
//
// # Design Principles
//
//  1. Isolation: this is the only package that imports "C" or "unsafe". The
//     rest of the module sees foreign objects as uintptr addresses.
//
//  2. Minimal Surface: one Go function per framework entry point, with the
//     framework's own name. No ownership policy lives here; callers adopt or
//     borrow the returned addresses through pkg/cfkit/arc.
//
//  3. Raw Results: create calls return (addr, status), accessors return a
//     borrowed address (0 when absent) or a copied value, mutators return a
//     status. Status codes are passed through unchanged.
//
//  4. Backends: darwin builds with cgo link the real frameworks. Every other
//     build uses an emulated heap with the same retain, release and type id
//     contract, so the ownership layer can be exercised anywhere.
//
// # Ownership of returned addresses
//
// Functions named Create, Copy or New return +1 references the caller must
// release. Everything else returns borrowed addresses. The Objective-C
// helpers follow the same rule: they drain their own autorelease pool and
// return +1 where the name says so.
package bindings
