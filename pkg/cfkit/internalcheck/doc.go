// Package internalcheck holds policy tests over the cfkit source tree.
//
// The tests load the module with golang.org/x/tools/go/packages and fail on
// code that breaks the ownership rules the type system cannot express:
// foreign calls outside internal/bindings, stale generated declarations,
// and owned references returned from functions whose names do not say so.
//
// # Internal Use Only
//
// This package contains no API. It exists so that go test ./... enforces
// the policies.
package internalcheck
