// Package ca wraps the Core Audio process tap description, the object that
// selects which processes and devices a tap listens to.
//
// CATapDescription is an Objective-C class added in macOS 14.2. On systems
// without it the constructors return ErrUnavailable.
package ca

//go:generate go run ../../../internal/cmd/cfdeclare -package ca -base ns.Id -declare ns.Declare -out zz_generated.catypes.go TapDesc:CATapDescription:classTapDescription
