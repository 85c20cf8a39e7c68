// Package cf wraps CoreFoundation objects.
//
// Type is the opaque handle every CoreFoundation wrapper embeds. Subtypes
// (String, Number, Boolean, Data, and the CoreMedia buffers in package cm)
// are declared with Declare and narrowed from a Type with their As function
// or the TryAs helpers, which compare CFGetTypeID against the subtype's id:
//
//	s, err := cf.NewString("hello")
//	if err != nil {
//		return err
//	}
//	defer s.Release()
//
//	var generic cf.Type = s.Get().Type
//	if _, ok := generic.TryAsNumber(); ok {
//		// unreachable: a CFString never narrows to CFNumber
//	}
//
// Objects obtained from create calls come back as *arc.R owned references.
// Constants such as True and False are borrowed and need no release.
package cf

//go:generate go run ../../../internal/cmd/cfdeclare -package cf -out zz_generated.cftypes.go String:CFString:bindings.CFStringGetTypeID Number:CFNumber:bindings.CFNumberGetTypeID Boolean:CFBoolean:bindings.CFBooleanGetTypeID Data:CFData:bindings.CFDataGetTypeID
