// Package ns wraps Foundation objects through the Objective-C runtime.
//
// Id is the opaque handle every Objective-C wrapper embeds. Its runtime tag
// is the object's class, and narrowing uses isKindOfClass:, so an instance
// of a private subclass (__NSCFString, __NSArrayI) narrows to the public
// class it derives from.
//
// CoreFoundation types that are toll-free bridged share objects with this
// package: a cf.String narrows to String and the reverse.
package ns

//go:generate go run ../../../internal/cmd/cfdeclare -package ns -base Id -out zz_generated.nstypes.go String:NSString:classNSString Number:NSNumber:classNSNumber Array:NSArray:classNSArray
