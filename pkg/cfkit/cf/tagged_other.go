//go:build !darwin

package cf

func isTaggedPtr(uintptr) bool { return false }
