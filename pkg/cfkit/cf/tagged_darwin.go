package cf

// isTaggedPtr reports the 64-bit Apple tagged pointer encoding, which sets
// the top address bit.
func isTaggedPtr(addr uintptr) bool { return uint64(addr)>>63 == 1 }
