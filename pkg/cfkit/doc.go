// Package cfkit is the entry point of the cfkit foreign object bindings.
//
// The subpackages do the work:
//
//   - arc: owned references, retain/release bookkeeping and narrowing.
//   - cf: CoreFoundation types.
//   - cm: CoreMedia time values and sample buffers.
//   - at: AudioToolbox components and audio units.
//   - ns, ca: Foundation objects and Core Audio tap descriptions.
//   - osstatus, mactypes: status codes and four char codes.
//
// This package ties them to process-wide settings. Open applies a Config
// (leak policy, logger, type cache size) and records how many owned
// references exist; Close reports the references created since then that
// were never released:
//
//	cfg, err := cfkit.LoadConfig("cfkit.toml")
//	if err != nil {
//		return err
//	}
//	lib, err := cfkit.Open(cfg)
//	if err != nil {
//		return err
//	}
//	defer lib.Close()
//
// Nothing requires Open; the subpackages work with their defaults.
package cfkit
