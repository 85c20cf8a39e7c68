// Package logging provides a minimal logging facade for cfkit.
//
// The ownership layer reports two kinds of events through it: leaked owned
// references found by the finalizer safety net, and contract violations just
// before it panics. Nothing on the hot path logs.
//
// # Default Implementation
//
//	// Use slog.Default()
//	logger := logging.New(nil)
//
//	// Use a custom slog.Logger
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	logger = logging.New(slog.New(handler))
//
// # zap
//
// Applications that already run zap can route cfkit through it:
//
//	z, _ := zap.NewProduction()
//	logger := logging.NewZap(z)
//
// # Attributes
//
// Foreign addresses should be logged with Addr so they print in hex:
//
//	logger.Warn(ctx, "leaked reference", logging.Addr("addr", obj.Addr()))
package logging
