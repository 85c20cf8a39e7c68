package cfkit

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/hsiuhsiu/cfkit-go/pkg/cfkit/arc"
	"github.com/hsiuhsiu/cfkit-go/pkg/cfkit/cf"
	"github.com/hsiuhsiu/cfkit-go/pkg/cfkit/logging"
)

// Option customizes Open.
type Option func(*options)

type options struct {
	logger logging.Logger
}

// WithLogger routes leak and contract diagnostics to l instead of a text
// logger on stderr.
func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Library is an opened cfkit session. It owns no foreign objects; it holds
// the applied configuration and the outstanding reference baseline.
type Library struct {
	cfg      Config
	logger   logging.Logger
	baseline int64

	mu     sync.Mutex
	closed bool
}

// Open validates cfg and applies it process-wide.
func Open(cfg Config, opts ...Option) (*Library, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	policy, _ := arc.ParseLeakPolicy(cfg.LeakPolicy)
	level, _ := parseLevel(cfg.LogLevel)

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
		o.logger = logging.New(slog.New(h))
	}

	if cfg.TypeCacheSize > 0 {
		if err := cf.SetTypeCacheSize(cfg.TypeCacheSize); err != nil {
			return nil, fmt.Errorf("cfkit: %w", err)
		}
	}
	arc.SetLogger(o.logger)
	arc.SetLeakPolicy(policy)

	l := &Library{cfg: cfg, logger: o.logger, baseline: arc.Outstanding()}
	l.logger.Debug(context.Background(), "cfkit opened",
		"backend", Backend(), "leak_policy", policy.String(), "outstanding", l.baseline)
	return l, nil
}

// Config returns the configuration the library was opened with.
func (l *Library) Config() Config { return l.cfg }

// Logger returns the logger diagnostics are routed to.
func (l *Library) Logger() logging.Logger { return l.logger }

// Outstanding returns the change in live owned references since Open.
func (l *Library) Outstanding() int64 { return arc.Outstanding() - l.baseline }

// Close reports owned references created since Open that are still live.
// The method is idempotent, returning ErrLibraryClosed when called twice.
func (l *Library) Close() error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return ErrLibraryClosed
	}
	l.closed = true

	leaked := l.Outstanding()
	if leaked <= 0 {
		return nil
	}
	l.logger.Warn(context.Background(), "owned references outstanding at close", "count", leaked)
	if l.cfg.FailOnLeak {
		return fmt.Errorf("%w: %d outstanding", ErrLeaked, leaked)
	}
	return nil
}
