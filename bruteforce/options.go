package bruteforce

import (
	"fmt"
	"runtime"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers runs the sequential reference scan.
	DefaultWorkers = 1

	// DefaultMaxBits caps P so that 2^P candidates stay within a sane budget.
	DefaultMaxBits = 30

	// DefaultMaxCandidates disables the candidate cap.
	DefaultMaxCandidates = 0

	// DefaultDeadline disables the time budget.
	DefaultDeadline = time.Duration(0)
)

// validate is shared; validator.Validate caches struct metadata and is safe
// for concurrent use.
var validate = validator.New()

// Options configures Solve. Build it with DefaultOptions and Option setters;
// Solve validates the final value once before any work starts.
type Options struct {
	// Workers is the number of goroutines scanning disjoint index chunks.
	Workers int `validate:"gte=1"`

	// MaxBits rejects instances with more than MaxBits binary variables.
	// The upper bound keeps 1<<P inside int64.
	MaxBits int `validate:"gte=1,lte=62"`

	// MaxCandidates evaluates only the first MaxCandidates indices (0 = all).
	MaxCandidates int64 `validate:"gte=0"`

	// Deadline bounds the wall-clock time of the scan (0 = none).
	Deadline time.Duration `validate:"gte=0"`

	// Logger receives start/finish events at Debug and partial results at Warn.
	Logger zerolog.Logger `validate:"-"`

	// Metrics, when non-nil, records candidates, outcomes and durations.
	Metrics *Metrics `validate:"-"`
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the sequential, unbounded, silent configuration.
func DefaultOptions() Options {
	return Options{
		Workers:       DefaultWorkers,
		MaxBits:       DefaultMaxBits,
		MaxCandidates: DefaultMaxCandidates,
		Deadline:      DefaultDeadline,
		Logger:        zerolog.Nop(),
	}
}

// WithWorkers sets the number of scanning goroutines.
func WithWorkers(n int) Option { return func(o *Options) { o.Workers = n } }

// WithAllCPUs sets one worker per schedulable CPU (runtime.GOMAXPROCS).
func WithAllCPUs() Option {
	return func(o *Options) { o.Workers = runtime.GOMAXPROCS(0) }
}

// WithMaxBits raises or lowers the P limit (at most 62).
func WithMaxBits(n int) Option { return func(o *Options) { o.MaxBits = n } }

// WithMaxCandidates limits the scan to the first n enumeration indices.
func WithMaxCandidates(n int64) Option { return func(o *Options) { o.MaxCandidates = n } }

// WithDeadline bounds the scan duration.
func WithDeadline(d time.Duration) Option { return func(o *Options) { o.Deadline = d } }

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option { return func(o *Options) { o.Logger = l } }

// WithMetrics attaches Prometheus collectors created by NewMetrics.
func WithMetrics(m *Metrics) Option { return func(o *Options) { o.Metrics = m } }

// gatherOptions applies opts over the defaults and validates the result.
func gatherOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if err := validate.Struct(&o); err != nil {
		return Options{}, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}

	return o, nil
}
