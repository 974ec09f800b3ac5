package qubo

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultScale multiplies every coefficient. It rescales the energy
	// landscape for annealing hardware without moving the minimizer.
	DefaultScale = 1.0 / 8

	// DefaultDiagonalShift is added to every diagonal entry after scaling.
	// Zero leaves the derived coefficients untouched.
	DefaultDiagonalShift = 0.0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicScaleInvalid = "qubo: WithScale: scale must be finite and > 0"
	panicShiftInvalid = "qubo: WithDiagonalShift: shift must be finite"
)

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	scale     float64 // > 0; DefaultScale
	diagShift float64 // finite; DefaultDiagonalShift
}

// WithScale sets the coefficient scale factor. A non-positive scale would
// flip or erase the minimizer, so it panics like any other nonsensical value.
func WithScale(scale float64) Option {
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
		panic(panicScaleInvalid)
	}

	return func(o *Options) { o.scale = scale }
}

// WithDiagonalShift adds eps to every diagonal entry (i, i), i < P, after
// scaling. A diagonal whose derived coefficient is zero then carries eps.
// Adding the same constant to every linear term favours assignments with
// fewer set bits when eps > 0; use it only as an explicit regularizer.
func WithDiagonalShift(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicShiftInvalid)
	}

	return func(o *Options) { o.diagShift = eps }
}

// defaultOptions returns the zero-option configuration.
func defaultOptions() Options {
	return Options{
		scale:     DefaultScale,
		diagShift: DefaultDiagonalShift,
	}
}

// gatherOptions applies opts in order over the defaults; nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
