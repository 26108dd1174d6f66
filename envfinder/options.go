package envfinder

import (
	"io"
	"log/slog"
	"math"
)

// Options configures a Finder. Use DefaultOptions and the With* Option
// functions; the zero value is not a valid configuration.
type Options struct {
	// PercStrength scales the extremum when limits are derived: bonds weaker
	// than PercStrength times the strongest interaction are discarded.
	PercStrength float64
	// NoiseCutoff clamps the derived limit away from zero so that numerical
	// noise never counts as a bond. NaN disables the clamp.
	NoiseCutoff float64
	// Condition selects the chemistry policy applied to candidate bonds.
	Condition Condition
	// AdaptExtremum derives the limits from only the bonds satisfying
	// Condition instead of from all bonds.
	AdaptExtremum bool
	// LowerLimit and UpperLimit give the acceptance window explicitly.
	// Both must be set, or both left NaN to derive the window.
	LowerLimit, UpperLimit float64
	// OnlyBondsTo restricts neighbors to the given element symbols.
	OnlyBondsTo []string
	// Valences assigns a signed valence/charge per site. Required by
	// valence-discriminating conditions and cation-restricted queries.
	Valences []float64
	// Logger receives Debug-level resolution diagnostics.
	Logger *slog.Logger
}

// DefaultOptions returns the canonical configuration: 15% of the strongest
// interaction, noise cutoff 0.1, no condition, no explicit limits.
func DefaultOptions() Options {
	return Options{
		PercStrength: 0.15,
		NoiseCutoff:  0.1,
		Condition:    NoCondition,
		LowerLimit:   math.NaN(),
		UpperLimit:   math.NaN(),
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Option mutates Options before Finder construction.
type Option func(*Options)

// WithCondition sets the chemistry condition policy.
func WithCondition(c Condition) Option {
	return func(o *Options) { o.Condition = c }
}

// WithValences supplies per-site valences; the slice length must equal the
// structure's site count.
func WithValences(v []float64) Option {
	return func(o *Options) { o.Valences = v }
}

// WithPercStrength sets the percentage-of-extremum used when deriving limits.
func WithPercStrength(p float64) Option {
	return func(o *Options) { o.PercStrength = p }
}

// WithNoiseCutoff sets the noise clamp applied to derived limits.
func WithNoiseCutoff(c float64) Option {
	return func(o *Options) { o.NoiseCutoff = c }
}

// WithoutNoiseCutoff disables the noise clamp.
func WithoutNoiseCutoff() Option {
	return func(o *Options) { o.NoiseCutoff = math.NaN() }
}

// WithLimits fixes the acceptance window explicitly, bypassing derivation.
func WithLimits(lower, upper float64) Option {
	return func(o *Options) { o.LowerLimit, o.UpperLimit = lower, upper }
}

// WithAdaptedExtremum derives the limits from only the bonds satisfying the
// condition policy.
func WithAdaptedExtremum() Option {
	return func(o *Options) { o.AdaptExtremum = true }
}

// WithOnlyBondsTo restricts neighbors to bonds towards the given elements.
func WithOnlyBondsTo(elements ...string) Option {
	return func(o *Options) { o.OnlyBondsTo = elements }
}

// WithLogger sets the logger receiving resolution diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}
