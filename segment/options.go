package segment

// Options configures a segmentation run.
//
// Classes       – number of patches to split the mesh into. Must be ≥ 2.
// MaxIterations – upper bound on seed refinement rounds. Must be ≥ 1.
// FuzzyMargin   – faces whose two best membership probabilities differ by
// at most this are fuzzy and settled by a min cut. 0 selects 0.04 for up to
// three classes and 0.02 above.
type Options struct {
	Classes       int
	MaxIterations int
	FuzzyMargin   float64
}

// Option represents a functional option for Run.
type Option func(*Options)

// WithClasses sets the number of patches. Panics when k < 2.
func WithClasses(k int) Option {
	if k < 2 {
		panic("segment: WithClasses requires k >= 2")
	}
	return func(o *Options) {
		o.Classes = k
	}
}

// WithMaxIterations bounds seed refinement. Panics when n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic("segment: WithMaxIterations requires n >= 1")
	}
	return func(o *Options) {
		o.MaxIterations = n
	}
}

// WithFuzzyMargin sets the probability margin below which a face is fuzzy.
// Panics outside (0, 1).
func WithFuzzyMargin(eps float64) Option {
	if !(eps > 0 && eps < 1) {
		panic("segment: WithFuzzyMargin requires 0 < eps < 1")
	}
	return func(o *Options) {
		o.FuzzyMargin = eps
	}
}

// DefaultOptions returns Classes=2, MaxIterations=20 and an automatic
// FuzzyMargin.
func DefaultOptions() Options {
	return Options{
		Classes:       2,
		MaxIterations: 20,
		FuzzyMargin:   0,
	}
}

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.FuzzyMargin == 0 {
		cfg.FuzzyMargin = 0.04
		if cfg.Classes > 3 {
			cfg.FuzzyMargin = 0.02
		}
	}

	return cfg
}
