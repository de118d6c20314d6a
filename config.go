package qreg

// DefaultEpsilon is the tolerance used by every closeness, unitarity and
// purity check unless a caller overrides it.
const DefaultEpsilon = 1e-6

/*
Config carries the numeric policy shared by all comparisons. A single epsilon
parameterizes IsClose, IsUnitary and IsPure so that call sites never hard-code
their own tolerance.
*/
type Config struct {
	Epsilon     float64
	GlobalPhase bool
}

func NewConfig() *Config {
	return &Config{
		Epsilon: DefaultEpsilon,
	}
}

// CompareOption configures a single comparison.
type CompareOption func(*Config)

// WithEpsilon overrides the tolerance for one comparison.
func WithEpsilon(eps float64) CompareOption {
	return func(cfg *Config) {
		cfg.Epsilon = eps
	}
}

// WithConfig copies every field of a prepared Config.
func WithConfig(other *Config) CompareOption {
	return func(cfg *Config) {
		if other != nil {
			*cfg = *other
		}
	}
}

/*
WithGlobalPhase makes IsClose ignore a global phase factor e^{iφ}. The
default comparison is the literal element-wise one.
*/
func WithGlobalPhase() CompareOption {
	return func(cfg *Config) {
		cfg.GlobalPhase = true
	}
}

func resolve(opts []CompareOption) *Config {
	cfg := NewConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
