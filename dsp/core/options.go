package core

// SamplingConfig describes a uniformly sampled time axis.
type SamplingConfig struct {
	Start float64 // time of the first sample
	Step  float64 // time between consecutive samples
}

// SamplingOption mutates a SamplingConfig.
type SamplingOption func(*SamplingConfig)

// DefaultSamplingConfig returns a unit-step axis starting at zero.
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Start: 0,
		Step:  1,
	}
}

// WithStep sets the sampling interval.
func WithStep(step float64) SamplingOption {
	return func(cfg *SamplingConfig) {
		if step > 0 {
			cfg.Step = step
		}
	}
}

// WithStart sets the time of the first sample.
func WithStart(start float64) SamplingOption {
	return func(cfg *SamplingConfig) {
		cfg.Start = start
	}
}

// ApplySamplingOptions applies zero or more options to the default config.
func ApplySamplingOptions(opts ...SamplingOption) SamplingConfig {
	cfg := DefaultSamplingConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
