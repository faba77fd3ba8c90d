package condition

// Config defines the conditioning parameters for one stream.
type Config struct {
	// SampleRate is the acquisition rate in Hz.
	SampleRate float64

	// LowHz and HighHz are the passband edges in Hz.
	LowHz  float64
	HighHz float64

	// Order is the Butterworth order applied per band edge.
	Order int

	// BlockSize, when positive, pins every processed block to exactly this
	// many samples. Zero accepts any non-empty length.
	BlockSize int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the default conditioning chain: a 0.5-40 Hz
// order-2 Butterworth band at a 250 Hz sample rate.
func DefaultConfig() Config {
	return Config{
		SampleRate: 250,
		LowHz:      0.5,
		HighHz:     40,
		Order:      2,
		BlockSize:  0,
	}
}

// WithSampleRate sets the acquisition sample rate in Hz.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *Config) {
		cfg.SampleRate = sampleRate
	}
}

// WithBand sets the passband edges in Hz.
func WithBand(lowHz, highHz float64) Option {
	return func(cfg *Config) {
		cfg.LowHz = lowHz
		cfg.HighHz = highHz
	}
}

// WithOrder sets the Butterworth order applied per band edge.
func WithOrder(order int) Option {
	return func(cfg *Config) {
		cfg.Order = order
	}
}

// WithBlockSize pins the processed block length. Zero accepts any length.
func WithBlockSize(blockSize int) Option {
	return func(cfg *Config) {
		cfg.BlockSize = blockSize
	}
}

// ApplyOptions applies zero or more options to the default config.
// Validation happens in New, not here, so a bad value surfaces as a
// construction error rather than being silently replaced.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
