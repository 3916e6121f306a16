// SPDX-License-Identifier: EPL-2.0

package engine

// Defaults used by DefaultConfig.
const (
	DefaultSampleRate = 44100
	DefaultGrainSize  = 200
	DefaultDensity    = 20
	DefaultPitch      = 1.0
	DefaultMixDivisor = 4
	DefaultJitter     = HistorySize / 2
)

// Config describes an Engine at construction time.
type Config struct {
	// SampleRate of the host stream in Hz. The engine itself is rate
	// agnostic; hosts use it to convert their input before ticking.
	SampleRate int

	// GrainSize is the lifetime of newly spawned grains, in samples.
	GrainSize uint16
	// Density is the per-tick spawn probability in percent, 0..100.
	Density uint8
	// Pitch is the read speed of newly spawned grains; 1 is unchanged pitch.
	Pitch float32

	// MixDivisor is the number of active grains treated as unit gain. The
	// mix is divided by activeGrains/MixDivisor (integer division); a
	// quotient of zero yields silence.
	MixDivisor int
	// Jitter bounds how far behind the write cursor a grain may start.
	// Offsets are drawn from [-Jitter, 0).
	Jitter int

	// Rand drives spawning. When nil a time-seeded generator is used.
	Rand Rand
	// Observer, when set, is told about every spawned grain.
	Observer SpawnObserver
}

// DefaultConfig returns the stock engine settings.
func DefaultConfig() Config {
	return Config{
		SampleRate: DefaultSampleRate,
		GrainSize:  DefaultGrainSize,
		Density:    DefaultDensity,
		Pitch:      DefaultPitch,
		MixDivisor: DefaultMixDivisor,
		Jitter:     DefaultJitter,
	}
}

// Validate checks every field and returns the first *ConfigError found.
func (c Config) Validate() error {
	if c.SampleRate <= 0 {
		return configError("sample rate", c.SampleRate, ErrSampleRate)
	}
	if err := validGrainSize(c.GrainSize); err != nil {
		return err
	}
	if err := validDensity(c.Density); err != nil {
		return err
	}
	if err := validPitch(c.Pitch); err != nil {
		return err
	}
	if c.MixDivisor <= 0 {
		return configError("mix divisor", c.MixDivisor, ErrMixDivisor)
	}
	if c.Jitter < 1 || c.Jitter > HistorySize {
		return configError("jitter", c.Jitter, ErrJitter)
	}
	return nil
}
