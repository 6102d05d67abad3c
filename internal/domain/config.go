package domain

import (
	"errors"
	"fmt"
	"runtime"
	"time"
)

// Defaults for Config fields.
const (
	DefaultDetectionTimeout   = 2 * time.Second
	DefaultMeasurementTimeout = 10 * time.Minute
	DefaultReferenceTimeout   = 10 * time.Second
	DefaultTrialsPerCondition = 20
	DefaultCVWarnThreshold    = 0.5
	DefaultMeasurementPumps   = 500000
)

// DefaultDetectionPumpLadder is the unmemoized sampling ladder.
var DefaultDetectionPumpLadder = []int{3, 6, 9, 12}

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config carries every tunable of the measurement pipeline.
type Config struct {
	DetectionPumpLadder   []int
	MeasurementPumpCounts []int
	TrialsPerCondition    int
	DetectionTimeout      time.Duration
	MeasurementTimeout    time.Duration
	ReferenceTimeout      time.Duration
	ExpandTemplates       bool
	CVWarnThreshold       float64
	Workers               int
	TimeSensitive         bool
	DetectOnly            bool
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		DetectionPumpLadder:   append([]int(nil), DefaultDetectionPumpLadder...),
		MeasurementPumpCounts: []int{DefaultMeasurementPumps},
		TrialsPerCondition:    DefaultTrialsPerCondition,
		DetectionTimeout:      DefaultDetectionTimeout,
		MeasurementTimeout:    DefaultMeasurementTimeout,
		ReferenceTimeout:      DefaultReferenceTimeout,
		ExpandTemplates:       true,
		CVWarnThreshold:       DefaultCVWarnThreshold,
	}
}

// Validate reports configuration errors wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []error

	if len(c.DetectionPumpLadder) < 3 {
		errs = append(errs, fmt.Errorf("detection ladder needs at least 3 pump counts, got %d", len(c.DetectionPumpLadder)))
	}

	for i := 1; i < len(c.DetectionPumpLadder); i++ {
		if c.DetectionPumpLadder[i] <= c.DetectionPumpLadder[i-1] {
			errs = append(errs, fmt.Errorf("detection ladder must be strictly increasing: %v", c.DetectionPumpLadder))
			break
		}
	}

	if !c.DetectOnly {
		if len(c.MeasurementPumpCounts) == 0 {
			errs = append(errs, errors.New("at least one measurement pump count is required"))
		}

		for _, n := range c.MeasurementPumpCounts {
			if n <= 0 {
				errs = append(errs, fmt.Errorf("measurement pump count must be positive, got %d", n))
			}
		}

		if c.TrialsPerCondition < 1 {
			errs = append(errs, fmt.Errorf("trials per condition must be positive, got %d", c.TrialsPerCondition))
		}
	}

	if c.DetectionTimeout <= 0 || (!c.DetectOnly && c.MeasurementTimeout <= 0) {
		errs = append(errs, errors.New("timeouts must be positive"))
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// EffectiveWorkers is the worker-pool size. Time-sensitive mode always yields one.
func (c Config) EffectiveWorkers() int {
	if c.TimeSensitive {
		return 1
	}

	if c.Workers <= 0 {
		return runtime.NumCPU()
	}

	return c.Workers
}
