package progress

import (
	"context"
	"time"
)

// Reporter receives fractional completion values in [0.0, 1.0].
type Reporter func(value float64)

// preCompletionCap is the highest value the estimator itself may report.
// The terminal 1.0 is reserved for the caller, emitted once the real
// operation's outcome is known.
const preCompletionCap = 0.95

// defaultSpeedFactor is used for model identifiers missing from the
// configured table. Matches the mid-tier model.
const defaultSpeedFactor = 4.0

// Estimator paces a synthetic progress signal over the expected duration of
// a blocking transcription call. The underlying inference has no native
// progress hook, so elapsed-time fraction is the only available
// approximation.
type Estimator struct {
	AudioSeconds float64
	SpeedFactor  float64
	MinSeconds   float64
	Steps        int
}

// FactorFor resolves a model's speed factor from the configured table,
// falling back to the mid-tier default for unknown identifiers.
func FactorFor(factors map[string]float64, model string) float64 {
	if f, ok := factors[model]; ok && f > 0 {
		return f
	}
	return defaultSpeedFactor
}

// EstimatedSeconds returns the expected wall-clock duration of the call,
// never below the configured floor.
func (e Estimator) EstimatedSeconds() float64 {
	factor := e.SpeedFactor
	if factor <= 0 {
		factor = defaultSpeedFactor
	}

	estimated := e.AudioSeconds / factor
	if estimated < e.MinSeconds {
		estimated = e.MinSeconds
	}
	return estimated
}

// Run emits a monotonically increasing progress signal paced over the
// estimated duration, capped at 0.95. It never emits 1.0: the caller does
// that after the real call returns. Run exits early when ctx is cancelled,
// which the caller does as soon as the blocking call finishes.
func (e Estimator) Run(ctx context.Context, report Reporter) {
	if report == nil {
		return
	}

	steps := e.Steps
	if steps <= 0 {
		steps = 100
	}

	interval := time.Duration(e.EstimatedSeconds() / float64(steps) * float64(time.Second))

	for step := 1; step <= steps; step++ {
		value := float64(step) / float64(steps)
		if value > preCompletionCap {
			value = preCompletionCap
		}
		report(value)

		select {
		case <-ctx.Done():
			return
		case <-time.After(interval):
		}
	}
}
