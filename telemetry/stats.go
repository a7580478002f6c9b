package telemetry

import (
	"log/slog"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated flock statistics for a window of ticks.
type WindowStats struct {
	WindowStartTick int64   `csv:"-"`
	WindowEndTick   int64   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	Agents int `csv:"agents"`

	// Fraction of ticks in the window that had a cursor to chase
	SteeredFrac float64 `csv:"steered_frac"`

	// Speed distribution at window end
	SpeedMean      float64 `csv:"speed_mean"`
	SpeedP50       float64 `csv:"speed_p50"`
	SpeedP90       float64 `csv:"speed_p90"`
	SpeedMax       float64 `csv:"speed_max"`
	AtMaxSpeedFrac float64 `csv:"at_max_speed_frac"`

	// Steering force magnitudes over the whole window, before consumption
	ForceMean float64 `csv:"force_mean"`
	ForceMax  float64 `csv:"force_max"`

	// Distance to the cursor at window end (zero without a cursor)
	TargetDistMean float64 `csv:"target_dist_mean"`
	TargetDistP90  float64 `csv:"target_dist_p90"`

	// Positional spread (standard deviation) at window end
	SpreadX float64 `csv:"spread_x"`
	SpreadY float64 `csv:"spread_y"`
}

// Quantile returns the empirical p-quantile of an ascending slice.
// Returns 0 if the slice is empty.
func Quantile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[len(sorted)-1]
	}
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

// Summarize returns mean, median, 90th percentile and maximum of values.
// values is not modified.
func Summarize(values []float64) (mean, p50, p90, maxVal float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	p50 = Quantile(sorted, 0.50)
	p90 = Quantile(sorted, 0.90)
	maxVal = floats.Max(sorted)
	return mean, p50, p90, maxVal
}

// StdDev returns the population standard deviation of values.
func StdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	_, variance := stat.PopMeanVariance(values, nil)
	if variance < 0 {
		return 0
	}
	return math.Sqrt(variance)
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_start", s.WindowStartTick),
		slog.Int64("window_end", s.WindowEndTick),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("agents", s.Agents),
		slog.Float64("steered_frac", s.SteeredFrac),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_p50", s.SpeedP50),
		slog.Float64("speed_p90", s.SpeedP90),
		slog.Float64("speed_max", s.SpeedMax),
		slog.Float64("at_max_speed_frac", s.AtMaxSpeedFrac),
		slog.Float64("force_mean", s.ForceMean),
		slog.Float64("force_max", s.ForceMax),
		slog.Float64("target_dist_mean", s.TargetDistMean),
		slog.Float64("target_dist_p90", s.TargetDistP90),
		slog.Float64("spread_x", s.SpreadX),
		slog.Float64("spread_y", s.SpreadY),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
