package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`
	Word            string  `csv:"word"`

	// Mode counts at window end
	Particles   int     `csv:"particles"`
	Forming     int     `csv:"forming"`
	Stuck       int     `csv:"stuck"`
	Dispersing  int     `csv:"dispersing"`
	Arrived     int     `csv:"arrived"`
	ArrivedFrac float64 `csv:"arrived_frac"`

	// Events during window
	Captures       int `csv:"captures"`
	Releases       int `csv:"releases"`
	DisperseClicks int `csv:"disperse_clicks"`
	FormClicks     int `csv:"form_clicks"`
	IgnoredClicks  int `csv:"ignored_clicks"`
	Completions    int `csv:"completions"`

	// Distance to target (sampled at window end)
	DistMean float64 `csv:"dist_mean"`
	DistP50  float64 `csv:"dist_p50"`
	DistP90  float64 `csv:"dist_p90"`

	SpeedMean float64 `csv:"speed_mean"`
}

// Mean returns the arithmetic mean, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}

// ComputeDistanceStats calculates mean and percentiles from distance values.
func ComputeDistanceStats(values []float64) (mean, p50, p90 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0
	}

	mean = stat.Mean(values, nil)

	// Quantile needs sorted input
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	p50 = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.9, stat.Empirical, sorted, nil)

	return mean, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.String("word", s.Word),
		slog.Int("particles", s.Particles),
		slog.Int("forming", s.Forming),
		slog.Int("stuck", s.Stuck),
		slog.Int("dispersing", s.Dispersing),
		slog.Int("arrived", s.Arrived),
		slog.Float64("arrived_frac", s.ArrivedFrac),
		slog.Int("captures", s.Captures),
		slog.Int("releases", s.Releases),
		slog.Int("disperse_clicks", s.DisperseClicks),
		slog.Int("form_clicks", s.FormClicks),
		slog.Int("ignored_clicks", s.IgnoredClicks),
		slog.Int("completions", s.Completions),
		slog.Float64("dist_mean", s.DistMean),
		slog.Float64("dist_p50", s.DistP50),
		slog.Float64("dist_p90", s.DistP90),
		slog.Float64("speed_mean", s.SpeedMean),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"word", s.Word,
		"particles", s.Particles,
		"forming", s.Forming,
		"stuck", s.Stuck,
		"dispersing", s.Dispersing,
		"arrived", s.Arrived,
		"captures", s.Captures,
		"releases", s.Releases,
		"disperse_clicks", s.DisperseClicks,
		"form_clicks", s.FormClicks,
		"completions", s.Completions,
		"dist_mean", s.DistMean,
		"dist_p90", s.DistP90,
		"speed_mean", s.SpeedMean,
	)
}
