package telemetry

import (
	"log/slog"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Phase is one timed slice of a frame.
type Phase int

const (
	PhaseInput Phase = iota
	PhaseSwarm
	PhaseTelemetry
	PhaseRender
	phaseCount
)

var phaseNames = [phaseCount]string{"input", "swarm", "telemetry", "render"}

func (p Phase) String() string {
	if p < 0 || p >= phaseCount {
		return "unknown"
	}
	return phaseNames[p]
}

// frameSample is the timing of one finished frame.
type frameSample struct {
	busy      time.Duration
	interval  time.Duration // since the previous frame began, 0 for the first frame
	phases    [phaseCount]time.Duration
	particles int
}

// PerfCollector times frame phases over a ring of recent frames.
// A frame is Begin, any number of Enter calls, then End.
type PerfCollector struct {
	ring   []frameSample
	next   int
	filled int

	cur        frameSample
	active     Phase
	inPhase    bool
	frameStart time.Time
	phaseStart time.Time
	lastBegin  time.Time

	now func() time.Time
}

// NewPerfCollector keeps the last window frames (60 when window < 1).
func NewPerfCollector(window int) *PerfCollector {
	if window < 1 {
		window = 60
	}
	return &PerfCollector{
		ring: make([]frameSample, window),
		now:  time.Now,
	}
}

// Begin starts a frame.
func (p *PerfCollector) Begin() {
	t := p.now()
	p.cur = frameSample{}
	if !p.lastBegin.IsZero() {
		p.cur.interval = t.Sub(p.lastBegin)
	}
	p.lastBegin = t
	p.frameStart = t
	p.inPhase = false
}

// Enter closes the running phase and starts phase.
func (p *PerfCollector) Enter(phase Phase) {
	t := p.now()
	p.closePhase(t)
	p.active = phase
	p.phaseStart = t
	p.inPhase = true
}

// End closes the frame. particles is the swarm size the frame simulated.
func (p *PerfCollector) End(particles int) {
	t := p.now()
	p.closePhase(t)
	p.cur.busy = t.Sub(p.frameStart)
	p.cur.particles = particles

	p.ring[p.next] = p.cur
	p.next = (p.next + 1) % len(p.ring)
	if p.filled < len(p.ring) {
		p.filled++
	}
}

func (p *PerfCollector) closePhase(t time.Time) {
	if p.inPhase {
		p.cur.phases[p.active] += t.Sub(p.phaseStart)
		p.inPhase = false
	}
}

// PerfStats summarizes the frames currently in the ring.
type PerfStats struct {
	Frames    int
	BusyMean  time.Duration
	BusyP95   time.Duration
	FrameRate float64 // frames begun per wall-clock second, including idle time
	Particles float64 // mean swarm size

	// Swarm phase cost per particle, the figure that grows with the word.
	SwarmPerParticle time.Duration

	// Share of busy time per phase, in percent.
	PhasePct [phaseCount]float64
}

// Stats aggregates the ring. Frames with no particles do not count toward SwarmPerParticle.
func (p *PerfCollector) Stats() PerfStats {
	if p.filled == 0 {
		return PerfStats{}
	}

	busy := make([]float64, 0, p.filled)
	var intervals []float64
	var particles []float64
	var busySum time.Duration
	var phaseSum [phaseCount]time.Duration
	var swarmSum time.Duration
	var particleSum int

	for _, s := range p.ring[:p.filled] {
		busy = append(busy, float64(s.busy))
		busySum += s.busy
		particles = append(particles, float64(s.particles))
		if s.interval > 0 {
			intervals = append(intervals, float64(s.interval))
		}
		for i, d := range s.phases {
			phaseSum[i] += d
		}
		if s.particles > 0 {
			swarmSum += s.phases[PhaseSwarm]
			particleSum += s.particles
		}
	}

	sort.Float64s(busy)
	stats := PerfStats{
		Frames:    p.filled,
		BusyMean:  time.Duration(stat.Mean(busy, nil)),
		BusyP95:   time.Duration(stat.Quantile(0.95, stat.Empirical, busy, nil)),
		Particles: stat.Mean(particles, nil),
	}
	if len(intervals) > 0 {
		if mean := stat.Mean(intervals, nil); mean > 0 {
			stats.FrameRate = float64(time.Second) / mean
		}
	}
	if particleSum > 0 {
		stats.SwarmPerParticle = swarmSum / time.Duration(particleSum)
	}
	if busySum > 0 {
		for i, d := range phaseSum {
			stats.PhasePct[i] = float64(d) / float64(busySum) * 100
		}
	}
	return stats
}

// Pct returns the share of busy time spent in phase.
func (s PerfStats) Pct(phase Phase) float64 {
	if phase < 0 || phase >= phaseCount {
		return 0
	}
	return s.PhasePct[phase]
}

// LogValue implements slog.LogValuer.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("frames", s.Frames),
		slog.Int64("busy_mean_us", s.BusyMean.Microseconds()),
		slog.Int64("busy_p95_us", s.BusyP95.Microseconds()),
		slog.Float64("frame_rate", s.FrameRate),
		slog.Float64("particles", s.Particles),
		slog.Int64("swarm_ns_per_particle", s.SwarmPerParticle.Nanoseconds()),
	}
	for i, pct := range s.PhasePct {
		if pct > 0.1 {
			attrs = append(attrs, slog.Float64(Phase(i).String()+"_pct", float64(int(pct*10))/10))
		}
	}
	return slog.GroupValue(attrs...)
}

// LogStats logs the summary at info level.
func (s PerfStats) LogStats() {
	slog.Info("perf", "stats", s)
}

// PerfStatsCSV is one perf.csv row.
type PerfStatsCSV struct {
	WindowEnd          int32   `csv:"window_end"`
	Frames             int     `csv:"frames"`
	BusyMeanUS         int64   `csv:"busy_mean_us"`
	BusyP95US          int64   `csv:"busy_p95_us"`
	FrameRate          float64 `csv:"frame_rate"`
	Particles          float64 `csv:"particles"`
	SwarmNSPerParticle int64   `csv:"swarm_ns_per_particle"`
	InputPct           float64 `csv:"input_pct"`
	SwarmPct           float64 `csv:"swarm_pct"`
	TelemetryPct       float64 `csv:"telemetry_pct"`
	RenderPct          float64 `csv:"render_pct"`
}

// ToCSV flattens the summary for the window ending at windowEnd.
func (s PerfStats) ToCSV(windowEnd int32) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:          windowEnd,
		Frames:             s.Frames,
		BusyMeanUS:         s.BusyMean.Microseconds(),
		BusyP95US:          s.BusyP95.Microseconds(),
		FrameRate:          s.FrameRate,
		Particles:          s.Particles,
		SwarmNSPerParticle: s.SwarmPerParticle.Nanoseconds(),
		InputPct:           s.Pct(PhaseInput),
		SwarmPct:           s.Pct(PhaseSwarm),
		TelemetryPct:       s.Pct(PhaseTelemetry),
		RenderPct:          s.Pct(PhaseRender),
	}
}
