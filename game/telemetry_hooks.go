package game

import "log/slog"

// flushTelemetry writes the stats window once it is full.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	g.distances = g.swarm.Distances(g.distances)
	g.speeds = g.swarm.Speeds(g.speeds)

	stats := g.collector.Flush(g.tick, g.word, g.swarm.Counts(), g.distances, g.speeds)
	perfStats := g.perfCollector.Stats()

	// Log stats if enabled (console output)
	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if g.outputManager != nil {
		if err := g.outputManager.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}
