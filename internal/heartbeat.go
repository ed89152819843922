package internal

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

// Heartbeat periodically logs the gateway's own RSS, CPU, and OS status,
// with whatever counters the stats provider adds.
type Heartbeat struct {
	log      *slog.Logger
	interval time.Duration
	stats    StatsProvider
}

func NewHeartbeat(log *slog.Logger, interval time.Duration, stats StatsProvider) *Heartbeat {
	return &Heartbeat{log: log, interval: interval, stats: stats}
}

// Run executes the heartbeat loop until the context is cancelled.
func (h *Heartbeat) Run(ctx context.Context) error {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			rss, cpu, status, err := selfStats(p)
			if err != nil {
				h.log.Error("Failed to collect self stats", "err", err)
				continue
			}
			attrs := []any{"pid", os.Getpid(), "status", status, "cpuPercent", cpu, "ramBytes", rss}
			if h.stats != nil {
				for key, value := range h.stats() {
					attrs = append(attrs, key, value)
				}
			}
			h.log.Info("Heartbeat", attrs...)
		}
	}
}

// selfStats retrieves technical metrics (Memory, CPU, and OS Status) for the given process.
func selfStats(p *process.Process) (uint64, float64, string, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, "", err
	}

	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, "", err
	}

	status, err := p.Status()
	if err != nil {
		return 0, 0, "", err
	}
	return memInfo.RSS, cpuPercent, status, nil
}
