package container

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/arashek/ade/internal/events"
)

// Monitor re-evaluates the health of running containers on a fixed interval.
// Health moves from starting to healthy or unhealthy based on whether the
// runtime still reports the container as up.
type Monitor struct {
	manager  *Manager
	interval time.Duration
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewMonitor creates a health monitor for the manager's containers
func NewMonitor(manager *Manager, interval time.Duration) *Monitor {
	return &Monitor{
		manager:  manager,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start launches the monitoring loop in a background goroutine
func (mon *Monitor) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	mon.cancel = cancel

	go mon.run(ctx)
	log.Info().Dur("interval", mon.interval).Msg("Health monitor started")
}

// Stop terminates the monitoring loop and waits for it to exit
func (mon *Monitor) Stop() {
	if mon.cancel == nil {
		return
	}
	mon.cancel()
	<-mon.done
	log.Info().Msg("Health monitor stopped")
}

func (mon *Monitor) run(ctx context.Context) {
	defer close(mon.done)

	ticker := time.NewTicker(mon.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			mon.sweep(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// sweep checks every running container against the runtime
func (mon *Monitor) sweep(ctx context.Context) {
	m := mon.manager

	m.mu.RLock()
	running := make([]*managed, 0)
	for _, c := range m.containers {
		if c.state == StateRunning {
			running = append(running, c)
		}
	}
	m.mu.RUnlock()

	for _, c := range running {
		checkCtx, cancel := context.WithTimeout(ctx, m.conf().QueryTimeout())
		info, err := m.runtime.InspectContainer(checkCtx, c.id)
		cancel()

		newHealth := HealthHealthy
		if err != nil || info == nil || info.Status != "running" {
			newHealth = HealthUnhealthy
		}

		m.mu.Lock()
		changed := c.state == StateRunning && c.health != newHealth
		if changed {
			c.health = newHealth
			c.updatedAt = time.Now()
		}
		m.mu.Unlock()

		if changed {
			log.Debug().
				Str("container", c.id).
				Str("health", string(newHealth)).
				Msg("Container health changed")
			m.publish(events.ContainerHealth, c)
		}
	}
}
