package workers

import (
	"context"
	"sync"
	"time"

	"github.com/greenjets/bladerunner-portal/internal/logger"
	"github.com/greenjets/bladerunner-portal/models"
)

// Pinger is the subset of the database handle the prober needs.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthProber periodically pings the database and keeps the latest
// reachability snapshot for the health endpoint. The endpoint reads the
// snapshot instead of pinging inline, so health checks stay fast and cheap
// even when the database is down and pings hang until their deadline.
type HealthProber struct {
	db       Pinger
	interval time.Duration
	logger   *logger.Logger

	mu       sync.RWMutex
	snapshot models.DatabaseHealth

	stop chan struct{}
	once sync.Once
}

func NewHealthProber(db Pinger, interval time.Duration, logger *logger.Logger) *HealthProber {
	return &HealthProber{
		db:       db,
		interval: interval,
		logger:   logger,
		stop:     make(chan struct{}),
	}
}

// Run starts the probe loop in a background goroutine. An immediate first
// probe runs before the ticker so the snapshot is populated at startup.
func (p *HealthProber) Run() {
	go func() {
		p.probe()

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				p.probe()
			case <-p.stop:
				return
			}
		}
	}()
}

// Stop terminates the probe loop. Safe to call more than once.
func (p *HealthProber) Stop() {
	p.once.Do(func() { close(p.stop) })
}

// Snapshot returns the most recent probe result.
func (p *HealthProber) Snapshot() models.DatabaseHealth {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.snapshot
}

func (p *HealthProber) probe() {
	ctx, cancel := context.WithTimeout(context.Background(), p.interval)
	defer cancel()

	err := p.db.PingContext(ctx)

	p.mu.Lock()
	wasConnected := p.snapshot.Connected
	p.snapshot = models.DatabaseHealth{
		Connected: err == nil,
		CheckedAt: time.Now().UTC(),
	}
	p.mu.Unlock()

	if err != nil {
		p.logger.Warn().Err(err).Msg("database probe failed")
	} else if !wasConnected {
		p.logger.Info().Msg("database reachable")
	}
}
