package ordering

import (
	"context"
	"sync"
	"time"

	"github.com/Skyedown/pohoda-skalite/internal/domain"
	"github.com/Skyedown/pohoda-skalite/internal/repo"
	"go.uber.org/zap"
)

// Subscriber is notified with a fresh StatusInfo after every re-evaluation.
// Evaluation is idempotent, so redundant notifications from a concurrent
// timer tick and an eager refresh are harmless.
type Subscriber func(StatusInfo)

// Poller re-evaluates the ordering status on a fixed interval and eagerly on
// Refresh (e.g. after an admin-settings change). A failed settings fetch
// degrades to the default override instead of surfacing an error.
type Poller struct {
	settings   repo.AdminSettingsRepository
	boundaries Boundaries
	location   *time.Location
	interval   time.Duration
	logger     *zap.SugaredLogger
	now        func() time.Time

	mu   sync.RWMutex
	subs []Subscriber
	last StatusInfo

	ctx    context.Context
	cancel context.CancelFunc
}

func NewPoller(
	settings repo.AdminSettingsRepository,
	boundaries Boundaries,
	location *time.Location,
	interval time.Duration,
	logger *zap.SugaredLogger,
) *Poller {
	ctx, cancel := context.WithCancel(context.Background())

	return &Poller{
		settings:   settings,
		boundaries: boundaries,
		location:   location,
		interval:   interval,
		logger:     logger,
		now:        time.Now,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Subscribe registers a subscriber for status changes.
func (p *Poller) Subscribe(sub Subscriber) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subs = append(p.subs, sub)
}

// Start begins periodic evaluation. The first evaluation happens
// immediately so Current is valid before the first tick.
func (p *Poller) Start() {
	p.logger.Infow("starting ordering status poller", "interval", p.interval)

	p.Refresh(p.ctx)

	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-p.ctx.Done():
				return
			case <-ticker.C:
				p.Refresh(p.ctx)
			}
		}
	}()
}

func (p *Poller) Stop() {
	p.logger.Info("stopping ordering status poller")
	p.cancel()
}

// Refresh fetches the admin override, evaluates the status and notifies
// subscribers. Safe to call from any goroutine.
func (p *Poller) Refresh(ctx context.Context) StatusInfo {
	override, err := p.settings.Get(ctx)
	if err != nil {
		p.logger.Warnw("failed to load admin settings, falling back to defaults", "error", err)
		override = domain.DefaultAdminOverride()
	}

	localNow := p.now().In(p.location)
	info := Evaluate(MinutesOfDay(localNow.Hour(), localNow.Minute()), p.boundaries, override)

	p.mu.Lock()
	p.last = info
	subs := make([]Subscriber, len(p.subs))
	copy(subs, p.subs)
	p.mu.Unlock()

	for _, sub := range subs {
		sub(info)
	}

	return info
}

// Current returns the most recently evaluated status.
func (p *Poller) Current() StatusInfo {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.last
}
