// Package carousel holds the time-driven display refreshers: the hero-slide
// rotation and the per-second discount countdown. Both only read state —
// they never dispatch actions — and both stop when their context is
// cancelled.
package carousel

import (
	"context"
	"time"

	"github.com/example/storefront/pkg/models"
	"github.com/example/storefront/pkg/store"
	"go.uber.org/zap"
)

// Rotator cycles through the hero slides at a fixed interval, invoking the
// callback with the current slide. An empty slide list just skips ticks.
type Rotator struct {
	store    *store.Store
	interval time.Duration
	logger   *zap.Logger
	onSlide  func(models.HeroSlide)
}

func NewRotator(st *store.Store, interval time.Duration, logger *zap.Logger, onSlide func(models.HeroSlide)) *Rotator {
	return &Rotator{
		store:    st,
		interval: interval,
		logger:   logger,
		onSlide:  onSlide,
	}
}

// Run blocks until ctx is cancelled. The slide index is re-clamped against
// the current slide list each tick, so deletions mid-rotation are safe.
func (r *Rotator) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	index := 0
	for {
		select {
		case <-ctx.Done():
			r.logger.Debug("rotator stopped")
			return
		case <-ticker.C:
			state, err := r.store.Snapshot()
			if err != nil {
				r.logger.Warn("rotator snapshot failed", zap.Error(err))
				continue
			}
			if len(state.HeroSlides) == 0 {
				continue
			}
			index %= len(state.HeroSlides)
			r.onSlide(state.HeroSlides[index])
			index++
		}
	}
}

// CountdownWatcher recomputes a product's discount countdown once per second.
// When the deadline passes, the callback keeps receiving the frozen expired
// countdown; the discount stays on the product record.
type CountdownWatcher struct {
	store     *store.Store
	productID string
	interval  time.Duration
	onTick    func(store.Countdown)
}

func NewCountdownWatcher(st *store.Store, productID string, onTick func(store.Countdown)) *CountdownWatcher {
	return &CountdownWatcher{
		store:     st,
		productID: productID,
		interval:  time.Second,
		onTick:    onTick,
	}
}

// Run blocks until ctx is cancelled. Ticks where the product is missing or
// has no discount deadline are skipped.
func (w *CountdownWatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			state, err := w.store.Snapshot()
			if err != nil {
				continue
			}
			for _, product := range state.Products {
				if product.ID != w.productID {
					continue
				}
				if countdown, ok := store.DiscountCountdown(product, now); ok {
					w.onTick(countdown)
				}
				break
			}
		}
	}
}
