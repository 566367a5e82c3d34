package updates

import (
	"context"
	"log/slog"
	"time"
)

// Poller fetches updates in a loop and hands each one to a handler.
//
// The cursor is the highest update id consumed so far. It starts at zero,
// only grows, and is only touched by the goroutine running Run.
type Poller struct {
	fetcher  Fetcher
	handler  UpdateHandler
	interval time.Duration
	observer PollObserver
	log      *slog.Logger
	cursor   int
	now      func() time.Time
}

// NewPoller creates a poller that sleeps interval between cycles.
func NewPoller(fetcher Fetcher, handler UpdateHandler, interval time.Duration, log *slog.Logger) *Poller {
	return &Poller{
		fetcher:  fetcher,
		handler:  handler,
		interval: interval,
		log:      log,
		now:      time.Now,
	}
}

// WithObserver registers an observer for successful polls.
func (p *Poller) WithObserver(observer PollObserver) *Poller {
	p.observer = observer
	return p
}

// Cursor returns the highest update id consumed so far.
func (p *Poller) Cursor() int {
	return p.cursor
}

// Run polls until ctx is cancelled. Poll failures never end the loop.
func (p *Poller) Run(ctx context.Context) error {
	p.log.Info("Telegram updates started via polling", "interval", p.interval.String())
	for {
		if ctx.Err() != nil {
			p.log.Info("Telegram polling stopped", "cursor", p.cursor)
			return nil
		}

		if err := p.Poll(ctx); err != nil && ctx.Err() == nil {
			p.log.Warn("Poll failed", "offset", p.cursor+1, "error", err)
		}

		timer := time.NewTimer(p.interval)
		select {
		case <-ctx.Done():
			timer.Stop()
		case <-timer.C:
		}
	}
}

// Poll runs one cycle: fetch updates newer than the cursor and process them
// in delivery order. On fetch failure the cursor is left unchanged.
func (p *Poller) Poll(ctx context.Context) error {
	batch, err := p.fetcher.FetchUpdates(ctx, p.cursor+1)
	if err != nil {
		return err
	}
	if p.observer != nil {
		p.observer.PollSucceeded(p.now())
	}
	p.log.Info("Poll result", "offset", p.cursor+1, "updates", len(batch))

	for _, update := range batch {
		if ctx.Err() != nil {
			return nil
		}
		p.log.Info("Update received",
			"update_id", update.UpdateID,
			"has_message", update.Message != nil,
		)
		p.handler.HandleUpdate(ctx, update)
		if update.UpdateID > p.cursor {
			p.cursor = update.UpdateID
		}
	}
	return nil
}
