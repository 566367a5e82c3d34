package updates

import (
	"context"
	"time"

	"github.com/mymmrac/telego"
)

// Fetcher provides Telegram updates.
type Fetcher interface {
	// FetchUpdates returns pending updates with an id of at least afterID.
	FetchUpdates(ctx context.Context, afterID int) ([]telego.Update, error)
}

// UpdateHandler consumes one update. It must not fail the loop.
type UpdateHandler interface {
	HandleUpdate(ctx context.Context, update telego.Update)
}

// PollObserver is told about every successful poll.
type PollObserver interface {
	PollSucceeded(at time.Time)
}
