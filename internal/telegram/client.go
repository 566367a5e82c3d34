package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mymmrac/telego"
	ta "github.com/mymmrac/telego/telegoapi"
	tu "github.com/mymmrac/telego/telegoutil"
)

// API is the subset of the Telegram Bot API used by rsudo. *telego.Bot
// satisfies it.
type API interface {
	GetUpdates(ctx context.Context, params *telego.GetUpdatesParams) ([]telego.Update, error)
	SendMessage(ctx context.Context, params *telego.SendMessageParams) (*telego.Message, error)
}

// ClientOptions bounds outbound calls.
type ClientOptions struct {
	// PollTimeout is the getUpdates long-poll timeout in seconds.
	PollTimeout int
	// RequestTimeout bounds a single API call.
	RequestTimeout time.Duration
	// SendAttempts is the number of tries for one reply.
	SendAttempts int
	// RetryBackoff is the first retry delay, doubled per attempt.
	RetryBackoff time.Duration
}

// ErrEmptyText is returned when a reply has no visible text.
var ErrEmptyText = errors.New("reply text is empty")

// Client fetches updates and sends threaded replies.
type Client struct {
	api  API
	opts ClientOptions
	log  *slog.Logger
}

// NewClient creates a transport client on top of api.
func NewClient(api API, opts ClientOptions, log *slog.Logger) *Client {
	if opts.SendAttempts < 1 {
		opts.SendAttempts = 1
	}
	return &Client{api: api, opts: opts, log: log}
}

// FetchUpdates returns pending updates with an id of at least afterID.
// Updates older than afterID are dropped even if the server returns them.
func (c *Client) FetchUpdates(ctx context.Context, afterID int) ([]telego.Update, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	batch, err := c.api.GetUpdates(callCtx, &telego.GetUpdatesParams{
		Offset:  afterID,
		Timeout: c.opts.PollTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("get updates: %w", err)
	}

	fresh := batch[:0]
	for _, update := range batch {
		if update.UpdateID < afterID {
			c.log.Debug("Dropping stale update", "update_id", update.UpdateID, "offset", afterID)
			continue
		}
		fresh = append(fresh, update)
	}
	return fresh, nil
}

// SendReply sends text to chatID as a reply to message replyTo, retrying
// transient failures with exponential backoff.
func (c *Client) SendReply(ctx context.Context, chatID int64, replyTo int, text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyText
	}
	params := &telego.SendMessageParams{
		ChatID:    tu.ID(chatID),
		Text:      text,
		ParseMode: telego.ModeMarkdown,
		ReplyParameters: (&telego.ReplyParameters{
			MessageID: replyTo,
		}).WithAllowSendingWithoutReply(),
	}

	var lastErr error
	for attempt := 0; attempt < c.opts.SendAttempts; attempt++ {
		if attempt > 0 {
			backoff := c.opts.RetryBackoff << (attempt - 1)
			timer := time.NewTimer(backoff)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}

		err := c.send(ctx, params)
		if err == nil {
			return nil
		}
		lastErr = err
		if ctx.Err() != nil || !isTransient(err) {
			return err
		}
		c.log.Warn("Transient reply failure, retrying",
			"chat_id", chatID,
			"attempt", attempt+1,
			"error", err,
		)
	}
	return lastErr
}

func (c *Client) send(ctx context.Context, params *telego.SendMessageParams) error {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()
	if _, err := c.api.SendMessage(callCtx, params); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.opts.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.opts.RequestTimeout)
}

// isTransient reports whether a failed call is worth repeating. Telegram
// client errors other than rate limiting are permanent.
func isTransient(err error) bool {
	var apiErr *ta.Error
	if errors.As(err, &apiErr) {
		if apiErr.ErrorCode == http.StatusTooManyRequests {
			return true
		}
		return apiErr.ErrorCode >= http.StatusInternalServerError
	}
	return true
}
