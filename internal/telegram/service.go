package telegram

import (
	"context"
	"log/slog"

	"github.com/codex-k8s/rsudo/internal/commands"
	"github.com/codex-k8s/rsudo/internal/config"
	"github.com/codex-k8s/rsudo/internal/i18n"
	"github.com/codex-k8s/rsudo/internal/telegram/handlers"
	"github.com/codex-k8s/rsudo/internal/telegram/updates"
	"github.com/mymmrac/telego"
)

// Service wires the bot, the command set and the poll loop.
type Service struct {
	poller *updates.Poller
	log    *slog.Logger
}

// NewBot creates a telego bot that logs through log.
func NewBot(token string, log *slog.Logger, opts ...telego.BotOption) (*telego.Bot, error) {
	options := append([]telego.BotOption{telego.WithLogger(telegoLogger{log: log})}, opts...)
	return telego.NewBot(token, options...)
}

// New creates a new Telegram service. observer may be nil.
func New(cfg config.Config, bundle i18n.Bundle, uptime commands.UptimeFunc, observer updates.PollObserver, log *slog.Logger, opts ...telego.BotOption) (*Service, error) {
	bot, err := NewBot(cfg.Token, log, opts...)
	if err != nil {
		return nil, err
	}

	client := NewClient(bot, ClientOptions{
		PollTimeout:    cfg.PollTimeout,
		RequestTimeout: cfg.RequestTimeout,
		SendAttempts:   cfg.SendAttempts,
		RetryBackoff:   cfg.RetryBackoff,
	}, log)

	registry, err := commands.Default(uptime, bundle.Messages.HelpHeader)
	if err != nil {
		return nil, err
	}

	handler := handlers.NewHandler(registry, client, bundle.Messages, cfg.AdminUsername, log)
	poller := updates.NewPoller(client, handler, cfg.PollInterval, log)
	if observer != nil {
		poller.WithObserver(observer)
	}

	log.Info("Telegram service configured",
		"commands", registry.Names(),
		"admin", cfg.AdminUsername,
		"lang", bundle.Lang,
	)
	return &Service{poller: poller, log: log}, nil
}

// Run processes updates until ctx is cancelled.
func (s *Service) Run(ctx context.Context) error {
	return s.poller.Run(ctx)
}
