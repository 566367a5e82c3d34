package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/codex-k8s/rsudo/internal/commands"
	"github.com/codex-k8s/rsudo/internal/i18n"
	"github.com/codex-k8s/rsudo/internal/telegram/shared"
	"github.com/mymmrac/telego"
)

// CommandMarker prefixes every command in message text.
const CommandMarker = "/"

// Replier sends a threaded reply into a chat.
type Replier interface {
	SendReply(ctx context.Context, chatID int64, replyTo int, text string) error
}

// Handler authorizes updates and dispatches commands.
type Handler struct {
	gate     Gate
	registry *commands.Registry
	replier  Replier
	messages i18n.Messages
	log      *slog.Logger
}

// NewHandler creates a new update handler.
func NewHandler(registry *commands.Registry, replier Replier, messages i18n.Messages, admin string, log *slog.Logger) *Handler {
	return &Handler{
		gate:     NewGate(admin),
		registry: registry,
		replier:  replier,
		messages: messages,
		log:      log,
	}
}

// HandleUpdate processes a single update. Failures are logged and never
// returned: one bad update must not stop the poll loop.
func (h *Handler) HandleUpdate(ctx context.Context, update telego.Update) {
	message := update.Message
	if message == nil || message.Text == "" {
		h.log.Debug("Skipping update without message text", "update_id", update.UpdateID)
		return
	}
	if !h.gate.IsAuthorized(update) {
		h.log.Debug("Dropping update from unauthorized sender", "update_id", update.UpdateID)
		return
	}

	name, ok := ParseCommand(message.Text)
	if !ok {
		return
	}

	text, ok := h.respond(ctx, name)
	if !ok {
		return
	}
	if err := h.replier.SendReply(ctx, message.Chat.ID, message.MessageID, text); err != nil {
		h.log.Error("Failed to send reply",
			"update_id", update.UpdateID,
			"command", name,
			"error", err,
		)
		return
	}
	h.log.Info("Command answered", "update_id", update.UpdateID, "command", name)
}

func (h *Handler) respond(ctx context.Context, name string) (string, bool) {
	cmd, found := h.registry.Lookup(name)
	if !found {
		return fmt.Sprintf(h.messages.UnknownCommand, shared.Bold(name)), true
	}
	out, err := cmd.Execute(ctx)
	if err != nil {
		h.log.Error("Command failed", "command", name, "error", err)
		return "", false
	}
	return out, true
}

// ParseCommand strips the leading marker from text. The remainder is the
// command name, unparsed.
func ParseCommand(text string) (string, bool) {
	if !strings.HasPrefix(text, CommandMarker) {
		return "", false
	}
	return strings.TrimPrefix(text, CommandMarker), true
}
