package commands

import (
	"context"
	"strings"

	"github.com/codex-k8s/rsudo/internal/telegram/shared"
)

// HelpCommand lists every registered command, itself included.
type HelpCommand struct {
	name     string
	header   string
	registry *Registry
}

// NewHelpCommand creates a help command registered under name. The registry
// is attached with Attach once it has been built.
func NewHelpCommand(name, header string) *HelpCommand {
	return &HelpCommand{name: name, header: header}
}

// Attach sets the registry the listing is read from.
func (h *HelpCommand) Attach(registry *Registry) {
	h.registry = registry
}

func (h *HelpCommand) Name() string { return h.name }
func (h *HelpCommand) Description() string { return "List available commands" }

func (h *HelpCommand) Execute(context.Context) (string, error) {
	var b strings.Builder
	b.WriteString(shared.Bold(h.header))
	b.WriteString("\n")
	if h.registry == nil {
		return b.String(), nil
	}
	for _, name := range h.registry.Names() {
		b.WriteString("/")
		b.WriteString(name)
		b.WriteString("\n")
	}
	return b.String(), nil
}
