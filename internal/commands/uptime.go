package commands

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/codex-k8s/rsudo/internal/telegram/shared"
)

// UptimeFunc reports host uptime as human-readable text.
type UptimeFunc func(ctx context.Context) (string, error)

// HostUptime runs the host uptime binary.
func HostUptime(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, "uptime").Output()
	if err != nil {
		return "", fmt.Errorf("run uptime: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// UptimeCommand replies with host uptime.
type UptimeCommand struct {
	uptime UptimeFunc
}

// NewUptimeCommand creates the uptime command backed by fn.
func NewUptimeCommand(fn UptimeFunc) *UptimeCommand {
	return &UptimeCommand{uptime: fn}
}

func (u *UptimeCommand) Name() string { return "uptime" }
func (u *UptimeCommand) Description() string { return "Show host uptime" }

func (u *UptimeCommand) Execute(ctx context.Context) (string, error) {
	return markdownUptime(ctx, u.uptime)
}

// ShutdownCommand is registered as "shutdown" but, like the deployed bot it
// replaces, only reports uptime. It never powers the host off.
type ShutdownCommand struct {
	uptime UptimeFunc
}

// NewShutdownCommand creates the shutdown command backed by fn.
func NewShutdownCommand(fn UptimeFunc) *ShutdownCommand {
	return &ShutdownCommand{uptime: fn}
}

func (s *ShutdownCommand) Name() string { return "shutdown" }
func (s *ShutdownCommand) Description() string { return "Report uptime (host shutdown not implemented)" }

func (s *ShutdownCommand) Execute(ctx context.Context) (string, error) {
	return markdownUptime(ctx, s.uptime)
}

func markdownUptime(ctx context.Context, fn UptimeFunc) (string, error) {
	out, err := fn(ctx)
	if err != nil {
		return "", err
	}
	return shared.EscapeMarkdown(out), nil
}
