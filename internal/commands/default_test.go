package commands

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func fixedUptime(text string) UptimeFunc {
	return func(context.Context) (string, error) { return text, nil }
}

func TestDefaultOrder(t *testing.T) {
	reg, err := Default(fixedUptime("up"), "Hey mr. root, available commands:")
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if got := strings.Join(reg.Names(), ","); got != "uptime,shutdown,start" {
		t.Errorf("Names = %s", got)
	}
}

func TestHelpListsEveryCommandOnce(t *testing.T) {
	reg, err := Default(fixedUptime("up"), "Hey mr. root, available commands:")
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	help, ok := reg.Lookup(HelpName)
	if !ok {
		t.Fatal("start not registered")
	}
	out, err := help.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if !strings.HasPrefix(out, "*Hey mr. root, available commands:*\n") {
		t.Errorf("missing bold header: %q", out)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")[1:]
	seen := map[string]int{}
	for _, line := range lines {
		seen[line]++
	}
	for _, name := range reg.Names() {
		if seen["/"+name] != 1 {
			t.Errorf("/%s listed %d times", name, seen["/"+name])
		}
	}
	if len(lines) != len(reg.Names()) {
		t.Errorf("got %d command lines, want %d", len(lines), len(reg.Names()))
	}
}

func TestUptimeAndShutdownShareOutput(t *testing.T) {
	reg, err := Default(fixedUptime(" 10:00:00 up 3 days,  1 user"), "h")
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	for _, name := range []string{"uptime", "shutdown"} {
		cmd, _ := reg.Lookup(name)
		out, err := cmd.Execute(context.Background())
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if out != " 10:00:00 up 3 days,  1 user" {
			t.Errorf("%s = %q", name, out)
		}
	}
}

func TestUptimeEscapesMarkdown(t *testing.T) {
	cmd := NewUptimeCommand(fixedUptime("up 1 day, load_avg *high*"))
	out, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out != `up 1 day, load\_avg \*high\*` {
		t.Errorf("out = %q", out)
	}
}

func TestUptimeError(t *testing.T) {
	boom := errors.New("boom")
	cmd := NewUptimeCommand(func(context.Context) (string, error) { return "", boom })
	if _, err := cmd.Execute(context.Background()); !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
}

func TestHelpWithoutRegistry(t *testing.T) {
	out, err := NewHelpCommand("help", "Commands").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out != "*Commands*\n" {
		t.Errorf("out = %q", out)
	}
}
