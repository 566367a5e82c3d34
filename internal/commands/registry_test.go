package commands

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type stubCommand struct {
	name  string
	reply string
	calls int
}

func (s *stubCommand) Name() string { return s.name }
func (s *stubCommand) Description() string { return "stub" }

func (s *stubCommand) Execute(context.Context) (string, error) {
	s.calls++
	return s.reply, nil
}

func TestRegistryLookup(t *testing.T) {
	reg, err := NewRegistry(&stubCommand{name: "uptime"}, &stubCommand{name: "start"})
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	if _, ok := reg.Lookup("uptime"); !ok {
		t.Error("uptime not found")
	}
	for _, name := range []string{"Uptime", "UPTIME", "uptime ", "/uptime", ""} {
		if _, ok := reg.Lookup(name); ok {
			t.Errorf("Lookup(%q) matched", name)
		}
	}
}

func TestRegistryOrder(t *testing.T) {
	reg, err := NewRegistry(&stubCommand{name: "c"}, &stubCommand{name: "a"}, &stubCommand{name: "b"})
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	got := strings.Join(reg.Names(), ",")
	if got != "c,a,b" {
		t.Errorf("Names = %s, want c,a,b", got)
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	_, err := NewRegistry(&stubCommand{name: "x"}, &stubCommand{name: "x"})
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("err = %v, want ErrDuplicate", err)
	}
}

func TestRegistryRejectsEmptyName(t *testing.T) {
	_, err := NewRegistry(&stubCommand{name: ""})
	if !errors.Is(err, ErrEmptyName) {
		t.Fatalf("err = %v, want ErrEmptyName", err)
	}
}

func TestRegistryNamesIsACopy(t *testing.T) {
	reg, err := NewRegistry(&stubCommand{name: "a"})
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	names := reg.Names()
	names[0] = "mutated"
	if reg.Names()[0] != "a" {
		t.Error("Names exposed internal state")
	}
}
