package commands

import (
	"context"
	"errors"
	"fmt"
)

// Command produces the reply text for one slash command.
type Command interface {
	// Name is the command token without the leading "/".
	Name() string
	// Description is a short human-readable summary.
	Description() string
	// Execute runs the command and returns the reply text.
	Execute(ctx context.Context) (string, error)
}

var (
	// ErrDuplicate is returned when two commands share a name.
	ErrDuplicate = errors.New("command already registered")
	// ErrEmptyName is returned for a command without a name.
	ErrEmptyName = errors.New("command name is empty")
)

// Registry is an ordered, read-only set of commands keyed by exact name.
// It needs no locking because it is never mutated after NewRegistry returns.
type Registry struct {
	order  []Command
	byName map[string]Command
}

// NewRegistry registers cmds in order.
func NewRegistry(cmds ...Command) (*Registry, error) {
	r := &Registry{
		order:  make([]Command, 0, len(cmds)),
		byName: make(map[string]Command, len(cmds)),
	}
	for _, cmd := range cmds {
		name := cmd.Name()
		if name == "" {
			return nil, ErrEmptyName
		}
		if _, exists := r.byName[name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicate, name)
		}
		r.order = append(r.order, cmd)
		r.byName[name] = cmd
	}
	return r, nil
}

// Lookup returns the command registered under name. Matching is exact and
// case-sensitive.
func (r *Registry) Lookup(name string) (Command, bool) {
	cmd, ok := r.byName[name]
	return cmd, ok
}

// Names returns command names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	for i, cmd := range r.order {
		names[i] = cmd.Name()
	}
	return names
}
