package commands

// HelpName is the command that lists all others.
const HelpName = "start"

// Default builds the built-in command set: uptime, shutdown and start.
func Default(uptime UptimeFunc, helpHeader string) (*Registry, error) {
	help := NewHelpCommand(HelpName, helpHeader)
	registry, err := NewRegistry(
		NewUptimeCommand(uptime),
		NewShutdownCommand(uptime),
		help,
	)
	if err != nil {
		return nil, err
	}
	help.Attach(registry)
	return registry, nil
}
