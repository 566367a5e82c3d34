package i18n

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Messages contains localized reply texts for the bot.
type Messages struct {
	// HelpHeader heads the command listing.
	HelpHeader string `yaml:"help_header"`
	// UnknownCommand is a format string taking the emphasized command name.
	UnknownCommand string `yaml:"unknown_command"`
}

// Bundle combines language code and messages.
type Bundle struct {
	// Lang is the selected language.
	Lang string
	// Messages are localized strings.
	Messages Messages
}

//go:embed *.yaml
var files embed.FS

// Load loads i18n messages for the requested language.
func Load(lang string) (Bundle, error) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		lang = "en"
	}

	messages, err := loadMessages(lang)
	if err != nil && lang != "en" {
		messages, err = loadMessages("en")
		if err != nil {
			return Bundle{}, err
		}
		lang = "en"
	} else if err != nil {
		return Bundle{}, err
	}

	return Bundle{Lang: lang, Messages: messages}, nil
}

func loadMessages(lang string) (Messages, error) {
	data, err := files.ReadFile(fmt.Sprintf("%s.yaml", lang))
	if err != nil {
		return Messages{}, err
	}
	var msg Messages
	if err := yaml.Unmarshal(data, &msg); err != nil {
		return Messages{}, fmt.Errorf("parse %s messages: %w", lang, err)
	}
	return msg.withDefaults(), nil
}

const (
	defaultHelpHeader     = "Available commands:"
	defaultUnknownCommand = "Unknown command: %s"
)

func (m Messages) withDefaults() Messages {
	if strings.TrimSpace(m.HelpHeader) == "" {
		m.HelpHeader = defaultHelpHeader
	}
	if strings.Count(m.UnknownCommand, "%s") != 1 {
		m.UnknownCommand = defaultUnknownCommand
	}
	return m
}
