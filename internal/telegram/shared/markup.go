package shared

import "strings"

// Bold wraps text in Telegram Markdown bold markers.
func Bold(text string) string {
	return "*" + text + "*"
}

// EscapeMarkdown escapes text for Telegram legacy Markdown mode so it renders
// literally outside of an entity.
func EscapeMarkdown(value string) string {
	return escapeWithSet(value, "_*`[")
}

func escapeWithSet(value, escapedRunes string) string {
	if value == "" {
		return value
	}
	var builder strings.Builder
	builder.Grow(len(value) * 2)
	for _, r := range value {
		if strings.ContainsRune(escapedRunes, r) {
			builder.WriteByte('\\')
		}
		builder.WriteRune(r)
	}
	return builder.String()
}
