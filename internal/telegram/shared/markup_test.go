package shared

import "testing"

func TestBold(t *testing.T) {
	if got := Bold("frobnicate"); got != "*frobnicate*" {
		t.Errorf("Bold = %q", got)
	}
}

func TestEscapeMarkdown(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"plain", "plain"},
		{"load_avg", `load\_avg`},
		{"*x* `y` [z]", "\\*x\\* \\`y\\` \\[z]"},
		{"10:00 up 1 day", "10:00 up 1 day"},
	}
	for _, tt := range tests {
		if got := EscapeMarkdown(tt.in); got != tt.want {
			t.Errorf("EscapeMarkdown(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
