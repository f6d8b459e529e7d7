package mermaid

import "testing"

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "flowchart TD\nA-->B", "flowchart TD\nA-->B"},
		{"fenced", "```mermaid\nflowchart TD\nA-->B\n```", "flowchart TD\nA-->B"},
		{"bare fence", "```\nflowchart TD\nA-->B\n```", "flowchart TD\nA-->B"},
		{"backticks", "`flowchart TD\nA-->B`", "flowchart TD\nA-->B"},
		{"whitespace", "  \nflowchart TD\nA-->B\n\n", "flowchart TD\nA-->B"},
		{"empty", "```\n```", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.in); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
