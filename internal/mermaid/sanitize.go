package mermaid

import "strings"

// Sanitize strips accidental markdown wrapping from model output:
// code fences (with or without a language tag), stray backticks, and
// surrounding whitespace. Models are instructed to return raw Mermaid
// source, but fencing still slips through often enough to scrub here.
func Sanitize(text string) string {
	out := strings.TrimSpace(text)
	out = strings.ReplaceAll(out, "```mermaid", "")
	out = strings.ReplaceAll(out, "```", "")
	out = strings.Trim(out, "`\n ")
	return out
}
