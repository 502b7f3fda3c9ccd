package models

import (
	"regexp"
	"strings"
)

var numberedStep = regexp.MustCompile(`\d+\.\s+`)
var numberedStart = regexp.MustCompile(`^\d+\.\s+`)

// SplitInstructions breaks a freeform instructions string into displayable
// steps. Text that opens with a numbered marker ("1. chop ...") is split on
// the markers; anything else is split on sentence boundaries. Empty pieces
// are dropped.
func SplitInstructions(s string) []string {
	var parts []string
	if numberedStart.MatchString(s) {
		parts = numberedStep.Split(s, -1)
	} else {
		parts = strings.Split(s, ".")
	}

	steps := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			steps = append(steps, p)
		}
	}
	return steps
}
