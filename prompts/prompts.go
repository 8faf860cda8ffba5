// Package prompts renders dream records into prompt text, one renderer per
// insight scope. Rendering is deterministic and never fails: absent fields
// degrade to placeholder text. Length capping is the generation gateway's
// concern, not this package's.
package prompts

import (
	"fmt"
	"strings"

	"dream-journal/models"
)

const (
	noSummaryPlaceholder = "No summary provided."
	noMoonSign           = "Unknown"
	noListItems          = "None"
)

const singleInstruction = "Please provide an analysis of this dream with reference to the moon sign and any symbolic or psychological patterns."

func summaryOrPlaceholder(d models.Dream) string {
	if d.Summary == "" {
		return noSummaryPlaceholder
	}
	return d.Summary
}

func moonSignOrPlaceholder(d models.Dream) string {
	if d.MoonSign == "" {
		return noMoonSign
	}
	return d.MoonSign
}

func joinOrPlaceholder(items []string) string {
	if len(items) == 0 {
		return noListItems
	}
	return strings.Join(items, ", ")
}

// SingleDream renders one dream as a labeled block followed by the fixed
// analysis instruction.
func SingleDream(d models.Dream) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dream summary: %s\n", summaryOrPlaceholder(d))
	fmt.Fprintf(&b, "Moon sign: %s\n", moonSignOrPlaceholder(d))
	fmt.Fprintf(&b, "Categories: %s\n", joinOrPlaceholder(d.Categories))
	fmt.Fprintf(&b, "Tags: %s\n", joinOrPlaceholder(d.Tags))
	b.WriteString("\n")
	b.WriteString(singleInstruction)
	return b.String()
}

// UserPattern renders N dreams as numbered blocks (1-based) separated by
// blank lines, using the same field rules as SingleDream.
func UserPattern(dreams []models.Dream) string {
	blocks := make([]string, 0, len(dreams))
	for i, d := range dreams {
		var b strings.Builder
		fmt.Fprintf(&b, "Dream %d:\n", i+1)
		fmt.Fprintf(&b, "- Summary: %s\n", summaryOrPlaceholder(d))
		fmt.Fprintf(&b, "- Moon sign: %s\n", moonSignOrPlaceholder(d))
		fmt.Fprintf(&b, "- Categories: %s\n", joinOrPlaceholder(d.Categories))
		fmt.Fprintf(&b, "- Tags: %s", joinOrPlaceholder(d.Tags))
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n\n")
}

// Community renders only the dream summaries separated by blank lines, exactly
// as recorded: a dream without a summary contributes an empty segment. Any
// instruction framing comes from the gateway's scope tag, not from here.
func Community(dreams []models.Dream) string {
	parts := make([]string, 0, len(dreams))
	for _, d := range dreams {
		parts = append(parts, d.Summary)
	}
	return strings.Join(parts, "\n\n")
}
