// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-schema/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 10
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResumeSummary outputs a human-readable overview of a decoded document.
func (p *Printer) PrintResumeSummary(name string, r *types.Resume) {
	if r == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File:      %s\n", name))
	sb.WriteString(fmt.Sprintf("Candidate: %s\n", r.Content.Basics.Name))

	counts := []struct {
		section string
		n       int
	}{
		{"profiles", len(r.Content.Profiles)},
		{"education", len(r.Content.Education)},
		{"work", len(r.Content.Work)},
		{"projects", len(r.Content.Projects)},
		{"skills", len(r.Content.Skills)},
		{"languages", len(r.Content.Languages)},
		{"awards", len(r.Content.Awards)},
		{"certificates", len(r.Content.Certificates)},
		{"publications", len(r.Content.Publications)},
		{"volunteer", len(r.Content.Volunteer)},
		{"references", len(r.Content.References)},
	}
	var present []string
	for _, c := range counts {
		if c.n > 0 {
			present = append(present, fmt.Sprintf("%s (%d)", c.section, c.n))
		}
	}
	if r.Content.Location != nil {
		present = append(present, "location")
	}
	if len(present) > 0 {
		sb.WriteString("\nSections:\n")
		for _, s := range present {
			sb.WriteString(fmt.Sprintf("  • %s\n", s))
		}
	}

	p.printBox("RESUME DOCUMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintViolations outputs any validation violations found.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintViolations(violations *types.Violations) {
	if violations.OK() {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO VIOLATIONS FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d violations:\n\n", len(violations.Violations)))

	count := min(len(violations.Violations), maxItemsToShow)
	for i := 0; i < count; i++ {
		v := violations.Violations[i]
		message := v.Message
		if len(message) > 45 {
			message = message[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s (%s)\n", v.Path, v.Kind))
		sb.WriteString(fmt.Sprintf("  %s\n", message))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(violations.Violations) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more violations", len(violations.Violations)-maxItemsToShow))
	}

	p.printBox("VALIDATION VIOLATIONS", sb.String())
}
