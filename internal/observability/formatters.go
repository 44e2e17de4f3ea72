// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jonathan/cv-builder/internal/templates"
	"github.com/jonathan/cv-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
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

// PrintDocumentSummary outputs a human-readable summary of the loaded document.
func (p *Printer) PrintDocumentSummary(doc *types.CVDocument) {
	if doc == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:   %s\n", doc.Basics.Name))
	sb.WriteString(fmt.Sprintf("Label:  %s\n", doc.Basics.Label))
	sb.WriteString("\n")

	sb.WriteString("Sections:\n")
	counts := []struct {
		name string
		n    int
	}{
		{"work", len(doc.Work)},
		{"education", len(doc.Education)},
		{"certifications", len(doc.Certifications)},
		{"skills", len(doc.Skills)},
		{"languages", len(doc.Languages)},
		{"projects", len(doc.Projects)},
		{"publications", len(doc.Publications)},
		{"awards", len(doc.Awards)},
		{"volunteer", len(doc.Volunteer)},
	}
	shown := 0
	for _, c := range counts {
		if c.n == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("  • %-14s %d\n", c.name, c.n))
		shown++
	}
	if shown == 0 {
		sb.WriteString("  (all sections empty)\n")
	}

	p.printBox("DOCUMENT SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTemplateList outputs the registered templates, marking the selected one.
func (p *Printer) PrintTemplateList(list []templates.Template, selected string) {
	if len(list) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Registered templates: %d\n\n", len(list)))

	count := min(len(list), maxItemsToShow)
	for i := 0; i < count; i++ {
		tpl := list[i]
		marker := " "
		if tpl.ID == selected {
			marker = "▸"
		}
		sb.WriteString(fmt.Sprintf("%s %s (%s)\n", marker, tpl.Name, tpl.ID))
		if tpl.Description != "" {
			desc := tpl.Description
			if len(desc) > 50 {
				desc = desc[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("    %s\n", desc))
		}
	}

	if len(list) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more templates", len(list)-maxItemsToShow))
	}

	p.printBox("TEMPLATES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintExportResult outputs the outcome of a completed export.
func (p *Printer) PrintExportResult(filename string, size int, duration time.Duration) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("File:     %s\n", filename))
	sb.WriteString(fmt.Sprintf("Size:     %s\n", formatSize(size)))
	sb.WriteString(fmt.Sprintf("Duration: %s", duration.Round(time.Millisecond)))

	p.printBox("EXPORT COMPLETE", sb.String())
}

// formatSize renders a byte count in a compact human form.
func formatSize(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
