// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-match/internal/types"
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

// PrintResume outputs a human-readable summary of a parsed resume.
func (p *Printer) PrintResume(resume *types.ResumeJSON) {
	if resume == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", resume.Contact.Name))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", resume.Contact.Email))
	sb.WriteString(fmt.Sprintf("Phone:    %s\n", resume.Contact.Phone))
	sb.WriteString(fmt.Sprintf("Location: %s\n", resume.Contact.Location))
	sb.WriteString("\n")

	if len(resume.Skills) > 0 {
		count := min(len(resume.Skills), maxItemsToShow)
		sb.WriteString(fmt.Sprintf("Skills:   %s", strings.Join(resume.Skills[:count], ", ")))
		if len(resume.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf(" ... and %d more", len(resume.Skills)-maxItemsToShow))
		}
		sb.WriteString("\n\n")
	}

	if len(resume.Experience) > 0 {
		sb.WriteString("Experience:\n")
		for _, entry := range resume.Experience {
			sb.WriteString(fmt.Sprintf("  • %s", entry.Company))
			if entry.Title != "" {
				sb.WriteString(fmt.Sprintf(" — %s", entry.Title))
			}
			if entry.Start != "" || entry.End != "" {
				sb.WriteString(fmt.Sprintf(" (%s–%s)", entry.Start, entry.End))
			}
			sb.WriteString(fmt.Sprintf(", %d bullets\n", len(entry.Bullets)))
		}
		sb.WriteString("\n")
	}

	if len(resume.Education) > 0 {
		sb.WriteString("Education:\n")
		for _, entry := range resume.Education {
			sb.WriteString(fmt.Sprintf("  • %s", entry.Institution))
			if entry.Year != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", entry.Year))
			}
			sb.WriteString("\n")
		}
	}

	p.printBox("PARSED RESUME", strings.TrimRight(sb.String(), "\n"))
}

// PrintMatchResult outputs a human-readable summary of a match result.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Match Score: %d/100\n", result.MatchScore))
	sb.WriteString("\n")

	if len(result.SkillMatches) > 0 {
		sb.WriteString(fmt.Sprintf("Matched Skills: %s\n", strings.Join(result.SkillMatches, ", ")))
		sb.WriteString("\n")
	}

	if len(result.RankedBullets) > 0 {
		sb.WriteString("Top Bullets:\n")
		count := min(len(result.RankedBullets), maxItemsToShow)
		for i := 0; i < count; i++ {
			bullet := result.RankedBullets[i]
			sb.WriteString(fmt.Sprintf("  %.2f  %s\n", bullet.Score, bullet.Text))
		}
		if len(result.RankedBullets) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.RankedBullets)-maxItemsToShow))
		}
	}

	p.printBox("JOB MATCH", strings.TrimRight(sb.String(), "\n"))
}
