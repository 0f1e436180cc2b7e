// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/eliteskills/ats-engine/internal/types"
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

// PrintScore outputs the overall match score and keyword coverage.
func (p *Printer) PrintScore(result *types.ScanResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:    %d / 100\n", result.Score))
	sb.WriteString(fmt.Sprintf("Matched:  %d keywords\n", len(result.MatchedKeywords)))
	sb.WriteString(fmt.Sprintf("Missing:  %d keywords", len(result.MissingKeywords)))

	if len(result.MissingKeywords) > 0 {
		sb.WriteString("\n\nTop missing:\n")
		count := min(len(result.MissingKeywords), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.MissingKeywords[i]))
		}
		if len(result.MissingKeywords) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.MissingKeywords)-maxItemsToShow))
		}
	}

	p.printBox("MATCH SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSections outputs the per-section breakdown with keyword coverage.
func (p *Printer) PrintSections(result *types.ScanResult) {
	if result == nil || len(result.Sections) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Detected %d sections:\n\n", len(result.Sections)))

	for i, section := range result.Sections {
		sb.WriteString(fmt.Sprintf("%s (lines %d-%d)\n", section.Name, section.StartLine, section.EndLine))
		if len(section.MatchedKeywords) > 0 {
			matched := strings.Join(section.MatchedKeywords, ", ")
			if len(matched) > 45 {
				matched = matched[:42] + "..."
			}
			sb.WriteString(fmt.Sprintf("  ✓ %s\n", matched))
		}
		if len(section.MissingKeywords) > 0 {
			missing := strings.Join(section.MissingKeywords, ", ")
			if len(missing) > 45 {
				missing = missing[:42] + "..."
			}
			sb.WriteString(fmt.Sprintf("  ✗ %s\n", missing))
		}
		for _, issue := range section.Issues {
			if len(issue) > 48 {
				issue = issue[:45] + "..."
			}
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", issue))
		}
		if i < len(result.Sections)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SECTION BREAKDOWN", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintLineFeedback outputs the flagged lines with their suggested rewrites.
func (p *Printer) PrintLineFeedback(result *types.ScanResult) {
	if result == nil {
		return
	}

	var flagged []types.LineFeedback
	for _, section := range result.Sections {
		for _, line := range section.Lines {
			if len(line.Issues) > 0 || line.SuggestedRewrite != "" {
				flagged = append(flagged, line)
			}
		}
	}
	if len(flagged) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Flagged %d lines:\n\n", len(flagged)))

	count := min(len(flagged), maxItemsToShow)
	for i := 0; i < count; i++ {
		line := flagged[i]
		text := line.Text
		if len(text) > 50 {
			text = text[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("L%d %s\n", line.LineNumber, text))
		for _, issue := range line.Issues {
			if len(issue) > 48 {
				issue = issue[:45] + "..."
			}
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", issue))
		}
		if line.SuggestedRewrite != "" {
			rewrite := line.SuggestedRewrite
			if len(rewrite) > 48 {
				rewrite = rewrite[:45] + "..."
			}
			sb.WriteString(fmt.Sprintf("  → %s\n", rewrite))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(flagged) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more lines", len(flagged)-maxItemsToShow))
	}

	p.printBox("LINE FEEDBACK", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTips outputs the document-level tips.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintTips(result *types.ScanResult) {
	if result == nil {
		return
	}
	if len(result.Tips) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO DOCUMENT-LEVEL ISSUES")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	for i, tip := range result.Tips {
		if len(tip) > 50 {
			tip = tip[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s", tip))
		if i < len(result.Tips)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("TIPS", sb.String())
}
