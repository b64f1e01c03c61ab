// Package observability provides formatted terminal output for analyses and tables.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jonathan/mbti-compat/internal/analysis"
	"github.com/jonathan/mbti-compat/internal/mbti"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// meterCells is the number of cells in the score meter
	meterCells = 20
)

var (
	excellentColor   = lipgloss.Color("#8BC34A")
	strongColor      = lipgloss.Color("#4db6ac")
	goodColor        = lipgloss.Color("#2196F3")
	moderateColor    = lipgloss.Color("#FFC107")
	challengingColor = lipgloss.Color("#e53935")

	headingStyle = lipgloss.NewStyle().Bold(true)
	strengthMark = lipgloss.NewStyle().Foreground(excellentColor).Render("+")
	challengMark = lipgloss.NewStyle().Foreground(challengingColor).Render("-")
)

// labelStyle returns the colour used for a label.
func labelStyle(label mbti.Label) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true)
	switch label {
	case mbti.LabelExcellent:
		return style.Foreground(excellentColor)
	case mbti.LabelStrong:
		return style.Foreground(strongColor)
	case mbti.LabelGood:
		return style.Foreground(goodColor)
	case mbti.LabelModerate:
		return style.Foreground(moderateColor)
	default:
		return style.Foreground(challengingColor)
	}
}

// Printer handles formatted terminal output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content. Lines may carry
// ANSI styling; padding is computed on the visible width.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(headingStyle.Render(title), boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// wrap breaks plain text into lines no wider than width, prefixing
// continuation lines with indent.
func wrap(text string, width int, indent string) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var sb strings.Builder
	lineLen := 0
	for i, word := range words {
		wl := lipgloss.Width(word)
		switch {
		case i == 0:
		case lineLen+1+wl > width:
			sb.WriteString("\n")
			sb.WriteString(indent)
			lineLen = lipgloss.Width(indent)
		default:
			sb.WriteString(" ")
			lineLen++
		}
		sb.WriteString(word)
		lineLen += wl
	}
	return sb.String()
}

// Meter renders a score as a bar of meterCells cells using its five-point bucket.
func Meter(score int) string {
	bucket := max(0, min(100, analysis.MeterBucket(score)))
	filled := bucket * meterCells / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", meterCells-filled)
}

// PrintAnalysis outputs the score meter followed by each section that was present.
func (p *Printer) PrintAnalysis(r *analysis.Result) {
	if r == nil {
		return
	}

	textWidth := boxWidth - 4
	var sb strings.Builder

	style := labelStyle(r.Label)
	sb.WriteString(fmt.Sprintf("[%s] %d%%\n", style.Render(Meter(r.Score)), r.Score))
	sb.WriteString(style.Render(fmt.Sprintf("%s Compatibility", r.Label)))
	sb.WriteString("\n")

	if text, ok := r.Get(analysis.SectionOverview); ok && text != "" {
		sb.WriteString("\n")
		sb.WriteString(headingStyle.Render("Overview"))
		sb.WriteString("\n")
		sb.WriteString(wrap(text, textWidth, ""))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(headingStyle.Render("Key Strengths"))
	sb.WriteString("\n")
	if len(r.Strengths) == 0 {
		sb.WriteString("No specific strengths information available\n")
	}
	for _, s := range r.Strengths {
		sb.WriteString(fmt.Sprintf("%s %s\n", strengthMark, wrap(s, textWidth-2, "  ")))
	}

	sb.WriteString("\n")
	sb.WriteString(headingStyle.Render("Potential Challenges"))
	sb.WriteString("\n")
	if len(r.Challenges) == 0 {
		sb.WriteString("No specific challenges information available\n")
	}
	for _, c := range r.Challenges {
		sb.WriteString(fmt.Sprintf("%s %s\n", challengMark, wrap(c, textWidth-2, "  ")))
	}

	for _, name := range []analysis.SectionName{analysis.SectionCommunication, analysis.SectionGrowth} {
		if text, ok := r.Get(name); ok && text != "" {
			sb.WriteString("\n")
			sb.WriteString(headingStyle.Render(string(name)))
			sb.WriteString("\n")
			sb.WriteString(wrap(text, textWidth, ""))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Compatibility Rating: %s", style.Render(r.Rating)))

	p.printBox(analysisTitle(r), sb.String())
}

func analysisTitle(r *analysis.Result) string {
	if r.TypeA == "" || r.TypeB == "" {
		return "COMPATIBILITY ANALYSIS"
	}
	return fmt.Sprintf("%s × %s COMPATIBILITY", displayCode(r.TypeA), displayCode(r.TypeB))
}

func displayCode(code string) string {
	name := mbti.DisplayName(code)
	if name == code {
		return code
	}
	return fmt.Sprintf("%s (%s)", code, strings.ToUpper(name))
}

// PrintScore outputs the directional table score for one ordered pair.
func (p *Printer) PrintScore(a, b mbti.Type, score int) {
	label := mbti.Classify(score)
	style := labelStyle(label)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s → %s\n", displayCode(a.String()), displayCode(b.String())))
	sb.WriteString(fmt.Sprintf("[%s] %d%%  %s", style.Render(Meter(score)), score, style.Render(string(label))))

	p.printBox("COMPATIBILITY SCORE", sb.String())
}

// PrintMatrix outputs the full directional table; rows are the first type.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintMatrix() {
	types := mbti.All()

	var header strings.Builder
	header.WriteString("     ")
	for _, t := range types {
		header.WriteString(fmt.Sprintf(" %-4s", t))
	}
	fmt.Fprintln(p.out, headingStyle.Render(header.String()))

	for _, a := range types {
		var row strings.Builder
		row.WriteString(headingStyle.Render(fmt.Sprintf("%-5s", a)))
		for _, score := range mbti.Row(a) {
			row.WriteString(" ")
			row.WriteString(labelStyle(mbti.Classify(score)).UnsetBold().Render(fmt.Sprintf("%4d", score)))
		}
		fmt.Fprintln(p.out, row.String())
	}
}

// PrintTypes outputs every type grouped by temperament.
func (p *Printer) PrintTypes() {
	var sb strings.Builder

	var current mbti.Group
	for _, profile := range mbti.Profiles() {
		if profile.Group != current {
			if current != "" {
				sb.WriteString("\n")
			}
			current = profile.Group
			sb.WriteString(headingStyle.Render(string(current)))
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("  %-4s  %-12s %s\n", profile.Code, profile.Archetype, profile.Famous))
	}

	p.printBox("MBTI TYPES", strings.TrimSuffix(sb.String(), "\n"))
}
