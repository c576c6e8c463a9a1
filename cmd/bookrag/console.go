package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/karimelsayad/bookrag/agent"
)

// Console styles shared by the ask and chat commands.
var (
	questionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	answerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1).
			Width(80)

	sourceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Italic(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	statStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// printResult renders an answer to the terminal, optionally with its
// citation list.
func printResult(result *agent.Result, showSources bool) {
	fmt.Println(answerStyle.Render(result.Answer))

	if result.LowConfidence {
		fmt.Println(warnStyle.Render("⚠ Low confidence: the books may not cover this topic well."))
	}

	if showSources && len(result.Sources) > 0 {
		var b strings.Builder
		b.WriteString("Sources:\n")
		for _, s := range result.Sources {
			fmt.Fprintf(&b, "  • %s (page %d)\n", s.Source, s.Page)
		}
		fmt.Print(sourceStyle.Render(strings.TrimRight(b.String(), "\n")))
		fmt.Println()
	}

	fmt.Println(statStyle.Render(fmt.Sprintf(
		"route=%s attempts=%d rewrites=%d took=%s",
		result.Route, result.Attempts, result.Rewrites,
		result.Duration.Round(10*time.Millisecond),
	)))
}
