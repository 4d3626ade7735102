package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gubarz/ssfner/internal/stats"
)

// RenderSummary renders corpus statistics as a bordered report
func RenderSummary(s stats.Summary) string {
	return renderSummary(styles, s)
}

// RenderSummaryPlain renders the report without colors or border
func RenderSummaryPlain(s stats.Summary) string {
	return renderSummary(styles.Plain(), s)
}

func renderSummary(st *StyleManager, s stats.Summary) string {
	rows := [][2]string{
		{"files", fmt.Sprint(s.Files)},
		{"sentence blocks", fmt.Sprint(s.Blocks)},
		{"tagged sentences", fmt.Sprint(s.Sentences)},
		{"tokens", fmt.Sprint(s.Tokens)},
		{"outside (O)", fmt.Sprint(s.Outside)},
	}

	labelWidth := 0
	for _, r := range rows {
		labelWidth = max(labelWidth, lipgloss.Width(r[0]))
	}

	var lines []string
	lines = append(lines, st.Title.Render("SSF corpus summary"))
	for _, r := range rows {
		lines = append(lines, st.Label.Render(fmt.Sprintf("%-*s", labelWidth, r[0]))+"  "+st.Value.Render(r[1]))
	}

	counts := s.ByLabel()
	if len(counts) > 0 {
		tagWidth := 0
		for _, c := range counts {
			tagWidth = max(tagWidth, lipgloss.Width(c.Label))
		}
		lines = append(lines, st.Divider.Render(strings.Repeat("─", labelWidth+2+tagWidth)))
		lines = append(lines, st.Title.Render("entity spans"))
		for _, c := range counts {
			lines = append(lines, st.Tag.Render(fmt.Sprintf("%-*s", tagWidth, c.Label))+"  "+st.Value.Render(fmt.Sprint(c.Spans)))
		}
	} else {
		lines = append(lines, st.Dim.Render("no entity spans"))
	}

	return st.Border.Render(strings.Join(lines, "\n"))
}
