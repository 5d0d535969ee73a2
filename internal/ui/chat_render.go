package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/nexus/internal/conversation"
)

// renderWelcome renders the empty-thread placeholder with the feature cards
func renderWelcome(width int) string {
	var cards []string
	for _, f := range FeatureLabels {
		cards = append(cards, FeatureCardStyle.Render(FeatureIconStyle.Render(f.Icon)+" "+f.Label))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, interleave(cards, " ")...)
	if lipgloss.Width(row) > width {
		// Stack the cards on narrow terminals
		row = lipgloss.JoinVertical(lipgloss.Left, cards...)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		WelcomeTextStyle.Render(WelcomeText),
		"",
		row,
	)
}

func interleave(items []string, sep string) []string {
	out := make([]string, 0, len(items)*2)
	for i, item := range items {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, item)
	}
	return out
}

// renderUserContent wraps user text verbatim; no Markdown interpretation
func renderUserContent(content string, width int) string {
	return ChatMessageStyle.Render(ansi.Wrap(content, width, ""))
}

// indent prefixes every line of s with n spaces
func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = pad + line
		}
	}
	return strings.Join(lines, "\n")
}

// roleLabel returns the styled label shown above a message
func roleLabel(role conversation.Role) string {
	if role == conversation.RoleUser {
		return ChatUserStyle.Render(UserLabel + ":")
	}
	return ChatAssistantStyle.Render(AssistantLabel + ":")
}
