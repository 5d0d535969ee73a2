package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

// Header represents the top header bar
type Header struct {
	width    int
	endpoint string
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetEndpoint sets the endpoint shown on the right side
func (h *Header) SetEndpoint(endpoint string) {
	h.endpoint = endpoint
}

// View renders the header
func (h *Header) View() string {
	titleText := " " + AppTitle
	subtitleText := "  " + AppSubtitle
	rightText := ""
	if h.endpoint != "" {
		rightText = h.endpoint + " "
	}

	// Drop pieces that don't fit, right side first
	used := runewidth.StringWidth(titleText) + runewidth.StringWidth(subtitleText) + runewidth.StringWidth(rightText)
	if used > h.width {
		rightText = ""
		used = runewidth.StringWidth(titleText) + runewidth.StringWidth(subtitleText)
	}
	if used > h.width {
		subtitleText = ""
		used = runewidth.StringWidth(titleText)
	}

	paddingLen := h.width - used
	if paddingLen < 0 {
		paddingLen = 0
	}

	fullContent := titleText + subtitleText + strings.Repeat(" ", paddingLen) + rightText
	return renderGradient(fullContent, runewidth.StringWidth(titleText))
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient draws content over a purple-to-background gradient. The
// first titleWidth cells are bold; everything after is muted.
func renderGradient(content string, titleWidth int) string {
	if len(content) == 0 {
		return ""
	}

	startR, startG, startB := parseHexColor(headerStartHex)
	endR, endG, endB := parseHexColor(headerEndHex)

	runes := []rune(content)
	width := len(runes)
	var result strings.Builder

	for i, r := range runes {
		t := float64(i) / float64(width)

		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		style := lipgloss.NewStyle().
			Background(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb)))

		if i < titleWidth {
			style = style.Foreground(ColorText).Bold(true)
		} else {
			style = style.Foreground(ColorTextMuted)
		}

		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
