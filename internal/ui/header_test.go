package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

func TestHeader_View(t *testing.T) {
	tests := []struct {
		name         string
		width        int
		endpoint     string
		wantContains []string
		wantMissing  []string
	}{
		{
			name:         "wide shows everything",
			width:        120,
			endpoint:     "http://localhost:8000/research",
			wantContains: []string{AppTitle, AppSubtitle, "http://localhost:8000/research"},
		},
		{
			name:         "no endpoint",
			width:        80,
			wantContains: []string{AppTitle, AppSubtitle},
		},
		{
			name:         "narrow drops endpoint first",
			width:        50,
			endpoint:     "http://localhost:8000/research",
			wantContains: []string{AppTitle, AppSubtitle},
			wantMissing:  []string{"localhost"},
		},
		{
			name:         "very narrow keeps only the title",
			width:        20,
			endpoint:     "http://localhost:8000/research",
			wantContains: []string{AppTitle},
			wantMissing:  []string{AppSubtitle},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHeader()
			h.SetWidth(tt.width)
			h.SetEndpoint(tt.endpoint)

			got := ansi.Strip(h.View())
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("header %q missing %q", got, want)
				}
			}
			for _, missing := range tt.wantMissing {
				if strings.Contains(got, missing) {
					t.Errorf("header %q should not contain %q", got, missing)
				}
			}
		})
	}
}

func TestHeader_FillsWidth(t *testing.T) {
	h := NewHeader()
	h.SetWidth(100)
	h.SetEndpoint("http://x")

	if w := runewidth.StringWidth(ansi.Strip(h.View())); w != 100 {
		t.Errorf("header width = %d, want 100", w)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		hex     string
		r, g, b int
	}{
		{"#7C3AED", 0x7C, 0x3A, 0xED},
		{"#000000", 0, 0, 0},
		{"bad", 0, 0, 0},
	}

	for _, tt := range tests {
		r, g, b := parseHexColor(tt.hex)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("parseHexColor(%q) = %d,%d,%d, want %d,%d,%d", tt.hex, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}

func TestRenderGradient_Empty(t *testing.T) {
	if got := renderGradient("", 0); got != "" {
		t.Errorf("renderGradient(\"\") = %q, want empty", got)
	}
}
