package markdown

import "charm.land/lipgloss/v2"

// Styles controls how each Markdown element is drawn.
type Styles struct {
	H1, H2, H3, H4  lipgloss.Style
	Bold            lipgloss.Style
	Italic          lipgloss.Style
	Strikethrough   lipgloss.Style
	InlineCode      lipgloss.Style
	Link            lipgloss.Style
	LinkURL         lipgloss.Style
	ListBullet      lipgloss.Style
	Blockquote      lipgloss.Style
	BlockquoteBar   lipgloss.Style
	CodeBlockBorder lipgloss.Style
	CodeBlockLang   lipgloss.Style
	HorizontalRule  lipgloss.Style
	TableHeader     lipgloss.Style
	TableBorder     lipgloss.Style

	// CodeTheme is the chroma style name used for fenced code blocks.
	CodeTheme string
}

// DefaultStyles returns the purple/cyan palette used by the chat view.
func DefaultStyles() Styles {
	var (
		purple = lipgloss.Color("#A78BFA")
		cyan   = lipgloss.Color("#22D3EE")
		muted  = lipgloss.Color("#6B7280")
		text   = lipgloss.Color("#F9FAFB")
		code   = lipgloss.Color("#F472B6")
		codeBg = lipgloss.Color("#374151")
	)

	return Styles{
		H1:              lipgloss.NewStyle().Bold(true).Underline(true).Foreground(purple),
		H2:              lipgloss.NewStyle().Bold(true).Foreground(purple),
		H3:              lipgloss.NewStyle().Bold(true).Foreground(cyan),
		H4:              lipgloss.NewStyle().Bold(true).Foreground(text),
		Bold:            lipgloss.NewStyle().Bold(true),
		Italic:          lipgloss.NewStyle().Italic(true),
		Strikethrough:   lipgloss.NewStyle().Strikethrough(true),
		InlineCode:      lipgloss.NewStyle().Foreground(code).Background(codeBg),
		Link:            lipgloss.NewStyle().Underline(true).Foreground(cyan),
		LinkURL:         lipgloss.NewStyle().Foreground(muted),
		ListBullet:      lipgloss.NewStyle().Bold(true).Foreground(cyan),
		Blockquote:      lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#B0B8C4")),
		BlockquoteBar:   lipgloss.NewStyle().Foreground(purple),
		CodeBlockBorder: lipgloss.NewStyle().Foreground(muted),
		CodeBlockLang:   lipgloss.NewStyle().Italic(true).Foreground(muted),
		HorizontalRule:  lipgloss.NewStyle().Foreground(muted),
		TableHeader:     lipgloss.NewStyle().Bold(true).Foreground(cyan),
		TableBorder:     lipgloss.NewStyle().Foreground(muted),
		CodeTheme:       "monokai",
	}
}

// PlainStyles draws no colors or attributes. Used for non-terminal output.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		H1: plain, H2: plain, H3: plain, H4: plain,
		Bold: plain, Italic: plain, Strikethrough: plain,
		InlineCode: plain, Link: plain, LinkURL: plain,
		ListBullet: plain, Blockquote: plain, BlockquoteBar: plain,
		CodeBlockBorder: plain, CodeBlockLang: plain,
		HorizontalRule: plain, TableHeader: plain, TableBorder: plain,
	}
}
