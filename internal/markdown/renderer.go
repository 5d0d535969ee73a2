// Package markdown renders assistant replies for the terminal.
//
// Source is parsed with goldmark (GitHub flavored) and the AST is walked
// into lipgloss-styled lines, word-wrapped to the viewport width. Fenced
// code blocks are highlighted with chroma. Rendering is display only; the
// stored message text is never changed.
package markdown

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// DefaultWidth is used when the caller does not know the display width.
const DefaultWidth = 80

// minWrapWidth keeps deeply nested content readable on narrow terminals.
const minWrapWidth = 10

// Renderer turns Markdown into styled terminal text. A Renderer is safe for
// concurrent use.
type Renderer struct {
	md     goldmark.Markdown
	styles Styles
}

// NewRenderer creates a renderer with the given styles.
func NewRenderer(styles Styles) *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
		styles: styles,
	}
}

// Render returns content as styled lines joined by "\n", wrapped to width
// cells. Width <= 0 uses DefaultWidth.
func (r *Renderer) Render(content string, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	source := []byte(content)
	root := r.md.Parser().Parse(text.NewReader(source))

	s := &renderState{styles: &r.styles, source: source, width: width}
	for node := root.FirstChild(); node != nil; node = node.NextSibling() {
		r.renderBlock(node, s, false)
	}
	s.trimTrailingBlankLines()
	return strings.Join(s.lines, "\n")
}

type renderState struct {
	styles *Styles
	source []byte
	width  int
	lines  []string

	// prefix is drawn before every line; marker replaces it once, for the
	// first line of a list item.
	prefix string
	marker string
}

func (s *renderState) emit(line string) {
	p := s.prefix
	if s.marker != "" {
		p = s.marker
		s.marker = ""
	}
	s.lines = append(s.lines, p+line)
}

// emitWrapped wraps styled text to the space left after the prefix.
func (s *renderState) emitWrapped(styled string) {
	avail := s.width - ansi.StringWidth(s.prefix)
	if avail < minWrapWidth {
		avail = minWrapWidth
	}
	for _, line := range strings.Split(ansi.Wrap(styled, avail, ""), "\n") {
		s.emit(line)
	}
}

func (s *renderState) addSpacer() {
	if len(s.lines) == 0 || s.lines[len(s.lines)-1] == "" {
		return
	}
	s.lines = append(s.lines, "")
}

func (s *renderState) trimTrailingBlankLines() {
	for len(s.lines) > 0 && s.lines[len(s.lines)-1] == "" {
		s.lines = s.lines[:len(s.lines)-1]
	}
}

func (s *renderState) withPrefix(marker, cont string, fn func()) {
	prevPrefix := s.prefix
	base := s.prefix
	if s.marker != "" {
		base = s.marker
	}
	s.marker = base + marker
	s.prefix = prevPrefix + cont
	fn()
	s.prefix = prevPrefix
	s.marker = ""
}

func (r *Renderer) renderBlock(node ast.Node, s *renderState, tight bool) {
	switch n := node.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		s.emitWrapped(r.renderInlines(n, s, lipgloss.NewStyle()))
		if !tight {
			s.addSpacer()
		}

	case *ast.Heading:
		s.emitWrapped(r.headingStyle(n.Level).Render(collectPlainText(n, s.source)))
		s.addSpacer()

	case *ast.Blockquote:
		bar := r.styles.BlockquoteBar.Render("│") + " "
		s.withPrefix(bar, bar, func() {
			for child := n.FirstChild(); child != nil; child = child.NextSibling() {
				if p, ok := child.(*ast.Paragraph); ok {
					s.emitWrapped(r.styles.Blockquote.Render(collectPlainText(p, s.source)))
					continue
				}
				r.renderBlock(child, s, true)
			}
		})
		s.addSpacer()

	case *ast.List:
		r.renderList(n, s)
		if !tight {
			s.addSpacer()
		}

	case *ast.FencedCodeBlock:
		r.renderCodeBlock(s, codeText(n, s.source), string(n.Language(s.source)))
		s.addSpacer()

	case *ast.CodeBlock:
		r.renderCodeBlock(s, codeText(n, s.source), "")
		s.addSpacer()

	case *ast.ThematicBreak:
		rule := s.width - ansi.StringWidth(s.prefix)
		if rule > 32 {
			rule = 32
		}
		if rule < 1 {
			rule = 1
		}
		s.emit(r.styles.HorizontalRule.Render(strings.Repeat("─", rule)))
		s.addSpacer()

	case *extast.Table:
		r.renderTable(n, s)
		s.addSpacer()

	case *ast.HTMLBlock:
		for i := 0; i < n.Lines().Len(); i++ {
			seg := n.Lines().At(i)
			s.emitWrapped(strings.TrimRight(string(seg.Value(s.source)), "\n"))
		}
		s.addSpacer()

	default:
		for child := node.FirstChild(); child != nil; child = child.NextSibling() {
			r.renderBlock(child, s, tight)
		}
	}
}

func (r *Renderer) headingStyle(level int) lipgloss.Style {
	switch level {
	case 1:
		return r.styles.H1
	case 2:
		return r.styles.H2
	case 3:
		return r.styles.H3
	default:
		return r.styles.H4
	}
}

func (r *Renderer) renderList(list *ast.List, s *renderState) {
	index := list.Start
	if index == 0 {
		index = 1
	}
	depth := listDepth(list)

	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		bullet := "•"
		if depth > 0 {
			bullet = "◦"
		}
		if list.IsOrdered() {
			bullet = fmt.Sprintf("%d.", index)
		}
		marker := r.styles.ListBullet.Render(bullet) + " "
		cont := strings.Repeat(" ", ansi.StringWidth(bullet)+1)

		s.withPrefix(marker, cont, func() {
			for child := item.FirstChild(); child != nil; child = child.NextSibling() {
				r.renderBlock(child, s, list.IsTight)
			}
		})
		index++
	}
}

func listDepth(list *ast.List) int {
	depth := 0
	for node := list.Parent(); node != nil; node = node.Parent() {
		if _, ok := node.(*ast.List); ok {
			depth++
		}
	}
	return depth
}

func (r *Renderer) renderCodeBlock(s *renderState, code, language string) {
	code = strings.TrimRight(code, "\n")
	border := r.styles.CodeBlockBorder.Render("│") + " "

	if language != "" {
		s.emit(r.styles.CodeBlockLang.Render(language))
	}
	avail := s.width - ansi.StringWidth(s.prefix) - 2
	if avail < minWrapWidth {
		avail = minWrapWidth
	}
	highlighted := strings.TrimRight(highlightCode(code, language, r.styles.CodeTheme), "\n")
	for _, line := range strings.Split(highlighted, "\n") {
		for _, part := range strings.Split(ansi.Hardwrap(line, avail, true), "\n") {
			s.emit(border + part)
		}
	}
}

func codeText(node ast.Node, source []byte) string {
	var b strings.Builder
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(source))
	}
	return b.String()
}

func (r *Renderer) renderTable(table *extast.Table, s *renderState) {
	var rows [][]string
	header := -1
	for row := table.FirstChild(); row != nil; row = row.NextSibling() {
		if _, ok := row.(*extast.TableHeader); ok {
			header = len(rows)
		}
		var cells []string
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cells = append(cells, collectPlainText(cell, s.source))
		}
		rows = append(rows, cells)
	}

	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if w := ansi.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	sep := r.styles.TableBorder.Render(" │ ")
	for i, row := range rows {
		parts := make([]string, len(row))
		for j, cell := range row {
			padded := cell + strings.Repeat(" ", widths[j]-ansi.StringWidth(cell))
			if i == header {
				padded = r.styles.TableHeader.Render(padded)
			}
			parts[j] = padded
		}
		s.emit(ansi.Truncate(strings.Join(parts, sep), s.width, "…"))
		if i == header {
			rule := make([]string, len(widths))
			for j, w := range widths {
				rule[j] = strings.Repeat("─", w)
			}
			s.emit(r.styles.TableBorder.Render(strings.Join(rule, "─┼─")))
		}
	}
}

func (r *Renderer) renderInlines(node ast.Node, s *renderState, style lipgloss.Style) string {
	var b strings.Builder
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		b.WriteString(r.renderInline(child, s, style))
	}
	return b.String()
}

func (r *Renderer) renderInline(node ast.Node, s *renderState, style lipgloss.Style) string {
	switch n := node.(type) {
	case *ast.Text:
		out := render(style, string(n.Segment.Value(s.source)))
		if n.HardLineBreak() {
			out += "\n"
		} else if n.SoftLineBreak() {
			out += " "
		}
		return out

	case *ast.String:
		return render(style, string(n.Value))

	case *ast.CodeSpan:
		return r.styles.InlineCode.Render(collectPlainText(n, s.source))

	case *ast.Emphasis:
		inline := r.styles.Italic
		if n.Level >= 2 {
			inline = r.styles.Bold
		}
		return r.renderInlines(n, s, merge(style, inline))

	case *extast.Strikethrough:
		return r.renderInlines(n, s, merge(style, r.styles.Strikethrough))

	case *ast.Link:
		label := r.renderInlines(n, s, merge(style, r.styles.Link))
		dest := string(n.Destination)
		if dest != "" && dest != collectPlainText(n, s.source) {
			label += r.styles.LinkURL.Render(" (" + dest + ")")
		}
		return label

	case *ast.Image:
		alt := collectPlainText(n, s.source)
		return r.styles.Link.Render("["+alt+"]") + r.styles.LinkURL.Render(" ("+string(n.Destination)+")")

	case *ast.AutoLink:
		return merge(style, r.styles.Link).Render(string(n.URL(s.source)))

	case *ast.RawHTML:
		var b strings.Builder
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			b.Write(seg.Value(s.source))
		}
		return render(style, b.String())

	case *extast.TaskCheckBox:
		if n.IsChecked {
			return r.styles.ListBullet.Render("[x]") + " "
		}
		return r.styles.ListBullet.Render("[ ]") + " "

	default:
		return r.renderInlines(node, s, style)
	}
}

func collectPlainText(node ast.Node, source []byte) string {
	var b strings.Builder
	var walk func(ast.Node)
	walk = func(n ast.Node) {
		switch t := n.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
			if t.HardLineBreak() {
				b.WriteByte('\n')
			} else if t.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		}
		for child := n.FirstChild(); child != nil; child = child.NextSibling() {
			walk(child)
		}
	}
	walk(node)
	return b.String()
}

// render applies style to a single-line fragment. Empty fragments stay empty
// so no stray escape sequences end up in the output.
func render(style lipgloss.Style, s string) string {
	if s == "" {
		return ""
	}
	return style.Render(s)
}

// merge layers inline over base; properties set on inline win.
func merge(base, inline lipgloss.Style) lipgloss.Style {
	return inline.Inherit(base)
}
