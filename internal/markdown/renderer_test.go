package markdown

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plain(t *testing.T, content string, width int) string {
	t.Helper()
	return ansi.Strip(NewRenderer(DefaultStyles()).Render(content, width))
}

func TestRender_Inline(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "hello", "hello"},
		{"bold", "Hello **world**", "Hello world"},
		{"italic", "an *aside*", "an aside"},
		{"strikethrough", "~~gone~~ here", "gone here"},
		{"inline code", "run `go test`", "run go test"},
		{"link", "see [docs](https://example.com)", "see docs (https://example.com)"},
		{"autolink", "<https://example.com>", "https://example.com"},
		{"soft break joins", "one\ntwo", "one two"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, plain(t, tt.input, 80))
		})
	}
}

func TestRender_StylesEmitEscapes(t *testing.T) {
	out := NewRenderer(DefaultStyles()).Render("**bold**", 80)
	assert.NotEqual(t, "bold", out, "bold text should carry SGR sequences")
	assert.Equal(t, "bold", ansi.Strip(out))
}

func TestRender_Blocks(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"heading then paragraph", "# Title\n\nbody", "Title\n\nbody"},
		{"paragraphs separated", "first\n\nsecond", "first\n\nsecond"},
		{"bullet list", "- a\n- b", "• a\n• b"},
		{"ordered list", "3. x\n4. y", "3. x\n4. y"},
		{"nested list", "- a\n  - b", "• a\n  ◦ b"},
		{"task list", "- [x] done\n- [ ] todo", "• [x] done\n• [ ] todo"},
		{"blockquote", "> quoted", "│ quoted"},
		{"rule", "a\n\n---\n\nb", "a\n\n" + strings.Repeat("─", 32) + "\n\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, plain(t, tt.input, 80))
		})
	}
}

func TestRender_CodeBlock(t *testing.T) {
	out := plain(t, "before\n\n```go\nfmt.Println(\"hi\")\n```\n\nafter", 80)
	lines := strings.Split(out, "\n")

	require.GreaterOrEqual(t, len(lines), 5)
	assert.Equal(t, "before", lines[0])
	assert.Equal(t, "go", lines[2])
	assert.Equal(t, "│ fmt.Println(\"hi\")", lines[3])
	assert.Equal(t, "after", lines[len(lines)-1])
}

func TestRender_CodeBlockWithoutHighlighting(t *testing.T) {
	out := NewRenderer(PlainStyles()).Render("```\nx := 1\n```", 80)
	assert.Equal(t, "│ x := 1", out)
}

func TestRender_Table(t *testing.T) {
	out := plain(t, "| a | bb |\n|---|----|\n| 1 | 2 |", 80)
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 3)
	assert.Equal(t, "a │ bb", lines[0])
	assert.Equal(t, "──┼───", lines[1])
	assert.Equal(t, "1 │ 2 ", lines[2])
}

func TestRender_WrapsToWidth(t *testing.T) {
	long := strings.Repeat("lorem ipsum dolor ", 10)
	out := plain(t, long, 20)

	lines := strings.Split(out, "\n")
	assert.Greater(t, len(lines), 1)
	for _, line := range lines {
		assert.LessOrEqual(t, ansi.StringWidth(line), 20, "line %q", line)
	}
}

func TestRender_ListContinuationIndented(t *testing.T) {
	out := plain(t, "- "+strings.Repeat("word ", 10), 20)
	lines := strings.Split(out, "\n")

	require.Greater(t, len(lines), 1)
	assert.True(t, strings.HasPrefix(lines[0], "• "))
	for _, line := range lines[1:] {
		assert.True(t, strings.HasPrefix(line, "  "), "continuation %q", line)
	}
}

func TestRender_DefaultWidth(t *testing.T) {
	out := plain(t, strings.Repeat("x ", 100), 0)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(line), DefaultWidth)
	}
}
