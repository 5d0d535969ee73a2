package ui

import (
	"strings"
	"time"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/nexus/internal/conversation"
	"github.com/zhubert/nexus/internal/keys"
	"github.com/zhubert/nexus/internal/logger"
	"github.com/zhubert/nexus/internal/markdown"
)

// Chat is the conversation panel: a scrolling thread above a draft input
type Chat struct {
	viewport viewport.Model
	input    textarea.Model
	renderer *markdown.Renderer
	width    int
	height   int

	messages []conversation.Message
	// rendered caches message bodies for cacheWidth
	rendered   []string
	cacheWidth int

	waiting   bool
	waitStart time.Time
	spinner   SpinnerState
}

// NewChat creates a new chat panel
func NewChat() *Chat {
	ti := textarea.New()
	ti.Placeholder = InputPlaceholder
	ti.CharLimit = InputCharLimit
	ti.SetHeight(TextareaHeight)
	ti.ShowLineNumbers = false
	ti.Prompt = ""
	ti.Focus()

	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	c := &Chat{
		viewport: vp,
		input:    ti,
		renderer: markdown.NewRenderer(markdown.DefaultStyles()),
	}
	c.updateContent()
	return c
}

// SetSize sets the chat panel dimensions
func (c *Chat) SetSize(width, height int) {
	c.width = width
	c.height = height

	ctx := GetViewContext()

	// Chat panel height (excluding input area which is separate)
	chatPanelHeight := height - InputTotalHeight
	viewportHeight := ctx.InnerHeight(chatPanelHeight)
	if viewportHeight < 1 {
		viewportHeight = 1
	}

	c.viewport.SetWidth(ctx.InnerWidth(width))
	c.viewport.SetHeight(viewportHeight)

	// Input width accounts for its own border AND padding
	c.input.SetWidth(ctx.InnerWidth(width) - InputPaddingWidth)

	logger.WithComponent("ui").Debug("Chat.SetSize",
		"width", width, "height", height,
		"viewportWidth", c.viewport.Width(), "viewportHeight", viewportHeight)

	c.updateContent()
}

// SetMessages replaces the whole thread
func (c *Chat) SetMessages(messages []conversation.Message) {
	c.messages = append([]conversation.Message(nil), messages...)
	c.rendered = nil
	c.updateContent()
}

// AppendMessage adds one message to the thread and scrolls to it
func (c *Chat) AppendMessage(msg conversation.Message) {
	c.messages = append(c.messages, msg)
	c.updateContent()
}

// MessageCount returns the number of messages shown
func (c *Chat) MessageCount() int {
	return len(c.messages)
}

// InputValue returns the draft exactly as typed
func (c *Chat) InputValue() string {
	return c.input.Value()
}

// SetInputValue replaces the draft
func (c *Chat) SetInputValue(value string) {
	if c.input.Value() != value {
		c.input.SetValue(value)
	}
}

// ClearInput clears the input field
func (c *Chat) ClearInput() {
	c.input.Reset()
}

// InputFocused reports whether the input accepts keys
func (c *Chat) InputFocused() bool {
	return c.input.Focused()
}

// AtBottom reports whether the thread is scrolled to the latest message
func (c *Chat) AtBottom() bool {
	return c.viewport.AtBottom()
}

// ScrollToTop scrolls the thread to the first message
func (c *Chat) ScrollToTop() {
	c.viewport.GotoTop()
}

// Update handles messages
func (c *Chat) Update(msg tea.Msg) (*Chat, tea.Cmd) {
	switch msg := msg.(type) {
	case StopwatchTickMsg:
		return c, c.handleStopwatchTick()

	case tea.KeyPressMsg:
		key := msg.String()
		if keys.IsScroll(key) {
			return c, c.scroll(msg)
		}
		if c.waiting {
			// Input is disabled while a request is in flight
			return c, nil
		}
		if keys.IsNewline(key) {
			c.input.InsertString("\n")
			return c, nil
		}
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return c, cmd

	case tea.PasteMsg:
		if c.waiting {
			return c, nil
		}
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return c, cmd
	}

	// Mouse wheel and everything else goes to the viewport
	var cmd tea.Cmd
	c.viewport, cmd = c.viewport.Update(msg)
	return c, cmd
}

func (c *Chat) scroll(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case keys.Home:
		c.viewport.GotoTop()
		return nil
	case keys.End:
		c.viewport.GotoBottom()
		return nil
	case keys.CtrlUp:
		c.viewport.ScrollUp(1)
		return nil
	case keys.CtrlDown:
		c.viewport.ScrollDown(1)
		return nil
	}
	var cmd tea.Cmd
	c.viewport, cmd = c.viewport.Update(msg)
	return cmd
}

// wrapWidth is the width available to message bodies
func (c *Chat) wrapWidth() int {
	w := c.viewport.Width() - MessageIndent
	if w <= 0 {
		return DefaultWrapWidth
	}
	return w
}

// renderBody renders one message body, using the cache when possible
func (c *Chat) renderBody(i int, width int) string {
	if c.cacheWidth != width {
		c.rendered = nil
		c.cacheWidth = width
	}
	for len(c.rendered) < len(c.messages) {
		c.rendered = append(c.rendered, "")
	}
	if c.rendered[i] != "" {
		return c.rendered[i]
	}

	msg := c.messages[i]
	var body string
	switch {
	case msg.Role == conversation.RoleUser:
		body = renderUserContent(msg.Content, width)
	case msg.Failed:
		body = ChatErrorStyle.Render(msg.Content)
	default:
		body = c.renderer.Render(msg.Content, width)
	}
	body = indent(body, MessageIndent)
	c.rendered[i] = body
	return body
}

// renderThread builds the full thread content
func (c *Chat) renderThread() string {
	width := c.wrapWidth()

	if len(c.messages) == 0 && !c.waiting {
		return renderWelcome(width)
	}

	var sb strings.Builder
	for i, msg := range c.messages {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(roleLabel(msg.Role))
		sb.WriteString("\n")
		sb.WriteString(c.renderBody(i, width))
	}

	if c.waiting {
		if len(c.messages) > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(roleLabel(conversation.RoleAssistant))
		sb.WriteString("\n")
		sb.WriteString(indent(renderLoading(c.spinner.Verb, c.spinner.Idx, time.Since(c.waitStart)), MessageIndent))
	}
	return sb.String()
}

// updateContent re-renders the thread and scrolls to the latest message
func (c *Chat) updateContent() {
	c.viewport.SetContent(c.renderThread())
	c.viewport.GotoBottom()
}

// refreshContent re-renders the thread, staying at the bottom only if the
// user was already there
func (c *Chat) refreshContent() {
	atBottom := c.viewport.AtBottom()
	c.viewport.SetContent(c.renderThread())
	if atBottom {
		c.viewport.GotoBottom()
	}
}

// View renders the chat panel
func (c *Chat) View() string {
	panelStyle := PanelFocusedStyle
	inputStyle := ChatInputFocusedStyle
	if c.waiting {
		panelStyle = PanelStyle
		inputStyle = ChatInputStyle
	}

	chatPanelHeight := c.height - InputTotalHeight
	chatPanel := panelStyle.Width(c.width).Height(chatPanelHeight).Render(c.viewport.View())
	inputArea := inputStyle.Width(c.width).Render(c.input.View())

	return lipgloss.JoinVertical(lipgloss.Left, chatPanel, inputArea)
}
