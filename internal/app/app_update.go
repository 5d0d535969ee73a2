package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/nexus/internal/conversation"
	"github.com/zhubert/nexus/internal/keys"
	"github.com/zhubert/nexus/internal/logger"
	"github.com/zhubert/nexus/internal/ui"
)

// Update handles messages. This is the core Bubble Tea update function that
// routes all messages to appropriate handlers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		logger.Debug("window resized to %dx%d", msg.Width, msg.Height)
		m.updateSizes()
		return m, nil

	case tea.FocusMsg:
		m.windowFocused = true
		return m, nil

	case tea.BlurMsg:
		m.windowFocused = false
		return m, nil

	case tea.KeyPressMsg:
		if handled, cmd := m.handleKeyPress(msg); handled {
			return m, cmd
		}

	case ReplyMsg:
		return m, m.handleReplyMsg(msg)

	case ui.FlashTickMsg:
		if m.footer.ClearIfExpired() {
			return m, ui.FlashTick()
		}
		return m, nil
	}

	chat, cmd := m.chat.Update(msg)
	m.chat = chat
	m.syncDraft()
	return m, cmd
}

// handleKeyPress handles app-level keys. It reports whether the key was
// consumed; unconsumed keys go to the chat panel.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case keys.CtrlC:
		logger.WithComponent("app").Info("quit requested", "sending", m.ctrl.IsSending())
		return true, tea.Quit

	case keys.Enter:
		return true, m.submit()

	case keys.CtrlY:
		return true, m.copyLastReply()
	}
	return false, nil
}

// submit hands the current draft to the controller and, when accepted,
// starts the request off the event loop.
func (m *Model) submit() tea.Cmd {
	m.syncDraft()
	req, ok := m.ctrl.Submit()
	if !ok {
		return nil
	}
	m.chat.SetWaitingWithStart(true, m.ctrl.SentAt())
	return tea.Batch(m.sendCmd(req), ui.StopwatchTick())
}

// sendCmd runs Controller.Send in a command goroutine. Send reads no
// controller state, so it is safe off the loop.
func (m *Model) sendCmd(req conversation.Request) tea.Cmd {
	ctrl, ctx := m.ctrl, m.ctx
	return func() tea.Msg {
		return ReplyMsg{Reply: ctrl.Send(ctx, req)}
	}
}
