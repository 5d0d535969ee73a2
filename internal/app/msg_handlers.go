package app

import (
	tea "charm.land/bubbletea/v2"

	nerrors "github.com/zhubert/nexus/internal/errors"
	"github.com/zhubert/nexus/internal/logger"
)

// handleReplyMsg folds a finished request into the conversation
func (m *Model) handleReplyMsg(msg ReplyMsg) tea.Cmd {
	if !m.ctrl.Resolve(msg.Reply) {
		return nil
	}
	m.chat.SetWaiting(false)

	var cmds []tea.Cmd
	failed := msg.Reply.Err != nil
	if failed {
		logger.WithSession(m.ctrl.SessionID()).Warn("reply replaced with error message", "error", msg.Reply.Err)
		cmds = append(cmds, m.ShowFlashError(m.failureHint(msg.Reply.Err)))
	}

	// Notify only when the user is looking elsewhere
	if !m.windowFocused && m.config.GetNotificationsEnabled() {
		notify, result := m.notify, msg.Reply.Result
		cmds = append(cmds, func() tea.Msg {
			if err := notify(result, failed); err != nil {
				logger.Warn("desktop notification failed: %v", err)
			}
			return nil
		})
	}
	return tea.Batch(cmds...)
}

// failureHint names the likely cause of a failed request for the footer.
// The thread itself always shows the fixed error reply.
func (m *Model) failureHint(err error) string {
	switch {
	case nerrors.Is(err, nerrors.KindNetwork):
		return "Research service unreachable at " + m.config.URL()
	case nerrors.Is(err, nerrors.KindStatus):
		return "Research service answered with an error status"
	case nerrors.Is(err, nerrors.KindDecode):
		return "Research service sent an unreadable reply"
	default:
		return "Request failed, details in " + logger.Path()
	}
}
