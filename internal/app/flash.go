package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/nexus/internal/logger"
	"github.com/zhubert/nexus/internal/ui"
)

// ShowFlash displays a flash message in the footer and returns a command to start the auto-dismiss timer
func (m *Model) ShowFlash(text string, flashType ui.FlashType) tea.Cmd {
	m.footer.SetFlash(text, flashType)
	return ui.FlashTick()
}

// ShowFlashError displays an error flash message
func (m *Model) ShowFlashError(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashError)
}

// ShowFlashInfo displays an info flash message
func (m *Model) ShowFlashInfo(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashInfo)
}

// ShowFlashSuccess displays a success flash message
func (m *Model) ShowFlashSuccess(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashSuccess)
}

// copyLastReply puts the newest assistant reply on the clipboard
func (m *Model) copyLastReply() tea.Cmd {
	reply, ok := m.ctrl.LastReply()
	if !ok {
		return m.ShowFlashInfo("Nothing to copy yet")
	}
	if err := m.copyText(reply); err != nil {
		logger.Error("copy to clipboard failed: %v", err)
		return m.ShowFlashError("Clipboard unavailable")
	}
	return m.ShowFlashSuccess("Copied reply to clipboard")
}
