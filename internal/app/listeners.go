package app

import "github.com/zhubert/nexus/internal/conversation"

// onStoreEvent mirrors store mutations into the chat panel. The store
// notifies synchronously, and Submit/Resolve only run inside Update, so this
// always executes on the event loop.
func (m *Model) onStoreEvent(ev conversation.Event) {
	switch ev.Kind {
	case conversation.EventAppended:
		m.chat.AppendMessage(ev.Message)
	case conversation.EventDraftChanged:
		m.chat.SetInputValue(ev.Draft)
	}
}

// syncDraft copies the input's text into the store
func (m *Model) syncDraft() {
	m.store.SetDraft(m.chat.InputValue())
}
