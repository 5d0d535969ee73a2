package conversation

import "sync"

// EventKind identifies which part of the Store changed.
type EventKind int

const (
	EventAppended     EventKind = iota // A message was appended to the log
	EventDraftChanged                  // The draft was replaced
)

func (k EventKind) String() string {
	switch k {
	case EventAppended:
		return "Appended"
	case EventDraftChanged:
		return "DraftChanged"
	default:
		return "Unknown"
	}
}

// Event describes a committed Store mutation.
type Event struct {
	Kind    EventKind
	Message Message // Set for EventAppended
	Index   int     // Position of Message in the log, for EventAppended
	Draft   string  // New draft, for EventDraftChanged
}

type listener struct {
	id int
	fn func(Event)
}

// Store holds the conversation log and the current draft.
//
// The log is append-only. Readers always get copies. Listeners run
// synchronously after the mutation is committed and without the lock held,
// so they may read the Store freely.
type Store struct {
	mu        sync.RWMutex
	messages  []Message
	draft     string
	listeners []listener
	nextID    int
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{messages: []Message{}}
}

// Append inserts a message at the tail of the log. It never fails and places
// no constraint on content.
func (s *Store) Append(role Role, content string) Message {
	return s.AppendMessage(Message{Role: role, Content: content})
}

// AppendMessage inserts msg at the tail and notifies subscribers.
func (s *Store) AppendMessage(msg Message) Message {
	s.mu.Lock()
	s.messages = append(s.messages, msg)
	idx := len(s.messages) - 1
	s.mu.Unlock()

	s.notify(Event{Kind: EventAppended, Message: msg, Index: idx})
	return msg
}

// SetDraft replaces the draft verbatim. Whitespace is preserved; validation
// happens at submission time.
func (s *Store) SetDraft(text string) {
	s.mu.Lock()
	changed := s.draft != text
	s.draft = text
	s.mu.Unlock()

	if changed {
		s.notify(Event{Kind: EventDraftChanged, Draft: text})
	}
}

// ClearDraft is SetDraft("").
func (s *Store) ClearDraft() {
	s.SetDraft("")
}

// Draft returns the current draft.
func (s *Store) Draft() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.draft
}

// Messages returns a copy of the log in chronological order. The result is
// never nil.
func (s *Store) Messages() []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Len returns the number of messages in the log.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.messages)
}

// Last returns the newest message with the given role.
func (s *Store) Last(role Role) (Message, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := len(s.messages) - 1; i >= 0; i-- {
		if s.messages[i].Role == role {
			return s.messages[i], true
		}
	}
	return Message{}, false
}

// Subscribe registers fn for every future mutation. The returned function
// removes the subscription.
func (s *Store) Subscribe(fn func(Event)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, listener{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) notify(ev Event) {
	s.mu.RLock()
	listeners := make([]listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.RUnlock()

	for _, l := range listeners {
		l.fn(ev)
	}
}
