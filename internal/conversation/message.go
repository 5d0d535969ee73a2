package conversation

// Role identifies who authored a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAssistant
}

// Message is one turn of the conversation. Messages are values and are never
// modified after they are appended to a Store.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"` // Markdown for assistant turns, plain text for user turns

	// Failed marks an assistant turn that stands in for a request that did
	// not produce a result. It never goes over the wire.
	Failed bool `json:"-"`
}
