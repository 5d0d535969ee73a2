package conversation

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	nerrors "github.com/zhubert/nexus/internal/errors"
)

// ErrorReply is the assistant message appended whenever a request fails,
// whatever the cause.
const ErrorReply = "Error: The agents couldn't reach the cloud brain."

// State is the interaction state of a Controller.
type State int

const (
	StateIdle    State = iota // Ready to accept a submission
	StateSending              // Exactly one request is outstanding
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSending:
		return "sending"
	default:
		return "unknown"
	}
}

// Request is the payload sent to the research endpoint.
type Request struct {
	Query       string    `json:"query"`
	ChatHistory []Message `json:"chat_history"`
}

// Reply is the outcome of one request. Exactly one of Result and Err is
// meaningful.
type Reply struct {
	Result string
	Err    error
}

// Client delivers a Request and returns the endpoint's result text.
type Client interface {
	Ask(ctx context.Context, req Request) (string, error)
}

// Controller drives the submit/send/resolve cycle for one session.
type Controller struct {
	store     *Store
	client    Client
	state     State
	sessionID string
	log       *slog.Logger
	sentAt    time.Time
}

// Option configures a Controller.
type Option func(*Controller)

// WithSessionID overrides the generated session identifier.
func WithSessionID(id string) Option {
	return func(c *Controller) { c.sessionID = id }
}

// WithLogger sets the logger used for request lifecycle events.
func WithLogger(log *slog.Logger) Option {
	return func(c *Controller) { c.log = log }
}

// NewController creates an idle controller over store.
func NewController(store *Store, client Client, opts ...Option) *Controller {
	c := &Controller{
		store:     store,
		client:    client,
		state:     StateIdle,
		sessionID: uuid.New().String(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = slog.New(slog.DiscardHandler)
	}
	c.log = c.log.With("sessionID", c.sessionID)
	return c
}

// Store returns the underlying store.
func (c *Controller) Store() *Store { return c.store }

// SessionID identifies this conversation in logs and request headers.
func (c *Controller) SessionID() string { return c.sessionID }

// State returns the current interaction state.
func (c *Controller) State() State { return c.state }

// IsSending reports whether a request is outstanding.
func (c *Controller) IsSending() bool { return c.state == StateSending }

// CanSubmit reports whether Submit would start a request right now.
func (c *Controller) CanSubmit() bool {
	return c.state == StateIdle && strings.TrimSpace(c.store.Draft()) != ""
}

// SentAt returns when the outstanding request was submitted. It is the zero
// time while idle.
func (c *Controller) SentAt() time.Time {
	if c.state != StateSending {
		return time.Time{}
	}
	return c.sentAt
}

// LastReplyFailed reports whether the newest assistant message stands in for
// a failed request.
func (c *Controller) LastReplyFailed() bool {
	msg, ok := c.store.Last(RoleAssistant)
	return ok && msg.Failed
}

// LastReply returns the newest assistant message content.
func (c *Controller) LastReply() (string, bool) {
	msg, ok := c.store.Last(RoleAssistant)
	return msg.Content, ok
}

// Submit starts an exchange from the current draft.
//
// The draft is trimmed; if it is empty or a request is already outstanding,
// nothing changes and ok is false. Otherwise the history snapshot is taken,
// the user turn is appended, the draft is cleared and the controller enters
// StateSending.
func (c *Controller) Submit() (req Request, ok bool) {
	if c.state == StateSending {
		c.log.Debug("submit ignored, request in flight")
		return Request{}, false
	}
	query := strings.TrimSpace(c.store.Draft())
	if query == "" {
		return Request{}, false
	}

	history := c.store.Messages()
	c.store.Append(RoleUser, query)
	c.store.ClearDraft()
	c.state = StateSending
	c.sentAt = time.Now()

	c.log.Info("query submitted", "queryLen", len(query), "historyLen", len(history))
	return Request{Query: query, ChatHistory: history}, true
}

// Send performs the network call for req. It reads no Controller state and
// may run on any goroutine.
func (c *Controller) Send(ctx context.Context, req Request) Reply {
	start := time.Now()
	result, err := c.client.Ask(ctx, req)
	elapsed := time.Since(start)
	if err != nil {
		c.log.Warn("research request failed",
			"kind", nerrors.GetKind(err).String(),
			"error", err,
			"elapsed", elapsed)
		return Reply{Err: err}
	}
	c.log.Debug("research request succeeded", "resultLen", len(result), "elapsed", elapsed)
	return Reply{Result: result}
}

// Resolve folds a Reply into the log and returns to StateIdle. The result is
// appended verbatim; any error becomes ErrorReply. A Reply that arrives while
// idle is dropped and false is returned.
func (c *Controller) Resolve(reply Reply) bool {
	if c.state != StateSending {
		c.log.Warn("reply dropped, no request in flight")
		return false
	}

	msg := Message{Role: RoleAssistant, Content: reply.Result}
	if reply.Err != nil {
		msg.Content = ErrorReply
		msg.Failed = true
	}
	c.store.AppendMessage(msg)
	c.state = StateIdle
	c.sentAt = time.Time{}
	return true
}

// Exchange runs Submit, Send and Resolve back to back. It reports whether a
// request was made.
func (c *Controller) Exchange(ctx context.Context) bool {
	req, ok := c.Submit()
	if !ok {
		return false
	}
	c.Resolve(c.Send(ctx, req))
	return true
}
