package app

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/nexus/internal/clipboard"
	"github.com/zhubert/nexus/internal/config"
	"github.com/zhubert/nexus/internal/conversation"
	"github.com/zhubert/nexus/internal/logger"
	"github.com/zhubert/nexus/internal/notification"
	"github.com/zhubert/nexus/internal/ui"
)

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	version string
	header  *ui.Header
	footer  *ui.Footer
	chat    *ui.Chat

	store *conversation.Store
	ctrl  *conversation.Controller

	// ctx bounds outbound requests; it is cancelled only when the program exits
	ctx context.Context

	width         int
	height        int
	windowFocused bool

	copyText func(string) error
	notify   func(reply string, failed bool) error

	unsubscribe func()
}

// ReplyMsg carries the outcome of an outbound request back to the event loop
type ReplyMsg struct {
	Reply conversation.Reply
}

// Option configures a Model
type Option func(*Model)

// WithContext sets the context used for outbound requests
func WithContext(ctx context.Context) Option {
	return func(m *Model) { m.ctx = ctx }
}

// WithClipboard replaces the clipboard writer
func WithClipboard(fn func(string) error) Option {
	return func(m *Model) { m.copyText = fn }
}

// WithNotifier replaces the desktop notifier
func WithNotifier(fn func(reply string, failed bool) error) Option {
	return func(m *Model) { m.notify = fn }
}

// New creates a new app model over an existing controller
func New(cfg *config.Config, ctrl *conversation.Controller, version string, opts ...Option) *Model {
	m := &Model{
		config:        cfg,
		version:       version,
		header:        ui.NewHeader(),
		footer:        ui.NewFooter(),
		chat:          ui.NewChat(),
		store:         ctrl.Store(),
		ctrl:          ctrl,
		ctx:           context.Background(),
		windowFocused: true,
		copyText:      clipboard.WriteText,
		notify:        notification.ReplyReceived,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.header.SetEndpoint(cfg.URL())
	m.chat.SetMessages(m.store.Messages())
	m.chat.SetInputValue(m.store.Draft())
	m.unsubscribe = m.store.Subscribe(m.onStoreEvent)

	logger.WithSession(ctrl.SessionID()).Info("app started", "endpoint", cfg.URL(), "version", version)
	return m
}

// Close detaches the model from the store
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// Controller returns the conversation controller
func (m *Model) Controller() *conversation.Controller {
	return m.ctrl
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return nil
}
