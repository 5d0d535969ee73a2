package app

import (
	"context"
	"errors"
	"sync"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/nexus/internal/config"
	"github.com/zhubert/nexus/internal/conversation"
	"github.com/zhubert/nexus/internal/keys"
)

// fakeClient answers requests from a queue of canned results.
type fakeClient struct {
	mu       sync.Mutex
	requests []conversation.Request
	results  []string
	err      error
}

func (f *fakeClient) Ask(_ context.Context, req conversation.Request) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	if f.err != nil {
		return "", f.err
	}
	if len(f.results) == 0 {
		return "", errors.New("no canned result")
	}
	res := f.results[0]
	f.results = f.results[1:]
	return res, nil
}

// testConfig creates a minimal config for testing.
func testConfig() *config.Config {
	return &config.Config{
		Endpoint: "http://localhost:8000",
		Path:     "/research",
	}
}

// testModel creates a test Model backed by client.
func testModel(cfg *config.Config, client conversation.Client, opts ...Option) *Model {
	ctrl := conversation.NewController(conversation.NewStore(), client, conversation.WithSessionID("test-session"))
	return New(cfg, ctrl, "0.0.0-test", opts...)
}

// testModelWithSize creates a test Model and sets its size.
func testModelWithSize(cfg *config.Config, client conversation.Client, width, height int, opts ...Option) *Model {
	m := testModel(cfg, client, opts...)
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return m
}

// keyPress creates a tea.KeyPressMsg for the given key string.
// Examples: "a", "enter", "ctrl+c", "ctrl+y", "shift+enter"
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.ShiftEnter:
		return tea.KeyPressMsg{Code: tea.KeyEnter, Mod: tea.ModShift}
	case keys.CtrlC:
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case keys.CtrlY:
		return tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl}
	case keys.PgUp:
		return tea.KeyPressMsg{Code: tea.KeyPgUp}
	default:
		r := []rune(key)
		return tea.KeyPressMsg{Code: r[0], Text: key}
	}
}

// typeText sends each rune of s as a key press.
func typeText(m *Model, s string) {
	for _, r := range s {
		m.Update(keyPress(string(r)))
	}
}

// collectReplies executes cmd, descending into batches, and returns every
// ReplyMsg it produced.
func collectReplies(cmd tea.Cmd) []ReplyMsg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case ReplyMsg:
		return []ReplyMsg{msg}
	case tea.BatchMsg:
		var out []ReplyMsg
		for _, c := range msg {
			out = append(out, collectReplies(c)...)
		}
		return out
	}
	return nil
}

// plainView renders the model with styling stripped.
func plainView(m *Model) string {
	return ansi.Strip(m.RenderToString())
}

// runCmd executes cmd and every command in a batch it returns.
func runCmd(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	if batch, ok := cmd().(tea.BatchMsg); ok {
		for _, c := range batch {
			runCmd(c)
		}
	}
}
