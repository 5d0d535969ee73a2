package clipboard

import (
	"errors"
	"testing"
)

type memBackend struct {
	text string
	err  error
}

func (m *memBackend) Write(text string) error {
	if m.err != nil {
		return m.err
	}
	m.text = text
	return nil
}

func (m *memBackend) Read() string { return m.text }

func useBackend(t *testing.T, b backend) {
	t.Helper()
	prev := current
	current = b
	t.Cleanup(func() { current = prev })
}

func TestWriteText_RoundTrip(t *testing.T) {
	useBackend(t, &memBackend{})

	if err := WriteText("**reply**"); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}
	if got := ReadText(); got != "**reply**" {
		t.Errorf("ReadText() = %q, want %q", got, "**reply**")
	}
}

func TestWriteText_Error(t *testing.T) {
	useBackend(t, &memBackend{err: errors.New("no display")})

	if err := WriteText("x"); err == nil {
		t.Error("WriteText() should surface backend errors")
	}
}
