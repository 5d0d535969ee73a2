// Package clipboard copies text to and from the system clipboard.
package clipboard

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"

	"github.com/zhubert/nexus/internal/logger"
)

var (
	initOnce sync.Once
	initErr  error
)

// backend is swapped out in tests; the system clipboard needs a display.
type backend interface {
	Write(text string) error
	Read() string
}

type systemBackend struct{}

func (systemBackend) Write(text string) error {
	initOnce.Do(func() {
		initErr = clipboard.Init()
	})
	if initErr != nil {
		return fmt.Errorf("failed to initialize clipboard: %w", initErr)
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

func (systemBackend) Read() string {
	initOnce.Do(func() {
		initErr = clipboard.Init()
	})
	if initErr != nil {
		return ""
	}
	return string(clipboard.Read(clipboard.FmtText))
}

var current backend = systemBackend{}

// WriteText places text on the clipboard.
func WriteText(text string) error {
	err := current.Write(text)
	log := logger.WithComponent("clipboard")
	if err != nil {
		log.Warn("copy failed", "error", err)
		return err
	}
	log.Debug("copied text", "bytes", len(text))
	return nil
}

// ReadText returns the clipboard's text content, or "" when unavailable.
func ReadText() string {
	return current.Read()
}
