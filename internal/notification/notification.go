// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"unicode/utf8"

	"github.com/gen2brain/beeep"

	"github.com/zhubert/nexus/internal/logger"
)

// AppName is the title of every notification.
const AppName = "Nexus"

// maxPreview bounds the reply excerpt shown in a notification body.
const maxPreview = 80

type notifyFunc func(title, message string, icon any) error

var notify notifyFunc = beeep.Notify

// SetNotifier replaces the backend. Tests use it to avoid real notifications.
func SetNotifier(fn func(title, message string, icon any) error) {
	notify = fn
}

// ResetNotifier restores the beeep backend.
func ResetNotifier() {
	notify = beeep.Notify
}

// Send sends a desktop notification with the given title and message.
func Send(title, message string) error {
	log := logger.WithComponent("notification")
	log.Debug("sending notification", "title", title)
	err := notify(title, message, "")
	if err != nil {
		log.Warn("failed to send notification", "error", err)
	}
	return err
}

// ReplyReceived announces that the agents answered. failed selects the
// wording for an error reply.
func ReplyReceived(reply string, failed bool) error {
	if failed {
		return Send(AppName, "The agents could not be reached")
	}
	return Send(AppName, Preview(reply))
}

// Preview returns the first line of reply, shortened to a notification-sized
// excerpt.
func Preview(reply string) string {
	line := reply
	for i, r := range reply {
		if r == '\n' {
			line = reply[:i]
			break
		}
	}
	if line == "" {
		return "Reply received"
	}
	if utf8.RuneCountInString(line) <= maxPreview {
		return line
	}
	runes := []rune(line)
	return string(runes[:maxPreview-1]) + "…"
}
