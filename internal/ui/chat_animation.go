package ui

import (
	"fmt"
	"math/rand"
	"time"

	tea "charm.land/bubbletea/v2"
)

// StopwatchTickMsg advances the loading indicator while a request is in flight
type StopwatchTickMsg time.Time

// thinkingVerbs cycle in the loading indicator while the agents work
var thinkingVerbs = []string{
	"Researching",
	"Thinking",
	"Reasoning",
	"Delegating",
	"Collaborating",
	"Analyzing",
	"Synthesizing",
	"Drafting",
	"Reviewing",
	"Cross-checking",
	"Pondering",
	"Consulting",
}

// randomThinkingVerb returns a random verb from the list
func randomThinkingVerb() string {
	return thinkingVerbs[rand.Intn(len(thinkingVerbs))]
}

// spinnerFrames are the animation frames for the loading indicator
var spinnerFrames = []string{"·", "✺", "✹", "✸", "✷", "✶", "✵", "✴", "✳", "✲", "✱", "✧", "✦", "·"}

// SpinnerState tracks the loading indicator animation
type SpinnerState struct {
	Verb string
	Idx  int
}

// StopwatchTick returns a command that sends a tick message after a delay
func StopwatchTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return StopwatchTickMsg(t)
	})
}

// renderSpinner renders the spinner character followed by the verb text
func renderSpinner(verb string, frameIdx int) string {
	frame := spinnerFrames[frameIdx%len(spinnerFrames)]
	return SpinnerStyle.Render(frame) + " " + StatusLoadingStyle.Render(verb+"...")
}

// renderLoading renders the full loading line: ✺ Researching... 12s
func renderLoading(verb string, frameIdx int, elapsed time.Duration) string {
	return renderSpinner(verb, frameIdx) + " " + StopwatchStyle.Render(formatElapsed(elapsed))
}

// formatElapsed formats a duration for display (e.g., "12s", "1m30s")
func formatElapsed(d time.Duration) string {
	secs := int(d.Seconds())
	if secs < 60 {
		return fmt.Sprintf("%ds", secs)
	}
	return fmt.Sprintf("%dm%ds", secs/60, secs%60)
}

// SetWaiting shows or hides the loading indicator and enables or disables
// the input to match.
func (c *Chat) SetWaiting(waiting bool) {
	c.SetWaitingWithStart(waiting, time.Now())
}

// SetWaitingWithStart is SetWaiting with an explicit start time for the
// stopwatch.
func (c *Chat) SetWaitingWithStart(waiting bool, startTime time.Time) {
	c.waiting = waiting
	if waiting {
		c.spinner.Verb = randomThinkingVerb()
		c.spinner.Idx = 0
		c.waitStart = startTime
		c.input.Blur()
	} else {
		c.waitStart = time.Time{}
		c.input.Focus()
	}
	c.updateContent()
}

// IsWaiting returns whether the loading indicator is showing
func (c *Chat) IsWaiting() bool {
	return c.waiting
}

// handleStopwatchTick advances the spinner and re-arms the tick while waiting
func (c *Chat) handleStopwatchTick() tea.Cmd {
	if !c.waiting {
		return nil
	}
	c.spinner.Idx = (c.spinner.Idx + 1) % len(spinnerFrames)
	c.refreshContent()
	return StopwatchTick()
}
