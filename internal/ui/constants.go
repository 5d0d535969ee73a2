// Package ui provides constants for layout calculations and configuration.
package ui

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// TextareaHeight is the number of lines for the chat input textarea
	TextareaHeight = 3

	// TextareaBorderHeight is the border size around the textarea
	TextareaBorderHeight = 2

	// InputPaddingWidth is the horizontal padding inside the input area (Padding(0, 1) = 1 left + 1 right)
	InputPaddingWidth = 2

	// InputTotalHeight is the total height of the input area (textarea + borders)
	InputTotalHeight = TextareaHeight + TextareaBorderHeight

	// MinTerminalWidth and MinTerminalHeight clamp layout math on tiny terminals
	MinTerminalWidth  = 40
	MinTerminalHeight = 12

	// DefaultWrapWidth is the default width for text wrapping when viewport width is unknown
	DefaultWrapWidth = 80

	// MessageIndent is the left margin applied to message bodies under their role label
	MessageIndent = 2
)

// Input
const (
	// InputPlaceholder is shown in the empty textarea
	InputPlaceholder = "Ask anything..."

	// InputCharLimit of 0 means unlimited
	InputCharLimit = 0
)

// Labels
const (
	AppTitle       = "NEXUS-AI"
	AppSubtitle    = "Multi-Agent Intelligence Hub"
	UserLabel      = "You"
	AssistantLabel = "Agents"
	WelcomeText    = "Start a conversation with the agents."
)

// FeatureLabels are shown on the welcome screen.
var FeatureLabels = []struct {
	Icon  string
	Label string
}{
	{"◆", "Local Privacy"},
	{"⚡", "Fast Inference"},
	{"◎", "Multi-Agent"},
}
