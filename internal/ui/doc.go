// Package ui provides the user interface components for the Nexus TUI.
//
// # Overview
//
// The ui package implements the visual components using the Bubble Tea
// framework and Lipgloss styling library. It follows the Model-Update-View
// pattern established by Bubble Tea.
//
// # Layout System
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line)                                     │
//	├─────────────────────────────────────────────────────┤
//	│                                                     │
//	│   Thread (viewport, scrolls to the latest message)  │
//	│                                                     │
//	├─────────────────────────────────────────────────────┤
//	│ Input (textarea, disabled while a request is out)   │
//	├─────────────────────────────────────────────────────┤
//	│ Footer (1 line)                                     │
//	└─────────────────────────────────────────────────────┘
//
// # Components
//
// ViewContext: Singleton that manages centralized layout calculations.
//
// Header: Application title and subtitle over a gradient, plus the
// research endpoint when there is room for it.
//
// Footer: Context-aware key hints. "enter: send" only appears when the
// draft can be submitted. Flash messages temporarily replace the hints.
//
// Chat: The thread and the draft input. Assistant replies are rendered
// through the markdown package; user turns are shown verbatim. An empty
// thread shows the welcome screen, and a spinner with a stopwatch stands
// in for the pending reply while a request is in flight.
//
// # Message Flow
//
// The ui package holds no conversation state of its own. The app package
// subscribes to the conversation store and forwards appended messages to
// Chat.AppendMessage; every append re-renders and scrolls to the bottom.
package ui
