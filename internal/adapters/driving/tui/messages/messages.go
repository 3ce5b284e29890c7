// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

// ViewType identifies which screen is currently active.
type ViewType int

const (
	// ViewWelcome is the landing screen.
	ViewWelcome ViewType = iota
	// ViewSandbox is the interactive prediction screen.
	ViewSandbox
	// ViewTutorial is the guided-tour placeholder screen.
	ViewTutorial
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewWelcome:
		return "welcome"
	case ViewSandbox:
		return "sandbox"
	case ViewTutorial:
		return "tutorial"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between screens.
type ViewChanged struct {
	View ViewType
}

// PredictionCompleted signals that an outbound prediction attempt resolved.
// Stale marks responses that were superseded by a newer request and were
// discarded without touching the result slot.
type PredictionCompleted struct {
	Stale bool
	Err   error
}

// PresetSelected is sent when a catalog drug is chosen.
type PresetSelected struct {
	ID string
}

// TileSelected is sent when the formulation tile selection changes.
type TileSelected struct {
	FormulationID string
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
