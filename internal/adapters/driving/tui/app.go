package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lipidlogic/lipidlogic-cli/internal/adapters/driving/tui/messages"
	"github.com/lipidlogic/lipidlogic-cli/internal/adapters/driving/tui/styles"
	"github.com/lipidlogic/lipidlogic-cli/internal/adapters/driving/tui/views/sandbox"
	"github.com/lipidlogic/lipidlogic-cli/internal/adapters/driving/tui/views/tutorial"
	"github.com/lipidlogic/lipidlogic-cli/internal/adapters/driving/tui/views/welcome"
	"github.com/lipidlogic/lipidlogic-cli/internal/logger"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
//
// The screen machine has three reachable states: Welcome (initial), Sandbox,
// and Tutorial. Views persist for the life of the session, so switching away
// from the sandbox preserves its inputs, result slot, and loading flag.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// welcomeView is the landing screen.
	welcomeView *welcome.View

	// sandboxView is the interactive prediction screen.
	sandboxView *sandbox.View

	// tutorialView is the guided-tour placeholder screen.
	tutorialView *tutorial.View

	// currentView tracks which screen is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// status is a transient footer line describing the last selection.
	status string

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		welcomeView:  welcome.NewView(s),
		sandboxView:  sandbox.NewView(s, nil, ports.Session),
		tutorialView: tutorial.NewView(s),
		currentView:  messages.ViewWelcome, // Start with the landing screen
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.sandboxView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("lipidlogic - NLC Formulation Explorer"),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing
		a.welcomeView.SetDimensions(msg.Width, msg.Height)
		a.sandboxView.SetDimensions(msg.Width, msg.Height)
		a.tutorialView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewWelcome:
			a.welcomeView, cmd = a.welcomeView.Update(msg)
			return a, cmd
		case messages.ViewSandbox:
			a.sandboxView, cmd = a.sandboxView.Update(msg)
			return a, cmd
		case messages.ViewTutorial:
			a.tutorialView, cmd = a.tutorialView.Update(msg)
			return a, cmd
		}
		return a, nil

	case messages.ViewChanged:
		// Sandbox state survives navigation: no view is reset on entry.
		a.currentView = msg.View
		a.status = ""
		if msg.View == messages.ViewSandbox {
			return a, a.sandboxView.Init()
		}
		return a, nil

	case messages.PresetSelected:
		a.status = fmt.Sprintf("Preset applied: %s", msg.ID)
		logger.Debug("preset selected: %s", msg.ID)
		return a, nil

	case messages.TileSelected:
		a.status = fmt.Sprintf("Inspecting %s", msg.FormulationID)
		logger.Debug("formulation tile selected: %s", msg.FormulationID)
		return a, nil

	case messages.PredictionCompleted:
		// Always lands on the sandbox view, which owns the result display,
		// even if the user navigated away while the request was in flight.
		a.sandboxView, cmd = a.sandboxView.Update(msg)
		if msg.Err != nil && !msg.Stale {
			a.err = msg.Err
		}
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		if a.currentView == messages.ViewSandbox {
			a.sandboxView, cmd = a.sandboxView.Update(msg)
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages (blink ticks) to the active view
	switch a.currentView {
	case messages.ViewWelcome:
		a.welcomeView, cmd = a.welcomeView.Update(msg)
	case messages.ViewSandbox:
		a.sandboxView, cmd = a.sandboxView.Update(msg)
	case messages.ViewTutorial:
		a.tutorialView, cmd = a.tutorialView.Update(msg)
	}

	return a, cmd
}

// View implements tea.Model.
// It renders the current screen as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewWelcome:
		return a.welcomeView.View()
	case messages.ViewSandbox:
		out := a.sandboxView.View()
		if a.status != "" {
			out += "\n" + a.styles.Muted.Render(a.status)
		}
		return out
	case messages.ViewTutorial:
		return a.tutorialView.View()
	default:
		return a.welcomeView.View()
	}
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Status returns the transient footer line, empty when nothing is pending.
func (a *App) Status() string {
	return a.status
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.welcomeView.SetDimensions(width, height)
	a.sandboxView.SetDimensions(width, height)
	a.tutorialView.SetDimensions(width, height)
}
