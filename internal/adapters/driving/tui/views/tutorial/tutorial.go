// Package tutorial provides the guided-tour placeholder screen.
package tutorial

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lipidlogic/lipidlogic-cli/internal/adapters/driving/tui/messages"
	"github.com/lipidlogic/lipidlogic-cli/internal/adapters/driving/tui/styles"
)

// View is the tutorial screen. There is no interactive content yet; it
// tells the user so and offers a transition into the sandbox.
type View struct {
	styles *styles.Styles
	width  int
	height int
	ready  bool
}

// NewView creates a new tutorial view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{styles: s, width: 80, height: 24}
}

// Init initialises the tutorial view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the tutorial view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "s":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewSandbox}
			}
		case "esc":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewWelcome}
			}
		}
	}

	return v, nil
}

// View renders the tutorial screen.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Tutorial"))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Normal.Render(
		"The guided tutorial is not built yet."))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(
		"In the meantime, the sandbox lets you explore predictions freely."))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[enter] go to sandbox  [esc] back"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}
