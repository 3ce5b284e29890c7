// Package sandbox provides the interactive prediction screen. It hosts the
// drug property inputs, the preset selector, the formulation tiles, and the
// results panel, all backed by the session service.
package sandbox

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lipidlogic/lipidlogic-cli/internal/adapters/driving/tui/components/gauge"
	"github.com/lipidlogic/lipidlogic-cli/internal/adapters/driving/tui/keymap"
	"github.com/lipidlogic/lipidlogic-cli/internal/adapters/driving/tui/messages"
	"github.com/lipidlogic/lipidlogic-cli/internal/adapters/driving/tui/styles"
	"github.com/lipidlogic/lipidlogic-cli/internal/core/domain"
	"github.com/lipidlogic/lipidlogic-cli/internal/core/ports/driving"
	"github.com/lipidlogic/lipidlogic-cli/internal/core/services"
)

// Focus zones in tab order.
const (
	focusPresets = iota
	focusLogP
	focusDeltaD
	focusDeltaP
	focusDeltaH
	focusTiles
	focusPredict
	focusZones
)

// View is the sandbox screen.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	session driving.SessionService
	gauge   *gauge.Gauge
	ctx     context.Context

	inputs    map[domain.Field]*textinput.Model
	focus     int
	presetIdx int
	tileIdx   int

	err    error
	width  int
	height int
	ready  bool
}

// NewView creates a new sandbox view.
func NewView(s *styles.Styles, km *keymap.KeyMap, session driving.SessionService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	inputs := make(map[domain.Field]*textinput.Model, len(domain.AllFields()))
	for _, f := range domain.AllFields() {
		ti := textinput.New()
		ti.Placeholder = "0.0"
		ti.CharLimit = 16
		ti.Width = 12
		inputs[f] = &ti
	}

	return &View{
		styles:  s,
		keymap:  km,
		session: session,
		gauge:   gauge.New(s),
		ctx:     context.Background(),
		inputs:  inputs,
		focus:   focusPresets,
		width:   80,
		height:  24,
	}
}

// WithContext sets the context for prediction calls.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the sandbox view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.PredictionCompleted:
		if msg.Stale {
			// A newer request owns the result slot.
			return v, nil
		}
		v.err = msg.Err
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	return v, v.updateFocusedInput(msg)
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()

	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewWelcome}
		}
	}

	switch {
	case keymap.Matches(key, v.keymap.NextField):
		v.setFocus((v.focus + 1) % focusZones)
		return v, nil
	case keymap.Matches(key, v.keymap.PrevField):
		v.setFocus((v.focus + focusZones - 1) % focusZones)
		return v, nil
	case keymap.Matches(key, v.keymap.Predict):
		return v, v.predict()
	}

	switch v.focus {
	case focusPresets:
		return v.handlePresetKeys(msg)
	case focusTiles:
		return v.handleTileKeys(msg)
	case focusPredict:
		if msg.Type == tea.KeyEnter {
			return v, v.predict()
		}
		return v, nil
	default:
		return v, v.handleFieldKey(msg)
	}
}

func (v *View) handlePresetKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	presets := domain.Presets()

	switch msg.String() {
	case "left", "h", "up", "k":
		if v.presetIdx > 0 {
			v.presetIdx--
		}
	case "right", "l", "down", "j":
		if v.presetIdx < len(presets)-1 {
			v.presetIdx++
		}
	case "enter":
		id := presets[v.presetIdx].ID
		v.session.SelectPreset(id)
		v.syncInputs()
		return v, func() tea.Msg {
			return messages.PresetSelected{ID: id}
		}
	}
	return v, nil
}

func (v *View) handleTileKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	ids := domain.FormulationIDs()

	switch msg.String() {
	case "left", "h", "up", "k":
		if v.tileIdx > 0 {
			v.tileIdx--
		}
	case "right", "l", "down", "j":
		if v.tileIdx < len(ids)-1 {
			v.tileIdx++
		}
	default:
		return v, nil
	}

	id := ids[v.tileIdx]
	return v, func() tea.Msg {
		return messages.TileSelected{FormulationID: id}
	}
}

// handleFieldKey forwards a key to the focused text input and mirrors the
// value into the session, detaching any preset on a real edit.
func (v *View) handleFieldKey(msg tea.KeyMsg) tea.Cmd {
	field := v.focusedField()
	if field == "" {
		return nil
	}

	ti := v.inputs[field]
	before := ti.Value()

	var cmd tea.Cmd
	*ti, cmd = ti.Update(msg)

	if ti.Value() != before {
		v.session.SetField(field, ti.Value())
	}
	return cmd
}

// updateFocusedInput forwards non-key messages (cursor blink) to the
// focused input.
func (v *View) updateFocusedInput(msg tea.Msg) tea.Cmd {
	field := v.focusedField()
	if field == "" {
		return nil
	}
	ti := v.inputs[field]
	var cmd tea.Cmd
	*ti, cmd = ti.Update(msg)
	return cmd
}

func (v *View) focusedField() domain.Field {
	switch v.focus {
	case focusLogP:
		return domain.FieldLogP
	case focusDeltaD:
		return domain.FieldDeltaD
	case focusDeltaP:
		return domain.FieldDeltaP
	case focusDeltaH:
		return domain.FieldDeltaH
	default:
		return ""
	}
}

func (v *View) setFocus(zone int) {
	v.focus = zone
	for _, f := range domain.AllFields() {
		v.inputs[f].Blur()
	}
	if f := v.focusedField(); f != "" {
		v.inputs[f].Focus()
	}
}

// syncInputs copies the session property values into the text inputs,
// used after a preset overwrite.
func (v *View) syncInputs() {
	props := v.session.Properties()
	for _, f := range domain.AllFields() {
		v.inputs[f].SetValue(props.FieldValue(f))
	}
}

// predict begins an attempt synchronously (so the loading flag is set before
// this function returns) and executes it as a command.
func (v *View) predict() tea.Cmd {
	if !v.session.CanPredict() {
		return nil
	}

	attempt, err := v.session.Begin()
	if err != nil {
		v.err = err
		return nil
	}

	return func() tea.Msg {
		stale, err := v.session.Execute(v.ctx, attempt)
		return messages.PredictionCompleted{Stale: stale, Err: err}
	}
}

// SelectedTile returns the formulation id of the active tile.
func (v *View) SelectedTile() string {
	return domain.FormulationIDs()[v.tileIdx]
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// View renders the sandbox screen.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	left := v.renderControls()
	right := v.renderResults()

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)

	sections := []string{
		v.styles.Title.Render("LipidLogic – Drug Distribution Explorer"),
		v.styles.Muted.Render("Where does your drug want to live?"),
		"",
		body,
		"",
		v.renderHelp(),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) renderControls() string {
	var b strings.Builder

	b.WriteString(v.renderPresets())
	b.WriteString("\n")
	b.WriteString(v.renderFields())
	b.WriteString("\n")
	b.WriteString(v.renderTiles())
	b.WriteString("\n")
	b.WriteString(v.renderPredictButton())

	if v.err != nil {
		b.WriteString("\n\n")
		b.WriteString(v.styles.Error.Render(v.errorText()))
	}

	return v.styles.Card.Render(b.String())
}

func (v *View) renderPresets() string {
	var b strings.Builder

	b.WriteString(v.styles.Subtitle.Render("Drug"))
	b.WriteString("\n")

	props := v.session.Properties()
	for i, p := range domain.Presets() {
		indicator := "  "
		if v.focus == focusPresets && i == v.presetIdx {
			indicator = "> "
		}

		line := indicator + p.Name
		switch {
		case props.PresetID == p.ID:
			line = v.styles.Success.Render(line + " ●")
		case v.focus == focusPresets && i == v.presetIdx:
			line = v.styles.Selected.Render(line)
		default:
			line = v.styles.Normal.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func (v *View) renderFields() string {
	var b strings.Builder

	b.WriteString(v.styles.Subtitle.Render("Properties"))
	b.WriteString("\n")

	for _, f := range domain.AllFields() {
		label := fmt.Sprintf("%-24s", f.Label())
		if v.focusedField() == f {
			b.WriteString(v.styles.Selected.Render(label))
		} else {
			b.WriteString(v.styles.Normal.Render(label))
		}
		b.WriteString(v.inputs[f].View())
		b.WriteString("\n")
	}

	return b.String()
}

func (v *View) renderTiles() string {
	var b strings.Builder

	b.WriteString(v.styles.Subtitle.Render("Formulation"))
	b.WriteString("\n")

	tiles := make([]string, 0, len(domain.FormulationIDs()))
	for i, id := range domain.FormulationIDs() {
		style := v.styles.Tile
		if i == v.tileIdx {
			style = v.styles.TileSelected
		}
		label := id
		if v.focus == focusTiles && i == v.tileIdx {
			label = "•" + id
		}
		tiles = append(tiles, style.Render(label))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tiles...))

	return b.String()
}

func (v *View) renderPredictButton() string {
	switch {
	case v.session.Loading():
		return v.styles.Warning.Render("[ Calculating... ]")
	case !v.session.CanPredict():
		return v.styles.Muted.Render("[ Predict ] (enter all four properties)")
	case v.focus == focusPredict:
		return v.styles.Selected.Render("[ Predict ]")
	default:
		return v.styles.Normal.Render("[ Predict ]")
	}
}

func (v *View) renderResults() string {
	result := v.session.Result()
	if result == nil {
		return v.styles.Muted.Render("No prediction yet.")
	}

	var b strings.Builder

	rec := result.Recommendation
	b.WriteString(v.styles.Subtitle.Render("Predicted Localisation"))
	b.WriteString("\n")
	b.WriteString(v.gauge.Render(services.GaugePosition(rec.ConfidenceScore)))
	b.WriteString("\n")
	b.WriteString(v.styles.Normal.Render(services.LocalizationLabel(rec.ConfidenceScore)))
	b.WriteString("\n\n")

	b.WriteString(v.styles.Subtitle.Render("Recommendation"))
	b.WriteString("\n")
	b.WriteString(v.styles.Normal.Render(rec.FormulationName) + "  " + gauge.Stars(v.styles, rec.Stars))
	b.WriteString("\n")
	if rec.Guidance != "" {
		b.WriteString(v.styles.Muted.Render(rec.Guidance))
		b.WriteString("\n")
	}
	if rec.Strategy != "" {
		b.WriteString(v.styles.Muted.Render(rec.Strategy))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(v.styles.Subtitle.Render("Ranking"))
	b.WriteString("\n")
	for _, e := range services.RankingView(rec.Ranking) {
		line := fmt.Sprintf("#%d %s  %s  (%.2f)",
			e.Rank, e.FormulationName, gauge.Stars(v.styles, e.Stars), e.WeightedScore)
		b.WriteString(v.styles.Normal.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(v.renderAnalysis(result))

	return v.styles.Card.Render(b.String())
}

// renderAnalysis shows the per-hypothesis breakdown for the selected tile.
// A missing key renders nothing; absent data is not an error.
func (v *View) renderAnalysis(result *domain.PredictionResponse) string {
	analysis, ok := result.Analysis(v.SelectedTile())
	if !ok {
		return ""
	}

	var b strings.Builder

	b.WriteString(v.styles.Subtitle.Render(analysis.FormulationName))
	b.WriteString("\n")

	b.WriteString(v.styles.Normal.Render(fmt.Sprintf(
		"H1 Lipophilic gradient   Δlog P %s  %s",
		services.FormatGradient(analysis.H1.Gradient), gauge.Stars(v.styles, analysis.H1.Score))))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("   " + analysis.H1.Interpretation))
	b.WriteString("\n")

	b.WriteString(v.styles.Normal.Render(fmt.Sprintf(
		"H2 HSP core match        Δδ %.2f MPa½  %s",
		analysis.H2.DeltaCore, gauge.Stars(v.styles, analysis.H2.Score))))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("   " + analysis.H2.Interpretation))
	b.WriteString("\n")

	h3 := services.HypothesisSummary(analysis.H3)
	b.WriteString(v.styles.Normal.Render(fmt.Sprintf(
		"H3 Competitive partition Δδ core %.2f / surf %.2f  %s",
		h3.DeltaCore, h3.DeltaSurf, gauge.Stars(v.styles, analysis.H3.Score))))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf(
		"   Prefers %s: %.0f%% core, %.0f%% interface",
		h3.Location, h3.CorePercent, h3.InterfacePercent)))
	b.WriteString("\n")

	if exp := analysis.Experimental; exp != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Subtitle.Render("Experimental validation"))
		b.WriteString("\n")
		b.WriteString(v.styles.Normal.Render(fmt.Sprintf(
			"Pyrene I1/I3 %.3f   Nile Red λmax %.1f nm", exp.PyreneI1I3, exp.NileRedMax)))
		b.WriteString("\n")
		b.WriteString(v.styles.Normal.Render(fmt.Sprintf(
			"Particle size %.1f nm   PDI %.2f", exp.ParticleSize, exp.PDI)))
		b.WriteString("\n")
	}

	return b.String()
}

// errorText maps classified failures to user-facing messages. The previous
// results stay visible underneath.
func (v *View) errorText() string {
	switch {
	case errors.Is(v.err, domain.ErrServiceUnreachable):
		return "Could not reach the prediction service."
	case errors.Is(v.err, domain.ErrServiceStatus):
		return "The prediction service reported an error."
	case errors.Is(v.err, domain.ErrMalformedResponse):
		return "The prediction service returned an unreadable response."
	case errors.Is(v.err, domain.ErrInvalidNumber):
		return "Check the property values: " + v.err.Error()
	default:
		return v.err.Error()
	}
}

func (v *View) renderHelp() string {
	return v.styles.Help.Render(
		"[tab] next control  [←/→] choose  [enter] select/predict  [esc] back")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.gauge.SetWidth(width/2 - 16)
}
