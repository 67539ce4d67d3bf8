package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lmoreno/pitagoras/internal/apperr"
	"github.com/lmoreno/pitagoras/internal/config"
	"github.com/lmoreno/pitagoras/internal/diagram"
	"github.com/lmoreno/pitagoras/internal/history"
	"github.com/lmoreno/pitagoras/internal/logging"
	"github.com/lmoreno/pitagoras/internal/reference"
	"github.com/lmoreno/pitagoras/internal/settings"
	"github.com/lmoreno/pitagoras/internal/solver"
	"github.com/lmoreno/pitagoras/pkg/version"
)

// View represents the tabs of the trainer
type View int

const (
	ViewPythagoras View = iota
	ViewTrig
	ViewReference
	ViewHistory
)

const viewCount = 4

// tabName maps a view to its tab label and settings key
func (v View) tabName() string {
	switch v {
	case ViewPythagoras:
		return "Pythagoras"
	case ViewTrig:
		return "Trigonometry"
	case ViewReference:
		return "Reference"
	case ViewHistory:
		return "History"
	default:
		return "?"
	}
}

// historyLimit caps the in-session history ring
const historyLimit = 50

// Model is the main TUI model
type Model struct {
	// State
	view   View
	width  int
	height int
	ready  bool

	theme Theme

	cfg   config.Config
	log   *logging.Logger
	prefs *settings.Settings

	// Pythagoras form: a, b, c
	sideInputs [3]textinput.Model
	sideFocus  int

	// Trig form
	angleInput textinput.Model
	valueInput textinput.Model
	knownSide  solver.Side
	trigFocus  int // 0 = angle, 1 = value

	// Results
	triResult  *solver.TriangleResult
	triLegs    [2]float64 // legs backing the diagram for the last side solve
	trigResult *solver.TrigResult

	// Reference tab
	refViewport viewport.Model
	refText     string

	ring *history.Ring

	errMsg        string
	statusMessage string
}

// Message types
type statusClearMsg struct{}

// NewModel creates the trainer model from config and saved preferences
func NewModel(cfg config.Config, log *logging.Logger) Model {
	prefs := settings.Load()

	var sideInputs [3]textinput.Model
	for i, symbol := range []string{"a", "b", "c"} {
		ti := textinput.New()
		ti.Placeholder = symbol
		ti.CharLimit = 16
		ti.Width = 12
		ti.Prompt = symbol + " = "
		sideInputs[i] = ti
	}
	sideInputs[0].Focus()

	angleInput := textinput.New()
	angleInput.Placeholder = "degrees"
	angleInput.CharLimit = 16
	angleInput.Width = 12
	angleInput.Prompt = "θ = "

	valueInput := textinput.New()
	valueInput.Placeholder = "length"
	valueInput.CharLimit = 16
	valueInput.Width = 12
	valueInput.Prompt = "value = "

	theme := DarkTheme()
	if !prefs.DarkMode {
		theme = LightTheme()
	}
	// The config theme is only the starting point; a saved toggle wins.
	if cfg.General.Theme == "light" && prefs.LastTab == "" {
		theme = LightTheme()
		prefs.DarkMode = false
	}

	refText := ""
	if panel, err := reference.Load(); err == nil {
		refText = panel.Render(72)
	} else {
		log.Errorf("loading reference content: %v", err)
		refText = "reference content unavailable"
	}

	m := Model{
		view:       ViewPythagoras,
		theme:      theme,
		cfg:        cfg,
		log:        log,
		prefs:      prefs,
		sideInputs: sideInputs,
		angleInput: angleInput,
		valueInput: valueInput,
		knownSide:  solver.SideHypotenuse,
		refText:    refText,
		ring:       history.NewRing(historyLimit),
	}

	for i := View(0); i < viewCount; i++ {
		if i.tabName() == prefs.LastTab {
			m.view = i
		}
	}
	m.syncFocus()
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.savePrefs()
			return m, tea.Quit

		case "tab", "shift+tab":
			if msg.String() == "tab" {
				m.view = (m.view + 1) % viewCount
			} else {
				m.view = (m.view + viewCount - 1) % viewCount
			}
			m.errMsg = ""
			m.syncFocus()
			return m, nil

		case "ctrl+t":
			if m.theme.Name == "dark" {
				m.theme = LightTheme()
				m.prefs.DarkMode = false
			} else {
				m.theme = DarkTheme()
				m.prefs.DarkMode = true
			}
			return m, nil

		case "ctrl+y":
			return m.copyDerivation()

		case "ctrl+l":
			m.clearCurrentView()
			return m, nil

		case "enter":
			switch m.view {
			case ViewPythagoras:
				cmd := m.solvePythagoras()
				return m, cmd
			case ViewTrig:
				cmd := m.solveTrig()
				return m, cmd
			}
			return m, nil

		case "up", "down":
			m.moveFocus(msg.String() == "down")
			return m, textinput.Blink

		case "left", "right":
			if m.view == ViewTrig {
				if msg.String() == "right" {
					m.knownSide = (m.knownSide + 1) % 3
				} else {
					m.knownSide = (m.knownSide + 2) % 3
				}
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.refViewport = viewport.New(msg.Width-4, msg.Height-8)
			m.refViewport.SetContent(m.refText)
			m.ready = true
		} else {
			m.refViewport.Width = msg.Width - 4
			m.refViewport.Height = msg.Height - 8
		}

	case statusClearMsg:
		m.statusMessage = ""
		return m, nil
	}

	// Update the focused components
	switch m.view {
	case ViewPythagoras:
		for i := range m.sideInputs {
			m.sideInputs[i], cmd = m.sideInputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
	case ViewTrig:
		m.angleInput, cmd = m.angleInput.Update(msg)
		cmds = append(cmds, cmd)
		m.valueInput, cmd = m.valueInput.Update(msg)
		cmds = append(cmds, cmd)
	case ViewReference:
		m.refViewport, cmd = m.refViewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// moveFocus cycles the focused input of the active form
func (m *Model) moveFocus(forward bool) {
	switch m.view {
	case ViewPythagoras:
		if forward {
			m.sideFocus = (m.sideFocus + 1) % 3
		} else {
			m.sideFocus = (m.sideFocus + 2) % 3
		}
	case ViewTrig:
		m.trigFocus = 1 - m.trigFocus
	}
	m.syncFocus()
}

// syncFocus applies focus/blur to match the focus indices
func (m *Model) syncFocus() {
	for i := range m.sideInputs {
		if m.view == ViewPythagoras && i == m.sideFocus {
			m.sideInputs[i].Focus()
		} else {
			m.sideInputs[i].Blur()
		}
	}

	if m.view == ViewTrig && m.trigFocus == 0 {
		m.angleInput.Focus()
	} else {
		m.angleInput.Blur()
	}
	if m.view == ViewTrig && m.trigFocus == 1 {
		m.valueInput.Focus()
	} else {
		m.valueInput.Blur()
	}
}

// solvePythagoras runs the side solver on the current form values. Pending
// input leaves the previous answer untouched.
func (m *Model) solvePythagoras() tea.Cmd {
	a := parseField(m.sideInputs[0].Value())
	b := parseField(m.sideInputs[1].Value())
	c := parseField(m.sideInputs[2].Value())

	res, err := solver.SolveSides(a, b, c)
	if err != nil {
		m.errMsg = apperr.UserMessage(err)
		m.log.Warnf("side solve rejected: %v", err)
		return nil
	}
	if res == nil {
		m.setStatus("enter exactly two of a, b, c")
		return m.clearStatusLater()
	}

	m.errMsg = ""
	m.triResult = res
	switch res.Solved {
	case solver.SideHypotenuse:
		m.triLegs = [2]float64{*a, *b}
	case solver.SideAdjacent:
		m.triLegs = [2]float64{*a, res.Value}
	case solver.SideOpposite:
		m.triLegs = [2]float64{res.Value, *b}
	}

	summary := fmt.Sprintf("%s = %.4f", res.Solved.Symbol(), res.Value)
	m.ring.Add(history.KindPythagoras, summary, res.Steps)
	m.prefs.RememberInput(formInputsSummary(a, b, c))
	m.log.Infof("solved %s", summary)
	return nil
}

// solveTrig runs the ratio solver on the current form values
func (m *Model) solveTrig() tea.Cmd {
	angle := parseField(m.angleInput.Value())
	value := parseField(m.valueInput.Value())
	if angle == nil || value == nil {
		m.setStatus("enter the angle and the known side")
		return m.clearStatusLater()
	}

	res, err := solver.SolveTrig(*angle, m.knownSide, *value)
	if err != nil {
		m.errMsg = apperr.UserMessage(err)
		m.log.Warnf("trig solve rejected: %v", err)
		return nil
	}
	if res == nil {
		m.setStatus("enter the angle and the known side")
		return m.clearStatusLater()
	}

	m.errMsg = ""
	m.trigResult = res

	summary := fmt.Sprintf("θ=%g° %s=%g → a=%.4f b=%.4f c=%.4f",
		res.Angle, m.knownSide.Symbol(), *value, res.A, res.B, res.C)
	m.ring.Add(history.KindTrig, summary, res.Steps)
	m.prefs.RememberInput(summary)
	m.log.Infof("solved %s", summary)
	return nil
}

// copyDerivation puts the current derivation on the system clipboard
func (m Model) copyDerivation() (tea.Model, tea.Cmd) {
	var steps []solver.Step
	switch m.view {
	case ViewPythagoras:
		if m.triResult != nil {
			steps = m.triResult.Steps
		}
	case ViewTrig:
		if m.trigResult != nil {
			steps = m.trigResult.Steps
		}
	}
	if len(steps) == 0 {
		m.setStatus("nothing to copy yet")
		return m, m.clearStatusLater()
	}

	if err := clipboard.WriteAll(solver.FormatSteps(steps)); err != nil {
		m.errMsg = "clipboard unavailable"
		m.log.Warnf("clipboard write: %v", err)
		return m, nil
	}
	m.setStatus("derivation copied")
	return m, m.clearStatusLater()
}

// clearCurrentView resets the active tab
func (m *Model) clearCurrentView() {
	switch m.view {
	case ViewPythagoras:
		for i := range m.sideInputs {
			m.sideInputs[i].Reset()
		}
		m.triResult = nil
		m.errMsg = ""
	case ViewTrig:
		m.angleInput.Reset()
		m.valueInput.Reset()
		m.trigResult = nil
		m.errMsg = ""
	case ViewHistory:
		m.ring.Clear()
	}
}

func (m *Model) setStatus(s string) {
	m.statusMessage = s
}

func (m Model) clearStatusLater() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return statusClearMsg{}
	})
}

// savePrefs persists the UI preferences on exit; failures only get logged
func (m *Model) savePrefs() {
	m.prefs.LastTab = m.view.tabName()
	if err := settings.Save(m.prefs); err != nil {
		m.log.Warnf("saving settings: %v", err)
	}
}

// formInputsSummary compacts the Pythagoras form into a history string
func formInputsSummary(a, b, c *float64) string {
	var parts []string
	if a != nil {
		parts = append(parts, fmt.Sprintf("a=%g", *a))
	}
	if b != nil {
		parts = append(parts, fmt.Sprintf("b=%g", *b))
	}
	if c != nil {
		parts = append(parts, fmt.Sprintf("c=%g", *c))
	}
	return strings.Join(parts, " ")
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	var s strings.Builder
	s.WriteString(m.renderHeader())
	s.WriteString("\n")

	switch m.view {
	case ViewPythagoras:
		s.WriteString(m.renderPythagorasView())
	case ViewTrig:
		s.WriteString(m.renderTrigView())
	case ViewReference:
		s.WriteString(m.renderReferenceView())
	case ViewHistory:
		s.WriteString(m.renderHistoryView())
	}

	s.WriteString("\n")
	s.WriteString(m.renderFooter())
	return s.String()
}

func (m Model) renderHeader() string {
	var tabs []string
	for i := View(0); i < viewCount; i++ {
		if i == m.view {
			tabs = append(tabs, m.theme.ActiveTab.Render(i.tabName()))
		} else {
			tabs = append(tabs, m.theme.Tab.Render(i.tabName()))
		}
	}

	title := m.theme.Title.Render(version.Banner())
	tabLine := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	return lipgloss.JoinVertical(lipgloss.Left, title, tabLine)
}

func (m Model) renderPythagorasView() string {
	var s strings.Builder

	s.WriteString(m.theme.Label.Render("Enter two sides, leave the third blank:"))
	s.WriteString("\n\n")
	for i := range m.sideInputs {
		s.WriteString(m.sideInputs[i].View())
		s.WriteString("\n")
	}

	if m.errMsg != "" {
		s.WriteString("\n")
		s.WriteString(m.theme.ErrorBanner.Render(m.errMsg))
		s.WriteString("\n")
	}

	if m.triResult != nil {
		s.WriteString("\n")
		s.WriteString(m.theme.Value.Render(fmt.Sprintf("%s = %.4f",
			m.triResult.Solved.Symbol(), m.triResult.Value)))
		s.WriteString("\n\n")
		s.WriteString(m.renderSteps(m.triResult.Steps))

		if d := diagram.Render(m.triLegs[0], m.triLegs[1], m.diagramOptions()); d != "" {
			s.WriteString("\n")
			s.WriteString(m.theme.Diagram.Render(d))
			s.WriteString("\n")
		}
	}

	return m.theme.Panel.Render(s.String())
}

func (m Model) renderTrigView() string {
	var s strings.Builder

	s.WriteString(m.theme.Label.Render("Known side (←/→ to change): "))
	s.WriteString(m.theme.Value.Render(m.knownSide.String()))
	s.WriteString("\n\n")
	s.WriteString(m.angleInput.View())
	s.WriteString("\n")
	s.WriteString(m.valueInput.View())
	s.WriteString("\n")

	if m.errMsg != "" {
		s.WriteString("\n")
		s.WriteString(m.theme.ErrorBanner.Render(m.errMsg))
		s.WriteString("\n")
	}

	if r := m.trigResult; r != nil {
		s.WriteString("\n")
		s.WriteString(m.theme.Value.Render(fmt.Sprintf(
			"a = %.4f   b = %.4f   c = %.4f", r.A, r.B, r.C)))
		s.WriteString("\n")
		s.WriteString(m.theme.Formula.Render(fmt.Sprintf(
			"sin θ = %.4f   cos θ = %.4f   tan θ = %.4f", r.Sin, r.Cos, r.Tan)))
		s.WriteString("\n\n")
		s.WriteString(m.renderSteps(r.Steps))

		if d := diagram.Render(r.A, r.B, m.diagramOptions()); d != "" {
			s.WriteString("\n")
			s.WriteString(m.theme.Diagram.Render(d))
			s.WriteString("\n")
		}
	}

	return m.theme.Panel.Render(s.String())
}

func (m Model) renderReferenceView() string {
	return m.theme.Panel.Render(m.refViewport.View())
}

func (m Model) renderHistoryView() string {
	var s strings.Builder

	entries := m.ring.Entries()
	if len(entries) == 0 {
		s.WriteString(m.theme.Label.Render("No calculations this session."))
	} else {
		for _, e := range entries {
			s.WriteString(m.theme.Label.Render(fmt.Sprintf("%s  %-10s  ",
				e.At.Format("15:04:05"), e.Kind)))
			s.WriteString(m.theme.Value.Render(e.Summary))
			s.WriteString("\n")
		}
	}

	return m.theme.Panel.Render(s.String())
}

func (m Model) renderSteps(steps []solver.Step) string {
	var s strings.Builder
	for i, step := range steps {
		s.WriteString(m.theme.Label.Render(fmt.Sprintf("%d. %s", i+1, step.Description)))
		if step.Expression != "" {
			s.WriteString("   ")
			s.WriteString(m.theme.Formula.Render(step.Expression))
		}
		s.WriteString("\n")
	}
	return s.String()
}

func (m Model) renderFooter() string {
	help := "tab: switch • enter: solve • ctrl+t: theme • ctrl+y: copy • ctrl+l: clear • ctrl+c: quit"
	line := help
	if m.statusMessage != "" {
		line = m.statusMessage + "  •  " + help
	}
	return m.theme.StatusBar.Width(max(m.width, len(line))).Render(m.theme.Help.Render(line))
}

func (m Model) diagramOptions() diagram.Options {
	return diagram.Options{
		MaxWidth:  m.cfg.Diagram.MaxWidth,
		MaxHeight: m.cfg.Diagram.MaxHeight,
		ASCII:     m.cfg.Diagram.ASCII,
	}
}
