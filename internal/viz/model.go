package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/wavesim/internal/metrics"
	"github.com/san-kum/wavesim/internal/sim"
	"github.com/san-kum/wavesim/internal/wave"
)

const (
	defaultWidth    = 80
	defaultHeight   = 20
	panelWidth      = 44
	historyCapacity = 300
	defaultWind     = 10.0 // m/s, used when wind is toggled on with no speed set
)

type TickMsg time.Time

type Options struct {
	Title string
	FPS   int
	Speed float64 // simulated seconds per wall-clock second
	Theme string
}

var tunable = []string{"amplitude", "wavelength", "depth"}

type effectMode struct {
	name  string
	apply func(e *wave.Effects)
}

var effectModes = []effectMode{
	{"none", func(e *wave.Effects) {}},
	{"nonlinear", func(e *wave.Effects) { e.Nonlinear = true }},
	{"dispersion", func(e *wave.Effects) { e.Dispersion = true }},
	{"friction", func(e *wave.Effects) { e.BottomFriction = true }},
	{"coriolis", func(e *wave.Effects) { e.Coriolis = true }},
	{"wind", func(e *wave.Effects) { e.Wind = true }},
	{"all", func(e *wave.Effects) {
		e.Nonlinear, e.Dispersion, e.BottomFriction, e.Coriolis, e.Wind = true, true, true, true, true
	}},
}

// Model drives a sim.Loop from the Bubble Tea frame clock. The loop is
// shared; copies of Model made by Update all point at the same one.
type Model struct {
	loop     *sim.Loop
	title    string
	fps      int
	speed    float64
	theme    Theme
	styles   styles
	canvas   *Canvas
	sample   wave.Sample
	energy   *metrics.EnergyDensity
	history  []float64
	selected int
	effect   int
	lastErr  error
	showHelp bool
}

func NewModel(loop *sim.Loop, opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = 20
	}
	if opts.Speed <= 0 {
		opts.Speed = 1
	}
	if opts.Title == "" {
		opts.Title = "wavesim"
	}
	theme := GetTheme(opts.Theme)

	return Model{
		loop:    loop,
		title:   opts.Title,
		fps:     opts.FPS,
		speed:   opts.Speed,
		theme:   theme,
		styles:  newStyles(theme),
		canvas:  NewCanvas(defaultWidth, defaultHeight),
		sample:  loop.Tick(0),
		energy:  metrics.NewEnergyDensity(),
		history: make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles key input and advances the loop on every TickMsg.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			if m.loop.State() == sim.Running {
				m.loop.Pause()
			} else {
				m.loop.Start()
			}
		case "r":
			m.loop.Reset()
			m.clearHistory()
			m.sample = m.loop.Tick(0)
		case "tab":
			m.selected = (m.selected + 1) % len(tunable)
		case "up", "k":
			m.adjustParam(1.05)
		case "down", "j":
			m.adjustParam(0.95)
		case "e":
			m.cycleEffects()
		case "t":
			m.theme = NextTheme(m.theme.Name)
			m.styles = newStyles(m.theme)
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.WindowSizeMsg:
		w := msg.Width - panelWidth - 8
		h := msg.Height - 4
		if w < 20 {
			w = 20
		}
		if h < 8 {
			h = 8
		}
		m.canvas = NewCanvas(w, h)
	case TickMsg:
		running := m.loop.State() == sim.Running
		m.sample = m.loop.Tick(m.speed / float64(m.fps))
		if running {
			m.record()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) record() {
	m.energy.Reset()
	m.energy.Observe(m.sample)
	m.history = append(m.history, m.energy.Value())
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}
}

func (m *Model) clearHistory() {
	m.history = m.history[:0]
}

// adjustParam scales the selected parameter. A rejected update leaves the
// loop untouched and is shown in the panel until the next success.
func (m *Model) adjustParam(factor float64) {
	p := m.loop.Parameters()
	switch tunable[m.selected] {
	case "amplitude":
		p.Amplitude *= factor
	case "wavelength":
		p.Wavelength *= factor
	case "depth":
		p.Depth *= factor
	}
	m.apply(p)
}

func (m *Model) cycleEffects() {
	m.effect = (m.effect + 1) % len(effectModes)

	p := m.loop.Parameters()
	e := p.Effects
	e.Nonlinear, e.Dispersion, e.BottomFriction, e.Coriolis, e.Wind = false, false, false, false, false
	effectModes[m.effect].apply(&e)
	if e.Wind && e.WindSpeed == 0 {
		e.WindSpeed = defaultWind
	}
	m.apply(p.WithEffects(e))
}

func (m *Model) apply(p wave.Parameters) {
	if _, err := m.loop.SetParameters(p); err != nil {
		m.lastErr = err
		return
	}
	m.lastErr = nil
	m.clearHistory()
	m.sample = m.loop.Tick(0)
}

// View renders the profile canvas beside the status panel.
func (m Model) View() string {
	m.draw()
	canvasView := m.styles.canvas.Render(m.canvas.String())
	panel := m.styles.panel.Render(m.panel())
	main := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, panel)
	if m.showHelp {
		return m.styles.overlay.Render(helpText) + "\n" + main
	}
	return main
}

func (m *Model) draw() {
	m.canvas.Clear()

	ch := m.canvas.Height * 4
	m.canvas.HorizontalDots((ch-1)/2, 4)

	eta := m.sample.Elevations()
	scale := 1.5 * m.loop.Parameters().Amplitude
	for _, v := range eta {
		scale = math.Max(scale, 1.1*math.Abs(v))
	}
	m.canvas.Profile(eta, scale)
}

func (m Model) panel() string {
	st := m.loop.Status()
	p, d := st.Parameters, st.Diagnostics
	var s strings.Builder

	s.WriteString(m.styles.title.Render(strings.ToUpper(m.title)) + "\n")
	switch st.State {
	case sim.Running:
		s.WriteString(m.styles.running.Render("RUNNING"))
	case sim.Paused:
		s.WriteString(m.styles.paused.Render("PAUSED"))
	default:
		s.WriteString(m.styles.idle.Render("IDLE"))
	}
	s.WriteString("\n\n")

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Energy J/m²"))
		s.WriteString(m.styles.graph.Render(chart) + "\n")
	}

	row := func(label, value string) {
		s.WriteString(m.styles.label.Render(label) + m.styles.value.Render(value) + "\n")
	}
	row("Time", fmt.Sprintf("%.2f s", st.Time))
	row("Regime", d.Regime.String())
	row("k", fmt.Sprintf("%.4f rad/m", d.Wavenumber))
	row("ω", fmt.Sprintf("%.4f rad/s", d.AngularFrequency))
	row("c", fmt.Sprintf("%.3f m/s", d.PhaseVelocity))
	row("c_g", fmt.Sprintf("%.3f m/s", d.GroupVelocity))
	row("Period", fmt.Sprintf("%.2f s", d.Period))

	s.WriteString("\nPARAMETERS\n")
	values := []float64{p.Amplitude, p.Wavelength, p.Depth}
	for i, name := range tunable {
		line := fmt.Sprintf("%-11s %.3f m", name, values[i])
		if i == m.selected {
			s.WriteString(m.styles.active.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + m.styles.value.Render(line) + "\n")
		}
	}
	row("Effects", describeEffects(p.Effects))

	for _, w := range st.Warnings {
		s.WriteString(m.styles.warning.Render("! "+w.Message) + "\n")
	}
	if m.lastErr != nil {
		s.WriteString(m.styles.err.Render("✗ "+m.lastErr.Error()) + "\n")
	}

	s.WriteString(m.styles.help.Render("SP:Run/Pause R:Reset Tab:Select\n↑↓:±5% E:Effects T:Theme ?:Help Q:Quit"))
	return s.String()
}

func describeEffects(e wave.Effects) string {
	var on []string
	if e.Nonlinear {
		on = append(on, "nonlinear")
	}
	if e.Dispersion {
		on = append(on, "dispersion")
	}
	if e.BottomFriction {
		on = append(on, "friction")
	}
	if e.Coriolis {
		on = append(on, "coriolis")
	}
	if e.Wind {
		on = append(on, "wind")
	}
	if len(on) == 0 {
		return "none"
	}
	return strings.Join(on, "+")
}

const helpText = `KEYBOARD SHORTCUTS
Space   start / pause
R       reset to t = 0
Tab     select parameter
Up/K    increase selected by 5%
Down/J  decrease selected by 5%
E       cycle physical effects
T       cycle themes
?       toggle this help
Q       quit`
