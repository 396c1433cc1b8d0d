package app

import (
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"wheel.klederson.com/internal/animation"
	"wheel.klederson.com/internal/config"
	"wheel.klederson.com/internal/render"
	"wheel.klederson.com/internal/ui"
	"wheel.klederson.com/internal/wheel"
)

// Screen rows/columns taken before the wheel panel's content starts:
// the menu bar and the panel's top border, and the panel's left border.
const (
	wheelOriginX = 1
	wheelOriginY = 2
)

// Options configures a new AppModel.
type Options struct {
	Sectors  int
	MinTurns int // 0 keeps the resolver default
	MaxTurns int
	Duration time.Duration
	Ease     animation.Ease
	Rand     wheel.Rand
	Logger   zerolog.Logger
	Clock    func() time.Time // nil uses time.Now
}

// shared holds state shared between the Bubble Tea model copies.
// Because Bubble Tea uses value receivers, pointer fields ensure all copies
// see the same underlying data.
type shared struct {
	wheel   *wheel.Wheel
	tween   *animation.Tween
	history *SpinHistory
	hover   wheel.Hover
}

// AppModel is the root Bubble Tea model for the wheel.
type AppModel struct {
	width  int
	height int
	layout render.Layout

	showDetail bool
	cursor     int

	duration time.Duration
	ease     animation.Ease
	clock    func() time.Time
	log      zerolog.Logger

	shared *shared
}

// New creates a new AppModel.
func New(opts Options) AppModel {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	ease := opts.Ease
	if ease == nil {
		ease = animation.Power1InOut
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(clock().UnixNano()))
	}
	w := wheel.New(opts.Sectors, rng, opts.Logger)
	if opts.MinTurns > 0 && opts.MaxTurns >= opts.MinTurns {
		w.Resolver().MinTurns = opts.MinTurns
		w.Resolver().MaxTurns = opts.MaxTurns
	}
	return AppModel{
		duration: opts.Duration,
		ease:     ease,
		clock:    clock,
		log:      opts.Logger,
		shared: &shared{
			wheel:   w,
			history: NewSpinHistory(config.HistorySize),
		},
	}
}

// Wheel exposes the wheel driven by this model.
func (m AppModel) Wheel() *wheel.Wheel {
	return m.shared.wheel
}

func (m AppModel) Init() tea.Cmd {
	return tickCmd()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout = m.wheelLayout()
		m.shared.wheel.Model().SetGeometry(m.layout.Geometry())
		m.log.Debug().
			Int("width", m.width).
			Int("height", m.height).
			Float64("radius", m.layout.Radius).
			Msg("layout changed")
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case TickMsg:
		m.advance(time.Time(msg))
		return m, tickCmd()
	}

	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "Q", "ctrl+c":
		m.log.Info().Int("spins", m.shared.history.Total()).Msg("quit")
		return m, tea.Quit

	case " ", "enter":
		m.spin()

	case "d", "D":
		m.showDetail = !m.showDetail && m.shared.history.Len() > 0

	case "esc":
		m.showDetail = false

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < m.shared.history.Len()-1 {
			m.cursor++
		}

	case "home":
		m.cursor = 0

	case "end":
		if n := m.shared.history.Len(); n > 0 {
			m.cursor = n - 1
		}
	}

	return m, nil
}

func (m AppModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	w := m.shared.wheel
	col, row := msg.X-wheelOriginX, msg.Y-wheelOriginY
	if !m.layout.Contains(col, row) {
		w.ClearPointer()
		m.shared.hover = wheel.Hover{Sector: -1}
		return m, nil
	}

	x, y := m.layout.ToPlane(col, row)
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && w.InHub(x, y) {
		m.spin()
		return m, nil
	}

	m.shared.hover = w.Pointer(x, y)
	return m, nil
}

// spin starts a spin unless one is already running.
func (m *AppModel) spin() {
	w := m.shared.wheel
	s, ok := w.Trigger()
	if !ok {
		return
	}
	m.shared.history.Push(s)
	m.cursor = 0
	m.shared.tween = animation.Start(0, s.Delta, m.duration, m.ease, w.OnSample, w.OnComplete, m.clock())
}

// advance moves the running spin and the hover fade one frame forward.
func (m *AppModel) advance(now time.Time) {
	if tw := m.shared.tween; tw != nil {
		tw.Advance(now)
		if tw.Done() {
			m.shared.tween = nil
		}
	}
	m.shared.wheel.Model().FadeColors()
}

// wheelLayout sizes the wheel panel's drawing area. View uses the same
// numbers, so mouse coordinates map onto what is drawn.
func (m AppModel) wheelLayout() render.Layout {
	wheelW, _, bodyH := m.panelSizes()
	innerW := wheelW - 2
	innerH := bodyH - 3 // border + legend
	if innerW < 5 {
		innerW = 5
	}
	if innerH < 3 {
		innerH = 3
	}
	return render.NewLayout(innerW, innerH)
}

func (m AppModel) panelSizes() (wheelW, sideW, bodyH int) {
	menuH := 1
	statusH := 1
	bodyH = m.height - menuH - statusH
	if bodyH < 5 {
		bodyH = 5
	}

	wheelW = m.width * 3 / 4
	if wheelW < 30 {
		wheelW = 30
	}
	sideW = m.width - wheelW
	if sideW < 15 {
		sideW = 15
		wheelW = m.width - sideW
	}
	return wheelW, sideW, bodyH
}

func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing wheel..."
	}

	w := m.shared.wheel
	wheelW, sideW, bodyH := m.panelSizes()

	menuBar := ui.RenderMenuBar(m.width, w.Model().Len(), w.Spinning())

	content := render.Render(m.layout, w.Model(), w.Spinning())
	legend := render.RenderLegend(m.layout.Width)
	wheelPanel := ui.RenderWheelPanel(wheelW, bodyH, content, legend)

	spins := m.shared.history.Newest()
	var side string
	if m.showDetail && m.cursor < len(spins) {
		side = ui.RenderSpinDetail(spins[m.cursor], w.Model(), sideW, bodyH, m.shared.history.Deltas())
	} else {
		side = ui.RenderHistory(spins, m.shared.history.Total(), w.Model(), sideW, bodyH, m.cursor)
	}

	info := ui.StatusInfo{
		State:    w.Tracker().State(),
		Hover:    m.shared.hover,
		Rotation: w.Tracker().Total(),
		Spins:    m.shared.history.Total(),
	}
	if last, ok := m.shared.history.Last(); ok && !w.Spinning() {
		info.Last = &last
	}
	statusBar := ui.RenderStatusBar(m.width, info)

	return ui.ComposeLayout(menuBar, wheelPanel, side, statusBar)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(config.TargetFPS), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
