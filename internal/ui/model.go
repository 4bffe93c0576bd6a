package ui

import (
	"reflect"
	"strings"
	"time"

	"github.com/atomicstack/lookbook/internal/gallery"
	"github.com/atomicstack/lookbook/internal/logging/events"
	"github.com/atomicstack/lookbook/internal/render"
	"github.com/atomicstack/lookbook/internal/theme"
	"github.com/atomicstack/lookbook/internal/transition"
	"github.com/atomicstack/lookbook/internal/ui/command"
	uistate "github.com/atomicstack/lookbook/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultTitle    = "Curated Looks"
	defaultSubtitle = "Tap a tile to bring it center stage."
	infoDuration    = 4 * time.Second
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// frameMsg drives one animation frame.
type frameMsg time.Time

// Options configures the model.
type Options struct {
	Title      string
	Width      int
	Height     int
	ShowFooter bool
	// Instant disables crossfades and morphs; every change lands immediately.
	Instant bool
}

// Model implements the Bubble Tea model for the showcase.
type Model struct {
	ctl      *gallery.Controller
	bus      *command.Bus
	stage    *transition.Stage
	registry *transition.Registry
	frame    render.Frame
	tiles    uistate.Viewport

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	title       string
	showFooter  bool

	keys      keyMap
	help      help.Model
	prompt    textinput.Model
	prompting bool

	hover      control
	infoMsg    string
	infoExpire time.Time

	ticking bool
	now     func() time.Time
	tick    func(time.Duration, func(time.Time) tea.Msg) tea.Cmd

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the UI around ctl. The controller stays the single owner of
// the selection; the model only reads it after dispatching actions.
func NewModel(ctl *gallery.Controller, opts Options) *Model {
	frame := render.Render(ctl.Catalog(), ctl.Index())
	m := &Model{
		ctl:        ctl,
		bus:        command.New(ctl),
		stage:      transition.NewStage(frame.Stage.Key, transition.WithInstant(opts.Instant)),
		registry:   transition.NewRegistry(transition.WithInstantMorphs(opts.Instant)),
		frame:      frame,
		title:      strings.TrimSpace(opts.Title),
		showFooter: opts.ShowFooter,
		keys:       defaultKeyMap(),
		help:       help.New(),
		now:        time.Now,
		tick:       tea.Tick,
	}
	if m.title == "" {
		m.title = defaultTitle
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.prompt = newPrompt()
	m.help.Width = m.width
	m.registerHandlers()
	m.registry.Reset(m.sharedBounds(m.layout()))
	return m
}

func newPrompt() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "look name or number"
	ti.CharLimit = 64
	if styles.Prompt != nil {
		ti.PromptStyle = *styles.Prompt
	}
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(frameMsg{}):          m.handleFrameMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// finishUpdate schedules the next animation frame while anything is moving.
// At most one frame is outstanding at a time.
func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.Animating() && !m.ticking {
		m.ticking = true
		cmds = append(cmds, m.tick(time.Second/transition.FPS, func(t time.Time) tea.Msg {
			return frameMsg(t)
		}))
	}
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

// Animating reports whether a crossfade or morph is still in flight.
func (m *Model) Animating() bool {
	return m.stage.Animating() || m.registry.Animating()
}

// Index returns the active catalog position.
func (m *Model) Index() int {
	return m.ctl.Index()
}

// Frame returns the render output for the current selection.
func (m *Model) Frame() render.Frame {
	return m.frame
}

// dispatch applies action through the bus and, when it changed the
// selection, re-renders and points the transitions at the new item.
func (m *Model) dispatch(action render.Action) {
	if !m.bus.Dispatch(action) {
		return
	}
	m.frame = render.Render(m.ctl.Catalog(), m.ctl.Index())
	m.stage.Retarget(m.frame.Stage.Key, m.now())
	m.syncTiles()
	m.registry.Commit(m.sharedBounds(m.layout()))
}

func (m *Model) handleFrameMsg(msg tea.Msg) tea.Cmd {
	f, ok := msg.(frameMsg)
	if !ok {
		return nil
	}
	m.ticking = false
	before := m.stage.Displayed()
	m.stage.Tick(time.Time(f))
	if m.stage.Displayed() != before {
		// The incoming element just mounted on the stage; its thumbnail
		// bounds now move to the card, which starts the morph.
		m.registry.Commit(m.sharedBounds(m.layout()))
	}
	m.registry.Step()
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	events.UI.Resize(resize.Width, resize.Height)
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.help.Width = m.width
	m.prompt.Width = max(0, m.width-4)
	m.syncTiles()
	m.registry.Reset(m.sharedBounds(m.layout()))
	return nil
}

// layout computes the screen geometry for the current size and scroll.
func (m *Model) layout() screenLayout {
	l := computeLayout(m.width, m.height, m.ctl.Len(), m.tiles.Offset)
	return l.withButtonWidth(len(m.frame.Advance.Position) + 4)
}

// syncTiles scrolls the thumbnail list so the active tile is visible.
func (m *Model) syncTiles() {
	l := computeLayout(m.width, m.height, m.ctl.Len(), 0)
	m.tiles.EnsureVisible(m.ctl.Index(), m.ctl.Len(), l.maxTiles)
}

// sharedBounds maps every continuity key to the bounds of its element. The
// item on the stage is keyed to the card rather than its tile, so selecting
// a tile morphs it into the card and sends the previous item back.
func (m *Model) sharedBounds(l screenLayout) map[string]rect {
	out := make(map[string]rect, len(m.frame.Thumbs))
	if l.compact {
		return out
	}
	for _, th := range m.frame.Thumbs {
		if r := l.tiles[th.Index]; !r.Empty() {
			out[th.Key] = r
		}
	}
	if key := m.stage.Displayed(); key != "" {
		out[key] = l.card
	}
	return out
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = m.now().Add(infoDuration)
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && m.now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
