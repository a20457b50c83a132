package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/ghost-esp-control/internal/backend"
	"github.com/atomicstack/ghost-esp-control/internal/data/dispatcher"
	"github.com/atomicstack/ghost-esp-control/internal/menu"
	"github.com/atomicstack/ghost-esp-control/internal/settings"
	"github.com/atomicstack/ghost-esp-control/internal/state"
	"github.com/atomicstack/ghost-esp-control/internal/theme"
	"github.com/atomicstack/ghost-esp-control/internal/ui/command"
	uistate "github.com/atomicstack/ghost-esp-control/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type level = uistate.Level

// inputCharLimit bounds the text input buffer.
const inputCharLimit = 128

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Transport is the ESP session driven by the controller.
type Transport interface {
	Send(command string) error
	IsConnected() bool
	OpenCaptureSink(prefix, ext, folder string) error
	CloseCaptureSink() error
	CapturePath() string
}

// Options configures a Model.
type Options struct {
	Transport  Transport
	Settings   settings.Store
	Watcher    *backend.Watcher
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	Version    string
}

// Model implements the Bubble Tea model for the ESP menu.
type Model struct {
	registry *menu.Registry
	nav      *uistate.Navigation
	levels   map[menu.View]*level

	transport Transport
	settings  settings.Store
	bus       *command.Bus

	modal    *modal
	input    textinput.Model
	prompt   string
	terminal state.TerminalStore
	link     state.LinkStore
	viewport viewport.Model

	backend    *backend.Watcher
	dispatcher *dispatcher.Dispatcher

	keys keyMap
	help help.Model

	errMsg      string
	infoMsg     string
	infoExpire  time.Time
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool
	version     string

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the navigation state on the main menu.
func NewModel(opts Options) *Model {
	registry := menu.BuildRegistry()
	store := opts.Settings
	if store == nil {
		store = settings.Memory(settings.Defaults())
	}
	terminal := state.NewTerminalStore(0)
	link := state.NewLinkStore()
	if opts.Transport != nil {
		link.SetConnected(opts.Transport.IsConnected())
	}

	input := textinput.New()
	input.CharLimit = inputCharLimit
	input.Prompt = "> "
	input.Cursor.SetMode(cursor.CursorStatic)
	if styles.Prompt != nil {
		input.PromptStyle = *styles.Prompt
	}
	if styles.PromptText != nil {
		input.TextStyle = *styles.PromptText
	}
	if styles.Cursor != nil {
		input.Cursor.Style = *styles.Cursor
	}

	m := &Model{
		registry:   registry,
		nav:        uistate.NewNavigation(registry.RememberedViews()),
		levels:     make(map[menu.View]*level),
		transport:  opts.Transport,
		settings:   store,
		bus:        command.New(opts.Transport),
		input:      input,
		terminal:   terminal,
		link:       link,
		viewport:   viewport.New(0, 0),
		backend:    opts.Watcher,
		dispatcher: dispatcher.New(terminal, link),
		keys:       defaultKeyMap(),
		help:       help.New(),
		showFooter: opts.ShowFooter,
		verbose:    opts.Verbose,
		version:    opts.Version,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.showPage(menu.ViewMain)
	m.layout()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if cmd := m.updateInputModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(command.Result{}):    m.handleCommandResultMsg,
		reflect.TypeOf(modalResultMsg{}):    m.handleModalResultMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
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

func finishUpdate(cmds []tea.Cmd) tea.Cmd {
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(keyMsg, m.keys.Quit) {
		return tea.Quit
	}
	switch m.nav.Current {
	case menu.ViewTextInput:
		return m.handleInputKey(keyMsg)
	case menu.ViewModal:
		return m.handleModalKey(keyMsg)
	case menu.ViewTerminal:
		return m.handleTerminalKey(keyMsg)
	default:
		_, cmd := m.handleListEvent(m.keys.event(keyMsg))
		return cmd
	}
}

func (m *Model) handleCommandResultMsg(msg tea.Msg) tea.Cmd {
	res, ok := msg.(command.Result)
	if !ok {
		return nil
	}
	if res.Err != nil {
		m.errMsg = res.Err.Error()
		return nil
	}
	m.errMsg = ""
	if m.verbose {
		m.setInfo("sent " + trimLine(res.Line))
	}
	return nil
}

// CurrentView reports the active view.
func (m *Model) CurrentView() menu.View {
	return m.nav.Current
}

// PreviousView reports the view Back and modal dismissal return to.
func (m *Model) PreviousView() menu.View {
	return m.nav.Previous
}

// Navigation exposes the navigation state for inspection.
func (m *Model) Navigation() *uistate.Navigation {
	return m.nav
}
