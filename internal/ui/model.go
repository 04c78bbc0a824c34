package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/popup-select/internal/backend"
	"github.com/atomicstack/popup-select/internal/theme"
	"github.com/atomicstack/popup-select/internal/widget"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model around one widget instance.
type Model struct {
	store    widget.Store
	nav      *widget.Navigator
	viewport *Viewport

	// snapshot is the latest state delivered by the store subscription.
	// View renders from this, never from a private copy held elsewhere.
	snapshot    widget.State
	unsubscribe func()

	// full is the unfiltered option list; the filter swaps subsets of it
	// into the store while the widget is open.
	full         []widget.Option
	filter       string
	filterCursor cursor.Model

	placeholder string
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	backend    *backend.Watcher
	errMsg     string
	infoMsg    string
	infoExpire time.Time

	committed bool
	cancelled bool
	result    string

	handlers map[reflect.Type]msgHandler
}

// Options configures a Model.
type Options struct {
	Value       string
	Options     []widget.Option
	Placeholder string
	Width       int
	Height      int
	ShowFooter  bool
	Watcher     *backend.Watcher
}

// NewModel builds the store, scroll port, and navigator for one widget
// instance and wires the model up as its presentation adapter.
func NewModel(opts Options) *Model {
	m := &Model{
		viewport:    NewViewport(),
		full:        widget.CloneOptions(opts.Options),
		placeholder: opts.Placeholder,
		showFooter:  opts.ShowFooter,
		backend:     opts.Watcher,
	}
	m.store = widget.NewStore(widget.NewState(opts.Value, opts.Options))
	m.nav = widget.NewNavigator(m.store, m.viewport)
	m.snapshot = m.store.State()
	m.unsubscribe = m.store.Subscribe(func(st widget.State) {
		m.snapshot = st
	})
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	return m
}

// Navigator exposes the use case, mainly for tests and the harness.
func (m *Model) Navigator() *widget.Navigator {
	return m.nav
}

// Result returns the committed value and whether a commit happened.
func (m *Model) Result() (string, bool) {
	return m.result, m.committed
}

// Cancelled reports whether the user dismissed the widget without committing.
func (m *Model) Cancelled() bool {
	return m.cancelled
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
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

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.viewport.SetHeight(m.maxVisibleItems())
	m.viewport.Clamp(len(m.snapshot.Options))
	return nil
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}
