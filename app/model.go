package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"goway/bridge"
	"goway/coordinator"
	"goway/destination"
	"goway/kvstore"
	"goway/navstack"
	"goway/polling"
	"goway/ui"
	"goway/venue"
	"goway/views/commandinput"
	"goway/views/confirmdialog"
	helpview "goway/views/help"
	"goway/views/screen"
	"goway/views/view"
)

const (
	// chromeHeight is what the header and the breadcrumb bar take.
	chromeHeight = 7
	// paletteHeight fits the input line and one error line.
	paletteHeight = 4
)

// Model holds app state
type Model struct {
	catalog *venue.Static
	coord   *coordinator.Coordinator
	stack   *navstack.Stack
	bridge  *bridge.Bridge
	poller  *polling.Poller[coordinator.PersistedKey]

	attachCmd tea.Cmd
	store     kvstore.Store
	open      *destination.Destination

	width  int
	height int

	currentView  view.View
	shownKey     uint64
	stale        bool
	paletteShown bool
	query        string

	help         *helpview.Model
	errMsg       string
	status       string
	commandInput *commandinput.Model
	confirm      *confirmdialog.Model

	spinner  spinner.Model
	spinning bool
}

// New wires the stack to the coordinator and builds the home screen.
func New(deps Deps) *Model {
	m := &Model{
		catalog:      deps.Catalog,
		coord:        deps.Coordinator,
		stack:        &navstack.Stack{},
		commandInput: commandinput.New(suggest),
		confirm:      confirmdialog.New(),
		spinner:      ui.NewPendingSpinner(),
		width:        80,
		height:       24,
		stale:        true,
		store:        deps.Store,
		open:         deps.Open,
	}
	m.stack.OnChange(func(depth int) {
		l().Debugf("navigation stack depth %d", depth)
	})
	m.bridge, m.attachCmd = bridge.Attach(m.coord, m.stack, deps.SettleDelay)

	if deps.Store != nil && deps.PollInterval > 0 {
		store := deps.Store
		m.poller = polling.NewWithInterval(deps.PollInterval,
			func() ([]coordinator.PersistedKey, error) { return coordinator.ReadPersisted(store) },
			func(keys []coordinator.PersistedKey) tea.Msg { return persistedMsg{keys: keys} })
	}

	m.restore()
	m.syncView()
	return m
}

// Init  will be automatically called by Bubble Tea if the model implements the Model interface
// and is passed into the tea.NewProgram function.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.attachCmd,
		func() tea.Msg { return ForegroundMsg{} },
	}
	if m.open != nil {
		cmds = append(cmds, m.bridge.NavigateFromExternalSource(*m.open))
	}
	if m.poller != nil {
		cmds = append(cmds, m.poller.TickCmd())
	}
	return tea.Batch(cmds...)
}

// Stack exposes the navigation stack, read-only by convention.
func (m *Model) Stack() *navstack.Stack { return m.stack }

// CurrentView is the screen being shown.
func (m *Model) CurrentView() view.View { return m.currentView }

// restore pushes the screen saved by the last quit. Entities that left the
// dataset since are dropped.
func (m *Model) restore() {
	if m.store == nil || m.open != nil {
		return
	}
	raw, ok, err := m.store.Get(lastDestinationKey)
	if err != nil || !ok {
		return
	}
	d, err := destination.Deserialize([]byte(raw), m.catalog)
	if err != nil {
		l().Warnf("dropping saved screen: %v", err)
		m.errMsg = fmt.Sprintf("Could not restore your last screen: %v", err)
		_ = m.store.Remove(lastDestinationKey)
		return
	}
	m.stack.Navigate(d)
}

// save records the top of the stack for the next start.
func (m *Model) save() {
	if m.store == nil {
		return
	}
	top, ok := m.stack.Peek()
	if !ok {
		if err := m.store.Remove(lastDestinationKey); err != nil {
			l().Warnf("forgetting saved screen: %v", err)
		}
		return
	}
	data, err := top.Serialize()
	if err == nil {
		err = m.store.Set(lastDestinationKey, string(data))
	}
	if err != nil {
		l().Warnf("saving screen %s: %v", top, err)
	}
}

// syncView rebuilds the current screen when the top of the stack is a
// different destination. The same destination keeps its cursor and filter.
func (m *Model) syncView() {
	top, ok := m.stack.Peek()
	var key uint64
	if ok {
		key = top.Hash()
	}
	if !m.stale && m.currentView != nil && m.shownKey == key && m.paletteShown == m.commandInput.Visible() {
		return
	}
	w, h := m.contentSize()
	if ok {
		m.currentView = screen.New(m.catalog, top, m.query, w, h)
	} else {
		m.currentView = screen.NewHome(m.catalog, w, h)
	}
	m.shownKey = key
	m.paletteShown = m.commandInput.Visible()
	m.stale = false
}

func (m *Model) contentSize() (int, int) {
	h := m.height - chromeHeight
	if m.commandInput.Visible() {
		h -= paletteHeight
	}
	return max(m.width, 20), max(h, 5)
}

func (m *Model) renderStackBar() string {
	labels := []string{view.NameHome}
	for _, d := range m.stack.Destinations() {
		labels = append(labels, d.Label())
	}

	var parts []string
	for i, label := range labels {
		if i > 0 {
			parts = append(parts, lipgloss.NewStyle().Faint(true).Render(" → "))
		}
		style := ui.Rainbow[i%len(ui.Rainbow)]
		parts = append(parts, style.Render(fmt.Sprintf(" %s ", label)))
	}

	return lipgloss.JoinHorizontal(lipgloss.Left, parts...)
}
