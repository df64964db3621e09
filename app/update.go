package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"goway/commands/api"
	"goway/coordinator"
	"goway/destination"
	"goway/polling"
	"goway/registry"
	"goway/views/commandinput"
	"goway/views/confirmdialog"
	helpview "goway/views/help"
	"goway/views/screen"
	"goway/views/view"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	m.syncView()
	return m, tea.Batch(cmd, m.startSpinner())
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.stale = true
		if m.help != nil {
			w, h := m.contentSize()
			return m.help.Update(tea.WindowSizeMsg{Width: w, Height: h})
		}
		return nil

	case coordinator.RequestMsg:
		ok, cmd := m.coord.RequestNavigation(msg.Request)
		if !ok {
			m.status = "navigation busy, dropped " + msg.Request.String()
		}
		return cmd

	case coordinator.Msg:
		return m.coord.Update(msg)

	case ForegroundMsg:
		if msg.Reset {
			m.stack.ResetForAppActivation()
		}
		return m.coord.CheckPendingNavigationRequests()

	case tea.FocusMsg, tea.ResumeMsg:
		return m.coord.CheckPendingNavigationRequests()

	case BackgroundMsg, tea.BlurMsg:
		m.coord.ClearNavigationState()
		return nil

	case polling.TickMsg:
		if m.poller == nil {
			return nil
		}
		return m.poller.CheckCmd()

	case persistedMsg:
		l().Debugf("store holds %d request key(s)", len(msg.keys))
		return tea.Batch(m.coord.CheckPendingNavigationRequests(), m.poller.TickCmd())

	case spinner.TickMsg:
		if m.coord.State() != coordinator.Pending {
			m.spinning = false
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd

	case view.NavigateToMsg:
		if msg.Replace {
			m.stack.ReplaceCurrentView(msg.Destination)
		} else {
			m.stack.Navigate(msg.Destination)
		}
		return nil

	case view.NavigateBackMsg:
		m.stack.GoBackLevels(msg.Levels)
		return nil

	case view.PopToMsg:
		if !m.stack.PopToDestination(msg.Destination) {
			m.status = msg.Destination.Label() + " was not open"
		}
		return nil

	case view.NavigateRootMsg:
		m.stack.GoToRoot()
		return nil

	case view.SearchMsg:
		m.query = msg.Query
		if top, ok := m.stack.Peek(); ok && top.Kind == destination.KindSearch {
			m.stale = true
			return nil
		}
		m.stack.Navigate(destination.Search())
		return nil

	case view.CancelNavigationMsg:
		return m.askCancel()

	case confirmdialog.ResultMsg:
		if msg.Tag == confirmCancel && msg.Confirmed {
			m.coord.ClearNavigationState()
			m.status = "navigation cancelled"
		}
		return nil

	case helpview.ShowMsg:
		w, h := m.contentSize()
		m.help = helpview.New(w, h)
		return nil

	case helpview.CloseMsg:
		m.help = nil
		return nil

	case commandinput.SubmitMsg:
		return m.runCommand(msg.Command)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if ok, cmd := m.bridge.Update(msg); ok {
		return cmd
	}
	if m.commandInput.Visible() {
		return m.commandInput.Update(msg)
	}
	return nil
}

const confirmCancel = "cancel"

// askCancel confirms before dropping an in-flight or persisted request.
func (m *Model) askCancel() tea.Cmd {
	target := ""
	if m.coord.State() == coordinator.Pending {
		target = m.coord.Pending().String()
	} else if kind, value, ok := m.coord.PersistedRequest(); ok {
		target = fmt.Sprintf("%s(%s)", kind, value)
	}
	if target == "" {
		m.status = "no navigation to cancel"
		return nil
	}
	m.confirm.Ask(confirmCancel, "Discard navigation to "+target+"?")
	return nil
}

func (m *Model) runCommand(raw string) tea.Cmd {
	cmd, parsedArgs, err := api.ParseInput(raw)
	if err != nil {
		return m.commandInput.ShowError(err.Error())
	}

	out, err := cmd.Execute(registry.Context{Catalog: m.catalog}, parsedArgs)
	if err != nil {
		l().Debugf("command %q failed: %v", raw, err)
		return m.commandInput.ShowError(err.Error())
	}
	return out
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	switch {
	case m.confirm.Visible():
		return m.confirm.Update(msg)
	case m.errMsg != "":
		switch msg.String() {
		case "enter", "esc", "q":
			m.errMsg = ""
		}
		return nil
	case m.commandInput.Visible():
		return m.commandInput.Update(msg)
	case m.help != nil:
		return m.help.Update(msg)
	}

	if s, ok := m.currentView.(*screen.Model); ok && s.Searching() {
		return m.currentView.Update(msg)
	}

	switch msg.String() {
	case "q":
		return m.quit()
	case ":":
		return m.commandInput.Show()
	case "?":
		w, h := m.contentSize()
		m.help = helpview.New(w, h)
		return nil
	case "esc", "backspace":
		m.stack.GoBack()
		return nil
	case "ctrl+z":
		m.coord.ClearNavigationState()
		return tea.Suspend
	}

	return m.currentView.Update(msg)
}

// quit leaves nothing in flight: pending continuations are cancelled and
// the stack stops consuming requests.
func (m *Model) quit() tea.Cmd {
	m.save()
	m.coord.ClearNavigationState()
	m.bridge.Detach()
	return tea.Quit
}

func (m *Model) startSpinner() tea.Cmd {
	if m.spinning || m.coord.State() != coordinator.Pending {
		return nil
	}
	m.spinning = true
	return m.spinner.Tick
}
