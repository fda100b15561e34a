package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkotov/go-chat-bridge/internal/bridge"
	"github.com/mkotov/go-chat-bridge/internal/service"
	"github.com/mkotov/go-chat-bridge/models"
)

// connectModel is the Bubble Tea model for the connect screen. It renders the
// server address and password inputs and dispatches the connectivity probe on
// submission. A successful ConnectUpdate quits the program with the verified
// credentials in creds.
type connectModel struct {
	ctx     context.Context
	service service.SessionService
	tasks   *bridge.Bridge

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string

	creds      models.SessionCredentials
	connected  bool
	quitByUser bool

	buildInfo     models.BuildInfo
	showBuildInfo bool
}

func newConnectModel(ctx context.Context, sessionService service.SessionService, tasks *bridge.Bridge, stored models.SessionCredentials, buildInfo models.BuildInfo) connectModel {
	addressInput := textinput.New()
	addressInput.Placeholder = "bridge.example.com:1234"
	addressInput.CharLimit = 256
	addressInput.Width = 40
	addressInput.SetValue(stored.BaseURL)
	addressInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "server password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'
	passwordInput.SetValue(stored.Password)

	return connectModel{
		ctx:       ctx,
		service:   sessionService,
		tasks:     tasks,
		inputs:    []textinput.Model{addressInput, passwordInput},
		creds:     stored,
		buildInfo: buildInfo,
	}
}

func (m connectModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, cmdWaitForResult(m.ctx, m.tasks))
}

func (m connectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case taskResultMsg:
		update, ok := msg.result.Value.(service.ConnectUpdate)
		if !ok {
			// a stale result from a previous screen, keep draining
			return m, cmdWaitForResult(m.ctx, m.tasks)
		}

		m.submitting = false
		if msg.result.Err != nil {
			m.errMsg = msg.result.Err.Error()
			return m, cmdWaitForResult(m.ctx, m.tasks)
		}
		if update.Err != nil {
			m.errMsg = service.DescribeError(update.Err)
			return m, cmdWaitForResult(m.ctx, m.tasks)
		}

		if update.Token != "" {
			m.creds.Token = update.Token
		}
		m.connected = true
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitByUser = true
			return m, tea.Quit
		case "ctrl+b":
			m.showBuildInfo = !m.showBuildInfo
			return m, nil
		case "esc":
			if m.showBuildInfo {
				m.showBuildInfo = false
				return m, nil
			}
			m.quitByUser = true
			return m, tea.Quit
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			address := strings.TrimSpace(m.inputs[0].Value())
			password := m.inputs[1].Value()
			if address == "" {
				m.errMsg = "server address is required"
				return m, nil
			}

			m.creds.BaseURL = address
			m.creds.Password = password
			m.errMsg = ""
			m.submitting = true
			m.service.Connect(m.ctx, m.creds)
			return m, nil
		}
	}

	if m.showBuildInfo {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m connectModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	var b strings.Builder
	b.WriteString("Server   │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Connecting...]\n")
	} else {
		b.WriteString("\n[Connect]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("CONNECT", strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: connect │ ctrl+b: about │ esc: quit")
}

func (m *connectModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *connectModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
