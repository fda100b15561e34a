package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkotov/go-chat-bridge/internal/bridge"
	"github.com/mkotov/go-chat-bridge/internal/service"
	"github.com/mkotov/go-chat-bridge/models"
)

type composeStage int

const (
	composeStageNone composeStage = iota
	composeStageContacts
	composeStageMessage
)

// mainModel is the Bubble Tea model for the conversation list screen and the
// chat creation flow layered on top of it.
type mainModel struct {
	ctx     context.Context
	service service.SessionService
	tasks   *bridge.Bridge
	creds   models.SessionCredentials
	events  <-chan models.IncomingEvent

	conversations []models.Conversation
	provisional   bool
	idx           int
	loading       bool
	refreshing    bool
	status        string
	errMsg        string

	stage           composeStage
	contacts        []models.ContactEntry
	contactIdx      int
	loadingContacts bool
	composeInputs   []textinput.Model
	composeFocus    int
	creating        bool

	reconnect bool
}

func newMainModel(ctx context.Context, sessionService service.SessionService, tasks *bridge.Bridge, creds models.SessionCredentials, events <-chan models.IncomingEvent) mainModel {
	return mainModel{
		ctx:     ctx,
		service: sessionService,
		tasks:   tasks,
		creds:   creds,
		events:  events,
		loading: true,
	}
}

func (m mainModel) Init() tea.Cmd {
	m.service.LoadConversations(m.ctx, m.creds)
	return tea.Batch(
		cmdWaitForResult(m.ctx, m.tasks),
		cmdWaitForEvent(m.ctx, m.events),
	)
}

func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case taskResultMsg:
		return m.handleTaskResult(msg)
	case serverEventMsg:
		return m.handleServerEvent(msg)
	case copiedMsg:
		m.status = "Copied!"
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.errMsg = fmt.Sprintf("copy failed: %v", msg.err)
		return m, nil
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.stage == composeStageMessage {
			return m.updateCompose(msg)
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c":
		return m, tea.Quit
	}

	switch m.stage {
	case composeStageContacts:
		return m.updateContactPicker(keyMsg)
	case composeStageMessage:
		return m.updateCompose(keyMsg)
	}

	return m.updateList(keyMsg)
}

func (m mainModel) handleTaskResult(msg taskResultMsg) (tea.Model, tea.Cmd) {
	rearm := cmdWaitForResult(m.ctx, m.tasks)

	if msg.result.Err != nil {
		m.loading = false
		m.refreshing = false
		m.creating = false
		m.errMsg = msg.result.Err.Error()
		return m, rearm
	}

	switch update := msg.result.Value.(type) {
	case service.ConversationsUpdate:
		m.loading = false
		m.refreshing = update.Provisional
		if update.Err != nil {
			m.errMsg = service.DescribeError(update.Err)
			return m, rearm
		}

		m.errMsg = ""
		if update.StorageErr != nil {
			m.errMsg = service.DescribeError(update.StorageErr)
		}
		m.conversations = update.Conversations
		m.provisional = update.Provisional
		if m.idx >= len(m.conversations) {
			m.idx = len(m.conversations) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, rearm

	case service.ContactsUpdate:
		m.loadingContacts = false
		if update.Err != nil {
			m.errMsg = service.DescribeError(update.Err)
			return m, rearm
		}
		m.contacts = update.Contacts
		m.contactIdx = 0
		return m, rearm

	case service.ChatCreatedUpdate:
		m.creating = false
		if update.Err != nil {
			m.errMsg = service.DescribeError(update.Err)
			return m, rearm
		}
		m.stage = composeStageNone
		m.status = "Chat created: " + update.Conversation.Name
		m.errMsg = ""
		if update.StorageErr != nil {
			// the reconciled list is not coming, fall back to a refresh
			m.errMsg = service.DescribeError(update.StorageErr)
			return m, tea.Batch(rearm, m.refresh(), cmdClearStatus())
		}
		return m, tea.Batch(rearm, cmdClearStatus())
	}

	return m, rearm
}

// handleServerEvent refreshes the list on message activity; everything else
// is ignored.
func (m mainModel) handleServerEvent(msg serverEventMsg) (tea.Model, tea.Cmd) {
	rearm := cmdWaitForEvent(m.ctx, m.events)

	switch msg.event.Type {
	case "new-message", "updated-message", "chat-read-status-changed":
		return m, tea.Batch(rearm, m.refresh())
	}
	return m, rearm
}

func (m mainModel) updateList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.conversations)-1 {
			m.idx++
		}
	case "r":
		return m, m.refresh()
	case "n":
		m.stage = composeStageContacts
		m.loadingContacts = true
		m.errMsg = ""
		m.service.LoadContacts(m.ctx, m.creds)
	case "c":
		conversation, ok := m.current()
		if !ok {
			return m, nil
		}
		return m, cmdCopyToClipboard(conversation.ID)
	case "l":
		m.reconnect = true
		return m, tea.Quit
	}
	return m, nil
}

func (m mainModel) updateContactPicker(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.stage = composeStageNone
	case "up", "k":
		if m.contactIdx > 0 {
			m.contactIdx--
		}
	case "down", "j":
		if m.contactIdx < len(m.contacts)-1 {
			m.contactIdx++
		}
	case "enter":
		if m.loadingContacts {
			return m, nil
		}
		address := ""
		if m.contactIdx >= 0 && m.contactIdx < len(m.contacts) {
			address = m.contacts[m.contactIdx].Address
		}
		m.startCompose(address)
	case "a":
		// compose with a manually typed address
		m.startCompose("")
	}
	return m, nil
}

func (m mainModel) updateCompose(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.stage = composeStageContacts
			return m, nil
		case "tab":
			m.composeFocusNext()
			return m, nil
		case "shift+tab":
			m.composeFocusPrev()
			return m, nil
		case "enter":
			if m.creating {
				return m, nil
			}

			address := strings.TrimSpace(m.composeInputs[0].Value())
			message := strings.TrimSpace(m.composeInputs[1].Value())
			if address == "" || message == "" {
				m.errMsg = "address and message are required"
				return m, nil
			}

			m.errMsg = ""
			m.creating = true
			m.service.CreateConversation(m.ctx, m.creds, []string{address}, message)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.composeInputs[m.composeFocus], cmd = m.composeInputs[m.composeFocus].Update(msg)
	return m, cmd
}

func (m *mainModel) startCompose(address string) {
	addressInput := textinput.New()
	addressInput.Placeholder = "+1 555 123 4567"
	addressInput.CharLimit = 256
	addressInput.Width = 40
	addressInput.SetValue(address)

	messageInput := textinput.New()
	messageInput.Placeholder = "first message"
	messageInput.CharLimit = 1024
	messageInput.Width = 40

	if address == "" {
		addressInput.Focus()
		m.composeFocus = 0
	} else {
		messageInput.Focus()
		m.composeFocus = 1
	}

	m.composeInputs = []textinput.Model{addressInput, messageInput}
	m.stage = composeStageMessage
	m.errMsg = ""
}

// refresh schedules a conversation reload unless one is already running.
func (m *mainModel) refresh() tea.Cmd {
	if m.refreshing || m.loading {
		return nil
	}
	m.refreshing = true
	m.service.LoadConversations(m.ctx, m.creds)
	return nil
}

func (m mainModel) current() (models.Conversation, bool) {
	if len(m.conversations) == 0 || m.idx < 0 || m.idx >= len(m.conversations) {
		return models.Conversation{}, false
	}
	return m.conversations[m.idx], true
}

func (m mainModel) View() string {
	switch m.stage {
	case composeStageContacts:
		return m.viewContactPicker()
	case composeStageMessage:
		return m.viewCompose()
	}
	return m.viewList()
}

func (m mainModel) viewList() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.conversations) == 0:
		b.WriteString("No conversations\n")
	default:
		for i, conversation := range m.conversations {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(cursor)
			b.WriteString(fitText(conversation.Name, 50))
			b.WriteString("\n")
		}
	}

	if m.provisional {
		b.WriteString("\n(cached view, refreshing...)\n")
	} else if m.refreshing {
		b.WriteString("\n(refreshing...)\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("CONVERSATIONS", strings.TrimRight(b.String(), "\n"), "n: new chat │ r: refresh │ c: copy id │ l: reconnect │ q: quit")
}

func (m mainModel) viewContactPicker() string {
	var b strings.Builder

	switch {
	case m.loadingContacts:
		b.WriteString("Loading contacts...\n")
	case len(m.contacts) == 0:
		b.WriteString("No contacts on the server\n")
	default:
		for i, contact := range m.contacts {
			cursor := "  "
			if i == m.contactIdx {
				cursor = "> "
			}
			b.WriteString(cursor)
			b.WriteString(fitText(contact.Label, 30))
			b.WriteString("  ")
			b.WriteString(fitText(contact.Address, 25))
			b.WriteString("\n")
		}
	}

	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("NEW CHAT", strings.TrimRight(b.String(), "\n"), "enter: pick │ a: type address │ esc: back")
}

func (m mainModel) viewCompose() string {
	var b strings.Builder
	b.WriteString("To      │ [")
	b.WriteString(m.composeInputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Message │ [")
	b.WriteString(m.composeInputs[1].View())
	b.WriteString("]\n")

	if m.creating {
		b.WriteString("\n[Creating...]\n")
	} else {
		b.WriteString("\n[Create]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("NEW CHAT", strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: create │ esc: back")
}

func (m *mainModel) composeFocusNext() {
	m.composeInputs[m.composeFocus].Blur()
	m.composeFocus = (m.composeFocus + 1) % len(m.composeInputs)
	m.composeInputs[m.composeFocus].Focus()
}

func (m *mainModel) composeFocusPrev() {
	m.composeInputs[m.composeFocus].Blur()
	m.composeFocus = (m.composeFocus - 1 + len(m.composeInputs)) % len(m.composeInputs)
	m.composeInputs[m.composeFocus].Focus()
}
