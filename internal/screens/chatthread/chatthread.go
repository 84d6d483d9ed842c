package chatthread

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/sirupsen/logrus"

	"github.com/Adarsh-oo7/pscprep/internal/api"
	"github.com/Adarsh-oo7/pscprep/internal/chat"
	"github.com/Adarsh-oo7/pscprep/internal/screen"
	"github.com/Adarsh-oo7/pscprep/internal/ui/components"
	"github.com/Adarsh-oo7/pscprep/internal/ui/layout"
	"github.com/Adarsh-oo7/pscprep/internal/ui/theme"
)

// historyMsg is sent when the initial message page arrives.
type historyMsg struct {
	Messages []api.Message
	Err      error
}

// socketReadyMsg is sent once the connection loop has been started.
type socketReadyMsg struct {
	Conn *chat.Conn
	Err  error
}

// eventMsg wraps one connection event for the update loop.
type eventMsg chat.Event

// eventsClosedMsg is sent when the event channel closes (Terminal).
type eventsClosedMsg struct{}

const maxVisibleMessages = 200

// ChatThreadScreen shows one conversation with live messages.
type ChatThreadScreen struct {
	client *api.Client
	conv   api.Conversation
	log    *logrus.Entry

	conn   *chat.Conn
	cancel context.CancelFunc

	messages []api.Message
	seen     map[string]bool
	input    components.TextInput

	state    chat.State
	stateMsg string
	errMsg   string
}

var _ screen.Screen = (*ChatThreadScreen)(nil)
var _ screen.Closer = (*ChatThreadScreen)(nil)
var _ screen.KeyHintProvider = (*ChatThreadScreen)(nil)

// New creates a ChatThreadScreen.
func New(client *api.Client, conv api.Conversation, log *logrus.Entry) *ChatThreadScreen {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &ChatThreadScreen{
		client: client,
		conv:   conv,
		log:    log,
		seen:   make(map[string]bool),
		input:  components.NewTextInput("", "Type a message...", false),
		state:  chat.Disconnected,
	}
}

func (c *ChatThreadScreen) Init() tea.Cmd {
	return tea.Batch(c.loadHistory(), c.openSocket(), c.input.Focus())
}

func (c *ChatThreadScreen) Title() string {
	if c.conv.IsGroup {
		return "# " + c.conv.PeerName
	}
	return c.conv.PeerName
}

// Close tears down the socket. The normal close code suppresses the
// reconnect loop.
func (c *ChatThreadScreen) Close() {
	if c.conn != nil {
		c.conn.Close()
	}
	if c.cancel != nil {
		c.cancel()
	}
}

func (c *ChatThreadScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Esc", Description: "Back"},
	}
}

func (c *ChatThreadScreen) loadHistory() tea.Cmd {
	client, conv := c.client, c.conv
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		msgs, err := client.MessageHistory(ctx, conv)
		return historyMsg{Messages: msgs, Err: err}
	}
}

func (c *ChatThreadScreen) openSocket() tea.Cmd {
	client, conv, log := c.client, c.conv, c.log
	return func() tea.Msg {
		kind := "chat"
		if conv.IsGroup {
			kind = "group"
		}
		url, err := client.SocketURL(kind, conv.ID)
		if err != nil {
			return socketReadyMsg{Err: err}
		}
		return socketReadyMsg{Conn: chat.New(url, log)}
	}
}

// waitEvent blocks on the next connection event.
func waitEvent(conn *chat.Conn) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-conn.Events()
		if !ok {
			return eventsClosedMsg{}
		}
		return eventMsg(ev)
	}
}

func (c *ChatThreadScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyMsg:
		if msg.Err != nil {
			c.errMsg = "Could not load history: " + msg.Err.Error()
			return c, nil
		}
		// History arrives newest first; display oldest first. Socket
		// frames may already have delivered some of these.
		for i := len(msg.Messages) - 1; i >= 0; i-- {
			c.append(msg.Messages[i])
		}
		return c, nil

	case socketReadyMsg:
		if msg.Err != nil {
			c.errMsg = "Could not open live connection: " + msg.Err.Error()
			return c, nil
		}
		c.conn = msg.Conn
		ctx, cancel := context.WithCancel(context.Background())
		c.cancel = cancel
		c.conn.Connect(ctx)
		return c, waitEvent(c.conn)

	case eventMsg:
		return c.handleEvent(chat.Event(msg))

	case eventsClosedMsg:
		c.state = chat.Terminal
		c.stateMsg = "Connection closed"
		return c, nil

	case tea.KeyMsg:
		if msg.String() == "enter" {
			return c, c.send()
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

func (c *ChatThreadScreen) handleEvent(ev chat.Event) (screen.Screen, tea.Cmd) {
	switch ev.Kind {
	case chat.EventMessage:
		c.append(ev.Message)

	case chat.EventState:
		c.state = ev.State
		switch ev.State {
		case chat.Connected:
			c.stateMsg = ""
		case chat.Reconnecting:
			c.stateMsg = fmt.Sprintf("Connection lost, retrying in %s (attempt %d)",
				ev.Delay.Round(time.Second), ev.Attempt)
		case chat.Terminal:
			if ev.Err != nil {
				c.stateMsg = "Connection lost for good; messages are read-only"
			} else {
				c.stateMsg = "Connection closed"
			}
		}
	}

	return c, waitEvent(c.conn)
}

// append adds a message unless its id has been seen before. History and
// live frames overlap around the connection handoff.
func (c *ChatThreadScreen) append(m api.Message) {
	if m.ID != "" {
		if c.seen[m.ID] {
			return
		}
		c.seen[m.ID] = true
	}
	c.messages = append(c.messages, m)
	if len(c.messages) > maxVisibleMessages {
		c.messages = c.messages[len(c.messages)-maxVisibleMessages:]
	}
}

func (c *ChatThreadScreen) send() tea.Cmd {
	text := strings.TrimSpace(c.input.Value())
	if text == "" {
		return nil
	}
	if c.conn == nil {
		c.stateMsg = "Not connected yet"
		return nil
	}

	if err := c.conn.Send(text); err != nil {
		if errors.Is(err, chat.ErrNotConnected) {
			c.stateMsg = "Not connected; message not sent"
		} else {
			c.stateMsg = "Send failed: " + err.Error()
		}
		return nil
	}

	// The backend echoes the message back on the socket, so the local
	// list is updated by the incoming frame, not here.
	c.input.Model.SetValue("")
	return nil
}

func (c *ChatThreadScreen) View(width, height int) string {
	cw := width - 4
	if cw < 20 {
		cw = 20
	}

	var b strings.Builder

	if c.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(c.errMsg))
		b.WriteString("\n\n")
	}

	visible := c.messages
	// Leave room for the status line and the input.
	maxLines := height - 6
	if maxLines < 1 {
		maxLines = 1
	}
	if len(visible) > maxLines {
		visible = visible[len(visible)-maxLines:]
	}

	for _, m := range visible {
		sender := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(m.Sender)
		stamp := lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(m.CreatedAt.Local().Format("15:04"))
		b.WriteString(fmt.Sprintf("%s %s  %s\n", stamp, sender, m.Text))
	}

	b.WriteString("\n")
	b.WriteString(c.renderStatus())
	b.WriteString("\n")
	b.WriteString(c.input.View())

	return lipgloss.NewStyle().Padding(0, 2).Width(width).Render(b.String())
}

func (c *ChatThreadScreen) renderStatus() string {
	if c.stateMsg != "" {
		style := lipgloss.NewStyle().Foreground(theme.Accent)
		if c.state == chat.Terminal {
			style = lipgloss.NewStyle().Foreground(theme.Error)
		}
		return style.Render("● " + c.stateMsg)
	}

	switch c.state {
	case chat.Connected:
		return lipgloss.NewStyle().Foreground(theme.Success).Render("● connected")
	case chat.Connecting, chat.Disconnected:
		return theme.Hint.Render("● connecting...")
	}
	return theme.Hint.Render("● " + c.state.String())
}
