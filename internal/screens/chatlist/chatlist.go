package chatlist

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/sirupsen/logrus"

	"github.com/Adarsh-oo7/pscprep/internal/api"
	"github.com/Adarsh-oo7/pscprep/internal/router"
	"github.com/Adarsh-oo7/pscprep/internal/screen"
	"github.com/Adarsh-oo7/pscprep/internal/screens/chatthread"
	"github.com/Adarsh-oo7/pscprep/internal/ui/components"
	"github.com/Adarsh-oo7/pscprep/internal/ui/theme"
)

// conversationsLoadedMsg is sent when the thread listing arrives.
type conversationsLoadedMsg struct {
	Conversations []api.Conversation
	Err           error
}

// ChatListScreen lists the user's direct and group threads.
type ChatListScreen struct {
	client *api.Client
	log    *logrus.Entry

	menu   components.Menu
	loaded bool
	errMsg string
}

var _ screen.Screen = (*ChatListScreen)(nil)

// New creates a ChatListScreen.
func New(client *api.Client, log *logrus.Entry) *ChatListScreen {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &ChatListScreen{client: client, log: log}
}

func (c *ChatListScreen) Init() tea.Cmd {
	client := c.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		convs, err := client.Conversations(ctx)
		return conversationsLoadedMsg{Conversations: convs, Err: err}
	}
}

func (c *ChatListScreen) Title() string {
	return "Messages"
}

func (c *ChatListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case conversationsLoadedMsg:
		if msg.Err != nil {
			c.errMsg = msg.Err.Error()
			return c, nil
		}
		c.loaded = true
		c.menu = components.NewMenu(c.menuItems(msg.Conversations))
		return c, nil

	case tea.KeyMsg:
		if c.errMsg != "" {
			return c, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	if !c.loaded {
		return c, nil
	}
	var cmd tea.Cmd
	c.menu, cmd = c.menu.Update(msg)
	return c, cmd
}

func (c *ChatListScreen) menuItems(convs []api.Conversation) []components.MenuItem {
	items := make([]components.MenuItem, 0, len(convs))
	for _, conv := range convs {
		conv := conv
		label := conv.PeerName
		if conv.IsGroup {
			label = "# " + label
		}
		detail := ""
		if conv.Unread > 0 {
			detail = fmt.Sprintf("%d unread", conv.Unread)
		}
		items = append(items, components.MenuItem{
			Label:  label,
			Detail: detail,
			Action: func() tea.Cmd {
				client, log := c.client, c.log
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: chatthread.New(client, conv, log)}
				}
			},
		})
	}
	if len(items) == 0 {
		items = append(items, components.MenuItem{Label: "No conversations yet", Disabled: true})
	}
	return items
}

func (c *ChatListScreen) View(width, height int) string {
	if c.errMsg != "" {
		card := theme.Card.Render(
			lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("Could not load conversations") +
				"\n\n" + theme.Body.Render(c.errMsg) +
				"\n\n" + theme.Hint.Render("Press any key to go back"))
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
	}
	if !c.loaded {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Loading conversations..."))
	}

	card := theme.Card.Width(52).Render(c.menu.View())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
