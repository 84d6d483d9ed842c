package feed

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/sirupsen/logrus"

	"github.com/Adarsh-oo7/pscprep/internal/api"
	"github.com/Adarsh-oo7/pscprep/internal/cache"
	"github.com/Adarsh-oo7/pscprep/internal/router"
	"github.com/Adarsh-oo7/pscprep/internal/screen"
	"github.com/Adarsh-oo7/pscprep/internal/ui/layout"
	"github.com/Adarsh-oo7/pscprep/internal/ui/theme"
)

// postsLoadedMsg is sent when a feed fetch completes.
type postsLoadedMsg struct {
	Posts []api.Post
	Err   error
}

// toggleDoneMsg is sent when a like/bookmark write completes. The feed
// is re-fetched either way so the server state wins.
type toggleDoneMsg struct {
	Err error
}

// FeedScreen shows the community feed with optimistic like/bookmark
// toggles.
type FeedScreen struct {
	client *api.Client
	log    *logrus.Entry

	overlay cache.Overlay[[]api.Post]
	cursor  int
	loaded  bool
	errMsg  string
}

var _ screen.Screen = (*FeedScreen)(nil)
var _ screen.KeyHintProvider = (*FeedScreen)(nil)

// New creates a FeedScreen.
func New(client *api.Client, log *logrus.Entry) *FeedScreen {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &FeedScreen{client: client, log: log}
}

func (f *FeedScreen) Init() tea.Cmd {
	return f.fetch()
}

func (f *FeedScreen) Title() string {
	return "Community"
}

func (f *FeedScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "L", Description: "Like"},
		{Key: "B", Description: "Bookmark"},
		{Key: "R", Description: "Refresh"},
		{Key: "Esc", Description: "Back"},
	}
}

func (f *FeedScreen) fetch() tea.Cmd {
	client := f.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		posts, err := client.Posts(ctx)
		return postsLoadedMsg{Posts: posts, Err: err}
	}
}

func (f *FeedScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case postsLoadedMsg:
		if msg.Err != nil {
			if !f.loaded {
				f.errMsg = msg.Err.Error()
			}
			// A failed refresh keeps the last snapshot on screen.
			f.log.WithError(msg.Err).Warn("feed refresh failed")
			return f, nil
		}
		f.loaded = true
		f.errMsg = ""
		f.overlay.Confirm(msg.Posts)
		f.clampCursor()
		return f, nil

	case toggleDoneMsg:
		if msg.Err != nil {
			f.log.WithError(msg.Err).Warn("feed toggle failed")
		}
		// Re-fetch reconciles the optimistic patch with the truth.
		return f, f.fetch()

	case tea.KeyMsg:
		return f.handleKey(msg.String())
	}

	return f, nil
}

func (f *FeedScreen) handleKey(key string) (screen.Screen, tea.Cmd) {
	if f.errMsg != "" {
		return f, func() tea.Msg { return router.PopScreenMsg{} }
	}

	switch key {
	case "up", "k":
		if f.cursor > 0 {
			f.cursor--
		}
	case "down", "j":
		posts, _ := f.overlay.Value()
		if f.cursor < len(posts)-1 {
			f.cursor++
		}
	case "l", "L":
		return f, f.toggle(togglePatchLike, f.client.ToggleLike)
	case "b", "B":
		return f, f.toggle(togglePatchBookmark, f.client.ToggleBookmark)
	case "r", "R":
		return f, f.fetch()
	}
	return f, nil
}

// toggle applies an optimistic patch to the post under the cursor and
// fires the write.
func (f *FeedScreen) toggle(patch func([]api.Post, string) []api.Post, write func(context.Context, string) error) tea.Cmd {
	posts, ok := f.overlay.Value()
	if !ok || f.cursor >= len(posts) {
		return nil
	}
	id := posts[f.cursor].ID

	f.overlay.Apply(func(ps []api.Post) []api.Post {
		return patch(ps, id)
	})

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return toggleDoneMsg{Err: write(ctx, id)}
	}
}

func togglePatchLike(posts []api.Post, id string) []api.Post {
	out := make([]api.Post, len(posts))
	copy(out, posts)
	for i := range out {
		if out[i].ID == id {
			if out[i].Liked {
				out[i].Liked = false
				out[i].Likes--
			} else {
				out[i].Liked = true
				out[i].Likes++
			}
		}
	}
	return out
}

func togglePatchBookmark(posts []api.Post, id string) []api.Post {
	out := make([]api.Post, len(posts))
	copy(out, posts)
	for i := range out {
		if out[i].ID == id {
			out[i].Bookmarked = !out[i].Bookmarked
		}
	}
	return out
}

func (f *FeedScreen) clampCursor() {
	posts, _ := f.overlay.Value()
	if f.cursor >= len(posts) {
		f.cursor = len(posts) - 1
	}
	if f.cursor < 0 {
		f.cursor = 0
	}
}

func (f *FeedScreen) View(width, height int) string {
	if f.errMsg != "" {
		card := theme.Card.Render(
			lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("Could not load the feed") +
				"\n\n" + theme.Body.Render(f.errMsg) +
				"\n\n" + theme.Hint.Render("Press any key to go back"))
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
	}

	posts, ok := f.overlay.Value()
	if !ok {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Loading feed..."))
	}
	if len(posts) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Nothing here yet"))
	}

	cw := width - 8
	if cw > 72 {
		cw = 72
	}

	var b strings.Builder
	for i, p := range posts {
		b.WriteString(f.renderPost(p, i == f.cursor, cw))
		b.WriteString("\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, b.String())
}

func (f *FeedScreen) renderPost(p api.Post, selected bool, cw int) string {
	author := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(p.Author)
	age := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(" · " + p.CreatedAt.Local().Format("Jan 2 15:04"))

	body := lipgloss.NewStyle().Foreground(theme.Text).Width(cw - 6).Render(p.Body)

	like := "♡"
	likeStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if p.Liked {
		like = "♥"
		likeStyle = lipgloss.NewStyle().Foreground(theme.Error)
	}
	mark := " "
	if p.Bookmarked {
		mark = lipgloss.NewStyle().Foreground(theme.Accent).Render("⚑")
	}

	meta := likeStyle.Render(fmt.Sprintf("%s %d", like, p.Likes)) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("   💬 %d   ", p.Comments)) +
		mark

	card := theme.Card.Width(cw)
	if selected {
		card = card.BorderForeground(theme.Primary)
	}
	return card.Render(author + age + "\n" + body + "\n\n" + meta)
}
