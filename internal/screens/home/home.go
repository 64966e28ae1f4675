package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/avelk/marketmath/internal/router"
	"github.com/avelk/marketmath/internal/screen"
	quizscreen "github.com/avelk/marketmath/internal/screens/quiz"
	sess "github.com/avelk/marketmath/internal/session"
	"github.com/avelk/marketmath/internal/ui/components"
	"github.com/avelk/marketmath/internal/ui/theme"
)

const banner = `
╔╦╗╔═╗╦═╗╦╔═╔═╗╔╦╗╔╦╗╔═╗╔╦╗╦ ╦
║║║╠═╣╠╦╝╠╩╗║╣  ║ ║║║╠═╣ ║ ╠═╣
╩ ╩╩ ╩╩╚═╩ ╩╚═╝ ╩ ╩ ╩╩ ╩ ╩ ╩ ╩
`

// HomeScreen is the entry screen of the application.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. The session and load notice are forwarded
// to the quiz screen when the player starts.
func New(session *sess.Session, notice string) *HomeScreen {
	items := []components.MenuItem{
		{Label: "START QUIZ", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quizscreen.New(session, notice)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render(banner))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Price-per-unit word problems, one stall at a time"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	return b.String()
}
