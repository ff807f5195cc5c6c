package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/abhisek/dbquest/internal/content"
	"github.com/abhisek/dbquest/internal/game"
	"github.com/abhisek/dbquest/internal/router"
	"github.com/abhisek/dbquest/internal/screen"
	"github.com/abhisek/dbquest/internal/screens/quest"
	"github.com/abhisek/dbquest/internal/store"
	"github.com/abhisek/dbquest/internal/ui/layout"
)

// Options carries the services built at startup. The grading provider
// is not among them: the intro screen constructs it from the player's
// own credentials.
type Options struct {
	Events store.EventRepo
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	deps   *quest.Deps
	width  int
	height int
}

// newAppModel creates a fresh run starting at the intro form.
func newAppModel(opts Options) AppModel {
	deps := &quest.Deps{
		State:  game.NewState(uuid.NewString()),
		Events: opts.Events,
		Rng:    content.NewRand(),
	}
	return AppModel{
		router: router.New(quest.NewIntroScreen(deps)),
		deps:   deps,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.deps.DisplayScore(), m.deps.State.Level, m.width)

	hints := []layout.KeyHint{}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		hints = append(hints, hp.KeyHints()...)
	}
	hints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	footer := layout.RenderFooter(hints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
