package quest

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/dbquest/internal/game"
	"github.com/abhisek/dbquest/internal/screen"
	"github.com/abhisek/dbquest/internal/ui/components"
	"github.com/abhisek/dbquest/internal/ui/layout"
	"github.com/abhisek/dbquest/internal/ui/theme"
)

// MatchScreen runs the second mission: match spreadsheet terms to their
// database counterparts. The left column picks a term, the right column
// picks its translation; wrong pairings can be retried.
type MatchScreen struct {
	deps  *Deps
	board *game.MatchBoard

	onRight bool
	cursor  int
	flash   string
	flashOK bool
}

var _ screen.Screen = (*MatchScreen)(nil)
var _ screen.KeyHintProvider = (*MatchScreen)(nil)

// NewMatchScreen starts a matching board at the run's level.
func NewMatchScreen(deps *Deps) *MatchScreen {
	return &MatchScreen{
		deps:  deps,
		board: game.NewMatchBoard(deps.State.Level, deps.Rng),
	}
}

func (s *MatchScreen) Init() tea.Cmd {
	return nil
}

func (s *MatchScreen) Title() string {
	return "Mission 2: 용어 매칭"
}

func (s *MatchScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Select"},
	}
}

func (s *MatchScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < s.columnLen()-1 {
			s.cursor++
		}
	case "esc":
		if s.onRight {
			s.onRight = false
			s.cursor = 0
		}
	case "enter":
		return s.choose()
	}
	return s, nil
}

func (s *MatchScreen) columnLen() int {
	if s.onRight {
		return len(s.board.Rights())
	}
	return len(s.board.Pairs())
}

func (s *MatchScreen) choose() (screen.Screen, tea.Cmd) {
	if !s.onRight {
		pair := s.board.Pairs()[s.cursor]
		if !s.board.SelectLeft(pair.ID) {
			return s, nil
		}
		s.onRight = true
		s.cursor = 0
		s.flash = ""
		return s, nil
	}

	card := s.board.Rights()[s.cursor]
	switch s.board.SelectRight(card.PairID) {
	case game.MatchLocked:
		s.flash = "정답! 짝을 맞췄습니다."
		s.flashOK = true
	case game.MatchMiss:
		s.flash = "오답! 다시 시도하세요."
		s.flashOK = false
	}
	s.onRight = false
	s.cursor = 0

	if s.board.Complete() {
		return s, s.deps.finishStage(s.board.Result())
	}
	return s, nil
}

func (s *MatchScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	colWidth := (cw - 10) / 2

	var b strings.Builder
	b.WriteString(theme.Subtitle.Render("엑셀 용어를 DB 용어와 짝지어 보세요") + "\n\n")

	left := s.renderColumn(true, colWidth)
	right := s.renderColumn(false, colWidth)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right))
	b.WriteString("\n")

	if s.flash != "" {
		style := theme.Incorrect
		if s.flashOK {
			style = theme.Correct
		}
		b.WriteString("\n" + style.Render(s.flash))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		components.Card(b.String(), cw))
}

func (s *MatchScreen) renderColumn(isLeft bool, colWidth int) string {
	var b strings.Builder

	header := "엑셀"
	if !isLeft {
		header = "데이터베이스"
	}
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Width(colWidth).
		Align(lipgloss.Center).
		Render(header) + "\n")

	active := s.onRight != isLeft
	for i := range s.board.Pairs() {
		var id, label string
		if isLeft {
			p := s.board.Pairs()[i]
			id, label = p.ID, p.Left
		} else {
			c := s.board.Rights()[i]
			id, label = c.PairID, c.Text
		}

		switch {
		case s.board.Locked(id):
			label = "✓ " + label
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Success).
				Width(colWidth).
				Render(label) + "\n")
		case isLeft && s.board.SelectedLeft() == id:
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Gold).
				Bold(true).
				Width(colWidth).
				Render("▸ "+label) + "\n")
		case active && i == s.cursor:
			b.WriteString(theme.Selected.Width(colWidth).Render("▸ "+label) + "\n")
		default:
			b.WriteString(theme.Unselected.Width(colWidth).Render("  "+label) + "\n")
		}
	}

	locked := 0
	for _, p := range s.board.Pairs() {
		if s.board.Locked(p.ID) {
			locked++
		}
	}
	if isLeft {
		b.WriteString("\n" + theme.Hint.Render(
			fmt.Sprintf("%d / %d 완료", locked, len(s.board.Pairs()))))
	}

	return b.String()
}
