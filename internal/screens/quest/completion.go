package quest

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/dbquest/internal/content"
	"github.com/abhisek/dbquest/internal/game"
	"github.com/abhisek/dbquest/internal/router"
	"github.com/abhisek/dbquest/internal/screen"
	"github.com/abhisek/dbquest/internal/ui/components"
	"github.com/abhisek/dbquest/internal/ui/layout"
	"github.com/abhisek/dbquest/internal/ui/theme"
)

// Review filters.
const (
	filterAll = iota
	filterIncorrect
	filterCorrect
)

const sparkleInterval = 200 * time.Millisecond

var sparkles = []string{"★", "✦", "✧", "･"}

// rank is the title tier shown on the completion screen.
type rank struct {
	emoji    string
	title    string
	message  string
	tint     color.Color
	confetti bool
}

// rankFor maps a capped score to its title tier.
func rankFor(score int) rank {
	switch {
	case score == game.MaxScore:
		return rank{"👑", "전설의 아키텍트", "완벽합니다! 데이터베이스 마스터시군요!", theme.Primary, true}
	case score >= 90:
		return rank{"🥇", "수석 연구원", "탁월한 실력입니다! 거의 완벽해요.", theme.Gold, true}
	case score >= 80:
		return rank{"🥈", "선임 연구원", "훌륭합니다! 안정적인 지식을 갖추셨네요.", theme.Silver, false}
	case score >= 70:
		return rank{"🥉", "전임 연구원", "기본기가 탄탄하시네요. 조금만 더 힘내세요!", theme.Bronze, false}
	default:
		return rank{"🌱", "수습 연구원", "시작이 반입니다! 다시 도전해보세요.", theme.TextDim, false}
	}
}

// CompletionScreen shows the run result: title tier, capped score, and
// the full review list with correct/incorrect filtering.
type CompletionScreen struct {
	deps *Deps

	filter int
	cursor int
	tick   int
	rank   rank
}

var _ screen.Screen = (*CompletionScreen)(nil)
var _ screen.KeyHintProvider = (*CompletionScreen)(nil)

// NewCompletionScreen builds the result screen. When any answer was
// wrong the review opens on the incorrect filter, otherwise on all.
func NewCompletionScreen(deps *Deps) *CompletionScreen {
	filter := filterAll
	for _, it := range deps.State.ReviewItems {
		if !it.IsCorrect {
			filter = filterIncorrect
			break
		}
	}
	return &CompletionScreen{
		deps:   deps,
		filter: filter,
		rank:   rankFor(deps.DisplayScore()),
	}
}

func (s *CompletionScreen) Init() tea.Cmd {
	if s.rank.confetti {
		return sparkleTick()
	}
	return nil
}

func (s *CompletionScreen) Title() string {
	return "미션 완료"
}

func (s *CompletionScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Filter"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "R", Description: "Next run"},
	}
}

func (s *CompletionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sparkleTickMsg:
		s.tick++
		if s.rank.confetti {
			return s, sparkleTick()
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "f":
			s.filter = (s.filter + 1) % 3
			s.cursor = 0
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.filtered())-1 {
				s.cursor++
			}
		case "r", "enter":
			return s.restart()
		}
	}
	return s, nil
}

// restart begins the next run at the raised difficulty, skipping the
// intro since name and credentials carry over.
func (s *CompletionScreen) restart() (screen.Screen, tea.Cmd) {
	s.deps.State.Restart()
	next := s.deps.screenFor(s.deps.State.Stage)
	return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (s *CompletionScreen) filtered() []game.ReviewItem {
	items := s.deps.State.ReviewItems
	if s.filter == filterAll {
		return items
	}
	wantCorrect := s.filter == filterCorrect
	out := make([]game.ReviewItem, 0, len(items))
	for _, it := range items {
		if it.IsCorrect == wantCorrect {
			out = append(out, it)
		}
	}
	return out
}

func sparkleTick() tea.Cmd {
	return tea.Tick(sparkleInterval, func(t time.Time) tea.Msg {
		return sparkleTickMsg(t)
	})
}

func (s *CompletionScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(s.renderHeader(cw))
	b.WriteString("\n")
	b.WriteString(s.renderFilterBar())
	b.WriteString("\n\n")
	b.WriteString(s.renderReview(cw, height))
	b.WriteString("\n")
	b.WriteString(s.renderRestart())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		components.Card(b.String(), cw))
}

func (s *CompletionScreen) renderHeader(cw int) string {
	var b strings.Builder

	title := fmt.Sprintf("%s  %s", s.rank.emoji, s.rank.title)
	if s.rank.confetti {
		f := sparkles[s.tick%len(sparkles)]
		title = f + " " + title + " " + f
	}

	b.WriteString(lipgloss.NewStyle().
		Foreground(s.rank.tint).
		Bold(true).
		Render(title) + "\n")
	b.WriteString(theme.Subtitle.Render(s.rank.message) + "\n\n")

	b.WriteString(theme.Body.Render(fmt.Sprintf(
		"%s님의 점수: %d / %d XP  (Level %d)",
		s.deps.State.PlayerName, s.deps.DisplayScore(), game.MaxScore, s.deps.State.Level)))
	b.WriteString("\n")
	return b.String()
}

func (s *CompletionScreen) renderFilterBar() string {
	items := s.deps.State.ReviewItems
	wrong := 0
	for _, it := range items {
		if !it.IsCorrect {
			wrong++
		}
	}

	labels := []string{
		fmt.Sprintf("전체 %d", len(items)),
		fmt.Sprintf("오답 %d", wrong),
		fmt.Sprintf("정답 %d", len(items)-wrong),
	}
	parts := make([]string, len(labels))
	for i, l := range labels {
		if i == s.filter {
			parts[i] = theme.Selected.Render("[" + l + "]")
		} else {
			parts[i] = theme.Unselected.Render(" " + l + " ")
		}
	}
	return strings.Join(parts, " ")
}

// renderReview shows a window of review items around the cursor; the
// selected item is expanded with answers and explanation.
func (s *CompletionScreen) renderReview(cw, height int) string {
	items := s.filtered()
	if len(items) == 0 {
		return theme.Hint.Render("해당하는 항목이 없습니다.")
	}

	// Rough window so tall expansions stay on screen.
	window := 5
	start := s.cursor - window/2
	if start < 0 {
		start = 0
	}
	end := start + window
	if end > len(items) {
		end = len(items)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		it := items[i]

		mark := theme.Correct.Render("O")
		if !it.IsCorrect {
			mark = theme.Incorrect.Render("X")
		}

		line := fmt.Sprintf("%s  %s", mark, it.Question)
		if i == s.cursor {
			b.WriteString(theme.Selected.Render("▸ ") + line + "\n")
			b.WriteString(s.renderDetail(it, cw))
		} else {
			b.WriteString("  " + line + "\n")
		}
	}

	if end < len(items) {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("  ... 외 %d개", len(items)-end)))
	}
	return b.String()
}

func (s *CompletionScreen) renderDetail(it game.ReviewItem, cw int) string {
	indent := "    "
	wrap := lipgloss.NewStyle().Width(cw - 10)

	var b strings.Builder
	b.WriteString(indent + theme.Hint.Render(it.Stage) + "\n")
	b.WriteString(indent + theme.Body.Render("내 답변: "+it.UserAnswer) + "\n")
	if !it.IsCorrect {
		b.WriteString(indent + theme.Body.Render("정답: "+it.CorrectAnswer) + "\n")
	}
	b.WriteString(indent + wrap.Foreground(theme.TextDim).Render(it.Explanation) + "\n")
	return b.String()
}

func (s *CompletionScreen) renderRestart() string {
	label := fmt.Sprintf("⚔️ 다음 레벨 도전하기 (Level %d)", s.deps.State.Level+1)
	if s.deps.State.Level >= content.MaxLevel {
		label = fmt.Sprintf("↺ 한 번 더 도전하기 (Level %d)", content.MaxLevel)
	}
	return theme.Hint.Render("R: " + label)
}
