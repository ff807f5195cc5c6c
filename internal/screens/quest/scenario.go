package quest

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/dbquest/internal/content"
	"github.com/abhisek/dbquest/internal/game"
	"github.com/abhisek/dbquest/internal/screen"
	"github.com/abhisek/dbquest/internal/ui/components"
	"github.com/abhisek/dbquest/internal/ui/layout"
	"github.com/abhisek/dbquest/internal/ui/theme"
)

// ScenarioScreen runs the final mission: pick the right database
// technology for a situation. One shot per scenario, no retry.
type ScenarioScreen struct {
	deps  *Deps
	round *game.ScenarioRound

	cursor      int
	feedback    bool
	lastCorrect bool
	lastSc      content.TechScenario
}

var _ screen.Screen = (*ScenarioScreen)(nil)
var _ screen.KeyHintProvider = (*ScenarioScreen)(nil)

// NewScenarioScreen starts a scenario round at the run's level.
func NewScenarioScreen(deps *Deps) *ScenarioScreen {
	return &ScenarioScreen{
		deps:  deps,
		round: game.NewScenarioRound(deps.State.Level, deps.Rng),
	}
}

func (s *ScenarioScreen) Init() tea.Cmd {
	return nil
}

func (s *ScenarioScreen) Title() string {
	return "Final Mission: 기술 선정"
}

func (s *ScenarioScreen) KeyHints() []layout.KeyHint {
	if s.feedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Select"},
	}
}

func (s *ScenarioScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.feedback {
		s.feedback = false
		if s.round.Done() {
			return s, s.deps.finishStage(s.round.Result())
		}
		s.cursor = 0
		return s, nil
	}

	sc, ok := s.round.Current()
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(sc.Options)-1 {
			s.cursor++
		}
	case "enter":
		s.lastSc = sc
		s.lastCorrect = s.round.Choose(s.cursor)
		s.feedback = true
	}
	return s, nil
}

func (s *ScenarioScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var body string
	if s.feedback {
		body = s.renderFeedback()
	} else {
		body = s.renderQuestion(cw)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		components.Card(body, cw))
}

func (s *ScenarioScreen) renderQuestion(cw int) string {
	sc, ok := s.round.Current()
	if !ok {
		return ""
	}
	answered, total := s.round.Progress()

	var b strings.Builder
	b.WriteString(theme.Subtitle.Render(
		"시나리오 "+progressDots(answered, total)) + "\n\n")
	b.WriteString(theme.Body.Bold(true).Render(sc.Prompt) + "\n\n")

	for i, opt := range sc.Options {
		b.WriteString(components.ChoiceButton(opt.Label, i == s.cursor, cw-8) + "\n")
	}
	return b.String()
}

func (s *ScenarioScreen) renderFeedback() string {
	var b strings.Builder
	if s.lastCorrect {
		b.WriteString(theme.Correct.Render("정답!") + "\n\n")
	} else {
		b.WriteString(theme.Incorrect.Render("오답...") + "\n")
		b.WriteString(theme.Body.Render("정답: "+s.lastSc.CorrectOption()) + "\n\n")
	}
	b.WriteString(theme.Body.Render(s.lastSc.Explanation) + "\n\n")
	b.WriteString(theme.Hint.Render("아무 키나 눌러 계속"))
	return b.String()
}

// progressDots renders position as filled and hollow markers, e.g. ●○.
func progressDots(done, total int) string {
	return strings.Repeat("●", done+1) + strings.Repeat("○", total-done-1)
}
