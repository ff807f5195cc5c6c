package quest

import (
	"context"
	"fmt"
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

// Classify mission phases.
const (
	classifyCards = iota
	classifyCardFeedback
	classifyEssayInput
	classifyEssayWait
	classifyEssayFeedback
)

// ClassifyScreen runs the first mission: sort data descriptions into
// RAM or DISK, then answer a free-text question graded by the LLM.
type ClassifyScreen struct {
	deps  *Deps
	round *game.ClassifyRound

	phase       int
	selected    int // 0 = RAM, 1 = DISK
	lastItem    content.ClassificationItem
	lastCorrect bool
	input       components.TextInput
	verdict     string
	verdictOK   bool
}

var _ screen.Screen = (*ClassifyScreen)(nil)
var _ screen.KeyHintProvider = (*ClassifyScreen)(nil)

// NewClassifyScreen starts a classification round at the run's level.
func NewClassifyScreen(deps *Deps) *ClassifyScreen {
	return &ClassifyScreen{
		deps:  deps,
		round: game.NewClassifyRound(deps.State.Level, deps.Rng),
		input: components.NewTextInput("답변을 입력하세요...", false, 200),
	}
}

func (s *ClassifyScreen) Init() tea.Cmd {
	return nil
}

func (s *ClassifyScreen) Title() string {
	return "Mission 1: RAM vs DISK"
}

func (s *ClassifyScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case classifyCards:
		return []layout.KeyHint{
			{Key: "←→", Description: "Choose"},
			{Key: "Enter", Description: "Submit"},
		}
	case classifyEssayInput:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
		}
	case classifyEssayWait:
		return []layout.KeyHint{}
	}
	return []layout.KeyHint{
		{Key: "any key", Description: "Continue"},
	}
}

func (s *ClassifyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case essayGradedMsg:
		s.round.GradeEssay(msg.Answer, msg.Verdict.IsCorrect, msg.Verdict.Feedback)
		s.verdict = msg.Verdict.Feedback
		s.verdictOK = msg.Verdict.IsCorrect
		s.phase = classifyEssayFeedback
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.phase == classifyEssayInput {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *ClassifyScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.phase {
	case classifyCards:
		switch msg.String() {
		case "left", "h", "1":
			s.selected = 0
		case "right", "l", "2":
			s.selected = 1
		case "enter":
			return s.submitCard()
		}
		return s, nil

	case classifyCardFeedback:
		if s.round.ItemsDone() {
			s.phase = classifyEssayInput
			return s, s.input.Focus()
		}
		s.phase = classifyCards
		return s, nil

	case classifyEssayInput:
		if msg.String() == "enter" {
			return s.submitEssay()
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd

	case classifyEssayFeedback:
		return s, s.deps.finishStage(s.round.Result())
	}

	return s, nil
}

func (s *ClassifyScreen) submitCard() (screen.Screen, tea.Cmd) {
	item, ok := s.round.Current()
	if !ok {
		return s, nil
	}

	choice := content.StorageRAM
	if s.selected == 1 {
		choice = content.StorageDisk
	}

	s.lastItem = item
	s.lastCorrect = s.round.Answer(choice)
	s.phase = classifyCardFeedback
	return s, nil
}

func (s *ClassifyScreen) submitEssay() (screen.Screen, tea.Cmd) {
	answer := strings.TrimSpace(s.input.Value())
	if answer == "" {
		return s, nil
	}

	s.phase = classifyEssayWait
	grader := s.deps.Grader
	prompt := s.round.Essay()
	return s, func() tea.Msg {
		v := grader.Evaluate(context.Background(), prompt, answer)
		return essayGradedMsg{Answer: answer, Verdict: v}
	}
}

func (s *ClassifyScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var body string
	switch s.phase {
	case classifyCards:
		body = s.renderCard(cw)
	case classifyCardFeedback:
		body = s.renderCardFeedback(cw)
	case classifyEssayInput:
		body = s.renderEssay(cw, false)
	case classifyEssayWait:
		body = s.renderEssay(cw, true)
	case classifyEssayFeedback:
		body = s.renderEssayFeedback(cw)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		components.Card(body, cw))
}

func (s *ClassifyScreen) renderCard(cw int) string {
	item, ok := s.round.Current()
	if !ok {
		return ""
	}
	answered, total := s.round.Progress()

	var b strings.Builder
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("카드 %d / %d", answered+1, total)) + "\n\n")
	b.WriteString(theme.Body.Bold(true).Render(item.Text) + "\n\n")
	b.WriteString(theme.Hint.Render("이 데이터는 어디에 두어야 할까요?") + "\n\n")

	ram := components.ChoiceButton("⚡ RAM (휘발성)", s.selected == 0, (cw-8)/2)
	disk := components.ChoiceButton("💾 DISK (영구 저장)", s.selected == 1, (cw-8)/2)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, ram, "  ", disk))

	return b.String()
}

func (s *ClassifyScreen) renderCardFeedback(cw int) string {
	var b strings.Builder
	if s.lastCorrect {
		b.WriteString(theme.Correct.Render("정답!") + "\n\n")
	} else {
		b.WriteString(theme.Incorrect.Render("오답...") + "\n")
		b.WriteString(theme.Body.Render(fmt.Sprintf("정답은 %s입니다.", s.lastItem.Answer)) + "\n\n")
	}
	b.WriteString(theme.Body.Render(s.lastItem.Explanation) + "\n\n")
	b.WriteString(theme.Hint.Render("아무 키나 눌러 계속"))
	return b.String()
}

func (s *ClassifyScreen) renderEssay(cw int, waiting bool) string {
	essay := s.round.Essay()

	var b strings.Builder
	b.WriteString(theme.Subtitle.Render("심화 질문") + "\n\n")
	b.WriteString(theme.Body.Bold(true).Render(essay.Question) + "\n\n")
	b.WriteString(s.input.View() + "\n\n")
	if waiting {
		b.WriteString(theme.Hint.Render("AI가 답변을 분석하고 있습니다..."))
	} else {
		b.WriteString(theme.Hint.Render("자유롭게 서술한 뒤 Enter"))
	}
	return b.String()
}

func (s *ClassifyScreen) renderEssayFeedback(cw int) string {
	essay := s.round.Essay()

	var b strings.Builder
	if s.verdictOK {
		b.WriteString(theme.Correct.Render("정답 처리!") + "\n\n")
	} else {
		b.WriteString(theme.Incorrect.Render("아쉬워요") + "\n\n")
	}
	b.WriteString(theme.Body.Render(s.verdict) + "\n\n")
	b.WriteString(theme.Hint.Render("모범 답안: "+essay.ModelAnswer) + "\n\n")
	b.WriteString(theme.Hint.Render("아무 키나 눌러 다음 미션으로"))
	return b.String()
}
