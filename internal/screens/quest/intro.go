package quest

import (
	"context"
	"errors"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/dbquest/internal/game"
	"github.com/abhisek/dbquest/internal/grading"
	"github.com/abhisek/dbquest/internal/llm"
	"github.com/abhisek/dbquest/internal/router"
	"github.com/abhisek/dbquest/internal/screen"
	"github.com/abhisek/dbquest/internal/ui/components"
	"github.com/abhisek/dbquest/internal/ui/layout"
	"github.com/abhisek/dbquest/internal/ui/theme"
)

// providers lists the selectable grading backends.
var providers = []string{"gemini", "openai", "anthropic", "openrouter"}

// Focus targets of the intro form, in tab order.
const (
	focusName = iota
	focusProvider
	focusKey
	focusStart
)

// IntroScreen collects the player name, grading provider and API key
// before the first mission.
type IntroScreen struct {
	deps        *Deps
	name        components.TextInput
	key         components.TextInput
	providerIdx int
	focus       int
	errMsg      string
}

var _ screen.Screen = (*IntroScreen)(nil)
var _ screen.KeyHintProvider = (*IntroScreen)(nil)

// NewIntroScreen creates the intro form. A key found in the standard
// environment variables prefills the provider and key fields.
func NewIntroScreen(deps *Deps) *IntroScreen {
	name := components.NewTextInput("이름 입력", false, 20)
	key := components.NewTextInput("API Key 입력", false, 120)
	key.Model.EchoMode = textinput.EchoPassword
	key.Blur()

	s := &IntroScreen{
		deps: deps,
		name: name,
		key:  key,
	}

	if cfg, ok := llm.DiscoverConfig(); ok {
		for i, p := range providers {
			if p == cfg.Provider {
				s.providerIdx = i
			}
		}
		s.key.Model.SetValue(apiKeyOf(cfg))
	}
	return s
}

func apiKeyOf(cfg llm.Config) string {
	switch cfg.Provider {
	case "anthropic":
		return cfg.Anthropic.APIKey
	case "openai":
		return cfg.OpenAI.APIKey
	case "gemini":
		return cfg.Gemini.APIKey
	case "openrouter":
		return cfg.OpenRouter.APIKey
	}
	return ""
}

func (s *IntroScreen) Init() tea.Cmd {
	return s.name.Focus()
}

func (s *IntroScreen) Title() string {
	return "Welcome"
}

func (s *IntroScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "←→", Description: "Provider"},
		{Key: "Enter", Description: "Start"},
	}
}

func (s *IntroScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s.forwardToInput(msg)
	}

	switch kmsg.String() {
	case "tab", "down":
		return s, s.setFocus(s.focus + 1)
	case "shift+tab", "up":
		return s, s.setFocus(s.focus - 1)
	case "left":
		if s.focus == focusProvider {
			s.providerIdx = (s.providerIdx + len(providers) - 1) % len(providers)
			return s, nil
		}
	case "right":
		if s.focus == focusProvider {
			s.providerIdx = (s.providerIdx + 1) % len(providers)
			return s, nil
		}
	case "enter":
		if s.focus == focusStart {
			return s.start()
		}
		return s, s.setFocus(s.focus + 1)
	}

	return s.forwardToInput(msg)
}

// setFocus moves keyboard focus, wrapping around the form.
func (s *IntroScreen) setFocus(target int) tea.Cmd {
	s.focus = (target + 4) % 4
	s.name.Blur()
	s.key.Blur()
	switch s.focus {
	case focusName:
		return s.name.Focus()
	case focusKey:
		return s.key.Focus()
	}
	return nil
}

func (s *IntroScreen) forwardToInput(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	switch s.focus {
	case focusName:
		s.name, cmd = s.name.Update(msg)
	case focusKey:
		s.key, cmd = s.key.Update(msg)
	}
	return s, cmd
}

// start validates the form, builds the grader, and enters the first
// mission. Provider construction failure is not fatal: grading then
// degrades to the keyless fallback.
func (s *IntroScreen) start() (screen.Screen, tea.Cmd) {
	if s.name.Value() == "" {
		s.errMsg = "이름을 입력해주세요."
		return s, nil
	}

	creds := game.Credentials{
		Provider: providers[s.providerIdx],
		APIKey:   strings.TrimSpace(s.key.Value()),
	}

	if err := s.deps.State.SubmitIntro(s.name.Value(), creds); err != nil {
		if errors.Is(err, game.ErrKeyTooShort) {
			s.errMsg = "API Key는 10자 이상이어야 합니다."
		} else {
			s.errMsg = err.Error()
		}
		return s, nil
	}

	var provider llm.Provider
	if creds.HasKey() {
		cfg := llm.ConfigForKey(creds.Provider, creds.APIKey)
		if p, err := llm.NewProvider(context.Background(), cfg, s.deps.Events); err == nil {
			provider = p
		}
	}
	s.deps.Grader = grading.NewGrader(provider, grading.DefaultGraderConfig())

	next := s.deps.screenFor(s.deps.State.Stage)
	return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (s *IntroScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("DB QUEST")
	subtitle := theme.Subtitle.Render("엑셀은 아는데 DB는 처음인 당신을 위한 미션")

	var b strings.Builder
	b.WriteString(title + "\n" + subtitle + "\n\n")

	b.WriteString(fieldLabel("이름", s.focus == focusName))
	b.WriteString(s.name.View() + "\n\n")

	b.WriteString(fieldLabel("AI 채점 제공자", s.focus == focusProvider))
	b.WriteString(s.renderProviderPicker() + "\n\n")

	b.WriteString(fieldLabel("API Key", s.focus == focusKey))
	b.WriteString(s.key.View() + "\n")
	b.WriteString(theme.Hint.Render("* 주관식 채점에 개인 API Key를 사용합니다.") + "\n\n")

	b.WriteString(components.ChoiceButton("미션 시작", s.focus == focusStart, 24) + "\n")

	if s.errMsg != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}

	card := components.Card(b.String(), cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (s *IntroScreen) renderProviderPicker() string {
	parts := make([]string, len(providers))
	for i, p := range providers {
		if i == s.providerIdx {
			parts[i] = theme.Selected.Render("[" + p + "]")
		} else {
			parts[i] = theme.Unselected.Render(" " + p + " ")
		}
	}
	return strings.Join(parts, "  ")
}

func fieldLabel(label string, focused bool) string {
	style := lipgloss.NewStyle().Foreground(theme.TextDim)
	if focused {
		style = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	}
	return style.Render(label) + "\n"
}
