package quest

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/dbquest/internal/game"
	"github.com/abhisek/dbquest/internal/screen"
	"github.com/abhisek/dbquest/internal/ui/components"
	"github.com/abhisek/dbquest/internal/ui/layout"
	"github.com/abhisek/dbquest/internal/ui/theme"
)

// The search demo contrasts a fixed full-scan duration with an indexed
// lookup. Both numbers are scripted, not measured.
const (
	fullScanMs   = 1200
	indexedMs    = 5
	scanTicks    = 12
	scanInterval = time.Duration(fullScanMs/scanTicks) * time.Millisecond
)

// Key mission phases.
const (
	keyPickPhase = iota
	keyScanPhase
	keyResultPhase
)

// KeyIndexScreen runs the third mission: choose the primary key of a
// table, then watch the index search demo.
type KeyIndexScreen struct {
	deps  *Deps
	round *game.KeyRound

	phase    int
	cursor   int
	flash    string
	scanDone int
}

var _ screen.Screen = (*KeyIndexScreen)(nil)
var _ screen.KeyHintProvider = (*KeyIndexScreen)(nil)

// NewKeyIndexScreen starts a key-selection round at the run's level.
func NewKeyIndexScreen(deps *Deps) *KeyIndexScreen {
	return &KeyIndexScreen{
		deps:  deps,
		round: game.NewKeyRound(deps.State.Level, deps.Rng),
	}
}

func (s *KeyIndexScreen) Init() tea.Cmd {
	return nil
}

func (s *KeyIndexScreen) Title() string {
	return "Mission 3: PK 선정"
}

func (s *KeyIndexScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case keyPickPhase:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Move"},
			{Key: "Enter", Description: "Select"},
		}
	case keyScanPhase:
		return []layout.KeyHint{}
	}
	return []layout.KeyHint{
		{Key: "any key", Description: "Continue"},
	}
}

func (s *KeyIndexScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case scanTickMsg:
		if s.phase != keyScanPhase {
			return s, nil
		}
		s.scanDone++
		if s.scanDone >= scanTicks {
			s.phase = keyResultPhase
			return s, nil
		}
		return s, scanTick()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *KeyIndexScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.phase {
	case keyPickPhase:
		cols := s.round.Scenario().Columns
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(cols)-1 {
				s.cursor++
			}
		case "enter":
			col := cols[s.cursor]
			if s.round.Pick(col.ID) {
				s.phase = keyScanPhase
				s.scanDone = 0
				return s, scanTick()
			}
			s.flash = fmt.Sprintf("'%s'은(는) 중복되거나 바뀔 수 있어 기본 키가 될 수 없습니다.", col.Label)
		}
		return s, nil

	case keyResultPhase:
		s.round.FinishIndexDemo()
		return s, s.deps.finishStage(s.round.Result())
	}

	return s, nil
}

func scanTick() tea.Cmd {
	return tea.Tick(scanInterval, func(t time.Time) tea.Msg {
		return scanTickMsg(t)
	})
}

func (s *KeyIndexScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var body string
	switch s.phase {
	case keyPickPhase:
		body = s.renderPick(cw)
	case keyScanPhase:
		body = s.renderScan(cw)
	case keyResultPhase:
		body = s.renderResult(cw)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		components.Card(body, cw))
}

func (s *KeyIndexScreen) renderPick(cw int) string {
	sc := s.round.Scenario()

	var b strings.Builder
	b.WriteString(theme.Subtitle.Render(sc.Title) + "\n\n")
	b.WriteString(theme.Body.Render("각 행을 유일하게 식별할 기본 키(PK) 열을 고르세요.") + "\n\n")

	for i, col := range sc.Columns {
		line := fmt.Sprintf("%s  (예: %s)", col.Label, col.Sample)
		if i == s.cursor {
			b.WriteString(theme.Selected.Render("▸ "+line) + "\n")
		} else {
			b.WriteString(theme.Unselected.Render("  "+line) + "\n")
		}
	}

	if s.flash != "" {
		b.WriteString("\n" + theme.Incorrect.Render(s.flash))
	}
	return b.String()
}

func (s *KeyIndexScreen) renderScan(cw int) string {
	sc := s.round.Scenario()

	var b strings.Builder
	b.WriteString(theme.Subtitle.Render("인덱스 없이 검색 중...") + "\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("'%s' 값을 찾기 위해 모든 행을 확인합니다.", sc.SearchTarget)) + "\n\n")

	pct := float64(s.scanDone) / float64(scanTicks)
	bar := components.NewProgressBar("Full Scan", pct, true, cw-8)
	b.WriteString(bar.View())
	return b.String()
}

func (s *KeyIndexScreen) renderResult(cw int) string {
	pk, _ := s.round.Scenario().PKColumn()

	var b strings.Builder
	b.WriteString(theme.Correct.Render("기본 키: "+pk.Label) + "\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("전체 스캔:   %d ms", fullScanMs)) + "\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("인덱스 사용: %d ms", indexedMs)) + "\n\n")
	b.WriteString(theme.Body.Render("기본 키에는 자동으로 인덱스가 생성되어, 찾아가는 주소록처럼 바로 원하는 행에 도달합니다.") + "\n\n")
	b.WriteString(theme.Hint.Render("아무 키나 눌러 다음 미션으로"))
	return b.String()
}
