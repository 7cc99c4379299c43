package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"rainythoughts/internal/content"
	"rainythoughts/internal/engine"
	"rainythoughts/internal/narrative"
	"rainythoughts/internal/storage"
	"rainythoughts/internal/ui"
)

type battlePhase int

const (
	phaseStarting battlePhase = iota
	phasePreBattle
	phaseBattle
	phaseQuality
	phaseAllocate
	phaseResult
	phaseDefeat
)

type battleModel struct {
	ctx context.Context
	svc *engine.Service
	gen narrative.Generator

	characterID string
	minutes     int
	ch          *content.Character
	enemy       *storage.Enemy
	phase       battlePhase

	bar   progress.Model
	taunt string

	// tickGen invalidates in-flight tick commands. Pause bumps it so the
	// countdown and taunt loops die; resume bumps it again and starts the
	// single replacement loop. A tick carrying a stale gen is dropped.
	tickGen int

	quality  int
	budget   int
	alloc    [4]int
	cursor   int
	result   *engine.SettleResult
	width    int
	lastNote string
	err      error
}

type startedMsg struct {
	start *engine.BattleStart
	err   error
}

type tauntMsg struct {
	kind narrative.Kind
	text string
}

type countdownTickMsg struct {
	gen int
}

type tauntTickMsg struct {
	gen int
}

type settledMsg struct {
	res *engine.SettleResult
	err error
}

func newBattleModel(ctx context.Context, svc *engine.Service, gen narrative.Generator, characterID string, minutes int) battleModel {
	return battleModel{
		ctx:         ctx,
		svc:         svc,
		gen:         gen,
		characterID: characterID,
		minutes:     minutes,
		ch:          content.ByID(characterID),
		phase:       phaseStarting,
		bar:         progress.New(progress.WithDefaultGradient()),
		quality:     engine.MaxQuality,
	}
}

func (m battleModel) Init() tea.Cmd {
	return m.startCmd()
}

func (m battleModel) startCmd() tea.Cmd {
	return func() tea.Msg {
		start, err := m.svc.StartBattle(m.ctx, m.characterID, m.minutes)
		return startedMsg{start: start, err: err}
	}
}

func (m battleModel) tauntCmd(kind narrative.Kind) tea.Cmd {
	defeats := 0
	if m.enemy != nil {
		defeats = m.enemy.Defeats
	}
	return func() tea.Msg {
		text, err := m.gen.Generate(m.ctx, m.ch, kind, defeats)
		if err != nil {
			return tauntMsg{kind: kind}
		}
		return tauntMsg{kind: kind, text: text}
	}
}

func (m battleModel) settleCmd() tea.Cmd {
	in := engine.SettleInput{
		Quality: m.quality,
		Allocated: storage.StatBlock{
			Wealth:   m.alloc[0],
			Strength: m.alloc[1],
			Wisdom:   m.alloc[2],
			Luck:     m.alloc[3],
		},
	}
	return func() tea.Msg {
		res, err := m.svc.SettleBattle(m.ctx, in)
		return settledMsg{res: res, err: err}
	}
}

func countdownTick(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return countdownTickMsg{gen: gen}
	})
}

func (m battleModel) tauntTick(gen int) tea.Cmd {
	return tea.Tick(m.svc.Timer().NextTauntDelay(), func(time.Time) tea.Msg {
		return tauntTickMsg{gen: gen}
	})
}

func (m battleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = msg.Width - 8
		return m, nil

	case startedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.enemy = msg.start.Enemy
		m.phase = phasePreBattle
		m.svc.Timer().EnterPreBattle()
		return m, m.tauntCmd(narrative.KindPreBattle)

	case tauntMsg:
		if msg.text != "" {
			m.taunt = msg.text
		}
		return m, nil

	case countdownTickMsg:
		if msg.gen != m.tickGen || m.phase != phaseBattle || m.svc.Timer().Paused() {
			return m, nil
		}
		if m.svc.Timer().Tick() {
			m.phase = phaseQuality
			return m, nil
		}
		return m, countdownTick(m.tickGen)

	case tauntTickMsg:
		if msg.gen != m.tickGen || m.phase != phaseBattle || m.svc.Timer().Paused() {
			return m, nil
		}
		return m, tea.Batch(m.tauntCmd(narrative.KindMidBattle), m.tauntTick(m.tickGen))

	case settledMsg:
		if msg.err != nil {
			m.lastNote = msg.err.Error()
			m.phase = phaseAllocate
			return m, nil
		}
		m.result = msg.res
		enemy := msg.res.Enemy
		m.enemy = &enemy
		m.phase = phaseResult
		if msg.res.Retired {
			// The final words are fixed content, not generated.
			return m, nil
		}
		return m, m.tauntCmd(resultKind(msg.res))

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func resultKind(res *engine.SettleResult) narrative.Kind {
	if res.EnemyDefeated {
		return narrative.KindEnemyDefeated
	}
	return narrative.KindVictory
}

func (m battleModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		// Any phase before settlement still holds the persisted session;
		// leaving it behind would block every future battle.
		switch m.phase {
		case phasePreBattle, phaseBattle, phaseQuality, phaseAllocate:
			_ = m.svc.CancelBattle(m.ctx)
		}
		m.svc.Timer().Dismiss()
		return m, tea.Quit
	}

	switch m.phase {
	case phasePreBattle:
		switch key {
		case "enter", " ":
			m.phase = phaseBattle
			m.svc.Timer().BeginBattle(m.minutes)
			m.tickGen++
			return m, tea.Batch(countdownTick(m.tickGen), m.tauntTick(m.tickGen))
		case "q", "esc":
			_ = m.svc.CancelBattle(m.ctx)
			m.svc.Timer().Dismiss()
			return m, tea.Quit
		}

	case phaseBattle:
		switch key {
		case "p":
			if m.svc.Timer().Paused() {
				m.svc.Timer().Resume()
				m.tickGen++
				return m, tea.Batch(countdownTick(m.tickGen), m.tauntTick(m.tickGen))
			}
			m.svc.Timer().Pause()
			m.tickGen++
			return m, nil
		case "q", "esc":
			_ = m.svc.CancelBattle(m.ctx)
			m.svc.Timer().Quit()
			m.phase = phaseDefeat
			return m, m.tauntCmd(narrative.KindDefeat)
		}

	case phaseQuality:
		switch key {
		case "left", "h":
			if m.quality > engine.MinQuality {
				m.quality--
			}
		case "right", "l":
			if m.quality < engine.MaxQuality {
				m.quality++
			}
		case "1", "2", "3", "4", "5":
			m.quality = int(key[0] - '0')
		case "enter":
			h, err := m.svc.Hero(m.ctx)
			if err != nil {
				m.err = err
				return m, tea.Quit
			}
			m.budget = engine.PointsForCompletion(m.quality, h.StreakDays)
			m.alloc = [4]int{}
			m.cursor = 0
			m.phase = phaseAllocate
		}
		return m, nil

	case phaseAllocate:
		switch key {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.alloc)-1 {
				m.cursor++
			}
		case "right", "l", "+":
			if m.allocated() < m.budget {
				m.alloc[m.cursor]++
			}
		case "left", "h", "-":
			if m.alloc[m.cursor] > 0 {
				m.alloc[m.cursor]--
			}
		case "enter":
			if m.allocated() != m.budget {
				m.lastNote = fmt.Sprintf("Allocate all %d points first.", m.budget)
				return m, nil
			}
			m.lastNote = ""
			return m, m.settleCmd()
		}
		return m, nil

	case phaseResult, phaseDefeat:
		m.svc.Timer().Dismiss()
		return m, tea.Quit
	}
	return m, nil
}

func (m battleModel) allocated() int {
	total := 0
	for _, v := range m.alloc {
		total += v
	}
	return total
}

func (m battleModel) View() string {
	if m.err != nil {
		return ui.Bad.Render("battle failed: "+m.err.Error()) + "\n"
	}
	var b strings.Builder
	switch m.phase {
	case phaseStarting:
		b.WriteString(ui.Muted.Render("Summoning...") + "\n")
	case phasePreBattle:
		m.viewPreBattle(&b)
	case phaseBattle:
		m.viewBattle(&b)
	case phaseQuality:
		m.viewQuality(&b)
	case phaseAllocate:
		m.viewAllocate(&b)
	case phaseResult:
		m.viewResult(&b)
	case phaseDefeat:
		m.viewDefeat(&b)
	}
	return b.String()
}

func (m battleModel) viewPreBattle(b *strings.Builder) {
	fmt.Fprintf(b, "%s\n\n", ui.Heading(ui.IconSword, m.ch.Name))
	if m.enemy != nil {
		fmt.Fprintf(b, "%s\n\n", ui.IconHeart+" "+ui.HPBar(m.enemy.CurrentHP, m.enemy.MaxHP, 30))
	}
	if m.taunt != "" {
		fmt.Fprintf(b, "%s\n\n", ui.TauntBox.Render(m.taunt))
	}
	fmt.Fprintf(b, "%s\n", ui.Muted.Render(fmt.Sprintf("%d minute battle. enter to begin, q to walk away.", m.minutes)))
}

func (m battleModel) viewBattle(b *strings.Builder) {
	fmt.Fprintf(b, "%s\n\n", ui.Heading(ui.IconTimer, m.ch.Name))
	if m.enemy != nil {
		fmt.Fprintf(b, "%s\n\n", ui.IconHeart+" "+ui.HPBar(m.enemy.CurrentHP, m.enemy.MaxHP, 30))
	}

	total := time.Duration(m.minutes) * time.Minute
	remaining := m.svc.Timer().Remaining()
	frac := 1.0
	if total > 0 {
		frac = float64(m.svc.Timer().Elapsed()) / float64(total)
	}
	b.WriteString(m.bar.ViewAs(frac) + "\n")
	clock := fmt.Sprintf("%02d:%02d", int(remaining.Minutes()), int(remaining.Seconds())%60)
	if m.svc.Timer().Paused() {
		fmt.Fprintf(b, "%s %s\n\n", ui.Warn.Render("PAUSED"), ui.Muted.Render(clock))
	} else {
		fmt.Fprintf(b, "%s\n\n", ui.H2.Render(clock))
	}
	if m.taunt != "" {
		fmt.Fprintf(b, "%s\n\n", ui.TauntBox.Render(m.taunt))
	}
	b.WriteString(ui.Muted.Render("p pause · q give up") + "\n")
}

func (m battleModel) viewQuality(b *strings.Builder) {
	fmt.Fprintf(b, "%s\n\n", ui.Heading(ui.IconSparkle, "Session complete"))
	b.WriteString("How focused were you?\n\n")
	for q := engine.MinQuality; q <= engine.MaxQuality; q++ {
		label := fmt.Sprintf(" %d ", q)
		if q == m.quality {
			b.WriteString(ui.SelectedRow.Render(label))
		} else {
			b.WriteString(ui.Muted.Render(label))
		}
	}
	b.WriteString("\n\n" + ui.Muted.Render("←/→ or 1-5, enter to confirm") + "\n")
}

func (m battleModel) viewAllocate(b *strings.Builder) {
	fmt.Fprintf(b, "%s\n\n", ui.Heading(ui.IconTrophy, "Spend your points"))
	fmt.Fprintf(b, "%s\n\n", ui.LabelValue("Budget", fmt.Sprintf("%d of %d allocated", m.allocated(), m.budget)))
	for i, stat := range engine.AllStats {
		row := fmt.Sprintf("  %-8s  %d", stat, m.alloc[i])
		if i == m.cursor {
			row = ui.SelectedRow.Render(row)
		}
		b.WriteString(row + "\n")
	}
	b.WriteString("\n" + ui.Muted.Render("↑/↓ select · ←/→ adjust · enter to confirm") + "\n")
	if m.lastNote != "" {
		b.WriteString(ui.Warn.Render(m.lastNote) + "\n")
	}
}

func (m battleModel) viewResult(b *strings.Builder) {
	res := m.result
	if res.Retired {
		fmt.Fprintf(b, "%s\n\n", ui.Heading(ui.IconSkull, m.ch.Name))
		b.WriteString(ui.BadgeRetired + "\n\n")
		words := res.FinalWords
		if words == "" {
			words = m.taunt
		}
		if words != "" {
			fmt.Fprintf(b, "%s\n\n", ui.TauntBox.Render(words))
		}
		b.WriteString(ui.Muted.Render("They will never return. Press any key.") + "\n")
		return
	}

	fmt.Fprintf(b, "%s\n\n", ui.Heading(ui.IconTrophy, "Victory"))
	fmt.Fprintf(b, "%s\n", ui.LabelValue("Damage dealt", res.Damage))
	fmt.Fprintf(b, "%s\n", ui.IconHeart+" "+ui.HPBar(res.Enemy.CurrentHP, res.Enemy.MaxHP, 30))
	if res.EnemyDefeated {
		fmt.Fprintf(b, "\n%s\n", ui.Good.Render(fmt.Sprintf("%s defeated! (%d total)", m.ch.Name, res.Enemy.Defeats)))
	}
	if m.taunt != "" {
		fmt.Fprintf(b, "\n%s\n", ui.TauntBox.Render(m.taunt))
	}
	fmt.Fprintf(b, "\n%s\n", ui.LabelValue("Level", fmt.Sprintf("%d → %d", res.LevelBefore, res.LevelAfter)))
	if res.LevelAfter > res.LevelBefore {
		b.WriteString(ui.BadgeLevelUp + "\n")
	}
	fmt.Fprintf(b, "%s\n", ui.LabelValue("Streak", fmt.Sprintf("%d days", res.Hero.StreakDays)))
	b.WriteString("\n" + ui.Muted.Render("Press any key.") + "\n")
}

func (m battleModel) viewDefeat(b *strings.Builder) {
	fmt.Fprintf(b, "%s\n\n", ui.Heading(ui.IconSkull, "You fled"))
	if m.taunt != "" {
		fmt.Fprintf(b, "%s\n\n", ui.TauntBox.Render(m.taunt))
	}
	b.WriteString(ui.Muted.Render("No damage dealt. No points earned. Press any key.") + "\n")
}
