package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"rainythoughts/internal/engine"
	"rainythoughts/internal/narrative"
)

// RunBattle drives one full focus session: taunt, countdown, rating,
// allocation, result. It owns the session from start to settlement.
func RunBattle(ctx context.Context, svc *engine.Service, gen narrative.Generator, characterID string, minutes int, out io.Writer) error {
	m := newBattleModel(ctx, svc, gen, characterID, minutes)
	p := tea.NewProgram(m, tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(battleModel); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
