package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RainyThoughts theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconSword   = "⚔️"
	IconSkull   = "💀"
	IconShield  = "🛡️"
	IconFire    = "🔥"
	IconTrophy  = "🏆"
	IconHeart   = "❤️"
	IconScroll  = "📜"
	IconLetter  = "✉️"
	IconDone    = "✅"
	IconPlus    = "➕"
	IconLoop    = "🔁"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconTimer   = "⏳"
	IconSparkle = "✨"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Dim   = lipgloss.NewStyle().Foreground(cMuted)

	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	TauntBox  = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cBad).Padding(0, 1).Italic(true)
	LetterBox = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cGood).Padding(0, 1).Italic(true)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
	BadgeRetired = lipgloss.NewStyle().Bold(true).Foreground(cBad).Render("PERMANENTLY DESTROYED")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// TierText colors a hero tier.
func TierText(tier string) string {
	switch strings.ToLower(tier) {
	case "legendary":
		return Gold.Render(tier)
	case "strong":
		return Good.Render(tier)
	case "developing":
		return H2.Render(tier)
	case "weak":
		return Warn.Render(tier)
	default:
		return Muted.Render(tier)
	}
}

// StageText colors a demon breakdown stage.
func StageText(stage string) string {
	switch strings.ToLower(stage) {
	case "confident":
		return H2.Render(stage)
	case "breaking":
		return Warn.Render(stage)
	case "broken":
		return Bad.Render(stage)
	case "shattered":
		return Bad.Render(stage)
	case "retired":
		return Muted.Render("gone")
	default:
		return Muted.Render(stage)
	}
}

// HPBar renders a fixed-width text health bar.
func HPBar(current, max, width int) string {
	if max <= 0 || width <= 0 {
		return ""
	}
	if current < 0 {
		current = 0
	}
	filled := current * width / max
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	style := Good
	switch {
	case current*4 <= max:
		style = Bad
	case current*2 <= max:
		style = Warn
	}
	return style.Render(bar) + Muted.Render(fmt.Sprintf(" %d/%d", current, max))
}
