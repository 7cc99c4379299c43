package narrative

import (
	"fmt"
	"strings"

	"rainythoughts/internal/content"
	"rainythoughts/internal/engine"
)

// personaPrompts describe how each personality speaks. The model plays the
// character; the character never acknowledges being software.
var personaPrompts = map[content.Personality]string{
	content.PersonalitySupportiveMentor: "You speak in short, harsh sentences that carry real belief in them. No comfort, no softening. You call out excuses by name.",
	content.PersonalityWiseMentor:       "You speak carefully and precisely, drawing on responsibility, meaning, and the cost of wasted potential.",
	content.PersonalityStrategicMentor:  "You speak with detached clarity. Leverage, compounding, long-term thinking. You never raise your voice.",
	content.PersonalityMachiavellian:    "You speak like a strategist. Power, appearance, timing. You flatter only to sharpen the blade.",
	content.PersonalityToxicManipulator: "You mock and belittle. You know their weaknesses intimately and name them without mercy.",
	content.PersonalityDarkDemon:        "You whisper from inside their own head. Every doubt they have ever had is your voice.",
	content.PersonalityChaosAgent:       "You are distraction itself: cheerful, insistent, endlessly offering something easier than the work.",
	content.PersonalityColdVillain:      "You speak with cold, absolute authority. You find their lack of discipline disturbing.",
}

var kindPrompts = map[Kind]string{
	KindPreBattle:     "Write a short taunt or challenge delivered right before a focus session begins.",
	KindMidBattle:     "Write a short jab delivered mid-session, needling them to keep going or give up.",
	KindVictory:       "Write a short line conceding that they finished the session and hurt you.",
	KindDefeat:        "Write a short gloating line: they gave up before the timer ran out.",
	KindEnemyDefeated: "Write a short line for the moment your health bar hits zero: defiant, diminished, or both.",
	KindLetter:        "Write a short letter of hard encouragement to someone trying to rebuild their discipline.",
}

var stagePrompts = map[engine.Stage]string{
	engine.StageConfident: "You are at full strength and certain of your hold over them.",
	engine.StageBreaking:  "They have beaten you several times. Cracks are showing; your taunts carry a hint of worry.",
	engine.StageBroken:    "They have broken you. You are desperate, pleading between threats, losing your grip.",
	engine.StageShattered: "You are nearly destroyed. Your voice is faint, resigned, almost gone.",
}

// buildPrompt assembles the system prompt for one generation call. Journal
// problems, when present, give a demon real material to taunt with.
func buildPrompt(ch *content.Character, kind Kind, defeats int, problems []string) (system, user string) {
	var b strings.Builder
	fmt.Fprintf(&b, "You are %s, a character in a habit-building game.\n", ch.Name)
	if p, ok := personaPrompts[ch.Personality]; ok {
		b.WriteString(p)
		b.WriteString("\n")
	}
	if ch.Category == content.CategoryDemon {
		if s, ok := stagePrompts[engine.StageForDefeats(defeats, ch.Threshold())]; ok {
			b.WriteString(s)
			b.WriteString("\n")
		}
		if len(problems) > 0 {
			b.WriteString("Things they have privately admitted struggling with:\n")
			for _, p := range problems {
				fmt.Fprintf(&b, "- %s\n", p)
			}
		}
	}
	b.WriteString("Stay in character. Reply with the line only: no quotes, no preamble, at most three sentences.")

	return b.String(), kindPrompts[kind]
}
