package narrative

import (
	"context"
	"strings"
	"testing"
	"time"

	"rainythoughts/internal/content"
)

func TestStaticDrawsFromCharacterPools(t *testing.T) {
	ctx := context.Background()
	gen := NewStatic()
	ch := content.ByID("rejected_girl")
	if ch == nil {
		t.Fatal("roster missing rejected_girl")
	}

	for _, kind := range []Kind{KindPreBattle, KindMidBattle, KindVictory, KindDefeat, KindEnemyDefeated} {
		text, err := gen.Generate(ctx, ch, kind, 0)
		if err != nil {
			t.Fatalf("Generate(%s): %v", kind, err)
		}
		if strings.TrimSpace(text) == "" {
			t.Fatalf("Generate(%s) returned blank text", kind)
		}
	}
}

func TestStaticShatteredStage(t *testing.T) {
	ctx := context.Background()
	gen := NewStatic()
	ch := content.ByID("rejected_girl")

	text, err := gen.Generate(ctx, ch, KindEnemyDefeated, 12)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if ch.Shattered != nil && text != ch.Shattered.FinalWords {
		t.Fatalf("shattered defeat line = %q, want the final words", text)
	}
}

func TestStaticRetiredIsUnavailable(t *testing.T) {
	ctx := context.Background()
	gen := NewStatic()
	ch := content.ByID("rejected_girl")

	if _, err := gen.Generate(ctx, ch, KindPreBattle, ch.Threshold()); err == nil {
		t.Fatal("expected error for retired character")
	}
}

func TestStaticMentorLetter(t *testing.T) {
	ctx := context.Background()
	gen := NewStatic()
	ch := content.ByID("goggins")
	if ch == nil {
		t.Fatal("roster missing goggins")
	}

	text, err := gen.Generate(ctx, ch, KindLetter, 0)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if strings.TrimSpace(text) == "" {
		t.Fatal("blank mentor letter")
	}
}

func TestOpenRouterFallsBackWithoutKey(t *testing.T) {
	ctx := context.Background()
	gen := NewOpenRouter(OpenRouterConfig{Timeout: time.Second})
	ch := content.ByID("procrastination_demon")
	if ch == nil {
		t.Fatal("roster missing procrastination_demon")
	}

	// No key configured: the request path fails immediately and the
	// static pool answers instead.
	text, err := gen.Generate(ctx, ch, KindPreBattle, 0)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if strings.TrimSpace(text) == "" {
		t.Fatal("fallback produced blank text")
	}
}

func TestNewGeneratorSelection(t *testing.T) {
	if _, ok := NewGenerator(OpenRouterConfig{}).(*Static); !ok {
		t.Fatal("no key should select the static generator")
	}
	if _, ok := NewGenerator(OpenRouterConfig{APIKey: "k"}).(*OpenRouter); !ok {
		t.Fatal("a key should select the OpenRouter generator")
	}
}
