package outline

import (
	"testing"

	"github.com/tsawler/titulus/text"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.HeadingSizeFactor != 1.05 {
		t.Errorf("HeadingSizeFactor = %v, want 1.05", cfg.HeadingSizeFactor)
	}
	if cfg.MaxLevels != 4 {
		t.Errorf("MaxLevels = %d, want 4", cfg.MaxLevels)
	}
	if cfg.TitleMaxWords != 35 {
		t.Errorf("TitleMaxWords = %d, want 35", cfg.TitleMaxWords)
	}
	if len(cfg.BoldFontMarkers) == 0 || len(cfg.ItalicFontMarkers) == 0 {
		t.Error("font marker lists must not be empty")
	}
	if len(cfg.LabelPatterns) == 0 || len(cfg.BoilerplatePatterns) == 0 {
		t.Error("pattern banks must not be empty")
	}
}

func TestMinBodyTextLenPerScript(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinBodyTextLen = 5
	cfg.MinBodyTextLenCJK = 3
	cfg.MinBodyTextLenIndic = 4

	tests := []struct {
		class    text.ScriptClass
		expected int
	}{
		{text.ScriptDefault, 5},
		{text.ScriptCJK, 3},
		{text.ScriptIndic, 4},
	}

	for _, tt := range tests {
		if got := cfg.minBodyTextLen(tt.class); got != tt.expected {
			t.Errorf("minBodyTextLen(%v) = %d, want %d", tt.class, got, tt.expected)
		}
	}
}
