package outline

import (
	"testing"

	"github.com/tsawler/titulus/model"
	"github.com/tsawler/titulus/text"
)

// classifyLines runs the classifier with default thresholds over a flat
// line list on one 792pt page.
func classifyLines(e *Engine, lines []model.TextLine) []model.TextLine {
	return e.classify(lines, 10, 792, text.ScriptDefault, 5, "")
}

func TestClassifySizeRule(t *testing.T) {
	e := NewEngine()
	lines := []model.TextLine{
		makeLine("Section Overview", 16, 0, 100, "Helvetica"),
		bodyLine(0, 130),
	}

	got := classifyLines(e, lines)
	if len(got) != 1 || got[0].Text != "Section Overview" {
		t.Fatalf("classify = %v candidates, want Section Overview only", len(got))
	}
}

func TestClassifyBoldRule(t *testing.T) {
	e := NewEngine()
	lines := []model.TextLine{
		// Body-sized but bold with two tokens.
		makeLine("Important Definitions", 10, 0, 100, "Helvetica-Bold"),
		bodyLine(0, 120),
	}

	got := classifyLines(e, lines)
	if len(got) != 1 || got[0].Text != "Important Definitions" {
		t.Fatalf("classify = %v candidates, want bold-rule candidate", len(got))
	}
}

func TestClassifyBoldRuleNeedsTwoTokens(t *testing.T) {
	e := NewEngine()
	lines := []model.TextLine{
		makeLine("Definitions", 10, 0, 100, "Helvetica-Bold"),
		bodyLine(0, 120),
	}

	if got := classifyLines(e, lines); len(got) != 0 {
		t.Errorf("classify accepted single-token bold line at body size")
	}
}

func TestClassifyRejectsWithoutFollowingBodyText(t *testing.T) {
	e := NewEngine()
	lines := []model.TextLine{
		makeLine("Orphan Heading", 16, 0, 100, "Helvetica"),
		makeLine("short", 10, 0, 130, "Helvetica"),
	}

	if got := classifyLines(e, lines); len(got) != 0 {
		t.Errorf("classify accepted heading with no confirming body text")
	}
}

func TestClassifyRejectsAcrossPageBreak(t *testing.T) {
	e := NewEngine()
	lines := []model.TextLine{
		makeLine("Trailing Heading", 16, 0, 700, "Helvetica"),
		bodyLine(1, 80),
	}

	if got := classifyLines(e, lines); len(got) != 0 {
		t.Errorf("classify confirmed a heading from the next page's text")
	}
}

func TestClassifyBreaksOnLargerTypeBelow(t *testing.T) {
	e := NewEngine()
	lines := []model.TextLine{
		makeLine("Minor Heading", 13, 0, 100, "Helvetica"),
		makeLine("Major Heading", 20, 0, 130, "Helvetica"),
		bodyLine(0, 160),
	}

	got := classifyLines(e, lines)
	for _, c := range got {
		if c.Text == "Minor Heading" {
			t.Error("classify accepted candidate despite larger type below it")
		}
	}
}

func TestClassifyRejectsSentences(t *testing.T) {
	e := NewEngine()
	lines := []model.TextLine{
		makeLine("This line is large but ends like a sentence.", 16, 0, 100, "Helvetica"),
		bodyLine(0, 130),
	}

	if got := classifyLines(e, lines); len(got) != 0 {
		t.Errorf("classify accepted a line with terminal punctuation")
	}
}

func TestClassifyRejectsLabels(t *testing.T) {
	e := NewEngine()

	labels := []string{"12. ", "Table of Contents"}
	for _, label := range labels {
		lines := []model.TextLine{
			makeLine(label, 16, 0, 100, "Helvetica"),
			bodyLine(0, 130),
		}
		if got := classifyLines(e, lines); len(got) != 0 {
			t.Errorf("classify accepted label-shaped line %q", label)
		}
	}
}

func TestClassifyRejectsBoilerplate(t *testing.T) {
	e := NewEngine()

	boilerplate := []string{
		"Copyright © 2023 Example Corp",
		"All Rights Reserved Worldwide",
		"Version 3 Release Notes",
		"Visit www.example.com for more",
	}
	for _, bp := range boilerplate {
		lines := []model.TextLine{
			makeLine(bp, 16, 0, 100, "Helvetica-Bold"),
			bodyLine(0, 130),
		}
		if got := classifyLines(e, lines); len(got) != 0 {
			t.Errorf("classify accepted boilerplate line %q", bp)
		}
	}
}

func TestClassifyExcludesTitleFragments(t *testing.T) {
	e := NewEngine()
	lines := []model.TextLine{
		makeLine("Annual Report 2024", 16, 0, 100, "Helvetica"),
		bodyLine(0, 130),
	}

	normTitle := text.NormalizeForSearch("Annual Report 2024")
	got := e.classify(lines, 10, 792, text.ScriptDefault, 5, normTitle)
	if len(got) != 0 {
		t.Errorf("classify accepted a line duplicated from the title")
	}
}

func TestClassifyHonorsMargins(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HeaderFooterMargin = 0.1
	e := NewEngineWithConfig(cfg)

	lines := []model.TextLine{
		// Inside the top margin of a 792pt page (79.2pt band).
		makeLine("Running Header Text", 16, 0, 40, "Helvetica"),
		bodyLine(0, 130),
	}

	if got := e.classify(lines, 10, 792, text.ScriptDefault, 5, ""); len(got) != 0 {
		t.Errorf("classify accepted a line inside the header margin")
	}
}

func TestClassifyCJKTokenCounting(t *testing.T) {
	e := NewEngine()

	// Six characters: within the [1,30] bound under character counting.
	lines := []model.TextLine{
		makeLine("第一章システム概論です", 16, 0, 100, "MS-Gothic"),
		makeLine("この段落は見出しの後に続く通常の本文であり、十分な長さを持っています。", 10, 0, 130, "MS-Gothic"),
	}

	got := e.classify(lines, 10, 792, text.ScriptCJK, 5, "")
	if len(got) != 1 {
		t.Fatalf("classify = %d candidates under CJK counting, want 1", len(got))
	}
}

func TestHasTerminalPunctuation(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"Plain Heading", false},
		{"Ends with period.", true},
		{"Ends with comma,", true},
		{"Question?", true},
		{"Closing paren)", true},
		{"Closing quote\"", true},
		{"Truncated heading...", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := hasTerminalPunctuation(tt.input); got != tt.expected {
			t.Errorf("hasTerminalPunctuation(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}
