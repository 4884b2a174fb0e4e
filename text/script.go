package text

import (
	"strings"

	"golang.org/x/text/language"
)

// ScriptClass groups languages by how the engine measures text length.
// Character-counted scripts (Chinese, Japanese, Korean, Thai) have no
// useful whitespace word boundaries, so lengths are counted in
// characters. Indic scripts count words like the default class but keep
// their own minimum body-text-length constant so the two can diverge.
type ScriptClass int

const (
	// ScriptDefault counts whitespace-delimited words (Latin, Cyrillic, ...)
	ScriptDefault ScriptClass = iota
	// ScriptCJK counts characters
	ScriptCJK
	// ScriptIndic counts words but uses the Indic length threshold
	ScriptIndic
)

// String returns a short name for the script class
func (c ScriptClass) String() string {
	switch c {
	case ScriptCJK:
		return "cjk"
	case ScriptIndic:
		return "indic"
	default:
		return "default"
	}
}

// Language sets accept both ISO 639-1 and 639-3 spellings since
// identification collaborators differ in which they report.
var (
	cjkCodes = map[string]bool{
		"zh": true, "zho": true, "cmn": true,
		"ja": true, "jpn": true,
		"ko": true, "kor": true,
		"th": true, "tha": true,
	}
	indicCodes = map[string]bool{
		"hi": true, "hin": true,
		"bn": true, "ben": true,
		"mr": true, "mar": true,
		"gu": true, "guj": true,
		"ta": true, "tam": true,
		"te": true, "tel": true,
		"kn": true, "kan": true,
		"ml": true, "mal": true,
		"or": true, "ori": true, "ory": true,
	}
)

// Classify maps an ISO-639-like language code to its script class.
// Region and script subtags are stripped ("zh-Hans" classifies as "zh");
// unknown or empty codes fall into the default word-counted class.
func Classify(code string) ScriptClass {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return ScriptDefault
	}

	if tag := language.Make(code); tag != language.Und {
		base, _ := tag.Base()
		code = base.String()
	}

	switch {
	case cjkCodes[code]:
		return ScriptCJK
	case indicCodes[code]:
		return ScriptIndic
	default:
		return ScriptDefault
	}
}

// CharacterCounted reports whether lengths are measured in characters
// rather than whitespace-delimited words.
func (c ScriptClass) CharacterCounted() bool {
	return c == ScriptCJK
}

// TokenCount measures the length of a string under the class's counting
// regime: trimmed rune count for character-counted scripts, otherwise the
// number of whitespace-delimited tokens.
func (c ScriptClass) TokenCount(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if c.CharacterCounted() {
		return len([]rune(s))
	}
	return len(strings.Fields(s))
}
