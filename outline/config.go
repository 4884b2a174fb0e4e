package outline

import (
	"regexp"

	"github.com/tsawler/titulus/text"
)

// Config holds every heuristic constant the inference pipeline uses.
// It is threaded through the pipeline explicitly so callers and tests can
// vary thresholds without touching engine internals.
type Config struct {
	// HeadingSizeFactor is the minimum ratio of a heading candidate's font
	// size to the body text size.
	// Default: 1.05
	HeadingSizeFactor float64

	// HeaderFooterMargin is the fraction of page height at the top and
	// bottom treated as page furniture; candidates inside it are rejected.
	// Default: 0 (full page)
	HeaderFooterMargin float64

	// MaxLevels is the number of outline levels assigned from distinct
	// heading sizes. Default: 4
	MaxLevels int

	// HeadingMinTokens / HeadingMaxTokens bound a size-rule candidate's
	// token count. Defaults: 1 and 30
	HeadingMinTokens int
	HeadingMaxTokens int

	// BoldHeadingMinTokens is the lower token bound for the bold rule,
	// which needs more evidence than the size rule. Default: 2
	BoldHeadingMinTokens int

	// TitleMaxWords rejects title candidates longer than this many
	// whitespace-delimited words. Default: 35
	TitleMaxWords int

	// Minimum body-text lengths per script class, in that class's
	// counting regime. Kept as separate constants so they can diverge per
	// corpus. Default: 5 each
	MinBodyTextLen      int
	MinBodyTextLenCJK   int
	MinBodyTextLenIndic int

	// Title detection runs a strict pass and, when its result is shorter
	// than TitleRetryBelow characters, a flexible pass.
	TitleStrictSizeRatio     float64 // Default: 0.90
	TitleStrictLineSpacing   float64 // Default: 1.5
	TitleFlexibleSizeRatio   float64 // Default: 0.80
	TitleFlexibleLineSpacing float64 // Default: 1.8
	TitleRetryBelow          int     // Default: 15

	// Context lookahead: a candidate must be followed by body text within
	// LookaheadLines lines on the same page. The lookahead aborts early if
	// no confirming line appeared within LookaheadPatience lines, or when
	// a line exceeds the candidate's size by more than SizeBreakDelta.
	LookaheadLines    int     // Default: 8
	LookaheadPatience int     // Default: 4
	SizeBreakDelta    float64 // Default: 2

	// A lookahead line confirms body text when its rounded size is within
	// BodySizeTolerance of the body size, its token count reaches the
	// script minimum, and its raw length reaches MinBodyLineChars.
	// A confirming line with a token count of StrongBodyFactor times the
	// script minimum accepts the candidate immediately.
	BodySizeTolerance int     // Default: 1
	MinBodyLineChars  int     // Default: 20
	StrongBodyFactor  float64 // Default: 1.5

	// StyleSizeTolerance is the rounded-size tolerance for two font styles
	// to be considered the same signature. Default: 1
	StyleSizeTolerance int

	// Wrapped-heading merge: a heading joins the previous one when the
	// vertical gap between them is at least MergeMinGap and less than
	// MergeMaxGapRatio times the previous heading's line height.
	MergeMinGap      float64 // Default: -2
	MergeMaxGapRatio float64 // Default: 0.75

	// BoldFontMarkers and ItalicFontMarkers are the lowercase substrings
	// that mark a font name as bold or italic. Font naming conventions
	// vary per foundry, so the lists are configuration rather than code.
	BoldFontMarkers   []string
	ItalicFontMarkers []string

	// LabelPatterns match "label-only" line shapes that are never
	// headings: bare numbers, a single word followed by a period,
	// "X of Y" page markers.
	LabelPatterns []*regexp.Regexp

	// BoilerplatePatterns match legal and administrative boilerplate
	// (copyright, version markers, ISBN/DOI, rights notices, URLs) that
	// is rejected regardless of typography.
	BoilerplatePatterns []*regexp.Regexp
}

// DefaultConfig returns the default heuristic configuration.
func DefaultConfig() Config {
	return Config{
		HeadingSizeFactor:  1.05,
		HeaderFooterMargin: 0,
		MaxLevels:          4,

		HeadingMinTokens:     1,
		HeadingMaxTokens:     30,
		BoldHeadingMinTokens: 2,

		TitleMaxWords: 35,

		MinBodyTextLen:      5,
		MinBodyTextLenCJK:   5,
		MinBodyTextLenIndic: 5,

		TitleStrictSizeRatio:     0.90,
		TitleStrictLineSpacing:   1.5,
		TitleFlexibleSizeRatio:   0.80,
		TitleFlexibleLineSpacing: 1.8,
		TitleRetryBelow:          15,

		LookaheadLines:    8,
		LookaheadPatience: 4,
		SizeBreakDelta:    2,

		BodySizeTolerance: 1,
		MinBodyLineChars:  20,
		StrongBodyFactor:  1.5,

		StyleSizeTolerance: 1,

		MergeMinGap:      -2,
		MergeMaxGapRatio: 0.75,

		BoldFontMarkers:   []string{"bold", "bd", "blk", "black", "heavy"},
		ItalicFontMarkers: []string{"italic", "oblique", "slant"},

		LabelPatterns: []*regexp.Regexp{
			regexp.MustCompile(`^\d+\.\s*$`),
			regexp.MustCompile(`^\w+\.\s*$`),
			regexp.MustCompile(`^[A-Z][a-z]*\s+of\s+\w+\s*[.:]?\s*$`),
		},

		BoilerplatePatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)copyright\s*[©®™]?`),
			regexp.MustCompile(`(?i)copyright notice`),
			regexp.MustCompile(`(?i)©\s*\d{4}`),
			regexp.MustCompile(`(?i)version\s*\d+`),
			regexp.MustCompile(`(?i)v\.\s*\d+`),
			regexp.MustCompile(`(?i)ver\.\s*\d+`),
			regexp.MustCompile(`(?i)edition\s*\d*`),
			regexp.MustCompile(`(?i)published\s+(by|in)`),
			regexp.MustCompile(`(?i)isbn[\s:-]*\d`),
			regexp.MustCompile(`(?i)issn[\s:-]*\d`),
			regexp.MustCompile(`(?i)doi[\s:-]*\d`),
			regexp.MustCompile(`(?i)all\s+rights\s+reserved`),
			regexp.MustCompile(`(?i)proprietary\s+(and\s+)?confidential`),
			regexp.MustCompile(`(?i)patent\s+(no\.?|number)`),
			regexp.MustCompile(`(?i)trademark\s*[™®]?`),
			regexp.MustCompile(`(?i)license\s+(agreement|terms)`),
			regexp.MustCompile(`(?i)terms\s+of\s+use`),
			regexp.MustCompile(`(?i)legal\s+notice`),
			regexp.MustCompile(`(?i)disclaimer`),
			regexp.MustCompile(`(?i)privacy\s+policy`),
			regexp.MustCompile(`(?i)www\.\w+\.\w+`),
			regexp.MustCompile(`(?i)https?://`),
		},
	}
}

// minBodyTextLen returns the minimum body-text length for a script class.
func (c Config) minBodyTextLen(sc text.ScriptClass) int {
	switch sc {
	case text.ScriptCJK:
		return c.MinBodyTextLenCJK
	case text.ScriptIndic:
		return c.MinBodyTextLenIndic
	default:
		return c.MinBodyTextLen
	}
}
