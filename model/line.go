package model

import (
	"math"
	"strings"
)

// FontRun is one typographically uniform stretch of text within a line,
// as reported by the layout reader.
type FontRun struct {
	Text     string
	Size     float64
	Flags    RunFlags
	FontName string
	Color    uint32
}

// RunFlags carries font attribute bits supplied by the reader. Readers
// that cannot recover attribute bits leave them zero; name-based
// detection in FontStyle still applies.
type RunFlags uint32

const (
	// FlagBold is set when the font program marks the run as bold
	FlagBold RunFlags = 1 << 4
	// FlagItalic is set when the font program marks the run as italic
	FlagItalic RunFlags = 1 << 6
)

// TextLine is one geometrically and typographically coherent run of text
// on a page. Size is the glyph-length-weighted average font size across
// the line's runs. Lines are produced once per page by the reader and
// never mutated by the engine.
type TextLine struct {
	Text string
	Size float64
	BBox BBox
	Page int // 0-based page index
	Runs []FontRun
}

// FontStyle is the style signature of a line, derived from its first run.
// Two matching styles identify text set the same way (see Matches).
type FontStyle struct {
	Size     int // rounded point size
	Bold     bool
	Italic   bool
	FontName string // lowercased
	Color    uint32
}

// Style derives the line's FontStyle from its first run. Boldness and
// italics come from the run's flag bits or from the font name containing
// one of the given marker substrings; font naming conventions vary per
// foundry, so the marker lists are injectable.
func (l *TextLine) Style(boldMarkers, italicMarkers []string) FontStyle {
	if len(l.Runs) == 0 {
		return FontStyle{}
	}

	run := l.Runs[0]
	name := strings.ToLower(run.FontName)

	return FontStyle{
		Size:     RoundSize(run.Size),
		Bold:     run.Flags&FlagBold != 0 || containsAny(name, boldMarkers),
		Italic:   run.Flags&FlagItalic != 0 || containsAny(name, italicMarkers),
		FontName: name,
		Color:    run.Color,
	}
}

// Matches reports whether two styles identify the same visual treatment:
// rounded sizes within sizeTolerance, identical bold/italic attributes,
// and the same font name.
func (s FontStyle) Matches(other FontStyle, sizeTolerance int) bool {
	diff := s.Size - other.Size
	if diff < 0 {
		diff = -diff
	}
	return diff <= sizeTolerance &&
		s.Bold == other.Bold &&
		s.Italic == other.Italic &&
		s.FontName == other.FontName
}

// RoundSize rounds a font size to the nearest whole point.
func RoundSize(size float64) int {
	return int(math.Round(size))
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
