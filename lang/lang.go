// Package lang identifies the language of a text sample. The engine only
// needs an ISO-639-like code to pick a script class, so the interface is
// a single method and the default implementation wraps the whatlanggo
// trigram classifier.
package lang

import (
	"strings"

	"github.com/abadojack/whatlanggo"
)

// DefaultCode is returned for empty or whitespace-only samples, without
// invoking the classifier.
const DefaultCode = "en"

// Detector maps a text sample to an ISO-639-like language code.
type Detector interface {
	Detect(sample string) string
}

// Whatlang detects languages with the whatlanggo trigram classifier and
// reports ISO 639-3 codes.
type Whatlang struct{}

// Detect returns the detected language code for the sample, or
// DefaultCode when the sample carries no text.
func (Whatlang) Detect(sample string) string {
	if strings.TrimSpace(sample) == "" {
		return DefaultCode
	}

	info := whatlanggo.Detect(sample)
	code := whatlanggo.LangToString(info.Lang)
	if code == "" {
		return DefaultCode
	}
	return code
}

// Fixed is a Detector that always reports the same code, used when the
// caller already knows the document language.
type Fixed string

// Detect returns the fixed code regardless of the sample.
func (f Fixed) Detect(string) string {
	return string(f)
}
