// Package titulus infers the title and heading outline (H1-H4) of PDF
// documents from typography and layout.
//
// Basic usage:
//
//	result, err := titulus.Open("document.pdf").Outline()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(result.Title)
//	for _, entry := range result.Outline {
//	    fmt.Printf("%s %s (page %d)\n", entry.Level, entry.Text, entry.Page)
//	}
//
// With options:
//
//	result, err := titulus.Open("rapport.pdf").
//	    Language("fr").
//	    SkipBookmarks().
//	    Outline()
//
// For advanced use cases, the lower-level reader and outline packages are
// also available.
package titulus

// Open prepares a PDF file for outline inference and returns an
// Extractor for fluent configuration. The file is not read until a
// terminal operation like Outline() is called.
//
// Example:
//
//	result, err := titulus.Open("document.pdf").Outline()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	result := titulus.Must(titulus.Open("document.pdf").Outline())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
