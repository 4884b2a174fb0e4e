// Package model defines the core data types shared between the layout
// reader and the outline inference engine: page geometry, text lines with
// their font runs, derived font styles, documents, and outline entries.
//
// All geometry uses reading coordinates: the origin is the top-left corner
// of the page and Y increases downward. Readers working from PDF
// coordinate space (Y up) are responsible for flipping coordinates using
// the page height before constructing these types.
package model
