// Package assets bundles the sample deck so the game and the headless
// runner work without a data file on disk.
package assets

import _ "embed"

// SampleDeck is a small JSON deck in the standard data document format.
//
//go:embed sample.json
var SampleDeck []byte
