// Package deck loads the data document that supplies a session's pairs.
//
// A document carries an ordered "pairs" list of {term, def} records and an
// optional "background" image reference:
//
//	{
//	  "background": "images/bg.png",
//	  "pairs": [ {"term": "Goroutine", "def": "A lightweight thread"} ]
//	}
//
// JSON, YAML and TOML are accepted. "definition" is read as an alias of "def".
package deck

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/Garsondee/Term-Match/internal/match"
)

// ErrNoPairs is returned for a well-formed document with an empty pair list.
var ErrNoPairs = errors.New("deck has no pairs")

type record struct {
	Term       string `mapstructure:"term"`
	Def        string `mapstructure:"def"`
	Definition string `mapstructure:"definition"`
}

type document struct {
	Pairs      []record `mapstructure:"pairs"`
	Background string   `mapstructure:"background"`
}

// Load reads the document at path. The format follows the file extension.
// A relative background is resolved against the document's directory.
func Load(path string) (*match.Deck, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read deck %s: %w", path, err)
	}
	d, err := decode(v)
	if err != nil {
		return nil, fmt.Errorf("decode deck %s: %w", path, err)
	}
	if bg := d.Background(); bg != "" && !filepath.IsAbs(bg) && !isURL(bg) {
		d = match.NewDeck(d.Pairs(), filepath.Join(filepath.Dir(path), bg))
	}
	return d, nil
}

// Parse reads a document from r. format is a viper config type such as
// "json", "yaml" or "toml".
func Parse(r io.Reader, format string) (*match.Deck, error) {
	v := viper.New()
	v.SetConfigType(format)
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("parse %s deck: %w", format, err)
	}
	return decode(v)
}

// ParseBytes is Parse over an in-memory document.
func ParseBytes(b []byte, format string) (*match.Deck, error) {
	return Parse(bytes.NewReader(b), format)
}

func decode(v *viper.Viper) (*match.Deck, error) {
	var doc document
	if err := v.Unmarshal(&doc); err != nil {
		return nil, err
	}
	if len(doc.Pairs) == 0 {
		return nil, ErrNoPairs
	}
	pairs := make([]match.Pair, len(doc.Pairs))
	for i, r := range doc.Pairs {
		def := r.Def
		if def == "" {
			def = r.Definition
		}
		pairs[i] = match.Pair{Term: r.Term, Definition: def}
	}
	return match.NewDeck(pairs, doc.Background), nil
}

func isURL(s string) bool {
	return strings.Contains(s, "://")
}
