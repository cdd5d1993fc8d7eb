// Package match holds the pairing puzzle's rules: the pair repository, the
// definition shuffle and the selection state machine. It has no rendering
// dependencies.
package match

// Key is the stable identifier linking a term to its correct definition.
// It is the pair's position in the original, unshuffled list.
type Key int

// Pair is one term/definition unit.
type Pair struct {
	Term       string
	Definition string
}

// Deck is the immutable pair repository for a session. Restarts regenerate
// the board from the same Deck.
type Deck struct {
	pairs      []Pair
	background string
}

// NewDeck copies pairs so later edits by the caller cannot leak into a
// running session.
func NewDeck(pairs []Pair, background string) *Deck {
	cp := make([]Pair, len(pairs))
	copy(cp, pairs)
	return &Deck{pairs: cp, background: background}
}

// Len returns the number of pairs.
func (d *Deck) Len() int {
	return len(d.pairs)
}

// Pair returns the pair for key k.
func (d *Deck) Pair(k Key) Pair {
	return d.pairs[k]
}

// Pairs returns a copy of the pairs in original order.
func (d *Deck) Pairs() []Pair {
	out := make([]Pair, len(d.pairs))
	copy(out, d.pairs)
	return out
}

// Background returns the optional background image reference ("" if none).
func (d *Deck) Background() string {
	return d.background
}
