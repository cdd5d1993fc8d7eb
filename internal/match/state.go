package match

// ID indexes a presented term or definition within its column.
type ID int

// None marks the absence of a selection.
const None ID = -1

// Term is a term as presented on the board, tagged with its pair's key.
type Term struct {
	ID      ID
	Key     Key
	Text    string
	Matched bool
}

// Definition is a definition as presented on the board. Key is the pair it
// truly belongs to, not its display position.
type Definition struct {
	ID      ID
	Key     Key
	Text    string
	Matched bool
}

// Match is one resolved term/definition pair.
type Match struct {
	Term       ID
	Definition ID
}

// EventKind enumerates the outcomes the state machine reports.
type EventKind int

const (
	EventSelect EventKind = iota
	EventCorrect
	EventIncorrect
	EventWin
)

var eventNames = [...]string{
	EventSelect:    "select",
	EventCorrect:   "correct",
	EventIncorrect: "incorrect",
	EventWin:       "win",
}

func (k EventKind) String() string {
	if int(k) < 0 || int(k) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[k]
}

// Event is an already-decided outcome for the feedback layer to consume.
//
// For EventSelect, Term is the new selection and Previous the one it
// replaced (None if the machine was idle). For EventCorrect and
// EventIncorrect, Term and Definition name the evaluated pair. EventWin
// carries no IDs.
type Event struct {
	Kind       EventKind
	Term       ID
	Definition ID
	Previous   ID
}

// State is one generation of the matching session: the presented board,
// the current selection, the match record and the counters.
// The zero value is not usable; build one with NewState.
type State struct {
	Terms       []Term
	Definitions []Definition
	Matches     []Match

	MatchesFound int
	TotalPairs   int
	Misses       int

	selected ID
	won      bool
}

// NewState lays out a fresh board from deck: terms in original order,
// definitions in an order drawn from src.
func NewState(deck *Deck, src Source) *State {
	n := deck.Len()
	s := &State{
		Terms:       make([]Term, n),
		Definitions: make([]Definition, n),
		Matches:     make([]Match, 0, n),
		TotalPairs:  n,
		selected:    None,
	}
	for i := 0; i < n; i++ {
		k := Key(i)
		s.Terms[i] = Term{ID: ID(i), Key: k, Text: deck.Pair(k).Term}
	}
	for i, k := range Shuffle(src, n) {
		s.Definitions[i] = Definition{ID: ID(i), Key: k, Text: deck.Pair(k).Definition}
	}
	return s
}

// Selected returns the selected term, if any.
func (s *State) Selected() (ID, bool) {
	return s.selected, s.selected != None
}

// Won reports whether every pair has been matched.
func (s *State) Won() bool {
	return s.won
}

// SelectTerm handles a click on term id. Matched or unknown terms are
// ignored and produce no events.
func (s *State) SelectTerm(id ID) []Event {
	if !s.validTerm(id) || s.Terms[id].Matched {
		return nil
	}
	prev := s.selected
	s.selected = id
	return []Event{{Kind: EventSelect, Term: id, Definition: None, Previous: prev}}
}

// SelectDefinition evaluates a click on definition id against the current
// selection. With no selection, or on a matched definition, it is a no-op.
// The selection is released immediately on both outcomes.
func (s *State) SelectDefinition(id ID) []Event {
	if s.selected == None || !s.validDefinition(id) || s.Definitions[id].Matched {
		return nil
	}
	tid := s.selected
	s.selected = None

	term := &s.Terms[tid]
	def := &s.Definitions[id]
	if term.Key != def.Key {
		s.Misses++
		return []Event{{Kind: EventIncorrect, Term: tid, Definition: id, Previous: None}}
	}

	term.Matched = true
	def.Matched = true
	s.Matches = append(s.Matches, Match{Term: tid, Definition: id})
	s.MatchesFound++

	events := []Event{{Kind: EventCorrect, Term: tid, Definition: id, Previous: None}}
	if s.MatchesFound == s.TotalPairs && !s.won {
		s.won = true
		events = append(events, Event{Kind: EventWin, Term: None, Definition: None, Previous: None})
	}
	return events
}

// MatchedTerm reports whether term id is in the match record.
func (s *State) MatchedTerm(id ID) bool {
	return s.validTerm(id) && s.Terms[id].Matched
}

// MatchedDefinition reports whether definition id is in the match record.
func (s *State) MatchedDefinition(id ID) bool {
	return s.validDefinition(id) && s.Definitions[id].Matched
}

// DefinitionFor returns the definition currently presenting term id's pair.
func (s *State) DefinitionFor(id ID) ID {
	if !s.validTerm(id) {
		return None
	}
	k := s.Terms[id].Key
	for _, d := range s.Definitions {
		if d.Key == k {
			return d.ID
		}
	}
	return None
}

func (s *State) validTerm(id ID) bool {
	return id >= 0 && int(id) < len(s.Terms)
}

func (s *State) validDefinition(id ID) bool {
	return id >= 0 && int(id) < len(s.Definitions)
}
