package game

import (
	"fmt"
	"strings"
)

// Journal categories and keys.
const (
	catSession = "session"
	catSelect  = "select"
	catMatch   = "match"
	catWin     = "win"

	keyInit           = "init"
	keyRestart        = "restart"
	keyRestartIgnored = "restart_ignored"
	keyTerm           = "term"
	keyCorrect        = "correct"
	keyIncorrect      = "incorrect"
	keyComplete       = "complete"
)

// JournalEntry is one recorded session event.
type JournalEntry struct {
	Tick       int
	Generation int
	Category   string // session, select, match, win
	Key        string // event name within the category
	Value      string // human-readable detail
}

// String formats the entry as a fixed-width log line.
//
//	[T=0042] g1 match    incorrect    Goroutine → A typed conduit...
func (e JournalEntry) String() string {
	return fmt.Sprintf("[T=%04d] g%d %-8s %-16s %s",
		e.Tick, e.Generation, e.Category, e.Key, e.Value)
}

// Journal is an unbounded, machine-readable record of everything the
// controller decided. It survives restarts; entries carry their generation.
type Journal struct {
	entries []JournalEntry
}

// NewJournal returns an empty journal.
func NewJournal() *Journal {
	return &Journal{}
}

// Add records a new entry.
func (j *Journal) Add(tick, generation int, category, key, value string) {
	j.entries = append(j.entries, JournalEntry{
		Tick:       tick,
		Generation: generation,
		Category:   category,
		Key:        key,
		Value:      value,
	})
}

// Entries returns all recorded entries.
func (j *Journal) Entries() []JournalEntry {
	return j.entries
}

// Len returns the number of entries.
func (j *Journal) Len() int {
	return len(j.entries)
}

// Filter returns entries matching category and key; "" matches anything.
func (j *Journal) Filter(category, key string) []JournalEntry {
	var out []JournalEntry
	for _, e := range j.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// ForGeneration returns the entries recorded during generation g.
func (j *Journal) ForGeneration(g int) []JournalEntry {
	var out []JournalEntry
	for _, e := range j.entries {
		if e.Generation == g {
			out = append(out, e)
		}
	}
	return out
}

// Count returns how many entries match category and key.
func (j *Journal) Count(category, key string) int {
	return len(j.Filter(category, key))
}

// LastOf returns the most recent entry matching category and key.
func (j *Journal) LastOf(category, key string) (JournalEntry, bool) {
	entries := j.Filter(category, key)
	if len(entries) == 0 {
		return JournalEntry{}, false
	}
	return entries[len(entries)-1], true
}

// Dump renders every entry, one per line.
func (j *Journal) Dump() string {
	var b strings.Builder
	for _, e := range j.entries {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}
