package game

import (
	"strings"
	"testing"

	"github.com/Garsondee/Term-Match/internal/match"
)

// abcSim deals A/B/C with definition slots showing 3, 1, 2.
func abcSim(t *testing.T, opts ...SimOption) *Sim {
	t.Helper()
	base := []SimOption{
		WithPairs([2]string{"A", "1"}, [2]string{"B", "2"}, [2]string{"C", "3"}),
		WithOrder(2, 0, 1),
	}
	return NewSim(append(base, opts...)...)
}

func slotShowing(t *testing.T, s *Sim, txt string) match.ID {
	t.Helper()
	for _, d := range s.Ctrl.State().Definitions {
		if d.Text == txt {
			return d.ID
		}
	}
	t.Fatalf("no definition slot shows %q", txt)
	return match.None
}

func TestController_ThreePairScenario(t *testing.T) {
	s := abcSim(t)
	st := s.Ctrl.State()
	if got := []string{st.Definitions[0].Text, st.Definitions[1].Text, st.Definitions[2].Text}; got[0] != "3" || got[1] != "1" || got[2] != "2" {
		t.Fatalf("expected slots [3 1 2], got %v", got)
	}

	s.Pair(0, slotShowing(t, s, "2"))
	if st.MatchesFound != 0 || st.Misses != 1 {
		t.Fatalf("miss should not count: matches=%d misses=%d", st.MatchesFound, st.Misses)
	}
	s.Pair(0, slotShowing(t, s, "1"))
	s.Pair(1, slotShowing(t, s, "2"))
	s.Pair(2, slotShowing(t, s, "3"))

	if !s.Ctrl.Won() || st.MatchesFound != 3 {
		t.Fatalf("expected a win with 3 matches, got won=%v matches=%d", s.Ctrl.Won(), st.MatchesFound)
	}
	if n := s.Ctrl.Journal().Count(catWin, keyComplete); n != 1 {
		t.Fatalf("win should be journaled once, got %d", n)
	}
	if msg, _ := s.Ctrl.Animator().Banner(); msg != winMessage {
		t.Fatalf("banner = %q", msg)
	}

	s.RunTicks(lineGrowTicks + lineHoldTicks + lineFadeTicks)
	lines := s.Ctrl.Connectors()
	if lines.Len() != 3 || lines.Persistent() != 3 {
		t.Fatalf("expected 3 persistent correct lines, got len=%d persistent=%d", lines.Len(), lines.Persistent())
	}
	for _, c := range lines.Lines() {
		if !c.Grown() || c.Alpha() != 1 {
			t.Fatalf("correct line should be fully drawn and opaque: grown=%v alpha=%v", c.Grown(), c.Alpha())
		}
	}
}

func TestController_IncorrectLineLifetime(t *testing.T) {
	s := abcSim(t)
	s.Pair(0, slotShowing(t, s, "3"))
	lines := s.Ctrl.Connectors()
	if lines.Len() != 1 || lines.Persistent() != 0 {
		t.Fatalf("expected one incorrect line, got len=%d persistent=%d", lines.Len(), lines.Persistent())
	}
	c := lines.Lines()[0]

	s.RunTicks(lineGrowTicks)
	if !c.Grown() {
		t.Fatal("line should reach the definition after the grow phase")
	}
	s.RunTicks(lineHoldTicks)
	if c.Alpha() != 1 {
		t.Fatalf("line should be opaque through the hold, alpha=%v", c.Alpha())
	}
	s.RunTicks(lineFadeTicks - 1)
	if lines.Len() != 1 {
		t.Fatal("line removed before its fade finished")
	}
	s.RunTicks(1)
	if lines.Len() != 0 {
		t.Fatalf("incorrect line should be gone after grow+hold+fade, %d left", lines.Len())
	}
}

func TestController_ConcurrentMissesKeepOwnTimers(t *testing.T) {
	s := abcSim(t)
	s.Pair(0, slotShowing(t, s, "3"))
	s.RunTicks(10)
	s.Pair(1, slotShowing(t, s, "1"))
	lines := s.Ctrl.Connectors()
	if lines.Len() != 2 {
		t.Fatalf("expected two live incorrect lines, got %d", lines.Len())
	}
	second := lines.Lines()[1]

	s.RunTicks(lineGrowTicks + lineHoldTicks + lineFadeTicks - 10)
	if lines.Len() != 1 || lines.Lines()[0] != second {
		t.Fatalf("only the first line should have expired, %d left", lines.Len())
	}
	s.RunTicks(10)
	if lines.Len() != 0 {
		t.Fatalf("second line should expire 10 ticks later, %d left", lines.Len())
	}
}

func TestController_MissReleasesSelectionBeforeMarker(t *testing.T) {
	s := abcSim(t)
	s.Pair(0, slotShowing(t, s, "2"))

	if _, ok := s.Ctrl.State().Selected(); ok {
		t.Fatal("a miss must release the logical selection immediately")
	}
	term := s.Ctrl.Animator().Term(0)
	if !term.selected {
		t.Fatal("visual marker should persist while the flash plays")
	}
	s.RunTicks(2*flashTicks - 1)
	if !term.selected {
		t.Fatal("marker cleared before the flash finished")
	}
	s.RunTicks(1)
	if term.selected {
		t.Fatal("marker should clear when the flash completes")
	}
	if term.flash != 0 {
		t.Fatalf("flash should return to 0, got %v", term.flash)
	}
}

func TestController_ReselectDuringFlash(t *testing.T) {
	s := abcSim(t)
	s.Pair(0, slotShowing(t, s, "2"))
	s.RunTicks(5)

	s.ClickTerm(0)
	if id, ok := s.Ctrl.State().Selected(); !ok || id != 0 {
		t.Fatal("term should be selectable again while its flash plays")
	}
	s.RunTicks(2 * flashTicks)
	if !s.Ctrl.Animator().Term(0).selected {
		t.Fatal("flash completion must not clear a marker the player set again")
	}

	s.Pair(1, slotShowing(t, s, "1"))
	s.ClickTerm(2)
	s.RunTicks(2 * flashTicks)
	a := s.Ctrl.Animator()
	if a.Term(1).selected || !a.Term(2).selected {
		t.Fatalf("marker should follow the latest pick: t1=%v t2=%v", a.Term(1).selected, a.Term(2).selected)
	}
}

func TestController_DefinitionWithoutSelectionIsIgnored(t *testing.T) {
	s := abcSim(t)
	s.ClickDefinition(slotShowing(t, s, "1"))
	if s.Ctrl.Connectors().Len() != 0 || s.Ctrl.State().Misses != 0 {
		t.Fatal("a definition click with no selected term must do nothing")
	}
}

func TestController_RestartResetsEverything(t *testing.T) {
	s := abcSim(t)
	firstSession := s.Ctrl.Session()
	s.Pair(0, slotShowing(t, s, "1"))
	s.Pair(1, slotShowing(t, s, "3"))
	s.RunTicks(5)

	if !s.Ctrl.Restart() {
		t.Fatal("first restart should be accepted")
	}
	if s.Ctrl.Generation() != 1 {
		t.Fatal("board must not be rebuilt until the exit cue ends")
	}
	s.Settle(600)

	st := s.Ctrl.State()
	if s.Ctrl.Generation() != 2 {
		t.Fatalf("expected generation 2, got %d", s.Ctrl.Generation())
	}
	if s.Ctrl.Session() == firstSession {
		t.Fatal("restart should mint a new session id")
	}
	if st.MatchesFound != 0 || st.Misses != 0 || len(st.Matches) != 0 || st.TotalPairs != 3 {
		t.Fatalf("counters not reset: %+v", st)
	}
	if s.Ctrl.Connectors().Len() != 0 {
		t.Fatalf("connectors survived a restart: %d", s.Ctrl.Connectors().Len())
	}
	if len(s.Ctrl.Attempts().Recent()) != 0 {
		t.Fatal("attempt log survived a restart")
	}
	seen := map[match.Key]bool{}
	for _, d := range st.Definitions {
		if d.Matched {
			t.Fatal("definition still matched after restart")
		}
		seen[d.Key] = true
	}
	if len(seen) != 3 {
		t.Fatalf("new deal is not a bijection: %v", seen)
	}
	if msg, _ := s.Ctrl.Animator().Banner(); msg != "" {
		t.Fatalf("banner survived a restart: %q", msg)
	}
}

func TestController_RestartIgnoredWhileLocked(t *testing.T) {
	s := abcSim(t)
	if !s.Ctrl.Restart() {
		t.Fatal("first restart should be accepted")
	}
	s.RunTicks(3)
	if s.Ctrl.Restart() {
		t.Fatal("second restart during the exit cue must be ignored")
	}
	s.ClickRestart()
	if n := s.Ctrl.Journal().Count(catSession, keyRestartIgnored); n != 2 {
		t.Fatalf("expected 2 ignored restarts journaled, got %d", n)
	}
	s.Settle(600)
	if s.Ctrl.Generation() != 2 {
		t.Fatalf("re-entrant restart must not deal twice, generation=%d", s.Ctrl.Generation())
	}
}

func TestController_RestartUnlocksAfterCooldown(t *testing.T) {
	s := abcSim(t)
	s.RunTicks(60)
	s.Ctrl.Restart()

	// Exit span for 3 pairs: last of 6 items starts at 5*exitStagger.
	span := 5*exitStagger + exitTicks
	s.RunTicks(span - 1)
	if s.Ctrl.Generation() != 1 {
		t.Fatal("board rebuilt before the exit cue finished")
	}
	s.RunTicks(1)
	if s.Ctrl.Generation() != 2 {
		t.Fatal("board should be rebuilt when the exit cue ends")
	}
	s.RunTicks(restartCooldownTicks - 1)
	if !s.Ctrl.RestartLocked() {
		t.Fatal("restart unlocked too early")
	}
	s.RunTicks(1)
	if s.Ctrl.RestartLocked() {
		t.Fatal("restart should unlock after the cooldown")
	}
	if !s.Ctrl.Restart() {
		t.Fatal("restart after cooldown should be accepted")
	}
}

func TestController_ClicksIgnoredDuringExit(t *testing.T) {
	s := abcSim(t)
	s.Ctrl.Restart()
	s.ClickTerm(0)
	if _, ok := s.Ctrl.State().Selected(); ok {
		t.Fatal("board clicks must be ignored while the exit cue runs")
	}
	s.Settle(600)
	s.ClickTerm(0)
	if id, ok := s.Ctrl.State().Selected(); !ok || id != 0 {
		t.Fatal("board should accept clicks again after the new deal")
	}
}

func TestController_MatchedItemsInert(t *testing.T) {
	s := abcSim(t)
	s.Pair(0, slotShowing(t, s, "1"))
	s.ClickTerm(0)
	if _, ok := s.Ctrl.State().Selected(); ok {
		t.Fatal("matched term must not become selectable")
	}
	s.ClickTerm(1)
	s.ClickDefinition(slotShowing(t, s, "1"))
	if s.Ctrl.State().Misses != 0 || s.Ctrl.Connectors().Len() != 1 {
		t.Fatal("clicking a matched definition must not evaluate")
	}
}

func TestController_Summary(t *testing.T) {
	s := abcSim(t)
	s.Pair(0, slotShowing(t, s, "1"))
	sum := s.Ctrl.Summary()
	for _, want := range []string{"matched 1 / 3", "misses 0", "in progress", "A → 1", s.Ctrl.Session().String()} {
		if !strings.Contains(sum, want) {
			t.Fatalf("summary missing %q:\n%s", want, sum)
		}
	}
}
