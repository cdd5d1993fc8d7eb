package game

import (
	"math/rand"
	"testing"

	"github.com/Garsondee/Term-Match/internal/match"
)

func TestSim_DefaultsToSampleDeck(t *testing.T) {
	s := NewSim()
	if s.Ctrl.State().TotalPairs == 0 {
		t.Fatal("sim should deal the embedded sample deck")
	}
	if s.Ctrl.Generation() != 1 {
		t.Fatalf("sim should deal once on construction, generation=%d", s.Ctrl.Generation())
	}
}

func TestSim_PerfectPlayerWinsWithoutMisses(t *testing.T) {
	s := NewSim(WithSeed(3), WithStrategy(StrategyPerfect), WithThinkTicks(4))
	ticks, won := s.PlayUntilWin(10_000)
	if !won {
		t.Fatal("perfect player should win")
	}
	st := s.Ctrl.State()
	if st.Misses != 0 {
		t.Fatalf("perfect player missed %d times", st.Misses)
	}
	if floor := (st.TotalPairs - 1) * 4; ticks < floor {
		t.Fatalf("won in %d ticks, faster than %d think ticks allow", ticks, floor)
	}
}

func TestSim_RandomPlayersEventuallyWin(t *testing.T) {
	for _, st := range []Strategy{StrategyRandom, StrategyMemory} {
		for seed := int64(1); seed <= 5; seed++ {
			s := NewSim(WithSeed(seed), WithStrategy(st), WithThinkTicks(1))
			if _, won := s.PlayUntilWin(200_000); !won {
				t.Fatalf("%s player seed %d did not win", st, seed)
			}
			if got := s.Ctrl.State().MatchesFound; got != s.Ctrl.State().TotalPairs {
				t.Fatalf("%s seed %d: matches %d", st, seed, got)
			}
		}
	}
}

func TestSim_MemoryPlayerNeverRepeatsMiss(t *testing.T) {
	s := NewSim(WithSeed(11), WithThinkTicks(1))
	p := NewRandomPlayer(rand.New(rand.NewSource(11)), true) // #nosec G404 -- test
	tried := map[[2]string]bool{}
	for n := 0; n < 100_000 && !s.Ctrl.Won(); n++ {
		term, def, ok := p.Next(s.Ctrl.State())
		if !ok {
			break
		}
		st := s.Ctrl.State()
		key := [2]string{st.Terms[term].Text, st.Definitions[def].Text}
		if tried[key] {
			t.Fatalf("pairing %v tried twice", key)
		}
		tried[key] = true
		s.Pair(term, def)
		s.RunTicks(1)
	}
	if !s.Ctrl.Won() {
		t.Fatal("memory player should win")
	}
}

func TestSim_SameSeedSameRun(t *testing.T) {
	run := func() (int, int) {
		s := NewSim(WithSeed(99), WithStrategy(StrategyRandom), WithThinkTicks(2))
		ticks, _ := s.PlayUntilWin(100_000)
		return ticks, s.Ctrl.State().Misses
	}
	t1, m1 := run()
	t2, m2 := run()
	if t1 != t2 || m1 != m2 {
		t.Fatalf("seeded runs diverged: %d/%d vs %d/%d", t1, m1, t2, m2)
	}
}

func TestParseStrategy(t *testing.T) {
	for _, name := range []string{"random", " Perfect ", "MEMORY"} {
		if _, err := ParseStrategy(name); err != nil {
			t.Fatalf("%q: %v", name, err)
		}
	}
	if _, err := ParseStrategy("cheat"); err == nil {
		t.Fatal("unknown strategy should fail")
	}
}

func TestPerfectPlayer_IdleWhenSolved(t *testing.T) {
	s := abcSim(t)
	s.Pair(0, slotShowing(t, s, "1"))
	s.Pair(1, slotShowing(t, s, "2"))
	s.Pair(2, slotShowing(t, s, "3"))
	if _, _, ok := (PerfectPlayer{}).Next(s.Ctrl.State()); ok {
		t.Fatal("nothing left to play")
	}
	if term, def, _ := (PerfectPlayer{}).Next(abcSim(t).Ctrl.State()); term != 0 || def != match.ID(1) {
		t.Fatalf("expected A to slot 1, got %d %d", term, def)
	}
}
