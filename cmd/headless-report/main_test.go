package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRun_PerfectStrategyReport(t *testing.T) {
	var out bytes.Buffer
	cmd := newCmd(&options{}, &out)
	cmd.SetArgs([]string{"--runs", "2", "--strategy", "perfect", "--think", "3"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	report := out.String()
	for _, want := range []string{
		"deck=embedded",
		"strategy=perfect",
		"--- Run 1 (seed=42",
		"--- Run 2 (seed=43",
		"misses=0 accuracy=100%",
		"runs=2 solved=2 (100%)",
	} {
		if !strings.Contains(report, want) {
			t.Fatalf("report missing %q:\n%s", want, report)
		}
	}
}

func TestRun_RestartCountsOnce(t *testing.T) {
	var out bytes.Buffer
	cmd := newCmd(&options{}, &out)
	cmd.SetArgs([]string{"--runs", "1", "--strategy", "perfect", "--think", "30", "--restart-at", "40"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out.String(), "restarts=1") {
		t.Fatalf("expected one restart in the report:\n%s", out.String())
	}
}

func TestRun_RejectsBadFlags(t *testing.T) {
	cases := [][]string{
		{"--runs", "0"},
		{"--ticks", "-1"},
		{"--strategy", "cheat"},
		{"--data", "does-not-exist.json"},
	}
	for _, args := range cases {
		cmd := newCmd(&options{}, &bytes.Buffer{})
		cmd.SetArgs(args)
		if err := cmd.Execute(); err == nil {
			t.Fatalf("%v: expected an error", args)
		}
	}
}

func TestAccuracy(t *testing.T) {
	if got := accuracy(runStats{}); got != "n/a" {
		t.Fatalf("no attempts: got %q", got)
	}
	if got := accuracy(runStats{attempts: 8, misses: 2}); got != "75%" {
		t.Fatalf("got %q", got)
	}
}

func TestTickStrings(t *testing.T) {
	vals := []int{30, 10, 20, 40}
	if got := medianTickString(vals); got != "25.0" {
		t.Fatalf("median = %s", got)
	}
	if got := extremeTickString(vals, false); got != "10" {
		t.Fatalf("min = %s", got)
	}
	if got := extremeTickString(vals, true); got != "40" {
		t.Fatalf("max = %s", got)
	}
	if vals[0] != 30 {
		t.Fatal("median must not reorder its input")
	}
	if got := avgTickString(nil); got != "n/a" {
		t.Fatalf("empty avg = %s", got)
	}
}

func TestFirstTick_MissingIsNegative(t *testing.T) {
	if got := firstTick(nil, "correct", 0); got != -1 {
		t.Fatalf("got %d", got)
	}
}
