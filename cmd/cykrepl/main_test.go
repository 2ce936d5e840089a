package main

import (
	"testing"

	"github.com/npillmayer/gocyk/cyk"
	"github.com/npillmayer/gocyk/grammar"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func makeIntp(t *testing.T) *Intp {
	g, err := grammar.LoadFile("CFG.txt")
	if err != nil {
		t.Fatal(err)
	}
	return &Intp{recognizer: cyk.NewRecognizer(g)}
}

func TestSampleGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocyk.repl")
	defer teardown()
	//
	intp := makeIntp(t)
	for input, expected := range map[string]bool{
		"()":     true,
		"[()]":   true,
		"([])[]": true,
		"([)]":   false,
		"":       false,
	} {
		accepted, err := intp.Recognize(input)
		if err != nil {
			t.Fatal(err)
		}
		if accepted != expected {
			t.Errorf("expected accepted(%q) = %v, is %v", input, expected, accepted)
		}
	}
}

func TestCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocyk.repl")
	defer teardown()
	//
	intp := makeIntp(t)
	if intp.Execute(":table") || !intp.showTable {
		t.Errorf("expected :table to switch on display of chart")
	}
	if intp.Execute(":grammar") {
		t.Errorf("expected :grammar not to quit")
	}
	if intp.Execute(":nonsense") {
		t.Errorf("expected unknown command not to quit")
	}
	if !intp.Execute(":quit") {
		t.Errorf("expected :quit to quit")
	}
}

func TestLeveledRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocyk.repl")
	defer teardown()
	//
	g, err := grammar.LoadString("S -> AB | ε\nA -> a\nB -> b\n")
	if err != nil {
		t.Fatal(err)
	}
	ll := leveledRules(g)
	// S, S ➞ A B, S ➞ ε, A, A ➞ a, B, B ➞ b
	if len(ll) != 7 {
		t.Fatalf("expected 7 list items, have %d", len(ll))
	}
	if ll[0].Text != "S" || ll[0].Level != 0 || ll[2].Text != "S ➞ ε" || ll[2].Level != 1 {
		t.Errorf("expected rules for S first, have %v", ll[:3])
	}
}
