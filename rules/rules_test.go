package rules

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/reusee/turing/machines"
	"github.com/reusee/turing/tapes"
)

func TestParse(t *testing.T) {
	cases := []struct {
		text string
		want Cell
	}{
		{"1>2", Cell{Write: '1', Move: tapes.Right, State: "Q2"}},
		{"0<10", Cell{Write: '0', Move: tapes.Left, State: "Q10"}},
		{"x!a", Cell{Write: 'x', Move: tapes.Stay, State: "Qa"}},
		{"_>0", Cell{Write: ' ', Move: tapes.Right, State: "Q0"}},
		{" é<3 ", Cell{Write: 'é', Move: tapes.Left, State: "Q3"}},
	}
	for _, c := range cases {
		got, err := Parse(c.text, ' ')
		if err != nil {
			t.Fatalf("%q: %v", c.text, err)
		}
		if got != c.want {
			t.Fatalf("%q: got %+v", c.text, got)
		}
		text, err := Format(got, ' ')
		if err != nil {
			t.Fatal(err)
		}
		if text != strings.TrimSpace(c.text) {
			t.Fatalf("got %q", text)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, text := range []string{
		"",
		"1",
		"1>",
		"1^2",
		"1>b",
		"1>2a",
	} {
		if _, err := Parse(text, '_'); !errors.Is(err, ErrBadCell) {
			t.Fatalf("%q: got %v", text, err)
		}
	}
}

func TestFormatErrors(t *testing.T) {
	if _, err := Format(Cell{Write: '1', Move: tapes.Right, State: "q0"}, '_'); !errors.Is(err, ErrBadCell) {
		t.Fatalf("got %v", err)
	}
	if _, err := Format(Cell{Write: '1', Move: tapes.Direction(5), State: "Q0"}, '_'); !errors.Is(err, ErrBadCell) {
		t.Fatalf("got %v", err)
	}
}

func TestGrid(t *testing.T) {
	grid := Grid{
		"Q0": {
			"1": "0>0",
			"0": "1>1",
			"_": "_!a",
		},
		"Q1": {
			"_": "",
		},
	}
	rules, err := grid.Rules('_')
	if err != nil {
		t.Fatal(err)
	}
	want := []machines.Rule{
		{From: "Q0", Read: '0', To: "Q1", Write: '1', Move: tapes.Right},
		{From: "Q0", Read: '1', To: "Q0", Write: '0', Move: tapes.Right},
		{From: "Q0", Read: '_', To: "Qa", Write: '_', Move: tapes.Stay},
	}
	if diff := cmp.Diff(want, rules); diff != "" {
		t.Fatal(diff)
	}
	if diff := cmp.Diff([]string{"Q0", "Q1", "Qa"}, grid.States('_')); diff != "" {
		t.Fatal(diff)
	}

	back, err := FromRules(rules, '_')
	if err != nil {
		t.Fatal(err)
	}
	delete(grid, "Q1")
	if diff := cmp.Diff(grid, back); diff != "" {
		t.Fatal(diff)
	}

	// the grid drives a machine
	m, err := machines.New(machines.Definition{
		States:       grid.States('_'),
		TapeAlphabet: []tapes.Symbol{'0', '1', '_'},
		Blank:        '_',
		Start:        "Q0",
		Accept:       []string{AcceptState},
		Rules:        rules,
		MaxSteps:     100,
	}, tapes.New("1", '_'))
	if err != nil {
		t.Fatal(err)
	}
	if !m.Run() {
		t.Fatalf("got %v", m.Err())
	}
}

func TestGridErrors(t *testing.T) {
	grid := Grid{
		"Q0": {
			"ab": "1>0",
			"1":  "1?0",
			"0":  "1>x",
		},
	}
	_, err := grid.Rules('_')
	if !errors.Is(err, ErrBadCell) {
		t.Fatalf("got %v", err)
	}
	msg := err.Error()
	for _, want := range []string{
		`cell (Q0, "ab")`,
		`cell (Q0, "1")`,
		`cell (Q0, "0")`,
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("missing %q in %s", want, msg)
		}
	}

	if _, err := FromRules([]machines.Rule{
		{From: "q0", Read: '1', To: "halt", Write: '1', Move: tapes.Right},
	}, '_'); !errors.Is(err, ErrBadCell) {
		t.Fatalf("got %v", err)
	}
}
