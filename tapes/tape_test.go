package tapes

import (
	"math"
	"strings"
	"testing"
)

func TestInitialization(t *testing.T) {
	tape := New("abc", '_')
	if tape.Read() != 'a' {
		t.Fatalf("got %c", tape.Read())
	}
	tape.Move(Right)
	if tape.Read() != 'b' {
		t.Fatalf("got %c", tape.Read())
	}
	if tape.Head() != 1 {
		t.Fatalf("got %d", tape.Head())
	}
}

func TestWriteAndMove(t *testing.T) {
	tape := New("a", '_')
	tape.Write('x')
	if tape.Read() != 'x' {
		t.Fatalf("got %c", tape.Read())
	}
	tape.Move(Right)
	if tape.Read() != '_' {
		t.Fatalf("got %c", tape.Read())
	}
	tape.Move(Stay)
	if tape.Head() != 1 {
		t.Fatalf("got %d", tape.Head())
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, input := range []string{
		"a",
		"ab",
		"0110101",
		"héllo",
	} {
		tape := New(input, '_')
		if got := tape.String(); got != input {
			t.Fatalf("got %q, want %q", got, input)
		}
		if tape.Head() != 0 {
			t.Fatal()
		}
	}
}

func TestStringEmpty(t *testing.T) {
	if s := New("", '_').String(); s != "" {
		t.Fatalf("got %q", s)
	}
	if s := New("___", '_').String(); s != "" {
		t.Fatalf("got %q", s)
	}
}

func TestStringIsRelative(t *testing.T) {
	tape := New("", '_')
	tape.SetSymbol(-3, 'x')
	tape.SetSymbol(-1, 'y')
	if s := tape.String(); s != "x_y" {
		t.Fatalf("got %q", s)
	}
	tape.Reset(tape.String())
	if tape.SymbolAt(0) != 'x' || tape.SymbolAt(1) != '_' || tape.SymbolAt(2) != 'y' {
		t.Fatalf("got %q", tape.Snapshot(3))
	}
}

func TestWriteBlankRemovesCell(t *testing.T) {
	tape := New("abc", '_')
	for _, pos := range []int64{0, 1, 2, 100, -100} {
		tape.Seek(pos)
		tape.Write('_')
		if tape.Read() != '_' {
			t.Fatalf("got %c", tape.Read())
		}
		if _, ok := tape.Cells()[pos]; ok {
			t.Fatalf("position %d still stored", pos)
		}
	}
	if tape.Len() != 0 {
		t.Fatalf("got %d", tape.Len())
	}
}

func TestSetSymbol(t *testing.T) {
	tape := New("ab", '_')
	tape.SetSymbol(5, 'z')
	if tape.Head() != 0 {
		t.Fatal("head moved")
	}
	if tape.SymbolAt(5) != 'z' {
		t.Fatal()
	}
	if s := tape.String(); s != "ab___z" {
		t.Fatalf("got %q", s)
	}
	tape.SetSymbol(5, '_')
	if tape.Len() != 2 {
		t.Fatalf("got %d", tape.Len())
	}
}

func TestMoveInverse(t *testing.T) {
	for _, start := range []int64{0, 1, -1, 1 << 40, -(1 << 40)} {
		tape := New("abc", '_')
		tape.Seek(start)
		before := tape.Cells()
		tape.Move(Right)
		tape.Move(Left)
		if tape.Head() != start {
			t.Fatalf("got %d, want %d", tape.Head(), start)
		}
		after := tape.Cells()
		if len(before) != len(after) {
			t.Fatal("contents changed")
		}
		for pos, s := range before {
			if after[pos] != s {
				t.Fatal("contents changed")
			}
		}
	}
}

func TestMoveN(t *testing.T) {
	tape := New("", '_')
	tape.MoveN(Left, 5)
	if tape.Head() != -5 {
		t.Fatalf("got %d", tape.Head())
	}
	tape.MoveN(Right, 7)
	if tape.Head() != 2 {
		t.Fatalf("got %d", tape.Head())
	}
	tape.MoveN(Stay, 100)
	if tape.Head() != 2 {
		t.Fatalf("got %d", tape.Head())
	}
}

func TestReset(t *testing.T) {
	tape := New("abc", '_')
	tape.Move(Right)
	tape.SetSymbol(-4, 'q')
	tape.Reset("xyz")
	if tape.Read() != 'x' {
		t.Fatalf("got %c", tape.Read())
	}
	if tape.Head() != 0 {
		t.Fatal()
	}
	if tape.Len() != 3 {
		t.Fatalf("got %d", tape.Len())
	}
	tape.Reset("a_b")
	if tape.Len() != 2 {
		t.Fatalf("blank stored: %d", tape.Len())
	}
	tape.Reset("")
	if tape.Len() != 0 {
		t.Fatal()
	}
}

func TestSnapshot(t *testing.T) {
	tape := New("abc", '_')
	snapshot := tape.Snapshot(2)
	if snapshot != "_ _ [a] b c" {
		t.Fatalf("got %q", snapshot)
	}
	tape.Move(Left)
	if s := tape.Snapshot(1); s != "_ [_] a" {
		t.Fatalf("got %q", s)
	}
	if s := tape.Snapshot(0); s != "[_]" {
		t.Fatalf("got %q", s)
	}
	if tape.Head() != -1 || tape.Len() != 3 {
		t.Fatal("snapshot mutated tape")
	}
	if !strings.Contains(New("xyz", '_').Snapshot(10), "[x] y z") {
		t.Fatal()
	}
}

func TestSnapshotAtInt64Edges(t *testing.T) {
	tape := New("", '_')
	tape.Seek(math.MaxInt64)
	if s := tape.Snapshot(1); s != "_ [_]" {
		t.Fatalf("got %q", s)
	}
	tape.Write('a')
	if s := tape.Snapshot(2); s != "_ _ [a]" {
		t.Fatalf("got %q", s)
	}
	tape.Seek(math.MinInt64)
	if s := tape.Snapshot(1); s != "[_] _" {
		t.Fatalf("got %q", s)
	}
	var n int
	for range tape.Window(3) {
		n++
	}
	if n != 4 {
		t.Fatalf("got %d", n)
	}
}

func TestRewind(t *testing.T) {
	tape := New("ab", '_')
	tape.MoveN(Right, 5)
	var events []Event
	tape.Observe(func(_ *Tape, ev Event) {
		events = append(events, ev)
	})
	tape.Rewind()
	if tape.Head() != 0 || tape.String() != "ab" {
		t.Fatalf("got %d %q", tape.Head(), tape.String())
	}
	if len(events) != 1 || events[0].Op != OpMove || events[0].Head != 0 || events[0].Symbol != 'a' {
		t.Fatalf("got %+v", events)
	}
}

func TestBounds(t *testing.T) {
	tape := New("", '_')
	if _, _, ok := tape.Bounds(); ok {
		t.Fatal()
	}
	tape.SetSymbol(3, 'a')
	tape.SetSymbol(-2, 'b')
	lo, hi, ok := tape.Bounds()
	if !ok || lo != -2 || hi != 3 {
		t.Fatalf("got %d %d %v", lo, hi, ok)
	}
}

func TestState(t *testing.T) {
	tape := New("ab", '_')
	tape.MoveN(Left, 3)
	tape.Write('z')
	restored := FromState(tape.State())
	if restored.Head() != -3 {
		t.Fatalf("got %d", restored.Head())
	}
	if restored.String() != tape.String() {
		t.Fatalf("got %q", restored.String())
	}
	if restored.Blank() != '_' {
		t.Fatal()
	}
}

func TestDirection(t *testing.T) {
	for _, d := range []Direction{Left, Right, Stay} {
		text, err := d.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got Direction
		if err := got.UnmarshalText(text); err != nil {
			t.Fatal(err)
		}
		if got != d {
			t.Fatalf("got %v", got)
		}
	}
	if _, err := ParseDirection("UP"); err == nil {
		t.Fatal("should error")
	}
	if _, err := Direction(9).MarshalText(); err == nil {
		t.Fatal("should error")
	}
	if Direction(9).String() != "Direction(9)" {
		t.Fatal()
	}
}
