package bfvm

import (
	"bytes"
	"strings"
	"testing"
)

func TestTapeMoveWraps(t *testing.T) {
	tape := NewTape(10)
	tape.Move(-1)
	if tape.Pointer != 9 {
		t.Fatalf("pointer %d", tape.Pointer)
	}
	tape.Move(3)
	if tape.Pointer != 2 {
		t.Fatalf("pointer %d", tape.Pointer)
	}
	tape.Move(-25)
	if tape.Pointer != 7 {
		t.Fatalf("pointer %d", tape.Pointer)
	}
}

func TestTapeAddWraps(t *testing.T) {
	tape := NewTape(10)
	tape.Add(-1)
	if tape.Read() != 255 {
		t.Fatalf("got %d", tape.Read())
	}
	tape.Add(2)
	if tape.Read() != 1 {
		t.Fatalf("got %d", tape.Read())
	}
}

func TestTapeReset(t *testing.T) {
	tape := NewTape(10)
	tape.Write(42)
	tape.Move(3)
	tape.Reset()
	if tape.Pointer != 0 {
		t.Fatalf("pointer %d", tape.Pointer)
	}
	for i, cell := range tape.Cells {
		if cell != 0 {
			t.Fatalf("cell %d = %d", i, cell)
		}
	}
}

func TestTapeWindow(t *testing.T) {
	tape := NewTape(10)
	tape.Write(7)
	tape.Move(2)
	window := tape.Window(2)
	if !strings.Contains(window, "pointer: 2") {
		t.Fatalf("got %q", window)
	}
	if !strings.Contains(window, "#0 ") {
		t.Fatalf("got %q", window)
	}
	if !strings.Contains(window, "7") {
		t.Fatalf("got %q", window)
	}
}

func TestTapeDump(t *testing.T) {
	tape := NewTape(3)
	tape.Write(1)
	tape.Move(1)
	tape.Write(2)
	buf := new(bytes.Buffer)
	if err := tape.Dump(buf); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "tape = [\n1, 2, 0\n]\n" {
		t.Fatalf("got %q", buf.String())
	}
}
