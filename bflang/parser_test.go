package bflang

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParseBasic(t *testing.T) {
	instrs := mustParse(t, "+-><.,")
	expected := []Instruction{
		Add{Delta: 1},
		Add{Delta: -1},
		Move{Delta: 1},
		Move{Delta: -1},
		Output{},
		Input{},
	}
	if !reflect.DeepEqual(instrs, expected) {
		t.Fatalf("got %#v", instrs)
	}
}

func TestParseNesting(t *testing.T) {
	instrs := mustParse(t, "+[>[-]<]")
	expected := []Instruction{
		Add{Delta: 1},
		Loop{Body: []Instruction{
			Move{Delta: 1},
			Loop{Body: []Instruction{
				Add{Delta: -1},
			}},
			Move{Delta: -1},
		}},
	}
	if !reflect.DeepEqual(instrs, expected) {
		t.Fatalf("got %#v", instrs)
	}
}

func TestParseEmptyLoop(t *testing.T) {
	instrs := mustParse(t, "+[]")
	if len(instrs) != 2 {
		t.Fatalf("got %d instructions", len(instrs))
	}
	loop, ok := instrs[1].(Loop)
	if !ok {
		t.Fatalf("got %#v", instrs[1])
	}
	if len(loop.Body) != 0 {
		t.Fatalf("got %#v", loop.Body)
	}
}

func TestParseUnmatchedClose(t *testing.T) {
	_, err := Parse(NewTokenizer(NewSource("test", "+>\n-]")))
	if !errors.Is(err, ErrUnbalancedLoop) {
		t.Fatalf("got %v", err)
	}
	var posErr PosError
	if !errors.As(err, &posErr) {
		t.Fatalf("got %v", err)
	}
	if posErr.Pos.Line != 2 || posErr.Pos.Column != 2 {
		t.Fatalf("got %d:%d", posErr.Pos.Line, posErr.Pos.Column)
	}
	if !strings.Contains(err.Error(), "test:2:2") {
		t.Fatalf("got %q", err.Error())
	}
}

func TestParseUnterminatedLoop(t *testing.T) {
	_, err := Parse(NewTokenizer(NewSource("test", "+[>[-]")))
	if !errors.Is(err, ErrUnbalancedLoop) {
		t.Fatalf("got %v", err)
	}
	var posErr PosError
	if !errors.As(err, &posErr) {
		t.Fatalf("got %v", err)
	}
	if posErr.Pos.Line != 1 || posErr.Pos.Column != 2 {
		t.Fatalf("got %d:%d", posErr.Pos.Line, posErr.Pos.Column)
	}
}

func TestParseTruncationsInsideLoop(t *testing.T) {
	// every truncation inside an open loop must fail
	const src = "++[>+++<-]"
	openAt := strings.Index(src, "[")
	closeAt := strings.Index(src, "]")
	for end := openAt + 1; end <= closeAt; end++ {
		_, err := Parse(NewTokenizer(NewSource("test", src[:end])))
		if !errors.Is(err, ErrUnbalancedLoop) {
			t.Fatalf("truncation at %d: got %v", end, err)
		}
	}
	// the full program parses
	if _, err := Parse(NewTokenizer(NewSource("test", src))); err != nil {
		t.Fatal(err)
	}
}

func TestParseBalanceAcrossComments(t *testing.T) {
	// brackets in comment positions still count, there is no quoting
	if _, err := Parse(NewTokenizer(NewSource("test", "loop: [ body - ]"))); err != nil {
		t.Fatal(err)
	}
}
