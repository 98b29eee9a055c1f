package bflang

import (
	"testing"
)

// machine executes IR trees directly, with the same wraparound
// semantics the generated C has: uint8 cells, pointer wrapping at both
// tape ends, end of input leaving the cell untouched. run reports false
// when the step limit is hit, so spins can be detected instead of
// hanging the test.
type machine struct {
	tape    []uint8
	pointer int
	input   []byte
	output  []byte
	steps   int
}

const machineStepLimit = 1_000_000

func newMachine(size int) *machine {
	return &machine{
		tape: make([]uint8, size),
	}
}

func (m *machine) at(offset int) *uint8 {
	size := len(m.tape)
	idx := ((m.pointer+offset)%size + size) % size
	return &m.tape[idx]
}

func (m *machine) step() bool {
	m.steps++
	return m.steps <= machineStepLimit
}

func (m *machine) run(instrs []Instruction) bool {
	for _, instr := range instrs {
		if !m.step() {
			return false
		}

		switch instr := instr.(type) {

		case Add:
			*m.at(0) += uint8(instr.Delta)

		case Move:
			m.pointer += instr.Delta

		case Set:
			*m.at(0) = uint8(instr.Value)

		case OffsetAdd:
			*m.at(instr.Offset) += uint8(instr.Delta)

		case Mul:
			*m.at(instr.Offset) += *m.at(0) * uint8(instr.Factor)

		case Scan:
			for *m.at(0) != 0 {
				if !m.step() {
					return false
				}
				m.pointer += instr.Step
			}

		case Input:
			if len(m.input) > 0 {
				*m.at(0) = m.input[0]
				m.input = m.input[1:]
			}

		case Output:
			m.output = append(m.output, *m.at(0))

		case Loop:
			for *m.at(0) != 0 {
				if !m.step() {
					return false
				}
				if !m.run(instr.Body) {
					return false
				}
			}

		}
	}
	return true
}

func mustParse(t *testing.T, src string) []Instruction {
	t.Helper()
	instrs, err := Parse(NewTokenizer(NewSource("test", src)))
	if err != nil {
		t.Fatal(err)
	}
	return instrs
}

func irAtLevel(t *testing.T, src string, level OptLevel) []Instruction {
	t.Helper()
	instrs := mustParse(t, src)
	switch level {
	case OptCoalesce:
		instrs = Coalesce(instrs)
	case OptFull:
		instrs = Optimize(Coalesce(instrs))
	}
	return instrs
}

func runLevel(t *testing.T, src string, level OptLevel, input string) *machine {
	t.Helper()
	m := newMachine(64)
	m.input = []byte(input)
	if !m.run(irAtLevel(t, src, level)) {
		t.Fatalf("%q: step limit exceeded", src)
	}
	return m
}
