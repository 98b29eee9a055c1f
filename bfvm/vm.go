package bfvm

import (
	"bufio"
	"io"

	"github.com/reusee/bf/bflang"
)

// VM executes the raw command stream one step at a time, bypassing the
// compiler's IR entirely. Loop brackets are resolved to a jump map up
// front, so stepping is a single table lookup per bracket.
type VM struct {
	Tape *Tape

	// Input is the byte source for ',' commands. End of input, a nil
	// Input, or NoInput write the zero sentinel to the cell.
	Input   io.Reader
	NoInput bool

	// Output receives bytes written by '.' commands. A nil Output
	// discards them.
	Output io.Writer

	ops       []bflang.Op
	positions []bflang.Pos
	braces    map[int]int
	pc        int
	reader    *bufio.Reader
}

// Step describes one executed command.
type Step struct {
	PC  int
	Op  bflang.Op
	Pos bflang.Pos
}

func NewVM(name string, source io.Reader) (*VM, error) {
	content, err := io.ReadAll(source)
	if err != nil {
		return nil, err
	}

	vm := &VM{
		Tape:   NewTape(DefaultTapeSize),
		braces: make(map[int]int),
	}

	tokenizer := bflang.NewTokenizer(bflang.NewSource(name, string(content)))
	var openStack []int
	for {
		token := tokenizer.Current()
		if token.Kind == bflang.TokenEOF {
			break
		}
		tokenizer.Consume()

		pc := len(vm.ops)
		switch token.Op {
		case bflang.OpOpen:
			openStack = append(openStack, pc)
		case bflang.OpClose:
			if len(openStack) == 0 {
				return nil, bflang.WithPos(bflang.ErrUnbalancedLoop, token.Pos)
			}
			open := openStack[len(openStack)-1]
			openStack = openStack[:len(openStack)-1]
			vm.braces[open] = pc
			vm.braces[pc] = open
		}
		vm.ops = append(vm.ops, token.Op)
		vm.positions = append(vm.positions, token.Pos)
	}
	if len(openStack) > 0 {
		open := openStack[len(openStack)-1]
		return nil, bflang.WithPos(bflang.ErrUnbalancedLoop, vm.positions[open])
	}

	return vm, nil
}

// Len returns the number of commands in the program.
func (v *VM) Len() int {
	return len(v.ops)
}

// Run executes the program, yielding after every command. Stopping the
// iteration pauses the machine; a later Run resumes from the same
// position.
func (v *VM) Run(yield func(Step, error) bool) {
	for v.pc < len(v.ops) {
		pc := v.pc
		op := v.ops[pc]

		var err error
		switch op {

		case bflang.OpInc:
			v.Tape.Add(1)
		case bflang.OpDec:
			v.Tape.Add(-1)
		case bflang.OpRight:
			v.Tape.Move(1)
		case bflang.OpLeft:
			v.Tape.Move(-1)

		case bflang.OpOut:
			err = v.writeByte(v.Tape.Read())

		case bflang.OpInput:
			var value uint8
			value, err = v.readByte()
			if err == nil {
				v.Tape.Write(value)
			}

		case bflang.OpOpen:
			if v.Tape.Read() == 0 {
				v.pc = v.braces[pc]
			}
		case bflang.OpClose:
			if v.Tape.Read() != 0 {
				v.pc = v.braces[pc]
			}

		}
		v.pc++

		if !yield(Step{
			PC:  pc,
			Op:  op,
			Pos: v.positions[pc],
		}, err) {
			return
		}
		if err != nil {
			return
		}
	}
}

func (v *VM) readByte() (uint8, error) {
	if v.NoInput || v.Input == nil {
		return 0, nil
	}
	if v.reader == nil {
		v.reader = bufio.NewReader(v.Input)
	}
	b, err := v.reader.ReadByte()
	if err == io.EOF {
		// end of input is the zero sentinel
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return b, nil
}

func (v *VM) writeByte(b uint8) error {
	if v.Output == nil {
		return nil
	}
	_, err := v.Output.Write([]byte{b})
	return err
}
