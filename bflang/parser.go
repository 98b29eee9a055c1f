package bflang

// Parse consumes the token stream and builds the raw program tree. Loop
// nesting must balance: a ']' without an open loop, or end of input with
// a loop still open, fails with ErrUnbalancedLoop at the offending
// bracket.
func Parse(tokenizer *Tokenizer) ([]Instruction, error) {
	var root []Instruction
	// innermost open loop body at the top
	var bodies [][]Instruction
	var openPositions []Pos

	appendInstr := func(instr Instruction) {
		if len(bodies) > 0 {
			bodies[len(bodies)-1] = append(bodies[len(bodies)-1], instr)
		} else {
			root = append(root, instr)
		}
	}

	for {
		token := tokenizer.Current()
		if token.Kind == TokenEOF {
			break
		}
		tokenizer.Consume()

		switch token.Op {

		case OpInc:
			appendInstr(Add{Delta: 1})
		case OpDec:
			appendInstr(Add{Delta: -1})
		case OpRight:
			appendInstr(Move{Delta: 1})
		case OpLeft:
			appendInstr(Move{Delta: -1})
		case OpInput:
			appendInstr(Input{})
		case OpOut:
			appendInstr(Output{})

		case OpOpen:
			bodies = append(bodies, []Instruction{})
			openPositions = append(openPositions, token.Pos)

		case OpClose:
			if len(bodies) == 0 {
				return nil, WithPos(ErrUnbalancedLoop, token.Pos)
			}
			body := bodies[len(bodies)-1]
			bodies = bodies[:len(bodies)-1]
			openPositions = openPositions[:len(openPositions)-1]
			appendInstr(Loop{Body: body})

		}
	}

	if len(bodies) > 0 {
		// report the innermost unterminated loop
		return nil, WithPos(ErrUnbalancedLoop, openPositions[len(openPositions)-1])
	}

	return root, nil
}
