package bflang

import "strings"

// Render writes a raw tree back out as source text. Only parser-level
// nodes render; optimizer-introduced nodes have no source form.
func Render(instrs []Instruction) string {
	var sb strings.Builder
	render(&sb, instrs)
	return sb.String()
}

func render(sb *strings.Builder, instrs []Instruction) {
	for _, instr := range instrs {
		switch instr := instr.(type) {
		case Add:
			repeatOp(sb, instr.Delta, OpInc, OpDec)
		case Move:
			repeatOp(sb, instr.Delta, OpRight, OpLeft)
		case Input:
			sb.WriteByte(byte(OpInput))
		case Output:
			sb.WriteByte(byte(OpOut))
		case Loop:
			sb.WriteByte(byte(OpOpen))
			render(sb, instr.Body)
			sb.WriteByte(byte(OpClose))
		}
	}
}

func repeatOp(sb *strings.Builder, delta int, positive, negative Op) {
	op := positive
	if delta < 0 {
		op = negative
		delta = -delta
	}
	for range delta {
		sb.WriteByte(byte(op))
	}
}
