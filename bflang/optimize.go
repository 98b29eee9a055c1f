package bflang

import "slices"

// Optimize rewrites loops into cheaper equivalents. Inner loops are
// resolved before their parents, since the outer patterns only match
// bodies whose loops are already in simplest form. The input must be
// coalesced; the result is coalesced again after rewriting.
func Optimize(instrs []Instruction) []Instruction {
	return optimizeSeq(instrs, true)
}

func optimizeSeq(instrs []Instruction, programStart bool) []Instruction {
	ret := make([]Instruction, 0, len(instrs))

	for _, instr := range instrs {
		loop, ok := instr.(Loop)
		if !ok {
			ret = append(ret, instr)
			continue
		}

		loop.Body = optimizeSeq(loop.Body, false)

		if isLoopDead(ret, programStart) {
			// the current cell is provably zero here, the loop
			// never runs
			continue
		}

		ret = append(ret, rewriteLoop(loop)...)
	}

	return Coalesce(ret)
}

// isLoopDead reports whether the current cell is zero at this point in
// the sequence: at the very start of the program (all cells zero), or
// directly after a construct that only exits on a zero cell.
func isLoopDead(prefix []Instruction, programStart bool) bool {
	if len(prefix) == 0 {
		return programStart
	}
	switch prev := prefix[len(prefix)-1].(type) {
	case Loop, Scan:
		return true
	case Set:
		return prev.Value == 0
	}
	return false
}

// rewriteLoop tries each loop pattern in priority order. A body that
// matches no pattern keeps its loop, with offset-addressing applied
// where the body allows it.
func rewriteLoop(loop Loop) []Instruction {
	if instr, ok := matchClear(loop); ok {
		return []Instruction{instr}
	}
	if instr, ok := matchScan(loop); ok {
		return []Instruction{instr}
	}
	if instrs, ok := matchMultiply(loop); ok {
		return instrs
	}
	if body, ok := offsetBody(loop.Body); ok {
		return []Instruction{Loop{Body: body}}
	}
	return []Instruction{loop}
}

// matchClear matches a body that zeroes the current cell and moves
// nothing: a single Add with an odd delta (odd steps visit every residue
// of the wrapping cell, so zero is always reached), or a single Set to
// zero left by an inner rewrite.
func matchClear(loop Loop) (Instruction, bool) {
	if len(loop.Body) != 1 {
		return nil, false
	}
	switch instr := loop.Body[0].(type) {
	case Add:
		if instr.Delta%2 != 0 {
			return Set{Value: 0}, true
		}
	case Set:
		if instr.Value == 0 {
			return Set{Value: 0}, true
		}
	}
	return nil, false
}

// matchScan matches a body that is a single nonzero pointer move.
func matchScan(loop Loop) (Instruction, bool) {
	if len(loop.Body) != 1 {
		return nil, false
	}
	move, ok := loop.Body[0].(Move)
	if !ok || move.Delta == 0 {
		return nil, false
	}
	return Scan{Step: move.Delta}, true
}

// matchMultiply matches a balanced body with no I/O and no inner loops
// that decrements the origin cell by exactly one and accumulates into
// other cells. Such a loop runs origin-many times, so each target cell
// gains origin*delta and the origin ends at zero.
func matchMultiply(loop Loop) ([]Instruction, bool) {
	offset := 0
	deltas := make(map[int]int)

	for _, instr := range loop.Body {
		switch instr := instr.(type) {
		case Add:
			deltas[offset] += instr.Delta
		case Move:
			offset += instr.Delta
		default:
			return nil, false
		}
	}

	if offset != 0 {
		// not balanced
		return nil, false
	}
	if deltas[0] != -1 {
		return nil, false
	}
	delete(deltas, 0)

	targets := make([]int, 0, len(deltas))
	for target, delta := range deltas {
		if delta == 0 {
			continue
		}
		targets = append(targets, target)
	}
	if len(targets) == 0 {
		// pure countdown, same as a clear
		return []Instruction{Set{Value: 0}}, true
	}
	slices.Sort(targets)

	ret := make([]Instruction, 0, len(targets)+1)
	for _, target := range targets {
		ret = append(ret, Mul{Offset: target, Factor: deltas[target]})
	}
	ret = append(ret, Set{Value: 0})
	return ret, true
}

// offsetBody rewrites a body of plain cell and pointer arithmetic into
// offset-addressed adds plus one trailing pointer move, so the generated
// loop updates the pointer once per iteration. Bodies containing I/O,
// loops, or nodes from inner rewrites are left alone.
func offsetBody(body []Instruction) ([]Instruction, bool) {
	offset := 0
	converted := false
	ret := make([]Instruction, 0, len(body))

	for _, instr := range body {
		switch instr := instr.(type) {
		case Add:
			if offset == 0 {
				ret = append(ret, instr)
			} else {
				ret = append(ret, OffsetAdd{Offset: offset, Delta: instr.Delta})
				converted = true
			}
		case Move:
			offset += instr.Delta
		default:
			return nil, false
		}
	}

	if !converted {
		return nil, false
	}
	if offset != 0 {
		ret = append(ret, Move{Delta: offset})
	}
	return ret, true
}
