package bflang

// Coalesce run-length merges adjacent Add and Move nodes, dropping
// merged no-ops, recursively into loop bodies. Input, Output and Loop
// are merge barriers. A Set absorbs a following Add or Set. The pass is
// idempotent and returns a new slice.
func Coalesce(instrs []Instruction) []Instruction {
	ret := make([]Instruction, 0, len(instrs))

	for _, instr := range instrs {
		if loop, ok := instr.(Loop); ok {
			ret = append(ret, Loop{Body: Coalesce(loop.Body)})
			continue
		}

		merged := false
		if len(ret) > 0 {
			switch instr := instr.(type) {

			case Add:
				switch prev := ret[len(ret)-1].(type) {
				case Add:
					ret = ret[:len(ret)-1]
					if delta := prev.Delta + instr.Delta; delta != 0 {
						ret = append(ret, Add{Delta: delta})
					}
					merged = true
				case Set:
					ret[len(ret)-1] = Set{Value: prev.Value + instr.Delta}
					merged = true
				}

			case Move:
				if prev, ok := ret[len(ret)-1].(Move); ok {
					ret = ret[:len(ret)-1]
					if delta := prev.Delta + instr.Delta; delta != 0 {
						ret = append(ret, Move{Delta: delta})
					}
					merged = true
				}

			case Set:
				switch ret[len(ret)-1].(type) {
				case Set, Add:
					// overwritten before it is observed
					ret[len(ret)-1] = instr
					merged = true
				}

			}
		}
		if !merged {
			ret = append(ret, instr)
		}
	}

	return ret
}
