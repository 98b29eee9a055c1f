package bflang

import (
	"fmt"
	"strings"
)

// Generate lowers final IR into C source. The tape is a fixed array of
// unsigned cells indexed by a pointer variable; cell arithmetic wraps at
// the cell width, pointer arithmetic follows the bounds policy. Both
// optimized and unoptimized trees lower through the same statements, so
// the wrap behavior is identical at every optimization level.
func Generate(instrs []Instruction, opts Options) string {
	g := &generator{
		opts: opts,
	}
	g.prelude(instrs)
	g.lowerSeq(instrs)
	g.postlude()
	return g.buf.String()
}

type generator struct {
	buf   strings.Builder
	depth int
	opts  Options
}

func (g *generator) line(format string, args ...any) {
	for range g.depth {
		g.buf.WriteString("\t")
	}
	fmt.Fprintf(&g.buf, format, args...)
	g.buf.WriteString("\n")
}

func (g *generator) cellType() string {
	switch g.opts.CellWidth {
	case 16:
		return "unsigned short"
	case 32:
		return "unsigned int"
	}
	return "unsigned char"
}

func (g *generator) prelude(instrs []Instruction) {
	g.line("#include <stdio.h>")
	if g.opts.Bounds == BoundsTrap {
		g.line("#include <stdlib.h>")
	}
	g.line("")
	g.line("#define TAPE_SIZE %d", g.opts.TapeSize)
	g.line("")
	g.line("typedef %s cell;", g.cellType())
	g.line("")
	g.line("static cell tape[TAPE_SIZE];")
	g.line("")
	if g.opts.Bounds == BoundsTrap {
		g.line("static long bf_check(long i) {")
		g.line("\tif (i < 0 || i >= TAPE_SIZE) {")
		g.line("\t\tfputs(\"tape pointer out of range\\n\", stderr);")
		g.line("\t\texit(1);")
		g.line("\t}")
		g.line("\treturn i;")
		g.line("}")
		g.line("")
		g.line("#define AT(i) tape[bf_check(i)]")
	} else {
		g.line("#define AT(i) tape[(i) %% TAPE_SIZE]")
	}
	g.line("")
	g.line("int main(void) {")
	g.depth++
	g.line("long p = 0;")
	if hasInput(instrs) {
		g.line("int c;")
	}
	g.line("setvbuf(stdout, NULL, _IONBF, 0);")
}

func (g *generator) postlude() {
	g.line("return AT(p);")
	g.depth--
	g.line("}")
}

func hasInput(instrs []Instruction) bool {
	for _, instr := range instrs {
		switch instr := instr.(type) {
		case Input:
			return true
		case Loop:
			if hasInput(instr.Body) {
				return true
			}
		}
	}
	return false
}

func (g *generator) lowerSeq(instrs []Instruction) {
	for _, instr := range instrs {
		g.lower(instr)
	}
}

func (g *generator) lower(instr Instruction) {
	switch instr := instr.(type) {

	case Add:
		g.line("AT(p) %s %d;", addOp(instr.Delta), abs(instr.Delta))

	case Move:
		g.move("p", instr.Delta)

	case Set:
		g.line("AT(p) = %d;", instr.Value)

	case OffsetAdd:
		g.line("AT(%s) %s %d;", g.index(instr.Offset), addOp(instr.Delta), abs(instr.Delta))

	case Mul:
		if abs(instr.Factor) == 1 {
			g.line("AT(%s) %s AT(p);", g.index(instr.Offset), addOp(instr.Factor))
		} else {
			g.line("AT(%s) %s (cell)(AT(p) * %d);", g.index(instr.Offset), addOp(instr.Factor), abs(instr.Factor))
		}

	case Scan:
		g.line("while (AT(p)) {")
		g.depth++
		g.move("p", instr.Step)
		g.depth--
		g.line("}")

	case Input:
		g.line("c = getchar();")
		g.line("if (c >= 0) AT(p) = (cell)c;")

	case Output:
		g.line("putchar(AT(p));")

	case Loop:
		g.line("while (AT(p)) {")
		g.depth++
		g.lowerSeq(instr.Body)
		g.depth--
		g.line("}")

	}
}

func (g *generator) move(ptr string, delta int) {
	if g.opts.Bounds == BoundsTrap {
		g.line("%s %s %d;", ptr, addOp(delta), abs(delta))
		return
	}
	g.line("%s = (%s + %d) %% TAPE_SIZE;", ptr, ptr, g.normalize(delta))
}

// index renders the cell index at pointer+offset. Under the wrap policy
// negative offsets are folded to their positive residue so the index
// expression stays nonnegative.
func (g *generator) index(offset int) string {
	if offset == 0 {
		return "p"
	}
	if g.opts.Bounds == BoundsTrap {
		return fmt.Sprintf("p %s %d", addSign(offset), abs(offset))
	}
	return fmt.Sprintf("p + %d", g.normalize(offset))
}

func (g *generator) normalize(delta int) int {
	size := g.opts.TapeSize
	return ((delta % size) + size) % size
}

func addOp(delta int) string {
	if delta < 0 {
		return "-="
	}
	return "+="
}

func addSign(delta int) string {
	if delta < 0 {
		return "-"
	}
	return "+"
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
