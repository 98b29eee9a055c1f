package bfvm

import (
	"fmt"
	"io"
	"strings"
)

const DefaultTapeSize = 30000

// Tape is the cell array with its pointer. Cells wrap at 8 bits, the
// pointer wraps at both ends.
type Tape struct {
	Cells   []uint8
	Pointer int
}

func NewTape(size int) *Tape {
	if size <= 0 {
		size = DefaultTapeSize
	}
	return &Tape{
		Cells: make([]uint8, size),
	}
}

func (t *Tape) Reset() {
	clear(t.Cells)
	t.Pointer = 0
}

func (t *Tape) Move(delta int) {
	size := len(t.Cells)
	t.Pointer = ((t.Pointer+delta)%size + size) % size
}

func (t *Tape) Read() uint8 {
	return t.Cells[t.Pointer]
}

func (t *Tape) Write(value uint8) {
	t.Cells[t.Pointer] = value
}

func (t *Tape) Add(delta int) {
	t.Cells[t.Pointer] += uint8(delta)
}

// Window renders the cells around the pointer, for step mode.
func (t *Tape) Window(radius int) string {
	lower := max(t.Pointer-radius, 0)
	upper := min(t.Pointer+radius+1, len(t.Cells))

	var sb strings.Builder
	var header strings.Builder
	for i := lower; i < upper; i++ {
		fmt.Fprintf(&header, "#%d ", i)
	}
	separator := strings.Repeat("-", header.Len())
	sb.WriteString(separator)
	sb.WriteString("\n")
	sb.WriteString(header.String())
	sb.WriteString("\n")
	sb.WriteString(separator)
	sb.WriteString("\n")
	for i := lower; i < upper; i++ {
		fmt.Fprintf(&sb, "%d  ", t.Cells[i])
	}
	sb.WriteString("\n")
	sb.WriteString(separator)
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "pointer: %d\n", t.Pointer)
	return sb.String()
}

// Dump writes every cell, for post-run inspection.
func (t *Tape) Dump(w io.Writer) error {
	if _, err := io.WriteString(w, "tape = [\n"); err != nil {
		return err
	}
	for i, cell := range t.Cells {
		if i > 0 {
			if _, err := io.WriteString(w, ", "); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%d", cell); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "\n]\n"); err != nil {
		return err
	}
	return nil
}
