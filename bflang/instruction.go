package bflang

// Instruction is a node of the program tree. Loop bodies own their
// instructions exclusively; passes build new slices instead of sharing
// nodes between subtrees.
type Instruction interface {
	isInstruction()
}

// Add adjusts the current cell by Delta, wrapping at the cell width.
type Add struct {
	Delta int
}

// Move adjusts the pointer by Delta.
type Move struct {
	Delta int
}

// Input reads one byte into the current cell.
type Input struct{}

// Output writes the current cell as one byte.
type Output struct{}

// Loop repeats Body while the current cell is nonzero.
type Loop struct {
	Body []Instruction
}

// Set assigns Value to the current cell. Never produced by the parser,
// only by optimization.
type Set struct {
	Value int
}

// OffsetAdd adds Delta to the cell at pointer+Offset without moving the
// pointer. Only produced by optimization.
type OffsetAdd struct {
	Offset int
	Delta  int
}

// Mul adds Factor times the current cell to the cell at pointer+Offset.
// Only produced by the multiply/copy loop rewrite.
type Mul struct {
	Offset int
	Factor int
}

// Scan moves the pointer by Step until it lands on a zero cell. Only
// produced by the scan loop rewrite.
type Scan struct {
	Step int
}

func (Add) isInstruction()       {}
func (Move) isInstruction()      {}
func (Input) isInstruction()     {}
func (Output) isInstruction()    {}
func (Loop) isInstruction()      {}
func (Set) isInstruction()       {}
func (OffsetAdd) isInstruction() {}
func (Mul) isInstruction()       {}
func (Scan) isInstruction()      {}
