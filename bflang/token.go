package bflang

// Op is one of the eight command runes. Every other rune in a source
// stream is a comment.
type Op byte

const (
	OpInc   Op = '+'
	OpDec   Op = '-'
	OpRight Op = '>'
	OpLeft  Op = '<'
	OpOpen  Op = '['
	OpClose Op = ']'
	OpInput Op = ','
	OpOut   Op = '.'
)

func IsOp(r rune) bool {
	switch r {
	case '+', '-', '>', '<', '[', ']', ',', '.':
		return true
	}
	return false
}

type TokenKind uint8

const (
	TokenEOF TokenKind = iota
	TokenCommand
)

type Token struct {
	Kind TokenKind
	Op   Op
	Pos  Pos
}
