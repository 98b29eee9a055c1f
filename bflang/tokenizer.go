package bflang

import "unicode/utf8"

// Tokenizer yields the command runes of a source, skipping everything
// else. Positions are tracked for error reporting.
type Tokenizer struct {
	source  *Source
	offset  int
	current *Token
	currPos Pos
}

func NewTokenizer(source *Source) *Tokenizer {
	return &Tokenizer{
		source: source,
		currPos: Pos{
			Source: source,
			Line:   1,
			Column: 1,
		},
	}
}

func (t *Tokenizer) Current() *Token {
	if t.current == nil {
		t.current = t.parseNext()
	}
	return t.current
}

func (t *Tokenizer) Consume() {
	t.current = nil
}

func (t *Tokenizer) parseNext() *Token {
	content := t.source.Content
	for t.offset < len(content) {
		r, size := utf8.DecodeRuneInString(content[t.offset:])
		pos := t.currPos
		t.offset += size
		if r == '\n' {
			t.currPos.Line++
			t.currPos.Column = 1
		} else {
			t.currPos.Column++
		}

		if !IsOp(r) {
			// comment
			continue
		}

		return &Token{
			Kind: TokenCommand,
			Op:   Op(r),
			Pos:  pos,
		}
	}

	return &Token{
		Kind: TokenEOF,
		Pos:  t.currPos,
	}
}
