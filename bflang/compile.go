package bflang

import "io"

// Compile translates a source stream into C. Any rune outside the eight
// command runes is a comment. The only failure modes are reading the
// source and unbalanced loops; nothing is emitted on failure.
func Compile(name string, source io.Reader, opts Options) (string, error) {
	if err := opts.validate(); err != nil {
		return "", err
	}

	content, err := io.ReadAll(source)
	if err != nil {
		return "", err
	}

	instrs, err := Parse(NewTokenizer(NewSource(name, string(content))))
	if err != nil {
		return "", err
	}

	switch opts.Level {
	case OptCoalesce:
		instrs = Coalesce(instrs)
	case OptFull:
		instrs = Optimize(Coalesce(instrs))
	}

	return Generate(instrs, opts), nil
}

// Minimize parses and coalesces a source stream and renders it back as
// source, with comments stripped and canceling runs removed.
func Minimize(name string, source io.Reader) (string, error) {
	content, err := io.ReadAll(source)
	if err != nil {
		return "", err
	}

	instrs, err := Parse(NewTokenizer(NewSource(name, string(content))))
	if err != nil {
		return "", err
	}

	return Render(Coalesce(instrs)), nil
}
