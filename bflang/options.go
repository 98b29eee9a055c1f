package bflang

import "fmt"

type OptLevel uint8

const (
	// OptNone translates the raw tree one to one.
	OptNone OptLevel = iota
	// OptCoalesce run-length merges adjacent arithmetic only.
	OptCoalesce
	// OptFull applies the loop pattern rewrites on top of coalescing.
	OptFull
)

func ParseOptLevel(str string) (OptLevel, error) {
	switch str {
	case "none":
		return OptNone, nil
	case "coalesce":
		return OptCoalesce, nil
	case "full":
		return OptFull, nil
	}
	return 0, fmt.Errorf("unknown optimization level: %q", str)
}

func (l OptLevel) String() string {
	switch l {
	case OptNone:
		return "none"
	case OptCoalesce:
		return "coalesce"
	case OptFull:
		return "full"
	}
	return fmt.Sprintf("OptLevel(%d)", uint8(l))
}

type BoundsPolicy uint8

const (
	// BoundsWrap wraps the pointer at both ends of the tape.
	BoundsWrap BoundsPolicy = iota
	// BoundsTrap aborts the generated program on out-of-range access.
	BoundsTrap
)

func ParseBoundsPolicy(str string) (BoundsPolicy, error) {
	switch str {
	case "wrap":
		return BoundsWrap, nil
	case "trap":
		return BoundsTrap, nil
	}
	return 0, fmt.Errorf("unknown bounds policy: %q", str)
}

func (b BoundsPolicy) String() string {
	switch b {
	case BoundsWrap:
		return "wrap"
	case BoundsTrap:
		return "trap"
	}
	return fmt.Sprintf("BoundsPolicy(%d)", uint8(b))
}

const DefaultTapeSize = 30000

type Options struct {
	Level     OptLevel
	TapeSize  int
	CellWidth int
	Bounds    BoundsPolicy
}

func DefaultOptions() Options {
	return Options{
		Level:     OptFull,
		TapeSize:  DefaultTapeSize,
		CellWidth: 8,
	}
}

func (o Options) validate() error {
	if o.TapeSize <= 0 {
		return fmt.Errorf("tape size must be positive, got %d", o.TapeSize)
	}
	switch o.CellWidth {
	case 8, 16, 32:
	default:
		return fmt.Errorf("unsupported cell width: %d", o.CellWidth)
	}
	return nil
}
