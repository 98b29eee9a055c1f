package bfconfigs

import (
	"github.com/reusee/bf/bflang"
	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/vars"
)

var (
	optimizeFlag  = cmds.Var[string]("-O")
	tapeSizeFlag  = cmds.Var[int]("-tape-size")
	cellWidthFlag = cmds.Var[int]("-cell-width")
	boundsFlag    = cmds.Var[string]("-bounds")
)

// Options merges compiler options from flags over config files over the
// defaults. Flags win.
func (Module) Options(
	loader configs.Loader,
) bflang.Options {
	options := bflang.DefaultOptions()

	if str := vars.FirstNonZero(
		*optimizeFlag,
		configs.First[string](loader, "optimize"),
	); str != "" {
		level, err := bflang.ParseOptLevel(str)
		if err != nil {
			panic(err)
		}
		options.Level = level
	}

	if size := vars.FirstNonZero(
		*tapeSizeFlag,
		configs.First[int](loader, "tape_size"),
	); size != 0 {
		options.TapeSize = size
	}

	if width := vars.FirstNonZero(
		*cellWidthFlag,
		configs.First[int](loader, "cell_width"),
	); width != 0 {
		options.CellWidth = width
	}

	if str := vars.FirstNonZero(
		*boundsFlag,
		configs.First[string](loader, "bounds"),
	); str != "" {
		bounds, err := bflang.ParseBoundsPolicy(str)
		if err != nil {
			panic(err)
		}
		options.Bounds = bounds
	}

	return options
}
