package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/chzyer/readline"
	"github.com/reusee/bf/bflang"
	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/debugs"
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/modes"
	"github.com/reusee/dscope"
	"golang.org/x/term"
)

var (
	fileFlag    = cmds.Var[string]("-file")
	stepFlag    = cmds.Switch("-step")
	noInputFlag = cmds.Switch("-no-input")
	dumpFlag    = cmds.Switch("-dump")
	tapFlag     = cmds.Switch("-tap")
)

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	if *fileFlag == "" {
		fmt.Fprintln(os.Stderr, "Error: -file <program.bf> is required")
		os.Exit(1)
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		options bflang.Options,
		tap debugs.Tap,
	) {

		f, err := os.Open(*fileFlag)
		ce(err)
		defer f.Close()

		vm, err := bfvm.NewVM(*fileFlag, f)
		if err != nil {
			os.Stderr.WriteString(err.Error())
			os.Stderr.WriteString("\n")
			os.Exit(1)
		}
		vm.Tape = bfvm.NewTape(options.TapeSize)
		vm.Input = os.Stdin
		vm.NoInput = *noInputFlag
		vm.Output = os.Stdout

		stepping := *stepFlag
		if stepping && !term.IsTerminal(int(os.Stdin.Fd())) {
			logger.WarnContext(ctx, "stdin is not a terminal, step mode disabled")
			stepping = false
		}

		var rl *readline.Instance
		if stepping {
			rl, err = readline.New("")
			ce(err)
			defer rl.Close()
		}

		startTime := time.Now()
		for step, err := range vm.Run {
			if err != nil {
				os.Stderr.WriteString(err.Error())
				os.Stderr.WriteString("\n")
				os.Exit(1)
			}

			if !stepping {
				continue
			}
			fmt.Println(vm.Tape.Window(5))
			fmt.Printf("symbol: %c, pc: %d\n", step.Op, step.PC)

			line, err := rl.Readline()
			if err != nil { // Ctrl-C or Ctrl-D
				break
			}
			switch line {
			case "tap":
				tap(ctx, "break at pc "+strconv.Itoa(step.PC), tapGlobals(vm, step))
			case "run":
				stepping = false
			}
		}

		logger.InfoContext(ctx, "done",
			"elapsed", time.Since(startTime),
		)

		if *tapFlag {
			tap(ctx, "program end", tapGlobals(vm, bfvm.Step{PC: vm.Len()}))
		}

		if *dumpFlag {
			path := dumpName(*fileFlag)
			df, err := os.Create(path)
			ce(err)
			defer df.Close()
			ce(vm.Tape.Dump(df))
			logger.InfoContext(ctx, "saved register dump",
				"path", path,
			)
		}
	})
}

func tapGlobals(vm *bfvm.VM, step bfvm.Step) map[string]any {
	cells := make([]int, len(vm.Tape.Cells))
	for i, c := range vm.Tape.Cells {
		cells[i] = int(c)
	}
	return map[string]any{
		"cells":   cells,
		"pointer": vm.Tape.Pointer,
		"pc":      step.PC,
		"window":  vm.Tape.Window(5),
	}
}

func dumpName(path string) string {
	name := path + ".DMP"
	for counter := 1; ; counter++ {
		if _, err := os.Stat(name); os.IsNotExist(err) {
			return name
		}
		name = path + ".DMP" + strconv.Itoa(counter)
	}
}
