package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/reusee/bf/bflang"
	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/modes"
	"github.com/reusee/bf/syncs"
	"github.com/reusee/dscope"
)

var (
	fileFlag = cmds.Collect[string]("-file")
	outFlag  = cmds.Var[string]("-o")
	saveMini = cmds.Switch("-save-mini")
)

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	if len(*fileFlag) == 0 {
		fmt.Fprintln(os.Stderr, "Error: -file <program.bf> is required")
		os.Exit(1)
	}
	if *outFlag != "" && len(*fileFlag) > 1 {
		fmt.Fprintln(os.Stderr, "Error: -o applies to a single -file only")
		os.Exit(1)
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		options bflang.Options,
	) {
		semaphore := syncs.NewSemaphore(runtime.NumCPU())
		var wg sync.WaitGroup
		var numFailed atomic.Int64

		for _, path := range *fileFlag {
			wg.Add(1)
			go func() {
				defer wg.Done()
				semaphore.Acquire()
				defer semaphore.Release()

				ctx, _ := newSpan(ctx, "")
				if err := compileFile(ctx, logger, path, options); err != nil {
					numFailed.Add(1)
					fmt.Fprintln(os.Stderr, logs.WrapSpan(ctx, err).Error())
				}
			}()
		}
		wg.Wait()

		if n := numFailed.Load(); n > 0 {
			logger.ErrorContext(ctx, "compilation failed",
				"files", n,
			)
			os.Exit(1)
		}
	})
}

func compileFile(
	ctx context.Context,
	logger logs.Logger,
	path string,
	options bflang.Options,
) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	cSource, err := bflang.Compile(path, bytes.NewReader(content), options)
	if err != nil {
		return err
	}

	outPath := *outFlag
	if outPath == "" {
		outPath = cName(path)
	}
	if err := os.WriteFile(outPath, []byte(cSource), 0644); err != nil {
		return err
	}
	logger.InfoContext(ctx, "compiled",
		"source", path,
		"output", outPath,
		"level", options.Level,
	)

	if *saveMini {
		minimized, err := bflang.Minimize(path, bytes.NewReader(content))
		if err != nil {
			return err
		}
		miniPath := miniName(path)
		if err := os.WriteFile(miniPath, []byte(minimized), 0644); err != nil {
			return err
		}
		logger.InfoContext(ctx, "saved minimized source",
			"output", miniPath,
		)
	}

	return nil
}

var sourceExtensions = []string{".bf", ".b"}

func cName(path string) string {
	for _, ext := range sourceExtensions {
		if strings.HasSuffix(path, ext) {
			return strings.TrimSuffix(path, ext) + ".c"
		}
	}
	return path + ".c"
}

func miniName(path string) string {
	for _, ext := range sourceExtensions {
		if strings.HasSuffix(path, ext) {
			return strings.TrimSuffix(path, ext) + "_mini" + ext
		}
	}
	return path + "_mini.bf"
}
