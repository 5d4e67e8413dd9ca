package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/reusee/taibf/bfvm"
	"github.com/reusee/taibf/debugs"
	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/runs"
	"github.com/reusee/taibf/sources"
	"github.com/reusee/taibf/taibfconfigs"
)

const (
	StatusOK    = 0
	StatusFatal = 1
	StatusRead  = 2
)

type Options struct {
	Tap      bool
	Snapshot string
}

type Stdout io.Writer

func (Module) Stdout() Stdout {
	return os.Stdout
}

type Run func(ctx context.Context, src sources.Source, opts Options) int

func (Module) Run(
	load sources.Load,
	execute runs.Execute,
	tap debugs.Tap,
	trailingNewline taibfconfigs.TrailingNewline,
	logger logs.Logger,
	stdout Stdout,
) Run {
	return func(ctx context.Context, src sources.Source, opts Options) int {
		program, err := load(ctx, src)
		if errors.Is(err, sources.ErrNoInput) {
			fmt.Fprintln(stdout, "Nothing to do...")
			return StatusOK
		} else if err != nil {
			logger.ErrorContext(ctx, "load program", "error", err)
			fmt.Fprintln(os.Stderr, err)
			return StatusRead
		}

		sink := bfvm.NewWriterSink(stdout)
		vm, runErr := execute(ctx, program, sink)
		if err := sink.Flush(); err != nil && runErr == nil {
			runErr = fmt.Errorf("%w: %w", bfvm.ErrSink, err)
		}

		if opts.Snapshot != "" {
			if err := writeSnapshot(vm, opts.Snapshot); err != nil {
				logger.ErrorContext(ctx, "write snapshot", "path", opts.Snapshot, "error", err)
			}
		}

		if runErr != nil {
			fmt.Fprintln(stdout)
			fmt.Fprintf(os.Stderr, "Execution halted: %v\n", runErr)
			if opts.Tap {
				tap(ctx, vm, runErr)
			}
			return StatusFatal
		}

		if trailingNewline {
			fmt.Fprintln(stdout)
		}
		return StatusOK
	}
}

func writeSnapshot(vm *bfvm.VM, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if e := f.Close(); e != nil && err == nil {
			err = e
		}
	}()
	return vm.Snapshot(f)
}
