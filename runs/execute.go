package runs

import (
	"context"
	"errors"
	"fmt"

	"github.com/reusee/taibf/bfvm"
	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/taibfconfigs"
)

var ErrStepLimit = errors.New("step limit exceeded")

// Execute runs program to completion on a fresh VM. The VM is returned in its final state, also on failure.
type Execute func(ctx context.Context, program bfvm.Program, sink bfvm.Sink) (*bfvm.VM, error)

func (Module) Execute(
	logger logs.Logger,
	newSpan logs.NewSpan,
	maxSteps taibfconfigs.MaxSteps,
	yieldInterval taibfconfigs.YieldInterval,
) Execute {
	return func(ctx context.Context, program bfvm.Program, sink bfvm.Sink) (*bfvm.VM, error) {
		ctx, _ = newSpan(ctx, "run")

		if sink == nil {
			sink = bfvm.Discard
		}
		counter := &countingSink{
			Sink: sink,
		}
		vm := bfvm.NewVM(program, counter)
		vm.YieldInterval = int(yieldInterval)
		vm.StepBudget = int(maxSteps)

		logger.InfoContext(ctx, "run start",
			"size", len(program),
			"max_steps", int(maxSteps),
		)

		if err := ctx.Err(); err != nil {
			return vm, err
		}

		for interrupt, err := range vm.Run {
			if err != nil {
				logger.ErrorContext(ctx, "run failed",
					"error", err,
					"steps", vm.Steps,
				)
				return vm, logs.WrapSpan(ctx, err)
			}
			if interrupt == nil {
				continue
			}

			select {
			case <-ctx.Done():
				logger.WarnContext(ctx, "run canceled",
					"steps", vm.Steps,
				)
				return vm, ctx.Err()
			default:
			}

			if interrupt.Budget && !vm.Done() {
				logger.WarnContext(ctx, "step limit",
					"steps", vm.Steps,
				)
				return vm, logs.WrapSpan(ctx, fmt.Errorf("%w: %d", ErrStepLimit, maxSteps))
			}
		}

		logger.InfoContext(ctx, "run end",
			"steps", vm.Steps,
			"output", counter.n,
		)
		return vm, nil
	}
}

type countingSink struct {
	bfvm.Sink
	n int
}

func (c *countingSink) WriteChar(r rune) error {
	if err := c.Sink.WriteChar(r); err != nil {
		return err
	}
	c.n++
	return nil
}
