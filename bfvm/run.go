package bfvm

import "fmt"

// Step executes the instruction at IP.
func (v *VM) Step() error {
	ip := v.IP
	sym, ok := v.Program.at(ip)
	if !ok {
		return v.fail(ip, 0, ErrProgramBounds)
	}

	switch sym {

	case SymRight:
		if v.DP+1 >= TapeSize {
			return v.fail(ip, sym, ErrTapeBounds)
		}
		v.DP++

	case SymLeft:
		if v.DP <= 0 {
			return v.fail(ip, sym, ErrTapeBounds)
		}
		v.DP--

	case SymInc:
		v.Tape[v.DP]++

	case SymDec:
		v.Tape[v.DP]--

	case SymOutput:
		if err := v.Sink.WriteChar(rune(uint8(v.Tape[v.DP]))); err != nil {
			return v.fail(ip, sym, fmt.Errorf("%w: %w", ErrSink, err))
		}

	case SymLoopOpen:
		if err := v.loopForward(); err != nil {
			return err
		}

	case SymLoopEnd:
		if err := v.loopBackward(); err != nil {
			return err
		}

	}

	v.IP++
	v.Steps++
	return nil
}

// Run drives the VM until the program is exhausted. A fatal error is yielded once and ends the run.
func (v *VM) Run(yield func(*Interrupt, error) bool) {
	for !v.Done() {
		if err := v.Step(); err != nil {
			yield(nil, err)
			return
		}
		if v.StepBudget > 0 && v.Steps == v.StepBudget {
			if !yield(InterruptBudget, nil) {
				return
			}
		} else if v.YieldInterval > 0 && v.Steps%v.YieldInterval == 0 {
			if !yield(InterruptYield, nil) {
				return
			}
		}
	}
}

func Run(program Program, sink Sink) error {
	vm := NewVM(program, sink)
	for _, err := range vm.Run {
		if err != nil {
			return err
		}
	}
	return nil
}
