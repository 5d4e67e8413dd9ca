package debugs

import (
	"fmt"

	"github.com/reusee/taibf/bfvm"
)

// WindowSize is the number of cells shown on each side of the data pointer.
const WindowSize = 16

// RunStepBudget bounds programs started from the REPL.
const RunStepBudget = 1 << 20

// State describes vm for inspection. Cells outside the window are reachable through the cell function.
func State(vm *bfvm.VM, err error) map[string]any {
	window, cursor := vm.Window(WindowSize)
	cells := make([]int, len(window))
	for i, c := range window {
		cells[i] = int(c)
	}

	state := map[string]any{
		"ip":      vm.IP,
		"dp":      vm.DP,
		"steps":   vm.Steps,
		"program": string(vm.Program),
		"tape":    cells,
		"cursor":  cursor,
		"error":   "",

		"cell": func(i int) int {
			if i < 0 || i >= bfvm.TapeSize {
				return 0
			}
			return int(vm.Tape[i])
		},

		"run": runBounded,
	}
	if err != nil {
		state["error"] = err.Error()
	}
	return state
}

func runBounded(code string) string {
	collector := new(bfvm.Collector)
	vm := bfvm.NewVM(bfvm.NewProgram(code), collector)
	vm.StepBudget = RunStepBudget
	for interrupt, err := range vm.Run {
		if err != nil {
			return collector.String() + "\nerror: " + err.Error()
		}
		if interrupt != nil && interrupt.Budget && !vm.Done() {
			return fmt.Sprintf("%s\nerror: step limit %d exceeded", collector.String(), RunStepBudget)
		}
	}
	return collector.String()
}
