package debugs

import (
	"errors"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/bfvm"
	"go.starlark.net/starlark"
)

func failedVM(t *testing.T) (*bfvm.VM, error) {
	vm := bfvm.NewVM(bfvm.NewProgram(">+++>++<<+]"), nil)
	var runErr error
	for _, err := range vm.Run {
		runErr = err
	}
	if !errors.Is(runErr, bfvm.ErrUnbalanced) {
		t.Fatalf("got %v", runErr)
	}
	return vm, runErr
}

func TestState(t *testing.T) {
	vm, err := failedVM(t)
	state := State(vm, err)

	if state["dp"] != 0 {
		t.Fatalf("got %v", state["dp"])
	}
	if state["ip"] != 10 {
		t.Fatalf("got %v", state["ip"])
	}
	if state["error"] == "" {
		t.Fatal()
	}
	tape := state["tape"].([]int)
	cursor := state["cursor"].(int)
	if tape[cursor] != 1 || tape[cursor+1] != 3 || tape[cursor+2] != 2 {
		t.Fatalf("got %v", tape)
	}

	cell := state["cell"].(func(int) int)
	if cell(1) != 3 || cell(-1) != 0 || cell(bfvm.TapeSize) != 0 {
		t.Fatal()
	}

	run := state["run"].(func(string) string)
	if out := run("++++++++[>++++++++<-]>+."); out != "A" {
		t.Fatalf("got %q", out)
	}
	if out := run("<"); out == "" {
		t.Fatal("should report error")
	}
	if out := run("+.[]"); !strings.HasPrefix(out, "\x01") || !strings.Contains(out, "step limit") {
		t.Fatalf("got %q", out)
	}
	// ending exactly on the budget is not a failure
	if out := run(strings.Repeat("+", RunStepBudget)); out != "" {
		t.Fatalf("got %q", out)
	}
}

func TestToStarlarkValue(t *testing.T) {
	testCases := []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"bool", true, starlark.True},
		{"string", "+-", starlark.String("+-")},
		{"int", 42, starlark.MakeInt(42)},
		{"int8", int8(-1), starlark.MakeInt(-1)},
		{"uint8", uint8(255), starlark.MakeUint(255)},
		{"[]int", []int{1, 2}, starlark.NewList([]starlark.Value{starlark.MakeInt(1), starlark.MakeInt(2)})},
		{"[]any", []any{1, "a"}, starlark.NewList([]starlark.Value{starlark.MakeInt(1), starlark.String("a")})},
		{"pointer", new(int), starlark.MakeInt(0)},
		{"nil pointer", (*int)(nil), starlark.None},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := toStarlarkValue(tc.input)
			equal, err := starlark.Equal(actual, tc.expected)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !equal {
				t.Errorf("toStarlarkValue(%#v) = %v, want %v", tc.input, actual, tc.expected)
			}
		})
	}

	t.Run("func", func(t *testing.T) {
		if toStarlarkValue(func(int) int { return 0 }) == nil {
			t.Fatal()
		}
	})

	t.Run("panic on unsupported type", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("toStarlarkValue did not panic on unsupported type")
			}
		}()
		toStarlarkValue(make(chan bool))
	})
}

func TestTap(t *testing.T) {
	vm, err := failedVM(t)
	dscope.New(
		new(Module),
	).Call(func(
		tap Tap,
	) {
		tap(t.Context(), vm, err)
	})
}
