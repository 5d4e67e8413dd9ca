package cmds

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var a int
	executor.Define("+a", Func(func() {
		a = 42
	}))
	executor.Define("a", Func(func(i int) {
		a = i
	}))

	if err := executor.Execute([]string{
		"+a",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 42 {
		t.Fatal()
	}

	if err := executor.Execute([]string{
		"a", "1",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 1 {
		t.Fatal()
	}

	err := executor.Execute([]string{
		"foo",
	})
	if err == nil || !strings.Contains(err.Error(), "unknown command: foo") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{
		"a", "x",
	})
	if err == nil || !strings.Contains(err.Error(), "convert x to int") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{
		"a",
	})
	if err == nil || !strings.Contains(err.Error(), "expecting argument") {
		t.Fatalf("got %v", err)
	}
}

func TestExecutorReturnsError(t *testing.T) {
	executor := NewExecutor()
	bad := errors.New("bad")
	executor.Define("fail", Func(func() error {
		return bad
	}))
	executor.Define("ok", Func(func() error {
		return nil
	}))
	if err := executor.Execute([]string{"ok"}); err != nil {
		t.Fatal(err)
	}
	if err := executor.Execute([]string{"fail"}); !errors.Is(err, bad) {
		t.Fatalf("got %v", err)
	}
}

func TestOptionalArg(t *testing.T) {
	executor := NewExecutor()
	var got *int
	executor.Define("opt", Func(func(i *int) {
		got = i
	}))
	executor.MustExecute([]string{"opt", "3"})
	if got == nil || *got != 3 {
		t.Fatalf("got %v", got)
	}
	executor.MustExecute([]string{"opt"})
	if got == nil || *got != 0 {
		t.Fatalf("got %v", got)
	}
}

func TestDuplicated(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Func(func() {}))
	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("should panic")
			}
		}()
		executor.Define("bar", Func(func() {}).Alias("foo"))
	}()
}

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	buf := new(bytes.Buffer)
	executor.Output = buf
	executor.Define("-code", Func(func(string) {}).Desc("CODE"))
	executor.PrintUsage()
	out := buf.String()
	if !strings.Contains(out, "-code <string>") || !strings.Contains(out, "CODE") {
		t.Fatalf("got %s", out)
	}
	if strings.Count(out, "print this usage") != 1 {
		t.Fatalf("got %s", out)
	}
}
