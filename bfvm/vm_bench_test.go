package bfvm

import "testing"

func BenchmarkVM_HelloWorld(b *testing.B) {
	program := NewProgram("++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++.")
	b.ResetTimer()
	for b.Loop() {
		if err := Run(program, Discard); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkVM_NestedSkip(b *testing.B) {
	// the outer loop is skipped, so every iteration rescans the whole body
	body := "[[[[[[[[+]]]]]]]]"
	src := ""
	for range 64 {
		src += body
	}
	program := NewProgram(src)
	b.ResetTimer()
	for b.Loop() {
		if err := Run(program, Discard); err != nil {
			b.Fatal(err)
		}
	}
}
