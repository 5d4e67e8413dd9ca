package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestModuleForProduction(t *testing.T) {
	dscope.New(ForProduction()).Call(func(
		t *testing.T,
		mode Mode,
	) {
		if t != nil {
			panic("should be nil")
		}
		if mode != ModeProduction {
			panic(mode.String())
		}
	})
}

func TestForTest(t *testing.T) {
	dscope.New(ForTest(t)).Call(func(
		tt *testing.T,
		mode Mode,
	) {
		if tt != t {
			t.Fatal()
		}
		if mode != ModeDevelopment {
			t.Fatalf("got %v", mode)
		}
	})
}
