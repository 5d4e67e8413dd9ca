package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

type Mode int

const (
	ModeProduction Mode = iota + 1
	ModeDevelopment
)

func (m Mode) String() string {
	switch m {
	case ModeProduction:
		return "production"
	case ModeDevelopment:
		return "development"
	}
	return "unknown"
}

// ModuleForProduction provides a nil *testing.T.
type ModuleForProduction struct {
	dscope.Module
}

func ForProduction() ModuleForProduction {
	return ModuleForProduction{}
}

func (ModuleForProduction) Mode() Mode {
	return ModeProduction
}

func (ModuleForProduction) T() *testing.T {
	return nil
}

// ModuleForTest binds the running test. Development mode turns off proxies.
type ModuleForTest struct {
	dscope.Module
	t *testing.T
}

func ForTest(t *testing.T) ModuleForTest {
	return ModuleForTest{
		t: t,
	}
}

func (m ModuleForTest) Mode() Mode {
	return ModeDevelopment
}

func (m ModuleForTest) T() *testing.T {
	return m.t
}
