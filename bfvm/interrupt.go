package bfvm

type Interrupt struct {
	Yield  bool
	Budget bool
}

var (
	InterruptYield = &Interrupt{
		Yield: true,
	}
	InterruptBudget = &Interrupt{
		Budget: true,
	}
)
