package bfvm

import (
	"encoding/gob"
	"io"
)

const TapeSize = 30000

// Cell wraps at 8 bits.
type Cell = int8

type VM struct {
	Program       Program
	Tape          [TapeSize]Cell
	DP            int
	IP            int
	Steps         int
	Sink          Sink
	YieldInterval int
	// StepBudget, when positive, makes Run yield InterruptBudget once Steps reaches it.
	StepBudget int
}

func NewVM(program Program, sink Sink) *VM {
	if sink == nil {
		sink = Discard
	}
	return &VM{
		Program: program,
		Sink:    sink,
	}
}

func (v *VM) Done() bool {
	return v.IP >= len(v.Program)
}

func (v *VM) Current() Cell {
	return v.Tape[v.DP]
}

// Window returns up to n cells on each side of the data pointer, and the index of the current cell in it.
func (v *VM) Window(n int) ([]Cell, int) {
	start := max(v.DP-n, 0)
	end := min(v.DP+n+1, TapeSize)
	return v.Tape[start:end], v.DP - start
}

type snapshot struct {
	Program       Program
	Tape          []Cell
	DP            int
	IP            int
	Steps         int
	YieldInterval int
	StepBudget    int
}

func (v *VM) Snapshot(w io.Writer) error {
	enc := gob.NewEncoder(w)
	if err := enc.Encode(snapshot{
		Program:       v.Program,
		Tape:          v.Tape[:],
		DP:            v.DP,
		IP:            v.IP,
		Steps:         v.Steps,
		YieldInterval: v.YieldInterval,
		StepBudget:    v.StepBudget,
	}); err != nil {
		return err
	}
	return nil
}

// Restore replaces the VM state with a snapshot. The sink is left as is.
func (v *VM) Restore(r io.Reader) error {
	dec := gob.NewDecoder(r)
	var s snapshot
	if err := dec.Decode(&s); err != nil {
		return err
	}
	v.Program = s.Program
	v.Tape = [TapeSize]Cell{}
	copy(v.Tape[:], s.Tape)
	v.DP = s.DP
	v.IP = s.IP
	v.Steps = s.Steps
	v.YieldInterval = s.YieldInterval
	v.StepBudget = s.StepBudget
	return nil
}
