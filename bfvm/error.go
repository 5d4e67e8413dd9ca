package bfvm

import (
	"errors"
	"fmt"
)

var (
	ErrTapeBounds    = errors.New("data pointer out of tape bounds")
	ErrProgramBounds = errors.New("instruction pointer out of program bounds")
	ErrUnbalanced    = fmt.Errorf("unbalanced brackets: %w", ErrProgramBounds)
	ErrSink          = errors.New("output sink failed")
)

// Error is a fatal execution error. IP and DP are the pointers at the instruction that failed.
type Error struct {
	Err    error
	IP     int
	DP     int
	Symbol byte
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v (ip=%d dp=%d symbol=%q)", e.Err, e.IP, e.DP, e.Symbol)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (v *VM) fail(ip int, symbol byte, err error) error {
	return &Error{
		Err:    err,
		IP:     ip,
		DP:     v.DP,
		Symbol: symbol,
	}
}
