package bfvm

// loopForward is executed at a '['. With a zero cell it leaves IP on the matching ']',
// so the trailing increment of the dispatch loop lands just past it.
func (v *VM) loopForward() error {
	if v.Tape[v.DP] != 0 {
		return nil
	}
	start := v.IP
	depth := 1
	ip := start
	for depth > 0 {
		ip++
		sym, ok := v.Program.at(ip)
		if !ok {
			return v.fail(start, SymLoopOpen, ErrUnbalanced)
		}
		switch sym {
		case SymLoopOpen:
			depth++
		case SymLoopEnd:
			depth--
		}
	}
	v.IP = ip
	return nil
}

// loopBackward is executed at a ']'. With a nonzero cell it leaves IP on the matching '['.
func (v *VM) loopBackward() error {
	if v.Tape[v.DP] == 0 {
		return nil
	}
	start := v.IP
	depth := 1
	ip := start
	for depth > 0 {
		ip--
		sym, ok := v.Program.at(ip)
		if !ok {
			return v.fail(start, SymLoopEnd, ErrUnbalanced)
		}
		switch sym {
		case SymLoopOpen:
			depth--
		case SymLoopEnd:
			depth++
		}
	}
	v.IP = ip
	return nil
}
