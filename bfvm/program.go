package bfvm

// Program is executed byte by byte. Bytes outside the instruction set are comments.
type Program []byte

func NewProgram(src string) Program {
	return Program(src)
}

const (
	SymRight    = '>'
	SymLeft     = '<'
	SymInc      = '+'
	SymDec      = '-'
	SymOutput   = '.'
	SymLoopOpen = '['
	SymLoopEnd  = ']'
)

func (p Program) at(ip int) (byte, bool) {
	if ip < 0 || ip >= len(p) {
		return 0, false
	}
	return p[ip], true
}
