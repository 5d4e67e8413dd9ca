package bfvm

const Theory = `
# Tape Machine

The machine owns a tape of 30000 signed 8-bit cells, a data pointer and an instruction pointer.
A program is a flat sequence of bytes. Seven of them are instructions, everything else is a comment.

	>  move the data pointer right
	<  move the data pointer left
	+  increment the current cell, wrapping 127 to -128
	-  decrement the current cell, wrapping -128 to 127
	.  write the current cell as an unsigned 8-bit code
	[  if the current cell is zero, jump to the matching ]
	]  if the current cell is nonzero, jump back to the matching [

## Loops without a compile phase
Brackets are matched at runtime by scanning the program and counting nesting depth.
A jump positions the instruction pointer on the partner bracket, and the regular
increment after every instruction moves past it. No jump table is kept.

## Failure
Moving the data pointer off the tape, or scanning off either end of the program while looking
for a partner bracket, aborts the run. There are no partial results: the caller gets the error
and the final state, never a silently corrupted tape.
`
