// Package engine implements a small bit-slice style microprogrammed
// processor, one micro-cycle at a time.
//
// A 128 word control store of 32-bit microinstructions drives a 16-bit
// datapath: accumulator AR and its extension HR, four general registers,
// an instruction register, an 8-bit PC and memory address register ASR
// into 256 words of program memory, and a loop counter. Two jump tables,
// K1 indexed by the opcode in IR and K2 indexed by its addressing mode,
// implement instruction dispatch in the microprogram sequencer.
package engine
