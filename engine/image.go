package engine

// Memory sizes.
const (
	PM_SIZE = 256 // Program memory words.
	UM_SIZE = 128 // Control store words.
	K1_SIZE = 16  // Opcode dispatch entries.
	K2_SIZE = 4   // Mode dispatch entries.

	UPC_MASK = UM_SIZE - 1 // Control store index mask.
)

// Image is the complete initial content of a machine: memories, jump
// tables, register file and flags.
type Image struct {
	Program   [PM_SIZE]uint16
	Micro     [UM_SIZE]Micro
	K1        [K1_SIZE]uint8
	K2        [K2_SIZE]uint8
	Registers Registers
	Flags     Flags
}
