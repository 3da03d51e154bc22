package isa

// Format is one of the six RV32I encoding shapes, plus SYS for the
// zero-operand system instructions.
type Format int

const (
	FormatR Format = iota
	FormatI
	FormatS
	FormatB
	FormatU
	FormatJ
	FormatSYS
	FormatUnknown
)

func (f Format) String() string {
	switch f {
	case FormatR:
		return "R"
	case FormatI:
		return "I"
	case FormatS:
		return "S"
	case FormatB:
		return "B"
	case FormatU:
		return "U"
	case FormatJ:
		return "J"
	case FormatSYS:
		return "SYS"
	default:
		return "unknown"
	}
}

// Opcode values, one per format/sub-class. I-type and U-type opcodes
// are branched on mnemonic class rather than the bare format tag,
// since addi/loads/jalr all share I format with different opcodes,
// and lui/auipc share U format the same way.
const (
	OpcodeR       = 0b0110011
	OpcodeIArith  = 0b0010011
	OpcodeILoad   = 0b0000011
	OpcodeIJalr   = 0b1100111
	OpcodeS       = 0b0100011
	OpcodeB       = 0b1100011
	OpcodeULui    = 0b0110111
	OpcodeUAuipc  = 0b0010111
	OpcodeJJal    = 0b1101111
	OpcodeSystem  = 0b1110011
	OpcodeFence   = 0b0001111
)

// entry is one mnemonic's static ISA data.
type entry struct {
	format  Format
	opcode  uint32
	funct3  uint32
	hasF3   bool
	funct7  uint32
	hasF7   bool
	operand string // human-readable operand form, for arity diagnostics
}

var table = map[string]entry{
	// R-type
	"add":  {format: FormatR, opcode: OpcodeR, funct3: 0x0, hasF3: true, funct7: 0x00, hasF7: true, operand: "rd, rs1, rs2"},
	"sub":  {format: FormatR, opcode: OpcodeR, funct3: 0x0, hasF3: true, funct7: 0x20, hasF7: true, operand: "rd, rs1, rs2"},
	"sll":  {format: FormatR, opcode: OpcodeR, funct3: 0x1, hasF3: true, funct7: 0x00, hasF7: true, operand: "rd, rs1, rs2"},
	"slt":  {format: FormatR, opcode: OpcodeR, funct3: 0x2, hasF3: true, funct7: 0x00, hasF7: true, operand: "rd, rs1, rs2"},
	"sltu": {format: FormatR, opcode: OpcodeR, funct3: 0x3, hasF3: true, funct7: 0x00, hasF7: true, operand: "rd, rs1, rs2"},
	"xor":  {format: FormatR, opcode: OpcodeR, funct3: 0x4, hasF3: true, funct7: 0x00, hasF7: true, operand: "rd, rs1, rs2"},
	"srl":  {format: FormatR, opcode: OpcodeR, funct3: 0x5, hasF3: true, funct7: 0x00, hasF7: true, operand: "rd, rs1, rs2"},
	"sra":  {format: FormatR, opcode: OpcodeR, funct3: 0x5, hasF3: true, funct7: 0x20, hasF7: true, operand: "rd, rs1, rs2"},
	"or":   {format: FormatR, opcode: OpcodeR, funct3: 0x6, hasF3: true, funct7: 0x00, hasF7: true, operand: "rd, rs1, rs2"},
	"and":  {format: FormatR, opcode: OpcodeR, funct3: 0x7, hasF3: true, funct7: 0x00, hasF7: true, operand: "rd, rs1, rs2"},

	// I-type arithmetic
	"addi":  {format: FormatI, opcode: OpcodeIArith, funct3: 0x0, hasF3: true, operand: "rd, rs1, imm12"},
	"slti":  {format: FormatI, opcode: OpcodeIArith, funct3: 0x2, hasF3: true, operand: "rd, rs1, imm12"},
	"sltiu": {format: FormatI, opcode: OpcodeIArith, funct3: 0x3, hasF3: true, operand: "rd, rs1, imm12"},
	"xori":  {format: FormatI, opcode: OpcodeIArith, funct3: 0x4, hasF3: true, operand: "rd, rs1, imm12"},
	"ori":   {format: FormatI, opcode: OpcodeIArith, funct3: 0x6, hasF3: true, operand: "rd, rs1, imm12"},
	"andi":  {format: FormatI, opcode: OpcodeIArith, funct3: 0x7, hasF3: true, operand: "rd, rs1, imm12"},
	"slli":  {format: FormatI, opcode: OpcodeIArith, funct3: 0x1, hasF3: true, funct7: 0x00, hasF7: true, operand: "rd, rs1, shamt"},
	"srli":  {format: FormatI, opcode: OpcodeIArith, funct3: 0x5, hasF3: true, funct7: 0x00, hasF7: true, operand: "rd, rs1, shamt"},
	"srai":  {format: FormatI, opcode: OpcodeIArith, funct3: 0x5, hasF3: true, funct7: 0x20, hasF7: true, operand: "rd, rs1, shamt"},

	// I-type jalr
	"jalr": {format: FormatI, opcode: OpcodeIJalr, funct3: 0x0, hasF3: true, operand: "rd, rs1, imm12 | rd, imm12(rs1)"},

	// I-type loads
	"lb":  {format: FormatI, opcode: OpcodeILoad, funct3: 0x0, hasF3: true, operand: "rd, imm12(rs1)"},
	"lh":  {format: FormatI, opcode: OpcodeILoad, funct3: 0x1, hasF3: true, operand: "rd, imm12(rs1)"},
	"lw":  {format: FormatI, opcode: OpcodeILoad, funct3: 0x2, hasF3: true, operand: "rd, imm12(rs1)"},
	"lbu": {format: FormatI, opcode: OpcodeILoad, funct3: 0x4, hasF3: true, operand: "rd, imm12(rs1)"},
	"lhu": {format: FormatI, opcode: OpcodeILoad, funct3: 0x5, hasF3: true, operand: "rd, imm12(rs1)"},

	// S-type stores
	"sb": {format: FormatS, opcode: OpcodeS, funct3: 0x0, hasF3: true, operand: "rs2, imm12(rs1)"},
	"sh": {format: FormatS, opcode: OpcodeS, funct3: 0x1, hasF3: true, operand: "rs2, imm12(rs1)"},
	"sw": {format: FormatS, opcode: OpcodeS, funct3: 0x2, hasF3: true, operand: "rs2, imm12(rs1)"},

	// B-type branches
	"beq":  {format: FormatB, opcode: OpcodeB, funct3: 0x0, hasF3: true, operand: "rs1, rs2, label"},
	"bne":  {format: FormatB, opcode: OpcodeB, funct3: 0x1, hasF3: true, operand: "rs1, rs2, label"},
	"blt":  {format: FormatB, opcode: OpcodeB, funct3: 0x4, hasF3: true, operand: "rs1, rs2, label"},
	"bge":  {format: FormatB, opcode: OpcodeB, funct3: 0x5, hasF3: true, operand: "rs1, rs2, label"},
	"bltu": {format: FormatB, opcode: OpcodeB, funct3: 0x6, hasF3: true, operand: "rs1, rs2, label"},
	"bgeu": {format: FormatB, opcode: OpcodeB, funct3: 0x7, hasF3: true, operand: "rs1, rs2, label"},

	// U-type
	"lui":   {format: FormatU, opcode: OpcodeULui, operand: "rd, imm20"},
	"auipc": {format: FormatU, opcode: OpcodeUAuipc, operand: "rd, imm20"},

	// J-type
	"jal": {format: FormatJ, opcode: OpcodeJJal, operand: "rd, label | label"},

	// SYS
	"ecall":  {format: FormatSYS, opcode: OpcodeSystem, operand: ""},
	"ebreak": {format: FormatSYS, opcode: OpcodeSystem, operand: ""},
	"fence":  {format: FormatSYS, opcode: OpcodeFence, operand: "[pred, succ]"},
}

// lookup returns the static ISA entry data for a base (non-pseudo)
// mnemonic. ok is false for pseudo-instructions and unknown mnemonics.
func lookup(mnemonic string) (entry, bool) {
	e, ok := table[mnemonic]
	return e, ok
}

// FormatOf returns the encoding format for a base mnemonic.
func FormatOf(mnemonic string) (Format, error) {
	e, ok := lookup(mnemonic)
	if !ok {
		return FormatUnknown, errUnknownMnemonic(mnemonic)
	}
	return e.format, nil
}

// Opcode returns the 7-bit opcode field for a base mnemonic.
func Opcode(mnemonic string) (uint32, error) {
	e, ok := lookup(mnemonic)
	if !ok {
		return 0, errUnknownMnemonic(mnemonic)
	}
	return e.opcode, nil
}

// Funct3 returns the 3-bit funct3 field for a base mnemonic, if it uses one.
func Funct3(mnemonic string) (uint32, bool) {
	e, ok := lookup(mnemonic)
	if !ok || !e.hasF3 {
		return 0, false
	}
	return e.funct3, true
}

// Funct7 returns the 7-bit funct7 field for a base mnemonic, if it uses one.
func Funct7(mnemonic string) (uint32, bool) {
	e, ok := lookup(mnemonic)
	if !ok || !e.hasF7 {
		return 0, false
	}
	return e.funct7, true
}

// OperandForm returns the human-readable expected operand form, used
// when pass two reports an arity mismatch.
func OperandForm(mnemonic string) string {
	e, ok := lookup(mnemonic)
	if !ok {
		return ""
	}
	return e.operand
}

// Known reports whether mnemonic is a recognized base (non-pseudo)
// RV32I instruction.
func Known(mnemonic string) bool {
	_, ok := table[mnemonic]
	return ok
}

func errUnknownMnemonic(mnemonic string) error {
	return &UnknownMnemonicError{Mnemonic: mnemonic}
}

// UnknownMnemonicError is returned by table lookups for a mnemonic the
// ISA tables don't recognize. Keeping it a distinct type turns "unknown
// mnemonic" into a single failure point callers can match on.
type UnknownMnemonicError struct {
	Mnemonic string
}

func (e *UnknownMnemonicError) Error() string {
	return "unknown instruction: " + e.Mnemonic
}
