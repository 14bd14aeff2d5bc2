// Package insts provides RV64I instruction definitions and decoding.
//
// This package decodes the base 32-bit RV64I instruction encoding into a
// structured Instruction value. It covers:
//   - OP / OP-IMM: ADD(I), SUB, SLL(I), SLT(I), SLTU(I), XOR(I), SRL(I),
//     SRA(I), OR(I), AND(I)
//   - LOAD / STORE: LB, LH, LW, LD, LBU, LHU, LWU / SB, SH, SW, SD
//   - BRANCH: BEQ, BNE, BLT, BGE, BLTU, BGEU
//   - JAL, JALR, LUI, AUIPC
//   - SYSTEM: ECALL and the architectural halt encoding
//
// Usage:
//
//	decoder := insts.NewDecoder()
//	inst := decoder.Decode(0x00100093) // addi x1, x0, 1
package insts

// Opcode identifies the instruction class the controller reasons about.
// This is the tagged variant named in the core specification; hazard and
// forwarding logic switches on this value rather than on a type hierarchy.
type Opcode uint8

// Opcode values.
const (
	OpcodeUnknown Opcode = iota
	OpcodeLoad
	OpcodeStore
	OpcodeBranch
	OpcodeJAL
	OpcodeJALR
	OpcodeOp
	OpcodeOpImm
	OpcodeLUI
	OpcodeAUIPC
	OpcodeSystem
	OpcodeHalt
)

// Format represents the RV64I base instruction encoding format.
type Format uint8

// Instruction formats.
const (
	FormatUnknown Format = iota
	FormatR
	FormatI
	FormatS
	FormatB
	FormatU
	FormatJ
)

// HaltWord is the architectural halt encoding the façade recognizes. It is
// not a legal RV64I encoding (it does not correspond to opcode 0x13 or any
// other defined seven-bit opcode); the controller never interprets the raw
// bits itself, only the decoded is_halt flag.
const HaltWord uint32 = 0xfeedfeed

// NopWord is the architectural NOP: addi x0, x0, 0.
const NopWord uint32 = 0x00000013

// Instruction represents a decoded RV64I instruction.
type Instruction struct {
	Opcode Opcode
	Format Format

	Raw uint32

	Rd, Rs1, Rs2 uint8

	Funct3 uint8
	Funct7 uint8

	// Imm holds the format's immediate, sign-extended into int64. For
	// U-type it is already shifted into bit position (imm<<12 for LUI and
	// AUIPC). For B/J-type it is the signed byte offset.
	Imm int64

	IsLegal bool
}

// NewDecoder creates a new RV64I instruction decoder.
func NewDecoder() *Decoder { return &Decoder{} }
