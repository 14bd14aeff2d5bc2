package emu

import "github.com/archlab/rv5sim/insts"

// ALU implements the RV64I base integer arithmetic and logic operations.
// Ported from the teacher's per-opcode ALU method idiom (emu/alu.go),
// restructured into a single Execute switch: RISC-V's ALU ops are a closed
// set keyed by funct3 (and, for ADD/SUB and SRL/SRA, funct7 bit 5), unlike
// ARM64's flag-setting variant explosion.
type ALU struct{}

// NewALU creates a new ALU. It carries no state; RV64I's base integer ops
// need no register-file access beyond the operand values already resolved
// by forwarding.
func NewALU() *ALU { return &ALU{} }

// Execute computes the result of an OP or OP-IMM instruction.
func (a *ALU) Execute(opcode insts.Opcode, funct3, funct7 uint8, op1, op2 uint64) uint64 {
	alt := funct7&0b0100000 != 0 // distinguishes SUB from ADD and SRA from SRL

	switch funct3 {
	case 0b000:
		if opcode == insts.OpcodeOp && alt {
			return op1 - op2
		}
		return op1 + op2
	case 0b001:
		return op1 << (op2 & 0x3F)
	case 0b010:
		if int64(op1) < int64(op2) {
			return 1
		}
		return 0
	case 0b011:
		if op1 < op2 {
			return 1
		}
		return 0
	case 0b100:
		return op1 ^ op2
	case 0b101:
		if alt {
			return uint64(int64(op1) >> (op2 & 0x3F))
		}
		return op1 >> (op2 & 0x3F)
	case 0b110:
		return op1 | op2
	case 0b111:
		return op1 & op2
	default:
		return 0
	}
}
