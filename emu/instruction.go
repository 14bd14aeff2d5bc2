// Package emu provides the functional RV64I instruction semantics façade:
// decode, ALU execution, branch resolution, and register/memory access, all
// free of timing state. The pipeline controller in package timing/pipeline
// is the only caller with timing knowledge; this package never blocks,
// stalls, or queries a cache.
package emu

import "github.com/archlab/rv5sim/insts"

// Status is the per-latch lifecycle state named in the core data model.
type Status uint8

// Status values.
const (
	StatusIdle Status = iota
	StatusNormal
	StatusSpeculative
	StatusSquashed
	StatusBubble
)

// Instruction is the single polymorphic instruction-latch value. Every one
// of the five pipeline stage latches holds exactly one Instruction; latches
// vary by content, never by type.
type Instruction struct {
	Raw    uint32
	PC     uint64
	NextPC uint64

	Opcode insts.Opcode

	Rs1, Rs2, Rd uint8

	ReadsRs1, ReadsRs2, WritesRd bool
	ReadsMem, WritesMem          bool
	DoesArith                    bool

	Op1Val, Op2Val uint64

	ALUResult uint64
	MemAddr   uint64
	MemResult uint64

	IsNop, IsHalt, IsLegal bool

	Status Status

	// immCache/funct3Cache/funct7Cache carry decode-time fields forward to
	// SimNextPCResolution/SimEX/SimMEM without re-decoding the raw word.
	// They are not part of the data model fields the controller itself
	// inspects (§3 of the core spec); the façade alone reads them.
	immCache    int64
	funct3Cache uint8
	funct7Cache uint8
}

// NOP builds the architectural NOP latch value (addi x0, x0, 0) with the
// given status. Ported from the course reference's nop(StageStatus)
// factory: every latch starts life as a NOP, and bubbles are synthesized
// the same way.
func NOP(status Status) Instruction {
	return Instruction{
		Raw:     insts.NopWord,
		Opcode:  insts.OpcodeOpImm,
		IsNop:   true,
		IsLegal: true,
		Status:  status,
	}
}
