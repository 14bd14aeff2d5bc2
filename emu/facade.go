package emu

import "github.com/archlab/rv5sim/insts"

// Facade bundles the stateless resources the five sim_* functions need: a
// decoder, an ALU, and a branch unit. It holds no per-cycle state of its
// own; the register file and memory are passed explicitly to the functions
// that need them, exactly as §9 of the core spec requires ("pass the memory
// store and register file by explicit mutable borrow").
type Facade struct {
	decoder *insts.Decoder
	alu     *ALU
	branch  *BranchUnit
}

// NewFacade constructs the functional semantics façade.
func NewFacade() *Facade {
	return &Facade{
		decoder: insts.NewDecoder(),
		alu:     NewALU(),
		branch:  NewBranchUnit(),
	}
}

// SimIF fetches the raw instruction word at pc. It sets only raw/pc/next_pc;
// decode is deferred to SimID.
func (f *Facade) SimIF(mem MemoryAccessor, pc uint64) Instruction {
	return Instruction{
		Raw:    mem.Read32(pc),
		PC:     pc,
		NextPC: pc + 4,
	}
}

// SimID decodes the IF-stage latch, setting opcode, register-read/write
// flags, memory-activity flags, does_arith, is_legal, is_nop, is_halt, and
// the initial operand values read from the register file.
func (f *Facade) SimID(regs *RegFile, ifLatch Instruction) Instruction {
	out := ifLatch
	out.NextPC = ifLatch.PC + 4

	decoded := f.decoder.Decode(ifLatch.Raw)
	out.Opcode = decoded.Opcode
	out.Rs1 = decoded.Rs1
	out.Rs2 = decoded.Rs2
	out.Rd = decoded.Rd
	out.IsLegal = decoded.IsLegal
	out.IsNop = ifLatch.Raw == insts.NopWord
	out.IsHalt = decoded.Opcode == insts.OpcodeHalt

	switch decoded.Opcode {
	case insts.OpcodeOp:
		out.ReadsRs1, out.ReadsRs2, out.WritesRd, out.DoesArith = true, true, decoded.Rd != 0, true
		out.ALUResult = f.alu.Execute(decoded.Opcode, decoded.Funct3, decoded.Funct7,
			regs.ReadReg(decoded.Rs1), regs.ReadReg(decoded.Rs2))
	case insts.OpcodeOpImm:
		out.ReadsRs1, out.WritesRd, out.DoesArith = true, decoded.Rd != 0, true
	case insts.OpcodeLoad:
		out.ReadsRs1, out.WritesRd, out.ReadsMem = true, decoded.Rd != 0, true
	case insts.OpcodeStore:
		out.ReadsRs1, out.ReadsRs2, out.WritesMem = true, true, true
	case insts.OpcodeBranch:
		out.ReadsRs1, out.ReadsRs2 = true, true
	case insts.OpcodeJAL:
		out.WritesRd = decoded.Rd != 0
		out.NextPC = uint64(int64(ifLatch.PC) + decoded.Imm)
	case insts.OpcodeJALR:
		out.ReadsRs1, out.WritesRd = true, decoded.Rd != 0
	case insts.OpcodeSystem:
		// ECALL's argument convention (a7=syscall number, a0=argument) is
		// read directly rather than through Op1Val/Op2Val forwarding: a
		// syscall has no hazard-table entry of its own in the core spec.
		out.Op1Val = regs.ReadReg(17)
		out.Op2Val = regs.ReadReg(10)
	case insts.OpcodeLUI, insts.OpcodeAUIPC:
		out.WritesRd, out.DoesArith = decoded.Rd != 0, true
		if decoded.Opcode == insts.OpcodeLUI {
			out.ALUResult = uint64(decoded.Imm)
		} else {
			out.ALUResult = uint64(int64(ifLatch.PC) + decoded.Imm)
		}
	}

	if out.ReadsRs1 {
		out.Op1Val = regs.ReadReg(decoded.Rs1)
	}
	if out.ReadsRs2 {
		out.Op2Val = regs.ReadReg(decoded.Rs2)
	}

	// Keep the decoded immediate and funct fields on the latch itself, so
	// SimNextPCResolution/SimEX/SimMEM compute branch/jalr/load/store
	// targets and ALU results from them without decoding the raw word again.
	out.immCache = decoded.Imm
	out.funct3Cache = decoded.Funct3
	out.funct7Cache = decoded.Funct7

	return out
}

// SimNextPCResolution recomputes next_pc for a control instruction using
// possibly-forwarded op1_val/op2_val. Only BRANCH's outcome depends on
// operand values; JAL/JALR targets are already fixed (JAL at decode time,
// JALR here once rs1 is known).
func (f *Facade) SimNextPCResolution(idLatch Instruction) Instruction {
	out := idLatch
	switch idLatch.Opcode {
	case insts.OpcodeBranch:
		if f.branch.Resolve(idLatch.funct3Cache, idLatch.Op1Val, idLatch.Op2Val) {
			out.NextPC = uint64(int64(idLatch.PC) + idLatch.immCache)
		} else {
			out.NextPC = idLatch.PC + 4
		}
	case insts.OpcodeJALR:
		out.NextPC = (idLatch.Op1Val + uint64(idLatch.immCache)) &^ 1
	}
	return out
}

// SimEX runs ALU/address-computation semantics on the ID-stage latch, after
// forwarding has updated op1_val/op2_val.
func (f *Facade) SimEX(idLatch Instruction) Instruction {
	out := idLatch

	switch idLatch.Opcode {
	case insts.OpcodeOp:
		out.ALUResult = f.alu.Execute(idLatch.Opcode, idLatch.funct3Cache, idLatch.funct7Cache,
			idLatch.Op1Val, idLatch.Op2Val)
	case insts.OpcodeOpImm:
		out.ALUResult = f.alu.Execute(idLatch.Opcode, idLatch.funct3Cache, idLatch.funct7Cache,
			idLatch.Op1Val, uint64(idLatch.immCache))
	case insts.OpcodeLoad:
		out.MemAddr = idLatch.Op1Val + uint64(idLatch.immCache)
	case insts.OpcodeStore:
		out.MemAddr = idLatch.Op1Val + uint64(idLatch.immCache)
	case insts.OpcodeJAL, insts.OpcodeJALR:
		out.ALUResult = idLatch.PC + 4
	}

	return out
}

// SimMEM runs the functional memory access for an EX-stage latch. The
// caller (the pipeline controller) is responsible for checking mem_addr
// against MEMORY_SIZE and for querying the D-cache for timing; this
// function always performs the architectural access when reads_mem or
// writes_mem is set and the address is in bounds.
func (f *Facade) SimMEM(exLatch Instruction, mem MemoryAccessor) Instruction {
	out := exLatch

	switch {
	case exLatch.ReadsMem:
		switch exLatch.funct3Cache {
		case 0b000: // LB
			out.MemResult = uint64(int64(int8(mem.Read8(exLatch.MemAddr))))
		case 0b001: // LH
			out.MemResult = uint64(int64(int16(mem.Read16(exLatch.MemAddr))))
		case 0b010: // LW
			out.MemResult = uint64(int64(int32(mem.Read32(exLatch.MemAddr))))
		case 0b011: // LD
			out.MemResult = mem.Read64(exLatch.MemAddr)
		case 0b100: // LBU
			out.MemResult = uint64(mem.Read8(exLatch.MemAddr))
		case 0b101: // LHU
			out.MemResult = uint64(mem.Read16(exLatch.MemAddr))
		case 0b110: // LWU
			out.MemResult = uint64(mem.Read32(exLatch.MemAddr))
		}
	case exLatch.WritesMem:
		switch exLatch.funct3Cache {
		case 0b000: // SB
			mem.Write8(exLatch.MemAddr, byte(exLatch.Op2Val))
		case 0b001: // SH
			mem.Write16(exLatch.MemAddr, uint16(exLatch.Op2Val))
		case 0b010: // SW
			mem.Write32(exLatch.MemAddr, uint32(exLatch.Op2Val))
		case 0b011: // SD
			mem.Write64(exLatch.MemAddr, exLatch.Op2Val)
		}
	}

	return out
}

// SimWB performs the register write, unless rd is x0 or the latch must not
// commit. The controller calls SimWB on every MEM-stage latch, whatever its
// status; the Status == StatusNormal guard here is what keeps a SQUASHED,
// BUBBLE or IDLE latch from writing a register. The rd==0 guard is kept too
// even though the register file itself already no-ops on x0, matching the
// core invariant "writes to rd==0 produce no register update".
func (f *Facade) SimWB(memLatch Instruction, regs *RegFile) Instruction {
	if memLatch.WritesRd && memLatch.Rd != 0 && memLatch.Status == StatusNormal {
		value := memLatch.ALUResult
		if memLatch.ReadsMem {
			value = memLatch.MemResult
		}
		regs.WriteReg(memLatch.Rd, value)
	}
	return memLatch
}
