package pipeline

import (
	"github.com/archlab/rv5sim/emu"
	"github.com/archlab/rv5sim/insts"
)

// isActive reports whether a latch holds real, still-live content: neither
// the boot-time IDLE placeholder nor a cancelled BUBBLE/SQUASHED value.
func isActive(s emu.Status) bool {
	return s == emu.StatusNormal || s == emu.StatusSpeculative
}

// isControlOpcode reports whether opcode is one of the three control
// instruction classes the hazard table and branch redirect logic treat as
// "a control instruction sits in ID".
func isControlOpcode(op insts.Opcode) bool {
	return op == insts.OpcodeBranch || op == insts.OpcodeJAL || op == insts.OpcodeJALR
}

// forward resolves the priority-ordered forwarding sources of core spec
// §4.2.3 for a single read register. Grounded on the teacher's
// timing/pipeline/hazard.go detectForwardForReg, generalized from ARM64's
// two-source table to the core's three-tier table (EX→ID arith, MEM→ID
// load, MEM→ID arith).
func forward(rs uint8, readsRs bool, opVal uint64, exPrime, memPrime emu.Instruction) uint64 {
	if !readsRs || rs == 0 {
		return opVal
	}

	if isActive(exPrime.Status) && exPrime.WritesRd && exPrime.Rd == rs && exPrime.DoesArith {
		return exPrime.ALUResult
	}
	if isActive(memPrime.Status) && memPrime.WritesRd && memPrime.Rd == rs {
		if memPrime.ReadsMem {
			return memPrime.MemResult
		}
		if memPrime.DoesArith {
			return memPrime.ALUResult
		}
	}
	return opVal
}
