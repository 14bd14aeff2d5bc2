// Package pipeline implements the five-stage in-order controller: the core
// of the simulator. Grounded on the teacher's timing/pipeline/pipeline.go
// (Pipeline struct owning every per-cycle resource, the Statistics+CPI()
// method, and the functional-options constructor), generalized from the
// teacher's eight/six/four-wide superscalar tick variants down to the core
// spec's single always-in-order five-stage tick.
package pipeline

import (
	"errors"
	"fmt"

	"github.com/rs/xid"
	"github.com/shopspring/decimal"

	"github.com/archlab/rv5sim/emu"
	"github.com/archlab/rv5sim/insts"
	"github.com/archlab/rv5sim/timing/cache"
	"github.com/archlab/rv5sim/timing/trace"
)

// ExceptionHandlerAddress is the fixed PC both precise exceptions redirect
// to, named in the core spec's external interfaces.
const ExceptionHandlerAddress uint64 = 0x8000

// Status is the outcome of a single RunCycles/RunTillHalt call.
type Status uint8

// Status values.
const (
	StatusSuccess Status = iota
	StatusHalt
	StatusError
)

// ErrMemoryException is returned (wrapped) when a MEM-stage access addresses
// memory at or beyond MEMORY_SIZE.
var ErrMemoryException = errors.New("pipeline: memory address out of range")

// ErrIllegalInstruction is returned (wrapped) when an ID-stage instruction
// fails decode legality.
var ErrIllegalInstruction = errors.New("pipeline: illegal instruction")

// Statistics accumulates the run-level counters the core spec's external
// interfaces name, with CPI derived via shopspring/decimal rather than
// floating point, matching the teacher's Statistics.CPI() idiom.
type Statistics struct {
	DynamicInstructions uint64
	TotalCycles         uint64
	LoadStalls          uint64
}

// CPI returns TotalCycles/DynamicInstructions, or zero before any
// instruction has retired.
func (s Statistics) CPI() decimal.Decimal {
	if s.DynamicInstructions == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(s.TotalCycles)).
		DivRound(decimal.NewFromInt(int64(s.DynamicInstructions)), 4)
}

// Option configures a Controller at construction time, following the
// teacher's PipelineOption functional-options pattern.
type Option func(*Controller)

// WithSyscallHandler overrides the default no-op syscall handler.
func WithSyscallHandler(h emu.SyscallHandler) Option {
	return func(c *Controller) { c.syscalls = h }
}

// WithLogger attaches a per-cycle/final-statistics logger.
func WithLogger(l trace.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithEntryPoint overrides the initial fetch PC (default 0).
func WithEntryPoint(pc uint64) Option {
	return func(c *Controller) { c.entryPC = pc }
}

// Controller is the five-stage in-order pipeline: the one stateful type
// that owns the register file, memory, both caches, and the five stage
// latches, and advances them one cycle at a time. Grounded on the teacher's
// Pipeline struct shape.
type Controller struct {
	regs *emu.RegFile
	mem  *emu.Memory

	icache *cache.Cache
	dcache *cache.Cache

	facade   *emu.Facade
	syscalls emu.SyscallHandler

	runID  xid.ID
	seq    uint64
	logger trace.Logger

	entryPC uint64
	pc      uint64

	ifLatch, idLatch, exLatch, memLatch, wbLatch emu.Instruction

	loadStallCount   uint64
	iMissRemaining   uint64
	dMissRemaining   uint64
	loadBranchExtra  uint64
	cycleCount       uint64
	dynamicInstCount uint64

	halted bool
}

// NewController builds a Controller over the given register file, memory,
// and caches, then performs the initial fetch described in the core spec's
// §4.2.9 (the IF latch is populated speculatively before the first tick).
func NewController(regs *emu.RegFile, mem *emu.Memory, icache, dcache *cache.Cache, opts ...Option) *Controller {
	c := &Controller{
		regs:     regs,
		mem:      mem,
		icache:   icache,
		dcache:   dcache,
		facade:   emu.NewFacade(),
		syscalls: emu.NewDefaultSyscallHandler(nil),
		runID:    xid.New(),
		idLatch:  emu.NOP(emu.StatusIdle),
		exLatch:  emu.NOP(emu.StatusIdle),
		memLatch: emu.NOP(emu.StatusIdle),
		wbLatch:  emu.NOP(emu.StatusIdle),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.pc = c.entryPC
	c.init()
	return c
}

// init performs the boot-time fetch: §4.2.9 of the core spec.
func (c *Controller) init() {
	c.ifLatch = c.facade.SimIF(c.mem, c.pc)
	c.ifLatch.Status = emu.StatusSpeculative
	if !c.icache.Access(c.pc, cache.OperationRead) {
		c.iMissRemaining = c.icache.MissLatency()
	}
	c.pc += 4
}

// RunCycles advances the controller by at most n cycles, stopping early on
// halt or on a precise exception.
func (c *Controller) RunCycles(n int) (Status, error) {
	for i := 0; i < n; i++ {
		status, err := c.tick()
		if status != StatusSuccess {
			return status, err
		}
	}
	return StatusSuccess, nil
}

// RunTillHalt advances the controller until the program executes its halt
// instruction or a precise exception terminates the run.
func (c *Controller) RunTillHalt() (Status, error) {
	for {
		status, err := c.tick()
		if status != StatusSuccess {
			return status, err
		}
	}
}

// Stats returns the accumulated run statistics: dynamic instructions, total
// cycles and load stalls. Cache hit/miss counts are not included; they are
// reported only in the FinalStats record that Finalize emits.
func (c *Controller) Stats() Statistics {
	return Statistics{
		DynamicInstructions: c.dynamicInstCount,
		TotalCycles:         c.cycleCount,
		LoadStalls:          c.loadStallCount,
	}
}

// Finalize emits the final-statistics record to the attached logger, if
// any. Grounded on original_source/project2/src/cycle.cpp's dumpSimStats,
// the second of its two distinct emission points (see package trace's doc).
func (c *Controller) Finalize() {
	if c.logger == nil {
		return
	}
	c.logger.LogFinal(trace.FinalStats{
		RunID:               c.runID.String(),
		DynamicInstructions: c.dynamicInstCount,
		TotalCycles:         c.cycleCount,
		ICHits:              c.icache.Hits(),
		ICMisses:            c.icache.Misses(),
		DCHits:              c.dcache.Hits(),
		DCMisses:            c.dcache.Misses(),
		LoadStalls:          c.loadStallCount,
	})
}

// tick advances the pipeline by exactly one cycle. It implements §4.2.1
// through §4.2.8 of the core spec: an immutable start-of-cycle snapshot,
// nominal stage order WB→MEM→EX→ID→IF, forwarding, hazard stalls, fixed
// always-not-taken branch prediction resolved in ID, D-cache/I-cache
// freeze semantics, and the two precise exceptions.
func (c *Controller) tick() (Status, error) {
	if c.halted {
		return StatusHalt, nil
	}

	// A D-cache miss freezes every stage but WB, which bubbles; the I-miss
	// counter keeps ticking down in parallel per §4.2.6.
	if c.dMissRemaining > 0 {
		c.dMissRemaining--
		if c.iMissRemaining > 0 {
			c.iMissRemaining--
		}
		c.wbLatch = emu.NOP(emu.StatusBubble)
		c.cycleCount++
		c.emitSnapshot()
		return StatusSuccess, nil
	}

	ifPrev, idPrev, exPrev, memPrev, wbPrev := c.ifLatch, c.idLatch, c.exLatch, c.memLatch, c.wbLatch

	exActive := isActive(exPrev.Status)
	exWritesRd := exActive && exPrev.WritesRd && exPrev.Rd != 0
	exIsLoad := exWritesRd && exPrev.ReadsMem
	exIsArith := exWritesRd && exPrev.DoesArith

	idActive := isActive(idPrev.Status) && !idPrev.IsNop
	idIsBranch := idActive && isControlOpcode(idPrev.Opcode)
	idIsStore := idActive && idPrev.Opcode == insts.OpcodeStore

	haz1 := idPrev.ReadsRs1 && idPrev.Rs1 != 0 && idPrev.Rs1 == exPrev.Rd
	haz2 := idPrev.ReadsRs2 && idPrev.Rs2 != 0 && idPrev.Rs2 == exPrev.Rd

	var stall, countLoadStall bool
	var nextLoadBranchExtra uint64

	switch {
	case c.loadBranchExtra > 0:
		stall = true
		nextLoadBranchExtra = c.loadBranchExtra - 1
	case exIsLoad && idIsBranch && (haz1 || haz2):
		stall, countLoadStall = true, true
		nextLoadBranchExtra = 1
	case exIsLoad && !idIsBranch && (haz1 || (haz2 && !idIsStore)):
		stall, countLoadStall = true, true
	case exIsArith && idIsBranch && (haz1 || haz2):
		stall = true
	}
	c.loadBranchExtra = nextLoadBranchExtra
	if countLoadStall {
		c.loadStallCount++
	}

	memException := exActive && (exPrev.ReadsMem || exPrev.WritesMem) && exPrev.MemAddr >= c.mem.Size()
	illegalException := idActive && !idPrev.IsLegal
	exceptionThisCycle := memException || illegalException

	// --- step 1: WB = writeback(MEM') ---
	newWB := c.facade.SimWB(memPrev, c.regs)
	haltThisCycle := memPrev.Status == emu.StatusNormal && memPrev.IsHalt
	if memPrev.Status == emu.StatusNormal {
		c.dynamicInstCount++
		if memPrev.Opcode == insts.OpcodeSystem {
			c.syscalls.Handle(memPrev.Op1Val, memPrev.Op2Val)
		}
	}

	// --- step 2: MEM = memory(EX'), with store-data WB'→MEM forwarding ---
	// A store in EX' whose rs2 is written by a load in WB' takes that
	// load's result as its store data. Such a load is two instructions
	// ahead of the store. A load immediately ahead of the store sits in
	// MEM' this cycle and is not a source on this path.
	exForMem := exPrev
	if exActive && exPrev.WritesMem && exPrev.Rs2 != 0 &&
		isActive(wbPrev.Status) && wbPrev.WritesRd && wbPrev.Rd == exPrev.Rs2 && wbPrev.ReadsMem {
		exForMem.Op2Val = wbPrev.MemResult
	}

	var newMEM emu.Instruction
	switch {
	case memException:
		newMEM = exForMem
		newMEM.Status = emu.StatusSquashed
	default:
		newMEM = c.facade.SimMEM(exForMem, c.mem)
		if exActive && (exForMem.ReadsMem || exForMem.WritesMem) {
			op := cache.OperationRead
			if exForMem.WritesMem {
				op = cache.OperationWrite
			}
			if !c.dcache.Access(exForMem.MemAddr, op) {
				c.dMissRemaining = c.dcache.MissLatency()
			}
		}
	}

	// --- step 3: EX = alu(ID'), after forwarding and branch resolution ---
	var newEX emu.Instruction
	var branchTaken bool
	var branchTarget uint64

	switch {
	case exceptionThisCycle:
		newEX = emu.NOP(emu.StatusSquashed)
	case stall:
		newEX = emu.NOP(emu.StatusBubble)
	default:
		resolved := idPrev
		resolved.Op1Val = forward(idPrev.Rs1, idPrev.ReadsRs1, idPrev.Op1Val, exPrev, memPrev)
		resolved.Op2Val = forward(idPrev.Rs2, idPrev.ReadsRs2, idPrev.Op2Val, exPrev, memPrev)
		if idPrev.Opcode == insts.OpcodeBranch || idPrev.Opcode == insts.OpcodeJALR {
			resolved = c.facade.SimNextPCResolution(resolved)
		}
		if idIsBranch && resolved.NextPC != idPrev.PC+4 {
			branchTaken = true
			branchTarget = resolved.NextPC
		}
		newEX = c.facade.SimEX(resolved)
	}

	// --- step 4 & 5: ID = decode(IF'), IF = fetch(pc) ---
	var newID, newIF emu.Instruction

	switch {
	case exceptionThisCycle:
		newID = emu.NOP(emu.StatusSquashed)
		// A fresh D-miss detected this same cycle by an older, unrelated
		// MEM-stage access (illegalException only — memException already
		// skips the D-cache access) is left pending rather than cleared: it
		// belongs to an instruction the exception does not touch.
		c.iMissRemaining, c.loadBranchExtra = 0, 0
		c.pc = ExceptionHandlerAddress
		newIF = c.facade.SimIF(c.mem, c.pc)
		newIF.Status = emu.StatusNormal
		if !c.icache.Access(c.pc, cache.OperationRead) {
			c.iMissRemaining = c.icache.MissLatency()
		}
		c.pc += 4

	case branchTaken:
		newID = emu.NOP(emu.StatusSquashed)
		newIF = emu.NOP(emu.StatusSquashed)
		if c.iMissRemaining > 0 {
			c.icache.Invalidate(ifPrev.PC)
			c.iMissRemaining = 0
		}
		c.pc = branchTarget

	case stall:
		newID = idPrev
		newIF = ifPrev

	case c.iMissRemaining > 0:
		newID = emu.NOP(emu.StatusBubble)
		newIF = ifPrev
		c.iMissRemaining--

	case ifPrev.Status == emu.StatusSquashed:
		newID = emu.NOP(emu.StatusSquashed)
		newIF = c.fetchSequential()

	default:
		newID = c.facade.SimID(c.regs, ifPrev)
		if ifPrev.Status == emu.StatusSpeculative {
			newID.Status = emu.StatusNormal
		} else {
			newID.Status = ifPrev.Status
		}
		newIF = c.fetchSequential()
		if newID.Status == emu.StatusNormal && isControlOpcode(newID.Opcode) {
			newIF.Status = emu.StatusSpeculative
		}
	}

	c.ifLatch, c.idLatch, c.exLatch, c.memLatch, c.wbLatch = newIF, newID, newEX, newMEM, newWB
	c.cycleCount++
	c.emitSnapshot()

	switch {
	case haltThisCycle:
		c.halted = true
		return StatusHalt, nil
	case memException:
		return StatusError, fmt.Errorf("%w: addr=0x%x pc=0x%x", ErrMemoryException, exForMem.MemAddr, exForMem.PC)
	case illegalException:
		return StatusError, fmt.Errorf("%w: raw=0x%08x pc=0x%x", ErrIllegalInstruction, idPrev.Raw, idPrev.PC)
	}
	return StatusSuccess, nil
}

// fetchSequential performs the I-cache access and SimIF for the ordinary
// sequential-fetch path, advancing c.pc by one instruction.
func (c *Controller) fetchSequential() emu.Instruction {
	out := c.facade.SimIF(c.mem, c.pc)
	out.Status = emu.StatusNormal
	if !c.icache.Access(c.pc, cache.OperationRead) {
		c.iMissRemaining = c.icache.MissLatency()
	}
	c.pc += 4
	return out
}

// emitSnapshot sends the current cycle's five-latch state to the attached
// logger, if any.
func (c *Controller) emitSnapshot() {
	if c.logger == nil {
		return
	}
	c.seq++
	c.logger.LogCycle(trace.Snapshot{
		RunID: c.runID.String(),
		Seq:   c.seq,
		Cycle: c.cycleCount,

		IFPC:     c.ifLatch.PC,
		IFStatus: statusName(c.ifLatch.Status),

		IDInstr:  c.idLatch.Raw,
		IDStatus: statusName(c.idLatch.Status),

		EXInstr:  c.exLatch.Raw,
		EXStatus: statusName(c.exLatch.Status),

		MEMInstr:  c.memLatch.Raw,
		MEMStatus: statusName(c.memLatch.Status),

		WBInstr:  c.wbLatch.Raw,
		WBStatus: statusName(c.wbLatch.Status),
	})
}

func statusName(s emu.Status) trace.StatusName {
	switch s {
	case emu.StatusNormal:
		return trace.StatusNormal
	case emu.StatusSpeculative:
		return trace.StatusSpeculative
	case emu.StatusSquashed:
		return trace.StatusSquashed
	case emu.StatusBubble:
		return trace.StatusBubble
	default:
		return trace.StatusIdle
	}
}
