// Package core provides the cycle-accurate CPU core model. It wraps the
// pipeline controller to provide a high-level interface, owning the register
// file, memory, and both caches so callers (the loader and the CLI) never
// have to reach into pipeline.Controller's fields directly. Grounded on the
// teacher's timing/core/core.go Core{Pipeline, regFile, memory} shape.
package core

import (
	"github.com/archlab/rv5sim/emu"
	"github.com/archlab/rv5sim/timing/cache"
	"github.com/archlab/rv5sim/timing/pipeline"
	"github.com/archlab/rv5sim/timing/simconfig"
)

// Core represents a cycle-accurate CPU core model: a five-stage pipeline
// plus the register file, memory, and I/D caches it operates on.
type Core struct {
	// Pipeline is the underlying five-stage pipeline controller.
	Pipeline *pipeline.Controller

	regFile *emu.RegFile
	memory  *emu.Memory
	icache  *cache.Cache
	dcache  *cache.Cache
}

// NewCore builds a Core from a simulation configuration and entry PC. The
// register file and memory are constructed fresh; callers load a program
// image into the returned Core's Memory before the first RunCycles/RunTillHalt
// call.
func NewCore(cfg *simconfig.Config, entryPC uint64, opts ...pipeline.Option) *Core {
	regs := &emu.RegFile{}
	mem := emu.NewMemory(cfg.MemorySize)
	ic := cache.New(cfg.ICache.ToCacheConfig())
	dc := cache.New(cfg.DCache.ToCacheConfig())

	allOpts := append([]pipeline.Option{pipeline.WithEntryPoint(entryPC)}, opts...)
	return &Core{
		Pipeline: pipeline.NewController(regs, mem, ic, dc, allOpts...),
		regFile:  regs,
		memory:   mem,
		icache:   ic,
		dcache:   dc,
	}
}

// Memory returns the core's backing memory, for loaders to populate before
// the run starts.
func (c *Core) Memory() *emu.Memory { return c.memory }

// Registers returns the core's register file, chiefly for tests that inspect
// final register state.
func (c *Core) Registers() *emu.RegFile { return c.regFile }

// RunTillHalt runs the core until the program halts or a precise exception
// terminates the run.
func (c *Core) RunTillHalt() (pipeline.Status, error) {
	return c.Pipeline.RunTillHalt()
}

// RunCycles runs the core for at most n cycles, stopping early on halt or
// exception.
func (c *Core) RunCycles(n int) (pipeline.Status, error) {
	return c.Pipeline.RunCycles(n)
}

// Stats returns the accumulated run statistics.
func (c *Core) Stats() pipeline.Statistics {
	return c.Pipeline.Stats()
}

// Finalize emits the final-statistics record to whatever logger the core was
// configured with.
func (c *Core) Finalize() {
	c.Pipeline.Finalize()
}
