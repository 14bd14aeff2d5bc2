package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/archlab/rv5sim/emu"
	"github.com/archlab/rv5sim/insts"
)

var _ = Describe("Facade", func() {
	var (
		f    *emu.Facade
		regs *emu.RegFile
		mem  *emu.Memory
	)

	BeforeEach(func() {
		f = emu.NewFacade()
		regs = &emu.RegFile{}
		mem = emu.NewMemory(1024)
	})

	It("decodes and executes addi x1, x0, 5 end to end", func() {
		mem.Write32(0, 0x00500093) // addi x1, x0, 5

		ifLatch := f.SimIF(mem, 0)
		idLatch := f.SimID(regs, ifLatch)
		Expect(idLatch.Opcode).To(Equal(insts.OpcodeOpImm))
		Expect(idLatch.WritesRd).To(BeTrue())
		Expect(idLatch.Rd).To(Equal(uint8(1)))

		exLatch := f.SimEX(idLatch)
		Expect(exLatch.ALUResult).To(Equal(uint64(5)))

		memLatch := f.SimMEM(exLatch, mem)
		memLatch.Status = emu.StatusNormal
		f.SimWB(memLatch, regs)

		Expect(regs.ReadReg(1)).To(Equal(uint64(5)))
	})

	It("computes a load address and reads memory", func() {
		mem.Write64(16, 9)
		regs.WriteReg(2, 16)

		// lw x3, 0(x2)
		ifLatch := f.SimIF(mem, 100)
		ifLatch.Raw = 0x00012183
		idLatch := f.SimID(regs, ifLatch)
		exLatch := f.SimEX(idLatch)

		Expect(exLatch.MemAddr).To(Equal(uint64(16)))

		memLatch := f.SimMEM(exLatch, mem)
		Expect(memLatch.MemResult).To(Equal(uint64(9)))
	})

	It("does not commit a write for a squashed latch", func() {
		idLatch := f.SimID(regs, emu.Instruction{Raw: 0x00500093})
		exLatch := f.SimEX(idLatch)
		memLatch := f.SimMEM(exLatch, mem)
		memLatch.Status = emu.StatusSquashed

		f.SimWB(memLatch, regs)

		Expect(regs.ReadReg(1)).To(Equal(uint64(0)))
	})

	It("resolves a taken branch's next PC", func() {
		regs.WriteReg(1, 1)
		ifLatch := f.SimIF(mem, 0)
		ifLatch.Raw = 0x00108463 // beq x1, x1, +8
		idLatch := f.SimID(regs, ifLatch)

		resolved := f.SimNextPCResolution(idLatch)
		Expect(resolved.NextPC).To(Equal(uint64(8)))
	})
})
