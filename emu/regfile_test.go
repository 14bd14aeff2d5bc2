package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/archlab/rv5sim/emu"
)

var _ = Describe("RegFile", func() {
	It("hardwires x0 to zero across writes", func() {
		regs := &emu.RegFile{}
		regs.WriteReg(0, 42)

		Expect(regs.ReadReg(0)).To(Equal(uint64(0)))
	})

	It("round-trips a write through a non-zero register", func() {
		regs := &emu.RegFile{}
		regs.WriteReg(5, 123)

		Expect(regs.ReadReg(5)).To(Equal(uint64(123)))
	})
})

var _ = Describe("Memory", func() {
	It("reports addresses at or beyond its size as out of bounds", func() {
		mem := emu.NewMemory(16)

		Expect(mem.InBounds(15, 1)).To(BeTrue())
		Expect(mem.InBounds(16, 1)).To(BeFalse())
		Expect(mem.InBounds(13, 4)).To(BeFalse())
	})

	It("round-trips a 64-bit little-endian store/load", func() {
		mem := emu.NewMemory(64)
		mem.Write64(8, 0x0102030405060708)

		Expect(mem.Read64(8)).To(Equal(uint64(0x0102030405060708)))
		Expect(mem.Read8(8)).To(Equal(uint8(0x08)))
	})

	It("drops out-of-bounds writes silently", func() {
		mem := emu.NewMemory(4)
		mem.Write32(4, 0xDEADBEEF)

		Expect(mem.Read32(0)).To(Equal(uint32(0)))
	})
})
