package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/archlab/rv5sim/insts"
)

var _ = Describe("Decoder", func() {
	var decoder *insts.Decoder

	BeforeEach(func() {
		decoder = insts.NewDecoder()
	})

	Describe("OP-IMM", func() {
		// addi x1, x0, 5 -> imm=5, rs1=0, funct3=0, rd=1, opcode=0010011
		It("should decode ADDI x1, x0, 5", func() {
			inst := decoder.Decode(0x00500093)

			Expect(inst.Opcode).To(Equal(insts.OpcodeOpImm))
			Expect(inst.Format).To(Equal(insts.FormatI))
			Expect(inst.Rd).To(Equal(uint8(1)))
			Expect(inst.Rs1).To(Equal(uint8(0)))
			Expect(inst.Imm).To(Equal(int64(5)))
			Expect(inst.IsLegal).To(BeTrue())
		})

		It("should sign-extend a negative ADDI immediate", func() {
			// addi x1, x0, -1 -> imm12 = 0xFFF
			inst := decoder.Decode(0xFFF00093)

			Expect(inst.Imm).To(Equal(int64(-1)))
		})

		Describe("shift-immediate with shamt >= 32", func() {
			// srli x1, x1, 63 -> funct6=0b000000, shamt=63, sets bit 25
			// (shamt[5]) so Funct7 == 0b0000001, not 0b0000000.
			It("should decode SRLI x1, x1, 63 as legal", func() {
				inst := decoder.Decode(0x03F0D093)

				Expect(inst.Opcode).To(Equal(insts.OpcodeOpImm))
				Expect(inst.Funct3).To(Equal(uint8(0b101)))
				Expect(inst.Funct7).To(Equal(uint8(0b0000001)))
				Expect(inst.IsLegal).To(BeTrue())
			})

			// srai x1, x1, 63 -> funct6=0b010000, shamt=63, sets bit 25
			// so Funct7 == 0b0100001, not 0b0100000.
			It("should decode SRAI x1, x1, 63 as legal", func() {
				inst := decoder.Decode(0x43F0D093)

				Expect(inst.Opcode).To(Equal(insts.OpcodeOpImm))
				Expect(inst.Funct3).To(Equal(uint8(0b101)))
				Expect(inst.Funct7).To(Equal(uint8(0b0100001)))
				Expect(inst.IsLegal).To(BeTrue())
			})
		})
	})

	Describe("OP", func() {
		// add x3, x1, x2
		It("should decode ADD x3, x1, x2", func() {
			inst := decoder.Decode(0x002081b3)

			Expect(inst.Opcode).To(Equal(insts.OpcodeOp))
			Expect(inst.Format).To(Equal(insts.FormatR))
			Expect(inst.Rd).To(Equal(uint8(3)))
			Expect(inst.Rs1).To(Equal(uint8(1)))
			Expect(inst.Rs2).To(Equal(uint8(2)))
			Expect(inst.Funct3).To(Equal(uint8(0)))
			Expect(inst.Funct7).To(Equal(uint8(0)))
			Expect(inst.IsLegal).To(BeTrue())
		})

		// sub x3, x1, x2 -> funct7 = 0100000
		It("should decode SUB x3, x1, x2", func() {
			inst := decoder.Decode(0x402081b3)

			Expect(inst.Opcode).To(Equal(insts.OpcodeOp))
			Expect(inst.Funct3).To(Equal(uint8(0)))
			Expect(inst.Funct7).To(Equal(uint8(0b0100000)))
		})
	})

	Describe("LOAD/STORE", func() {
		// lw x2, 0(x1)
		It("should decode LW x2, 0(x1)", func() {
			inst := decoder.Decode(0x0000a103)

			Expect(inst.Opcode).To(Equal(insts.OpcodeLoad))
			Expect(inst.Format).To(Equal(insts.FormatI))
			Expect(inst.Rd).To(Equal(uint8(2)))
			Expect(inst.Rs1).To(Equal(uint8(1)))
			Expect(inst.Imm).To(Equal(int64(0)))
		})

		// sw x2, 4(x1)
		It("should decode SW x2, 4(x1)", func() {
			inst := decoder.Decode(0x0020a223)

			Expect(inst.Opcode).To(Equal(insts.OpcodeStore))
			Expect(inst.Format).To(Equal(insts.FormatS))
			Expect(inst.Rs1).To(Equal(uint8(1)))
			Expect(inst.Rs2).To(Equal(uint8(2)))
			Expect(inst.Imm).To(Equal(int64(4)))
		})
	})

	Describe("BRANCH", func() {
		// beq x1, x1, +8
		It("should decode BEQ x1, x1, +8", func() {
			inst := decoder.Decode(0x00108463)

			Expect(inst.Opcode).To(Equal(insts.OpcodeBranch))
			Expect(inst.Format).To(Equal(insts.FormatB))
			Expect(inst.Rs1).To(Equal(uint8(1)))
			Expect(inst.Rs2).To(Equal(uint8(1)))
			Expect(inst.Imm).To(Equal(int64(8)))
		})
	})

	Describe("halt", func() {
		It("should decode the architectural halt encoding", func() {
			inst := decoder.Decode(insts.HaltWord)

			Expect(inst.Opcode).To(Equal(insts.OpcodeHalt))
			Expect(inst.IsLegal).To(BeTrue())
		})
	})

	Describe("illegal instructions", func() {
		It("should mark an unrecognized opcode field as illegal", func() {
			inst := decoder.Decode(0xFFFFFFFF)

			Expect(inst.IsLegal).To(BeFalse())
		})
	})
})
