// Package loader provides program loading for RISC-V RV64I binaries, plus a
// minimal raw-image path for hand-assembled test programs.
package loader

import (
	"debug/elf"
	"fmt"
	"io"

	"github.com/archlab/rv5sim/emu"
)

// SegmentFlags represents memory protection flags for a segment.
type SegmentFlags uint32

const (
	// SegmentFlagExecute indicates the segment is executable.
	SegmentFlagExecute SegmentFlags = 1 << iota
	// SegmentFlagWrite indicates the segment is writable.
	SegmentFlagWrite
	// SegmentFlagRead indicates the segment is readable.
	SegmentFlagRead
)

// DefaultStackTop is the default stack top address for RV64 Linux user
// space: a conventional high address in the user space address range.
const DefaultStackTop = 0x7ffffffff000

// DefaultStackSize is the default stack size (8MB).
const DefaultStackSize = 8 * 1024 * 1024

// Segment represents a loadable segment from an ELF binary.
type Segment struct {
	// VirtAddr is the virtual address where this segment should be loaded.
	VirtAddr uint64
	// Data contains the segment contents from the file.
	Data []byte
	// MemSize is the size in memory (may be larger than len(Data) for BSS).
	MemSize uint64
	// Flags contains the segment protection flags.
	Flags SegmentFlags
}

// Program represents a loaded program ready for execution.
type Program struct {
	// EntryPoint is the address where execution should begin.
	EntryPoint uint64
	// Segments contains all loadable segments from the binary.
	Segments []Segment
	// InitialSP is the initial stack pointer value.
	InitialSP uint64
}

// Load parses an RV64I ELF binary and returns a Program struct ready for
// loading into the simulator's memory.
func Load(path string) (*Program, error) {
	f, err := elf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ELF file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if f.Class != elf.ELFCLASS64 {
		return nil, fmt.Errorf("not a 64-bit ELF file")
	}

	if f.Machine != elf.EM_RISCV {
		return nil, fmt.Errorf("not a RISC-V ELF file (machine type: %v)", f.Machine)
	}

	prog := &Program{
		EntryPoint: f.Entry,
		InitialSP:  DefaultStackTop,
	}

	for _, phdr := range f.Progs {
		if phdr.Type != elf.PT_LOAD {
			continue
		}

		data := make([]byte, phdr.Filesz)
		if phdr.Filesz > 0 {
			n, err := phdr.ReadAt(data, 0)
			if err != nil && err != io.EOF {
				return nil, fmt.Errorf("failed to read segment at 0x%x: %w", phdr.Vaddr, err)
			}
			if uint64(n) != phdr.Filesz {
				return nil, fmt.Errorf("short read for segment at 0x%x: got %d bytes, expected %d",
					phdr.Vaddr, n, phdr.Filesz)
			}
		}

		var flags SegmentFlags
		if phdr.Flags&elf.PF_X != 0 {
			flags |= SegmentFlagExecute
		}
		if phdr.Flags&elf.PF_W != 0 {
			flags |= SegmentFlagWrite
		}
		if phdr.Flags&elf.PF_R != 0 {
			flags |= SegmentFlagRead
		}

		prog.Segments = append(prog.Segments, Segment{
			VirtAddr: phdr.Vaddr,
			Data:     data,
			MemSize:  phdr.Memsz,
			Flags:    flags,
		})
	}

	return prog, nil
}

// LoadRawImage builds a Program from a flat slice of little-endian 32-bit
// instruction words placed at base, with no ELF framing at all. There is no
// teacher precedent for this path (the teacher is ELF-only); it exists
// because the simulator's hazard/exception test programs are hand-assembled
// a few instructions at a time and have no RISC-V toolchain available to
// produce a real ELF binary from them.
func LoadRawImage(base uint64, words []uint32) *Program {
	data := make([]byte, len(words)*4)
	for i, w := range words {
		data[i*4+0] = byte(w)
		data[i*4+1] = byte(w >> 8)
		data[i*4+2] = byte(w >> 16)
		data[i*4+3] = byte(w >> 24)
	}
	return &Program{
		EntryPoint: base,
		InitialSP:  DefaultStackTop,
		Segments: []Segment{{
			VirtAddr: base,
			Data:     data,
			MemSize:  uint64(len(data)),
			Flags:    SegmentFlagExecute | SegmentFlagRead,
		}},
	}
}

// ApplyTo writes every segment of the program into mem. Bytes beyond
// len(Data) up to MemSize (BSS) are left as whatever mem already holds,
// matching emu.Memory's zero-initialized backing array.
func (p *Program) ApplyTo(mem *emu.Memory) error {
	for _, seg := range p.Segments {
		for i, b := range seg.Data {
			addr := seg.VirtAddr + uint64(i)
			if !mem.InBounds(addr, 1) {
				return fmt.Errorf("loader: segment byte at 0x%x exceeds memory size 0x%x", addr, mem.Size())
			}
			mem.Write8(addr, b)
		}
	}
	return nil
}
