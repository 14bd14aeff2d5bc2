package emu

import "io"

// SyscallHandler services the SYSTEM opcode's ECALL instruction. The core
// spec's functional semantics façade is an external collaborator with no
// timing knowledge; syscall emulation itself is entirely out of the core's
// scope, so this is a minimal passthrough sufficient to let a test program
// make an exit-style call, grounded on the handler-table shape of the
// teacher's emu/syscall.go without reproducing its full Linux syscall table.
type SyscallHandler interface {
	// Handle services a7-numbered syscall using a0 as its argument and
	// returns a result value. The pipeline controller discards that value;
	// a0 is not written on return.
	Handle(number uint64, arg uint64) uint64
}

// DefaultSyscallHandler recognizes a single "write a byte to stdout"
// syscall (number 1) and otherwise no-ops, returning 0.
type DefaultSyscallHandler struct {
	Stdout io.Writer
}

// NewDefaultSyscallHandler creates a handler that writes syscall-1's
// argument, truncated to a byte, to stdout.
func NewDefaultSyscallHandler(stdout io.Writer) *DefaultSyscallHandler {
	return &DefaultSyscallHandler{Stdout: stdout}
}

// Handle implements SyscallHandler.
func (h *DefaultSyscallHandler) Handle(number uint64, arg uint64) uint64 {
	if number == 1 && h.Stdout != nil {
		_, _ = h.Stdout.Write([]byte{byte(arg)})
	}
	return 0
}
