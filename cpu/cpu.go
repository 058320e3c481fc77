// Package cpu implements the MOS 6502 instruction interpreter: the
// register file, the 256-entry opcode dispatch table, and the semantics
// of every documented opcode. It is the sole owner of the register file;
// Memory and Stack are injected as members, never shared mutable globals.
package cpu

import (
	"fmt"

	"github.com/hejops/mos6502/addressing"
	"github.com/hejops/mos6502/memory"
	"github.com/hejops/mos6502/stack"
	"github.com/hejops/mos6502/status"
)

const (
	vectorNMI   = 0xFFFA
	vectorReset = 0xFFFC
	vectorIRQ   = 0xFFFE
)

// CPU is the MOS 6502 register file plus the memory and stack it drives.
type CPU struct {
	A, X, Y byte
	PC      uint16
	Flags   status.Register

	mem   *memory.Memory
	stack *stack.Stack

	nmiPending bool
	irqLine    bool
}

// New returns a CPU wired to mem, with all registers zeroed and then
// Reset so that SP, I, and PC carry their post-reset values.
func New(mem *memory.Memory) *CPU {
	c := &CPU{
		mem:   mem,
		stack: stack.New(mem),
	}
	c.Reset()
	return c
}

// Reset reinitializes SP, sets the interrupt-disable flag, and loads PC
// from the reset vector at 0xFFFC/FD, as a real 6502 does. Per spec, N V
// D Z C are left unchanged by Reset; only construction via New zeroes
// them (by virtue of the struct's zero value).
func (c *CPU) Reset() {
	c.stack.SP = 0xFD
	c.Flags.Interrupt = true
	c.PC = c.mem.ReadWord(vectorReset)
}

// LoadImage copies data into memory starting at origin. It does not
// touch the reset vector; callers that need PC to start somewhere other
// than whatever the vector already contains must write 0xFFFC/FD
// themselves (or call Reset afterward).
func (c *CPU) LoadImage(data []byte, origin uint16) {
	c.mem.Load(data, origin)
}

// SignalNMI raises the (edge-triggered) NMI line. Calling it repeatedly
// before the pending NMI is serviced has no additional effect — the
// pending flag coalesces into a single service at the next Step.
func (c *CPU) SignalNMI() {
	c.nmiPending = true
}

// SignalIRQ asserts the (level-triggered) IRQ line. It stays asserted
// until ClearIRQ is called; while asserted, Step services it on every
// call where the interrupt-disable flag is clear.
func (c *CPU) SignalIRQ() {
	c.irqLine = true
}

// ClearIRQ deasserts the IRQ line. Not part of the spec's minimal
// external API, but necessary for a host to express "the device that
// raised this IRQ has been serviced" — without it, level-triggered IRQ
// semantics are unobservable from outside the CPU.
func (c *CPU) ClearIRQ() {
	c.irqLine = false
}

// IllegalOpcodeError is returned by Step when the fetched opcode has no
// entry in the dispatch table. PC is left immediately after the opcode
// fetch, i.e. pointing at what would have been the first operand byte.
type IllegalOpcodeError struct {
	Opcode byte
	PC     uint16
}

func (e *IllegalOpcodeError) Error() string {
	return fmt.Sprintf("illegal opcode 0x%02X at PC 0x%04X", e.Opcode, e.PC)
}

// Step services a pending interrupt if one is due, otherwise fetches,
// decodes, resolves, and executes exactly one instruction, and returns
// the number of cycles it consumed.
func (c *CPU) Step() (uint8, error) {
	if c.nmiPending {
		c.nmiPending = false
		c.serviceInterrupt(vectorNMI, false)
		return 7, nil
	}
	if c.irqLine && !c.Flags.Interrupt {
		c.serviceInterrupt(vectorIRQ, false)
		return 7, nil
	}

	opcode := c.mem.ReadByte(c.PC)
	c.PC++

	entry := &opcodeTable[opcode]
	if entry.Handler == nil {
		return 0, &IllegalOpcodeError{Opcode: opcode, PC: c.PC}
	}

	res := addressing.Resolve(c.mem, entry.Mode, &c.PC, c.X, c.Y)
	cycles := entry.BaseCycles
	extra := entry.Handler(c, res)
	if entry.PageCrossPenalty && res.PageCrossed {
		cycles++
	}
	return cycles + extra, nil
}

func (c *CPU) serviceInterrupt(vector uint16, brk bool) {
	c.stack.PushWord(c.PC)
	c.stack.PushByte(c.Flags.Pack(brk))
	c.Flags.Interrupt = true
	c.PC = c.mem.ReadWord(vector)
}

// operand returns the byte an instruction should read, given how its
// addressing mode resolved: the accumulator itself, an immediate value,
// or a memory cell at the resolved effective address.
func (c *CPU) operand(res addressing.Result) byte {
	switch res.Mode {
	case addressing.Accumulator:
		return c.A
	case addressing.Immediate:
		return res.Value
	default:
		return c.mem.ReadByte(res.Addr)
	}
}

// writeOperand is operand's write-side counterpart, used by read-modify-
// write instructions (ASL, LSR, ROL, ROR, INC, DEC).
func (c *CPU) writeOperand(res addressing.Result, v byte) {
	if res.Mode == addressing.Accumulator {
		c.A = v
	} else {
		c.mem.WriteByte(res.Addr, v)
	}
}

func (c *CPU) setZN(v byte) {
	c.Flags.Zero = v == 0
	c.Flags.Negative = v&0x80 != 0
}

// RegisterSnapshot is a read-only copy of the register file, for hosts
// (inspector, tests) that must not hold a live pointer into the CPU.
type RegisterSnapshot struct {
	A, X, Y byte
	PC      uint16
	SP      byte
	Flags   byte
}

// Registers returns a snapshot of the register file. Flags is packed
// with B=0, matching the fact that the logical register set has no B
// flag of its own.
func (c *CPU) Registers() RegisterSnapshot {
	return RegisterSnapshot{
		A:     c.A,
		X:     c.X,
		Y:     c.Y,
		PC:    c.PC,
		SP:    c.stack.SP,
		Flags: c.Flags.Pack(false),
	}
}

// ReadByte exposes a read-only peek at memory, for the inspector and
// disassembler.
func (c *CPU) ReadByte(addr uint16) byte {
	return c.mem.ReadByte(addr)
}

// ReadWord exposes a read-only little-endian word peek, for the
// disassembler.
func (c *CPU) ReadWord(addr uint16) uint16 {
	return c.mem.ReadWord(addr)
}

// ReadRange exposes a read-only window of memory.
func (c *CPU) ReadRange(addr uint16, length int) []byte {
	return c.mem.ReadRange(addr, length)
}

// StackView exposes the full 256-byte stack page.
func (c *CPU) StackView() [256]byte {
	return c.stack.View()
}
