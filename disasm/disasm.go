// Package disasm renders the instruction at a given program counter as a
// human-readable mnemonic string, without touching CPU state. It is
// decorative: the interpreter never imports it, and nothing it does
// affects emulation.
package disasm

import (
	"fmt"

	"github.com/hejops/mos6502/addressing"
	"github.com/hejops/mos6502/cpu"
)

// peekMem is the minimal read-only view Format needs. It is deliberately
// narrower than addressing.MemReader: disasm never dereferences a
// pointer operand, it only prints the raw encoded bytes, so it has no
// use for ReadWordWrapped.
type peekMem interface {
	ReadByte(addr uint16) byte
	ReadWord(addr uint16) uint16
}

// Format reads the opcode at pc from mem and renders it as a mnemonic
// string such as "LDA #$80" or "JMP ($30FF)", alongside the number of
// bytes the full instruction occupies (1-3). It prints the operand
// exactly as encoded — it never follows an indirect pointer to its
// target, so it cannot itself reproduce the indirect-JMP page bug.
// An unassigned opcode renders as "???" with width 1, so a caller
// stepping a disassembly view forward never gets stuck.
func Format(mem peekMem, pc uint16) (string, uint16) {
	opcode := mem.ReadByte(pc)
	name, mode, ok := cpu.Describe(opcode)
	if !ok {
		return "???", 1
	}

	switch mode {
	case addressing.Implied:
		return name, 1
	case addressing.Accumulator:
		return name + " A", 1
	case addressing.Immediate:
		return fmt.Sprintf("%s #$%02X", name, mem.ReadByte(pc+1)), 2
	case addressing.Relative:
		offset := int8(mem.ReadByte(pc + 1))
		target := uint16(int32(pc+2) + int32(offset))
		return fmt.Sprintf("%s $%04X", name, target), 2
	case addressing.ZeroPage:
		return fmt.Sprintf("%s $%02X", name, mem.ReadByte(pc+1)), 2
	case addressing.ZeroPageX:
		return fmt.Sprintf("%s $%02X,X", name, mem.ReadByte(pc+1)), 2
	case addressing.ZeroPageY:
		return fmt.Sprintf("%s $%02X,Y", name, mem.ReadByte(pc+1)), 2
	case addressing.Absolute:
		return fmt.Sprintf("%s $%04X", name, mem.ReadWord(pc+1)), 3
	case addressing.AbsoluteX:
		return fmt.Sprintf("%s $%04X,X", name, mem.ReadWord(pc+1)), 3
	case addressing.AbsoluteY:
		return fmt.Sprintf("%s $%04X,Y", name, mem.ReadWord(pc+1)), 3
	case addressing.Indirect:
		return fmt.Sprintf("%s ($%04X)", name, mem.ReadWord(pc+1)), 3
	case addressing.IndirectX:
		return fmt.Sprintf("%s ($%02X,X)", name, mem.ReadByte(pc+1)), 2
	case addressing.IndirectY:
		return fmt.Sprintf("%s ($%02X),Y", name, mem.ReadByte(pc+1)), 2
	default:
		return name, 1
	}
}
