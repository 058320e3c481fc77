package cpu

import "github.com/hejops/mos6502/addressing"

// opcodeEntry pairs a semantic handler with everything Step needs to
// know about timing: the addressing mode to resolve, the base cycle
// count from the 6502 reference table, and whether eligible read
// instructions (LDA/LDX/LDY/EOR/ORA/AND/ADC/SBC/CMP) pay +1 on a page
// cross in this particular addressing mode. Store and read-modify-write
// instructions always carry PageCrossPenalty false — they pay the
// worst-case cycle count unconditionally.
type opcodeEntry struct {
	Handler          func(c *CPU, res addressing.Result) uint8
	Mode             addressing.Mode
	BaseCycles       uint8
	PageCrossPenalty bool
	Name             string
}

// opcodeTable is the 256-entry dispatch table, indexed directly by
// opcode byte. Entries for illegal opcodes are left at their zero value
// (Handler == nil), which Step treats as IllegalOpcodeError.
var opcodeTable [256]opcodeEntry

func entry(h func(c *CPU, res addressing.Result) uint8, mode addressing.Mode, cycles uint8, pageCross bool, name string) opcodeEntry {
	return opcodeEntry{Handler: h, Mode: mode, BaseCycles: cycles, PageCrossPenalty: pageCross, Name: name}
}

// Describe returns the mnemonic and addressing mode for opcode, for
// callers (the disassembler) that need dispatch-table metadata without
// executing anything. ok is false for an unassigned opcode.
func Describe(opcode byte) (name string, mode addressing.Mode, ok bool) {
	e := opcodeTable[opcode]
	if e.Handler == nil {
		return "", addressing.Unsupported, false
	}
	return e.Name, e.Mode, true
}

func init() {
	for opcode, e := range map[byte]opcodeEntry{
		// ADC
		0x69: entry(opADC, addressing.Immediate, 2, false, "ADC"),
		0x65: entry(opADC, addressing.ZeroPage, 3, false, "ADC"),
		0x75: entry(opADC, addressing.ZeroPageX, 4, false, "ADC"),
		0x6D: entry(opADC, addressing.Absolute, 4, false, "ADC"),
		0x7D: entry(opADC, addressing.AbsoluteX, 4, true, "ADC"),
		0x79: entry(opADC, addressing.AbsoluteY, 4, true, "ADC"),
		0x61: entry(opADC, addressing.IndirectX, 6, false, "ADC"),
		0x71: entry(opADC, addressing.IndirectY, 5, true, "ADC"),

		// AND
		0x29: entry(opAND, addressing.Immediate, 2, false, "AND"),
		0x25: entry(opAND, addressing.ZeroPage, 3, false, "AND"),
		0x35: entry(opAND, addressing.ZeroPageX, 4, false, "AND"),
		0x2D: entry(opAND, addressing.Absolute, 4, false, "AND"),
		0x3D: entry(opAND, addressing.AbsoluteX, 4, true, "AND"),
		0x39: entry(opAND, addressing.AbsoluteY, 4, true, "AND"),
		0x21: entry(opAND, addressing.IndirectX, 6, false, "AND"),
		0x31: entry(opAND, addressing.IndirectY, 5, true, "AND"),

		// ASL
		0x0A: entry(opASL, addressing.Accumulator, 2, false, "ASL"),
		0x06: entry(opASL, addressing.ZeroPage, 5, false, "ASL"),
		0x16: entry(opASL, addressing.ZeroPageX, 6, false, "ASL"),
		0x0E: entry(opASL, addressing.Absolute, 6, false, "ASL"),
		0x1E: entry(opASL, addressing.AbsoluteX, 7, false, "ASL"),

		// BIT
		0x24: entry(opBIT, addressing.ZeroPage, 3, false, "BIT"),
		0x2C: entry(opBIT, addressing.Absolute, 4, false, "BIT"),

		// BRK
		0x00: entry(opBRK, addressing.Implied, 7, false, "BRK"),

		// CMP
		0xC9: entry(opCMP, addressing.Immediate, 2, false, "CMP"),
		0xC5: entry(opCMP, addressing.ZeroPage, 3, false, "CMP"),
		0xD5: entry(opCMP, addressing.ZeroPageX, 4, false, "CMP"),
		0xCD: entry(opCMP, addressing.Absolute, 4, false, "CMP"),
		0xDD: entry(opCMP, addressing.AbsoluteX, 4, true, "CMP"),
		0xD9: entry(opCMP, addressing.AbsoluteY, 4, true, "CMP"),
		0xC1: entry(opCMP, addressing.IndirectX, 6, false, "CMP"),
		0xD1: entry(opCMP, addressing.IndirectY, 5, true, "CMP"),

		// CPX / CPY
		0xE0: entry(opCPX, addressing.Immediate, 2, false, "CPX"),
		0xE4: entry(opCPX, addressing.ZeroPage, 3, false, "CPX"),
		0xEC: entry(opCPX, addressing.Absolute, 4, false, "CPX"),
		0xC0: entry(opCPY, addressing.Immediate, 2, false, "CPY"),
		0xC4: entry(opCPY, addressing.ZeroPage, 3, false, "CPY"),
		0xCC: entry(opCPY, addressing.Absolute, 4, false, "CPY"),

		// DEC
		0xC6: entry(opDEC, addressing.ZeroPage, 5, false, "DEC"),
		0xD6: entry(opDEC, addressing.ZeroPageX, 6, false, "DEC"),
		0xCE: entry(opDEC, addressing.Absolute, 6, false, "DEC"),
		0xDE: entry(opDEC, addressing.AbsoluteX, 7, false, "DEC"),

		// EOR
		0x49: entry(opEOR, addressing.Immediate, 2, false, "EOR"),
		0x45: entry(opEOR, addressing.ZeroPage, 3, false, "EOR"),
		0x55: entry(opEOR, addressing.ZeroPageX, 4, false, "EOR"),
		0x4D: entry(opEOR, addressing.Absolute, 4, false, "EOR"),
		0x5D: entry(opEOR, addressing.AbsoluteX, 4, true, "EOR"),
		0x59: entry(opEOR, addressing.AbsoluteY, 4, true, "EOR"),
		0x41: entry(opEOR, addressing.IndirectX, 6, false, "EOR"),
		0x51: entry(opEOR, addressing.IndirectY, 5, true, "EOR"),

		// INC
		0xE6: entry(opINC, addressing.ZeroPage, 5, false, "INC"),
		0xF6: entry(opINC, addressing.ZeroPageX, 6, false, "INC"),
		0xEE: entry(opINC, addressing.Absolute, 6, false, "INC"),
		0xFE: entry(opINC, addressing.AbsoluteX, 7, false, "INC"),

		// JMP / JSR
		0x4C: entry(opJMP, addressing.Absolute, 3, false, "JMP"),
		0x6C: entry(opJMP, addressing.Indirect, 5, false, "JMP"),
		0x20: entry(opJSR, addressing.Absolute, 6, false, "JSR"),

		// LDA
		0xA9: entry(opLDA, addressing.Immediate, 2, false, "LDA"),
		0xA5: entry(opLDA, addressing.ZeroPage, 3, false, "LDA"),
		0xB5: entry(opLDA, addressing.ZeroPageX, 4, false, "LDA"),
		0xAD: entry(opLDA, addressing.Absolute, 4, false, "LDA"),
		0xBD: entry(opLDA, addressing.AbsoluteX, 4, true, "LDA"),
		0xB9: entry(opLDA, addressing.AbsoluteY, 4, true, "LDA"),
		0xA1: entry(opLDA, addressing.IndirectX, 6, false, "LDA"),
		0xB1: entry(opLDA, addressing.IndirectY, 5, true, "LDA"),

		// LDX
		0xA2: entry(opLDX, addressing.Immediate, 2, false, "LDX"),
		0xA6: entry(opLDX, addressing.ZeroPage, 3, false, "LDX"),
		0xB6: entry(opLDX, addressing.ZeroPageY, 4, false, "LDX"),
		0xAE: entry(opLDX, addressing.Absolute, 4, false, "LDX"),
		0xBE: entry(opLDX, addressing.AbsoluteY, 4, true, "LDX"),

		// LDY
		0xA0: entry(opLDY, addressing.Immediate, 2, false, "LDY"),
		0xA4: entry(opLDY, addressing.ZeroPage, 3, false, "LDY"),
		0xB4: entry(opLDY, addressing.ZeroPageX, 4, false, "LDY"),
		0xAC: entry(opLDY, addressing.Absolute, 4, false, "LDY"),
		0xBC: entry(opLDY, addressing.AbsoluteX, 4, true, "LDY"),

		// LSR
		0x4A: entry(opLSR, addressing.Accumulator, 2, false, "LSR"),
		0x46: entry(opLSR, addressing.ZeroPage, 5, false, "LSR"),
		0x56: entry(opLSR, addressing.ZeroPageX, 6, false, "LSR"),
		0x4E: entry(opLSR, addressing.Absolute, 6, false, "LSR"),
		0x5E: entry(opLSR, addressing.AbsoluteX, 7, false, "LSR"),

		// NOP
		0xEA: entry(opNOP, addressing.Implied, 2, false, "NOP"),

		// ORA
		0x09: entry(opORA, addressing.Immediate, 2, false, "ORA"),
		0x05: entry(opORA, addressing.ZeroPage, 3, false, "ORA"),
		0x15: entry(opORA, addressing.ZeroPageX, 4, false, "ORA"),
		0x0D: entry(opORA, addressing.Absolute, 4, false, "ORA"),
		0x1D: entry(opORA, addressing.AbsoluteX, 4, true, "ORA"),
		0x19: entry(opORA, addressing.AbsoluteY, 4, true, "ORA"),
		0x01: entry(opORA, addressing.IndirectX, 6, false, "ORA"),
		0x11: entry(opORA, addressing.IndirectY, 5, true, "ORA"),

		// ROL
		0x2A: entry(opROL, addressing.Accumulator, 2, false, "ROL"),
		0x26: entry(opROL, addressing.ZeroPage, 5, false, "ROL"),
		0x36: entry(opROL, addressing.ZeroPageX, 6, false, "ROL"),
		0x2E: entry(opROL, addressing.Absolute, 6, false, "ROL"),
		0x3E: entry(opROL, addressing.AbsoluteX, 7, false, "ROL"),

		// ROR
		0x6A: entry(opROR, addressing.Accumulator, 2, false, "ROR"),
		0x66: entry(opROR, addressing.ZeroPage, 5, false, "ROR"),
		0x76: entry(opROR, addressing.ZeroPageX, 6, false, "ROR"),
		0x6E: entry(opROR, addressing.Absolute, 6, false, "ROR"),
		0x7E: entry(opROR, addressing.AbsoluteX, 7, false, "ROR"),

		// RTI / RTS
		0x40: entry(opRTI, addressing.Implied, 6, false, "RTI"),
		0x60: entry(opRTS, addressing.Implied, 6, false, "RTS"),

		// SBC
		0xE9: entry(opSBC, addressing.Immediate, 2, false, "SBC"),
		0xE5: entry(opSBC, addressing.ZeroPage, 3, false, "SBC"),
		0xF5: entry(opSBC, addressing.ZeroPageX, 4, false, "SBC"),
		0xED: entry(opSBC, addressing.Absolute, 4, false, "SBC"),
		0xFD: entry(opSBC, addressing.AbsoluteX, 4, true, "SBC"),
		0xF9: entry(opSBC, addressing.AbsoluteY, 4, true, "SBC"),
		0xE1: entry(opSBC, addressing.IndirectX, 6, false, "SBC"),
		0xF1: entry(opSBC, addressing.IndirectY, 5, true, "SBC"),

		// STA
		0x85: entry(opSTA, addressing.ZeroPage, 3, false, "STA"),
		0x95: entry(opSTA, addressing.ZeroPageX, 4, false, "STA"),
		0x8D: entry(opSTA, addressing.Absolute, 4, false, "STA"),
		0x9D: entry(opSTA, addressing.AbsoluteX, 5, false, "STA"),
		0x99: entry(opSTA, addressing.AbsoluteY, 5, false, "STA"),
		0x81: entry(opSTA, addressing.IndirectX, 6, false, "STA"),
		0x91: entry(opSTA, addressing.IndirectY, 6, false, "STA"),

		// STX / STY
		0x86: entry(opSTX, addressing.ZeroPage, 3, false, "STX"),
		0x96: entry(opSTX, addressing.ZeroPageY, 4, false, "STX"),
		0x8E: entry(opSTX, addressing.Absolute, 4, false, "STX"),
		0x84: entry(opSTY, addressing.ZeroPage, 3, false, "STY"),
		0x94: entry(opSTY, addressing.ZeroPageX, 4, false, "STY"),
		0x8C: entry(opSTY, addressing.Absolute, 4, false, "STY"),

		// flag ops
		0x18: entry(opCLC, addressing.Implied, 2, false, "CLC"),
		0x38: entry(opSEC, addressing.Implied, 2, false, "SEC"),
		0x58: entry(opCLI, addressing.Implied, 2, false, "CLI"),
		0x78: entry(opSEI, addressing.Implied, 2, false, "SEI"),
		0xB8: entry(opCLV, addressing.Implied, 2, false, "CLV"),
		0xD8: entry(opCLD, addressing.Implied, 2, false, "CLD"),
		0xF8: entry(opSED, addressing.Implied, 2, false, "SED"),

		// register transfers / inc-dec
		0xAA: entry(opTAX, addressing.Implied, 2, false, "TAX"),
		0x8A: entry(opTXA, addressing.Implied, 2, false, "TXA"),
		0xCA: entry(opDEX, addressing.Implied, 2, false, "DEX"),
		0xE8: entry(opINX, addressing.Implied, 2, false, "INX"),
		0xA8: entry(opTAY, addressing.Implied, 2, false, "TAY"),
		0x98: entry(opTYA, addressing.Implied, 2, false, "TYA"),
		0x88: entry(opDEY, addressing.Implied, 2, false, "DEY"),
		0xC8: entry(opINY, addressing.Implied, 2, false, "INY"),

		// branches
		0x10: entry(opBPL, addressing.Relative, 2, false, "BPL"),
		0x30: entry(opBMI, addressing.Relative, 2, false, "BMI"),
		0x50: entry(opBVC, addressing.Relative, 2, false, "BVC"),
		0x70: entry(opBVS, addressing.Relative, 2, false, "BVS"),
		0x90: entry(opBCC, addressing.Relative, 2, false, "BCC"),
		0xB0: entry(opBCS, addressing.Relative, 2, false, "BCS"),
		0xD0: entry(opBNE, addressing.Relative, 2, false, "BNE"),
		0xF0: entry(opBEQ, addressing.Relative, 2, false, "BEQ"),

		// stack
		0x9A: entry(opTXS, addressing.Implied, 2, false, "TXS"),
		0xBA: entry(opTSX, addressing.Implied, 2, false, "TSX"),
		0x48: entry(opPHA, addressing.Implied, 3, false, "PHA"),
		0x68: entry(opPLA, addressing.Implied, 4, false, "PLA"),
		0x08: entry(opPHP, addressing.Implied, 3, false, "PHP"),
		0x28: entry(opPLP, addressing.Implied, 4, false, "PLP"),
	} {
		opcodeTable[opcode] = e
	}
}
