package addressing

// modeTable maps every one of the 256 possible opcode bytes to its
// addressing mode. Only the 151 bytes corresponding to a documented 6502
// instruction are populated; the rest default to Unsupported. Built once
// at package init from the 6502 reference opcode matrix, independent of
// any instruction semantics — decoding a mode never touches a CPU.
var modeTable [256]Mode

func init() {
	for i := range modeTable {
		modeTable[i] = Unsupported
	}
	for opcode, mode := range map[byte]Mode{
		0x69: Immediate, 0x65: ZeroPage, 0x75: ZeroPageX, 0x6D: Absolute, 0x7D: AbsoluteX, 0x79: AbsoluteY, 0x61: IndirectX, 0x71: IndirectY, // ADC
		0x29: Immediate, 0x25: ZeroPage, 0x35: ZeroPageX, 0x2D: Absolute, 0x3D: AbsoluteX, 0x39: AbsoluteY, 0x21: IndirectX, 0x31: IndirectY, // AND
		0x0A: Accumulator, 0x06: ZeroPage, 0x16: ZeroPageX, 0x0E: Absolute, 0x1E: AbsoluteX, // ASL
		0x24: ZeroPage, 0x2C: Absolute, // BIT
		0x00: Implied, // BRK
		0xC9: Immediate, 0xC5: ZeroPage, 0xD5: ZeroPageX, 0xCD: Absolute, 0xDD: AbsoluteX, 0xD9: AbsoluteY, 0xC1: IndirectX, 0xD1: IndirectY, // CMP
		0xE0: Immediate, 0xE4: ZeroPage, 0xEC: Absolute, // CPX
		0xC0: Immediate, 0xC4: ZeroPage, 0xCC: Absolute, // CPY
		0xC6: ZeroPage, 0xD6: ZeroPageX, 0xCE: Absolute, 0xDE: AbsoluteX, // DEC
		0x49: Immediate, 0x45: ZeroPage, 0x55: ZeroPageX, 0x4D: Absolute, 0x5D: AbsoluteX, 0x59: AbsoluteY, 0x41: IndirectX, 0x51: IndirectY, // EOR
		0xE6: ZeroPage, 0xF6: ZeroPageX, 0xEE: Absolute, 0xFE: AbsoluteX, // INC
		0x4C: Absolute, 0x6C: Indirect, // JMP
		0x20: Absolute, // JSR
		0xA9: Immediate, 0xA5: ZeroPage, 0xB5: ZeroPageX, 0xAD: Absolute, 0xBD: AbsoluteX, 0xB9: AbsoluteY, 0xA1: IndirectX, 0xB1: IndirectY, // LDA
		0xA2: Immediate, 0xA6: ZeroPage, 0xB6: ZeroPageY, 0xAE: Absolute, 0xBE: AbsoluteY, // LDX
		0xA0: Immediate, 0xA4: ZeroPage, 0xB4: ZeroPageX, 0xAC: Absolute, 0xBC: AbsoluteX, // LDY
		0x4A: Accumulator, 0x46: ZeroPage, 0x56: ZeroPageX, 0x4E: Absolute, 0x5E: AbsoluteX, // LSR
		0xEA: Implied, // NOP
		0x09: Immediate, 0x05: ZeroPage, 0x15: ZeroPageX, 0x0D: Absolute, 0x1D: AbsoluteX, 0x19: AbsoluteY, 0x01: IndirectX, 0x11: IndirectY, // ORA
		0x2A: Accumulator, 0x26: ZeroPage, 0x36: ZeroPageX, 0x2E: Absolute, 0x3E: AbsoluteX, // ROL
		0x6A: Accumulator, 0x66: ZeroPage, 0x76: ZeroPageX, 0x6E: Absolute, 0x7E: AbsoluteX, // ROR
		0x40: Implied, // RTI
		0x60: Implied, // RTS
		0xE9: Immediate, 0xE5: ZeroPage, 0xF5: ZeroPageX, 0xED: Absolute, 0xFD: AbsoluteX, 0xF9: AbsoluteY, 0xE1: IndirectX, 0xF1: IndirectY, // SBC
		0x85: ZeroPage, 0x95: ZeroPageX, 0x8D: Absolute, 0x9D: AbsoluteX, 0x99: AbsoluteY, 0x81: IndirectX, 0x91: IndirectY, // STA
		0x86: ZeroPage, 0x96: ZeroPageY, 0x8E: Absolute, // STX
		0x84: ZeroPage, 0x94: ZeroPageX, 0x8C: Absolute, // STY
		0x18: Implied, 0x38: Implied, 0x58: Implied, 0x78: Implied, 0xB8: Implied, 0xD8: Implied, 0xF8: Implied, // CLC SEC CLI SEI CLV CLD SED
		0xAA: Implied, 0x8A: Implied, 0xCA: Implied, 0xE8: Implied, 0xA8: Implied, 0x98: Implied, 0x88: Implied, 0xC8: Implied, // TAX TXA DEX INX TAY TYA DEY INY
		0x10: Relative, 0x30: Relative, 0x50: Relative, 0x70: Relative, 0x90: Relative, 0xB0: Relative, 0xD0: Relative, 0xF0: Relative, // BPL BMI BVC BVS BCC BCS BNE BEQ
		0x9A: Implied, 0xBA: Implied, 0x48: Implied, 0x68: Implied, 0x08: Implied, 0x28: Implied, // TXS TSX PHA PLA PHP PLP
	} {
		modeTable[opcode] = mode
	}
}

// Mode returns the addressing mode for opcode. Unassigned (illegal)
// opcodes return Unsupported; the caller decides what to do with that
// (the interpreter surfaces it as an IllegalOpcodeError).
func Mode(opcode byte) Mode {
	return modeTable[opcode]
}
