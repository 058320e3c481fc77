package cpu

import "github.com/hejops/mos6502/addressing"

// Each handler has signature func(*CPU, addressing.Result) uint8. The
// return value is the number of *extra* cycles beyond the opcode table's
// base count — nonzero only for branches (taken, and taken-with-page-
// cross). Every other instruction returns 0; the generic page-cross
// bonus for eligible read instructions is applied centrally in Step,
// driven by the opcode table's PageCrossPenalty flag, not by the handler.

// ADC - Add with Carry
func opADC(c *CPU, res addressing.Result) uint8 {
	m := c.operand(res)
	if c.Flags.Decimal {
		c.adcDecimal(m)
	} else {
		c.adcBinary(m)
	}
	return 0
}

func (c *CPU) adcBinary(m byte) {
	a := c.A
	carry := uint16(0)
	if c.Flags.Carry {
		carry = 1
	}
	sum := uint16(a) + uint16(m) + carry
	c.Flags.Carry = sum > 0xFF
	result := byte(sum)
	c.Flags.Overflow = (^(a ^ m) & (a ^ result) & 0x80) != 0
	c.A = result
	c.setZN(c.A)
}

func (c *CPU) adcDecimal(m byte) {
	a := c.A
	carryIn := 0
	if c.Flags.Carry {
		carryIn = 1
	}

	// N, Z, V are defined here (per this implementation's documented
	// choice — the NMOS 6502 leaves them unspecified in decimal mode)
	// from the binary computation, exactly as if D were clear.
	binSum := int(a) + int(m) + carryIn
	c.Flags.Overflow = (^(a ^ m) & (a ^ byte(binSum)) & 0x80) != 0
	c.setZN(byte(binSum))

	lo := int(a&0x0F) + int(m&0x0F) + carryIn
	loCarry := 0
	if lo > 9 {
		lo += 6
		loCarry = 1
	}
	hi := int(a>>4) + int(m>>4) + loCarry
	c.Flags.Carry = hi > 9
	if c.Flags.Carry {
		hi += 6
	}
	c.A = byte(hi<<4) | byte(lo&0x0F)
}

// AND - Logical AND
func opAND(c *CPU, res addressing.Result) uint8 {
	c.A &= c.operand(res)
	c.setZN(c.A)
	return 0
}

// ASL - Arithmetic Shift Left
func opASL(c *CPU, res addressing.Result) uint8 {
	v := c.operand(res)
	c.Flags.Carry = v&0x80 != 0
	v <<= 1
	c.writeOperand(res, v)
	c.setZN(v)
	return 0
}

func branch(c *CPU, res addressing.Result, taken bool) uint8 {
	if !taken {
		return 0
	}
	base := c.PC
	target := uint16(int32(base) + int32(res.BranchOffset))
	c.PC = target
	if target&0xFF00 != base&0xFF00 {
		return 2
	}
	return 1
}

// BCC - Branch if Carry Clear
func opBCC(c *CPU, res addressing.Result) uint8 { return branch(c, res, !c.Flags.Carry) }

// BCS - Branch if Carry Set
func opBCS(c *CPU, res addressing.Result) uint8 { return branch(c, res, c.Flags.Carry) }

// BEQ - Branch if Equal
func opBEQ(c *CPU, res addressing.Result) uint8 { return branch(c, res, c.Flags.Zero) }

// BNE - Branch if Not Equal
func opBNE(c *CPU, res addressing.Result) uint8 { return branch(c, res, !c.Flags.Zero) }

// BMI - Branch if Minus
func opBMI(c *CPU, res addressing.Result) uint8 { return branch(c, res, c.Flags.Negative) }

// BPL - Branch if Positive
func opBPL(c *CPU, res addressing.Result) uint8 { return branch(c, res, !c.Flags.Negative) }

// BVC - Branch if Overflow Clear
func opBVC(c *CPU, res addressing.Result) uint8 { return branch(c, res, !c.Flags.Overflow) }

// BVS - Branch if Overflow Set
func opBVS(c *CPU, res addressing.Result) uint8 { return branch(c, res, c.Flags.Overflow) }

// BIT - Bit Test
func opBIT(c *CPU, res addressing.Result) uint8 {
	m := c.operand(res)
	c.Flags.Zero = c.A&m == 0
	c.Flags.Negative = m&0x80 != 0
	c.Flags.Overflow = m&0x40 != 0
	return 0
}

// BRK - Force Interrupt
func opBRK(c *CPU, res addressing.Result) uint8 {
	c.PC++
	c.serviceInterrupt(vectorIRQ, true)
	return 0
}

// CLC - Clear Carry Flag
func opCLC(c *CPU, res addressing.Result) uint8 { c.Flags.Carry = false; return 0 }

// CLD - Clear Decimal Mode
func opCLD(c *CPU, res addressing.Result) uint8 { c.Flags.Decimal = false; return 0 }

// CLI - Clear Interrupt Disable
func opCLI(c *CPU, res addressing.Result) uint8 { c.Flags.Interrupt = false; return 0 }

// CLV - Clear Overflow Flag
func opCLV(c *CPU, res addressing.Result) uint8 { c.Flags.Overflow = false; return 0 }

func compare(c *CPU, reg, m byte) {
	t := reg - m
	c.Flags.Carry = reg >= m
	c.Flags.Zero = reg == m
	c.Flags.Negative = t&0x80 != 0
}

// CMP - Compare
func opCMP(c *CPU, res addressing.Result) uint8 { compare(c, c.A, c.operand(res)); return 0 }

// CPX - Compare X Register
func opCPX(c *CPU, res addressing.Result) uint8 { compare(c, c.X, c.operand(res)); return 0 }

// CPY - Compare Y Register
func opCPY(c *CPU, res addressing.Result) uint8 { compare(c, c.Y, c.operand(res)); return 0 }

// DEC - Decrement Memory
func opDEC(c *CPU, res addressing.Result) uint8 {
	v := c.operand(res) - 1
	c.writeOperand(res, v)
	c.setZN(v)
	return 0
}

// DEX - Decrement X Register
func opDEX(c *CPU, res addressing.Result) uint8 { c.X--; c.setZN(c.X); return 0 }

// DEY - Decrement Y Register
func opDEY(c *CPU, res addressing.Result) uint8 { c.Y--; c.setZN(c.Y); return 0 }

// EOR - Exclusive OR
func opEOR(c *CPU, res addressing.Result) uint8 {
	c.A ^= c.operand(res)
	c.setZN(c.A)
	return 0
}

// INC - Increment Memory
func opINC(c *CPU, res addressing.Result) uint8 {
	v := c.operand(res) + 1
	c.writeOperand(res, v)
	c.setZN(v)
	return 0
}

// INX - Increment X Register
func opINX(c *CPU, res addressing.Result) uint8 { c.X++; c.setZN(c.X); return 0 }

// INY - Increment Y Register
func opINY(c *CPU, res addressing.Result) uint8 { c.Y++; c.setZN(c.Y); return 0 }

// JMP - Jump. res.Addr is already the final target for both Absolute
// (the literal operand word) and Indirect (the resolver has already
// performed the page-bug-respecting indirection), so one handler covers
// both opcodes.
func opJMP(c *CPU, res addressing.Result) uint8 { c.PC = res.Addr; return 0 }

// JSR - Jump to Subroutine
func opJSR(c *CPU, res addressing.Result) uint8 {
	c.stack.PushWord(c.PC - 1)
	c.PC = res.Addr
	return 0
}

// LDA - Load Accumulator
func opLDA(c *CPU, res addressing.Result) uint8 {
	c.A = c.operand(res)
	c.setZN(c.A)
	return 0
}

// LDX - Load X Register
func opLDX(c *CPU, res addressing.Result) uint8 {
	c.X = c.operand(res)
	c.setZN(c.X)
	return 0
}

// LDY - Load Y Register
func opLDY(c *CPU, res addressing.Result) uint8 {
	c.Y = c.operand(res)
	c.setZN(c.Y)
	return 0
}

// LSR - Logical Shift Right
func opLSR(c *CPU, res addressing.Result) uint8 {
	v := c.operand(res)
	c.Flags.Carry = v&0x01 != 0
	v >>= 1
	c.writeOperand(res, v)
	c.Flags.Zero = v == 0
	c.Flags.Negative = false
	return 0
}

// NOP - No Operation
func opNOP(c *CPU, res addressing.Result) uint8 { return 0 }

// ORA - Logical Inclusive OR
func opORA(c *CPU, res addressing.Result) uint8 {
	c.A |= c.operand(res)
	c.setZN(c.A)
	return 0
}

// PHA - Push Accumulator
func opPHA(c *CPU, res addressing.Result) uint8 { c.stack.PushByte(c.A); return 0 }

// PHP - Push Processor Status
func opPHP(c *CPU, res addressing.Result) uint8 { c.stack.PushByte(c.Flags.Pack(true)); return 0 }

// PLA - Pull Accumulator
func opPLA(c *CPU, res addressing.Result) uint8 {
	c.A = c.stack.PopByte()
	c.setZN(c.A)
	return 0
}

// PLP - Pull Processor Status
func opPLP(c *CPU, res addressing.Result) uint8 {
	c.Flags.Unpack(c.stack.PopByte())
	return 0
}

// ROL - Rotate Left
func opROL(c *CPU, res addressing.Result) uint8 {
	v := c.operand(res)
	oldCarry := byte(0)
	if c.Flags.Carry {
		oldCarry = 1
	}
	c.Flags.Carry = v&0x80 != 0
	v = (v << 1) | oldCarry
	c.writeOperand(res, v)
	c.setZN(v)
	return 0
}

// ROR - Rotate Right
func opROR(c *CPU, res addressing.Result) uint8 {
	v := c.operand(res)
	oldCarry := byte(0)
	if c.Flags.Carry {
		oldCarry = 0x80
	}
	c.Flags.Carry = v&0x01 != 0
	v = (v >> 1) | oldCarry
	c.writeOperand(res, v)
	c.setZN(v)
	return 0
}

// RTI - Return from Interrupt
func opRTI(c *CPU, res addressing.Result) uint8 {
	c.Flags.Unpack(c.stack.PopByte())
	c.PC = c.stack.PopWord()
	return 0
}

// RTS - Return from Subroutine
func opRTS(c *CPU, res addressing.Result) uint8 {
	c.PC = c.stack.PopWord() + 1
	return 0
}

// SBC - Subtract with Carry
func opSBC(c *CPU, res addressing.Result) uint8 {
	m := c.operand(res)
	if c.Flags.Decimal {
		c.sbcDecimal(m)
	} else {
		c.adcBinary(m ^ 0xFF)
	}
	return 0
}

func (c *CPU) sbcDecimal(m byte) {
	a := c.A
	borrow := 0
	if !c.Flags.Carry {
		borrow = 1
	}

	binDiff := int(a) - int(m) - borrow
	c.Flags.Overflow = ((a ^ m) & (a ^ byte(binDiff)) & 0x80) != 0
	c.setZN(byte(binDiff))
	c.Flags.Carry = binDiff >= 0

	lo := int(a&0x0F) - int(m&0x0F) - borrow
	loBorrow := 0
	if lo < 0 {
		lo -= 6
		loBorrow = 1
	}
	hi := int(a>>4) - int(m>>4) - loBorrow
	if hi < 0 {
		hi -= 6
	}
	c.A = byte(hi<<4) | byte(lo&0x0F)
}

// SEC - Set Carry Flag
func opSEC(c *CPU, res addressing.Result) uint8 { c.Flags.Carry = true; return 0 }

// SED - Set Decimal Flag
func opSED(c *CPU, res addressing.Result) uint8 { c.Flags.Decimal = true; return 0 }

// SEI - Set Interrupt Disable
func opSEI(c *CPU, res addressing.Result) uint8 { c.Flags.Interrupt = true; return 0 }

// STA - Store Accumulator
func opSTA(c *CPU, res addressing.Result) uint8 { c.mem.WriteByte(res.Addr, c.A); return 0 }

// STX - Store X Register
func opSTX(c *CPU, res addressing.Result) uint8 { c.mem.WriteByte(res.Addr, c.X); return 0 }

// STY - Store Y Register
func opSTY(c *CPU, res addressing.Result) uint8 { c.mem.WriteByte(res.Addr, c.Y); return 0 }

// TAX - Transfer Accumulator to X
func opTAX(c *CPU, res addressing.Result) uint8 { c.X = c.A; c.setZN(c.X); return 0 }

// TAY - Transfer Accumulator to Y
func opTAY(c *CPU, res addressing.Result) uint8 { c.Y = c.A; c.setZN(c.Y); return 0 }

// TSX - Transfer Stack Pointer to X
func opTSX(c *CPU, res addressing.Result) uint8 { c.X = c.stack.SP; c.setZN(c.X); return 0 }

// TXA - Transfer X to Accumulator
func opTXA(c *CPU, res addressing.Result) uint8 { c.A = c.X; c.setZN(c.A); return 0 }

// TXS - Transfer X to Stack Pointer. Unlike the other transfers, TXS
// does not touch any flag.
func opTXS(c *CPU, res addressing.Result) uint8 { c.stack.SP = c.X; return 0 }

// TYA - Transfer Y to Accumulator
func opTYA(c *CPU, res addressing.Result) uint8 { c.A = c.Y; c.setZN(c.A); return 0 }
