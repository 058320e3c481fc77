// Package status implements the 6502 status register (the P register):
// seven architectural flags plus their packed byte representation.
//
// N V _ B D I Z C is the bit layout when packed; bit 5 ("_", Unused) is
// always forced to 1. B has no storage in the logical register at all —
// it only ever exists as a bit in a byte that gets pushed to the stack,
// set for BRK/PHP and cleared for IRQ/NMI — so Register carries no B
// field, and Unpack has nothing to restore it from.
package status

const (
	bitCarry     = 1 << 0
	bitZero      = 1 << 1
	bitInterrupt = 1 << 2
	bitDecimal   = 1 << 3
	bitBreak     = 1 << 4
	bitUnused    = 1 << 5
	bitOverflow  = 1 << 6
	bitNegative  = 1 << 7
)

// Register holds the seven logical 6502 flags.
type Register struct {
	Negative  bool
	Overflow  bool
	Decimal   bool
	Carry     bool
	Zero      bool
	Interrupt bool // interrupt-disable (I)
}

// Pack produces the byte representation, N V 1 B D I Z C. brk selects the
// B bit: true for the byte BRK/PHP push, false for IRQ/NMI.
func (r Register) Pack(brk bool) byte {
	var b byte
	if r.Carry {
		b |= bitCarry
	}
	if r.Zero {
		b |= bitZero
	}
	if r.Interrupt {
		b |= bitInterrupt
	}
	if r.Decimal {
		b |= bitDecimal
	}
	if brk {
		b |= bitBreak
	}
	b |= bitUnused
	if r.Overflow {
		b |= bitOverflow
	}
	if r.Negative {
		b |= bitNegative
	}
	return b
}

// Unpack restores all logical flags from b. Bit 5 is ignored, and bit 4
// (B) is dropped on the floor — it has no corresponding field.
func (r *Register) Unpack(b byte) {
	r.Carry = b&bitCarry != 0
	r.Zero = b&bitZero != 0
	r.Interrupt = b&bitInterrupt != 0
	r.Decimal = b&bitDecimal != 0
	r.Overflow = b&bitOverflow != 0
	r.Negative = b&bitNegative != 0
}
