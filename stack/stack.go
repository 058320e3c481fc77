// Package stack implements the 6502's page-0x01 stack: an 8-bit stack
// pointer (the offset of the next free slot within 0x0100-0x01FF) backed
// by the shared Memory.
package stack

import "github.com/hejops/mos6502/memory"

// page is the fixed high byte of every stack address.
const page = 0x0100

// Stack is a view over memory page 0x01. It owns no storage of its own;
// all bytes live in the shared Memory.
type Stack struct {
	mem *memory.Memory
	SP  byte
}

// New returns a Stack over mem with SP at the post-reset value (0xFD).
func New(mem *memory.Memory) *Stack {
	return &Stack{mem: mem, SP: 0xFD}
}

// PushByte writes v at the current stack slot, then decrements SP,
// wrapping 0x00 to 0xFF.
func (s *Stack) PushByte(v byte) {
	s.mem.WriteByte(page+uint16(s.SP), v)
	s.SP--
}

// PopByte increments SP, wrapping 0xFF to 0x00, then reads the slot.
func (s *Stack) PopByte() byte {
	s.SP++
	return s.mem.ReadByte(page + uint16(s.SP))
}

// PushWord pushes the high byte then the low byte, so the low byte ends
// up at the lower address (the way a subsequent PopWord expects it).
func (s *Stack) PushWord(w uint16) {
	s.PushByte(byte(w >> 8))
	s.PushByte(byte(w))
}

// PopWord is the inverse of PushWord.
func (s *Stack) PopWord() uint16 {
	lo := s.PopByte()
	hi := s.PopByte()
	return uint16(lo) | uint16(hi)<<8
}

// View returns the full 256 bytes of stack memory (0x0100-0x01FF), for
// the read-only inspector accessor.
func (s *Stack) View() [256]byte {
	var v [256]byte
	copy(v[:], s.mem.ReadRange(page, 256))
	return v
}
