// Package memory implements the flat 64 KiB byte-addressable address space
// the 6502 core reads and writes through. It has no notion of CPU state,
// opcodes, or cycles; it is a pure leaf component.
package memory

// Size is the full 6502 address space.
const Size = 0x10000

// Memory is a flat, linear 64 KiB array. The zero value is ready to use
// (all zeroes), mirroring power-on RAM contents.
type Memory struct {
	ram [Size]byte
}

// New returns a zeroed Memory.
func New() *Memory {
	return &Memory{}
}

// ReadByte reads one byte. Every 16-bit address maps to a valid cell, so
// this never fails.
func (m *Memory) ReadByte(addr uint16) byte {
	return m.ram[addr]
}

// WriteByte writes one byte.
func (m *Memory) WriteByte(addr uint16, v byte) {
	m.ram[addr] = v
}

// ReadWord reads a little-endian word at addr. The high byte comes from
// addr+1, wrapping to 0x0000 if addr is 0xFFFF (the address space itself
// wraps; this is distinct from the page-local wrap of ReadWordWrapped).
func (m *Memory) ReadWord(addr uint16) uint16 {
	lo := m.ram[addr]
	hi := m.ram[addr+1]
	return uint16(lo) | uint16(hi)<<8
}

// ReadWordWrapped reads a little-endian word at addr, but never crosses a
// page boundary to fetch the high byte: if addr's low byte is 0xFF, the
// high byte is read from the start of the same page (addr & 0xFF00)
// instead of addr+1. This is the 6502's indirect-JMP page bug, and it is
// also exactly the wraparound zero-page indirect pointers need, since the
// zero page is itself page 0x00.
func (m *Memory) ReadWordWrapped(addr uint16) uint16 {
	lo := m.ram[addr]
	var hiAddr uint16
	if addr&0x00FF == 0x00FF {
		hiAddr = addr & 0xFF00
	} else {
		hiAddr = addr + 1
	}
	hi := m.ram[hiAddr]
	return uint16(lo) | uint16(hi)<<8
}

// ReadRange copies length bytes starting at addr, wrapping around the
// address space if the range runs past 0xFFFF. Used by read-only
// accessors (inspector, disassembler) that need a window of memory rather
// than a single cell.
func (m *Memory) ReadRange(addr uint16, length int) []byte {
	out := make([]byte, length)
	for i := 0; i < length; i++ {
		out[i] = m.ram[(int(addr)+i)%Size]
	}
	return out
}

// Load copies data into RAM starting at origin, truncating whatever part
// of data would fall outside the 64 KiB address space. It never errors;
// callers that must reject an oversized image outright (as the ROM
// loader does) check the size themselves before calling Load.
func (m *Memory) Load(data []byte, origin uint16) {
	end := int(origin) + len(data)
	if end > Size {
		end = Size
	}
	n := end - int(origin)
	if n <= 0 {
		return
	}
	copy(m.ram[origin:end], data[:n])
}
