package disasm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hejops/mos6502/memory"
)

func TestFormatImmediate(t *testing.T) {
	mem := memory.New()
	mem.Load([]byte{0xA9, 0x80}, 0x8000)
	s, width := Format(mem, 0x8000)
	assert.Equal(t, "LDA #$80", s)
	assert.Equal(t, uint16(2), width)
}

func TestFormatAbsoluteIndexed(t *testing.T) {
	mem := memory.New()
	mem.Load([]byte{0x7D, 0x00, 0x30}, 0x8000)
	s, width := Format(mem, 0x8000)
	assert.Equal(t, "ADC $3000,X", s)
	assert.Equal(t, uint16(3), width)
}

func TestFormatIndirectJMPShowsEncodedPointer(t *testing.T) {
	mem := memory.New()
	mem.Load([]byte{0x6C, 0xFF, 0x30}, 0x8000)
	s, width := Format(mem, 0x8000)
	assert.Equal(t, "JMP ($30FF)", s)
	assert.Equal(t, uint16(3), width)
}

func TestFormatRelativeResolvesTargetAddress(t *testing.T) {
	mem := memory.New()
	mem.Load([]byte{0x90, 0x05}, 0x02F0) // BCC +5
	s, _ := Format(mem, 0x02F0)
	assert.Equal(t, "BCC $02F7", s)
}

func TestFormatImpliedHasNoOperand(t *testing.T) {
	mem := memory.New()
	mem.Load([]byte{0xEA}, 0x8000) // NOP
	s, width := Format(mem, 0x8000)
	assert.Equal(t, "NOP", s)
	assert.Equal(t, uint16(1), width)
}

func TestFormatUnassignedOpcode(t *testing.T) {
	mem := memory.New()
	mem.Load([]byte{0x02}, 0x8000)
	s, width := Format(mem, 0x8000)
	assert.Equal(t, "???", s)
	assert.Equal(t, uint16(1), width)
}

func TestFormatIsReferentiallyTransparent(t *testing.T) {
	mem := memory.New()
	mem.Load([]byte{0xA9, 0x80}, 0x8000)
	s1, w1 := Format(mem, 0x8000)
	s2, w2 := Format(mem, 0x8000)
	assert.Equal(t, s1, s2)
	assert.Equal(t, w1, w2)
}
