package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hejops/mos6502/memory"
)

func TestPushPopByteIsLeftInverse(t *testing.T) {
	s := New(memory.New())
	startSP := s.SP
	s.PushByte(0x42)
	s.PushByte(0x99)
	assert.Equal(t, byte(0x99), s.PopByte())
	assert.Equal(t, byte(0x42), s.PopByte())
	assert.Equal(t, startSP, s.SP)
}

func TestPushWordStoresHighByteFirst(t *testing.T) {
	s := New(memory.New())
	s.PushWord(0x1234)
	view := s.View()
	assert.Equal(t, byte(0x12), view[0xFD])
	assert.Equal(t, byte(0x34), view[0xFC])
}

func TestPushWordPopWordRoundTrip(t *testing.T) {
	s := New(memory.New())
	s.PushWord(0xBEEF)
	assert.Equal(t, uint16(0xBEEF), s.PopWord())
}

func TestStackPointerWrapsAroundPage(t *testing.T) {
	s := New(memory.New())
	s.SP = 0x00
	s.PushByte(0x7F)
	assert.Equal(t, byte(0xFF), s.SP)
}
