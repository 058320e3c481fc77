package addressing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hejops/mos6502/memory"
)

func TestModeLookupForKnownAndUnknownOpcodes(t *testing.T) {
	assert.Equal(t, Immediate, Mode(0xA9)) // LDA #
	assert.Equal(t, Indirect, Mode(0x6C))  // JMP (ind)
	assert.Equal(t, Unsupported, Mode(0x02))
}

func TestResolveImmediateAdvancesPCByOne(t *testing.T) {
	m := memory.New()
	m.WriteByte(0x8000, 0x42)
	pc := uint16(0x8000)
	res := Resolve(m, Immediate, &pc, 0, 0)
	assert.Equal(t, byte(0x42), res.Value)
	assert.Equal(t, uint16(0x8001), pc)
}

func TestResolveZeroPageXWrapsWithinZeroPage(t *testing.T) {
	m := memory.New()
	m.WriteByte(0x8000, 0xFF)
	pc := uint16(0x8000)
	res := Resolve(m, ZeroPageX, &pc, 0x02, 0)
	assert.Equal(t, uint16(0x0001), res.Addr) // 0xFF + 0x02 wraps to 0x01, stays zero page
}

func TestResolveAbsoluteXReportsPageCross(t *testing.T) {
	m := memory.New()
	m.WriteByte(0x8000, 0xFF)
	m.WriteByte(0x8001, 0x20) // base 0x20FF
	pc := uint16(0x8000)
	res := Resolve(m, AbsoluteX, &pc, 0x01, 0)
	assert.Equal(t, uint16(0x2100), res.Addr)
	assert.True(t, res.PageCrossed)
}

func TestResolveAbsoluteXNoPageCrossWhenStayingInPage(t *testing.T) {
	m := memory.New()
	m.WriteByte(0x8000, 0x10)
	m.WriteByte(0x8001, 0x20) // base 0x2010
	pc := uint16(0x8000)
	res := Resolve(m, AbsoluteX, &pc, 0x01, 0)
	assert.Equal(t, uint16(0x2011), res.Addr)
	assert.False(t, res.PageCrossed)
}

func TestResolveIndirectXUsesZeroPageWrappedPointer(t *testing.T) {
	m := memory.New()
	m.WriteByte(0x8000, 0xFE) // base zero-page operand
	m.WriteByte(0x00, 0x00)   // pointer low at (0xFE+0x02)=0x00
	m.WriteByte(0x01, 0x80)   // pointer high
	pc := uint16(0x8000)
	res := Resolve(m, IndirectX, &pc, 0x02, 0)
	assert.Equal(t, uint16(0x8000), res.Addr)
}

func TestResolveIndirectYAddsAfterIndirection(t *testing.T) {
	m := memory.New()
	m.WriteByte(0x8000, 0x10) // zero-page operand
	m.WriteByte(0x10, 0x00)   // pointer low
	m.WriteByte(0x11, 0x80)   // pointer high -> base 0x8000
	pc := uint16(0x8000)
	res := Resolve(m, IndirectY, &pc, 0, 0x05)
	assert.Equal(t, uint16(0x8005), res.Addr)
	assert.False(t, res.PageCrossed)
}

func TestResolveRelativeKeepsSignedOffset(t *testing.T) {
	m := memory.New()
	m.WriteByte(0x8000, 0xFE) // -2
	pc := uint16(0x8000)
	res := Resolve(m, Relative, &pc, 0, 0)
	assert.Equal(t, int8(-2), res.BranchOffset)
}

func TestResolveImpliedConsumesNoBytes(t *testing.T) {
	m := memory.New()
	pc := uint16(0x8000)
	Resolve(m, Implied, &pc, 0, 0)
	assert.Equal(t, uint16(0x8000), pc)
}

func TestResolvePanicsOnUnsupportedMode(t *testing.T) {
	m := memory.New()
	pc := uint16(0x8000)
	assert.Panics(t, func() { Resolve(m, Unsupported, &pc, 0, 0) })
}
