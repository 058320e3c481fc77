package rom

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hejops/mos6502/memory"
)

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	assert.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoadWritesImageAtOrigin(t *testing.T) {
	path := writeTemp(t, "test.bin", []byte{0xA9, 0x42, 0x00})
	mem := memory.New()
	data, err := Load(mem, path, 0x8000)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0xA9, 0x42, 0x00}, data)
	assert.Equal(t, byte(0xA9), mem.ReadByte(0x8000))
}

func TestLoadRejectsImageThatOverflowsAddressSpace(t *testing.T) {
	path := writeTemp(t, "big.bin", make([]byte, 0x200))
	mem := memory.New()
	_, err := Load(mem, path, 0xFF00) // 0xFF00 + 0x200 > 0x10000
	assert.ErrorIs(t, err, ErrImageTooLarge)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	mem := memory.New()
	_, err := Load(mem, filepath.Join(t.TempDir(), "missing.bin"), 0)
	assert.Error(t, err)
}

func TestLoadScenarioDecodesYAML(t *testing.T) {
	yamlDoc := "origin: 32768\nreset_vector: 32768\nbreakpoints: [32784, 32800]\n"
	path := writeTemp(t, "scenario.yaml", []byte(yamlDoc))
	s, err := LoadScenario(path)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x8000), s.Origin)
	assert.NotNil(t, s.ResetVector)
	assert.Equal(t, uint16(0x8000), *s.ResetVector)
	assert.True(t, s.IsBreakpoint(0x8010))
	assert.False(t, s.IsBreakpoint(0x9000))
}

func TestScenarioApplyWritesResetVector(t *testing.T) {
	v := uint16(0x9000)
	s := &Scenario{ResetVector: &v}
	mem := memory.New()
	s.Apply(mem)
	assert.Equal(t, uint16(0x9000), mem.ReadWord(0xFFFC))
}

func TestNilScenarioIsBreakpointFalse(t *testing.T) {
	var s *Scenario
	assert.False(t, s.IsBreakpoint(0x1234))
}
