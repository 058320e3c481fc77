// Package rom loads a raw 6502 binary image into memory and, optionally,
// decodes a YAML scenario sidecar that tells a host where to load the
// image, what reset vector to install, and where the inspector should
// stop stepping.
package rom

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hejops/mos6502/memory"
)

// ErrImageTooLarge is returned when an image does not fit at the
// requested origin. Load performs this check before touching memory, so
// a rejected image leaves memory untouched — no partial write.
var ErrImageTooLarge = errors.New("rom: image does not fit in the 64 KiB address space at the given origin")

// Load reads path and writes it into mem starting at origin, returning
// the raw bytes for callers (the disassembler, the inspector) that need
// to reference the image by offset. It refuses an image that would not
// fit entirely within the address space; memory.Load's own clamping is
// never exercised by this path.
func Load(mem *memory.Memory, path string, origin uint16) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rom: reading %s: %w", path, err)
	}
	if int(origin)+len(data) > memory.Size {
		return nil, ErrImageTooLarge
	}
	mem.Load(data, origin)
	return data, nil
}

// Scenario is an optional sidecar describing how to stage a ROM image:
// where it loads, what the reset vector should point at, and where the
// inspector should pause.
type Scenario struct {
	Origin      uint16   `yaml:"origin"`
	ResetVector *uint16  `yaml:"reset_vector"`
	Breakpoints []uint16 `yaml:"breakpoints"`
}

// LoadScenario decodes the YAML file at path into a Scenario.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rom: reading scenario %s: %w", path, err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("rom: parsing scenario %s: %w", path, err)
	}
	return &s, nil
}

// Apply writes the scenario's reset-vector override, if any, to
// 0xFFFC/FD. It does not touch origin or breakpoints — those are read
// directly by the caller (Load and the inspector, respectively).
func (s *Scenario) Apply(mem *memory.Memory) {
	if s == nil || s.ResetVector == nil {
		return
	}
	v := *s.ResetVector
	mem.WriteByte(0xFFFC, byte(v))
	mem.WriteByte(0xFFFD, byte(v>>8))
}

// IsBreakpoint reports whether addr is one of the scenario's configured
// breakpoints. A nil scenario has no breakpoints.
func (s *Scenario) IsBreakpoint(addr uint16) bool {
	if s == nil {
		return false
	}
	for _, b := range s.Breakpoints {
		if b == addr {
			return true
		}
	}
	return false
}
