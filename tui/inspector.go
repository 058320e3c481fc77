// Package tui implements a bubbletea terminal inspector for a running
// cpu.CPU: register and flag panes, a scrolling memory page table, the
// stack contents, and the disassembled instruction at PC. It is a pure
// consumer of cpu.CPU's public, read-only surface plus Step — it never
// reaches into CPU internals.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/hejops/mos6502/cpu"
	"github.com/hejops/mos6502/disasm"
	"github.com/hejops/mos6502/mask"
	"github.com/hejops/mos6502/rom"
)

const pageWidth = 16

var (
	breakStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	currentByte = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

// Model is the bubbletea model for the inspector.
type Model struct {
	CPU      *cpu.CPU
	Scenario *rom.Scenario

	offset uint16 // page-table scroll position
	prevPC uint16
	err    error
}

// New returns a Model ready to run. scenario may be nil — a ROM loaded
// without a sidecar simply has no breakpoints.
func New(c *cpu.CPU, scenario *rom.Scenario) Model {
	return Model{CPU: c, Scenario: scenario, offset: c.Registers().PC}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "q":
		return m, tea.Quit

	case " ", "j":
		m.prevPC = m.CPU.Registers().PC
		if _, err := m.CPU.Step(); err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.offset = m.CPU.Registers().PC

	case "up":
		if m.offset >= pageWidth {
			m.offset -= pageWidth
		}

	case "down":
		m.offset += pageWidth
	}
	return m, nil
}

func (m Model) renderPage(start uint16) string {
	pc := m.CPU.Registers().PC
	row := m.CPU.ReadRange(start, pageWidth)
	s := fmt.Sprintf("%04X | ", start)
	for i, b := range row {
		addr := start + uint16(i)
		cell := fmt.Sprintf("%02X", b)
		switch {
		case addr == pc:
			cell = currentByte.Render("[" + cell + "]")
		case m.Scenario.IsBreakpoint(addr):
			cell = breakStyle.Render(" " + cell + " ")
		default:
			cell = " " + cell + " "
		}
		s += cell + " "
	}
	return s
}

// flagLine renders the eight status bits over the N V _ B D I Z C
// header, using mask.IsSet over the packed byte so the same bit
// extraction the rest of the corpus uses for byte inspection does the
// work here too.
func (m Model) flagLine() string {
	packed := m.CPU.Registers().Flags
	var b strings.Builder
	bits := [...]bool{
		mask.IsSet(packed, mask.I1), // N
		mask.IsSet(packed, mask.I2), // V
		mask.IsSet(packed, mask.I3), // _
		mask.IsSet(packed, mask.I4), // B
		mask.IsSet(packed, mask.I5), // D
		mask.IsSet(packed, mask.I6), // I
		mask.IsSet(packed, mask.I7), // Z
		mask.IsSet(packed, mask.I8), // C
	}
	for _, set := range bits {
		if set {
			b.WriteString("/ ")
		} else {
			b.WriteString("  ")
		}
	}
	return b.String()
}

func (m Model) statusPane() string {
	r := m.CPU.Registers()
	mnemonic, _ := disasm.Format(m.CPU, r.PC)
	brk := ""
	if m.Scenario.IsBreakpoint(r.PC) {
		brk = breakStyle.Render(" BREAK")
	}
	return fmt.Sprintf(`
PC: %04X (was %04X)%s
 A: %02X  X: %02X  Y: %02X  SP: %02X
 next: %s

N V _ B D I Z C
%s`,
		r.PC, m.prevPC, brk,
		r.A, r.X, r.Y, r.SP,
		mnemonic,
		m.flagLine(),
	)
}

func (m Model) pageTable() string {
	header := "page | "
	for b := 0; b < pageWidth; b++ {
		header += fmt.Sprintf(" %X  ", b)
	}
	lines := []string{header}
	base := m.offset &^ (pageWidth - 1)
	for row := -2; row <= 2; row++ {
		start := base + uint16(row*pageWidth)
		lines = append(lines, m.renderPage(start))
	}
	return strings.Join(lines, "\n")
}

func (m Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("halted: %s\n", m.err)
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.statusPane(),
		),
		"",
		spew.Sdump(m.CPU.StackView()[0xF0:]),
	)
}

// Run starts the interactive inspector and blocks until the user quits
// or the CPU halts on an unrecoverable error. In the latter case the
// CPU's error is returned.
func Run(c *cpu.CPU, scenario *rom.Scenario) error {
	final, err := tea.NewProgram(New(c, scenario)).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}
