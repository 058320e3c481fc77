// Command mos6502 loads a raw 6502 binary (and an optional YAML scenario
// sidecar) and either runs it headlessly to observe the image behave, or
// opens the terminal inspector for interactive single-stepping.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/hejops/mos6502/cpu"
	"github.com/hejops/mos6502/disasm"
	"github.com/hejops/mos6502/internal/applog"
	"github.com/hejops/mos6502/memory"
	"github.com/hejops/mos6502/rom"
	"github.com/hejops/mos6502/tui"
)

// Exit codes. spec.md only requires "zero on clean quit, non-zero
// otherwise"; this repo assigns meaning to the nonzero codes so a
// scripted caller (CI running -headless against a test ROM) can tell
// failure modes apart.
const (
	exitOK            = 0
	exitROMError      = 1
	exitMissingArg    = 2
	exitFatalCPUError = 3
)

func main() {
	app := &cli.App{
		Name:      "mos6502",
		Usage:     "run a 6502 binary image under emulation",
		ArgsUsage: "<rom-path>",
		Flags: []cli.Flag{
			&cli.UintFlag{Name: "origin", Usage: "address the image loads at", Value: 0},
			&cli.StringFlag{Name: "scenario", Usage: "path to a YAML scenario sidecar"},
			&cli.BoolFlag{Name: "trace", Usage: "log each step's disassembly to stderr (with -headless)"},
			&cli.BoolFlag{Name: "headless", Usage: "run without the interactive inspector"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		var exitErr cli.ExitCoder
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		applog.Errorf("%s", err)
		os.Exit(exitROMError)
	}
}

func run(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return cli.Exit("missing ROM path", exitMissingArg)
	}
	applog.SetTrace(c.Bool("trace"))

	mem := memory.New()

	var scenario *rom.Scenario
	if s := c.String("scenario"); s != "" {
		var err error
		scenario, err = rom.LoadScenario(s)
		if err != nil {
			return cli.Exit(fmt.Errorf("loading scenario: %w", err), exitROMError)
		}
	}

	origin := uint16(c.Uint("origin"))
	if scenario != nil {
		origin = scenario.Origin
	}

	if _, err := rom.Load(mem, path, origin); err != nil {
		return cli.Exit(fmt.Errorf("loading ROM: %w", err), exitROMError)
	}
	scenario.Apply(mem)

	machine := cpu.New(mem)

	if c.Bool("headless") {
		return runHeadless(machine, scenario, c.Bool("trace"))
	}
	if err := tui.Run(machine, scenario); err != nil {
		return cli.Exit(err, exitFatalCPUError)
	}
	return nil
}

// runHeadless steps the CPU until it hits a breakpoint, an illegal
// opcode, or a self-jump (the common "spin here forever" idiom a ROM
// uses to signal it has finished, per the teacher's own test program).
func runHeadless(c *cpu.CPU, scenario *rom.Scenario, trace bool) error {
	for {
		pc := c.Registers().PC
		if trace {
			mnemonic, _ := disasm.Format(c, pc)
			applog.Debugf("%04X: %s", pc, mnemonic)
		}
		if scenario.IsBreakpoint(pc) {
			applog.Debugf("stopped at breakpoint %04X", pc)
			return nil
		}
		if _, err := c.Step(); err != nil {
			var illegal *cpu.IllegalOpcodeError
			if errors.As(err, &illegal) {
				return cli.Exit(err, exitFatalCPUError)
			}
			return cli.Exit(err, exitFatalCPUError)
		}
		if c.Registers().PC == pc {
			applog.Debugf("spin loop at %04X, halting", pc)
			return nil
		}
	}
}
