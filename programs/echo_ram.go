package programs

import "github.com/corwin-ash/machina"

// Echo builds a RAM Descriptor whose program reads exactly n input words
// and writes each one straight back to the output stream, then halts. The
// instruction set has no end-of-input test, so a program that needs to
// handle a variable-length stream has to know the count up front; Echo
// takes it as a parameter rather than guessing.
func Echo(n int) *machina.Descriptor {
	instrs := make([][2]uint64, 0, n*2+1)
	for i := 0; i < n; i++ {
		instrs = append(instrs,
			[2]uint64{uint64(machina.OpRead), 0},
			[2]uint64{uint64(machina.OpWrite), 0},
		)
	}
	instrs = append(instrs, [2]uint64{uint64(machina.OpHalt), 0})

	const (
		run  machina.StateLabel = "run"
		halt machina.StateLabel = "halt"
	)
	return &machina.Descriptor{
		Kind:       machina.RAM,
		States:     map[machina.StateLabel]struct{}{run: {}, halt: {}},
		Initial:    run,
		Halt:       halt,
		Blank:      machina.Blank,
		Table:      machina.NewTable(),
		Program:    assembleRAM(instrs...),
		SourceName: "programs.Echo",
	}
}
