// This file is part of i2cslave.
//
// i2cslave is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// i2cslave is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with i2cslave.  If not, see <https://www.gnu.org/licenses/>.

// Package debugger is an interactive single-stepper for the board. A stimulus
// is run once on a testbench and the master's side of the bus is recorded on
// a Tape. The debugger replays the tape into a fresh board one tick at a time,
// under control of single key commands read from the terminal.
//
//	tape, _ := debugger.RecordTape(prefs, func(ctx context.Context, m *stimulus.Master) error {
//		_, err := stimulus.Reference(ctx, m, stimulus.DefaultAddress, 3)
//		return err
//	})
//	dbg := debugger.NewDebugger(prefs, tape, os.Stdout)
//	dbg.Start(term)
//
// Because the tape fixes the bus master's behaviour, every step can be undone
// by restoring a snapshot of the board taken before the step. See the rewind
// package.
//
// The engine's state can be dumped at any point as a Graphviz graph, courtesy
// of "github.com/bradleyjkemp/memviz".
package debugger
