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

package debugger

import (
	"context"

	"github.com/jetsetilly/i2cslave/curated"
	"github.com/jetsetilly/i2cslave/hardware"
	"github.com/jetsetilly/i2cslave/hardware/preferences"
	"github.com/jetsetilly/i2cslave/logger"
	"github.com/jetsetilly/i2cslave/stimulus"
	"github.com/jetsetilly/i2cslave/testbench"
)

// the inputs to the board for a single tick
type pins struct {
	rstN  bool
	ena   bool
	uioIn uint8
}

// Tape is a recording of the inputs to a board. Tape implements the
// testbench.Observer interface.
type Tape struct {
	steps []pins
}

// Observe implements the testbench.Observer interface.
func (tp *Tape) Observe(b *hardware.Board) {
	tp.steps = append(tp.steps, pins{
		rstN:  b.RstN(),
		ena:   b.Ena(),
		uioIn: b.UIOIn(),
	})
}

// Len returns the number of ticks on the tape.
func (tp *Tape) Len() int {
	return len(tp.steps)
}

// apply the inputs at position pos to the board and step it.
func (tp *Tape) apply(b *hardware.Board, pos int) {
	p := tp.steps[pos]
	b.SetRstN(p.rstN)
	b.SetEna(p.ena)
	b.SetUIOIn(p.uioIn)
	b.Step()
}

// RecordTape runs the stimulus function on a new testbench and records the
// inputs to the board.
func RecordTape(prefs *preferences.Preferences, stim func(context.Context, *stimulus.Master) error) (*Tape, error) {
	tp := &Tape{}

	bench := testbench.NewBench(prefs, logger.Deny)
	bench.AddObserver(tp)

	m := stimulus.NewMaster(bench, logger.Deny)
	if err := stim(context.Background(), m); err != nil {
		return nil, curated.Errorf("debugger: recording tape: %v", err)
	}

	return tp, nil
}
