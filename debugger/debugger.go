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
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/i2cslave/curated"
	"github.com/jetsetilly/i2cslave/hardware"
	"github.com/jetsetilly/i2cslave/hardware/preferences"
	"github.com/jetsetilly/i2cslave/logger"
	"github.com/jetsetilly/i2cslave/paths"
	"github.com/jetsetilly/i2cslave/rewind"
)

// Input is the source of key presses for the debugger.
type Input interface {
	ReadKey() (rune, error)
}

// Debugger is the interactive stepper.
type Debugger struct {
	prefs *preferences.Preferences
	board *hardware.Board

	tape *Tape
	pos  int

	rewind *rewind.Rewind

	output io.Writer

	// directory in which dump files are created. the current working
	// directory is used if the field is empty
	DumpDir string
}

// NewDebugger is the preferred method of initialisation for the Debugger type.
func NewDebugger(prefs *preferences.Preferences, tape *Tape, output io.Writer) *Debugger {
	return &Debugger{
		prefs:  prefs,
		board:  hardware.NewBoard(prefs, logger.Allow),
		tape:   tape,
		rewind: rewind.NewRewind(rewind.DefaultMaxEntries),
		output: output,
	}
}

// Board returns the board being stepped.
func (dbg *Debugger) Board() *hardware.Board {
	return dbg.board
}

// Pos returns the position in the tape.
func (dbg *Debugger) Pos() int {
	return dbg.pos
}

// AtEnd returns true if the tape has been exhausted.
func (dbg *Debugger) AtEnd() bool {
	return dbg.pos >= dbg.tape.Len()
}

// Tick advances the board by one tick. Returns false if the tape has been
// exhausted.
func (dbg *Debugger) Tick() bool {
	if dbg.AtEnd() {
		return false
	}
	dbg.tape.apply(dbg.board, dbg.pos)
	dbg.pos++
	return true
}

// stepUntil ticks the board until the done function returns true or the tape
// is exhausted. Returns the number of ticks taken.
func (dbg *Debugger) stepUntil(done func() bool) int {
	n := 0
	for dbg.Tick() {
		n++
		if done() {
			break
		}
	}
	return n
}

// StepEdge advances the board until either bus line changes level.
func (dbg *Debugger) StepEdge() int {
	scl := dbg.board.SCL.Level()
	sda := dbg.board.SDA.Level()
	return dbg.stepUntil(func() bool {
		return dbg.board.SCL.Level() != scl || dbg.board.SDA.Level() != sda
	})
}

// StepState advances the board until the protocol state changes.
func (dbg *Debugger) StepState() int {
	st := dbg.board.Engine.State()
	return dbg.stepUntil(func() bool {
		return dbg.board.Engine.State() != st
	})
}

// StepByte advances the board until the engine completes a byte.
func (dbg *Debugger) StepByte() int {
	n := dbg.board.Engine.BytesReceived()
	return dbg.stepUntil(func() bool {
		return dbg.board.Engine.BytesReceived() != n
	})
}

// PushRewind records the current board state so that the next step can be
// undone.
func (dbg *Debugger) PushRewind() {
	dbg.rewind.Push(dbg.board, dbg.pos)
}

// Undo restores the board to the state before the most recent step. Returns
// false if there is nothing to undo.
func (dbg *Debugger) Undo() bool {
	s, ok := dbg.rewind.Pop()
	if !ok {
		return false
	}
	dbg.board = s.Board
	dbg.board.Plumb(dbg.prefs, logger.Allow)
	dbg.pos = s.Pos
	return true
}

// Dump writes a Graphviz representation of the engine to io.Writer.
func (dbg *Debugger) Dump(w io.Writer) {
	// the dump is of a snapshot with the preferences removed. otherwise the
	// graph is dominated by the preferences system
	eng := dbg.board.Engine.Snapshot()
	eng.Plumb(nil, logger.Deny)
	memviz.Map(w, eng)
}

// DumpFile writes the Graphviz representation of the engine to a new file in
// DumpDir. Returns the name of the file.
func (dbg *Debugger) DumpFile() (string, error) {
	fn := fmt.Sprintf("%s.dot", paths.UniqueFilename("engine", fmt.Sprintf("%d", dbg.board.Ticks)))
	fn = filepath.Join(dbg.DumpDir, fn)

	f, err := os.Create(fn)
	if err != nil {
		return "", curated.Errorf("debugger: %v", err)
	}
	defer f.Close()

	dbg.Dump(f)

	return fn, nil
}

func (dbg *Debugger) printf(s string, a ...any) {
	fmt.Fprintf(dbg.output, s, a...)
}

func (dbg *Debugger) printBoard() {
	dbg.printf("[%d/%d] %s\n", dbg.pos, dbg.tape.Len(), dbg.board)
}
