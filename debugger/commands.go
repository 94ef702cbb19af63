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
	"errors"
	"io"
	"sort"

	"github.com/jetsetilly/i2cslave/curated"
	"github.com/jetsetilly/i2cslave/debugger/easyterm"
	"github.com/jetsetilly/i2cslave/logger"
)

// list of key commands
const (
	keyTick   = 't'
	keyEdge   = 'e'
	keyState  = 's'
	keyByte   = 'b'
	keyRun    = 'r'
	keyUndo   = 'u'
	keyDump   = 'd'
	keyLog    = 'l'
	keyPrint  = 'p'
	keyHelp   = 'h'
	keyQuit   = 'q'
	keySpace  = ' '
	keyHelpQM = '?'
)

var help = map[rune]string{
	keyTick:  "step one tick of the sample clock (also space)",
	keyEdge:  "step until SCL or SDA changes",
	keyState: "step until the protocol state changes",
	keyByte:  "step until a byte is completed",
	keyRun:   "run to the end of the stimulus",
	keyUndo:  "undo the previous step",
	keyDump:  "dump the engine as a Graphviz file",
	keyLog:   "show the most recent log entries",
	keyPrint: "print the board",
	keyHelp:  "this help (also ?)",
	keyQuit:  "quit",
}

func (dbg *Debugger) printHelp() {
	keys := make([]rune, 0, len(help))
	for k := range help {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for _, k := range keys {
		dbg.printf("  %c  %s\n", k, help[k])
	}
}

// Command performs the action for the key. Returns true if the key is a
// request to quit the debugger.
func (dbg *Debugger) Command(key rune) (bool, error) {
	var ticks int
	stepped := true

	switch key {
	case keyTick, keySpace:
		dbg.PushRewind()
		if dbg.Tick() {
			ticks = 1
		}
	case keyEdge:
		dbg.PushRewind()
		ticks = dbg.StepEdge()
	case keyState:
		dbg.PushRewind()
		ticks = dbg.StepState()
	case keyByte:
		dbg.PushRewind()
		ticks = dbg.StepByte()
	case keyRun:
		dbg.PushRewind()
		ticks = dbg.stepUntil(func() bool { return false })
	case keyUndo:
		stepped = false
		if !dbg.Undo() {
			dbg.printf("nothing to undo\n")
			return false, nil
		}
		dbg.printBoard()
	case keyDump:
		stepped = false
		fn, err := dbg.DumpFile()
		if err != nil {
			return false, err
		}
		dbg.printf("engine dumped to %s\n", fn)
	case keyLog:
		stepped = false
		logger.Tail(dbg.output, 10)
	case keyPrint:
		stepped = false
		dbg.printBoard()
	case keyHelp, keyHelpQM:
		stepped = false
		dbg.printHelp()
	case keyQuit, easyterm.KeyEOF, easyterm.KeyInterrupt:
		return true, nil
	case easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
		stepped = false
	default:
		dbg.printf("unknown command '%c'. press h for help\n", key)
		return false, nil
	}

	if stepped {
		if ticks == 0 {
			dbg.printf("end of stimulus\n")
			// nothing happened so there is nothing to undo
			dbg.rewind.Pop()
			return false, nil
		}
		logger.WriteRecent(dbg.output)
		dbg.printBoard()
		if dbg.AtEnd() {
			dbg.printf("end of stimulus\n")
		}
	}

	return false, nil
}

// Start the debugger loop. The loop ends when the quit command is received or
// when input is exhausted.
func (dbg *Debugger) Start(input Input) error {
	dbg.printf("%d ticks of stimulus. press h for help\n", dbg.tape.Len())
	dbg.printBoard()

	// only log entries created after the debugger has started are of interest
	logger.WriteRecent(io.Discard)

	for {
		key, err := input.ReadKey()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return curated.Errorf("debugger: %v", err)
		}

		quit, err := dbg.Command(key)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}
