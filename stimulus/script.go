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

package stimulus

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jetsetilly/i2cslave/curated"
	"github.com/jetsetilly/i2cslave/hardware/i2c/slave"
)

// Sentinal error patterns.
const (
	ScriptSyntax      = "stimulus: line %d: %v"
	ScriptFailed      = "stimulus: line %d: %s failed: %v"
	ExpectationFailed = "stimulus: line %d: expected %s %#02x but got %#02x"
	NoAck             = "stimulus: line %d: byte %#02x not acknowledged"
)

// Command is a single line of a stimulus script.
type Command struct {
	Line int
	Op   string
	Args []string

	// the parsed numeric argument, where the command has one
	value uint64
}

func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Op
	}
	return fmt.Sprintf("%s %s", c.Op, strings.Join(c.Args, " "))
}

// Script is a parsed stimulus script.
type Script struct {
	Commands []Command
}

// Result is the outcome of running a Script.
type Result struct {
	// bytes sent with the byte command
	Sent []uint8

	// bytes received by the slave in each ack command
	Received []uint8
}

// ParseScript reads a stimulus script. There is one command per line and the
// # character starts a comment. Commands are:
//
//	reset               reset sequence (starts the bus clock if necessary)
//	idle <us>           wait for the number of microseconds
//	start               START condition
//	byte <value>        send byte and require the slave to acknowledge it
//	ack                 take part in the slave's next ACK window
//	stop                STOP condition
//	expect state <n>    fail if the slave is not in the numbered state
//	expect byte <value> fail if the slave's received byte is not value
//
// Values use Go integer literal syntax, for example: 0xc9, 0b11001001, 201.
func ParseScript(r io.Reader) (*Script, error) {
	s := &Script{}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++

		txt := scanner.Text()
		if i := strings.IndexByte(txt, '#'); i >= 0 {
			txt = txt[:i]
		}
		f := strings.Fields(strings.ToLower(txt))
		if len(f) == 0 {
			continue
		}

		c := Command{Line: line, Op: f[0], Args: f[1:]}

		var err error
		switch c.Op {
		case "reset", "start", "stop", "ack":
			err = c.arity(0)
		case "idle":
			if err = c.arity(1); err == nil {
				c.value, err = strconv.ParseUint(c.Args[0], 0, 32)
			}
		case "byte":
			if err = c.arity(1); err == nil {
				c.value, err = strconv.ParseUint(c.Args[0], 0, 8)
			}
		case "expect":
			if err = c.arity(2); err == nil {
				switch c.Args[0] {
				case "state":
					c.value, err = strconv.ParseUint(c.Args[1], 0, 8)
					if err == nil && c.value > uint64(slave.StopDetected) {
						err = fmt.Errorf("no such state (%d)", c.value)
					}
				case "byte":
					c.value, err = strconv.ParseUint(c.Args[1], 0, 8)
				default:
					err = fmt.Errorf("cannot expect %s", c.Args[0])
				}
			}
		default:
			err = fmt.Errorf("unknown command (%s)", c.Op)
		}

		if err != nil {
			return nil, curated.Errorf(ScriptSyntax, line, err)
		}

		s.Commands = append(s.Commands, c)
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf("stimulus: %v", err)
	}

	return s, nil
}

func (c Command) arity(n int) error {
	if len(c.Args) != n {
		return fmt.Errorf("%s takes %d argument(s)", c.Op, n)
	}
	return nil
}

// Run the script on the master's test bench. The bench's bus clock is started
// if it is not running. The result is returned even when there is an error.
func (s *Script) Run(ctx context.Context, m *Master) (*Result, error) {
	res := &Result{}
	b := m.Bench()
	clockRunning := false

	for _, c := range s.Commands {
		if err := ctx.Err(); err != nil {
			return res, curated.Errorf("stimulus: %v", err)
		}

		if !clockRunning && c.Op != "expect" {
			b.StartSCL()
			clockRunning = true
		}

		switch c.Op {
		case "reset":
			b.ResetSequence()

		case "idle":
			b.Timer(time.Duration(c.value) * time.Microsecond)

		case "start":
			if err := m.Start(ctx); err != nil {
				return res, curated.Errorf(ScriptFailed, c.Line, c.Op, err)
			}

		case "stop":
			if err := m.Stop(ctx); err != nil {
				return res, curated.Errorf(ScriptFailed, c.Line, c.Op, err)
			}

		case "byte":
			v := uint8(c.value)
			ack, err := m.WriteByte(ctx, v)
			if err != nil {
				return res, curated.Errorf(ScriptFailed, c.Line, c.Op, err)
			}
			res.Sent = append(res.Sent, v)
			if !ack {
				return res, curated.Errorf(NoAck, c.Line, v)
			}

		case "ack":
			v, err := m.AckWindow(ctx)
			if err != nil {
				return res, curated.Errorf(ScriptFailed, c.Line, c.Op, err)
			}
			res.Received = append(res.Received, v)

		case "expect":
			switch c.Args[0] {
			case "state":
				if got := b.Board.I2CState(); uint64(got) != c.value {
					return res, curated.Errorf(ExpectationFailed, c.Line, "state", c.value, got)
				}
			case "byte":
				if got := b.Board.ReceivedByte(); uint64(got) != c.value {
					return res, curated.Errorf(ExpectationFailed, c.Line, "byte", c.value, got)
				}
			}
		}
	}

	return res, nil
}
