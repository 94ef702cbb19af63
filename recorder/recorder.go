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

package recorder

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/i2cslave/curated"
	"github.com/jetsetilly/i2cslave/hardware"
	"github.com/jetsetilly/i2cslave/hardware/i2c/slave"
)

// Transition is a single change of protocol state.
type Transition struct {
	// the board tick on which the new state was first seen
	Tick uint64

	From slave.State
	To   slave.State

	// the engine's received byte at the moment of the transition. only
	// meaningful when To is slave.Ack
	Byte uint8
}

func (tr Transition) String() string {
	if tr.To == slave.Ack {
		return fmt.Sprintf("%10d: %s -> %s (%#02x)", tr.Tick, tr.From, tr.To, tr.Byte)
	}
	return fmt.Sprintf("%10d: %s -> %s", tr.Tick, tr.From, tr.To)
}

// Recorder implements the testbench.Observer interface.
type Recorder struct {
	Transitions []Transition

	// the state seen on the previous call to Observe()
	prev slave.State

	// the number of ticks observed
	ticks uint64

	// number of ticks during which the SDA drive was active. the count is
	// split by whether the engine was in the Ack state
	driveInAck     int
	driveElsewhere int
}

// NewRecorder is the preferred method of initialisation for the Recorder type.
func NewRecorder() *Recorder {
	return &Recorder{
		prev: slave.Idle,
	}
}

// Observe implements the testbench.Observer interface.
func (rec *Recorder) Observe(b *hardware.Board) {
	rec.ticks++

	st := b.Engine.State()
	if st != rec.prev {
		rec.Transitions = append(rec.Transitions, Transition{
			Tick: b.Ticks,
			From: rec.prev,
			To:   st,
			Byte: b.Engine.ReceivedByte(),
		})
		rec.prev = st
	}

	if b.Engine.SDADrive() {
		if st == slave.Ack {
			rec.driveInAck++
		} else {
			rec.driveElsewhere++
		}
	}
}

// Ticks returns the number of ticks that have been observed.
func (rec *Recorder) Ticks() uint64 {
	return rec.ticks
}

// AckEntries returns the number of times the engine entered the Ack state.
func (rec *Recorder) AckEntries() int {
	n := 0
	for _, tr := range rec.Transitions {
		if tr.To == slave.Ack {
			n++
		}
	}
	return n
}

// Bytes returns every byte latched by the engine, in the order they were
// received.
func (rec *Recorder) Bytes() []uint8 {
	var b []uint8
	for _, tr := range rec.Transitions {
		if tr.To == slave.Ack {
			b = append(b, tr.Byte)
		}
	}
	return b
}

// Count returns the number of times the engine entered the specified state.
func (rec *Recorder) Count(st slave.State) int {
	n := 0
	for _, tr := range rec.Transitions {
		if tr.To == st {
			n++
		}
	}
	return n
}

// DriveOutsideAck returns the number of ticks the SDA drive was active while
// the engine was not in the Ack state. This should always be zero.
func (rec *Recorder) DriveOutsideAck() int {
	return rec.driveElsewhere
}

// DriveTicks returns the total number of ticks the SDA drive was active.
func (rec *Recorder) DriveTicks() int {
	return rec.driveInAck + rec.driveElsewhere
}

// Clear the recording.
func (rec *Recorder) Clear() {
	rec.Transitions = rec.Transitions[:0]
	rec.prev = slave.Idle
	rec.ticks = 0
	rec.driveInAck = 0
	rec.driveElsewhere = 0
}

// Write the recording to io.Writer as a transcript. Each transition is on its
// own line and a summary follows.
func (rec *Recorder) Write(output io.Writer) error {
	s := strings.Builder{}
	for _, tr := range rec.Transitions {
		s.WriteString(tr.String())
		s.WriteString("\n")
	}

	b := rec.Bytes()
	bs := make([]string, len(b))
	for i := range b {
		bs[i] = fmt.Sprintf("%#02x", b[i])
	}

	s.WriteString(fmt.Sprintf("ticks: %d\n", rec.ticks))
	s.WriteString(fmt.Sprintf("ack entries: %d\n", rec.AckEntries()))
	s.WriteString(fmt.Sprintf("bytes: [%s]\n", strings.Join(bs, " ")))

	_, err := io.WriteString(output, s.String())
	if err != nil {
		return curated.Errorf("recorder: %v", err)
	}

	return nil
}
