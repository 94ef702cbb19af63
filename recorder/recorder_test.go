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

package recorder_test

import (
	"context"
	"strings"
	"testing"

	"github.com/jetsetilly/i2cslave/hardware/i2c/slave"
	"github.com/jetsetilly/i2cslave/hardware/preferences"
	"github.com/jetsetilly/i2cslave/logger"
	"github.com/jetsetilly/i2cslave/recorder"
	"github.com/jetsetilly/i2cslave/stimulus"
	"github.com/jetsetilly/i2cslave/test"
	"github.com/jetsetilly/i2cslave/testbench"
)

func TestEmpty(t *testing.T) {
	rec := recorder.NewRecorder()
	test.ExpectEquality(t, rec.AckEntries(), 0)
	test.ExpectEquality(t, len(rec.Bytes()), 0)

	w := &test.Writer{}
	test.ExpectSuccess(t, rec.Write(w))
	test.ExpectSuccess(t, w.Compare("ticks: 0\nack entries: 0\nbytes: []\n"))
}

func TestReference(t *testing.T) {
	bench := testbench.NewBench(preferences.NewDefaults(), logger.Deny)
	bench.MaxWaitTicks = 100_000
	rec := recorder.NewRecorder()
	bench.AddObserver(rec)

	m := stimulus.NewMaster(bench, logger.Deny)
	_, err := stimulus.Reference(context.Background(), m, stimulus.DefaultAddress, 3)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, rec.AckEntries(), 3)
	test.ExpectEquality(t, rec.Count(slave.StartDetected), 1)
	test.ExpectEquality(t, rec.Count(slave.StopDetected), 0)
	test.ExpectEquality(t, rec.DriveOutsideAck(), 0)
	test.ExpectInequality(t, rec.DriveTicks(), 0)
	test.ExpectEquality(t, rec.Ticks(), bench.Board.Ticks)

	b := rec.Bytes()
	test.DemandEquality(t, len(b), 3)
	test.ExpectEquality(t, b[0], 0xc9)
	test.ExpectEquality(t, b[1], 0xff)
	test.ExpectEquality(t, b[2], 0xff)

	// the first transition is always the START
	test.DemandSuccess(t, len(rec.Transitions) > 0)
	test.ExpectEquality(t, rec.Transitions[0].From, slave.Idle)
	test.ExpectEquality(t, rec.Transitions[0].To, slave.StartDetected)

	w := &test.Writer{}
	test.ExpectSuccess(t, rec.Write(w))
	test.ExpectSuccess(t, strings.Contains(w.String(), "byte complete -> ack (0xc9)"))
	test.ExpectSuccess(t, strings.HasSuffix(w.String(), "ack entries: 3\nbytes: [0xc9 0xff 0xff]\n"))

	rec.Clear()
	test.ExpectEquality(t, rec.AckEntries(), 0)
	test.ExpectEquality(t, rec.Ticks(), 0)
}

func TestStop(t *testing.T) {
	bench := testbench.NewBench(preferences.NewDefaults(), logger.Deny)
	bench.MaxWaitTicks = 100_000
	rec := recorder.NewRecorder()
	bench.AddObserver(rec)

	m := stimulus.NewMaster(bench, logger.Deny)
	ctx := context.Background()
	bench.StartSCL()
	bench.ResetSequence()
	test.DemandSuccess(t, m.Start(ctx))
	ack, err := m.WriteByte(ctx, 0x3c)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ack, true)
	test.DemandSuccess(t, m.Stop(ctx))
	bench.ClockCycles(10)

	test.ExpectEquality(t, rec.Count(slave.StopDetected), 1)
	test.ExpectEquality(t, rec.Transitions[len(rec.Transitions)-1].To, slave.Idle)
	test.ExpectEquality(t, rec.DriveOutsideAck(), 0)
}
