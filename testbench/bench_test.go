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

package testbench_test

import (
	"context"
	"testing"
	"time"

	"github.com/jetsetilly/i2cslave/curated"
	"github.com/jetsetilly/i2cslave/hardware"
	"github.com/jetsetilly/i2cslave/hardware/i2c/slave"
	"github.com/jetsetilly/i2cslave/hardware/preferences"
	"github.com/jetsetilly/i2cslave/logger"
	"github.com/jetsetilly/i2cslave/test"
	"github.com/jetsetilly/i2cslave/testbench"
)

func TestSCLClock(t *testing.T) {
	b := testbench.NewBench(preferences.NewDefaults(), logger.Deny)
	test.ExpectEquality(t, b.SCLHalfPeriod(), 250)

	var edges []time.Duration
	last := b.Board.SCL.Level()
	b.AddObserver(testbench.ObserverFunc(func(brd *hardware.Board) {
		if brd.SCL.Level() != last {
			edges = append(edges, b.Now())
			last = brd.SCL.Level()
		}
	}))

	b.StartSCL()
	b.Timer(50 * time.Microsecond)
	test.ExpectEquality(t, b.Now(), 50*time.Microsecond)

	// 100kHz over 50us is five periods, with ten edges. the first edge is
	// the falling edge at the end of the first high half period
	test.DemandEquality(t, len(edges), 9)
	for i := 1; i < len(edges); i++ {
		test.ExpectEquality(t, edges[i]-edges[i-1], 5*time.Microsecond, i)
	}

	b.StopSCL(true)
	b.Timer(20 * time.Microsecond)
	test.ExpectEquality(t, b.Board.SCL.Level(), true)
}

func TestResetSequence(t *testing.T) {
	b := testbench.NewBench(preferences.NewDefaults(), logger.Deny)
	b.ResetSequence()
	test.ExpectSuccess(t, b.Board.RstN())
	test.ExpectSuccess(t, b.Board.Ena())
	test.ExpectEquality(t, b.Board.Ticks, uint64(10))
	test.ExpectEquality(t, b.Board.Engine.State(), slave.Idle)
}

func TestWaitTimeout(t *testing.T) {
	b := testbench.NewBench(preferences.NewDefaults(), logger.Deny)
	b.MaxWaitTicks = 1000

	// the clock is not running so SCL never goes low
	err := b.WaitSCL(context.Background(), false, 100*time.Nanosecond)
	test.ExpectSuccess(t, curated.Is(err, testbench.WaitTimeout))
	test.ExpectEquality(t, b.Board.Ticks, uint64(1000))

	// a condition that is already met returns immediately
	err = b.WaitSCL(context.Background(), true, 100*time.Nanosecond)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b.Board.Ticks, uint64(1000))
}

func TestWaitCancelled(t *testing.T) {
	b := testbench.NewBench(preferences.NewDefaults(), logger.Deny)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := b.WaitState(ctx, slave.Ack, 20*time.Nanosecond)
	test.ExpectSuccess(t, curated.Is(err, testbench.Cancelled))
	test.ExpectSuccess(t, curated.Has(err, testbench.Cancelled))
}

func TestWaitSCL(t *testing.T) {
	b := testbench.NewBench(preferences.NewDefaults(), logger.Deny)
	b.StartSCL()

	err := b.WaitSCL(context.Background(), false, 20*time.Nanosecond)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, b.SCL(), false)
	test.ExpectEquality(t, b.Now(), 5*time.Microsecond)
}

func TestSDA(t *testing.T) {
	b := testbench.NewBench(preferences.NewDefaults(), logger.Deny)
	test.ExpectSuccess(t, b.SDA())
	b.SetSDA(false)
	test.ExpectFailure(t, b.SDA())
	b.SetSDA(true)
	test.ExpectSuccess(t, b.SDA())
}
