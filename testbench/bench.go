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

package testbench

import (
	"context"
	"time"

	"github.com/jetsetilly/i2cslave/curated"
	"github.com/jetsetilly/i2cslave/hardware"
	"github.com/jetsetilly/i2cslave/hardware/clocks"
	"github.com/jetsetilly/i2cslave/hardware/i2c/slave"
	"github.com/jetsetilly/i2cslave/hardware/preferences"
	"github.com/jetsetilly/i2cslave/logger"
)

// Sentinal error patterns.
const (
	WaitTimeout = "testbench: %s not met after %d ticks"
	Cancelled   = "testbench: %v"
)

// DefaultMaxWaitTicks is the default value for the MaxWaitTicks field. At the
// default sample clock this is one second of simulated time.
const DefaultMaxWaitTicks = 50_000_000

// Observer implementations are called after every tick of the bench.
type Observer interface {
	Observe(b *hardware.Board)
}

// ObserverFunc allows a plain function to be used as an Observer.
type ObserverFunc func(b *hardware.Board)

// Observe implements the Observer interface.
func (f ObserverFunc) Observe(b *hardware.Board) {
	f(b)
}

// Bench drives a Board.
type Bench struct {
	Board *hardware.Board

	sampleClockNS int

	// the free-running SCL. the clock starts high and toggles every sclHalf
	// ticks while sclRunning is true. when it is not running the SCL line is
	// held at sclLevel
	sclHalf    int
	sclPhase   int
	sclRunning bool
	sclLevel   bool

	// the level the master is driving on SDA
	sda bool

	// simulated time since the bench was created
	now time.Duration

	observers []Observer

	// maximum number of ticks a wait function will wait before returning an
	// error
	MaxWaitTicks int
}

// NewBench is the preferred method of initialisation for the Bench type. The
// bench creates its own Board. Both bus lines begin released.
func NewBench(prefs *preferences.Preferences, perm logger.Permission) *Bench {
	b := &Bench{
		Board:         hardware.NewBoard(prefs, perm),
		sampleClockNS: prefs.SampleClockNS.Get().(int),
		sclLevel:      true,
		sda:           true,
		MaxWaitTicks:  DefaultMaxWaitTicks,
	}

	b.sclHalf = clocks.TicksPerPeriod(prefs.SCLFreqHz.Get().(int), b.sampleClockNS) / 2
	if b.sclHalf < 1 {
		b.sclHalf = 1
	}

	b.drive()

	return b
}

// AddObserver adds an Observer to the bench. Observers are called in the order
// in which they were added.
func (b *Bench) AddObserver(o Observer) {
	b.observers = append(b.observers, o)
}

// Now returns the amount of simulated time that has passed.
func (b *Bench) Now() time.Duration {
	return b.now
}

// SampleClock returns the period of the sample clock.
func (b *Bench) SampleClock() time.Duration {
	return time.Duration(b.sampleClockNS)
}

// SCLHalfPeriod returns the number of ticks in each half of the SCL period.
func (b *Bench) SCLHalfPeriod() int {
	return b.sclHalf
}

// StartSCL starts the free-running bus clock. The clock starts high.
func (b *Bench) StartSCL() {
	b.sclRunning = true
	b.sclPhase = 0
	b.sclLevel = true
	b.drive()
}

// StopSCL stops the bus clock and holds SCL at the specified level.
func (b *Bench) StopSCL(level bool) {
	b.sclRunning = false
	b.sclLevel = level
	b.drive()
}

// SCL returns the level the master is driving on SCL.
func (b *Bench) SCL() bool {
	return b.sclLevel
}

// SetSDA sets the level the master is driving on SDA. Setting SDA high
// releases the line.
func (b *Bench) SetSDA(v bool) {
	b.sda = v
	b.drive()
}

// SDA returns the level of the SDA line, including the effect of the slave
// pulling the line low.
func (b *Bench) SDA() bool {
	return b.Board.SDA.Level()
}

// drive the master's levels on to the board pins.
func (b *Bench) drive() {
	var v uint8
	if b.sda {
		v |= 0x01 << hardware.UIOSDA
	}
	if b.sclLevel {
		v |= 0x01 << hardware.UIOSCL
	}
	b.Board.SetUIOIn(v)
}

// Tick advances the bench by one tick of the sample clock.
func (b *Bench) Tick() {
	b.Board.Step()
	b.now += time.Duration(b.sampleClockNS)

	for _, o := range b.observers {
		o.Observe(b.Board)
	}

	if b.sclRunning {
		b.sclPhase++
		if b.sclPhase >= b.sclHalf {
			b.sclPhase = 0
			b.sclLevel = !b.sclLevel
			b.drive()
		}
	}
}

// ClockCycles advances the bench by n ticks of the sample clock.
func (b *Bench) ClockCycles(n int) {
	for range n {
		b.Tick()
	}
}

// Timer advances the bench by at least the specified duration of simulated
// time.
func (b *Bench) Timer(d time.Duration) {
	b.ClockCycles(clocks.Ticks(d, b.sampleClockNS))
}

// ResetSequence enables the design and holds reset for five ticks of the
// sample clock, followed by five ticks with reset released.
func (b *Bench) ResetSequence() {
	b.Board.SetEna(true)
	b.Board.SetRstN(false)
	b.ClockCycles(5)
	b.Board.SetRstN(true)
	b.ClockCycles(5)
}

// WaitUntil polls the condition, advancing the bench by the poll duration
// between each check. The desc argument is used in the error message.
func (b *Bench) WaitUntil(ctx context.Context, desc string, cond func() bool, poll time.Duration) error {
	pollTicks := clocks.Ticks(poll, b.sampleClockNS)
	if pollTicks < 1 {
		pollTicks = 1
	}

	waited := 0
	for !cond() {
		if err := ctx.Err(); err != nil {
			return curated.Errorf(Cancelled, err)
		}
		if waited >= b.MaxWaitTicks {
			return curated.Errorf(WaitTimeout, desc, waited)
		}
		b.ClockCycles(pollTicks)
		waited += pollTicks
	}

	return nil
}

// WaitSCL waits until the master's SCL is at the specified level.
func (b *Bench) WaitSCL(ctx context.Context, level bool, poll time.Duration) error {
	desc := "SCL low"
	if level {
		desc = "SCL high"
	}
	return b.WaitUntil(ctx, desc, func() bool {
		return b.sclLevel == level
	}, poll)
}

// WaitState waits until the engine is in the specified state.
func (b *Bench) WaitState(ctx context.Context, state slave.State, poll time.Duration) error {
	return b.WaitUntil(ctx, "state "+state.String(), func() bool {
		return b.Board.Engine.State() == state
	}, poll)
}
