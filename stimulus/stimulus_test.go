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

package stimulus_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/i2cslave/curated"
	"github.com/jetsetilly/i2cslave/hardware"
	"github.com/jetsetilly/i2cslave/hardware/i2c/slave"
	"github.com/jetsetilly/i2cslave/hardware/preferences"
	"github.com/jetsetilly/i2cslave/logger"
	"github.com/jetsetilly/i2cslave/stimulus"
	"github.com/jetsetilly/i2cslave/test"
	"github.com/jetsetilly/i2cslave/testbench"
)

func newMaster(prefs *preferences.Preferences) *stimulus.Master {
	b := testbench.NewBench(prefs, logger.Deny)
	b.MaxWaitTicks = 100_000
	return stimulus.NewMaster(b, logger.Deny)
}

// counts entries into the ACK state and checks that SDA is never driven by
// the slave outside of it
type ackCounter struct {
	t       *testing.T
	prev    slave.State
	entries int
}

func (a *ackCounter) Observe(b *hardware.Board) {
	s := b.Engine.State()
	if s == slave.Ack && a.prev != slave.Ack {
		a.entries++
	}
	a.prev = s
	if b.UIOOE() != 0 && s != slave.Ack {
		a.t.Fatalf("slave driving SDA in state %s", s)
	}
}

func TestReference(t *testing.T) {
	m := newMaster(preferences.NewDefaults())
	ac := &ackCounter{t: t}
	m.Bench().AddObserver(ac)

	received, err := stimulus.Reference(context.Background(), m, stimulus.DefaultAddress, 3)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(received), 3)

	// the address byte and then two bytes with SDA left high by the master
	test.ExpectEquality(t, received[0], 0b11001001)
	test.ExpectEquality(t, received[1], 0xff)
	test.ExpectEquality(t, received[2], 0xff)
	test.ExpectEquality(t, ac.entries, 3)

	// the third ACK window has been released and the slave is ready for the
	// next byte without a new START
	m.Bench().Timer(10 * time.Microsecond)
	test.ExpectEquality(t, m.Bench().Board.Engine.State(), slave.ReceiveBit)
}

func TestReferenceAddressScenario(t *testing.T) {
	m := newMaster(preferences.NewDefaults())
	b := m.Bench()

	// stop the reference early, just before the first ACK window completes
	received, err := stimulus.Reference(context.Background(), m, stimulus.DefaultAddress, 0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(received), 0)
	test.ExpectEquality(t, b.Board.ReceivedByte(), 0b11001001)
	test.ExpectEquality(t, b.Board.I2CState(), 4)
	test.ExpectEquality(t, b.Board.UIOOE(), 0x01<<hardware.UIOSDA)

	// complete the ACK pulse
	test.DemandSuccess(t, b.WaitSCL(context.Background(), true, 20*time.Nanosecond))
	test.DemandSuccess(t, b.WaitSCL(context.Background(), false, 20*time.Nanosecond))
	b.ClockCycles(10)
	test.ExpectEquality(t, b.Board.Engine.BitCount(), 0)
	test.ExpectEquality(t, b.Board.Engine.State(), slave.ReceiveBit)
	test.ExpectEquality(t, b.Board.UIOOE(), 0)
}

func TestWriteBytes(t *testing.T) {
	type bus struct {
		freq   int
		stages []int
	}

	// the synchronisers must delay the bus by less than the high phase of
	// SCL. at 5MHz the high phase is five ticks of the default sample clock
	for _, bs := range []bus{
		{freq: 100_000, stages: []int{2, 3, 4, 5, 6, 7, 8}},
		{freq: 400_000, stages: []int{2, 3, 4, 5, 6, 7, 8}},
		{freq: 1_000_000, stages: []int{2, 3, 4, 5, 6, 7, 8}},
		{freq: 5_000_000, stages: []int{2}},
	} {
		for _, stages := range bs.stages {
			freq := bs.freq

			prefs := preferences.NewDefaults()
			test.DemandSuccess(t, prefs.SCLFreqHz.Set(freq))
			test.DemandSuccess(t, prefs.SyncStages.Set(stages))

			m := newMaster(prefs)
			ctx := context.Background()
			m.Bench().StartSCL()
			m.Bench().ResetSequence()

			test.DemandSuccess(t, m.Start(ctx), freq, stages)
			test.ExpectInequality(t, m.Bench().Board.Engine.State(), slave.Idle, freq, stages)
			for _, v := range []uint8{0xc9, 0x00, 0xff, 0x5a} {
				ack, err := m.WriteByte(ctx, v)
				test.DemandSuccess(t, err, freq, stages)
				test.ExpectSuccess(t, ack, freq, stages, v)
				test.ExpectEquality(t, m.Bench().Board.ReceivedByte(), v, freq, stages)
			}
			test.DemandSuccess(t, m.Stop(ctx), freq, stages)
			test.ExpectEquality(t, m.Bench().Board.Engine.State(), slave.Idle, freq, stages)
			test.ExpectEquality(t, m.Bench().Board.Engine.BytesReceived(), 4, freq, stages)
		}
	}
}

func TestStartSettles(t *testing.T) {
	for stages := 2; stages <= 8; stages++ {
		prefs := preferences.NewDefaults()
		test.DemandSuccess(t, prefs.SyncStages.Set(stages))

		m := newMaster(prefs)
		ctx := context.Background()
		m.Bench().StartSCL()
		m.Bench().ResetSequence()

		// at the default bus rate there is plenty of time for the slave to
		// move on from StartDetected before SCL falls
		test.DemandSuccess(t, m.Start(ctx), stages)
		test.ExpectEquality(t, m.Bench().Board.Engine.State(), slave.ReceiveBit, stages)
		test.ExpectEquality(t, m.Bench().SCL(), true, stages)
	}
}

func TestReferenceBusRates(t *testing.T) {
	for _, freq := range []int{100_000, 400_000, 1_000_000, 5_000_000} {
		prefs := preferences.NewDefaults()
		test.DemandSuccess(t, prefs.SCLFreqHz.Set(freq))

		m := newMaster(prefs)
		ac := &ackCounter{t: t}
		m.Bench().AddObserver(ac)

		received, err := stimulus.Reference(context.Background(), m, stimulus.DefaultAddress, 3)
		test.DemandSuccess(t, err, freq)
		test.DemandEquality(t, len(received), 3, freq)
		test.ExpectEquality(t, received[0], 0b11001001, freq)
		test.ExpectEquality(t, received[1], 0xff, freq)
		test.ExpectEquality(t, received[2], 0xff, freq)
		test.ExpectEquality(t, ac.entries, 3, freq)
	}
}

func TestResetAfterThreeBits(t *testing.T) {
	m := newMaster(preferences.NewDefaults())
	b := m.Bench()
	ctx := context.Background()

	b.StartSCL()
	b.ResetSequence()
	test.DemandSuccess(t, m.Start(ctx))
	ack, err := m.WriteByte(ctx, 0x3c)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, ack)

	// three bits of the next byte
	for _, bit := range []bool{true, false, true} {
		test.DemandSuccess(t, b.WaitSCL(ctx, false, 20*time.Nanosecond))
		b.SetSDA(bit)
		test.DemandSuccess(t, b.WaitSCL(ctx, true, 20*time.Nanosecond))
		b.ClockCycles(10)
	}
	test.ExpectEquality(t, b.Board.Engine.BitCount(), 3)

	b.Board.SetRstN(false)
	b.ClockCycles(1)
	test.ExpectEquality(t, b.Board.Engine.State(), slave.Idle)
	test.ExpectEquality(t, b.Board.Engine.BitCount(), 0)
	test.ExpectEquality(t, b.Board.ReceivedByte(), 0x3c)
}

func TestScript(t *testing.T) {
	const script = `
# address then two data bytes
reset
idle 50
start
byte 0b11001001
expect byte 0xc9
byte 0x12   # data
byte 52
stop
expect state 0
`
	s, err := stimulus.ParseScript(strings.NewReader(script))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(s.Commands), 9)
	test.ExpectEquality(t, s.Commands[3].String(), "byte 0b11001001")
	test.ExpectEquality(t, s.Commands[3].Line, 6)

	m := newMaster(preferences.NewDefaults())
	res, err := s.Run(context.Background(), m)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(res.Sent), 3)
	test.ExpectEquality(t, res.Sent[2], 52)
	test.ExpectEquality(t, m.Bench().Board.ReceivedByte(), 52)
}

func TestScriptAckWindows(t *testing.T) {
	const script = `
reset
idle 50
start
byte 0xc9
ack
ack
expect byte 0xff
`
	s, err := stimulus.ParseScript(strings.NewReader(script))
	test.DemandSuccess(t, err)

	m := newMaster(preferences.NewDefaults())
	res, err := s.Run(context.Background(), m)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(res.Received), 2)
	test.ExpectEquality(t, res.Received[0], 0xff)
	test.ExpectEquality(t, res.Received[1], 0xff)
}

func TestScriptExpectationFailure(t *testing.T) {
	s, err := stimulus.ParseScript(strings.NewReader("reset\nstart\nbyte 0x01\nexpect byte 0x02\n"))
	test.DemandSuccess(t, err)

	m := newMaster(preferences.NewDefaults())
	res, err := s.Run(context.Background(), m)
	test.ExpectSuccess(t, curated.Is(err, stimulus.ExpectationFailed))
	test.ExpectEquality(t, err.Error(), "stimulus: line 4: expected byte 0x02 but got 0x01")
	test.ExpectEquality(t, len(res.Sent), 1)
}

func TestScriptCancelled(t *testing.T) {
	s, err := stimulus.ParseScript(strings.NewReader("reset\nstart\n"))
	test.DemandSuccess(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Run(ctx, newMaster(preferences.NewDefaults()))
	test.ExpectFailure(t, err)
}

func TestScriptFailure(t *testing.T) {
	// there is no START so the slave never enters the ACK state
	s, err := stimulus.ParseScript(strings.NewReader("reset\nidle 1\nack\n"))
	test.DemandSuccess(t, err)

	m := newMaster(preferences.NewDefaults())
	m.Bench().MaxWaitTicks = 1000
	_, err = s.Run(context.Background(), m)
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, stimulus.ScriptFailed))
	test.ExpectFailure(t, curated.Is(err, stimulus.ScriptSyntax))
	test.ExpectSuccess(t, curated.Has(err, testbench.WaitTimeout))
	test.ExpectSuccess(t, strings.HasPrefix(err.Error(), "stimulus: line 3: ack failed: "))
}

func TestScriptSyntax(t *testing.T) {
	for _, bad := range []string{
		"jump 10",
		"start now",
		"byte",
		"byte 0x100",
		"byte ten",
		"idle -1",
		"expect state 9",
		"expect colour 1",
		"expect byte",
	} {
		_, err := stimulus.ParseScript(strings.NewReader("reset\n" + bad))
		test.ExpectSuccess(t, curated.Is(err, stimulus.ScriptSyntax), bad)
		test.ExpectSuccess(t, strings.HasPrefix(err.Error(), "stimulus: line 2: "), bad)
	}
}

func TestSequence(t *testing.T) {
	m := newMaster(preferences.NewDefaults())
	data := []uint8{0xa0, 0x01, 0x7e}

	acks, err := stimulus.Sequence(context.Background(), m, data)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(acks), len(data))
	for i := range acks {
		test.ExpectSuccess(t, acks[i], i)
	}

	eng := m.Bench().Board.Engine
	test.ExpectEquality(t, eng.BytesReceived(), len(data))
	test.ExpectEquality(t, eng.ReceivedByte(), 0x7e)
	test.ExpectEquality(t, eng.State(), slave.Idle)
	test.ExpectEquality(t, eng.SDADrive(), false)
}
