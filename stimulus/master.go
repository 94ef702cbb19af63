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
	"context"
	"time"

	"github.com/jetsetilly/i2cslave/curated"
	"github.com/jetsetilly/i2cslave/hardware/i2c/slave"
	"github.com/jetsetilly/i2cslave/logger"
	"github.com/jetsetilly/i2cslave/testbench"
)

// Master is the bus master. It does not generate SCL, which is free-running
// on the test bench.
//
// The slave's synchronisers must delay the bus by fewer ticks than there are
// in the high phase of SCL. If they do not the slave releases SDA at the end
// of an ACK while SCL is already high again, which is a STOP.
type Master struct {
	bench *testbench.Bench
	perm  logger.Permission

	// the number of bytes completed by the slave whose ACK window has
	// already been dealt with
	acked int
}

// NewMaster is the preferred method of initialisation for the Master type.
func NewMaster(bench *testbench.Bench, perm logger.Permission) *Master {
	return &Master{
		bench: bench,
		perm:  perm,
	}
}

// Bench returns the test bench the master is driving.
func (m *Master) Bench() *testbench.Bench {
	return m.bench
}

// Start issues a START condition. SDA falls a quarter of the way through the
// next high phase of SCL.
//
// The function returns once the slave is ready to receive the first bit or,
// at high bus rates, when SCL falls. Either way the master is in time to put
// the first bit on the bus.
func (m *Master) Start(ctx context.Context) error {
	m.bench.SetSDA(true)
	if err := m.bench.WaitSCL(ctx, false, m.poll()); err != nil {
		return curated.Errorf("stimulus: start: %v", err)
	}
	if err := m.bench.WaitSCL(ctx, true, m.poll()); err != nil {
		return curated.Errorf("stimulus: start: %v", err)
	}
	m.bench.ClockCycles(m.holdTicks())
	m.bench.SetSDA(false)
	m.settle(true)
	logger.Log(m.perm, "stimulus", "start")
	return nil
}

// Stop issues a STOP condition. SDA is brought low while SCL is low and rises
// a quarter of the way through the following high phase of SCL. The slave has
// returned to the idle state when the function returns.
func (m *Master) Stop(ctx context.Context) error {
	if err := m.bench.WaitSCL(ctx, false, m.poll()); err != nil {
		return curated.Errorf("stimulus: stop: %v", err)
	}
	m.bench.SetSDA(false)
	if err := m.bench.WaitSCL(ctx, true, m.poll()); err != nil {
		return curated.Errorf("stimulus: stop: %v", err)
	}
	m.bench.ClockCycles(m.holdTicks())
	m.bench.SetSDA(true)
	m.settle(false)
	logger.Log(m.perm, "stimulus", "stop")
	return nil
}

// the master watches the bus on every tick of the sample clock. anything
// coarser can miss most of a high phase at fast bus rates
func (m *Master) poll() time.Duration {
	return m.bench.SampleClock()
}

// number of ticks SDA is held after SCL rises before a START or STOP. a
// quarter of the high phase but never zero
func (m *Master) holdTicks() int {
	return max(1, m.bench.SCLHalfPeriod()/4)
}

// settle gives the slave time to see the most recent change on SDA. the
// synchronisers delay the change by Latency() ticks and the slave takes one
// more tick to move on from StartDetected or StopDetected.
//
// with untilFall set settling ends early if SCL falls, so that the next bit is
// not late.
func (m *Master) settle(untilFall bool) {
	for range m.bench.Board.Engine.SDA.Latency() + 1 {
		if untilFall && !m.bench.SCL() {
			return
		}
		m.bench.Tick()
	}
}

// writeBits puts the byte on the bus MSB first. each bit is changed while SCL
// is low and held while SCL is high.
func (m *Master) writeBits(ctx context.Context, v uint8) error {
	for i := range 8 {
		bit := (v>>(7-i))&0x01 == 0x01
		if err := m.bench.WaitSCL(ctx, false, m.poll()); err != nil {
			return err
		}
		m.bench.SetSDA(bit)
		if err := m.bench.WaitSCL(ctx, true, m.poll()); err != nil {
			return err
		}
	}
	return nil
}

// WriteByte sends the byte MSB first, then releases SDA and samples the ACK
// bit half way through the next SCL high period. Returns true if the slave
// acknowledged the byte.
func (m *Master) WriteByte(ctx context.Context, v uint8) (bool, error) {
	if err := m.writeBits(ctx, v); err != nil {
		return false, curated.Errorf("stimulus: write byte: %v", err)
	}

	if err := m.bench.WaitSCL(ctx, false, m.poll()); err != nil {
		return false, curated.Errorf("stimulus: write byte: %v", err)
	}
	m.bench.SetSDA(true)
	if err := m.bench.WaitSCL(ctx, true, m.poll()); err != nil {
		return false, curated.Errorf("stimulus: write byte: %v", err)
	}
	m.bench.ClockCycles(m.bench.SCLHalfPeriod() / 2)

	ack := !m.bench.SDA()
	m.acked = m.bench.Board.Engine.BytesReceived()
	if ack {
		logger.Logf(m.perm, "stimulus", "wrote %#02x (ACK)", v)
	} else {
		logger.Logf(m.perm, "stimulus", "wrote %#02x (NACK)", v)
	}

	return ack, nil
}

// AckWindow waits for the slave to complete a byte and enter the ACK state. It
// then pulls SDA low for the ACK clock pulse alongside the slave. SDA is
// released towards the end of the high part of the pulse. Returns the byte the
// slave received.
//
// When the master has no data of its own to send, SDA is left high between
// ACK windows and the slave receives 0xff.
func (m *Master) AckWindow(ctx context.Context) (uint8, error) {
	eng := m.bench.Board.Engine

	// the slave stays in the ACK state until SCL falls at the end of the ACK
	// pulse so the state alone does not tell us whether this is a new window
	err := m.bench.WaitUntil(ctx, "new ack window", func() bool {
		return eng.BytesReceived() > m.acked && eng.State() == slave.Ack
	}, m.poll())
	if err != nil {
		return 0, curated.Errorf("stimulus: ack window: %v", err)
	}
	m.acked = eng.BytesReceived()
	received := eng.ReceivedByte()

	if err := m.bench.WaitSCL(ctx, false, m.poll()); err != nil {
		return 0, curated.Errorf("stimulus: ack window: %v", err)
	}
	m.bench.SetSDA(false)
	if err := m.bench.WaitSCL(ctx, true, m.poll()); err != nil {
		return 0, curated.Errorf("stimulus: ack window: %v", err)
	}
	m.bench.ClockCycles(m.bench.SCLHalfPeriod() * 4 / 5)
	m.bench.SetSDA(true)

	logger.Logf(m.perm, "stimulus", "ack window for %#02x", received)

	return received, nil
}
