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

package slave

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/i2cslave/hardware/i2c"
	"github.com/jetsetilly/i2cslave/hardware/preferences"
	"github.com/jetsetilly/i2cslave/logger"
)

// Pins are the inputs to the engine for a single tick of the sample clock.
// SCL and SDA are the levels of the bus lines, including the effect of the
// engine's own SDA drive.
type Pins struct {
	// active low reset. sampled synchronously
	RstN bool

	// the engine only advances when Ena is true
	Ena bool

	SCL bool
	SDA bool
}

// Engine is the I2C slave protocol engine.
type Engine struct {
	prefs *preferences.Preferences
	perm  logger.Permission

	// the bus lines as seen through the synchroniser
	SCL i2c.Trace
	SDA i2c.Trace

	state State
	ack   ackPhase
	drive sdaDriver

	// bits are shifted into the shift register MSB first. bitCount is the
	// number of bits received in the current byte and will be 8 only in the
	// ByteComplete and Ack states
	shift    uint8
	bitCount int

	// the most recently completed byte and the number of bytes completed since
	// the engine was created. neither value is affected by reset
	received      uint8
	bytesReceived int

	// a STOP is only honoured after at least one SCL rising edge has been seen
	// since the START
	sclSinceStart bool
}

// NewEngine is the preferred method of initialisation for the Engine type.
// The perm argument controls logging in addition to the LogTransitions
// preference.
func NewEngine(prefs *preferences.Preferences, perm logger.Permission) *Engine {
	stages := prefs.SyncStages.Get().(int)
	eng := &Engine{
		prefs: prefs,
		perm:  perm,
		SCL:   i2c.NewTrace("SCL", stages),
		SDA:   i2c.NewTrace("SDA", stages),
	}
	eng.Reset()
	return eng
}

// Snapshot creates a copy of the Engine in its current state.
func (eng *Engine) Snapshot() *Engine {
	n := *eng
	n.SCL = *eng.SCL.Snapshot()
	n.SDA = *eng.SDA.Snapshot()
	return &n
}

// Plumb a new preferences instance and logging permission into the engine.
// Used when restoring a snapshot.
func (eng *Engine) Plumb(prefs *preferences.Preferences, perm logger.Permission) {
	eng.prefs = prefs
	eng.perm = perm
}

func (eng *Engine) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("i2c: %s", eng.state))
	switch eng.state {
	case ReceiveBit:
		s.WriteString(fmt.Sprintf(" [bit %d] %08b", eng.bitCount, eng.shift))
	case Ack:
		s.WriteString(fmt.Sprintf(" [%s] %#02x", eng.ack, eng.received))
	}
	if eng.drive.low {
		s.WriteString(" SDA driven")
	}
	return s.String()
}

// AllowLogging implements the logger.Permission interface.
func (eng *Engine) AllowLogging() bool {
	if !eng.prefs.LogTransitions.Get().(bool) {
		return false
	}
	return eng.perm == logger.Allow || eng.perm.AllowLogging()
}

// State returns the current protocol state.
func (eng *Engine) State() State {
	return eng.state
}

// BitCount returns the number of bits received in the current byte.
func (eng *Engine) BitCount() int {
	return eng.bitCount
}

// ShiftRegister returns the bits received so far in the current byte.
func (eng *Engine) ShiftRegister() uint8 {
	return eng.shift
}

// ReceivedByte returns the most recently completed byte.
func (eng *Engine) ReceivedByte() uint8 {
	return eng.received
}

// BytesReceived returns the number of bytes completed since the engine was
// created.
func (eng *Engine) BytesReceived() int {
	return eng.bytesReceived
}

// SDADrive returns true if the engine is pulling SDA low.
func (eng *Engine) SDADrive() bool {
	return eng.drive.low
}

// Reset forces the engine into the Idle state. The bit counter and shift
// register are cleared and SDA is released. The most recently received byte is
// kept.
//
// The synchronisers are not part of the reset. They continue to follow the bus
// so that the lines are not seen to change when reset is released.
func (eng *Engine) Reset() {
	eng.state = Idle
	eng.ack = ackAwaitLow
	eng.drive.release()
	eng.shift = 0
	eng.bitCount = 0
	eng.sclSinceStart = false
}

// Step advances the engine by one tick of the sample clock.
func (eng *Engine) Step(p Pins) {
	eng.SCL.Tick(p.SCL)
	eng.SDA.Tick(p.SDA)

	if !p.RstN {
		eng.Reset()
		return
	}

	if !p.Ena {
		return
	}

	// START and STOP are only recognised when SCL has been high for at least
	// two consecutive samples. SDA changing on the same tick as SCL is not a
	// bus condition
	sclSteady := eng.SCL.Hi() && !eng.SCL.Changed()

	// check for stop signal before anything else
	if sclSteady && eng.SDA.Rising() && eng.state != Idle && eng.state != StopDetected {
		if eng.sclSinceStart {
			eng.stop()
			return
		}
	}

	switch eng.state {
	case Idle:
		if sclSteady && eng.SDA.Falling() {
			eng.start()
		}

	case StartDetected:
		if sclSteady && eng.SDA.Falling() {
			eng.start()
			return
		}
		eng.state = ReceiveBit

	case ReceiveBit:
		// any other falling edge on SDA while SCL is high is a START. bits
		// received so far are abandoned
		if sclSteady && eng.SDA.Falling() {
			eng.start()
			return
		}

		if !eng.SCL.Rising() {
			return
		}

		eng.sclSinceStart = true
		if eng.SDA.Hi() {
			eng.shift |= 0x01 << (7 - eng.bitCount)
		}
		eng.bitCount++

		if eng.bitCount == 8 {
			eng.state = ByteComplete
		}

	case ByteComplete:
		eng.received = eng.shift
		eng.bytesReceived++
		eng.state = Ack
		eng.ack = ackAwaitLow
		logger.Logf(eng, "i2c", "received byte %#02x", eng.received)

	case Ack:
		switch eng.ack {
		case ackAwaitLow:
			// the master has finished with SDA once SCL falls after the
			// last data bit
			if eng.SCL.Falling() {
				eng.drive.driveLow()
				eng.ack = ackDriving
			}
		case ackDriving:
			// the master samples the ACK while SCL is high. the byte is
			// finished as far as the bit counter is concerned
			if eng.SCL.Rising() {
				eng.bitCount = 0
				eng.ack = ackSampled
			}
		case ackSampled:
			// SDA is released on the falling edge. releasing while SCL is
			// still high would look like a STOP
			if eng.SCL.Falling() {
				eng.drive.release()
				eng.shift = 0
				eng.bitCount = 0
				eng.ack = ackAwaitLow
				eng.state = ReceiveBit
			}
		}

	case StopDetected:
		eng.state = Idle
	}
}

func (eng *Engine) start() {
	logger.Log(eng, "i2c", "start condition")
	eng.state = StartDetected
	eng.shift = 0
	eng.bitCount = 0
	eng.sclSinceStart = false
}

func (eng *Engine) stop() {
	if eng.bitCount > 0 && eng.bitCount < 8 {
		logger.Logf(eng, "i2c", "stop condition (abandoned byte after %d bits)", eng.bitCount)
	} else {
		logger.Log(eng, "i2c", "stop condition")
	}
	eng.state = StopDetected
	eng.ack = ackAwaitLow
	eng.drive.release()
	eng.shift = 0
	eng.bitCount = 0
	eng.sclSinceStart = false
}
