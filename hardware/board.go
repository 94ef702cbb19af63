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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/i2cslave/hardware/i2c"
	"github.com/jetsetilly/i2cslave/hardware/i2c/slave"
	"github.com/jetsetilly/i2cslave/hardware/preferences"
	"github.com/jetsetilly/i2cslave/logger"
)

// Bit positions of the bus lines in the uio_in, uio_out and uio_oe pins.
const (
	UIOSDA = 1
	UIOSCL = 2
)

// Board is the top level of the design.
type Board struct {
	Prefs  *preferences.Preferences
	Engine *slave.Engine

	SCL *i2c.Line
	SDA *i2c.Line

	rstN bool
	ena  bool

	// number of calls to Step() since the board was created
	Ticks uint64
}

// NewBoard is the preferred method of initialisation for the Board type. The
// board starts with reset deasserted and the design enabled.
func NewBoard(prefs *preferences.Preferences, perm logger.Permission) *Board {
	return &Board{
		Prefs:  prefs,
		Engine: slave.NewEngine(prefs, perm),
		SCL:    i2c.NewLine("SCL"),
		SDA:    i2c.NewLine("SDA"),
		rstN:   true,
		ena:    true,
	}
}

// Snapshot creates a copy of the Board in its current state.
func (b *Board) Snapshot() *Board {
	n := *b
	n.Engine = b.Engine.Snapshot()
	scl := *b.SCL
	sda := *b.SDA
	n.SCL = &scl
	n.SDA = &sda
	return &n
}

// Plumb preferences and logging permission into a Board that has been created
// with Snapshot().
func (b *Board) Plumb(prefs *preferences.Preferences, perm logger.Permission) {
	b.Prefs = prefs
	b.Engine.Plumb(prefs, perm)
}

func (b *Board) String() string {
	return fmt.Sprintf("%d: %s %s %s", b.Ticks, b.SCL, b.SDA, b.Engine)
}

// SetRstN sets the active low reset pin.
func (b *Board) SetRstN(v bool) {
	b.rstN = v
}

// RstN returns the state of the reset pin.
func (b *Board) RstN() bool {
	return b.rstN
}

// SetEna sets the enable pin.
func (b *Board) SetEna(v bool) {
	b.ena = v
}

// Ena returns the state of the enable pin.
func (b *Board) Ena() bool {
	return b.ena
}

// SetUIOIn sets the levels the bus master is driving on to SCL and SDA. Other
// bits are ignored.
func (b *Board) SetUIOIn(v uint8) {
	b.SDA.Set(i2c.Master, v&(0x01<<UIOSDA) != 0)
	b.SCL.Set(i2c.Master, v&(0x01<<UIOSCL) != 0)
}

// UIOIn returns the levels the bus master is driving on to SCL and SDA.
func (b *Board) UIOIn() uint8 {
	var v uint8
	if !b.SDA.Pulling(i2c.Master) {
		v |= 0x01 << UIOSDA
	}
	if !b.SCL.Pulling(i2c.Master) {
		v |= 0x01 << UIOSCL
	}
	return v
}

// UIOOut returns the output value of the bidirectional pins. The slave only
// ever drives SDA low so this is always zero.
func (b *Board) UIOOut() uint8 {
	return 0x00
}

// UIOOE returns the output enable of the bidirectional pins.
func (b *Board) UIOOE() uint8 {
	if b.Engine.SDADrive() {
		return 0x01 << UIOSDA
	}
	return 0x00
}

// I2CState returns the numeric value of the engine's protocol state.
func (b *Board) I2CState() uint8 {
	return uint8(b.Engine.State())
}

// ReceivedByte returns the most recently completed byte.
func (b *Board) ReceivedByte() uint8 {
	return b.Engine.ReceivedByte()
}

// Step advances the board by one tick of the sample clock.
func (b *Board) Step() {
	b.Engine.Step(slave.Pins{
		RstN: b.rstN,
		Ena:  b.ena,
		SCL:  b.SCL.Level(),
		SDA:  b.SDA.Level(),
	})

	// the engine's drive is seen on the line from the next tick
	b.SDA.Pull(i2c.Slave, b.Engine.SDADrive())

	b.Ticks++
}
