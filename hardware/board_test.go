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

package hardware_test

import (
	"testing"

	"github.com/jetsetilly/i2cslave/hardware"
	"github.com/jetsetilly/i2cslave/hardware/i2c/slave"
	"github.com/jetsetilly/i2cslave/hardware/preferences"
	"github.com/jetsetilly/i2cslave/logger"
	"github.com/jetsetilly/i2cslave/test"
)

const (
	sda = 0x01 << hardware.UIOSDA
	scl = 0x01 << hardware.UIOSCL
)

func step(b *hardware.Board, uio uint8, n int) {
	b.SetUIOIn(uio)
	for range n {
		b.Step()
	}
}

func TestPins(t *testing.T) {
	b := hardware.NewBoard(preferences.NewDefaults(), logger.Deny)
	test.ExpectEquality(t, b.UIOIn(), sda|scl)

	b.SetUIOIn(scl | 0x01)
	test.ExpectEquality(t, b.UIOIn(), scl)
	test.ExpectEquality(t, b.SDA.Level(), false)
	test.ExpectEquality(t, b.UIOOut(), 0)
	test.ExpectEquality(t, b.UIOOE(), 0)
}

func TestBoardAck(t *testing.T) {
	b := hardware.NewBoard(preferences.NewDefaults(), logger.Deny)

	step(b, sda|scl, 10)
	step(b, scl, 10)
	test.ExpectEquality(t, b.I2CState(), uint8(slave.ReceiveBit))

	v := uint8(0xc9)
	for i := 7; i >= 0; i-- {
		var d uint8
		if (v>>i)&0x01 == 0x01 {
			d = sda
		}
		step(b, 0, 5)
		step(b, d, 5)
		step(b, d|scl, 10)
	}
	test.ExpectEquality(t, b.I2CState(), uint8(slave.Ack))
	test.ExpectEquality(t, b.ReceivedByte(), 0xc9)

	// master releases SDA for the ACK. the slave holds the line low
	step(b, sda, 10)
	test.ExpectEquality(t, b.UIOOE(), sda)
	test.ExpectEquality(t, b.SDA.Level(), false)
	step(b, sda|scl, 10)
	test.ExpectEquality(t, b.SDA.Level(), false)

	// and lets go once SCL falls
	step(b, sda, 10)
	test.ExpectEquality(t, b.UIOOE(), 0)
	test.ExpectEquality(t, b.SDA.Level(), true)
	test.ExpectEquality(t, b.I2CState(), uint8(slave.ReceiveBit))
	test.ExpectEquality(t, b.Ticks, uint64(10+10+8*20+30))
}

func TestBoardReset(t *testing.T) {
	b := hardware.NewBoard(preferences.NewDefaults(), logger.Deny)
	step(b, sda|scl, 10)
	step(b, scl, 10)
	test.ExpectEquality(t, b.I2CState(), uint8(slave.ReceiveBit))

	b.SetRstN(false)
	step(b, scl, 1)
	test.ExpectEquality(t, b.I2CState(), uint8(slave.Idle))
	test.ExpectFailure(t, b.RstN())
}

func TestBoardSnapshot(t *testing.T) {
	b := hardware.NewBoard(preferences.NewDefaults(), logger.Deny)
	step(b, sda|scl, 10)
	snap := b.Snapshot()

	step(b, scl, 10)
	test.ExpectEquality(t, b.I2CState(), uint8(slave.ReceiveBit))
	test.ExpectEquality(t, snap.I2CState(), uint8(slave.Idle))
	test.ExpectEquality(t, snap.SDA.Level(), true)

	snap.Plumb(preferences.NewDefaults(), logger.Deny)
	step(snap, scl, 10)
	test.ExpectEquality(t, snap.I2CState(), uint8(slave.ReceiveBit))
}
