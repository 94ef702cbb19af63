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
)

// DefaultAddress is the address byte sent by Reference().
const DefaultAddress = 0b11001001

// Reference runs the stimulus the design was originally verified with:
//
//  1. reset with SDA held low, then release SDA and wait 50us
//  2. START
//  3. the address byte, MSB first
//  4. release SDA for the slave's ACK
//  5. take part in the requested number of ACK windows
//
// Returns the byte received by the slave in each ACK window. The bus clock must
// not already be running.
func Reference(ctx context.Context, m *Master, address uint8, ackWindows int) ([]uint8, error) {
	b := m.Bench()

	b.StartSCL()
	b.SetSDA(false)
	b.ResetSequence()
	b.SetSDA(true)
	b.Timer(50 * time.Microsecond)

	if err := m.Start(ctx); err != nil {
		return nil, err
	}

	if err := m.writeBits(ctx, address); err != nil {
		return nil, curated.Errorf("stimulus: reference: %v", err)
	}

	// release SDA for the slave's ACK
	if err := b.WaitSCL(ctx, false, m.poll()); err != nil {
		return nil, curated.Errorf("stimulus: reference: %v", err)
	}
	b.SetSDA(true)

	// the slave starts to pull SDA low once it has seen SCL fall
	b.ClockCycles(b.Board.Engine.SCL.Latency() + 1)

	received := make([]uint8, 0, ackWindows)
	for range ackWindows {
		v, err := m.AckWindow(ctx)
		if err != nil {
			return received, err
		}
		received = append(received, v)
	}

	return received, nil
}
