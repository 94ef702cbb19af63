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
)

// Sequence resets the design and sends the bytes as a single transfer
// surrounded by START and STOP. Returns whether each byte was acknowledged. The
// bus clock must not already be running.
func Sequence(ctx context.Context, m *Master, data []uint8) ([]bool, error) {
	b := m.Bench()

	b.StartSCL()
	b.ResetSequence()
	b.Timer(10 * time.Microsecond)

	if err := m.Start(ctx); err != nil {
		return nil, err
	}

	acks := make([]bool, 0, len(data))
	for _, v := range data {
		ack, err := m.WriteByte(ctx, v)
		if err != nil {
			return acks, err
		}
		acks = append(acks, ack)
	}

	if err := m.Stop(ctx); err != nil {
		return acks, err
	}

	// allow the engine to return to idle
	b.Timer(time.Microsecond)

	return acks, nil
}
