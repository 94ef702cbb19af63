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

import "fmt"

// State of the protocol engine. The numeric value of a State is visible on the
// i2c_state output of the board.
type State uint8

// List of valid State values. The value of Ack is fixed at 4. The others are
// numbered in order of a normal transfer.
const (
	Idle State = iota
	StartDetected
	ReceiveBit
	ByteComplete
	Ack
	StopDetected
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case StartDetected:
		return "start"
	case ReceiveBit:
		return "receive"
	case ByteComplete:
		return "byte complete"
	case Ack:
		return "ack"
	case StopDetected:
		return "stop"
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// ackPhase sequences the ACK window. the window is one full SCL pulse: the
// slave begins pulling SDA on the falling edge that ends the last data bit and
// lets go on the falling edge that ends the ACK pulse.
type ackPhase int

const (
	ackAwaitLow ackPhase = iota
	ackDriving
	ackSampled
)

func (p ackPhase) String() string {
	switch p {
	case ackAwaitLow:
		return "await low"
	case ackDriving:
		return "driving"
	case ackSampled:
		return "sampled"
	}
	return "unknown"
}
