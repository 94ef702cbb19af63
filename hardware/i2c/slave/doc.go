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

// Package slave implements the protocol engine of an I2C slave.
//
// The engine is a synchronous design. It is advanced one tick of the internal
// sample clock at a time with the Step() function. SCL and SDA are sampled on
// every tick and are passed through a synchroniser before being used (see the
// i2c.Trace type). The engine never generates SCL and it never stretches the
// clock.
//
// The engine recognises the START and STOP conditions, receives bytes MSB
// first and acknowledges every byte by pulling SDA low for the following clock
// pulse. After an ACK the engine is immediately ready for the next byte. Only
// a STOP (or a reset) returns the engine to the Idle state.
//
// The engine owns SDA only during the ACK window. At all other times the SDA
// drive is released and the line is only read. The State() function exposes
// the current protocol state. The value of the Ack state is 4.
//
// Malformed sequences never produce an error. A STOP in the middle of a byte
// abandons the byte and the engine returns to Idle.
package slave
