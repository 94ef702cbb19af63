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

// Package stimulus drives an I2C transfer on to a test bench from the point of
// view of the bus master.
//
// The Master type provides the bus conditions and byte transfers. The timing
// of each function follows the free-running SCL of the test bench: SDA is only
// changed while SCL is low, except for the START and STOP conditions.
//
// Reference() is the stimulus that the design was originally verified with.
// An address byte is sent after a START and the master then takes part in
// three ACK windows without sending any further data.
//
// Stimulus can also be described with a simple script. See ParseScript() for
// the format.
package stimulus
