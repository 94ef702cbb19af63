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

// Package hardware is the top level of the design. The Board type wires the
// bus lines to the I2C slave engine and exposes the pins of the design in the
// same way as the chip's external interface:
//
//	rst_n       active low synchronous reset
//	ena         enable
//	uio_in[1]   SDA as driven by the bus master
//	uio_in[2]   SCL as driven by the bus master
//	uio_out[1]  always zero. the slave can only pull SDA low
//	uio_oe[1]   set while the slave is pulling SDA low
//	i2c_state   the protocol state of the engine
//
// Both bus lines are open-drain. The level of SDA seen by the engine is the
// wired-AND of the master's drive and the slave's own drive.
//
// The board is advanced one tick of the sample clock at a time with Step().
package hardware
