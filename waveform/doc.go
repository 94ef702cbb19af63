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

// Package waveform is a simple logic analyser for the bus. It captures SCL,
// SDA, the slave's SDA drive and the protocol state on every tick (or every
// Nth tick) and writes them to disk as a four channel WAV file.
//
// Any audio editor that can display multichannel WAV files can be used to
// view the capture. Note that the capture is buffered in memory in its
// entirety until Save() is called. It is therefore only suitable for short
// runs of the testbench.
package waveform
