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

// Package i2c contains the line level building blocks of an I2C bus.
//
// A Line is an open-drain bus line. Any number of named drivers can pull the
// line low. When no driver is pulling, the line rests high.
//
// A Trace watches a Line from inside a synchronous design. The line is passed
// through a chain of synchroniser registers before it is used, and edges are
// detected only from the registered values. See the Trace type for details.
package i2c
