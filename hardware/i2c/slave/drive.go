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

// sdaDriver is the engine's only means of pulling SDA low. the two functions
// are unexported and only the ACK sequencing in the engine calls driveLow().
type sdaDriver struct {
	low bool
}

func (d *sdaDriver) driveLow() {
	d.low = true
}

func (d *sdaDriver) release() {
	d.low = false
}
