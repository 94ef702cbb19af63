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

// Package recorder watches a hardware.Board as it is stepped by the testbench
// and records every change of protocol state. Completed bytes are noted as
// they are latched by the engine.
//
// The Recorder type implements the testbench.Observer interface:
//
//	rec := recorder.NewRecorder()
//	bench.AddObserver(rec)
//
// After the bench has run, the recording can be queried or written out as a
// human readable transcript with the Write() function.
package recorder
