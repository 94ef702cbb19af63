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

package clocks_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/i2cslave/hardware/clocks"
	"github.com/jetsetilly/i2cslave/test"
)

func TestClocks(t *testing.T) {
	test.ExpectEquality(t, clocks.PeriodNS(clocks.DefaultSCLFreqHz), 10000)
	test.ExpectEquality(t, clocks.TicksPerPeriod(clocks.DefaultSCLFreqHz, clocks.DefaultSampleClockNS), 500)
	test.ExpectEquality(t, clocks.TicksPerPeriod(clocks.FastSCLFreqHz, clocks.DefaultSampleClockNS), 125)
	test.ExpectEquality(t, clocks.Ticks(50*time.Microsecond, 20), 2500)
	test.ExpectEquality(t, clocks.Ticks(30*time.Nanosecond, 20), 2)
	test.ExpectEquality(t, clocks.Ticks(0, 20), 0)
	test.ExpectEquality(t, clocks.PeriodNS(0), 0)
}
