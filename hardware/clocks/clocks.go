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

// Package clocks defines the timing of the design: the period of the fast
// internal sample clock and the frequency of the externally driven bus clock.
//
// Everything in the design advances one sample clock tick at a time. The
// helper functions convert bus timing into a number of sample ticks.
package clocks

import "time"

const (
	// DefaultSampleClockNS is the period of the internal sample clock in
	// nanoseconds (50MHz).
	DefaultSampleClockNS = 20

	// DefaultSCLFreqHz is the frequency of the bus clock (standard mode I2C).
	DefaultSCLFreqHz = 100_000

	// FastSCLFreqHz is the frequency of the bus clock in fast mode I2C.
	FastSCLFreqHz = 400_000
)

// PeriodNS returns the period in nanoseconds of a clock running at freqHz.
func PeriodNS(freqHz int) int {
	if freqHz <= 0 {
		return 0
	}
	return int(time.Second.Nanoseconds()) / freqHz
}

// Ticks returns the number of whole sample clock ticks needed to cover the
// duration. A partial tick is rounded up.
func Ticks(d time.Duration, sampleClockNS int) int {
	if sampleClockNS <= 0 || d <= 0 {
		return 0
	}
	ns := int(d.Nanoseconds())
	return (ns + sampleClockNS - 1) / sampleClockNS
}

// TicksPerPeriod returns the number of sample clock ticks in one period of a
// clock running at freqHz.
func TicksPerPeriod(freqHz int, sampleClockNS int) int {
	return Ticks(time.Duration(PeriodNS(freqHz)), sampleClockNS)
}
