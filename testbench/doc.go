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

// Package testbench drives the hardware Board in the manner of an HDL test
// bench. Simulated time advances one tick of the sample clock at a time and
// every function that waits does so by stepping the board.
//
// The bench generates a free-running SCL (see StartSCL()) and drives SDA on
// behalf of the bus master. Observers can be attached to see the board after
// every tick.
//
// Waiting functions take a context and give up with an error if the context
// is cancelled or if the condition is not met within MaxWaitTicks ticks. The
// error pattern for the latter case is WaitTimeout.
//
// A typical sequence looks like this:
//
//	bench.StartSCL()
//	bench.ResetSequence()
//	bench.SetSDA(true)
//	bench.Timer(50 * time.Microsecond)
//
//	// START
//	err := bench.WaitSCL(ctx, true, 100*time.Nanosecond)
//	bench.Timer(500 * time.Nanosecond)
//	bench.SetSDA(false)
package testbench
