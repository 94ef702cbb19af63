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

// Package test bundles a handful of functions that remove common boilerplate
// from tests. It is intended to be used with the standard go test harness.
//
// The Expect functions report a failed test with t.Errorf() and allow the
// test to continue. The Demand functions report with t.Fatalf() and should be
// used when later parts of the test depend on the value being correct. For
// example, testing that the lengths of two slices are equal before iterating
// over them in unison.
//
// Success and failure are interpreted according to the type of the value:
//
//	bool  -> true is success
//	error -> nil is success
//	nil   -> success
//
// The nil type is considered a success because of how errors usually work
// (nil to indicate no error).
//
// Every function accepts optional tags. These are prepended to the failure
// message and are useful when a test is run in a loop.
//
// The Writer type implements the io.Writer interface and should be used to
// capture output for comparison.
package test
