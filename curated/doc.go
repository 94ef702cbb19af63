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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function checks whether an error was created with a specific
// pattern. Patterns intended for testing in this way should be stored as
// exported const strings. For example:
//
//	const ScriptSyntax = "stimulus: line %d: %v"
//
//	err := curated.Errorf(ScriptSyntax, 10, "unknown command")
//	if curated.Is(err, ScriptSyntax) {
//		...
//	}
//
// The Has() function is similar but checks if the pattern occurs somewhere in
// the error chain.
//
// The Error() function normalises the error chain so that it does not contain
// duplicate adjacent parts. Chains are thought of as being composed of parts
// separated by the sub-string ": ". For example, wrapping "testbench: timeout"
// with "testbench: %v" results in "testbench: timeout" and not
// "testbench: testbench: timeout".
package curated
