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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// Whereas with flag.FlagSet you call Parse() with the array of strings as the
// only argument, with modalflag you first call NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "SCRIPT", "DEBUG")
//	p, err := md.Parse()
//
// A mode is a special command line argument that puts the program into a
// different mode of operation, in the manner of the go command's build, test
// and doc modes. The first sub-mode in the list is the default and is selected
// if the first non-flag argument is not a sub-mode. Sub-mode comparisons are
// case insensitive.
//
// Once the mode is known, NewMode() prepares the Modes type for the flags of
// that mode and Parse() is called again:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		wav := md.AddString("wav", "", "write bus capture to WAV file")
//		p, err := md.Parse()
//		...
//		run(md.RemainingArgs(), *wav)
//	}
//
// Modes can be chained as deeply as required. Path() returns every mode found
// so far, separated by a forward slash.
//
// Help messages are handled automatically by Parse() when the -help flag is
// given. The Output field must be set for help messages to be visible.
package modalflag
