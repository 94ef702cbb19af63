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

// Package prefs facilitates the storage of preferential values in the
// application. Preference values are typed (Bool, Int, String) and are safe to
// read from more than one goroutine.
//
// Values are collated into a Disk instance with the Add() function, each under
// a unique key. The Disk can then be saved to and loaded from a file:
//
//	dsk, err := prefs.NewDisk(pth)
//	err = dsk.Add("hardware.i2c.syncStages", &p.SyncStages)
//	err = dsk.Load()
//
// A preferences file can be shared by more than one Disk instance. Entries in
// the file that are not known to the Disk are preserved when it is saved.
//
// Values can also be supplied on the command line as a string of key/value
// pairs. See PushCommandLineStack(). Command line values take precedence over
// the values in the file and are applied when Load() is called.
package prefs
