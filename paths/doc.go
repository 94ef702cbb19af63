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

// Package paths contains functions to prepare paths to i2cslave resources.
//
// The ResourcePath() function returns the resource string prepended with the
// appropriate config directory. If the base resource path ".i2cslave" is
// present in the program's current directory then that is the base path that
// will be used. Otherwise, the user's config directory is used, as returned by
// os.UserConfigDir(). For example, on a modern Linux system:
//
//	/home/user/.config/i2cslave/preferences
//
// The base directory is created if it does not exist.
package paths
