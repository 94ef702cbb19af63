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

// Package version reports the version of the application as recorded by the
// Go toolchain at build time.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "i2cslave"

// number is set by the linker for release builds:
//
//	go build -ldflags "-X github.com/jetsetilly/i2cslave/version.number=v1.0.0"
var number string

// Version returns the version string and the revision string. The version is
// "unreleased" if the binary was built from a VCS checkout without a version
// number and "local" if there is no VCS information at all (for example, when
// running with "go run ."). The revision is suffixed with "+dirty" if the
// checkout contained uncommitted changes.
func Version() (string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return versionFromSettings(nil)
	}
	return versionFromSettings(info.Settings)
}

func versionFromSettings(settings []debug.BuildSetting) (string, string) {
	var vcs bool
	var revision string
	var modified bool

	for _, v := range settings {
		switch v.Key {
		case "vcs":
			vcs = true
		case "vcs.revision":
			revision = v.Value
		case "vcs.modified":
			modified = v.Value == "true"
		}
	}

	if revision == "" {
		revision = "no revision information"
	} else if modified {
		revision = fmt.Sprintf("%s+dirty", revision)
	}

	switch {
	case number != "":
		return number, revision
	case vcs:
		return "unreleased", revision
	}
	return "local", revision
}
