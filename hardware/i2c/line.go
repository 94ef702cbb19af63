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

package i2c

import (
	"fmt"
	"strings"
)

// Driver identifies a device that is able to pull a Line low.
type Driver int

// List of valid Driver values.
const (
	Master Driver = iota
	Slave
	numDrivers
)

func (d Driver) String() string {
	switch d {
	case Master:
		return "master"
	case Slave:
		return "slave"
	}
	return fmt.Sprintf("driver(%d)", int(d))
}

// Line is an open-drain bus line. The level of the line is the wired-AND of
// every driver: the line is low if any driver is pulling it low and high
// otherwise.
//
// The Line does not detect contention. Two drivers pulling low at the same
// time is a legal state for an open-drain line.
type Line struct {
	Label string
	low   [numDrivers]bool
}

// NewLine is the preferred method of initialisation for the Line type.
func NewLine(label string) *Line {
	return &Line{Label: label}
}

func (ln *Line) String() string {
	s := strings.Builder{}
	s.WriteString(ln.Label)
	if ln.Level() {
		s.WriteString(": hi")
	} else {
		s.WriteString(": lo")
	}
	for d := Driver(0); d < numDrivers; d++ {
		if ln.low[d] {
			s.WriteString(fmt.Sprintf(" [%s]", d))
		}
	}
	return s.String()
}

// Pull sets whether the driver is pulling the line low.
func (ln *Line) Pull(d Driver, low bool) {
	ln.low[d] = low
}

// Set is a convenience function for drivers that think in terms of the level
// they want the line to be. Setting the line high is the same as releasing it.
func (ln *Line) Set(d Driver, hi bool) {
	ln.low[d] = !hi
}

// Release stops the driver from pulling the line low.
func (ln *Line) Release(d Driver) {
	ln.low[d] = false
}

// Pulling returns true if the driver is pulling the line low.
func (ln *Line) Pulling(d Driver) bool {
	return ln.low[d]
}

// Level returns the logical level of the line. High is true.
func (ln *Line) Level() bool {
	for _, l := range ln.low {
		if l {
			return false
		}
	}
	return true
}
