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

package rewind

import (
	"fmt"

	"github.com/jetsetilly/i2cslave/hardware"
)

// State is a single entry in the rewind history.
type State struct {
	Board *hardware.Board

	// position in the stimulus being replayed when the snapshot was taken
	Pos int
}

func (s State) String() string {
	return fmt.Sprintf("%d", s.Pos)
}

// DefaultMaxEntries is the number of entries used by NewRewind() when the
// requested size is not positive.
const DefaultMaxEntries = 200

// Rewind contains a history of board states.
type Rewind struct {
	// circular array of snapshotted entries. start is the index of the
	// earliest entry
	entries []*State
	start   int
	count   int
}

// NewRewind is the preferred method of initialisation for the Rewind type.
func NewRewind(maxEntries int) *Rewind {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Rewind{
		entries: make([]*State, maxEntries),
	}
}

func (r *Rewind) String() string {
	return fmt.Sprintf("%d/%d", r.count, len(r.entries))
}

// Len returns the number of entries in the history.
func (r *Rewind) Len() int {
	return r.count
}

// Push a snapshot of the board on to the history. The earliest entry is
// forgotten if the history is full.
func (r *Rewind) Push(b *hardware.Board, pos int) {
	s := &State{
		Board: b.Snapshot(),
		Pos:   pos,
	}

	if r.count == len(r.entries) {
		r.entries[r.start] = s
		r.start = (r.start + 1) % len(r.entries)
		return
	}

	r.entries[(r.start+r.count)%len(r.entries)] = s
	r.count++
}

// Pop removes and returns the most recent entry in the history. Returns false
// if the history is empty.
//
// The board in the returned State has not been plumbed. See
// hardware.Board.Plumb().
func (r *Rewind) Pop() (*State, bool) {
	if r.count == 0 {
		return nil, false
	}
	r.count--
	idx := (r.start + r.count) % len(r.entries)
	s := r.entries[idx]
	r.entries[idx] = nil
	return s, true
}

// Peek returns the most recent entry without removing it.
func (r *Rewind) Peek() (*State, bool) {
	if r.count == 0 {
		return nil, false
	}
	return r.entries[(r.start+r.count-1)%len(r.entries)], true
}

// Reset removes all entries from the history.
func (r *Rewind) Reset() {
	clear(r.entries)
	r.start = 0
	r.count = 0
}
