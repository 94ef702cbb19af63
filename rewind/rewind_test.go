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

package rewind_test

import (
	"testing"

	"github.com/jetsetilly/i2cslave/hardware"
	"github.com/jetsetilly/i2cslave/hardware/preferences"
	"github.com/jetsetilly/i2cslave/logger"
	"github.com/jetsetilly/i2cslave/rewind"
	"github.com/jetsetilly/i2cslave/test"
)

func TestPushPop(t *testing.T) {
	b := hardware.NewBoard(preferences.NewDefaults(), logger.Deny)
	r := rewind.NewRewind(10)

	_, ok := r.Pop()
	test.ExpectFailure(t, ok)

	for i := range 5 {
		r.Push(b, i)
		b.Step()
	}
	test.ExpectEquality(t, r.Len(), 5)
	test.ExpectEquality(t, b.Ticks, 5)

	s, ok := r.Peek()
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, s.Pos, 4)
	test.ExpectEquality(t, r.Len(), 5)

	s, ok = r.Pop()
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, s.Pos, 4)
	test.ExpectEquality(t, s.Board.Ticks, 4)
	test.ExpectEquality(t, r.Len(), 4)

	// the snapshot is independent of the live board
	b.Step()
	test.ExpectEquality(t, s.Board.Ticks, 4)

	r.Reset()
	test.ExpectEquality(t, r.Len(), 0)
}

func TestOverflow(t *testing.T) {
	b := hardware.NewBoard(preferences.NewDefaults(), logger.Deny)
	r := rewind.NewRewind(3)

	for i := range 7 {
		r.Push(b, i)
	}
	test.ExpectEquality(t, r.Len(), 3)
	test.ExpectEquality(t, r.String(), "3/3")

	// only the three most recent entries remain
	for _, pos := range []int{6, 5, 4} {
		s, ok := r.Pop()
		test.DemandSuccess(t, ok)
		test.ExpectEquality(t, s.Pos, pos)
	}

	_, ok := r.Pop()
	test.ExpectFailure(t, ok)
}

func TestDefaultSize(t *testing.T) {
	r := rewind.NewRewind(0)
	test.ExpectEquality(t, r.String(), "0/200")
}
