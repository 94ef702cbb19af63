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

package preferences_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/i2cslave/hardware/preferences"
	"github.com/jetsetilly/i2cslave/test"
)

func TestDefaults(t *testing.T) {
	p := preferences.NewDefaults()
	test.ExpectEquality(t, p.SyncStages.Get().(int), 2)
	test.ExpectEquality(t, p.LogTransitions.Get().(bool), true)
	test.ExpectEquality(t, p.SampleClockNS.Get().(int), 20)
	test.ExpectEquality(t, p.SCLFreqHz.Get().(int), 100000)

	// a single stage synchroniser is never allowed
	test.ExpectFailure(t, p.SyncStages.Set(1))
	test.ExpectSuccess(t, p.Save())
}

func TestFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	p, err := preferences.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.SyncStages.Set(3))
	test.DemandSuccess(t, p.SCLFreqHz.Set(400000))
	test.DemandSuccess(t, p.Save())

	q, err := preferences.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.SyncStages.Get().(int), 3)
	test.ExpectEquality(t, q.SCLFreqHz.Get().(int), 400000)
	test.ExpectEquality(t, q.SampleClockNS.Get().(int), 20)
}
