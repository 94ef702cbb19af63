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

package prefs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/i2cslave/curated"
	"github.com/jetsetilly/i2cslave/prefs"
	"github.com/jetsetilly/i2cslave/test"
)

func readFile(t *testing.T, fn string) string {
	t.Helper()
	b, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	return string(b)
}

func TestTypes(t *testing.T) {
	var b prefs.Bool
	test.ExpectEquality(t, b.String(), "false")
	test.ExpectSuccess(t, b.Set("TRUE"))
	test.ExpectEquality(t, b.Get().(bool), true)
	test.ExpectFailure(t, b.Set(10))

	var i prefs.Int
	test.ExpectSuccess(t, i.Set("100000"))
	test.ExpectEquality(t, i.Get().(int), 100000)
	test.ExpectFailure(t, i.Set("fast"))

	i.SetRange(2, 8)
	test.ExpectFailure(t, i.Set(1))
	test.ExpectEquality(t, i.Get().(int), 100000)
	test.ExpectSuccess(t, i.Reset())
	test.ExpectEquality(t, i.Get().(int), 2)

	var s prefs.String
	test.ExpectSuccess(t, s.Set(20))
	test.ExpectEquality(t, s.String(), "20")
}

func TestHook(t *testing.T) {
	var called int
	var i prefs.Int
	i.SetHookPost(func(v prefs.Value) error {
		called = v.(int)
		return nil
	})
	test.ExpectSuccess(t, i.Set(3))
	test.ExpectEquality(t, called, 3)
}

func TestDisk(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var stages prefs.Int
	var logging prefs.Bool
	test.DemandSuccess(t, dsk.Add("hardware.i2c.syncStages", &stages))
	test.DemandSuccess(t, dsk.Add("hardware.i2c.logTransitions", &logging))
	test.ExpectFailure(t, dsk.Add("hardware.i2c.syncStages", &stages))

	// loading a missing file is reported but values are untouched
	err = dsk.Load()
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))

	stages.Set(3)
	logging.Set(true)
	test.DemandSuccess(t, dsk.Save())
	test.ExpectEquality(t, readFile(t, fn), prefs.WarningBoilerPlate+"\n"+
		"hardware.i2c.logTransitions :: true\n"+
		"hardware.i2c.syncStages :: 3\n")

	// a second disk sharing the same file preserves the first disk's entries
	dsk2, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var freq prefs.Int
	test.DemandSuccess(t, dsk2.Add("testbench.sclFreqHz", &freq))
	test.DemandSuccess(t, dsk2.Load())
	freq.Set(400000)
	test.DemandSuccess(t, dsk2.Save())
	test.ExpectEquality(t, readFile(t, fn), prefs.WarningBoilerPlate+"\n"+
		"hardware.i2c.logTransitions :: true\n"+
		"hardware.i2c.syncStages :: 3\n"+
		"testbench.sclFreqHz :: 400000\n")

	// reload first disk after changing values in memory
	stages.Set(5)
	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, stages.Get().(int), 3)
}

func TestNotAPrefsFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "notprefs")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("hello\n"), 0o600))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	err = dsk.Load()
	test.ExpectSuccess(t, curated.Is(err, prefs.NotAPrefsFile))
}

func TestCommandLine(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var stages prefs.Int
	test.DemandSuccess(t, dsk.Add("hardware.i2c.syncStages", &stages))

	prefs.PushCommandLineStack("hardware.i2c.syncStages::4; unused::true")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 1)

	err = dsk.Load()
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))
	test.ExpectEquality(t, stages.Get().(int), 4)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unused::true")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}
