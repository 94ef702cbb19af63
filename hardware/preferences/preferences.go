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

// Package preferences collates the preference values used by the hardware
// and by the test bench that drives it.
package preferences

import (
	"github.com/jetsetilly/i2cslave/curated"
	"github.com/jetsetilly/i2cslave/hardware/clocks"
	"github.com/jetsetilly/i2cslave/hardware/i2c"
	"github.com/jetsetilly/i2cslave/paths"
	"github.com/jetsetilly/i2cslave/prefs"
)

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// length of the synchroniser chain for the SCL and SDA inputs. changes
	// take effect when the engine is next created
	SyncStages prefs.Int

	// log START, STOP and completed bytes to the central logger
	LogTransitions prefs.Bool

	// period of the internal sample clock
	SampleClockNS prefs.Int

	// frequency of the bus clock generated by the test bench
	SCLFreqHz prefs.Int
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

// NewDefaults returns a Preferences instance with default values that is not
// associated with any file. Load() and Save() do nothing.
func NewDefaults() *Preferences {
	p := &Preferences{}
	p.SyncStages.SetRange(i2c.MinSyncStages, 8)
	p.SampleClockNS.SetRange(1, 1000)
	p.SCLFreqHz.SetRange(1000, 5_000_000)
	p.SetDefaults()
	return p
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Values are loaded from the default preferences file.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is like NewPreferences() but with an explicit file.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := NewDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.i2c.syncStages", &p.SyncStages)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.i2c.logTransitions", &p.LogTransitions)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("testbench.sampleClockNS", &p.SampleClockNS)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("testbench.sclFreqHz", &p.SCLFreqHz)
	if err != nil {
		return nil, err
	}

	err = p.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.SyncStages.Set(i2c.MinSyncStages)
	p.LogTransitions.Set(true)
	p.SampleClockNS.Set(clocks.DefaultSampleClockNS)
	p.SCLFreqHz.Set(clocks.DefaultSCLFreqHz)
}

// Load current hardware preference from disk. A missing preferences file is
// not an error.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	err := p.dsk.Load()
	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return err
	}
	return nil
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
