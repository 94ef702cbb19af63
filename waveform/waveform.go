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

package waveform

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/jetsetilly/i2cslave/curated"
	"github.com/jetsetilly/i2cslave/hardware"
	"github.com/jetsetilly/i2cslave/logger"
)

// Channel numbers in the WAV file.
const (
	ChanSCL = iota
	ChanSDA
	ChanDrive
	ChanState
	NumChannels
)

// BitDepth of the WAV file.
const BitDepth = 16

// sample values for the line channels
const (
	levelHi = 0x3fff
	levelLo = -0x3fff
)

// the state channel is a staircase with one step per state value
const stateStep = 0x1000

// Capture implements the testbench.Observer interface.
type Capture struct {
	sampleRate int

	// only every Nth tick is captured
	every int
	count int

	data []int
}

// NewCapture is the preferred method of initialisation for the Capture type.
// The sampleClockNS argument is the period of the sample clock and every is
// the downsampling factor. A value of one or less captures every tick.
func NewCapture(sampleClockNS int, every int) (*Capture, error) {
	if sampleClockNS <= 0 {
		return nil, curated.Errorf("waveform: sample clock period must be positive (%d)", sampleClockNS)
	}
	if every < 1 {
		every = 1
	}

	cpt := &Capture{
		sampleRate: 1_000_000_000 / sampleClockNS / every,
		every:      every,
	}

	if cpt.sampleRate < 1 {
		return nil, curated.Errorf("waveform: sample rate too low for sample clock (%dns every %d ticks)", sampleClockNS, every)
	}

	return cpt, nil
}

// SampleRate of the captured data in Hz.
func (cpt *Capture) SampleRate() int {
	return cpt.sampleRate
}

// Len returns the number of captured samples per channel.
func (cpt *Capture) Len() int {
	return len(cpt.data) / NumChannels
}

func line(v bool) int {
	if v {
		return levelHi
	}
	return levelLo
}

// Observe implements the testbench.Observer interface.
func (cpt *Capture) Observe(b *hardware.Board) {
	cpt.count++
	if cpt.count < cpt.every {
		return
	}
	cpt.count = 0

	cpt.data = append(cpt.data,
		line(b.SCL.Level()),
		line(b.SDA.Level()),
		line(!b.Engine.SDADrive()),
		int(b.Engine.State())*stateStep,
	)
}

// Reset removes all captured data.
func (cpt *Capture) Reset() {
	cpt.data = cpt.data[:0]
	cpt.count = 0
}

// Save the captured data to the named file.
func (cpt *Capture) Save(filename string) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("waveform: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("waveform: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, cpt.sampleRate, BitDepth, NumChannels, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: NumChannels,
			SampleRate:  cpt.sampleRate,
		},
		Data:           cpt.data,
		SourceBitDepth: BitDepth,
	}

	logger.Logf(logger.Allow, "waveform", "writing %d samples to %s", cpt.Len(), filename)

	if err := enc.Write(buf); err != nil {
		return curated.Errorf("waveform: %v", err)
	}

	// the encoder must be closed to finalise the WAV header
	if err := enc.Close(); err != nil {
		return curated.Errorf("waveform: %v", err)
	}

	return nil
}
