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

// MinSyncStages is the minimum length of the synchroniser chain. Anything less
// than two stages risks sampling a line mid-transition.
const MinSyncStages = 2

// Trace records the state of an asynchronous line as seen by a synchronous
// design, whether it is high or low, and also whether the immediately previous
// state is also high or low.
//
// Raw values are shifted into a chain of synchroniser registers on every
// call to Tick(). Only the value leaving the end of the chain is used for the
// from/to pair. Every value that Hi(), Lo(), Rising() and Falling() report is
// therefore a registered value and the raw line is never consulted directly.
//
// Deriving conditions from two traces is convenient. For example, given two
// traces SCL and SDA, the I2C start condition is:
//
//	if SCL.Hi() && SDA.Falling() {
//		start()
//	}
type Trace struct {
	Label string

	// synchroniser chain. sync[0] is nearest the raw line
	sync []bool

	// new values are added to the end of the array. used for visualisation
	Activity []bool

	from bool
	to   bool
}

const activityLength = 64

// NewTrace is the preferred method of initialisation for the Trace type. The
// number of stages is raised to MinSyncStages if necessary.
func NewTrace(label string, stages int) Trace {
	if stages < MinSyncStages {
		stages = MinSyncStages
	}

	tr := Trace{
		Label:    label,
		sync:     make([]bool, stages),
		Activity: make([]bool, activityLength),
	}
	tr.Flush()

	return tr
}

// Flush sets every register in the trace to logic 1, the resting state of an
// open-drain line. No edge is reported after a Flush().
func (tr *Trace) Flush() {
	for i := range tr.sync {
		tr.sync[i] = true
	}
	for i := range tr.Activity {
		tr.Activity[i] = true
	}
	tr.from = true
	tr.to = true
}

// Snapshot creates a copy of the Trace that shares no memory with the original.
func (tr *Trace) Snapshot() *Trace {
	cp := *tr
	cp.sync = make([]bool, len(tr.sync))
	copy(cp.sync, tr.sync)
	cp.Activity = make([]bool, len(tr.Activity))
	copy(cp.Activity, tr.Activity)
	return &cp
}

// Stages returns the length of the synchroniser chain.
func (tr *Trace) Stages() int {
	return len(tr.sync)
}

// Latency returns the number of calls to Tick() before a change on the raw
// line is reported by Rising() or Falling().
func (tr *Trace) Latency() int {
	return len(tr.sync) + 1
}

// Changed returns true if the registered value changed on the most recent
// Tick().
func (tr *Trace) Changed() bool {
	return tr.from != tr.to
}

// Falling returns true if the registered value moved from high to low on the
// most recent Tick().
func (tr *Trace) Falling() bool {
	return tr.from && !tr.to
}

// Rising returns true if the registered value moved from low to high on the
// most recent Tick().
func (tr *Trace) Rising() bool {
	return !tr.from && tr.to
}

// Hi returns true if the registered value is high.
func (tr *Trace) Hi() bool {
	return tr.to
}

// Lo returns true if the registered value is low.
func (tr *Trace) Lo() bool {
	return !tr.to
}

// Tick samples the raw line value. A value of true indicates a high voltage
// state.
func (tr *Trace) Tick(v bool) {
	last := len(tr.sync) - 1
	tr.from = tr.to
	tr.to = tr.sync[last]
	copy(tr.sync[1:], tr.sync[:last])
	tr.sync[0] = v
	tr.Activity = append(tr.Activity[1:], tr.to)
}
