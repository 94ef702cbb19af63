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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/jetsetilly/i2cslave/curated"
	"github.com/jetsetilly/i2cslave/debugger"
	"github.com/jetsetilly/i2cslave/debugger/easyterm"
	"github.com/jetsetilly/i2cslave/hardware/preferences"
	"github.com/jetsetilly/i2cslave/logger"
	"github.com/jetsetilly/i2cslave/modalflag"
	"github.com/jetsetilly/i2cslave/prefs"
	"github.com/jetsetilly/i2cslave/recorder"
	"github.com/jetsetilly/i2cslave/statsview"
	"github.com/jetsetilly/i2cslave/stimulus"
	"github.com/jetsetilly/i2cslave/testbench"
	"github.com/jetsetilly/i2cslave/version"
	"github.com/jetsetilly/i2cslave/waveform"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "SCRIPT", "DEBUG", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* %s\n", err)
		os.Exit(10)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md)
	case "SCRIPT":
		err = script(ctx, md)
	case "DEBUG":
		err = debug(md)
	case "VERSION":
		v, r := version.Version()
		fmt.Printf("%s %s (%s)\n", version.ApplicationName, v, r)
	}

	cancel()

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		os.Exit(20)
	}
}

// flags shared by every mode
type common struct {
	md *modalflag.Modes

	scl    *int
	clk    *int
	stages *int
	prefs  *string
	log    *bool
}

func addCommon(md *modalflag.Modes) *common {
	return &common{
		md:     md,
		scl:    md.AddInt("scl", 100_000, "frequency of the bus clock in Hz"),
		clk:    md.AddInt("clk", 20, "period of the sample clock in ns"),
		stages: md.AddInt("stages", 2, "number of synchroniser stages"),
		prefs:  md.AddString("prefs", "", "preferences to override (key::value; key::value)"),
		log:    md.AddBool("log", false, "echo log to stdout"),
	}
}

// preferences are loaded from disk and then amended by any flags that have
// been set explicitly on the command line.
func (c *common) preferences() (*preferences.Preferences, error) {
	if *c.prefs != "" {
		prefs.PushCommandLineStack(*c.prefs)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "prefs", "unused command line preferences: %s", unused)
			}
		}()
	}

	p, err := preferences.NewPreferences()
	if err != nil {
		return nil, err
	}

	c.md.Visit(func(f string) {
		if err != nil {
			return
		}
		switch f {
		case "scl":
			err = p.SCLFreqHz.Set(*c.scl)
		case "clk":
			err = p.SampleClockNS.Set(*c.clk)
		case "stages":
			err = p.SyncStages.Set(*c.stages)
		}
	})
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	if *c.log {
		logger.SetEcho(os.Stdout, true)
	}

	return p, nil
}

// parseBytes converts the command line arguments to a list of bytes. Arguments
// are hexadecimal with an optional 0x prefix.
func parseBytes(args []string) ([]uint8, error) {
	data := make([]uint8, 0, len(args))
	for _, a := range args {
		s := strings.TrimPrefix(strings.ToLower(a), "0x")
		v, err := strconv.ParseUint(s, 16, 8)
		if err != nil {
			return nil, curated.Errorf("not a byte value (%s)", a)
		}
		data = append(data, uint8(v))
	}
	return data, nil
}

// the waveform capture is optional
type capture struct {
	filename string
	cpt      *waveform.Capture
}

func newCapture(bench *testbench.Bench, prefs *preferences.Preferences, filename string, every int) (*capture, error) {
	c := &capture{filename: filename}
	if filename == "" {
		return c, nil
	}

	var err error
	c.cpt, err = waveform.NewCapture(prefs.SampleClockNS.Get().(int), every)
	if err != nil {
		return nil, err
	}
	bench.AddObserver(c.cpt)

	return c, nil
}

func (c *capture) save() error {
	if c.cpt == nil {
		return nil
	}
	return c.cpt.Save(c.filename)
}

func run(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("Bytes are given in hexadecimal. Without any bytes the reference stimulus\nis run: the address byte c9 followed by the requested number of ACK windows.")

	c := addCommon(md)
	wav := md.AddString("wav", "", "write bus capture to WAV file")
	every := md.AddInt("every", 1, "capture every Nth tick of the sample clock")
	acks := md.AddInt("acks", 3, "number of ACK windows in the reference stimulus")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (available=%v)", statsview.Available()))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	data, err := parseBytes(md.RemainingArgs())
	if err != nil {
		return err
	}

	prefs, err := c.preferences()
	if err != nil {
		return err
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	bench := testbench.NewBench(prefs, logger.Allow)
	rec := recorder.NewRecorder()
	bench.AddObserver(rec)

	cpt, err := newCapture(bench, prefs, *wav, *every)
	if err != nil {
		return err
	}

	m := stimulus.NewMaster(bench, logger.Allow)

	if len(data) == 0 {
		_, err = stimulus.Reference(ctx, m, stimulus.DefaultAddress, *acks)
	} else {
		var ack []bool
		ack, err = stimulus.Sequence(ctx, m, data)
		for i := range ack {
			if ack[i] {
				fmt.Fprintf(md.Output, "%#02x ACK\n", data[i])
			} else {
				fmt.Fprintf(md.Output, "%#02x NACK\n", data[i])
			}
		}
	}

	return finish(md.Output, rec, cpt, bench, err)
}

func script(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	c := addCommon(md)
	wav := md.AddString("wav", "", "write bus capture to WAV file")
	every := md.AddInt("every", 1, "capture every Nth tick of the sample clock")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return curated.Errorf("script file required")
	}

	f, err := os.Open(md.GetArg(0))
	if err != nil {
		return err
	}
	defer f.Close()

	scr, err := stimulus.ParseScript(f)
	if err != nil {
		return err
	}

	prefs, err := c.preferences()
	if err != nil {
		return err
	}

	bench := testbench.NewBench(prefs, logger.Allow)
	rec := recorder.NewRecorder()
	bench.AddObserver(rec)

	cpt, err := newCapture(bench, prefs, *wav, *every)
	if err != nil {
		return err
	}

	res, err := scr.Run(ctx, stimulus.NewMaster(bench, logger.Allow))
	if res != nil {
		fmt.Fprintf(md.Output, "sent %d bytes, slave received %d in ACK windows\n", len(res.Sent), len(res.Received))
	}

	return finish(md.Output, rec, cpt, bench, err)
}

// finish writes the transcript and the waveform capture. both are written even
// if the stimulus failed, which is when they are most useful.
func finish(output io.Writer, rec *recorder.Recorder, cpt *capture, bench *testbench.Bench, runErr error) error {
	if err := rec.Write(output); err != nil {
		return err
	}
	fmt.Fprintf(output, "simulated time: %v\n", bench.Now())

	if err := cpt.save(); err != nil {
		return err
	}

	return runErr
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	c := addCommon(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	data, err := parseBytes(md.RemainingArgs())
	if err != nil {
		return err
	}

	prefs, err := c.preferences()
	if err != nil {
		return err
	}

	tape, err := debugger.RecordTape(prefs, func(ctx context.Context, m *stimulus.Master) error {
		if len(data) == 0 {
			_, err := stimulus.Reference(ctx, m, stimulus.DefaultAddress, 3)
			return err
		}
		_, err := stimulus.Sequence(ctx, m, data)
		return err
	})
	if err != nil {
		return err
	}

	term := &easyterm.Terminal{}
	if err := term.Initialise(os.Stdin, os.Stdout); err != nil {
		return err
	}
	defer term.CleanUp()

	dbg := debugger.NewDebugger(prefs, tape, term)

	return dbg.Start(term)
}
