// SPDX-License-Identifier: EPL-2.0

// grainbx-render granulates an audio file offline and writes the result as
// a mono 16-bit WAV.
//
//	grainbx-render -in voice.mp3 -out grains.wav -density 40 -pitch 0.5
//
// Settings come from engine defaults, then the optional -preset JSON file,
// then any flag given explicitly on the command line.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/ik5/grainbx"
	"github.com/ik5/grainbx/engine"
	"github.com/ik5/grainbx/formats"
	"github.com/ik5/grainbx/formats/wav"
	"github.com/ik5/grainbx/preset"
)

var errUsage = errors.New("usage")

func main() {
	logger := log.New(os.Stderr, "grainbx-render: ", 0)
	if err := run(os.Args[1:], logger); err != nil {
		switch {
		case errors.Is(err, flag.ErrHelp):
			os.Exit(0)
		case errors.Is(err, errUsage):
			os.Exit(2)
		}
		logger.Fatal(err)
	}
}

type options struct {
	in, out    string
	presetPath string
	tail       float64
	verbose    bool
	bufSize    int

	sampleRate int
	grainSize  uint
	density    uint
	pitch      float64
	mixDivisor int
	jitter     int
	seed       uint64
}

func parseFlags(args []string, output io.Writer) (*options, map[string]bool, error) {
	fs := flag.NewFlagSet("grainbx-render", flag.ContinueOnError)
	fs.SetOutput(output)

	def := engine.DefaultConfig()
	o := &options{}
	fs.StringVar(&o.in, "in", "", "Input audio file (wav, aiff, mp3, ogg)")
	fs.StringVar(&o.out, "out", "grains.wav", "Output WAV file path")
	fs.StringVar(&o.presetPath, "preset", "", "Preset JSON file path (optional)")
	fs.Float64Var(&o.tail, "tail", 0, "Seconds of silence fed after the input so grains can ring out")
	fs.BoolVar(&o.verbose, "verbose", false, "Log every spawned grain")
	fs.IntVar(&o.bufSize, "buf", grainbx.DefaultBufSize, "Read buffer size in samples")

	fs.IntVar(&o.sampleRate, "rate", def.SampleRate, "Engine sample rate in Hz")
	fs.UintVar(&o.grainSize, "size", uint(def.GrainSize), "Grain length in samples")
	fs.UintVar(&o.density, "density", uint(def.Density), "Spawn probability per sample, in percent (0-100)")
	fs.Float64Var(&o.pitch, "pitch", float64(def.Pitch), "Grain playback speed (1 = unchanged)")
	fs.IntVar(&o.mixDivisor, "mix-divisor", def.MixDivisor, "Active grains that count as unit gain")
	fs.IntVar(&o.jitter, "jitter", def.Jitter, "Maximum look-back of a new grain, in samples")
	fs.Uint64Var(&o.seed, "seed", 0, "Random seed; 0 seeds from the clock")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	if o.in == "" && fs.NArg() == 1 {
		o.in = fs.Arg(0)
	}
	if o.in == "" {
		fs.Usage()
		return nil, nil, fmt.Errorf("%w: missing -in", errUsage)
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return o, set, nil
}

// config layers explicitly set flags over the preset (or the defaults).
func (o *options) config(set map[string]bool) (engine.Config, error) {
	cfg := engine.DefaultConfig()
	if o.presetPath != "" {
		var err error
		if cfg, err = preset.LoadJSON(o.presetPath); err != nil {
			return cfg, err
		}
	}

	f := &preset.File{}
	if set["rate"] {
		f.SampleRate = &o.sampleRate
	}
	if set["size"] {
		v := int(min(o.grainSize, 1<<20))
		f.GrainSize = &v
	}
	if set["density"] {
		v := int(min(o.density, 1<<20))
		f.Density = &v
	}
	if set["pitch"] {
		v := float32(o.pitch)
		f.Pitch = &v
	}
	if set["mix-divisor"] {
		f.MixDivisor = &o.mixDivisor
	}
	if set["jitter"] {
		f.Jitter = &o.jitter
	}
	if set["seed"] && o.seed != 0 {
		f.Seed = &o.seed
	}

	if err := preset.ApplyFile(&cfg, f); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func run(args []string, logger *log.Logger) error {
	o, set, err := parseFlags(args, logger.Writer())
	if err != nil {
		return err
	}

	cfg, err := o.config(set)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	if o.verbose {
		spawns := engine.NewSpawnLog(1024)
		cfg.Observer = spawns
		wg.Add(1)
		go func() {
			defer wg.Done()
			spawns.Drain(ctx, logger)
		}()
		defer func() {
			if n := spawns.Dropped(); n > 0 {
				logger.Printf("%d spawn events dropped", n)
			}
		}()
	}

	eng, err := engine.New(cfg)
	if err != nil {
		return err
	}

	src, err := formats.Open(o.in)
	if err != nil {
		return err
	}
	defer src.Close()

	logger.Printf("rendering %s at %d Hz (size %d, density %d%%, pitch %.3f)",
		o.in, eng.SampleRate(), eng.GrainSize(), eng.Density(), eng.Pitch())

	out, rate, err := grainbx.GranulateToMono16(src, eng, o.bufSize)
	if err != nil {
		return fmt.Errorf("%s: %w", o.in, err)
	}
	if o.tail > 0 {
		for range int(o.tail * float64(rate)) {
			out = append(out, eng.Process(0))
		}
	}

	cancel()
	wg.Wait()

	if err := writeOutput(o.out, rate, out); err != nil {
		return err
	}
	logger.Printf("wrote %d samples (%.2fs) to %s", len(out), float64(len(out))/float64(rate), o.out)
	return nil
}

func writeOutput(path string, rate int, samples []int16) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	if err := wav.WriteWAV16(f, rate, samples); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
