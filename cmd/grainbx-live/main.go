// SPDX-License-Identifier: EPL-2.0

// grainbx-live plays the granulator through the default audio device and
// takes parameter changes on stdin while it runs:
//
//	$ grainbx-live -in voice.wav
//	density 60
//	pitch 0.5
//	size 800
//
// Without -in a sine tone is looped as the live input.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/ik5/grainbx"
	"github.com/ik5/grainbx/engine"
	"github.com/ik5/grainbx/formats"
	"github.com/ik5/grainbx/internal/control"
	"github.com/ik5/grainbx/pcm"
	"github.com/ik5/grainbx/preset"
)

func main() {
	in := flag.String("in", "", "Audio file looped as the live input (optional)")
	tone := flag.Float64("tone", 220, "Frequency of the sine input used when -in is empty")
	presetPath := flag.String("preset", "", "Preset JSON file path (optional)")
	rate := flag.Int("rate", 0, "Device sample rate in Hz (default: preset or engine default)")
	bufferMS := flag.Int("buffer-ms", 50, "Device buffer length in milliseconds")
	verbose := flag.Bool("verbose", false, "Log every spawned grain")
	flag.Parse()

	logger := log.New(os.Stderr, "grainbx-live: ", log.Ltime)

	cfg := engine.DefaultConfig()
	if *presetPath != "" {
		var err error
		if cfg, err = preset.LoadJSON(*presetPath); err != nil {
			logger.Fatal(err)
		}
	}
	if *rate > 0 {
		cfg.SampleRate = *rate
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *verbose {
		spawns := engine.NewSpawnLog(256)
		cfg.Observer = spawns
		go spawns.Drain(ctx, logger)
	}

	eng, err := engine.New(cfg)
	if err != nil {
		logger.Fatal(err)
	}

	input, err := loadInput(*in, *tone, eng.SampleRate())
	if err != nil {
		logger.Fatal(err)
	}

	if err := play(ctx, eng, input, time.Duration(*bufferMS)*time.Millisecond, logger); err != nil {
		logger.Fatal(err)
	}
}

func loadInput(path string, tone float64, rate int) ([]int16, error) {
	if path == "" {
		return sine(tone, rate), nil
	}

	src, err := formats.Open(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	samples, _, err := grainbx.LoadMono16(src, rate, grainbx.DefaultBufSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return samples, nil
}

// sine returns one second of a half-scale sine at freq.
func sine(freq float64, rate int) []int16 {
	out := make([]int16, rate)
	for i := range out {
		x := 0.5 * math.Sin(2*math.Pi*freq*float64(i)/float64(rate))
		out[i] = pcm.FromFloat32(float32(x))
	}
	return out
}

func play(ctx context.Context, eng *engine.Engine, input []int16, buffer time.Duration, logger *log.Logger) error {
	otoCtx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   eng.SampleRate(),
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   buffer,
	})
	if err != nil {
		return fmt.Errorf("audio device: %w", err)
	}
	<-ready

	player := otoCtx.NewPlayer(grainbx.NewLiveReader(eng, input))
	defer player.Close()
	player.Play()

	logger.Printf("playing at %d Hz (size %d, density %d%%, pitch %.3f); type commands, Ctrl-D to quit",
		eng.SampleRate(), eng.GrainSize(), eng.Density(), eng.Pitch())

	done := make(chan error, 1)
	go func() { done <- controlLoop(ctx, os.Stdin, eng, logger) }()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-done:
			return err
		case <-ticker.C:
			if err := otoCtx.Err(); err != nil {
				return fmt.Errorf("audio device: %w", err)
			}
		}
	}
}

// controlLoop applies one command per line from r until r is exhausted or
// ctx ends. Bad commands are logged and skipped.
func controlLoop(ctx context.Context, r io.Reader, eng *engine.Engine, logger *log.Logger) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if ctx.Err() != nil {
			return nil
		}
		if err := control.Apply(eng, sc.Text()); err != nil {
			logger.Print(err)
			continue
		}
		logger.Printf("size %d density %d pitch %.3f active %d",
			eng.GrainSize(), eng.Density(), eng.Pitch(), eng.Active())
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("stdin: %w", err)
	}
	return nil
}
