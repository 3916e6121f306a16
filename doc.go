// SPDX-License-Identifier: EPL-2.0

// Package grainbx is a real-time granular synthesizer.
//
// The engine keeps the most recent 2048 input samples in a circular history
// buffer. On every sample tick it may start a new grain, a short
// Hann-windowed slice of that history read back at an adjustable speed.
// Up to 16 grains sound at once, and their sum is scaled by the number of
// active grains. The result is the familiar cloud of overlapping echoes
// whose texture follows three knobs: grain size, density and pitch.
//
// # Packages
//
//   - engine: the grain engine itself (history, grain pool, window,
//     parameters, spawn diagnostics)
//   - audio: float32 Source pipeline stages (Resampler, MonoMixer,
//     Granulator) and the decoder Registry
//   - formats: WAV, AIFF, MP3 and Ogg Vorbis decoders plus Open(path)
//   - preset: JSON parameter presets
//   - pcm: sample conversion helpers
//
// # Offline rendering
//
// GranulateToMono16 runs a whole decoded file through an engine:
//
//	src, err := formats.Open("voice.wav")
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//
//	eng, err := engine.New(engine.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//
//	out, rate, err := grainbx.GranulateToMono16(src, eng, 4096)
//
// The input is resampled to the engine's rate and downmixed to mono first.
// The output has exactly one sample per input sample.
//
// # Live playback
//
// LiveReader turns an engine into an endless io.Reader of 16-bit
// little-endian mono PCM, which is what audio device libraries such as
// github.com/ebitengine/oto/v3 pull from:
//
//	player := otoCtx.NewPlayer(grainbx.NewLiveReader(eng, input))
//	player.Play()
//
// The engine's SetGrainSize, SetDensity and SetPitch may be called from any
// goroutine while the device is pulling samples. New values affect grains
// spawned afterwards; grains already sounding keep their length and speed.
//
// # Determinism
//
// The engine draws spawn decisions and start offsets from an injected
// engine.Rand. With a fixed seed, rendering the same input twice yields
// identical output.
package grainbx
