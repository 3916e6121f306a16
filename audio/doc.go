// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming stages that feed the grain engine.
//
// This package contains:
//   - Source, the interface every decoder and stage implements
//   - Registry, mapping format names and file extensions to decoders
//   - Resampler, for sample rate conversion
//   - MonoMixer, for downmixing to one channel
//   - Granulator, which runs a mono stream through an engine.Engine
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// Samples are interleaved float32 values in [-1, 1]. Stages wrap a Source
// and are themselves a Source, and Close on a stage closes what it wraps.
//
// # Granulating a File
//
// The engine consumes mono audio at its own sample rate, so a decoded file
// normally passes through three stages:
//
//	res := audio.NewResampler(src, eng.SampleRate())
//	mono := audio.NewMonoMixer(res)
//	gran, err := audio.NewGranulator(mono, eng)
//	if err != nil {
//	    return err
//	}
//
//	buf := make([]float32, 4096)
//	n, err := gran.ReadSamples(buf)
//
// NewGranulator refuses sources that are not mono (ErrNotMono) or whose rate
// differs from the engine's (ErrRateMismatch).
//
// # Format Registry
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, err := registry.Lookup("loop.WAV")
//
// Lookup returns ErrUnknownFormat for extensions nobody registered. The
// formats package builds a registry with every bundled decoder.
//
// # Error Handling
//
// io.EOF marks the end of a stream and may arrive with the last samples:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // use buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
