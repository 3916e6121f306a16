// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

const writeChunk = 8192

// WriteWAV16 writes samples as a mono 16-bit PCM WAV at sampleRate. The
// header sizes are patched on completion, so w must be seekable.
func WriteWAV16(w io.WriteSeeker, sampleRate int, samples []int16) error {
	enc := gowav.NewEncoder(w, sampleRate, 16, 1, formatPCM)

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		SourceBitDepth: 16,
		Data:           make([]int, 0, min(len(samples), writeChunk)),
	}

	// an empty buffer still makes the encoder emit its headers
	for first := true; first || len(samples) > 0; first = false {
		n := min(len(samples), writeChunk)
		buf.Data = buf.Data[:n]
		for i, s := range samples[:n] {
			buf.Data[i] = int(s)
		}
		samples = samples[n:]

		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
