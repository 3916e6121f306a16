// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/grainbx/pcm"
)

// Resampler converts src to another sample rate with Catmull-Rom
// interpolation, keeping the channel count. When downsampling, input frames
// go through a one-pole low-pass first to tame aliasing.
type Resampler struct {
	src      Source
	rate     int
	step     float64 // source frames advanced per output frame
	channels int

	// window[1] and window[2] bracket the output position; window[0] and
	// window[3] are the outer neighbours. live marks frames that came from
	// the source rather than being edge copies.
	window [4][]float32
	live   [4]bool
	pos    float64
	primed bool
	eof    bool

	frame  []float32
	smooth []float32
	warm   bool
}

const smoothAlpha = 0.5

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	r := &Resampler{
		src:      src,
		rate:     dstRate,
		step:     float64(src.SampleRate()) / float64(dstRate),
		channels: channels,
		frame:    make([]float32, channels),
	}
	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}
	if r.step > 1 {
		r.smooth = make([]float32, channels)
	}
	return r
}

func (r *Resampler) SampleRate() int { return r.rate }
func (r *Resampler) Channels() int   { return r.channels }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("resampler: %w", err)
	}
	return nil
}

// pull reads the next source frame into dst. It reports false once the
// source is exhausted.
func (r *Resampler) pull(dst []float32) (bool, error) {
	for !r.eof {
		n, err := r.src.ReadSamples(r.frame)
		if errors.Is(err, io.EOF) {
			r.eof = true
		} else if err != nil {
			return false, fmt.Errorf("resampler: %w", err)
		}
		if n < r.channels {
			continue
		}

		copy(dst, r.frame)
		if r.smooth != nil {
			if !r.warm {
				copy(r.smooth, dst)
				r.warm = true
			}
			for c := range dst {
				dst[c] = smoothAlpha*dst[c] + (1-smoothAlpha)*r.smooth[c]
				r.smooth[c] = dst[c]
			}
		}
		return true, nil
	}
	return false, nil
}

// fill loads window[i], duplicating window[i-1] when the source has ended.
func (r *Resampler) fill(i int) error {
	ok, err := r.pull(r.window[i])
	if err != nil {
		return err
	}
	r.live[i] = ok
	if !ok && i > 0 {
		copy(r.window[i], r.window[i-1])
	}
	return nil
}

func (r *Resampler) prime() error {
	if err := r.fill(1); err != nil {
		return err
	}
	if !r.live[1] {
		return io.EOF
	}
	copy(r.window[0], r.window[1])
	if err := r.fill(2); err != nil {
		return err
	}
	if err := r.fill(3); err != nil {
		return err
	}
	r.primed = true
	return nil
}

func (r *Resampler) advance() error {
	first := r.window[0]
	copy(r.window[:3], r.window[1:])
	copy(r.live[:3], r.live[1:])
	r.window[3] = first
	return r.fill(3)
}

// ReadSamples produces interleaved frames at the target rate.
// len(dst) must be a multiple of the channel count. Every read fails with
// ErrInvalidRate when either rate is not positive.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if r.rate <= 0 || r.src.SampleRate() <= 0 {
		return 0, fmt.Errorf("%d Hz to %d Hz: %w", r.src.SampleRate(), r.rate, ErrInvalidRate)
	}
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if r.step == 1 {
		return r.src.ReadSamples(dst)
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0
	for written < frames {
		for r.pos >= 1 {
			r.pos--
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}
		if !r.live[1] {
			return written * r.channels, io.EOF
		}

		x := float32(r.pos)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			out[c] = pcm.Cubic(r.window[0][c], r.window[1][c], r.window[2][c], r.window[3][c], x)
		}

		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}
