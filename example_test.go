// SPDX-License-Identifier: EPL-2.0

package grainbx_test

import (
	"encoding/binary"
	"fmt"

	"github.com/ik5/grainbx"
	"github.com/ik5/grainbx/engine"
	"github.com/ik5/grainbx/internal/audiotest"
)

func ExampleGranulateToMono16() {
	cfg := engine.DefaultConfig()
	cfg.Rand = engine.NewRand(42)
	eng, err := engine.New(cfg)
	if err != nil {
		fmt.Println(err)
		return
	}

	// half a second of stereo input at 22.05 kHz
	src := audiotest.NewSineSource(22050, 2, 11025, 330)

	out, rate, err := grainbx.GranulateToMono16(src, eng, 4096)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(rate, len(out) > 22000)
	// Output: 44100 true
}

func ExampleLiveReader() {
	cfg := engine.DefaultConfig()
	cfg.Density = 0
	eng, err := engine.New(cfg)
	if err != nil {
		fmt.Println(err)
		return
	}

	r := grainbx.NewLiveReader(eng, []int16{1000, 2000})

	p := make([]byte, 8)
	n, _ := r.Read(p)

	// no grains have been spawned yet, so the first samples are silent
	for i := 0; i < n; i += 2 {
		fmt.Print(int16(binary.LittleEndian.Uint16(p[i:])), " ")
	}
	fmt.Println()
	// Output: 0 0 0 0
}
