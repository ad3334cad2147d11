//go:build cgo

package hal

import (
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// ebitenAudio plays cues through the window's audio context; a process may
// only open one.
type ebitenAudio struct {
	once   sync.Once
	player *audio.Player
	mix    *cueMixer
}

func newEbitenAudio() Audio {
	return &ebitenAudio{mix: newCueMixer(cueSampleRate)}
}

func (a *ebitenAudio) init() {
	a.once.Do(func() {
		ctx := audio.NewContext(int(cueSampleRate))
		p, err := ctx.NewPlayer(&mixReader{m: a.mix})
		if err != nil {
			return
		}
		p.SetBufferSize(100 * time.Millisecond)
		p.Play()
		a.player = p
	})
}

func (a *ebitenAudio) Play(c Cue) {
	a.init()
	if a.player == nil {
		return
	}
	a.mix.add(c)
}

func (a *ebitenAudio) Close() error {
	if a.player == nil {
		return nil
	}
	a.mix.clear()
	return a.player.Close()
}

// mixReader adapts the mixer to the byte stream ebiten expects: 16-bit
// little-endian stereo. The mixer yields silence when idle.
type mixReader struct {
	m   *cueMixer
	tmp [][2]float64
}

func (r *mixReader) Read(p []byte) (int, error) {
	if frames := len(p) / 4; cap(r.tmp) < frames {
		r.tmp = make([][2]float64, frames)
	}
	return readStereo16(r.m, p, r.tmp), nil
}
