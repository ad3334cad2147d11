//go:build cgo

package hal

import (
	"sync"
	"time"

	"github.com/gopxl/beep/speaker"
)

// speakerAudio plays cues through beep's speaker. Initialization is lazy so
// a machine without a sound device only loses the cues.
type speakerAudio struct {
	once sync.Once
	ok   bool
	mix  *cueMixer
}

func newSpeakerAudio() Audio {
	return &speakerAudio{mix: newCueMixer(cueSampleRate)}
}

func (a *speakerAudio) init() {
	a.once.Do(func() {
		if err := speaker.Init(cueSampleRate, cueSampleRate.N(time.Second/10)); err != nil {
			return
		}
		speaker.Play(a.mix)
		a.ok = true
	})
}

func (a *speakerAudio) Play(c Cue) {
	a.init()
	if !a.ok {
		return
	}
	a.mix.add(c)
}

func (a *speakerAudio) Close() error {
	if !a.ok {
		return nil
	}
	a.mix.clear()
	speaker.Close()
	return nil
}
