package hal

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

const cueSampleRate = beep.SampleRate(44100)

type nullAudio struct{}

func (nullAudio) Play(Cue)     {}
func (nullAudio) Close() error { return nil }

// cueStreamer synthesizes c. Every cue is finite.
func cueStreamer(c Cue, sr beep.SampleRate) beep.Streamer {
	switch c {
	case CueLoad:
		return tone(sr, 660, 60*time.Millisecond)
	case CueDismantle:
		return beep.Take(sr.N(300*time.Millisecond), newSweep(sr, 420, 90, 300*time.Millisecond))
	case CueRebuild:
		return beep.Take(sr.N(250*time.Millisecond), newSweep(sr, 180, 720, 250*time.Millisecond))
	case CueSettle:
		return beep.Seq(
			tone(sr, 880, 50*time.Millisecond),
			beep.Silence(sr.N(30*time.Millisecond)),
			tone(sr, 1320, 70*time.Millisecond),
		)
	}
	return beep.Silence(0)
}

func tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return beep.Silence(sr.N(d))
	}
	return beep.Take(sr.N(d), &gain{s: sine, g: 0.2})
}

type gain struct {
	s beep.Streamer
	g float64
}

func (g *gain) Stream(samples [][2]float64) (int, bool) {
	n, ok := g.s.Stream(samples)
	for i := range samples[:n] {
		samples[i][0] *= g.g
		samples[i][1] *= g.g
	}
	return n, ok
}

func (g *gain) Err() error { return g.s.Err() }

// sweep glides from one frequency to another with a fade-out envelope.
type sweep struct {
	sr       beep.SampleRate
	from, to float64
	samples  int
	pos      int
	phase    float64
}

func newSweep(sr beep.SampleRate, from, to float64, d time.Duration) *sweep {
	return &sweep{sr: sr, from: from, to: to, samples: max(sr.N(d), 1)}
}

func (g *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		k := math.Min(float64(g.pos)/float64(g.samples), 1)
		freq := g.from + (g.to-g.from)*k
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		amp := 0.2 * (1 - k)
		s := amp * math.Sin(g.phase)
		samples[i][0] = s
		samples[i][1] = s
		g.pos++
	}
	return len(samples), true
}

func (g *sweep) Err() error { return nil }

// cueMixer is the shared mixing core of the audio sinks.
type cueMixer struct {
	mu    sync.Mutex
	sr    beep.SampleRate
	mixer *beep.Mixer
}

func newCueMixer(sr beep.SampleRate) *cueMixer {
	return &cueMixer{sr: sr, mixer: &beep.Mixer{}}
}

func (m *cueMixer) add(c Cue) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mixer.Add(cueStreamer(c, m.sr))
}

func (m *cueMixer) Stream(samples [][2]float64) (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mixer.Stream(samples)
}

func (m *cueMixer) Err() error { return nil }

func (m *cueMixer) clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mixer.Clear()
}

// readStereo16 fills p with 16-bit little-endian stereo frames pulled from s.
// It always fills whole frames and returns the byte count.
func readStereo16(s beep.Streamer, p []byte, tmp [][2]float64) int {
	frames := len(p) / 4
	if frames == 0 {
		return 0
	}
	if cap(tmp) < frames {
		tmp = make([][2]float64, frames)
	}
	tmp = tmp[:frames]
	n, _ := s.Stream(tmp)
	for i := n; i < frames; i++ {
		tmp[i] = [2]float64{}
	}
	for i, f := range tmp {
		l := pcm16(f[0])
		r := pcm16(f[1])
		p[i*4+0] = byte(l)
		p[i*4+1] = byte(l >> 8)
		p[i*4+2] = byte(r)
		p[i*4+3] = byte(r >> 8)
	}
	return frames * 4
}

func pcm16(v float64) int16 {
	if v > 1 {
		v = 1
	}
	if v < -1 {
		v = -1
	}
	return int16(v * math.MaxInt16)
}
