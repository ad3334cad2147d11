package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var (
	ErrNotImplemented = errors.New("not implemented")

	// ErrQuit ends a runner loop without reporting an error.
	ErrQuit = errors.New("quit")
)

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGBA8888 is 32bpp, bytes in R, G, B, A order.
	PixelFormatRGBA8888 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook. Its size may
// change between frames when the host window or terminal is resized.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
)

// KeyEvent is a keyboard event. Text input arrives with Code KeyUnknown and
// the typed Rune.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer.
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// Time provides a base tick stream of one tick per millisecond.
//
// Runners advance it; in headless mode it follows the frame rate, not the
// wall clock.
type Time interface {
	Ticks() <-chan uint64
}

// Cue is a short sound played on a scene event.
type Cue uint8

const (
	CueLoad Cue = iota
	CueDismantle
	CueRebuild
	CueSettle
)

// Audio plays cues. Implementations never block the caller.
type Audio interface {
	Play(c Cue)
	Close() error
}

// HAL is the only contact point between voxport and the host.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Audio() Audio
	Time() Time
}

// Config selects the host surface. Zero values pick defaults.
type Config struct {
	Title  string
	Width  int // framebuffer pixels
	Height int
	Scale  int // window pixels per framebuffer pixel
	Hz     int // frames per second
	Ticks  uint64
	Mute   bool

	// LogPath receives log lines in terminal mode, where stdout belongs to
	// the screen. Empty discards them.
	LogPath string
}

func (c Config) withDefaults() Config {
	if c.Title == "" {
		c.Title = "voxport"
	}
	if c.Width <= 0 {
		c.Width = 640
	}
	if c.Height <= 0 {
		c.Height = 400
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.Hz <= 0 {
		c.Hz = 60
	}
	return c
}

// App is created once per run and returns the per-frame step function.
type App func(HAL) func() error
