package window

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// SampleRate is the audio context rate. Clips are 16-bit stereo PCM.
const SampleRate = 44100

const (
	wallHitFreq   = 440
	paddleHitFreq = 660
	clipLength    = 60 * time.Millisecond
	fadeLength    = 15 * time.Millisecond
)

// Tones plays short synthesised beeps for game events.
type Tones struct {
	ctx    *audio.Context
	clips  map[pong.Event][]byte
	volume float64
	logger *log.Logger
}

// NewTones creates a tone player on the process-wide audio context.
func NewTones(volume float64, logger *log.Logger) *Tones {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(SampleRate)
	}
	return &Tones{
		ctx: ctx,
		clips: map[pong.Event][]byte{
			pong.EventWallHit:   Tone(wallHitFreq, clipLength, SampleRate),
			pong.EventPaddleHit: Tone(paddleHitFreq, clipLength, SampleRate),
		},
		volume: math.Max(0, math.Min(1, volume)),
		logger: logger,
	}
}

// Play starts the clip for e and returns immediately.
func (t *Tones) Play(e pong.Event) {
	clip, ok := t.clips[e]
	if !ok {
		return
	}
	p := t.ctx.NewPlayerFromBytes(clip)
	p.SetVolume(t.volume)
	p.Play()
	if t.logger != nil {
		t.logger.Debug("tone", "event", e)
	}
}

// Tone renders a square wave as little-endian 16-bit stereo PCM with a
// linear fade-out to avoid a click at the end.
func Tone(freq float64, d time.Duration, rate int) []byte {
	frames := int(math.Round(d.Seconds() * float64(rate)))
	fade := max(1, int(math.Round(fadeLength.Seconds()*float64(rate))))
	buf := make([]byte, frames*4)

	const amplitude = 0.3 * math.MaxInt16
	for i := range frames {
		phase := math.Mod(float64(i)*freq/float64(rate), 1)
		v := amplitude
		if phase >= 0.5 {
			v = -amplitude
		}
		if left := frames - i; left < fade {
			v *= float64(left) / float64(fade)
		}

		s := uint16(int16(v))
		binary.LittleEndian.PutUint16(buf[i*4:], s)
		binary.LittleEndian.PutUint16(buf[i*4+2:], s)
	}
	return buf
}
