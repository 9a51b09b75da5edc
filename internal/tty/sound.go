package tty

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	bumpFreq     = 220
	bumpDuration = 40 * time.Millisecond
)

// Beeper plays a short low tone through the system speaker.
type Beeper struct {
	sr beep.SampleRate
}

// NewBeeper opens the speaker. Callers treat a failure as "no sound".
func NewBeeper() (*Beeper, error) {
	sr := beep.SampleRate(44100)
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &Beeper{sr: sr}, nil
}

// Bump plays the blocked-move tone without waiting for it to finish.
func (b *Beeper) Bump() {
	sine, err := generators.SineTone(b.sr, bumpFreq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(b.sr.N(bumpDuration), sine))
}

// Close releases the speaker.
func (b *Beeper) Close() {
	speaker.Close()
}
