package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Wave defines oscillator wave shapes.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length tone. A non-zero slide moves the
// frequency linearly to freq+slide over the tone's duration.
type oscillator struct {
	freq     float64
	slide    float64
	phase    float64
	duration int
	position int
	wave     Wave
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a tone generator.
func NewOscillator(freq, slide float64, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		slide:    slide,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq*1000) + int64(duration))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq + o.slide*float64(o.position)/float64(o.duration)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope wraps s with a linear attack/release envelope.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.release > 0 && e.position >= e.total-e.release {
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly by vol. Zero silences it.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func tone(freq, slide float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(freq, slide, d, wave, rate)
	return NewEnvelope(osc, d, 5*time.Millisecond, d/2, rate)
}

// Effect synthesizes the streamer for a sound at the given linear volume.
func Effect(s core.Sound, rate beep.SampleRate, volume float64) beep.Streamer {
	var st beep.Streamer
	switch s {
	case core.SoundWing:
		st = beep.Mix(
			newVolume(tone(0, 0, 90*time.Millisecond, WaveNoise, rate), 0.3),
			newVolume(tone(380, 260, 90*time.Millisecond, WaveSine, rate), 0.5),
		)
	case core.SoundPoint:
		st = beep.Seq(
			tone(987.77, 0, 70*time.Millisecond, WaveSquare, rate),
			tone(1318.51, 0, 160*time.Millisecond, WaveSquare, rate),
		)
		volume *= 0.5
	case core.SoundHit:
		st = beep.Mix(
			newVolume(tone(110, -40, 180*time.Millisecond, WaveSaw, rate), 0.55),
			newVolume(tone(0, 0, 60*time.Millisecond, WaveNoise, rate), 0.35),
		)
	case core.SoundDie:
		st = tone(520, -380, 420*time.Millisecond, WaveSquare, rate)
		volume *= 0.5
	case core.SoundSwoosh:
		st = newVolume(tone(0, 0, 220*time.Millisecond, WaveNoise, rate), 0.4)
	default:
		st = beep.Silence(0)
	}
	return newVolume(st, volume)
}
