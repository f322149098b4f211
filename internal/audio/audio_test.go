package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

const testRate = beep.SampleRate(8000)

// drain streams s to the end and returns the number of samples and the peak.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 256)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			for _, ch := range smp {
				if ch > peak {
					peak = ch
				}
				if -ch > peak {
					peak = -ch
				}
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never ended")
	return 0, 0
}

func TestOscillatorLengthAndRange(t *testing.T) {
	for _, wave := range []Wave{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 100, 50*time.Millisecond, wave, testRate)
		n, peak := drain(t, osc)
		assert.Equal(t, testRate.N(50*time.Millisecond), n, "wave %d", wave)
		assert.LessOrEqual(t, peak, 1.0)
		assert.NoError(t, osc.Err())
	}
}

func TestEnvelopeFadesEdges(t *testing.T) {
	osc := NewOscillator(0, 0, 100*time.Millisecond, WaveSquare, testRate)
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, testRate)

	buf := make([][2]float64, testRate.N(100*time.Millisecond))
	n, _ := env.Stream(buf)
	require.Equal(t, len(buf), n)

	assert.Equal(t, 0.0, buf[0][0], "attack starts silent")
	assert.Equal(t, 1.0, buf[n/2][0], "sustain at full level")
	assert.Less(t, buf[n-1][0], 0.05, "release ends near silence")
}

func TestEffectsAreFinite(t *testing.T) {
	for _, s := range []core.Sound{core.SoundWing, core.SoundPoint, core.SoundHit, core.SoundDie, core.SoundSwoosh} {
		n, peak := drain(t, Effect(s, testRate, 1))
		assert.Greater(t, n, 0, "%s is audible", s)
		assert.Less(t, n, testRate.N(time.Second), "%s is short", s)
		assert.LessOrEqual(t, peak, 1.0, "%s does not clip", s)
	}

	_, peak := drain(t, Effect(core.SoundHit, testRate, 0))
	assert.Equal(t, 0.0, peak, "zero volume is silent")
}

func TestMixerPriorityCompletion(t *testing.T) {
	done := 0
	m := newMixer(config.Audio{Enabled: true, Volume: 0.5, SampleRate: int(testRate)}, func() { done++ }, nil)

	m.Play(core.SoundRequest{Sound: core.SoundHit, Priority: true})
	assert.True(t, m.PriorityBusy())

	m.Play(core.SoundRequest{Sound: core.SoundHit, Priority: true})
	assert.Equal(t, 1, m.out.Len(), "second priority request dropped while busy")

	m.Play(core.SoundRequest{Sound: core.SoundPoint})
	assert.Equal(t, 2, m.out.Len(), "regular effects overlap")

	buf := make([][2]float64, testRate.N(time.Second))
	m.out.Stream(buf)

	assert.Equal(t, 1, done, "completion reported once")
	assert.False(t, m.PriorityBusy())

	m.Play(core.SoundRequest{Sound: core.SoundHit, Priority: true})
	assert.True(t, m.PriorityBusy(), "channel reusable after completion")

	require.NoError(t, m.Close())
	assert.Equal(t, 0, m.out.Len())
	m.Play(core.SoundRequest{Sound: core.SoundWing})
	assert.Equal(t, 0, m.out.Len(), "closed mixer ignores requests")
	assert.NoError(t, m.Close())
}

func TestSilentCompletesPriorityImmediately(t *testing.T) {
	q := core.NewEventQueue()
	s := Silent{OnPriorityDone: func() { q.Push(core.EventPriorityFinished) }}

	PlayAll(s, []core.SoundRequest{
		{Sound: core.SoundWing},
		{Sound: core.SoundHit, Priority: true},
	})

	assert.Equal(t, []core.Event{core.EventPriorityFinished}, q.Drain())
	assert.NoError(t, s.Close())

	Silent{}.Play(core.SoundRequest{Sound: core.SoundHit, Priority: true})
}
