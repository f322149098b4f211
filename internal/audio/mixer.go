package audio

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Mixer plays effects through the speaker. Regular effects overlap freely;
// the priority channel holds one effect at a time and reports completion
// through onPriorityDone, which runs on the audio goroutine.
type Mixer struct {
	rate   beep.SampleRate
	volume float64
	out    *beep.Mixer
	logger *log.Logger

	lock, unlock func()
	device       bool

	busy           atomic.Bool
	closed         atomic.Bool
	onPriorityDone func()
}

// NewMixer initialises the speaker and starts playback of the mix.
func NewMixer(cfg config.Audio, onPriorityDone func(), logger *log.Logger) (*Mixer, error) {
	m := newMixer(cfg, onPriorityDone, logger)

	if err := speaker.Init(m.rate, m.rate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: cannot init speaker: %w", err)
	}
	m.lock, m.unlock = speaker.Lock, speaker.Unlock
	m.device = true
	speaker.Play(m.out)

	m.logger.Debug("audio ready", "sample_rate", int(m.rate))
	return m, nil
}

// newMixer builds a mixer that is not attached to a device.
func newMixer(cfg config.Audio, onPriorityDone func(), logger *log.Logger) *Mixer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	var mu sync.Mutex
	return &Mixer{
		rate:           beep.SampleRate(cfg.SampleRate),
		volume:         cfg.Volume,
		out:            &beep.Mixer{},
		logger:         logger,
		lock:           mu.Lock,
		unlock:         mu.Unlock,
		onPriorityDone: onPriorityDone,
	}
}

// Play implements Sink. A priority request made while the priority channel
// is busy is dropped.
func (m *Mixer) Play(req core.SoundRequest) {
	if m.closed.Load() {
		return
	}

	s := Effect(req.Sound, m.rate, m.volume)
	if req.Priority {
		if !m.busy.CompareAndSwap(false, true) {
			m.logger.Debug("priority channel busy, dropping", "sound", req.Sound)
			return
		}
		s = beep.Seq(s, beep.Callback(m.priorityDone))
	}

	m.lock()
	m.out.Add(s)
	m.unlock()
}

func (m *Mixer) priorityDone() {
	m.busy.Store(false)
	if m.onPriorityDone != nil {
		m.onPriorityDone()
	}
}

// PriorityBusy reports whether the priority channel is playing.
func (m *Mixer) PriorityBusy() bool {
	return m.busy.Load()
}

// Close stops all sounds and releases the device.
func (m *Mixer) Close() error {
	if m.closed.Swap(true) {
		return nil
	}
	m.lock()
	m.out.Clear()
	m.unlock()
	if m.device {
		speaker.Close()
	}
	return nil
}
