// Package audio plays short sound cues over beep's speaker.
package audio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
	"go.uber.org/zap"

	"github.com/Faultbox/gldemos/internal/logger"
)

// DefaultSampleRate is the default sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// ErrNotInitialized is returned by Play before Init succeeds.
var ErrNotInitialized = errors.New("audio not initialized")

// ErrUnknownCue is returned by Play for a name that was never registered.
var ErrUnknownCue = errors.New("unknown cue")

// Manager owns the speaker and a set of named, pre-decoded cues.
type Manager struct {
	mu sync.RWMutex

	initialized bool
	sampleRate  beep.SampleRate
	volume      float64
	muted       bool

	mixer *beep.Mixer
	cues  map[string]*beep.Buffer
	log   *zap.Logger
}

// New creates a new audio manager.
func New() *Manager {
	return &Manager{
		sampleRate: DefaultSampleRate,
		volume:     1.0,
		mixer:      &beep.Mixer{},
		cues:       make(map[string]*beep.Buffer),
		log:        logger.Named("audio"),
	}
}

// Init opens the audio device.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(m.mixer)

	m.initialized = true
	m.log.Info("audio initialized", zap.Int("sample_rate", int(m.sampleRate)))
	return nil
}

// Close stops playback. Registered cues survive.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	m.initialized = false
}

// IsInitialized returns whether the audio system is initialized.
func (m *Manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// SetVolume sets the cue volume (0.0 to 1.0).
func (m *Manager) SetVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = clamp(vol, 0, 1)
}

// Volume returns the cue volume.
func (m *Manager) Volume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.volume
}

// SetMuted silences every cue without forgetting the volume.
func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
}

// Muted reports whether cues are silenced.
func (m *Manager) Muted() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.muted
}

// Has reports whether a cue is registered under name.
func (m *Manager) Has(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.cues[name]
	return ok
}

// CueLength returns the cue length in samples, or 0 if unknown.
func (m *Manager) CueLength(name string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if b, ok := m.cues[name]; ok {
		return b.Len()
	}
	return 0
}

// RegisterTone stores a generated tone as a cue.
func (m *Manager) RegisterTone(name string, freq float64, d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cues[name] = m.buffer(Tone(m.sampleRate, freq, d))
}

// LoadWAV decodes WAV data into a cue, resampling to the speaker rate.
func (m *Manager) LoadWAV(name string, r io.Reader) error {
	streamer, format, err := wav.Decode(r)
	if err != nil {
		return fmt.Errorf("decode wav: %w", err)
	}
	defer streamer.Close()

	m.mu.Lock()
	defer m.mu.Unlock()

	var s beep.Streamer = streamer
	if format.SampleRate != m.sampleRate {
		s = beep.Resample(4, format.SampleRate, m.sampleRate, streamer)
	}
	m.cues[name] = m.buffer(s)
	return nil
}

// LoadWAVFile is LoadWAV for a file on disk.
func (m *Manager) LoadWAVFile(name, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open cue: %w", err)
	}
	defer f.Close()
	return m.LoadWAV(name, f)
}

// Play starts a registered cue. Cues mix, so overlapping plays are fine.
func (m *Manager) Play(name string) error {
	m.mu.RLock()
	initialized := m.initialized
	vol := m.volume
	muted := m.muted
	buf, ok := m.cues[name]
	m.mu.RUnlock()

	if !initialized {
		return ErrNotInitialized
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCue, name)
	}
	if muted || vol <= 0 {
		return nil
	}

	cue := &effects.Volume{
		Streamer: buf.Streamer(0, buf.Len()),
		Base:     2,
		Volume:   volumeToDb(vol) / dbPerDoubling,
	}
	speaker.Lock()
	m.mixer.Add(cue)
	speaker.Unlock()
	return nil
}

func (m *Manager) buffer(s beep.Streamer) *beep.Buffer {
	buf := beep.NewBuffer(beep.Format{SampleRate: m.sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(s)
	return buf
}

// Tone generates a sine wave with a linear fade-out, the same on both
// channels.
func Tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	total := sr.N(d)
	pos := 0
	gen := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			t := float64(pos) / float64(sr)
			env := 1 - float64(pos)/float64(total)
			v := 0.5 * env * math.Sin(2*math.Pi*freq*t)
			samples[i] = [2]float64{v, v}
			pos++
		}
		return len(samples), true
	})
	return beep.Take(total, gen)
}

// dbPerDoubling converts decibels to the base-2 exponent effects.Volume uses.
const dbPerDoubling = 6.0206

// volumeToDb converts a 0-1 volume to decibels: 1 is 0 dB, 0.5 about -6 dB.
func volumeToDb(vol float64) float64 {
	if vol <= 0 {
		return -100
	}
	return 20 * math.Log10(vol)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
