package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/star-snake/internal/config"
)

const sampleRate = beep.SampleRate(44100)

// Player plays sound effects without blocking the caller.
type Player interface {
	Play(e Effect)
}

// Nop is a Player that stays silent.
type Nop struct{}

// Play does nothing.
func (Nop) Play(Effect) {}

// SoundManager plays effects on the system speaker through a shared mixer.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	logger      *log.Logger
	initialized bool
}

// NewSoundManager creates a sound manager; call Initialize before playing.
func NewSoundManager(volume float64, logger *log.Logger) *SoundManager {
	if logger == nil {
		logger = log.Default()
	}
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
		logger: logger,
	}
}

// Initialize opens the speaker.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play mixes the effect into whatever is already sounding.
func (sm *SoundManager) Play(e Effect) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s, err := NewStreamer(e, sampleRate, sm.volume)
	if err != nil {
		sm.logger.Warn("cannot play sound", "effect", e, "err", err)
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Close stops all sounds and releases the speaker.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// New returns a Player for the given settings. Audio that is disabled,
// muted or unavailable yields a Nop player; the returned close func is
// always safe to call.
func New(cfg config.AudioConfig, mute bool, logger *log.Logger) (Player, func()) {
	if logger == nil {
		logger = log.Default()
	}
	if mute || !cfg.Enabled || cfg.Volume <= 0 {
		return Nop{}, func() {}
	}

	sm := NewSoundManager(cfg.Volume, logger)
	if err := sm.Initialize(); err != nil {
		logger.Warn("audio disabled", "err", err)
		return Nop{}, func() {}
	}
	return sm, sm.Close
}
