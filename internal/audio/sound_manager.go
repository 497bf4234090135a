// Package audio plays the ambient camp loop and short gameplay cues.
// Audio is optional: every method is a no-op until Initialize succeeds.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager owns the speaker mixer and the ambient loop.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	ambient     *beep.Ctrl
	initialized bool
}

// NewSoundManager creates a silent manager.
func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker. A failure means playback is blocked by the
// environment; callers log it and carry on silently.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: playback blocked: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything. The manager can be initialized again.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.ambient = nil
	sm.initialized = false
}

// StartAmbient starts the camp loop, or resumes it if paused.
func (sm *SoundManager) StartAmbient() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	if sm.ambient != nil {
		sm.ambient.Paused = false
		return
	}
	// The campfire generator never ends, so no Loop is needed
	sm.ambient = newAmbient(sampleRate, 1)
	sm.mixer.Add(sm.ambient)
}

// StopAmbient pauses the camp loop.
func (sm *SoundManager) StopAmbient() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.ambient == nil {
		return
	}
	speaker.Lock()
	sm.ambient.Paused = true
	speaker.Unlock()
}

// PlayThrow plays a short rising whoosh.
func (sm *SoundManager) PlayThrow() {
	sm.play(newThrowCue(sampleRate))
}

// PlayHit plays a wet splat.
func (sm *SoundManager) PlayHit() {
	sm.play(newHitCue(sampleRate, time.Now().UnixNano()))
}

// PlayCaught plays a falling two-step sting.
func (sm *SoundManager) PlayCaught() {
	sm.play(newCaughtCue(sampleRate))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// newAmbient wraps the endless campfire in a Ctrl so game over can pause it.
func newAmbient(sr beep.SampleRate, seed int64) *beep.Ctrl {
	return &beep.Ctrl{Streamer: NewCampfireGenerator(sr, seed)}
}

func newThrowCue(sr beep.SampleRate) beep.Streamer {
	return beep.Take(sr.N(120*time.Millisecond), NewSweepGenerator(sr, 300, 900, 0.15))
}

// newHitCue layers the splat noise under a short low sweep.
func newHitCue(sr beep.SampleRate, seed int64) beep.Streamer {
	return beep.Take(sr.N(200*time.Millisecond), beep.Mix(
		NewSplatGenerator(sr, seed),
		NewSweepGenerator(sr, 160, 60, 0.1),
	))
}

// newCaughtCue drops a fourth, then slides down to the low A.
func newCaughtCue(sr beep.SampleRate) beep.Streamer {
	return beep.Seq(
		beep.Take(sr.N(250*time.Millisecond), NewSweepGenerator(sr, 440, 330, 0.25)),
		beep.Take(sr.N(450*time.Millisecond), NewSweepGenerator(sr, 330, 110, 0.25)),
	)
}

// SweepGenerator glides a sine from one pitch to another with a fade out.
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	volume   float64
	length   int
	pos      int
	phase    float64
}

// NewSweepGenerator creates a sweep over roughly half a second.
func NewSweepGenerator(sr beep.SampleRate, from, to, volume float64) *SweepGenerator {
	return &SweepGenerator{
		sr:     sr,
		from:   from,
		to:     to,
		volume: volume,
		length: sr.N(500 * time.Millisecond),
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.length), 1)
		freq := g.from + (g.to-g.from)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		sample := g.volume * (1 - progress) * math.Sin(g.phase)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// SplatGenerator is a decaying noise burst over a low thump.
type SplatGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

// NewSplatGenerator creates a splat seeded for its noise.
func NewSplatGenerator(sr beep.SampleRate, seed int64) *SplatGenerator {
	return &SplatGenerator{sr: sr, seed: seed}
}

func (g *SplatGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * 18)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1
		thump := math.Sin(2 * math.Pi * 90 * t)

		sample := envelope * (0.3*noise + 0.25*thump)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SplatGenerator) Err() error {
	return nil
}

// CampfireGenerator loops a low drone with sparse crackles.
type CampfireGenerator struct {
	sr    beep.SampleRate
	pos   int
	seed  int64
	spark float64 // Current crackle amplitude
}

// NewCampfireGenerator creates the ambient loop.
func NewCampfireGenerator(sr beep.SampleRate, seed int64) *CampfireGenerator {
	return &CampfireGenerator{sr: sr, seed: seed}
}

func (g *CampfireGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		r := float64(g.seed) / float64(0x7fffffff)
		if r > 0.9997 {
			g.spark = 0.2
		}
		g.spark *= 0.995

		drone := 0.04 * math.Sin(2*math.Pi*55*t) * (0.7 + 0.3*math.Sin(2*math.Pi*0.2*t))
		sample := drone + g.spark*(r*2-1)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *CampfireGenerator) Err() error {
	return nil
}
