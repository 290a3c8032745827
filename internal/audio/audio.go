// Package audio plays the procedural music and sound effects through
// ebiten's audio context.
package audio

import (
	"io"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"chosenoffset.com/gridcaster/internal/audio/synth"
	"chosenoffset.com/gridcaster/internal/logger"
)

var (
	menuMusic = synth.Tone{Freq: 440, Amplitude: 0.2}
	gameMusic = synth.Tone{Freq: 220, Amplitude: 0.2}
	footstep  = synth.Tone{Freq: 800, Duration: 100 * time.Millisecond}
	success   = synth.Tone{Freq: 880, Duration: time.Second}
	death     = synth.Tone{Freq: 110, Duration: 2 * time.Second}
	damage    = synth.Tone{Freq: 1000, Duration: 300 * time.Millisecond}
)

const (
	menuVolume = 0.3
	gameVolume = 0.2
	sfxVolume  = 0.6
)

// System owns the music player and the currently playing sound effects.
type System struct {
	ctx       *audio.Context
	music     *audio.Player
	sfx       []*audio.Player
	footsteps synth.Throttle

	musicBase   float64
	musicVolume float64
	sfxVolume   float64
}

// NewSystem creates the audio context. Only one System may exist per
// process.
func NewSystem() *System {
	return &System{
		ctx:         audio.NewContext(synth.SampleRate),
		footsteps:   synth.Throttle{Interval: 300 * time.Millisecond},
		musicVolume: 1,
		sfxVolume:   sfxVolume,
	}
}

// PlayMenuMusic replaces the current music with the menu tone.
func (s *System) PlayMenuMusic() {
	s.playMusic(menuMusic, menuVolume)
}

// PlayGameMusic replaces the current music with the in-game tone.
func (s *System) PlayGameMusic() {
	s.playMusic(gameMusic, gameVolume)
}

// PlayFootstep plays a footstep unless one played within the last 0.3s.
func (s *System) PlayFootstep() {
	if !s.footsteps.Allow(time.Now()) {
		return
	}
	s.playEffect(footstep)
}

// PlaySuccess plays the level complete sound.
func (s *System) PlaySuccess() { s.playEffect(success) }

// PlayDeath plays the game over sound.
func (s *System) PlayDeath() { s.playEffect(death) }

// PlayDamage plays the hurt sound.
func (s *System) PlayDamage() { s.playEffect(damage) }

// SetMusicVolume scales the music volume in [0, 1].
func (s *System) SetMusicVolume(v float64) {
	s.musicVolume = v
	if s.music != nil {
		s.music.SetVolume(v * s.musicBase)
	}
}

// SetSFXVolume sets the volume of effects started from now on.
func (s *System) SetSFXVolume(v float64) {
	s.sfxVolume = v
}

// StopAll stops the music and every running effect.
func (s *System) StopAll() {
	s.stopMusic()
	for _, p := range s.sfx {
		closePlayer(p)
	}
	s.sfx = s.sfx[:0]
}

func (s *System) playMusic(t synth.Tone, volume float64) {
	s.stopMusic()

	p, err := s.newPlayer(synth.NewStream(t))
	if err != nil {
		return
	}
	p.SetVolume(volume * s.musicVolume)
	p.Play()
	s.music = p
	s.musicBase = volume
}

func (s *System) stopMusic() {
	if s.music != nil {
		closePlayer(s.music)
		s.music = nil
	}
}

func (s *System) playEffect(t synth.Tone) {
	s.reapEffects()

	p, err := s.newPlayer(synth.NewStream(t))
	if err != nil {
		return
	}
	p.SetVolume(s.sfxVolume)
	p.Play()
	s.sfx = append(s.sfx, p)
}

// reapEffects closes effect players that have finished.
func (s *System) reapEffects() {
	live := s.sfx[:0]
	for _, p := range s.sfx {
		if p.IsPlaying() {
			live = append(live, p)
			continue
		}
		closePlayer(p)
	}
	s.sfx = live
}

func (s *System) newPlayer(src io.Reader) (*audio.Player, error) {
	p, err := s.ctx.NewPlayer(src)
	if err != nil {
		logger.Log.WithError(err).Warn("failed to create audio player")
		return nil, err
	}
	return p, nil
}

func closePlayer(p *audio.Player) {
	if err := p.Close(); err != nil {
		logger.Log.WithError(err).Debug("failed to close audio player")
	}
}
