package game

// SoundPlayer is the audio the game triggers on state changes and events.
type SoundPlayer interface {
	PlayMenuMusic()
	PlayGameMusic()
	PlayFootstep()
	PlaySuccess()
	PlayDeath()
	PlayDamage()
	StopAll()
}

// silentSound is used when audio is disabled or failed to start.
type silentSound struct{}

func (silentSound) PlayMenuMusic() {}
func (silentSound) PlayGameMusic() {}
func (silentSound) PlayFootstep()  {}
func (silentSound) PlaySuccess()   {}
func (silentSound) PlayDeath()     {}
func (silentSound) PlayDamage()    {}
func (silentSound) StopAll()       {}

// Message represents an on-screen message that fades over time.
type Message struct {
	Text     string
	TimeLeft float64 // Seconds remaining
	MaxTime  float64 // Initial duration
}
