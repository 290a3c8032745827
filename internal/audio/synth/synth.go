// Package synth generates procedural sine tones as 16-bit little-endian
// stereo PCM, the sample layout the ebiten audio player consumes.
package synth

import (
	"io"
	"math"
	"time"
)

const (
	// SampleRate is the output sample rate in Hz.
	SampleRate = 44100
	// Channels is the number of interleaved output channels.
	Channels = 2
	// BytesPerSample is the size of one channel sample.
	BytesPerSample = 2
	// FrameBytes is the size of one interleaved frame.
	FrameBytes = Channels * BytesPerSample

	// fadeFrames ramps the start and end of finite tones to avoid clicks.
	fadeFrames = 256
)

// Tone describes a sine tone. A zero Duration plays forever.
type Tone struct {
	Freq      float64
	Duration  time.Duration
	Amplitude float64
}

// Frames returns the number of frames the tone lasts, or -1 if it is
// endless.
func (t Tone) Frames() int64 {
	if t.Duration <= 0 {
		return -1
	}
	return int64(t.Duration.Seconds() * SampleRate)
}

// Stream renders a tone on demand.
type Stream struct {
	tone  Tone
	total int64
	pos   int64
	amp   float64
	carry []byte
}

// NewStream returns a reader producing the tone's PCM bytes.
func NewStream(t Tone) *Stream {
	amp := t.Amplitude
	if amp <= 0 || amp > 1 {
		amp = 0.5
	}
	return &Stream{tone: t, total: t.Frames(), amp: amp}
}

// Read fills p with whole frames. Finite tones end with io.EOF.
func (s *Stream) Read(p []byte) (int, error) {
	n := 0
	if len(s.carry) > 0 {
		n = copy(p, s.carry)
		s.carry = s.carry[n:]
		if n == len(p) {
			return n, nil
		}
	}

	var frame [FrameBytes]byte
	for n < len(p) {
		if s.total >= 0 && s.pos >= s.total {
			if n == 0 {
				return 0, io.EOF
			}
			return n, nil
		}

		v := int16(s.sample(s.pos) * math.MaxInt16)
		s.pos++
		for ch := 0; ch < Channels; ch++ {
			frame[ch*BytesPerSample] = byte(v)
			frame[ch*BytesPerSample+1] = byte(v >> 8)
		}

		c := copy(p[n:], frame[:])
		n += c
		if c < FrameBytes {
			s.carry = append(s.carry[:0], frame[c:]...)
		}
	}
	return n, nil
}

// sample returns the value of frame i in [-1, 1].
func (s *Stream) sample(i int64) float64 {
	phase := 2 * math.Pi * s.tone.Freq * float64(i) / SampleRate
	v := math.Sin(phase) * s.amp

	if s.total < 0 {
		return v
	}
	if i < fadeFrames {
		v *= float64(i) / fadeFrames
	}
	if rem := s.total - i; rem < fadeFrames {
		v *= float64(rem) / fadeFrames
	}
	return v
}

// Throttle lets an event through at most once per interval.
type Throttle struct {
	Interval time.Duration
	last     time.Time
}

// Allow reports whether an event at now may fire and records it if so.
func (t *Throttle) Allow(now time.Time) bool {
	if !t.last.IsZero() && now.Sub(t.last) < t.Interval {
		return false
	}
	t.last = now
	return true
}
