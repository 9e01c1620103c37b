package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/milk9111/reaperrun/prefabs"
)

// SampleRate is the rate every sound is resampled to.
const SampleRate = 44100

var ErrUnsupportedFormat = errors.New("audio: unsupported format")

// ReadFunc loads raw sound file bytes by asset path.
type ReadFunc func(path string) ([]byte, error)

type stream interface {
	io.ReadSeeker
	Length() int64
}

// Manager plays the named sound events of the world file. Sounds are decoded
// the first time they are played. Unknown or broken sounds are logged once and
// then ignored.
type Manager struct {
	ctx    *ebaudio.Context
	read   ReadFunc
	sounds map[string]prefabs.AudioSpec

	players map[string]*ebaudio.Player
	failed  map[string]bool
	muted   bool
}

// NewManager creates a manager. ctx may be nil, in which case every sound is
// silently skipped.
func NewManager(ctx *ebaudio.Context, read ReadFunc, sounds map[string]prefabs.AudioSpec, muted bool) *Manager {
	return &Manager{
		ctx:     ctx,
		read:    read,
		sounds:  sounds,
		players: map[string]*ebaudio.Player{},
		failed:  map[string]bool{},
		muted:   muted,
	}
}

// SetSounds swaps the sound table, dropping players for sounds that changed.
func (m *Manager) SetSounds(sounds map[string]prefabs.AudioSpec) {
	for name, p := range m.players {
		if next, ok := sounds[name]; ok && next == m.sounds[name] {
			continue
		}
		p.Pause()
		_ = p.Close()
		delete(m.players, name)
	}
	clear(m.failed)
	m.sounds = sounds
}

// Play restarts the named sound from the beginning. Looping sounds that are
// already playing keep going.
func (m *Manager) Play(name string) {
	if m.muted {
		return
	}
	p := m.player(name)
	if p == nil {
		return
	}
	if m.sounds[name].Loop && p.IsPlaying() {
		return
	}
	if err := p.Rewind(); err != nil {
		log.Printf("audio: rewind %s: %v", name, err)
	}
	p.Play()
}

// Stop pauses the named sound and rewinds it.
func (m *Manager) Stop(name string) {
	p, ok := m.players[name]
	if !ok {
		return
	}
	p.Pause()
	_ = p.Rewind()
}

// StopAll pauses every sound that has been played.
func (m *Manager) StopAll() {
	for name := range m.players {
		m.Stop(name)
	}
}

func (m *Manager) Muted() bool { return m.muted }

// SetMuted silences every player without stopping it.
func (m *Manager) SetMuted(muted bool) {
	m.muted = muted
	for name, p := range m.players {
		p.SetVolume(m.volume(name))
	}
}

// ToggleMute flips the mute flag and returns the new value.
func (m *Manager) ToggleMute() bool {
	m.SetMuted(!m.muted)
	return m.muted
}

func (m *Manager) volume(name string) float64 {
	if m.muted {
		return 0
	}
	v := m.sounds[name].Volume
	if v <= 0 {
		return 1
	}
	return v
}

func (m *Manager) player(name string) *ebaudio.Player {
	if p, ok := m.players[name]; ok {
		return p
	}
	if m.failed[name] || m.ctx == nil {
		return nil
	}
	spec, ok := m.sounds[name]
	if !ok {
		log.Printf("audio: unknown sound %q", name)
		m.failed[name] = true
		return nil
	}
	p, err := m.newPlayer(spec)
	if err != nil {
		log.Printf("audio: load %s: %v", name, err)
		m.failed[name] = true
		return nil
	}
	p.SetVolume(m.volume(name))
	m.players[name] = p
	return p
}

func (m *Manager) newPlayer(spec prefabs.AudioSpec) (*ebaudio.Player, error) {
	b, err := m.read(spec.File)
	if err != nil {
		return nil, err
	}
	s, err := decode(m.ctx.SampleRate(), spec.File, b)
	if err != nil {
		return nil, err
	}
	var src io.Reader = s
	if spec.Loop {
		src = ebaudio.NewInfiniteLoop(s, s.Length())
	}
	return m.ctx.NewPlayer(src)
}

func decode(sampleRate int, path string, b []byte) (stream, error) {
	reader := bytes.NewReader(b)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		s, err := mp3.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("decode mp3 %q: %w", path, err)
		}
		return s, nil
	case ".wav":
		s, err := wav.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("decode wav %q: %w", path, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}
