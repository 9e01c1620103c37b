package audio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/reaperrun/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSounds() map[string]prefabs.AudioSpec {
	return map[string]prefabs.AudioSpec{
		"backgroundMusic": {File: "music.mp3", Volume: 0.3, Loop: true},
		"pickup":          {File: "pickup.wav", Volume: 0.7},
	}
}

func TestManagerWithoutContextIsSilent(t *testing.T) {
	reads := 0
	m := NewManager(nil, func(string) ([]byte, error) {
		reads++
		return nil, nil
	}, testSounds(), false)

	assert.NotPanics(t, func() {
		m.Play("backgroundMusic")
		m.Play("nope")
		m.Stop("backgroundMusic")
		m.StopAll()
	})
	assert.Zero(t, reads)
}

func TestManagerMute(t *testing.T) {
	m := NewManager(nil, nil, testSounds(), true)
	assert.True(t, m.Muted())
	assert.Zero(t, m.volume("pickup"))

	assert.False(t, m.ToggleMute())
	assert.InDelta(t, 0.7, m.volume("pickup"), 1e-9)
	assert.InDelta(t, 1.0, m.volume("unknown"), 1e-9)

	assert.True(t, m.ToggleMute())
}

func TestDecodeRejectsUnknownFormat(t *testing.T) {
	_, err := decode(SampleRate, "music.ogg", []byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = decode(SampleRate, "broken.wav", []byte("nope"))
	assert.Error(t, err)
}

func TestSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reaperrun", "settings.yaml")

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.False(t, s.Muted)

	require.NoError(t, SaveSettings(path, Settings{Muted: true}))
	s, err = LoadSettings(path)
	require.NoError(t, err)
	assert.True(t, s.Muted)

	require.NoError(t, os.WriteFile(path, []byte("muted: ["), 0o644))
	_, err = LoadSettings(path)
	assert.Error(t, err)
}
