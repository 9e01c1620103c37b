package prefabs

import (
	"image/color"
	"testing"
	"time"

	"github.com/milk9111/reaperrun/component"
	"github.com/milk9111/reaperrun/obj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadWorldSpec(t *testing.T) {
	spec, err := LoadWorldSpec()
	require.NoError(t, err)

	assert.Equal(t, 960, spec.Viewport.Width)
	assert.Equal(t, 350.0, spec.GroundLevel)
	assert.Equal(t, 45, spec.TPS)
	assert.Len(t, spec.Backgrounds, 5)
	require.NotNil(t, spec.HUDColor)

	pc, err := spec.PlayerConfig()
	require.NoError(t, err)
	assert.Equal(t, 10, pc.HP)
	assert.Equal(t, -20.0, pc.JumpForce)
	assert.Equal(t, 350.0, pc.Y)
	assert.Equal(t, time.Second, pc.HitCooldown)
	assert.Equal(t, 300*time.Millisecond, pc.StompCooldown)
	assert.Equal(t, component.AnimationDef{Row: 3, FrameCount: 17, Playback: component.PlayLoop}, pc.Animations[obj.AnimIdle])
	assert.Equal(t, obj.SoundPlayerProjectile, pc.Projectile.Sound)

	boss, err := spec.EnemyConfig("boss")
	require.NoError(t, err)
	assert.Equal(t, obj.KindBoss, boss.Kind)
	assert.Equal(t, 2, boss.Projectile.Cycles)
	assert.Equal(t, obj.SoundReaperFlame, boss.Projectile.Sound)

	last := spec.Spawns[len(spec.Spawns)-1]
	assert.Equal(t, "boss", last.Kind)
	assert.Equal(t, 200.0, spec.SpawnY(last))

	assert.Contains(t, spec.Images(), "player-right.png")
	assert.Contains(t, spec.Images(), "background.png")
	for _, name := range []string{obj.SoundBackgroundMusic, obj.SoundPickup, obj.SoundZombieAttack, obj.SoundBoss} {
		assert.Contains(t, spec.Sounds, name)
	}
}

func TestParseEnemyKind(t *testing.T) {
	kind, err := ParseEnemyKind("zombie-brute")
	require.NoError(t, err)
	assert.Equal(t, obj.KindZombieBrute, kind)

	_, err = ParseEnemyKind("ghost")
	assert.ErrorIs(t, err, ErrUnknownEnemyKind)
}

func TestValidate(t *testing.T) {
	base := func(t *testing.T) *WorldSpec {
		spec, err := LoadWorldSpec()
		require.NoError(t, err)
		return spec
	}

	cases := []struct {
		name   string
		mutate func(*WorldSpec)
		want   error
	}{
		{"unknown_spawn", func(s *WorldSpec) { s.Spawns = append(s.Spawns, SpawnSpec{Kind: "ghost"}) }, ErrUnknownEnemyKind},
		{"missing_animation", func(s *WorldSpec) { delete(s.Player.Animations, "sliding") }, ErrMissingAnimation},
		{"bad_playback", func(s *WorldSpec) {
			s.Player.Animations["idle"] = AnimationDefSpec{Row: 3, Frames: 17, Playback: "bounce"}
		}, ErrUnknownPlayback},
		{"zero_viewport", func(s *WorldSpec) { s.Viewport.Width = 0 }, ErrInvalidWorld},
		{"zero_divider", func(s *WorldSpec) { s.Backgrounds[0].Divider = 0 }, ErrInvalidWorld},
		{"zero_tps", func(s *WorldSpec) { s.TPS = 0 }, ErrInvalidWorld},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			spec := base(t)
			c.mutate(spec)
			assert.ErrorIs(t, spec.Validate(), c.want)
		})
	}
}

func TestYAMLColor(t *testing.T) {
	var out struct {
		C YAMLColor `yaml:"c"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(`c: "#ff800080"`), &out))
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0x80, B: 0x00, A: 0x80}, out.C.Color)

	assert.Error(t, yaml.Unmarshal([]byte(`c: "#fff"`), &out))
}
