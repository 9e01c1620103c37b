package system

import (
	"image/color"
	"testing"

	"github.com/benbjohnson/clock"
	"github.com/milk9111/reaperrun/common"
	"github.com/milk9111/reaperrun/obj"
	"github.com/milk9111/reaperrun/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type keys map[obj.Key]bool

func (k keys) Pressed(key obj.Key) bool { return k[key] }
func (k keys) Idle() bool               { return len(k) == 0 }

type recordingSound struct{ played []string }

func (s *recordingSound) Play(name string) { s.played = append(s.played, name) }
func (s *recordingSound) Stop(string)      {}

type recordingLifecycle struct{ gameOvers, wins int }

func (l *recordingLifecycle) OnGameOver() { l.gameOvers++ }
func (l *recordingLifecycle) OnWin()      { l.wins++ }

type recordingSurface struct{ ops []string }

func (s *recordingSurface) DrawSprite(sheet string, src, dst common.Rect) {
	s.ops = append(s.ops, "sprite:"+sheet)
}
func (s *recordingSurface) FillRect(common.Rect, color.Color)   { s.ops = append(s.ops, "fill") }
func (s *recordingSurface) StrokeRect(common.Rect, color.Color) { s.ops = append(s.ops, "stroke") }
func (s *recordingSurface) DrawText(str string, x, y float64)   { s.ops = append(s.ops, "text:"+str) }

type fixture struct {
	world *World
	clock *clock.Mock
	sound *recordingSound
	life  *recordingLifecycle
}

// newFixture builds a world from the embedded spec. Unless full is set the
// scripted spawns and crystals are dropped so tests can place their own.
func newFixture(t *testing.T, full bool) *fixture {
	t.Helper()
	spec, err := prefabs.LoadWorldSpec()
	require.NoError(t, err)
	if !full {
		spec.Spawns = nil
		spec.Crystals.Positions = nil
	}

	f := &fixture{clock: clock.NewMock(), sound: &recordingSound{}, life: &recordingLifecycle{}}
	f.world, err = NewWorld(spec, Options{Clock: f.clock, Sound: f.sound, Lifecycle: f.life})
	require.NoError(t, err)
	return f
}

func (f *fixture) tickUntil(in obj.Input, limit int, cond func() bool) bool {
	for i := 0; i < limit; i++ {
		f.world.Update(in)
		if cond() {
			return true
		}
	}
	return false
}

func TestNewWorldSpawnsFromSpec(t *testing.T) {
	f := newFixture(t, true)
	w := f.world

	assert.Len(t, w.Enemies(), len(w.Spec.Spawns))
	assert.Len(t, w.Crystals(), len(w.Spec.Crystals.Positions))
	require.Len(t, w.Backgrounds(), 5)
	for _, row := range w.Backgrounds() {
		assert.Len(t, row, obj.BackgroundTilesPerRow)
	}
	assert.Equal(t, 200.0, w.Player().X)
	assert.Equal(t, []string{obj.SoundBackgroundMusic}, f.sound.played)

	boss := w.Enemies()[len(w.Enemies())-1]
	assert.Equal(t, obj.KindBoss, boss.Kind)
	assert.Equal(t, 200.0, boss.Y)
}

func TestNewWorldRejectsUnknownKind(t *testing.T) {
	spec, err := prefabs.LoadWorldSpec()
	require.NoError(t, err)
	spec.Spawns = []prefabs.SpawnSpec{{Kind: "ghost", X: 10}}

	_, err = NewWorld(spec, Options{})
	assert.ErrorIs(t, err, prefabs.ErrUnknownEnemyKind)
}

func TestWorldScrollsAroundPlayer(t *testing.T) {
	f := newFixture(t, false)
	w := f.world
	e, err := w.AddEnemy("zombie", 2000, 350)
	require.NoError(t, err)
	c := w.AddCrystal(900, 400)

	w.Update(keys{obj.KeyRight: true})
	require.Equal(t, obj.PlayerRunRight, w.Player().State())

	assert.Equal(t, 200.0, w.Player().X)
	assert.Equal(t, 1995.0, e.X)
	assert.Equal(t, 2020.0, e.Hitbox.X)
	assert.Equal(t, 895.0, c.X)
	assert.Equal(t, -2.0, w.Backgrounds()[0][0].X)
	assert.Equal(t, -5.0, w.Backgrounds()[4][0].X)
}

func TestResolveCombatStomp(t *testing.T) {
	f := newFixture(t, false)
	w := f.world
	p := w.Player()

	p.Bounce()
	require.True(t, f.tickUntil(keys{}, 100, func() bool { return p.State() == obj.PlayerDescending }))

	e, err := w.AddEnemy("zombie", 200, 350)
	require.NoError(t, err)
	p.Y = 280
	p.Hitbox.Update()

	ResolveCombat(p, w.Enemies(), w.Spec.SideTolerance)
	assert.Equal(t, 1, e.HP.Current)
	assert.Equal(t, obj.EnemyHurt, e.State())
	assert.Equal(t, obj.PlayerAscending, p.State())
	assert.Equal(t, -20.0, p.VelocityY)
	assert.True(t, p.StompOnCooldown())
	assert.Equal(t, 10, p.HP.Current, "a stomp never hurts the player")
}

func TestResolveCombatSideContact(t *testing.T) {
	f := newFixture(t, false)
	w := f.world
	p := w.Player()
	e, err := w.AddEnemy("zombie", 210, 350)
	require.NoError(t, err)

	ResolveCombat(p, w.Enemies(), w.Spec.SideTolerance)
	assert.Equal(t, 9, p.HP.Current)
	assert.Equal(t, obj.PlayerHurt, p.State())
	assert.Equal(t, 1, e.HP.Current)

	ResolveCombat(p, w.Enemies(), w.Spec.SideTolerance)
	assert.Equal(t, 9, p.HP.Current, "player is still on hit cooldown")
	assert.Equal(t, 1, e.HP.Current)
}

func TestResolveCombatIgnoresDyingEnemies(t *testing.T) {
	f := newFixture(t, false)
	w := f.world
	p := w.Player()
	e, err := w.AddEnemy("zombie", 210, 350)
	require.NoError(t, err)
	e.HP.Set(0)
	e.Update()
	require.Equal(t, obj.EnemyDying, e.State())

	ResolveCombat(p, w.Enemies(), w.Spec.SideTolerance)
	assert.Equal(t, 10, p.HP.Current)
}

func TestWorldPrunesDeadEnemies(t *testing.T) {
	f := newFixture(t, false)
	w := f.world
	zombie, err := w.AddEnemy("zombie", 2000, 350)
	require.NoError(t, err)
	boss, err := w.AddEnemy("boss", 2600, 200)
	require.NoError(t, err)
	zombie.HP.Set(0)
	boss.HP.Set(0)

	require.True(t, f.tickUntil(keys{}, 100, func() bool { return len(w.Enemies()) == 0 }))
	assert.True(t, zombie.IsDead)
	assert.True(t, boss.IsDead)
	assert.Equal(t, 1, f.life.wins)

	for i := 0; i < 10; i++ {
		w.Update(keys{})
	}
	assert.Equal(t, 1, f.life.wins)
}

func TestWorldCrystalPickup(t *testing.T) {
	f := newFixture(t, false)
	w := f.world
	c := w.AddCrystal(230, 380)

	w.Update(keys{})
	assert.True(t, c.IsPickedUp)
	assert.Equal(t, 1, w.Player().Crystals.Current)
	assert.Len(t, w.Crystals(), 1, "pruned on the next tick")
	assert.Contains(t, f.sound.played, obj.SoundPickup)

	w.Update(keys{})
	assert.Empty(t, w.Crystals())
}

func TestWorldGameOver(t *testing.T) {
	f := newFixture(t, false)
	w := f.world
	w.Player().HP.Set(0)

	for i := 0; i < 100; i++ {
		w.Update(keys{obj.KeyRight: true})
	}
	assert.Equal(t, obj.PlayerDying, w.Player().State())
	assert.Equal(t, 1, f.life.gameOvers)
}

func TestWorldDrawOrder(t *testing.T) {
	f := newFixture(t, false)
	w := f.world
	_, err := w.AddEnemy("zombie", 2000, 350)
	require.NoError(t, err)
	w.AddCrystal(900, 400)

	s := &recordingSurface{}
	w.Draw(s)

	require.Len(t, s.ops, 20)
	for _, op := range s.ops[:15] {
		assert.Contains(t, []string{
			"sprite:background.png", "sprite:layer-first.png", "sprite:layer-second.png",
			"sprite:layer-third.png", "sprite:layer-fourth.png",
		}, op)
	}
	assert.Equal(t, []string{
		"sprite:zombie-left.png",
		"sprite:player-right.png",
		"text:HP: 10",
		"text:Crystals: 0",
		"sprite:crystals.png",
	}, s.ops[15:])
}

func TestWorldDrawIsReadOnly(t *testing.T) {
	f := newFixture(t, true)
	w := f.world
	w.debug = true
	for i := 0; i < 5; i++ {
		w.Update(keys{obj.KeyRight: true})
	}

	p := *w.Player()
	e := *w.Enemies()[0]
	bg := *w.Backgrounds()[0][0]
	w.Draw(&recordingSurface{})

	assert.Equal(t, p.X, w.Player().X)
	assert.Equal(t, p.Y, w.Player().Y)
	assert.Equal(t, p.Anim, w.Player().Anim)
	assert.Equal(t, e.X, w.Enemies()[0].X)
	assert.Equal(t, e.Anim, w.Enemies()[0].Anim)
	assert.Equal(t, bg, *w.Backgrounds()[0][0])
}

func TestWorldReset(t *testing.T) {
	f := newFixture(t, true)
	w := f.world
	for i := 0; i < 20; i++ {
		w.Update(keys{obj.KeyRight: true})
	}
	require.NoError(t, w.Reset())
	assert.Equal(t, obj.PlayerIdle, w.Player().State())
	assert.Equal(t, w.Spec.Spawns[0].X, w.Enemies()[0].X)
}
