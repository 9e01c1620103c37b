package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// WorldFile is the prefab that describes a whole session.
const WorldFile = "world.yaml"

var (
	ErrUnknownEnemyKind = errors.New("prefabs: unknown enemy kind")
	ErrUnknownPlayback  = errors.New("prefabs: unknown playback")
	ErrMissingAnimation = errors.New("prefabs: missing animation")
	ErrInvalidWorld     = errors.New("prefabs: invalid world")
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadWorldSpec loads and validates world.yaml.
func LoadWorldSpec() (*WorldSpec, error) {
	spec, err := LoadSpec[WorldSpec](WorldFile)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: validate %s: %w", WorldFile, err)
	}
	return &spec, nil
}

type WorldSpec struct {
	Name          string               `yaml:"name"`
	Viewport      ViewportSpec         `yaml:"viewport"`
	GroundLevel   float64              `yaml:"ground_level"`
	Gravity       float64              `yaml:"gravity"`
	ScrollFactor  float64              `yaml:"scroll_factor"`
	SideTolerance float64              `yaml:"side_tolerance"`
	TPS           int                  `yaml:"tps"`
	HUDColor      *YAMLColor           `yaml:"hud_color"`
	Player        PlayerSpec           `yaml:"player"`
	Enemies       map[string]EnemySpec `yaml:"enemies"`
	Spawns        []SpawnSpec          `yaml:"spawns"`
	Crystals      CrystalSpec          `yaml:"crystals"`
	Backgrounds   []BackgroundSpec     `yaml:"backgrounds"`
	Sounds        map[string]AudioSpec `yaml:"sounds"`
}

type ViewportSpec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type PlayerSpec struct {
	X          float64                     `yaml:"x"`
	Width      float64                     `yaml:"width"`
	Height     float64                     `yaml:"height"`
	HP         int                         `yaml:"hp"`
	Crystals   int                         `yaml:"crystals"`
	Speed      float64                     `yaml:"speed"`
	JumpForce  float64                     `yaml:"jump_force"`
	DashSpeed  float64                     `yaml:"dash_speed"`
	Hitbox     HitboxSpec                  `yaml:"hitbox"`
	Sprite     SpriteSpec                  `yaml:"sprite"`
	Animations map[string]AnimationDefSpec `yaml:"animations"`
	Cooldowns  PlayerCooldownSpec          `yaml:"cooldowns"`
	Projectile ProjectileSpec              `yaml:"projectile"`
}

type PlayerCooldownSpec struct {
	Hit   time.Duration `yaml:"hit"`
	Slide time.Duration `yaml:"slide"`
	Stomp time.Duration `yaml:"stomp"`
}

type EnemySpec struct {
	Width      float64                     `yaml:"width"`
	Height     float64                     `yaml:"height"`
	HP         int                         `yaml:"hp"`
	Speed      float64                     `yaml:"speed"`
	AggroRange float64                     `yaml:"aggro_range"`
	Hitbox     HitboxSpec                  `yaml:"hitbox"`
	Sprite     SpriteSpec                  `yaml:"sprite"`
	Animations map[string]AnimationDefSpec `yaml:"animations"`
	Cooldowns  EnemyCooldownSpec           `yaml:"cooldowns"`
	Projectile *ProjectileSpec             `yaml:"projectile"`
}

type EnemyCooldownSpec struct {
	Attack time.Duration `yaml:"attack"`
	Hurt   time.Duration `yaml:"hurt"`
}

type ProjectileSpec struct {
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
	Speed  float64    `yaml:"speed"`
	Hitbox HitboxSpec `yaml:"hitbox"`
	Sprite SpriteSpec `yaml:"sprite"`
	Row    int        `yaml:"row"`
	LoopAt int        `yaml:"loop_at"`
	LoopTo int        `yaml:"loop_to"`
	Cycles int        `yaml:"cycles"`
	Sound  string     `yaml:"sound"`
}

type SpawnSpec struct {
	Kind string   `yaml:"kind"`
	X    float64  `yaml:"x"`
	Y    *float64 `yaml:"y"`
}

type CrystalSpec struct {
	Width     float64        `yaml:"width"`
	Height    float64        `yaml:"height"`
	Inset     float64        `yaml:"inset"`
	Sprite    SpriteSpec     `yaml:"sprite"`
	Positions []PositionSpec `yaml:"positions"`
}

type PositionSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type BackgroundSpec struct {
	Image   string  `yaml:"image"`
	Divider float64 `yaml:"divider"`
}

type AudioSpec struct {
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
	Loop   bool    `yaml:"loop"`
}

type SpriteSpec struct {
	Right       string  `yaml:"right"`
	Left        string  `yaml:"left"`
	FrameWidth  float64 `yaml:"frame_width"`
	FrameHeight float64 `yaml:"frame_height"`
	MaxFrame    int     `yaml:"max_frame"`
	FrameTicks  int     `yaml:"frame_ticks"`
}

type AnimationDefSpec struct {
	Row      int    `yaml:"row"`
	Frames   int    `yaml:"frames"`
	Playback string `yaml:"playback"`
}

type HitboxSpec struct {
	OffsetX      float64 `yaml:"offset_x"`
	OffsetY      float64 `yaml:"offset_y"`
	OffsetWidth  float64 `yaml:"offset_width"`
	OffsetHeight float64 `yaml:"offset_height"`
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
