package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// TuningFile is the spec file every session is built from.
const TuningFile = "tuning.yaml"

var (
	ErrNonPositiveDuration = errors.New("duration must be positive")
	ErrInvertedFalloff     = errors.New("falloff_end must be greater than falloff_start")
	ErrInvalidValue        = errors.New("invalid value")
)

type TuningSpec struct {
	Name      string        `yaml:"name"`
	Player    PlayerSpec    `yaml:"player"`
	Skull     SkullSpec     `yaml:"skull"`
	Shotgun   ShotgunSpec   `yaml:"shotgun"`
	Explosion ExplosionSpec `yaml:"explosion"`
	Spawner   SpawnerSpec   `yaml:"spawner"`
	Score     ScoreSpec     `yaml:"score"`
	Arena     ArenaSpec     `yaml:"arena"`
	Palette   PaletteSpec   `yaml:"palette"`
}

type PlayerSpec struct {
	MaxSpeed        float64 `yaml:"max_speed"`
	Acceleration    float64 `yaml:"acceleration"`
	TurnRate        float64 `yaml:"turn_rate"`
	Radius          float64 `yaml:"radius"`
	Health          float64 `yaml:"health"`
	Invulnerability float64 `yaml:"invulnerability"`
	DeathTime       float64 `yaml:"death_time"`
}

type SkullSpec struct {
	MaxSpeed       float64 `yaml:"max_speed"`
	Acceleration   float64 `yaml:"acceleration"`
	Radius         float64 `yaml:"radius"`
	Health         float64 `yaml:"health"`
	SteeringScript string  `yaml:"steering_script"`
}

type ShotgunSpec struct {
	FiringTime   float64 `yaml:"firing_time"`
	ReloadTime   float64 `yaml:"reload_time"`
	Damage       float64 `yaml:"damage"`
	FalloffStart float64 `yaml:"falloff_start"`
	FalloffEnd   float64 `yaml:"falloff_end"`
	CastRadius   float64 `yaml:"cast_radius"`
	Range        float64 `yaml:"range"`
}

type ExplosionSpec struct {
	// Radius at scale 1.
	Radius float64 `yaml:"radius"`
	Damage float64 `yaml:"damage"`
}

type SpawnerSpec struct {
	Interval          float64 `yaml:"interval"`
	InitialDelay      float64 `yaml:"initial_delay"`
	InitialSkulls     float64 `yaml:"initial_skulls"`
	AreaRadius        float64 `yaml:"area_radius"`
	MinPlayerDistance float64 `yaml:"min_player_distance"`
	FirstX            float64 `yaml:"first_x"`
	FirstY            float64 `yaml:"first_y"`
}

type ScoreSpec struct {
	PerSkull int64 `yaml:"per_skull"`
	PerChain int64 `yaml:"per_chain"`
}

type ArenaSpec struct {
	HalfTiles int     `yaml:"half_tiles"`
	TileSize  float64 `yaml:"tile_size"`
}

// HalfWidth is the distance from the arena centre to the inner wall face.
func (a ArenaSpec) HalfWidth() float64 {
	return (float64(a.HalfTiles) + 0.5) * a.TileSize
}

// PaletteSpec overrides debug view colours. Unset entries fall back to the
// renderer's defaults.
type PaletteSpec struct {
	Background *YAMLColor `yaml:"background"`
	Player     *YAMLColor `yaml:"player"`
	Skull      *YAMLColor `yaml:"skull"`
	Spawner    *YAMLColor `yaml:"spawner"`
	Explosion  *YAMLColor `yaml:"explosion"`
	Wall       *YAMLColor `yaml:"wall"`
}

// DefaultTuning returns the built-in tuning. A tuning file only needs to set
// the values it changes.
func DefaultTuning() TuningSpec {
	return TuningSpec{
		Name: "default",
		Player: PlayerSpec{
			MaxSpeed:        8,
			Acceleration:    10,
			TurnRate:        0.6,
			Radius:          0.5,
			Health:          100,
			Invulnerability: 1.0,
			DeathTime:       2.5,
		},
		Skull: SkullSpec{
			MaxSpeed:     5,
			Acceleration: 10,
			Radius:       0.5,
			Health:       10,
		},
		Shotgun: ShotgunSpec{
			FiringTime:   0.05,
			ReloadTime:   1.0,
			Damage:       100,
			FalloffStart: 15,
			FalloffEnd:   30,
			CastRadius:   0.3,
			Range:        200,
		},
		Explosion: ExplosionSpec{Radius: 2.5, Damage: 25},
		Spawner: SpawnerSpec{
			Interval:          0.75,
			InitialDelay:      10,
			InitialSkulls:     5,
			AreaRadius:        50,
			MinPlayerDistance: 15,
			FirstX:            0,
			FirstY:            -20,
		},
		Score: ScoreSpec{PerSkull: 150, PerChain: 60},
		Arena: ArenaSpec{HalfTiles: 7, TileSize: 4},
	}
}

// ParseTuning decodes data over the defaults and validates the result.
func ParseTuning(data []byte) (TuningSpec, error) {
	spec := DefaultTuning()
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return TuningSpec{}, fmt.Errorf("prefabs: unmarshal %s: %w", TuningFile, err)
	}
	if err := spec.Validate(); err != nil {
		return TuningSpec{}, fmt.Errorf("prefabs: validate %s: %w", TuningFile, err)
	}
	return spec, nil
}

// LoadTuning loads TuningFile from disk or the embedded copy.
func LoadTuning() (TuningSpec, error) {
	data, err := Load(TuningFile)
	if err != nil {
		return TuningSpec{}, fmt.Errorf("prefabs: load %s: %w", TuningFile, err)
	}
	return ParseTuning(data)
}

func (t TuningSpec) Validate() error {
	durations := []struct {
		name  string
		value float64
	}{
		{"player.invulnerability", t.Player.Invulnerability},
		{"player.death_time", t.Player.DeathTime},
		{"shotgun.firing_time", t.Shotgun.FiringTime},
		{"shotgun.reload_time", t.Shotgun.ReloadTime},
		{"spawner.interval", t.Spawner.Interval},
		{"spawner.initial_delay", t.Spawner.InitialDelay},
	}
	for _, d := range durations {
		if d.value <= 0 {
			return fmt.Errorf("%s: %w", d.name, ErrNonPositiveDuration)
		}
	}

	if t.Shotgun.FalloffEnd <= t.Shotgun.FalloffStart {
		return ErrInvertedFalloff
	}

	positive := []struct {
		name  string
		value float64
	}{
		{"player.max_speed", t.Player.MaxSpeed},
		{"player.radius", t.Player.Radius},
		{"player.health", t.Player.Health},
		{"skull.max_speed", t.Skull.MaxSpeed},
		{"skull.radius", t.Skull.Radius},
		{"skull.health", t.Skull.Health},
		{"shotgun.range", t.Shotgun.Range},
		{"explosion.radius", t.Explosion.Radius},
		{"spawner.area_radius", t.Spawner.AreaRadius},
		{"arena.tile_size", t.Arena.TileSize},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%s must be positive: %w", p.name, ErrInvalidValue)
		}
	}

	if t.Spawner.MinPlayerDistance < 0 || t.Spawner.MinPlayerDistance >= t.Spawner.AreaRadius {
		return fmt.Errorf("spawner.min_player_distance must be within [0, area_radius): %w", ErrInvalidValue)
	}
	if t.Arena.HalfTiles < 0 {
		return fmt.Errorf("arena.half_tiles must not be negative: %w", ErrInvalidValue)
	}
	return nil
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
