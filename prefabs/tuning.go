package prefabs

import (
	"errors"
	"fmt"
)

// TuningFile is the prefab holding gameplay and scene constants.
const TuningFile = "tuning.yaml"

var ErrInvalidTuning = errors.New("prefabs: invalid tuning")

type Tuning struct {
	Avatar    AvatarSpec    `yaml:"avatar"`
	Lane      LaneSpec      `yaml:"lane"`
	Speed     SpeedSpec     `yaml:"speed"`
	Obstacle  ObstacleSpec  `yaml:"obstacle"`
	Coin      CoinSpec      `yaml:"coin"`
	Collision CollisionSpec `yaml:"collision"`
	Scene     SceneSpec     `yaml:"scene"`
	Announcer AnnouncerSpec `yaml:"announcer"`
}

type AvatarSpec struct {
	GroundY        float64   `yaml:"ground_y"`
	LaunchVelocity float64   `yaml:"launch_velocity"`
	Gravity        float64   `yaml:"gravity"`
	Spin           float64   `yaml:"spin"`
	Size           float64   `yaml:"size"`
	Color          YAMLColor `yaml:"color"`
}

type LaneSpec struct {
	HalfWidth float64 `yaml:"half_width"`
	SpawnZ    float64 `yaml:"spawn_z"`
	ExitZ     float64 `yaml:"exit_z"`
}

type SpeedSpec struct {
	Initial   float64 `yaml:"initial"`
	Step      float64 `yaml:"step"`
	Milestone int     `yaml:"milestone"`
}

type ObstacleSpec struct {
	// Interval is divided by the current speed to get frames between spawns.
	Interval  float64   `yaml:"interval"`
	Y         float64   `yaml:"y"`
	Spin      float64   `yaml:"spin"`
	Width     float64   `yaml:"width"`
	Height    float64   `yaml:"height"`
	Depth     float64   `yaml:"depth"`
	Color     YAMLColor `yaml:"color"`
	PassBonus int       `yaml:"pass_bonus"`
}

type CoinSpec struct {
	Interval float64   `yaml:"interval"`
	MinY     float64   `yaml:"min_y"`
	MaxY     float64   `yaml:"max_y"`
	Spin     float64   `yaml:"spin"`
	Radius   float64   `yaml:"radius"`
	Color    YAMLColor `yaml:"color"`
	Bonus    int       `yaml:"bonus"`
}

type CollisionSpec struct {
	Distance float64 `yaml:"distance"`
}

type CameraSpec struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Z     float64 `yaml:"z"`
	LookX float64 `yaml:"look_x"`
	LookY float64 `yaml:"look_y"`
	LookZ float64 `yaml:"look_z"`
	FOV   float64 `yaml:"fov"`
}

type SceneSpec struct {
	Sky          YAMLColor  `yaml:"sky"`
	Ground       YAMLColor  `yaml:"ground"`
	GroundWidth  float64    `yaml:"ground_width"`
	GroundLength float64    `yaml:"ground_length"`
	FogNear      float64    `yaml:"fog_near"`
	FogFar       float64    `yaml:"fog_far"`
	Clouds       int        `yaml:"clouds"`
	Camera       CameraSpec `yaml:"camera"`
}

type AnnouncerSpec struct {
	Script       string `yaml:"script"`
	BannerFrames int    `yaml:"banner_frames"`
}

// DefaultTuning mirrors the embedded tuning.yaml so callers and tests never
// depend on a file being present.
func DefaultTuning() Tuning {
	return Tuning{
		Avatar: AvatarSpec{
			GroundY:        0.4,
			LaunchVelocity: 0.35,
			Gravity:        -0.02,
			Spin:           0.05,
			Size:           0.8,
			Color:          Hex(0x4169e1),
		},
		Lane: LaneSpec{
			HalfWidth: 2,
			SpawnZ:    -30,
			ExitZ:     10,
		},
		Speed: SpeedSpec{
			Initial:   0.1,
			Step:      0.01,
			Milestone: 10,
		},
		Obstacle: ObstacleSpec{
			Interval:  60,
			Y:         0.75,
			Spin:      0.05,
			Width:     1,
			Height:    1.5,
			Depth:     1,
			Color:     Hex(0xff4444),
			PassBonus: 1,
		},
		Coin: CoinSpec{
			Interval: 100,
			MinY:     1,
			MaxY:     2.5,
			Spin:     0.1,
			Radius:   0.4,
			Color:    Hex(0xffd700),
			Bonus:    5,
		},
		Collision: CollisionSpec{Distance: 1},
		Scene: SceneSpec{
			Sky:          Hex(0x87ceeb),
			Ground:       Hex(0x3a9d23),
			GroundWidth:  10,
			GroundLength: 100,
			FogNear:      10,
			FogFar:       50,
			Clouds:       10,
			Camera:       CameraSpec{X: 0, Y: 3, Z: 8, LookX: 0, LookY: 1, LookZ: 0, FOV: 75},
		},
		Announcer: AnnouncerSpec{
			Script:       "scripts/announcer.tengo",
			BannerFrames: 90,
		},
	}
}

// LoadTuning decodes name from src over DefaultTuning and validates the
// result.
func LoadTuning(src Source, name string) (Tuning, error) {
	t := DefaultTuning()
	if err := DecodeSpec(src, name, &t); err != nil {
		return DefaultTuning(), err
	}
	if err := t.Validate(); err != nil {
		return DefaultTuning(), fmt.Errorf("prefabs: %s: %w", name, err)
	}
	return t, nil
}

func (t Tuning) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidTuning}, args...)...))
		}
	}

	check(t.Avatar.GroundY >= 0, "avatar.ground_y %g is negative", t.Avatar.GroundY)
	check(t.Avatar.LaunchVelocity > 0, "avatar.launch_velocity %g must be positive", t.Avatar.LaunchVelocity)
	check(t.Avatar.Gravity < 0, "avatar.gravity %g must be negative", t.Avatar.Gravity)
	check(t.Lane.HalfWidth >= 0, "lane.half_width %g is negative", t.Lane.HalfWidth)
	check(t.Lane.SpawnZ < t.Lane.ExitZ, "lane.spawn_z %g must be behind lane.exit_z %g", t.Lane.SpawnZ, t.Lane.ExitZ)
	check(t.Speed.Initial > 0, "speed.initial %g must be positive", t.Speed.Initial)
	check(t.Speed.Step >= 0, "speed.step %g is negative", t.Speed.Step)
	check(t.Speed.Milestone > 0, "speed.milestone %d must be positive", t.Speed.Milestone)
	check(t.Obstacle.Interval > 0, "obstacle.interval %g must be positive", t.Obstacle.Interval)
	check(t.Obstacle.PassBonus >= 0, "obstacle.pass_bonus %d is negative", t.Obstacle.PassBonus)
	check(t.Coin.Interval > 0, "coin.interval %g must be positive", t.Coin.Interval)
	check(t.Coin.MinY <= t.Coin.MaxY, "coin.min_y %g above coin.max_y %g", t.Coin.MinY, t.Coin.MaxY)
	check(t.Coin.Bonus >= 0, "coin.bonus %d is negative", t.Coin.Bonus)
	check(t.Collision.Distance > 0, "collision.distance %g must be positive", t.Collision.Distance)
	check(t.Announcer.BannerFrames > 0, "announcer.banner_frames %d must be positive", t.Announcer.BannerFrames)

	return errors.Join(errs...)
}
