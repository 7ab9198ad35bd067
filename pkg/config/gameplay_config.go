package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Size 宽高尺寸
type Size struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// PlayerConfig 玩家飞船参数
type PlayerConfig struct {
	SpawnHeight float64 `yaml:"spawnHeight" toml:"spawnHeight"` // 出生Y坐标
	MoveSpeed   float64 `yaml:"moveSpeed" toml:"moveSpeed"`     // 水平移动速度（像素/秒）
	Health      int     `yaml:"health" toml:"health"`           // 初始生命值
	BodySize    Size    `yaml:"bodySize" toml:"bodySize"`       // 机身碰撞盒
	WingsSize   Size    `yaml:"wingsSize" toml:"wingsSize"`     // 机翼碰撞盒
}

// LazerConfig 激光参数
type LazerConfig struct {
	Speed        float64 `yaml:"speed" toml:"speed"`               // 飞行速度（像素/秒）
	YOffset      float64 `yaml:"yOffset" toml:"yOffset"`           // 相对玩家的发射高度偏移
	Size         Size    `yaml:"size" toml:"size"`                 // 碰撞盒尺寸
	FireCooldown float64 `yaml:"fireCooldown" toml:"fireCooldown"` // 射击冷却（秒）
}

// AsteroidConfig 陨石参数
type AsteroidConfig struct {
	Speed         float64 `yaml:"speed" toml:"speed"`                 // 下落速度（像素/秒）
	SpawnHeight   float64 `yaml:"spawnHeight" toml:"spawnHeight"`     // 生成Y坐标，同时也是激光飞出上边界的高度
	SpawnMinX     float64 `yaml:"spawnMinX" toml:"spawnMinX"`         // 生成区间左边界（也是玩家移动左边界）
	SpawnMaxX     float64 `yaml:"spawnMaxX" toml:"spawnMaxX"`         // 生成区间右边界（也是玩家移动右边界）
	Diameter      float64 `yaml:"diameter" toml:"diameter"`           // 碰撞圆直径
	Damage        int     `yaml:"damage" toml:"damage"`               // 每颗陨石造成的伤害
	SpawnInterval float64 `yaml:"spawnInterval" toml:"spawnInterval"` // 生成间隔（秒）
}

// GameplayConfig 游戏玩法配置
// 所有字段都有默认值，配置文件中缺省的字段保留默认值
type GameplayConfig struct {
	Player           PlayerConfig   `yaml:"player" toml:"player"`
	Lazer            LazerConfig    `yaml:"lazer" toml:"lazer"`
	Asteroid         AsteroidConfig `yaml:"asteroid" toml:"asteroid"`
	ScorePerAsteroid int            `yaml:"scorePerAsteroid" toml:"scorePerAsteroid"`
}

// DefaultGameplayConfig 返回默认玩法配置
func DefaultGameplayConfig() *GameplayConfig {
	return &GameplayConfig{
		Player: PlayerConfig{
			SpawnHeight: -400,
			MoveSpeed:   250,
			Health:      3,
			BodySize:    Size{Width: 34, Height: 75},
			WingsSize:   Size{Width: 99, Height: 35},
		},
		Lazer: LazerConfig{
			Speed:        600,
			YOffset:      40,
			Size:         Size{Width: 9, Height: 37},
			FireCooldown: 0.5,
		},
		Asteroid: AsteroidConfig{
			Speed:         350,
			SpawnHeight:   550,
			SpawnMinX:     -200,
			SpawnMaxX:     200,
			Diameter:      82,
			Damage:        1,
			SpawnInterval: 2.0,
		},
		ScorePerAsteroid: 5,
	}
}

// LoadGameplayConfig 从文件加载玩法配置
//
// 根据扩展名选择格式：.yaml/.yml 使用 YAML，.toml 使用 TOML
//
// 参数：
//   - filePath: 配置文件路径
//
// 返回：
//   - *GameplayConfig: 加载后的配置（缺省字段为默认值）
//   - error: 读取、解析或校验失败时返回错误
func LoadGameplayConfig(filePath string) (*GameplayConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read gameplay config: %w", err)
	}

	cfg, err := ParseGameplayConfig(data, filepath.Ext(filePath))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return cfg, nil
}

// ParseGameplayConfig 解析配置内容
// ext 为文件扩展名（含点号），决定解析格式
func ParseGameplayConfig(data []byte, ext string) (*GameplayConfig, error) {
	cfg := DefaultGameplayConfig()

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse gameplay config YAML: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse gameplay config TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %q (supported: .yaml, .yml, .toml)", ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid gameplay config: %w", err)
	}
	return cfg, nil
}

// Validate 校验配置的有效性
// 所有浮点字段必须是有限值，NaN 会让下面的比较全部失效
func (c *GameplayConfig) Validate() error {
	if err := c.validateFinite(); err != nil {
		return err
	}
	if c.Player.MoveSpeed < 0 {
		return fmt.Errorf("player.moveSpeed must be >= 0, got %v", c.Player.MoveSpeed)
	}
	if c.Player.Health <= 0 {
		return fmt.Errorf("player.health must be > 0, got %d", c.Player.Health)
	}
	if err := validateSize("player.bodySize", c.Player.BodySize); err != nil {
		return err
	}
	if err := validateSize("player.wingsSize", c.Player.WingsSize); err != nil {
		return err
	}

	if c.Lazer.Speed <= 0 {
		return fmt.Errorf("lazer.speed must be > 0, got %v", c.Lazer.Speed)
	}
	if c.Lazer.FireCooldown < 0 {
		return fmt.Errorf("lazer.fireCooldown must be >= 0, got %v", c.Lazer.FireCooldown)
	}
	if err := validateSize("lazer.size", c.Lazer.Size); err != nil {
		return err
	}

	if c.Asteroid.Speed <= 0 {
		return fmt.Errorf("asteroid.speed must be > 0, got %v", c.Asteroid.Speed)
	}
	if c.Asteroid.SpawnHeight <= 0 {
		return fmt.Errorf("asteroid.spawnHeight must be > 0, got %v", c.Asteroid.SpawnHeight)
	}
	if c.Asteroid.SpawnMinX > c.Asteroid.SpawnMaxX {
		return fmt.Errorf("asteroid.spawnMinX (%v) must be <= spawnMaxX (%v)", c.Asteroid.SpawnMinX, c.Asteroid.SpawnMaxX)
	}
	if c.Asteroid.Diameter <= 0 {
		return fmt.Errorf("asteroid.diameter must be > 0, got %v", c.Asteroid.Diameter)
	}
	if c.Asteroid.Damage < 0 {
		return fmt.Errorf("asteroid.damage must be >= 0, got %d", c.Asteroid.Damage)
	}
	if c.Asteroid.SpawnInterval <= 0 {
		return fmt.Errorf("asteroid.spawnInterval must be > 0, got %v", c.Asteroid.SpawnInterval)
	}

	if c.ScorePerAsteroid < 0 {
		return fmt.Errorf("scorePerAsteroid must be >= 0, got %d", c.ScorePerAsteroid)
	}
	return nil
}

// validateFinite 拒绝 NaN 和 ±Inf
func (c *GameplayConfig) validateFinite() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"player.spawnHeight", c.Player.SpawnHeight},
		{"player.moveSpeed", c.Player.MoveSpeed},
		{"player.bodySize.width", c.Player.BodySize.Width},
		{"player.bodySize.height", c.Player.BodySize.Height},
		{"player.wingsSize.width", c.Player.WingsSize.Width},
		{"player.wingsSize.height", c.Player.WingsSize.Height},
		{"lazer.speed", c.Lazer.Speed},
		{"lazer.yOffset", c.Lazer.YOffset},
		{"lazer.size.width", c.Lazer.Size.Width},
		{"lazer.size.height", c.Lazer.Size.Height},
		{"lazer.fireCooldown", c.Lazer.FireCooldown},
		{"asteroid.speed", c.Asteroid.Speed},
		{"asteroid.spawnHeight", c.Asteroid.SpawnHeight},
		{"asteroid.spawnMinX", c.Asteroid.SpawnMinX},
		{"asteroid.spawnMaxX", c.Asteroid.SpawnMaxX},
		{"asteroid.diameter", c.Asteroid.Diameter},
		{"asteroid.spawnInterval", c.Asteroid.SpawnInterval},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%s must be a finite number, got %v", f.name, f.value)
		}
	}
	return nil
}

func validateSize(name string, s Size) error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%s must be positive, got %vx%v", name, s.Width, s.Height)
	}
	return nil
}

// AsteroidRadius 陨石碰撞圆半径
func (c *GameplayConfig) AsteroidRadius() float64 {
	return c.Asteroid.Diameter / 2
}

// Clone 返回配置的深拷贝
func (c *GameplayConfig) Clone() *GameplayConfig {
	cp := *c
	return &cp
}
