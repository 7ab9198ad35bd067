package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultGameplayConfig(t *testing.T) {
	cfg := DefaultGameplayConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	if cfg.Player.SpawnHeight != -400 {
		t.Errorf("Player.SpawnHeight = %v, want -400", cfg.Player.SpawnHeight)
	}
	if cfg.Player.Health != 3 {
		t.Errorf("Player.Health = %d, want 3", cfg.Player.Health)
	}
	if cfg.Asteroid.SpawnMinX != -200 || cfg.Asteroid.SpawnMaxX != 200 {
		t.Errorf("spawn lane = [%v, %v], want [-200, 200]", cfg.Asteroid.SpawnMinX, cfg.Asteroid.SpawnMaxX)
	}
	if cfg.AsteroidRadius() != 41 {
		t.Errorf("AsteroidRadius() = %v, want 41", cfg.AsteroidRadius())
	}
	if cfg.ScorePerAsteroid != 5 {
		t.Errorf("ScorePerAsteroid = %d, want 5", cfg.ScorePerAsteroid)
	}
}

func TestParseGameplayConfig(t *testing.T) {
	tests := []struct {
		name        string
		ext         string
		content     string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *GameplayConfig)
	}{
		{
			name: "YAML 部分覆盖",
			ext:  ".yaml",
			content: `
asteroid:
  speed: 500
  spawnInterval: 1.5
scorePerAsteroid: 10
`,
			validate: func(t *testing.T, cfg *GameplayConfig) {
				if cfg.Asteroid.Speed != 500 {
					t.Errorf("Asteroid.Speed = %v, want 500", cfg.Asteroid.Speed)
				}
				if cfg.Asteroid.SpawnInterval != 1.5 {
					t.Errorf("Asteroid.SpawnInterval = %v, want 1.5", cfg.Asteroid.SpawnInterval)
				}
				if cfg.ScorePerAsteroid != 10 {
					t.Errorf("ScorePerAsteroid = %d, want 10", cfg.ScorePerAsteroid)
				}
				// 未出现的字段保留默认值
				if cfg.Asteroid.Diameter != 82 {
					t.Errorf("Asteroid.Diameter = %v, want default 82", cfg.Asteroid.Diameter)
				}
				if cfg.Player.MoveSpeed != 250 {
					t.Errorf("Player.MoveSpeed = %v, want default 250", cfg.Player.MoveSpeed)
				}
			},
		},
		{
			name: "TOML 格式",
			ext:  ".toml",
			content: `
scorePerAsteroid = 7

[player]
health = 5

[lazer]
fireCooldown = 0.25

[lazer.size]
width = 4
height = 20
`,
			validate: func(t *testing.T, cfg *GameplayConfig) {
				if cfg.Player.Health != 5 {
					t.Errorf("Player.Health = %d, want 5", cfg.Player.Health)
				}
				if cfg.Lazer.FireCooldown != 0.25 {
					t.Errorf("Lazer.FireCooldown = %v, want 0.25", cfg.Lazer.FireCooldown)
				}
				if cfg.Lazer.Size.Width != 4 || cfg.Lazer.Size.Height != 20 {
					t.Errorf("Lazer.Size = %+v, want 4x20", cfg.Lazer.Size)
				}
				if cfg.ScorePerAsteroid != 7 {
					t.Errorf("ScorePerAsteroid = %d, want 7", cfg.ScorePerAsteroid)
				}
			},
		},
		{
			name:        "不支持的扩展名",
			ext:         ".json",
			content:     `{}`,
			wantErr:     true,
			errContains: "unsupported config format",
		},
		{
			name:        "YAML 语法错误",
			ext:         ".yml",
			content:     "player: [unclosed",
			wantErr:     true,
			errContains: "failed to parse",
		},
		{
			name: "生成区间颠倒",
			ext:  ".yaml",
			content: `
asteroid:
  spawnMinX: 100
  spawnMaxX: -100
`,
			wantErr:     true,
			errContains: "spawnMinX",
		},
		{
			name:        "生成间隔为 NaN",
			ext:         ".yaml",
			content:     "asteroid:\n  spawnInterval: .nan\n",
			wantErr:     true,
			errContains: "asteroid.spawnInterval must be a finite number",
		},
		{
			name:        "生成区间左边界为 NaN",
			ext:         ".yaml",
			content:     "asteroid:\n  spawnMinX: .nan\n",
			wantErr:     true,
			errContains: "asteroid.spawnMinX must be a finite number",
		},
		{
			name:        "陨石速度为 +Inf",
			ext:         ".yaml",
			content:     "asteroid:\n  speed: .inf\n",
			wantErr:     true,
			errContains: "asteroid.speed must be a finite number",
		},
		{
			name:        "TOML 机身宽度为 -inf",
			ext:         ".toml",
			content:     "[player.bodySize]\nwidth = -inf\n",
			wantErr:     true,
			errContains: "player.bodySize.width must be a finite number",
		},
		{
			name:        "生命值为零",
			ext:         ".yaml",
			content:     "player:\n  health: 0\n",
			wantErr:     true,
			errContains: "player.health",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseGameplayConfig([]byte(tt.content), tt.ext)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q should contain %q", err.Error(), tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadGameplayConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gameplay.yaml")
	if err := os.WriteFile(path, []byte("lazer:\n  speed: 900\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadGameplayConfig(path)
	if err != nil {
		t.Fatalf("LoadGameplayConfig() error: %v", err)
	}
	if cfg.Lazer.Speed != 900 {
		t.Errorf("Lazer.Speed = %v, want 900", cfg.Lazer.Speed)
	}

	if _, err := LoadGameplayConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadRepositoryGameplayConfig(t *testing.T) {
	// 仓库自带的配置文件必须与默认值一致
	cfg, err := LoadGameplayConfig("../../data/gameplay.yaml")
	if err != nil {
		t.Fatalf("LoadGameplayConfig(data/gameplay.yaml) error: %v", err)
	}
	if *cfg != *DefaultGameplayConfig() {
		t.Errorf("data/gameplay.yaml differs from defaults:\n got %+v\nwant %+v", *cfg, *DefaultGameplayConfig())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	cfg := DefaultGameplayConfig()
	cp := cfg.Clone()
	cp.Asteroid.Speed = 1

	if cfg.Asteroid.Speed == 1 {
		t.Error("Clone should not share state with the original")
	}
}
