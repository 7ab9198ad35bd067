package game

import (
	"testing"
)

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings == nil {
		t.Fatal("DefaultSettings() returned nil")
	}
	if settings.SoundVolume != 100 {
		t.Errorf("SoundVolume: got %v, want 100", settings.SoundVolume)
	}
	if settings.MusicVolume != 100 {
		t.Errorf("MusicVolume: got %v, want 100", settings.MusicVolume)
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)
	if sm == nil {
		t.Fatal("NewSettingsManager(nil) returned nil")
	}

	sm.SetSoundVolume(40)
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should not fail: %v", err)
	}
	if got := sm.GetSettings().SoundVolume; got != 40 {
		t.Errorf("SoundVolume: got %v, want 40", got)
	}
}

// TestSettingsVolumeClamp 测试音量被限制在 0 ~ 100
func TestSettingsVolumeClamp(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"正常值", 55, 55},
		{"下限", 0, 0},
		{"上限", 100, 100},
		{"负数", -10, 0},
		{"超过上限", 250, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := NewSettingsManager(nil)

			sm.SetSoundVolume(tt.input)
			if got := sm.GetSettings().SoundVolume; got != tt.want {
				t.Errorf("SoundVolume: got %v, want %v", got, tt.want)
			}

			sm.SetMusicVolume(tt.input)
			if got := sm.GetSettings().MusicVolume; got != tt.want {
				t.Errorf("MusicVolume: got %v, want %v", got, tt.want)
			}
		})
	}
}

// TestSettingsPersistence 测试设置保存后可以重新加载
func TestSettingsPersistence(t *testing.T) {
	manager := newTestGdataManager(t, "test_lazerfall_settings")

	sm := NewSettingsManager(manager)
	sm.SetSoundVolume(30)
	sm.SetMusicVolume(70)
	sm.SetFullscreen(true)
	if err := sm.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	reloaded := NewSettingsManager(manager)
	settings := reloaded.GetSettings()
	if settings.SoundVolume != 30 {
		t.Errorf("SoundVolume: got %v, want 30", settings.SoundVolume)
	}
	if settings.MusicVolume != 70 {
		t.Errorf("MusicVolume: got %v, want 70", settings.MusicVolume)
	}
	if !settings.Fullscreen {
		t.Error("Fullscreen: got false, want true")
	}
}

// TestSettingsLoadClampsStoredVolume 存档中越界的音量在加载时被修正
func TestSettingsLoadClampsStoredVolume(t *testing.T) {
	manager := newTestGdataManager(t, "test_lazerfall_settings_clamp")

	data := []byte("soundVolume: 300\nmusicVolume: -5\n")
	if err := manager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	sm := NewSettingsManager(manager)
	settings := sm.GetSettings()
	if settings.SoundVolume != 100 {
		t.Errorf("SoundVolume: got %v, want 100", settings.SoundVolume)
	}
	if settings.MusicVolume != 0 {
		t.Errorf("MusicVolume: got %v, want 0", settings.MusicVolume)
	}
}

// TestSettingsLoadCorrupted 损坏的存档回退到默认设置
func TestSettingsLoadCorrupted(t *testing.T) {
	manager := newTestGdataManager(t, "test_lazerfall_settings_corrupt")

	if err := manager.SaveObjectProp(settingsObject, settingsProperty, []byte("{{not yaml")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	sm := NewSettingsManager(manager)
	if got := sm.GetSettings().SoundVolume; got != 100 {
		t.Errorf("SoundVolume: got %v, want default 100", got)
	}
	if err := sm.Load(); err == nil {
		t.Error("Load() should report corrupted settings")
	}
}

// TestVolumeToLinear 测试音量映射
func TestVolumeToLinear(t *testing.T) {
	tests := []struct {
		name   string
		volume float64
		want   float64
	}{
		{"静音", 0, 0},
		{"一半", 50, 0.5},
		{"最大", 100, 1},
		{"越界", 120, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VolumeToLinear(tt.volume); got != tt.want {
				t.Errorf("VolumeToLinear(%v) = %v, want %v", tt.volume, got, tt.want)
			}
		})
	}
}
