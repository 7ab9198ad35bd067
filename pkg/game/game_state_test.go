package game

import (
	"testing"

	"github.com/gonewx/lazerfall/pkg/config"
)

// TestNewGameStateDegraded gdata 不可用时仍可正常使用
func TestNewGameStateDegraded(t *testing.T) {
	gs := NewGameState(nil)

	if gs.GetGdataManager() != nil {
		t.Error("降级模式下 gdata 管理器应为 nil")
	}
	if gs.GetRecordManager() == nil || gs.GetSettingsManager() == nil {
		t.Fatal("记录和设置管理器不应为 nil")
	}
	if gs.ScoreRecord() != 0 {
		t.Errorf("ScoreRecord: got %d, want 0", gs.ScoreRecord())
	}
	if gs.GetSoundPlayer() != nil {
		t.Error("未设置音频管理器时 GetSoundPlayer 应返回 nil 接口")
	}
}

// TestGameStateSessionLifecycle 会话只在局内存在
func TestGameStateSessionLifecycle(t *testing.T) {
	gs := NewGameState(nil)
	if gs.Session() != nil {
		t.Fatal("初始不应存在会话")
	}

	s := gs.StartSession(config.DefaultGameplayConfig())
	if gs.Session() != s {
		t.Error("StartSession 应设置当前会话")
	}

	gs.EndSession()
	if gs.Session() != nil {
		t.Error("EndSession 后会话应被移除")
	}
	gs.EndSession()
}

// TestGameStateRecordPersistsAcrossInstances 记录跨进程保留
func TestGameStateRecordPersistsAcrossInstances(t *testing.T) {
	manager := newTestGdataManager(t, "test_lazerfall_state")

	gs := NewGameState(manager)
	if _, err := gs.GetRecordManager().Submit(40, "abc"); err != nil {
		t.Fatalf("Submit() error: %v", err)
	}

	again := NewGameState(manager)
	if again.ScoreRecord() != 40 {
		t.Errorf("ScoreRecord: got %d, want 40", again.ScoreRecord())
	}
}

type countingSound struct{ played []string }

func (c *countingSound) PlaySound(soundID string) bool {
	c.played = append(c.played, soundID)
	return true
}

// TestGameStateSoundPlayerOverride 终端音效输出优先
func TestGameStateSoundPlayerOverride(t *testing.T) {
	gs := NewGameState(nil)
	sink := &countingSound{}
	gs.SetSoundPlayer(sink)

	sp := gs.GetSoundPlayer()
	if sp == nil {
		t.Fatal("设置音效输出后 GetSoundPlayer 不应为 nil")
	}
	sp.PlaySound(SoundLazer)
	if len(sink.played) != 1 || sink.played[0] != SoundLazer {
		t.Errorf("played: got %v", sink.played)
	}
}
