package game

import (
	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/lazerfall/pkg/config"
	"github.com/gonewx/lazerfall/pkg/utils"
)

// GdataAppName gdata 存储使用的应用名（决定存档目录）
const GdataAppName = "lazerfall"

// GameState 存储全局游戏状态
// 这是一个单例，用于管理跨场景和跨系统的全局状态数据
//
// 局内资源（得分、计时器、局内状态）放在 GameSession 中，
// 只在游戏场景存在期间有效；最高分记录和设置跨局保留。
type GameState struct {
	gdataManager    *gdata.Manager   // 可为 nil（降级模式）
	recordManager   *RecordManager   // 最高分记录
	settingsManager *SettingsManager // 音量等设置
	audioManager    *AudioManager    // 音频管理器，可为 nil（无声模式）
	soundPlayer     SoundPlayer      // 非 ebiten 前端的音效输出，优先于 audioManager

	session *GameSession // 当前局，主菜单时为 nil
}

// 全局单例实例
var globalGameState *GameState

// GetGameState 返回全局 GameState 单例
// 使用延迟初始化模式；gdata 初始化失败时以降级模式运行
func GetGameState() *GameState {
	if globalGameState == nil {
		globalGameState = NewGameState(openGdataManager())
	}
	return globalGameState
}

// openGdataManager 打开 gdata 存储，失败返回 nil
func openGdataManager() *gdata.Manager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Warnf("[GameState] Warning: storage directory unavailable: %v", err)
	}

	manager, err := gdata.Open(gdata.Config{
		AppName: GdataAppName,
	})
	if err != nil {
		log.Warnf("[GameState] Warning: Failed to init gdata: %v (record and settings will not persist)", err)
		return nil
	}
	if path := utils.StoragePath(); path != "" {
		log.Debugf("[GameState] gdata Manager initialized at %s", path)
	} else {
		log.Debugf("[GameState] gdata Manager initialized")
	}
	return manager
}

// NewGameState 创建 GameState
//
// 参数：
//   - gdataManager: gdata 存储管理器，可为 nil（记录与设置只保存在内存中）
func NewGameState(gdataManager *gdata.Manager) *GameState {
	return &GameState{
		gdataManager:    gdataManager,
		recordManager:   NewRecordManager(gdataManager),
		settingsManager: NewSettingsManager(gdataManager),
	}
}

// GetGdataManager 返回 gdata 管理器（可能为 nil）
func (gs *GameState) GetGdataManager() *gdata.Manager {
	return gs.gdataManager
}

// GetRecordManager 返回记录管理器
func (gs *GameState) GetRecordManager() *RecordManager {
	return gs.recordManager
}

// GetSettingsManager 返回设置管理器
func (gs *GameState) GetSettingsManager() *SettingsManager {
	return gs.settingsManager
}

// SetAudioManager 设置音频管理器
func (gs *GameState) SetAudioManager(am *AudioManager) {
	gs.audioManager = am
}

// GetAudioManager 返回音频管理器（可能为 nil）
func (gs *GameState) GetAudioManager() *AudioManager {
	return gs.audioManager
}

// SetSoundPlayer 设置音效输出（终端前端使用扬声器直接播放）
func (gs *GameState) SetSoundPlayer(sp SoundPlayer) {
	gs.soundPlayer = sp
}

// GetSoundPlayer 返回音效接口，无音频时返回 nil
func (gs *GameState) GetSoundPlayer() SoundPlayer {
	if gs.soundPlayer != nil {
		return gs.soundPlayer
	}
	if gs.audioManager == nil {
		return nil
	}
	return gs.audioManager
}

// ScoreRecord 返回最高分
func (gs *GameState) ScoreRecord() int {
	return gs.recordManager.Best()
}

// StartSession 进入游戏：创建局内资源
func (gs *GameState) StartSession(cfg *config.GameplayConfig) *GameSession {
	gs.session = NewGameSession(cfg)
	log.Infof("[GameState] Session started: %s", gs.session.ID)
	return gs.session
}

// EndSession 退出到主菜单：移除局内资源
func (gs *GameState) EndSession() {
	if gs.session != nil {
		log.Infof("[GameState] Session ended: %s (score %d)", gs.session.ID, gs.session.Score)
	}
	gs.session = nil
}

// Session 返回当前局（主菜单时为 nil）
func (gs *GameState) Session() *GameSession {
	return gs.session
}
