package game

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// RecordData 最高分记录
type RecordData struct {
	Best      int       `yaml:"best"`      // 最高分
	SessionID string    `yaml:"sessionId"` // 创造记录的会话ID
	UpdatedAt time.Time `yaml:"updatedAt"` // 记录更新时间
}

// 存储路径常量
const (
	recordObject   = "record"
	recordProperty = "best"
)

// RecordManager 最高分记录管理器
//
// 职责：
//   - 启动时从 gdata 加载最高分
//   - 结算时只有得分超过记录才更新并持久化
//
// gdataManager 为 nil 时进入降级模式：记录只保存在内存中
type RecordManager struct {
	gdataManager *gdata.Manager
	record       RecordData
}

// NewRecordManager 创建记录管理器并加载已保存的记录
// 加载失败不是致命错误，记录从 0 开始
func NewRecordManager(gdataManager *gdata.Manager) *RecordManager {
	rm := &RecordManager{gdataManager: gdataManager}
	if err := rm.Load(); err != nil {
		log.Warnf("[RecordManager] Warning: Failed to load record: %v (starting from 0)", err)
	}
	return rm
}

// Load 从 gdata 加载记录
// 记录不存在时返回 nil，记录为 0
func (rm *RecordManager) Load() error {
	rm.record = RecordData{}

	if rm.gdataManager == nil {
		return nil
	}
	if !rm.gdataManager.ObjectPropExists(recordObject, recordProperty) {
		return nil
	}

	data, err := rm.gdataManager.LoadObjectProp(recordObject, recordProperty)
	if err != nil {
		return fmt.Errorf("failed to load record: %w", err)
	}

	var loaded RecordData
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal record: %w", err)
	}
	if loaded.Best < 0 {
		return fmt.Errorf("corrupted record: negative best score %d", loaded.Best)
	}

	rm.record = loaded
	log.Infof("[RecordManager] Record loaded: %d", rm.record.Best)
	return nil
}

// Best 返回当前最高分
func (rm *RecordManager) Best() int {
	return rm.record.Best
}

// Record 返回完整记录
func (rm *RecordManager) Record() RecordData {
	return rm.record
}

// Submit 提交一局的最终得分
//
// 只有 score 严格大于当前记录时才更新并持久化
//
// 参数：
//   - score: 本局得分
//   - sessionID: 本局会话ID
//
// 返回：
//   - bool: 是否刷新了记录
//   - error: 持久化失败时返回错误（内存中的记录仍然会更新）
func (rm *RecordManager) Submit(score int, sessionID string) (bool, error) {
	if score <= rm.record.Best {
		return false, nil
	}

	rm.record = RecordData{
		Best:      score,
		SessionID: sessionID,
		UpdatedAt: time.Now(),
	}

	if err := rm.save(); err != nil {
		return true, err
	}
	log.Infof("[RecordManager] record is saved: %d", score)
	return true, nil
}

// save 将记录写入 gdata（降级模式下直接返回）
func (rm *RecordManager) save() error {
	if rm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(&rm.record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	if err := rm.gdataManager.SaveObjectProp(recordObject, recordProperty, data); err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}
	return nil
}
