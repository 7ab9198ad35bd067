package game

import (
	"testing"
)

// TestRecordManagerNilGdata 降级模式下记录只保存在内存中
func TestRecordManagerNilGdata(t *testing.T) {
	rm := NewRecordManager(nil)
	if rm.Best() != 0 {
		t.Fatalf("Best: got %d, want 0", rm.Best())
	}

	updated, err := rm.Submit(15, "session-a")
	if err != nil {
		t.Fatalf("Submit() error: %v", err)
	}
	if !updated || rm.Best() != 15 {
		t.Errorf("Submit(15): updated=%v best=%d, want true/15", updated, rm.Best())
	}
}

// TestRecordManagerSubmit 只有严格大于记录的得分才会刷新
func TestRecordManagerSubmit(t *testing.T) {
	tests := []struct {
		name        string
		initial     int
		score       int
		wantUpdated bool
		wantBest    int
	}{
		{"首次得分", 0, 10, true, 10},
		{"零分不刷新", 0, 0, false, 0},
		{"等于记录不刷新", 20, 20, false, 20},
		{"低于记录不刷新", 20, 5, false, 20},
		{"超过记录", 20, 25, true, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rm := NewRecordManager(nil)
			if tt.initial > 0 {
				rm.Submit(tt.initial, "seed")
			}

			updated, err := rm.Submit(tt.score, "session")
			if err != nil {
				t.Fatalf("Submit() error: %v", err)
			}
			if updated != tt.wantUpdated {
				t.Errorf("updated: got %v, want %v", updated, tt.wantUpdated)
			}
			if rm.Best() != tt.wantBest {
				t.Errorf("Best: got %d, want %d", rm.Best(), tt.wantBest)
			}
		})
	}
}

// TestRecordManagerPersistence 记录持久化后可被新的管理器读取
func TestRecordManagerPersistence(t *testing.T) {
	manager := newTestGdataManager(t, "test_lazerfall_record")

	rm := NewRecordManager(manager)
	if _, err := rm.Submit(35, "session-xyz"); err != nil {
		t.Fatalf("Submit() error: %v", err)
	}

	reloaded := NewRecordManager(manager)
	if reloaded.Best() != 35 {
		t.Errorf("Best after reload: got %d, want 35", reloaded.Best())
	}
	if reloaded.Record().SessionID != "session-xyz" {
		t.Errorf("SessionID: got %q, want %q", reloaded.Record().SessionID, "session-xyz")
	}
	if reloaded.Record().UpdatedAt.IsZero() {
		t.Error("UpdatedAt should be set")
	}
}

// TestRecordManagerCorrupted 损坏或非法的记录视为 0
func TestRecordManagerCorrupted(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"非法YAML", "{{broken"},
		{"负数记录", "best: -3\n"},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager := newTestGdataManager(t, "test_lazerfall_record_bad"+string(rune('a'+i)))
			if err := manager.SaveObjectProp(recordObject, recordProperty, []byte(tt.data)); err != nil {
				t.Fatalf("SaveObjectProp() error: %v", err)
			}

			rm := NewRecordManager(manager)
			if rm.Best() != 0 {
				t.Errorf("Best: got %d, want 0", rm.Best())
			}
			if err := rm.Load(); err == nil {
				t.Error("Load() should return an error")
			}
		})
	}
}
