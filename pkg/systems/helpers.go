package systems

import (
	"image/color"

	"github.com/gonewx/lazerfall/pkg/components"
	"github.com/gonewx/lazerfall/pkg/ecs"
	"github.com/gonewx/lazerfall/pkg/game"
)

// playSound 播放音效，sp 为 nil 时（无声模式）忽略
func playSound(sp game.SoundPlayer, soundID string) {
	if sp == nil {
		return
	}
	sp.PlaySound(soundID)
}

// markDestroy 添加待销毁标记，由 DestroySystem 在帧末统一销毁
func markDestroy(em *ecs.EntityManager, id ecs.EntityID) {
	ecs.AddComponent(em, id, &components.DestroyComponent{})
}

// isMarkedDestroy 实体是否已被标记销毁
func isMarkedDestroy(em *ecs.EntityManager, id ecs.EntityID) bool {
	return ecs.HasComponent[*components.DestroyComponent](em, id)
}

// despawnAllWith 将拥有 T 组件的实体全部标记删除
//
// 返回：
//   - int: 标记的实体数量
func despawnAllWith[T any](em *ecs.EntityManager) int {
	ids := ecs.GetEntitiesWith1[T](em)
	for _, id := range ids {
		em.DestroyEntity(id)
	}
	return len(ids)
}

// outlineColor 描边颜色：填充色调暗一半
func outlineColor(c color.RGBA) color.RGBA {
	return color.RGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: c.A}
}
