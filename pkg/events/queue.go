package events

// EventQueue 按类型缓存事件，单线程使用（游戏循环）
type EventQueue struct {
	pending map[EventType][]GameEvent
}

// NewEventQueue 创建空事件队列
func NewEventQueue() *EventQueue {
	return &EventQueue{
		pending: make(map[EventType][]GameEvent),
	}
}

// Push 追加事件
func (q *EventQueue) Push(event GameEvent) {
	q.pending[event.Type] = append(q.pending[event.Type], event)
}

// Send 追加一个只有类型的事件
func (q *EventQueue) Send(t EventType) {
	q.Push(GameEvent{Type: t})
}

// Consume 取出指定类型的全部事件（按写入顺序），并从队列中移除
func (q *EventQueue) Consume(t EventType) []GameEvent {
	evs := q.pending[t]
	if len(evs) == 0 {
		return nil
	}
	delete(q.pending, t)
	return evs
}

// Count 返回指定类型尚未消费的事件数量
func (q *EventQueue) Count(t EventType) int {
	return len(q.pending[t])
}

// Clear 丢弃所有未消费事件
func (q *EventQueue) Clear() {
	clear(q.pending)
}
