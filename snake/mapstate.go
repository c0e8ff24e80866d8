package snake

import (
	"iter"

	"github.com/hoshinonyaruko/snake-sim/structs"
)

// MapState 保存地图上除蛇身以外的所有物品。
// 允许同一坐标出现多个物品；遍历顺序即插入顺序。
type MapState struct {
	items []structs.Segment
}

func NewMapState() *MapState {
	return &MapState{items: make([]structs.Segment, 0, 64)}
}

// Add 无条件插入，不去重
func (m *MapState) Add(item structs.Segment) {
	m.items = append(m.items, item)
}

// Remove 删除第一个完全相同（坐标、种类、ID）的物品，不存在时什么也不做
func (m *MapState) Remove(item structs.Segment) bool {
	for i, it := range m.items {
		if it == item {
			// 保持其余物品的顺序
			copy(m.items[i:], m.items[i+1:])
			m.items = m.items[:len(m.items)-1]
			return true
		}
	}
	return false
}

// Iterate yields the items in insertion order. The map must not be mutated
// while a scan is in progress; the engine is single-threaded so callers stop
// the scan before calling Add or Remove.
func (m *MapState) Iterate() iter.Seq[structs.Segment] {
	return func(yield func(structs.Segment) bool) {
		for _, it := range m.items {
			if !yield(it) {
				return
			}
		}
	}
}

// Clear 重新开始时清空地图
func (m *MapState) Clear() {
	clear(m.items)
	m.items = m.items[:0]
}

func (m *MapState) Len() int {
	return len(m.items)
}

// Items 返回物品的副本，供渲染使用
func (m *MapState) Items() []structs.Segment {
	out := make([]structs.Segment, len(m.items))
	copy(out, m.items)
	return out
}
