package snake

import (
	"testing"

	"github.com/hoshinonyaruko/snake-sim/structs"
)

func collect(m *MapState) []structs.Segment {
	var out []structs.Segment
	for it := range m.Iterate() {
		out = append(out, it)
	}
	return out
}

func TestMapState_AddKeepsDuplicates(t *testing.T) {
	m := NewMapState()
	item := seg(10, 10, structs.Waste, 7)
	m.Add(item)
	m.Add(item)
	if m.Len() != 2 {
		t.Fatalf("len=%d want=2", m.Len())
	}
}

func TestMapState_RemoveFirstMatchKeepsOrder(t *testing.T) {
	m := NewMapState()
	a := seg(1, 1, structs.Waste, 1)
	b := seg(2, 2, structs.Hazard, 2)
	c := seg(3, 3, structs.Healing, 3)
	m.Add(a)
	m.Add(b)
	m.Add(c)
	m.Add(b)

	if !m.Remove(b) {
		t.Fatalf("Remove(b)=false want=true")
	}
	got := collect(m)
	want := []structs.Segment{a, c, b}
	if len(got) != len(want) {
		t.Fatalf("len=%d want=%d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("items[%d]=%v want=%v", i, got[i], want[i])
		}
	}
}

func TestMapState_RemoveAbsentIsNoop(t *testing.T) {
	m := NewMapState()
	m.Add(seg(1, 1, structs.Waste, 1))

	// 坐标相同但种类不同，不算同一个物品
	if m.Remove(seg(1, 1, structs.Hazard, 1)) {
		t.Fatalf("Remove of absent item returned true")
	}
	if m.Remove(seg(1, 1, structs.Waste, 2)) {
		t.Fatalf("Remove with other id returned true")
	}
	if m.Len() != 1 {
		t.Fatalf("len=%d want=1", m.Len())
	}

	empty := NewMapState()
	if empty.Remove(seg(0, 0, structs.Waste, 0)) {
		t.Fatalf("Remove on empty map returned true")
	}
}

func TestMapState_IterateStopsEarly(t *testing.T) {
	m := NewMapState()
	for i := range 5 {
		m.Add(seg(float64(i), 0, structs.Waste, uint64(i)))
	}
	seen := 0
	for it := range m.Iterate() {
		seen++
		if it.ID == 2 {
			break
		}
	}
	if seen != 3 {
		t.Fatalf("seen=%d want=3", seen)
	}
}

func TestMapState_ClearAndItemsCopy(t *testing.T) {
	m := NewMapState()
	m.Add(seg(1, 1, structs.Waste, 1))
	items := m.Items()
	items[0].X = 99

	if got := collect(m)[0].X; got != 1 {
		t.Fatalf("Items() leaked internal storage, x=%v", got)
	}

	m.Clear()
	if m.Len() != 0 || len(collect(m)) != 0 {
		t.Fatalf("len=%d after Clear", m.Len())
	}
}
