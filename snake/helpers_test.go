package snake

import "github.com/hoshinonyaruko/snake-sim/structs"

// scriptedRand 按顺序返回预设的随机数，用完后一直返回fallback
type scriptedRand struct {
	draws    []int
	next     int
	fallback int
}

func (r *scriptedRand) Intn(n int) int {
	v := r.fallback
	if r.next < len(r.draws) {
		v = r.draws[r.next]
		r.next++
	}
	return v % n
}

// quietRand 从不触发随机排泄
func quietRand() *scriptedRand {
	return &scriptedRand{fallback: 99}
}

func testSettings() Settings {
	return DefaultSettings()
}

const frameStep = 1.0 / 30.0

func stepDist(s Settings) float64 {
	return frameStep * s.StepMultiplier
}

func seg(x, y float64, c structs.Category, id uint64) structs.Segment {
	return structs.Segment{X: x, Y: y, Category: c, ID: id}
}
