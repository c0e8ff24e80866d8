package snake

import "github.com/hoshinonyaruko/snake-sim/structs"

// Intersects 判断两个以坐标为中心、半边长为half的方框是否重叠（边界相接也算）
func Intersects(a, b structs.Segment, half float64) bool {
	if a.X+half < b.X-half || b.X+half < a.X-half {
		return false
	}
	if a.Y+half < b.Y-half || b.Y+half < a.Y-half {
		return false
	}
	return true
}

// Wrap 处理越界，地图上下左右相连。
// 到达 extent-half 的坐标减去两条边界线之间的跨度，低于 half 的坐标加上跨度。
// 下边界用严格比较，落在 half 上的坐标不会再被送回去。
// 默认一帧只处理一个轴（X优先），与原版行为一致。
func Wrap(x, y float64, f Field, half float64) (float64, float64) {
	spanX := f.Width - 2*half
	spanY := f.Height - 2*half

	if f.WrapBothAxes {
		x = wrapAxis(x, f.Width, spanX, half)
		y = wrapAxis(y, f.Height, spanY, half)
		return x, y
	}

	if x >= f.Width-half {
		x -= spanX
	} else if x < half {
		x += spanX
	} else if y >= f.Height-half {
		y -= spanY
	} else if y < half {
		y += spanY
	}
	return x, y
}

func wrapAxis(v, extent, span, half float64) float64 {
	if v >= extent-half {
		return v - span
	}
	if v < half {
		return v + span
	}
	return v
}
