package structs

import "strings"

// Category 描述一个格子的种类。
type Category int

const (
	BodySegment Category = iota // 蛇身
	Waste                       // 排泄物，吃掉后变长
	Healing                     // 回血
	Hazard                      // 扣血
)

func (c Category) String() string {
	switch c {
	case BodySegment:
		return "body"
	case Waste:
		return "waste"
	case Healing:
		return "healing"
	case Hazard:
		return "hazard"
	default:
		return "unknown"
	}
}

// Segment 描述地图上的一个格子（蛇身或者地图物品）。
type Segment struct {
	X        float64  `json:"x"`        // X坐标
	Y        float64  `json:"y"`        // Y坐标
	Category Category `json:"category"` // 种类
	ID       uint64   `json:"id"`       // 单调递增的唯一标识
}

// Direction 移动方向
type Direction int

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

// Opposite returns the reverse direction. None has no opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return None
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// Intent 一帧内外部请求的操作，最多一个
type Intent int

const (
	NoIntent Intent = iota
	TurnUp
	TurnDown
	TurnLeft
	TurnRight
	GrowInstantly
	DepositInstantly
	Restart
)

// Direction 返回转向意图对应的方向，非转向意图返回None
func (i Intent) Direction() Direction {
	switch i {
	case TurnUp:
		return Up
	case TurnDown:
		return Down
	case TurnLeft:
		return Left
	case TurnRight:
		return Right
	default:
		return None
	}
}

// ParseIntent maps the names used by the HTTP surface ("up", "grow",
// "restart", ...) to an Intent.
func ParseIntent(name string) (Intent, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "up":
		return TurnUp, true
	case "down":
		return TurnDown, true
	case "left":
		return TurnLeft, true
	case "right":
		return TurnRight, true
	case "grow":
		return GrowInstantly, true
	case "deposit":
		return DepositInstantly, true
	case "restart":
		return Restart, true
	default:
		return NoIntent, false
	}
}

// Frame 每帧提供给渲染的只读快照。
type Frame struct {
	RunID  string    `json:"run_id"` // 本局标识
	Tick   int64     `json:"tick"`   // 本局已经执行的帧数
	Body   []Segment `json:"body"`   // 蛇身，头在前
	Items  []Segment `json:"items"`  // 地图上的物品
	Health int       `json:"health"` // 血量
	Score  int       `json:"score"`  // 分数
	Dead   bool      `json:"dead"`   // 是否死亡
	Width  float64   `json:"width"`  // 地图宽度
	Height float64   `json:"height"` // 地图高度
}

// RunRecord 一局结束后的记录
type RunRecord struct {
	RunID   string `json:"run_id"`
	Score   int    `json:"score"`
	Length  int    `json:"length"`
	Ticks   int64  `json:"ticks"`
	EndedAt int64  `json:"ended_at"` // 时间戳
}
