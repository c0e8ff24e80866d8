package snake

import "github.com/hoshinonyaruko/snake-sim/structs"

// TailOutcome 每帧尾巴只会发生三种情况之一
type TailOutcome int

const (
	TailNone    TailOutcome = iota // 本帧没有移动
	TailGrow                       // 保留尾巴，身长加一
	TailDeposit                    // 尾巴变成地图物品
	TailDiscard                    // 尾巴直接丢弃
)

func (t TailOutcome) String() string {
	switch t {
	case TailGrow:
		return "grow"
	case TailDeposit:
		return "deposit"
	case TailDiscard:
		return "discard"
	default:
		return "none"
	}
}

// StepResult 描述一帧里发生的事情
type StepResult struct {
	Moved   bool
	Ate     bool
	Eaten   structs.Segment
	Tail    TailOutcome
	Dropped structs.Segment // Tail == TailDeposit 时有效
	Died    bool            // 本帧死亡
}

// eat 找到第一个与蛇头重叠的物品并吃掉它，每帧最多吃一个
func (a *Agent) eat(m *MapState) (structs.Segment, bool) {
	head := a.body[0]
	half := a.settings.HalfCellSize

	var (
		found structs.Segment
		ok    bool
	)
	for item := range m.Iterate() {
		if Intersects(head, item, half) {
			found, ok = item, true
			break
		}
	}
	if !ok {
		return found, false
	}

	switch found.Category {
	case structs.Waste:
		a.growth += a.settings.GrowMultiplier
	case structs.Hazard:
		a.health--
	case structs.Healing:
		a.health++
	}
	a.score++
	m.Remove(found)
	return found, true
}

// collidesWithSelf 检查蛇头是否咬到自己。
// 靠近蛇头的几节以及出生时盘起来的蛇身不参与检测；蛇头按ID排除而不是按坐标。
func (a *Agent) collidesWithSelf() bool {
	head := a.body[0]
	half := a.settings.HalfCellSize
	for i := a.settings.InvulnerableSegments + 1; i < len(a.body); i++ {
		seg := a.body[i]
		if seg.ID == head.ID || seg.ID <= a.spawnWatermark {
			continue
		}
		if Intersects(head, seg, half) {
			return true
		}
	}
	return false
}

// depositTrial 每帧有小概率产生一次排泄
func (a *Agent) depositTrial() {
	if a.settings.DepositRoll <= 0 || a.rng == nil {
		return
	}
	if a.rng.Intn(a.settings.DepositRoll) < a.settings.DepositHits {
		a.deposits++
	}
}

// handleTail 按优先级处理尾巴：增长 > 排泄 > 丢弃
func (a *Agent) handleTail(m *MapState) (TailOutcome, structs.Segment) {
	if a.growth > 0 {
		a.growth--
		return TailGrow, structs.Segment{}
	}

	tail := a.body[len(a.body)-1]
	a.body = a.body[:len(a.body)-1]

	if a.deposits > 0 {
		a.deposits--
		tail.Category = a.drawCategory()
		m.Add(tail)
		return TailDeposit, tail
	}
	return TailDiscard, structs.Segment{}
}

// drawCategory 从 [0,DropRoll) 均匀抽一个数决定排泄物种类
func (a *Agent) drawCategory() structs.Category {
	if a.settings.DropRoll <= 0 || a.rng == nil {
		return structs.Waste
	}
	return CategoryFor(a.rng.Intn(a.settings.DropRoll), a.settings)
}

// CategoryFor maps one uniform draw onto the fixed drop partition:
// [0, HazardSlice) is Hazard, the next HealingSlice values are Healing and the
// remainder is Waste.
func CategoryFor(roll int, s Settings) structs.Category {
	switch {
	case roll < s.HazardSlice:
		return structs.Hazard
	case roll < s.HazardSlice+s.HealingSlice:
		return structs.Healing
	default:
		return structs.Waste
	}
}
