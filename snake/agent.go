// 关于蛇本身的状态与移动
package snake

import (
	"slices"

	"github.com/hoshinonyaruko/snake-sim/structs"
)

// Rand is the random source used for the deposit trial and the drop category
// draw. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Agent 玩家控制的蛇
type Agent struct {
	settings Settings
	rng      Rand

	body      []structs.Segment // 头在前，尾在后
	direction structs.Direction
	pending   structs.Direction // 冷却期间暂存的转向
	cooldown  int

	health   int
	growth   int // 还需要保留尾巴的帧数
	deposits int // 还需要排泄的次数
	score    int

	nextID uint64
	// 出生时盘在一起的蛇身ID不超过该值，不参与自撞检测
	spawnWatermark uint64
}

// NewAgent 在地图中央生成一条盘起来的蛇，所有蛇身重叠在出生点
func NewAgent(settings Settings, rng Rand) *Agent {
	a := &Agent{
		settings:  settings,
		rng:       rng,
		direction: structs.None,
		pending:   structs.None,
		health:    settings.InitialHealth,
	}

	size := max(settings.InitialSize, 1)
	a.body = make([]structs.Segment, 0, size*4)
	cx, cy := settings.Field.Width/2, settings.Field.Height/2
	for range size {
		a.body = append(a.body, a.newSegment(cx, cy))
	}
	a.spawnWatermark = a.nextID
	return a
}

func (a *Agent) newSegment(x, y float64) structs.Segment {
	a.nextID++
	return structs.Segment{X: x, Y: y, Category: structs.BodySegment, ID: a.nextID}
}

// Turn 处理一次转向请求。
// 反向请求直接丢弃；冷却中的请求暂存（覆盖之前暂存的）；否则立即生效并进入冷却。
func (a *Agent) Turn(d structs.Direction) {
	if d == structs.None || a.Dead() {
		return
	}
	if d == a.direction.Opposite() {
		return
	}
	if a.cooldown > 0 {
		a.pending = d
		return
	}
	if d == a.direction {
		return
	}
	a.direction = d
	a.cooldown = a.settings.RotationLock
}

// Grow 立即增加一节待增长
func (a *Agent) Grow() {
	if !a.Dead() {
		a.growth++
	}
}

// Deposit 立即增加一次待排泄
func (a *Agent) Deposit() {
	if !a.Dead() {
		a.deposits++
	}
}

// resolvePending 冷却减一，冷却结束时尝试应用暂存的转向，暂存无论如何都被清空
func (a *Agent) resolvePending() {
	if a.cooldown > 0 {
		a.cooldown--
	}
	if a.cooldown > 0 || a.pending == structs.None {
		return
	}
	if a.pending != a.direction.Opposite() {
		a.direction = a.pending
		a.cooldown = a.settings.RotationLock
	}
	a.pending = structs.None
}

// nextHead 根据方向计算新的蛇头坐标并处理越界
func (a *Agent) nextHead(stepSize float64) structs.Segment {
	head := a.body[0]
	x, y := head.X, head.Y
	dist := stepSize * a.settings.StepMultiplier

	switch a.direction {
	case structs.Up:
		y -= dist
	case structs.Down:
		y += dist
	case structs.Left:
		x -= dist
	case structs.Right:
		x += dist
	}

	x, y = Wrap(x, y, a.settings.Field, a.settings.HalfCellSize)
	return a.newSegment(x, y)
}

// Step 执行一帧。死亡或者没有方向时什么也不做。
func (a *Agent) Step(stepSize float64, m *MapState) StepResult {
	var res StepResult
	if a.Dead() || a.direction == structs.None || len(a.body) == 0 {
		return res
	}

	a.resolvePending()

	a.body = slices.Insert(a.body, 0, a.nextHead(stepSize))
	res.Moved = true

	if item, ok := a.eat(m); ok {
		res.Ate = true
		res.Eaten = item
	}

	if a.collidesWithSelf() {
		a.health = 0
	}

	a.depositTrial()
	res.Tail, res.Dropped = a.handleTail(m)

	res.Died = a.Dead()
	return res
}

func (a *Agent) Direction() structs.Direction { return a.direction }

// Pending 返回暂存的转向
func (a *Agent) Pending() structs.Direction { return a.pending }

func (a *Agent) Cooldown() int { return a.cooldown }
func (a *Agent) Health() int   { return a.health }
func (a *Agent) Growth() int   { return a.growth }
func (a *Agent) Deposits() int { return a.deposits }
func (a *Agent) Score() int    { return a.score }
func (a *Agent) Len() int      { return len(a.body) }

// Dead 血量不大于0即死亡
func (a *Agent) Dead() bool { return a.health <= 0 }

func (a *Agent) Head() structs.Segment { return a.body[0] }

// Body 返回蛇身的副本
func (a *Agent) Body() []structs.Segment {
	out := make([]structs.Segment, len(a.body))
	copy(out, a.body)
	return out
}
