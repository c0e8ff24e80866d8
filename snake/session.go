package snake

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/hoshinonyaruko/snake-sim/structs"
)

// Session 拥有地图和蛇，蛇在自己的Step里借用地图。
// 单线程使用，不加锁；并发读写由调用方串行化。
type Session struct {
	settings Settings
	rng      Rand

	m     *MapState
	agent *Agent

	runID string
	tick  int64
}

// NewSession creates a session with a random source seeded from
// settings.Seed (or the clock when the seed is 0).
func NewSession(settings Settings) *Session {
	seed := settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewSessionWithRand(settings, rand.New(rand.NewSource(seed)))
}

// NewSessionWithRand 使用指定的随机源，测试里用于固定随机结果
func NewSessionWithRand(settings Settings, rng Rand) *Session {
	s := &Session{
		settings: settings,
		rng:      rng,
		m:        NewMapState(),
	}
	s.reset()
	return s
}

func (s *Session) reset() {
	s.agent = NewAgent(s.settings, s.rng)
	s.runID = uuid.New().String()
	s.tick = 0
}

// Restart 清空地图并换一条新蛇。随机源沿用，不重新取种子。
func (s *Session) Restart() {
	s.m.Clear()
	s.reset()
}

// Reconfigure 替换设置，下次Restart时生效
func (s *Session) Reconfigure(settings Settings) {
	s.settings = settings
}

// Apply 处理一个外部意图
func (s *Session) Apply(intent structs.Intent) {
	switch intent {
	case structs.TurnUp, structs.TurnDown, structs.TurnLeft, structs.TurnRight:
		s.agent.Turn(intent.Direction())
	case structs.GrowInstantly:
		s.agent.Grow()
	case structs.DepositInstantly:
		s.agent.Deposit()
	case structs.Restart:
		s.Restart()
	}
}

// Tick 先处理最多一个意图，再让蛇走一步
func (s *Session) Tick(stepSize float64, intent structs.Intent) StepResult {
	s.Apply(intent)
	res := s.agent.Step(stepSize, s.m)
	if res.Moved {
		s.tick++
	}
	return res
}

func (s *Session) Agent() *Agent      { return s.agent }
func (s *Session) Map() *MapState     { return s.m }
func (s *Session) RunID() string      { return s.runID }
func (s *Session) Ticks() int64       { return s.tick }
func (s *Session) Settings() Settings { return s.settings }

// Frame 返回当前帧的只读快照
func (s *Session) Frame() structs.Frame {
	return structs.Frame{
		RunID:  s.runID,
		Tick:   s.tick,
		Body:   s.agent.Body(),
		Items:  s.m.Items(),
		Health: s.agent.Health(),
		Score:  s.agent.Score(),
		Dead:   s.agent.Dead(),
		Width:  s.agent.settings.Field.Width,
		Height: s.agent.settings.Field.Height,
	}
}

// Record 生成本局的记录
func (s *Session) Record(now time.Time) structs.RunRecord {
	return structs.RunRecord{
		RunID:   s.runID,
		Score:   s.agent.Score(),
		Length:  s.agent.Len(),
		Ticks:   s.tick,
		EndedAt: now.Unix(),
	}
}
