package api

import (
	"context"
	"database/sql"
	"log"
	"sync"
	"time"

	"github.com/hoshinonyaruko/snake-sim/config"
	"github.com/hoshinonyaruko/snake-sim/snake"
	"github.com/hoshinonyaruko/snake-sim/sqlite"
	"github.com/hoshinonyaruko/snake-sim/structs"
)

// Server 把单线程的模拟接到HTTP上。
// 所有对session的访问都在mu里完成，渲染读取总是在一帧完成之后。
type Server struct {
	mu       sync.Mutex
	session  *snake.Session
	pending  structs.Intent // 下一帧要处理的意图，后到的覆盖先到的
	recorded bool           // 本局结果是否已经写入数据库

	db  *sql.DB
	hub *Hub

	tickRate  int
	half      float64
	blockSize int

	frameMu  sync.Mutex
	frameKey string
	framePNG []byte
}

// NewServer 根据配置创建服务，db可以为nil（不记录成绩）
func NewServer(session *snake.Session, db *sql.DB, cfg *config.AppConfig) *Server {
	return &Server{
		session:   session,
		db:        db,
		hub:       NewHub(),
		tickRate:  cfg.TickRate,
		half:      cfg.HalfCellSize,
		blockSize: cfg.Blocksize,
	}
}

// Submit 缓存一个意图，下一帧处理
func (s *Server) Submit(intent structs.Intent) {
	s.mu.Lock()
	s.pending = intent
	s.mu.Unlock()
}

// Step 处理缓存的意图并执行一帧
func (s *Server) Step(stepSize float64) snake.StepResult {
	s.mu.Lock()
	intent := s.pending
	s.pending = structs.NoIntent

	if intent == structs.Restart {
		// 主动重开的局也记下来
		if !s.recorded && s.session.Ticks() > 0 {
			s.record()
		}
		s.recorded = false
	}

	res := s.session.Tick(stepSize, intent)
	if res.Ate {
		log.Printf("run %s ate %v at (%.1f, %.1f)", s.session.RunID(), res.Eaten.Category, res.Eaten.X, res.Eaten.Y)
	}
	if res.Died && !s.recorded {
		log.Printf("run %s died: score %d length %d", s.session.RunID(), s.session.Agent().Score(), s.session.Agent().Len())
		s.record()
	}
	frame := s.session.Frame()
	s.mu.Unlock()

	if res.Moved || intent != structs.NoIntent {
		s.hub.BroadcastFrame(frame)
	}
	return res
}

// record 必须在持有mu时调用
func (s *Server) record() {
	s.recorded = true
	if s.db == nil {
		return
	}
	if err := sqlite.RecordRun(s.db, s.session.Record(time.Now())); err != nil {
		log.Printf("record run %s failed: %v", s.session.RunID(), err)
	}
}

// Frame 返回当前帧快照
func (s *Server) Frame() structs.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Frame()
}

// Reconfigure 配置热更新，模拟参数在下一次重开时生效
func (s *Server) Reconfigure(cfg *config.AppConfig) {
	s.mu.Lock()
	s.session.Reconfigure(cfg.Settings())
	s.mu.Unlock()

	s.frameMu.Lock()
	s.half = cfg.HalfCellSize
	s.blockSize = cfg.Blocksize
	s.frameKey = ""
	s.frameMu.Unlock()
}

// Run 以固定帧率驱动模拟，直到ctx结束
func (s *Server) Run(ctx context.Context) {
	rate := s.tickRate
	if rate <= 0 {
		rate = 30
	}
	stepSize := 1.0 / float64(rate)
	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.hub.Close()
			return
		case <-ticker.C:
			s.Step(stepSize)
		}
	}
}
