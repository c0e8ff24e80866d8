// snake-term 在终端里运行一局，用方向键控制
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hoshinonyaruko/snake-sim/config"
	"github.com/hoshinonyaruko/snake-sim/snake"
	"github.com/hoshinonyaruko/snake-sim/structs"
)

type TickMsg time.Time

type model struct {
	session  *snake.Session
	half     float64
	tickRate int
	pending  structs.Intent
	best     int
}

func tickCmd(rate int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// keyIntents 键位到意图的映射
var keyIntents = map[string]structs.Intent{
	"up":    structs.TurnUp,
	"w":     structs.TurnUp,
	"down":  structs.TurnDown,
	"s":     structs.TurnDown,
	"left":  structs.TurnLeft,
	"a":     structs.TurnLeft,
	"right": structs.TurnRight,
	"d":     structs.TurnRight,
	" ":     structs.GrowInstantly,
	"enter": structs.DepositInstantly,
	"r":     structs.Restart,
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		if key == "q" || key == "ctrl+c" {
			return m, tea.Quit
		}
		if intent, ok := keyIntents[key]; ok {
			m.pending = intent
		}
	case TickMsg:
		res := m.session.Tick(1/float64(m.tickRate), m.pending)
		m.pending = structs.NoIntent
		if res.Died {
			log.Printf("run %s died with score %d", m.session.RunID(), m.session.Agent().Score())
		}
		m.best = max(m.best, m.session.Agent().Score())
		return m, tickCmd(m.tickRate)
	}
	return m, nil
}

func (m model) View() string {
	return draw(m.session.Frame(), m.half, m.best)
}

// draw 把坐标缩小到格子，每格两个字符宽
func draw(f structs.Frame, half float64, best int) string {
	cell := 2 * half
	cols := int(math.Ceil(f.Width / cell))
	rows := int(math.Ceil(f.Height / cell))
	grid := make([][]byte, rows)
	for y := range grid {
		grid[y] = []byte(strings.Repeat(".", cols))
	}

	put := func(s structs.Segment, ch byte) {
		x, y := int(s.X/cell), int(s.Y/cell)
		if x >= 0 && x < cols && y >= 0 && y < rows {
			grid[y][x] = ch
		}
	}
	for _, it := range f.Items {
		put(it, glyph(it.Category))
	}
	for i := len(f.Body) - 1; i >= 0; i-- {
		ch := byte('o')
		if i == 0 {
			ch = '@'
		}
		put(f.Body[i], ch)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "health %d  score %d  best %d  length %d\n", f.Health, f.Score, best, len(f.Body))
	for _, row := range grid {
		for _, ch := range row {
			sb.WriteByte(ch)
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	if f.Dead {
		sb.WriteString("GAME OVER - press r to restart\n")
	}
	sb.WriteString("arrows/wasd move, space grow, enter deposit, r restart, q quit\n")
	return sb.String()
}

func glyph(c structs.Category) byte {
	switch c {
	case structs.Waste:
		return '*'
	case structs.Healing:
		return '+'
	case structs.Hazard:
		return 'x'
	default:
		return 'o'
	}
}

func main() {
	configPath := flag.String("config", "", "Optional config.json with simulation constants")
	seed := flag.Int64("seed", 0, "Random seed (0 uses the clock)")
	logPath := flag.String("log", "", "Write logs to this file instead of discarding them")
	flag.Parse()

	cfg := config.Defaults()
	if *configPath != "" {
		cfg = config.LoadConfig(*configPath)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	// 日志会打乱终端画面
	if *logPath != "" {
		f, err := tea.LogToFile(*logPath, "snake-term")
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	settings := cfg.Settings()
	if *seed != 0 {
		settings.Seed = *seed
	}

	m := model{
		session:  snake.NewSession(settings),
		half:     cfg.HalfCellSize,
		tickRate: cfg.TickRate,
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "snake-term: %v\n", err)
		os.Exit(1)
	}
}
