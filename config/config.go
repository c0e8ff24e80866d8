package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/hoshinonyaruko/snake-sim/snake"
)

// AppConfig holds the structure of the configuration
type AppConfig struct {
	SelfPath  string `json:"selfpath"`
	Port      string `json:"port"`
	Blocksize int    `json:"blocksize"` // 渲染时放大的倍数
	TickRate  int    `json:"tick_rate"` // 每秒帧数
	Database  string `json:"database"`

	FieldWidth           float64 `json:"field_width"`
	FieldHeight          float64 `json:"field_height"`
	WrapBothAxes         bool    `json:"wrap_both_axes"`
	HalfCellSize         float64 `json:"half_cell_size"`
	StepMultiplier       float64 `json:"step_multiplier"`
	GrowMultiplier       int     `json:"grow_multiplier"`
	InitialSize          int     `json:"initial_size"`
	InitialHealth        int     `json:"initial_health"`
	RotationLock         int     `json:"rotation_lock"`
	InvulnerableSegments int     `json:"invulnerable_segments"`
	DepositRoll          int     `json:"deposit_roll"`
	DepositHits          int     `json:"deposit_hits"`
	DropRoll             int     `json:"drop_roll"`
	HazardSlice          int     `json:"hazard_slice"`
	HealingSlice         int     `json:"healing_slice"`
	Seed                 int64   `json:"seed"`
}

var (
	instance *AppConfig
	once     sync.Once
	mu       sync.RWMutex
)

// Defaults 返回默认配置
func Defaults() *AppConfig {
	s := snake.DefaultSettings()
	return &AppConfig{
		SelfPath:  "http://www.example.com", // Default value
		Port:      "38870",                  // Default value
		Blocksize: 2,
		TickRate:  30,
		Database:  ":memory:",

		FieldWidth:           s.Field.Width,
		FieldHeight:          s.Field.Height,
		WrapBothAxes:         s.Field.WrapBothAxes,
		HalfCellSize:         s.HalfCellSize,
		StepMultiplier:       s.StepMultiplier,
		GrowMultiplier:       s.GrowMultiplier,
		InitialSize:          s.InitialSize,
		InitialHealth:        s.InitialHealth,
		RotationLock:         s.RotationLock,
		InvulnerableSegments: s.InvulnerableSegments,
		DepositRoll:          s.DepositRoll,
		DepositHits:          s.DepositHits,
		DropRoll:             s.DropRoll,
		HazardSlice:          s.HazardSlice,
		HealingSlice:         s.HealingSlice,
	}
}

// LoadConfig initializes and returns the instance of AppConfig
func LoadConfig(filePath string) *AppConfig {
	once.Do(func() {
		cfg := Defaults()
		// Load the config file if it exists, otherwise create one
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			if err := saveConfig(filePath, cfg); err != nil {
				panic(err)
			}
		} else if err := loadConfig(filePath, cfg); err != nil {
			panic(err)
		}
		mu.Lock()
		instance = cfg
		mu.Unlock()
	})
	return Current()
}

// Reload 重新读取配置文件，失败时保留旧配置
func Reload(filePath string) error {
	cfg := Defaults()
	if err := loadConfig(filePath, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	mu.Lock()
	instance = cfg
	mu.Unlock()
	return nil
}

// Current 返回当前配置的副本，尚未加载时返回默认配置
func Current() *AppConfig {
	mu.RLock()
	defer mu.RUnlock()
	if instance == nil {
		return Defaults()
	}
	cp := *instance
	return &cp
}

// loadConfig loads the settings from the file
func loadConfig(filePath string, cfg *AppConfig) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(cfg); err != nil {
		return fmt.Errorf("decode config %s: %w", filePath, err)
	}
	return nil
}

// saveConfig saves the current settings to the file
func saveConfig(filePath string, cfg *AppConfig) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// Validate 检查会让模拟无法运行的配置
func (c *AppConfig) Validate() error {
	if c.FieldWidth <= 4*c.HalfCellSize || c.FieldHeight <= 4*c.HalfCellSize {
		return fmt.Errorf("field %vx%v too small for half cell %v", c.FieldWidth, c.FieldHeight, c.HalfCellSize)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("tick_rate must be positive, got %d", c.TickRate)
	}
	if c.InitialSize <= 0 || c.InitialHealth <= 0 {
		return fmt.Errorf("initial_size and initial_health must be positive")
	}
	if c.HazardSlice < 0 || c.HealingSlice < 0 || c.HazardSlice+c.HealingSlice > c.DropRoll {
		return fmt.Errorf("drop slices %d+%d exceed drop_roll %d", c.HazardSlice, c.HealingSlice, c.DropRoll)
	}
	return nil
}

// Settings 把配置转换成模拟参数
func (c *AppConfig) Settings() snake.Settings {
	return snake.Settings{
		Field: snake.Field{
			Width:        c.FieldWidth,
			Height:       c.FieldHeight,
			WrapBothAxes: c.WrapBothAxes,
		},
		HalfCellSize:         c.HalfCellSize,
		StepMultiplier:       c.StepMultiplier,
		GrowMultiplier:       c.GrowMultiplier,
		InitialSize:          c.InitialSize,
		InitialHealth:        c.InitialHealth,
		RotationLock:         c.RotationLock,
		InvulnerableSegments: c.InvulnerableSegments,
		DepositRoll:          c.DepositRoll,
		DepositHits:          c.DepositHits,
		DropRoll:             c.DropRoll,
		HazardSlice:          c.HazardSlice,
		HealingSlice:         c.HealingSlice,
		Seed:                 c.Seed,
	}
}

// GetConfigValue returns the value of the configuration by key
func GetConfigValue(key string) interface{} {
	cfg := Current()
	switch key {
	case "selfpath":
		return cfg.SelfPath
	case "port":
		return cfg.Port
	case "blocksize":
		return cfg.Blocksize
	case "tick_rate":
		return cfg.TickRate
	case "database":
		return cfg.Database
	default:
		return ""
	}
}
