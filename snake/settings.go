package snake

// Field 描述环形地图的尺寸
type Field struct {
	Width  float64
	Height float64
	// WrapBothAxes 为true时X轴和Y轴分别检查越界；
	// 默认与原版一致，一帧只处理一个轴。
	WrapBothAxes bool
}

// Settings holds the fixed design constants of one simulation session.
type Settings struct {
	Field Field

	HalfCellSize   float64 // 格子半边长
	StepMultiplier float64 // 每帧位移 = step_size * StepMultiplier
	GrowMultiplier int     // 吃掉排泄物后增长的节数
	InitialSize    int     // 初始身长
	InitialHealth  int     // 初始血量

	RotationLock         int // 转向后锁定的帧数
	InvulnerableSegments int // 下标不超过该值的蛇身不参与自撞检测

	// 每帧随机排泄：Intn(DepositRoll) < DepositHits
	DepositRoll int
	DepositHits int

	// 排泄物种类：Intn(DropRoll) 落在 [0,HazardSlice) 为Hazard，
	// 接下来的 HealingSlice 为Healing，其余为Waste
	DropRoll     int
	HazardSlice  int
	HealingSlice int

	Seed int64 // 0 表示按时间取种子
}

// DefaultSettings 与原版常量保持一致
func DefaultSettings() Settings {
	return Settings{
		Field:                Field{Width: 400, Height: 400},
		HalfCellSize:         5.0,
		StepMultiplier:       100.0,
		GrowMultiplier:       4,
		InitialSize:          25,
		InitialHealth:        3,
		RotationLock:         5,
		InvulnerableSegments: 8,
		DepositRoll:          100,
		DepositHits:          1,
		DropRoll:             100,
		HazardSlice:          15,
		HealingSlice:         15,
	}
}
