package report

import (
	"time"

	"ict-scanner/internal/indicator"
	"ict-scanner/internal/structure"
)

// Config 控制各检测器的回看深度与时段调度表。
// 回看深度为零时使用 structure 包内置默认。
type Config struct {
	LiquidityLookback  int
	OrderblockLookback int
	RangeLookback      int
	VoidLookback       int
	Sessions           structure.Schedule
}

// Snapshot 汇总一次结构扫描的全部结果，用于后续提示词拼装与推送。
type Snapshot struct {
	Symbol       string
	GeneratedAt  time.Time
	Price        float64
	Gaps         []structure.Gap
	Liquidity    structure.Levels
	OrderBlocks  []structure.OrderBlock
	Range        *structure.RangePosition
	Shift        *structure.Shift
	Sessions     map[string]float64
	Voids        []structure.Void
	SilverBullet bool
	Indicators   indicator.Context
}
