// Package replay 在历史K线上滑动重放结构检测，统计各类形态的后验表现：
// 缺口回补率、订单块缓解率与结构转换的延续率。
package replay

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"ict-scanner/internal/market"
	"ict-scanner/internal/structure"
)

// Config 定义重放参数。
type Config struct {
	Window  int // 每次检测使用的K线数量
	Horizon int // 向前评估结果的K线数量
	Stride  int // 相邻检测窗口的间隔
}

func (c *Config) normalize() Config {
	cfg := *c
	if cfg.Window <= 0 {
		cfg.Window = 200
	}
	if cfg.Horizon <= 0 {
		cfg.Horizon = 24
	}
	if cfg.Stride <= 0 {
		cfg.Stride = cfg.Horizon
	}
	return cfg
}

// Engine 在历史数据上重放结构检测。
type Engine struct {
	cfg    Config
	logger *zap.Logger
}

// NewEngine 构建重放引擎。
func NewEngine(cfg Config, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		cfg:    cfg.normalize(),
		logger: logger,
	}
}

// Run 执行完整重放流程。
func (e *Engine) Run(ctx context.Context, candles []market.Candle) (Stats, error) {
	minLen := e.cfg.Window + e.cfg.Horizon
	if len(candles) < minLen {
		return Stats{}, fmt.Errorf("replay: K线数量不足，至少需要 %d 根，当前 %d", minLen, len(candles))
	}

	var stats Stats

	for end := e.cfg.Window; end+e.cfg.Horizon <= len(candles); end += e.cfg.Stride {
		select {
		case <-ctx.Done():
			return Stats{}, ctx.Err()
		default:
		}

		window := candles[end-e.cfg.Window : end]
		future := candles[end : end+e.cfg.Horizon]
		price := window[len(window)-1].Close

		e.scoreGaps(window, future, price, &stats)
		e.scoreOrderBlocks(window, future, &stats)
		e.scoreShift(window, future, &stats)

		stats.WindowsScanned++
	}

	stats.finalize()

	e.logger.Info("重放完成",
		zap.Int("windows", stats.WindowsScanned),
		zap.Float64("gap_fill_rate", stats.GapFillRate),
		zap.Float64("orderblock_mitigation_rate", stats.OrderBlockMitigationRate),
		zap.Float64("shift_follow_through_rate", stats.ShiftFollowThroughRate),
	)

	return stats, nil
}

func (e *Engine) scoreGaps(window, future []market.Candle, price float64, stats *Stats) {
	for _, gap := range structure.NearestGaps(window, price) {
		stats.GapsDetected++
		for _, candle := range future {
			if gap.Type == structure.GapTypeBearShort {
				if candle.High >= gap.Hi {
					stats.GapsFilled++
					break
				}
				continue
			}
			if candle.Low <= gap.Lo {
				stats.GapsFilled++
				break
			}
		}
	}
}

func (e *Engine) scoreOrderBlocks(window, future []market.Candle, stats *Stats) {
	for _, block := range structure.NearestOrderBlocks(window, 0) {
		stats.OrderBlocksDetected++
		mid := block.Bottom + 0.5*(block.Top-block.Bottom)
		for _, candle := range future {
			if block.Type == structure.OrderBlockBull {
				if candle.Low <= mid {
					stats.OrderBlocksMitigated++
					break
				}
				continue
			}
			if candle.High >= mid {
				stats.OrderBlocksMitigated++
				break
			}
		}
	}
}

func (e *Engine) scoreShift(window, future []market.Candle, stats *Stats) {
	levels := structure.FindLiquidityLevels(window, 0)
	shift := structure.DetectShift(window, levels.Highs, levels.Lows)
	if shift == nil {
		return
	}

	stats.Shifts++
	refClose := window[len(window)-1].Close
	futureClose := future[len(future)-1].Close

	if shift.Type == structure.TypeBullish && futureClose > refClose {
		stats.ShiftFollowThrough++
	}
	if shift.Type == structure.TypeBearish && futureClose < refClose {
		stats.ShiftFollowThrough++
	}
}
