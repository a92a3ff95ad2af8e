package report

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"ict-scanner/internal/indicator"
	"ict-scanner/internal/market"
	"ict-scanner/internal/structure"
)

const (
	minCandles15M = 30
	minCandles1H  = 60
	minCandles4H  = 30
)

// Builder 根据市场快照生成结构扫描报告。
// 缺口、真空与时段流动性取自15分钟K线，流动性水平、订单块与结构转换
// 取自1小时K线，溢价/折价区间取自4小时K线。
type Builder struct {
	cfg    Config
	logger *zap.Logger
}

// NewBuilder 创建报告构建器。
func NewBuilder(cfg Config, logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{
		cfg:    cfg,
		logger: logger,
	}
}

// Build 执行全部结构检测并汇总为 Snapshot。
func (b *Builder) Build(ctx context.Context, snapshot market.Snapshot) (Snapshot, error) {
	if len(snapshot.Candles15M) < minCandles15M {
		return Snapshot{}, fmt.Errorf("15分钟K线数量不足，至少需要 %d 根，当前 %d", minCandles15M, len(snapshot.Candles15M))
	}
	if len(snapshot.Candles1H) < minCandles1H {
		return Snapshot{}, fmt.Errorf("1小时K线数量不足，至少需要 %d 根，当前 %d", minCandles1H, len(snapshot.Candles1H))
	}
	if len(snapshot.Candles4H) < minCandles4H {
		return Snapshot{}, fmt.Errorf("4小时K线数量不足，至少需要 %d 根，当前 %d", minCandles4H, len(snapshot.Candles4H))
	}

	select {
	case <-ctx.Done():
		return Snapshot{}, ctx.Err()
	default:
	}

	indicators, err := indicator.Compute(snapshot.Candles1H)
	if err != nil {
		return Snapshot{}, fmt.Errorf("计算1小时指标失败: %w", err)
	}

	price := snapshot.LastClose()
	now := snapshot.RetrievedAt.UTC()
	clock := now.Format("15:04")

	liquidity := structure.FindLiquidityLevels(snapshot.Candles1H, b.cfg.LiquidityLookback)

	result := Snapshot{
		Symbol:       snapshot.Symbol,
		GeneratedAt:  now,
		Price:        price,
		Gaps:         structure.NearestGaps(snapshot.Candles15M, price),
		Liquidity:    liquidity,
		OrderBlocks:  structure.NearestOrderBlocks(snapshot.Candles1H, b.cfg.OrderblockLookback),
		Range:        structure.AnalyzeRange(snapshot.Candles4H, price, b.cfg.RangeLookback),
		Shift:        structure.DetectShift(snapshot.Candles1H, liquidity.Highs, liquidity.Lows),
		Sessions:     structure.SessionLiquidity(snapshot.Candles15M, b.cfg.Sessions, clock, now),
		Voids:        structure.FindLiquidityVoids(snapshot.Candles15M, b.cfg.VoidLookback),
		SilverBullet: structure.InSilverBulletWindow(clock, b.cfg.Sessions, b.logger),
		Indicators:   indicators,
	}

	b.logger.Debug("结构报告生成完成",
		zap.String("symbol", result.Symbol),
		zap.Time("generated_at", result.GeneratedAt),
		zap.Int("gaps", len(result.Gaps)),
		zap.Int("order_blocks", len(result.OrderBlocks)),
		zap.Bool("silver_bullet", result.SilverBullet),
	)

	return result, nil
}
