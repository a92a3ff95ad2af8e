package structure

import (
	"sort"

	"ict-scanner/internal/market"
)

const minShiftCandles = 20

type trend int

const (
	trendUndetermined trend = iota
	trendBullish
	trendBearish
)

type taggedSwing struct {
	point  SwingPoint
	isHigh bool
}

// DetectShift 先由最近4个摆动点判定趋势，再自最近摆动点之后逐根扫描
// 收盘突破：逆势突破记为 CHoCH，顺势突破记为 BOS。同一根K线上两个
// 条件同时成立时，逆势分支先行判定，CHoCH 优先。
//
// 输入的摆动高低点集合应产自同一K线序列（通常来自 FindLiquidityLevels）。
// K线不足20根、合并后摆动点不足4个或任一侧不足2个时返回 nil。
func DetectShift(candles []market.Candle, highs, lows []SwingPoint) *Shift {
	if len(candles) < minShiftCandles {
		return nil
	}

	merged := make([]taggedSwing, 0, len(highs)+len(lows))
	for _, p := range highs {
		merged = append(merged, taggedSwing{point: p, isHigh: true})
	}
	for _, p := range lows {
		merged = append(merged, taggedSwing{point: p, isHigh: false})
	}
	if len(merged) < 4 {
		return nil
	}

	sort.SliceStable(merged, func(a, b int) bool {
		return merged[a].point.BarIndex < merged[b].point.BarIndex
	})

	recent := merged[len(merged)-4:]
	var selHighs []SwingPoint
	var selLows []SwingPoint
	for _, s := range recent {
		if s.isHigh {
			selHighs = append(selHighs, s.point)
		} else {
			selLows = append(selLows, s.point)
		}
	}
	if len(selHighs) < 2 || len(selLows) < 2 {
		return nil
	}

	recentHigh, prevHigh := latestAndEarliest(selHighs)
	recentLow, prevLow := latestAndEarliest(selLows)

	direction := trendUndetermined
	switch {
	case recentHigh.Price > prevHigh.Price && recentLow.Price > prevLow.Price:
		direction = trendBullish
	case recentHigh.Price < prevHigh.Price && recentLow.Price < prevLow.Price:
		direction = trendBearish
	}

	start := recentHigh.BarIndex
	if recentLow.BarIndex < start {
		start = recentLow.BarIndex
	}
	start++
	if start < 0 {
		start = 0
	}

	switch direction {
	case trendBullish:
		for k := start; k < len(candles); k++ {
			if candles[k].Close < recentLow.Price {
				return &Shift{Type: TypeBearish, Event: EventCHoCH, PriceLevel: recentLow.Price, BreakBarIndex: k}
			}
			if candles[k].Close > recentHigh.Price {
				return &Shift{Type: TypeBullish, Event: EventBOS, PriceLevel: recentHigh.Price, BreakBarIndex: k}
			}
		}
	case trendBearish:
		for k := start; k < len(candles); k++ {
			if candles[k].Close > recentHigh.Price {
				return &Shift{Type: TypeBullish, Event: EventCHoCH, PriceLevel: recentHigh.Price, BreakBarIndex: k}
			}
			if candles[k].Close < recentLow.Price {
				return &Shift{Type: TypeBearish, Event: EventBOS, PriceLevel: recentLow.Price, BreakBarIndex: k}
			}
		}
	default:
		// 趋势不明时只检查扫描起点这一根K线，参照摆动点取下标更大的一个。
		if start >= len(candles) {
			return nil
		}
		candle := candles[start]
		if recentHigh.BarIndex > recentLow.BarIndex {
			if candle.Close > recentHigh.Price {
				return &Shift{Type: TypeBullish, Event: EventBOS, PriceLevel: recentHigh.Price, BreakBarIndex: start}
			}
		} else {
			if candle.Close < recentLow.Price {
				return &Shift{Type: TypeBearish, Event: EventBOS, PriceLevel: recentLow.Price, BreakBarIndex: start}
			}
		}
	}

	return nil
}

// latestAndEarliest 按 BarIndex 返回最近与最早的摆动点。
func latestAndEarliest(points []SwingPoint) (latest, earliest SwingPoint) {
	latest = points[0]
	earliest = points[0]
	for _, p := range points[1:] {
		if p.BarIndex > latest.BarIndex {
			latest = p
		}
		if p.BarIndex < earliest.BarIndex {
			earliest = p
		}
	}
	return latest, earliest
}
