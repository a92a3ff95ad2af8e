package structure

import (
	"sort"

	"ict-scanner/internal/market"
)

const maxLevelsPerSide = 5

// FindLiquidityLevels 在回看窗口内寻找局部摆动高低点，返回价格最高的
// 5个摆动高点（降序）与价格最低的5个摆动低点（升序）。BarIndex 为
// 相对完整序列的全局下标。少于3根K线时返回空结果。
func FindLiquidityLevels(candles []market.Candle, lookback int) Levels {
	if lookback <= 0 {
		lookback = DefaultLiquidityLookback
	}
	if len(candles) < 3 {
		return Levels{}
	}

	offset := 0
	window := candles
	if len(candles) > lookback {
		offset = len(candles) - lookback
		window = candles[offset:]
	}

	var highs []SwingPoint
	var lows []SwingPoint

	for j := 1; j < len(window)-1; j++ {
		if window[j].High > window[j-1].High && window[j].High > window[j+1].High {
			highs = append(highs, SwingPoint{Price: window[j].High, BarIndex: offset + j})
		}
		if window[j].Low < window[j-1].Low && window[j].Low < window[j+1].Low {
			lows = append(lows, SwingPoint{Price: window[j].Low, BarIndex: offset + j})
		}
	}

	sort.Slice(highs, func(a, b int) bool { return highs[a].Price > highs[b].Price })
	sort.Slice(lows, func(a, b int) bool { return lows[a].Price < lows[b].Price })

	if len(highs) > maxLevelsPerSide {
		highs = highs[:maxLevelsPerSide]
	}
	if len(lows) > maxLevelsPerSide {
		lows = lows[:maxLevelsPerSide]
	}

	return Levels{Highs: highs, Lows: lows}
}
