package structure

import (
	"math"
	"sort"

	"ict-scanner/internal/market"
)

const (
	voidBodyRatio   = 0.7
	voidFillHorizon = 3
	maxVoids        = 3
)

// FindLiquidityVoids 在回看窗口内寻找实体占比超过70%且未在随后3根K线
// 内被回补的大实体K线，按 BarIndex 降序返回最近的3个。
// 回补判定以该K线开盘价为界：看涨实体看后续最低价是否下穿开盘价，
// 看跌实体看后续最高价是否上穿开盘价。少于3根K线时返回空结果。
func FindLiquidityVoids(candles []market.Candle, lookback int) []Void {
	if lookback <= 0 {
		lookback = DefaultVoidLookback
	}
	if len(candles) < 3 {
		return nil
	}

	offset := 0
	window := candles
	if len(candles) > lookback {
		offset = len(candles) - lookback
		window = candles[offset:]
	}

	var voids []Void

	for i := 1; i < len(window); i++ {
		candle := window[i]
		priceRange := candle.High - candle.Low
		if priceRange <= 0 {
			continue
		}
		body := math.Abs(candle.Close - candle.Open)
		if body/priceRange <= voidBodyRatio {
			continue
		}

		bullishBody := candle.Close > candle.Open
		filled := false
		for j := i + 1; j <= i+voidFillHorizon && j < len(window); j++ {
			if bullishBody && window[j].Low < candle.Open {
				filled = true
				break
			}
			if !bullishBody && window[j].High > candle.Open {
				filled = true
				break
			}
		}
		if filled {
			continue
		}

		void := Void{BarIndex: offset + i}
		if bullishBody {
			void.Type = TypeBullish
			void.Top = candle.Close
			void.Bottom = candle.Open
		} else {
			void.Type = TypeBearish
			void.Top = candle.Open
			void.Bottom = candle.Close
		}
		voids = append(voids, void)
	}

	sort.Slice(voids, func(a, b int) bool { return voids[a].BarIndex > voids[b].BarIndex })
	if len(voids) > maxVoids {
		voids = voids[:maxVoids]
	}
	return voids
}
