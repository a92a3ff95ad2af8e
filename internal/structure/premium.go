package structure

import "ict-scanner/internal/market"

const minRangeCandles = 20

// AnalyzeRange 计算回看窗口的区间极值与中轴，判定当前价格位于
// 溢价区（高于中轴）还是折价区（等于或低于中轴）。
// K线不足20根或区间坍缩为单一价格时返回 nil。
func AnalyzeRange(candles []market.Candle, price float64, lookback int) *RangePosition {
	if lookback <= 0 {
		lookback = DefaultRangeLookback
	}
	if len(candles) < minRangeCandles {
		return nil
	}

	window := candles
	if len(candles) > lookback {
		window = candles[len(candles)-lookback:]
	}

	rangeHigh := window[0].High
	rangeLow := window[0].Low
	for _, candle := range window[1:] {
		if candle.High > rangeHigh {
			rangeHigh = candle.High
		}
		if candle.Low < rangeLow {
			rangeLow = candle.Low
		}
	}

	if rangeHigh == rangeLow {
		return nil
	}

	equilibrium := rangeLow + 0.5*(rangeHigh-rangeLow)
	status := StatusDiscount
	if price > equilibrium {
		status = StatusPremium
	}

	return &RangePosition{
		RangeHigh:   rangeHigh,
		RangeLow:    rangeLow,
		Equilibrium: equilibrium,
		Status:      status,
	}
}
