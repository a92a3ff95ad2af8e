package indicator

import (
	"fmt"

	talib "github.com/markcheno/go-talib"

	"ict-scanner/internal/market"
)

// ATRResult 保存 ATR 指标。
type ATRResult struct {
	Absolute float64
	Relative float64
}

// Context 为结构分析提供的动量与波动率背景。
type Context struct {
	EMA12 float64
	EMA26 float64
	EMA50 float64
	RSI   float64
	ATR   ATRResult
	ADX   float64
	Close float64
}

// Compute 依据给定K线计算指标背景。计算是无状态的，同一输入总返回同一结果。
func Compute(candles []market.Candle) (Context, error) {
	if len(candles) == 0 {
		return Context{}, fmt.Errorf("计算指标失败: 输入K线为空")
	}

	series := NewSeries(candles)
	closePrices := series.Close
	highs := series.High
	lows := series.Low

	ema12 := talib.Ema(closePrices, 12)
	ema26 := talib.Ema(closePrices, 26)
	ema50 := talib.Ema(closePrices, 50)

	rsi := talib.Rsi(closePrices, 14)
	atr := talib.Atr(highs, lows, closePrices, 14)
	adx := talib.Adx(highs, lows, closePrices, 14)

	lastClose := Last(closePrices)
	atrAbs := Last(atr)

	return Context{
		EMA12: Last(ema12),
		EMA26: Last(ema26),
		EMA50: Last(ema50),
		RSI:   Last(rsi),
		ATR:   ATRResult{Absolute: atrAbs, Relative: SafeDivide(atrAbs, lastClose)},
		ADX:   Last(adx),
		Close: lastClose,
	}, nil
}
