package structure

import (
	"time"

	"ict-scanner/internal/market"
)

// 时段调度表中可识别的键。
const (
	SessionAsia      = "asia"
	SessionLondon    = "london"
	SessionNewYorkAM = "newyork_am"
)

// 时段流动性结果中的键。
const (
	KeyAsiaHigh   = "asia_high"
	KeyAsiaLow    = "asia_low"
	KeyLondonHigh = "london_high"
	KeyLondonLow  = "london_low"
)

// SessionWindow 描述一个交易时段的起止时间，格式 "HH:MM"（24小时制）。
type SessionWindow struct {
	Start string
	End   string
}

// Schedule 为时段名到时间窗口的映射。
type Schedule map[string]SessionWindow

// SessionLiquidity 提取参照日期内已完成时段的高低点。伦敦时段开盘后
// 可读取亚洲时段极值，纽约上午时段开盘后可读取伦敦时段极值。
// now 为 "HH:MM" 格式的当前时间。时段内无K线时对应键不出现在结果中。
func SessionLiquidity(candles []market.Candle, schedule Schedule, now string, refDate time.Time) map[string]float64 {
	result := make(map[string]float64)
	if len(candles) == 0 {
		return result
	}

	day := refDate.Format("2006-01-02")
	london := windowOrDisabled(schedule, SessionLondon)
	newYork := windowOrDisabled(schedule, SessionNewYorkAM)

	if now >= london.Start {
		asia := windowOrDisabled(schedule, SessionAsia)
		if high, low, ok := sessionExtremes(candles, asia, day); ok {
			result[KeyAsiaHigh] = high
			result[KeyAsiaLow] = low
		}
	}

	if now >= newYork.Start {
		if high, low, ok := sessionExtremes(candles, london, day); ok {
			result[KeyLondonHigh] = high
			result[KeyLondonLow] = low
		}
	}

	return result
}

// sessionExtremes 在参照日期的 [start, end) 时间窗内取最高价与最低价。
func sessionExtremes(candles []market.Candle, window SessionWindow, day string) (high, low float64, ok bool) {
	for _, candle := range candles {
		if candle.Timestamp.Format("2006-01-02") != day {
			continue
		}
		timeOfDay := candle.Timestamp.Format("15:04")
		if timeOfDay < window.Start || timeOfDay >= window.End {
			continue
		}
		if !ok {
			high = candle.High
			low = candle.Low
			ok = true
			continue
		}
		if candle.High > high {
			high = candle.High
		}
		if candle.Low < low {
			low = candle.Low
		}
	}
	return high, low, ok
}

// windowOrDisabled 返回调度表中的时段窗口；缺失的条目以起点 "23:59"、
// 终点 "00:00" 兜底，等效于禁用该时段的提取。
func windowOrDisabled(schedule Schedule, key string) SessionWindow {
	window, exists := schedule[key]
	if !exists {
		return SessionWindow{Start: "23:59", End: "00:00"}
	}
	if window.Start == "" {
		window.Start = "23:59"
	}
	if window.End == "" {
		window.End = "00:00"
	}
	return window
}
