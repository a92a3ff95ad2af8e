package structure

import "ict-scanner/internal/market"

// NearestOrderBlocks 在回看窗口内自最近向最早扫描，返回每侧距今最近的
// 未缓解订单块（至多一个看涨、一个看跌）。
//
// 看跌候选：阳线实体的K线 i，其后一根收盘跌破 i 的最低价；
// 看涨候选：阴线实体的K线 i，其后一根收盘突破 i 的最高价。
// 候选一旦被后续K线触及其区间50%回撤位即视为已缓解。
// 少于5根K线时返回空结果。
func NearestOrderBlocks(candles []market.Candle, lookback int) []OrderBlock {
	if lookback <= 0 {
		lookback = DefaultOrderBlockLookback
	}
	if len(candles) < 5 {
		return nil
	}

	offset := 0
	window := candles
	if len(candles) > lookback {
		offset = len(candles) - lookback
		window = candles[offset:]
	}

	var bull *OrderBlock
	var bear *OrderBlock

	for i := len(window) - 3; i >= 2; i-- {
		candle := window[i]
		next := window[i+1]
		midpoint := candle.Low + 0.5*(candle.High-candle.Low)

		if bear == nil && candle.Close > candle.Open && next.Close < candle.Low {
			if !mitigatedFromAbove(window, i+2, midpoint) {
				bear = &OrderBlock{
					Top:      candle.High,
					Bottom:   candle.Low,
					BarIndex: offset + i,
					Type:     OrderBlockBear,
				}
			}
		}

		if bull == nil && candle.Close < candle.Open && next.Close > candle.High {
			if !mitigatedFromBelow(window, i+2, midpoint) {
				bull = &OrderBlock{
					Top:      candle.High,
					Bottom:   candle.Low,
					BarIndex: offset + i,
					Type:     OrderBlockBull,
				}
			}
		}

		if bull != nil && bear != nil {
			break
		}
	}

	var result []OrderBlock
	if bull != nil {
		result = append(result, *bull)
	}
	if bear != nil {
		result = append(result, *bear)
	}
	return result
}

// mitigatedFromAbove 判断后续K线的最高价是否触及50%回撤位。
func mitigatedFromAbove(window []market.Candle, from int, level float64) bool {
	for j := from; j < len(window); j++ {
		if window[j].High >= level {
			return true
		}
	}
	return false
}

// mitigatedFromBelow 判断后续K线的最低价是否触及50%回撤位。
func mitigatedFromBelow(window []market.Candle, from int, level float64) bool {
	for j := from; j < len(window); j++ {
		if window[j].Low <= level {
			return true
		}
	}
	return false
}
