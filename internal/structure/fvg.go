package structure

import "ict-scanner/internal/market"

// NearestGaps 扫描全部三K线缺口，剔除已被回补的，返回距离当前价格
// 最近的一个下方看涨缺口与一个上方看跌缺口（0~2个）。
// 少于3根K线时返回空结果。
func NearestGaps(candles []market.Candle, price float64) []Gap {
	if len(candles) < 3 {
		return nil
	}

	var bullish []Gap
	var bearish []Gap

	for i := 2; i < len(candles); i++ {
		if candles[i].Low > candles[i-2].High {
			bullish = append(bullish, Gap{
				Type:         TypeBullish,
				Top:          candles[i].Low,
				Bottom:       candles[i-2].High,
				CreatedAtBar: i,
			})
		}
		if candles[i].High < candles[i-2].Low {
			bearish = append(bearish, Gap{
				Type:         TypeBearish,
				Top:          candles[i-2].Low,
				Bottom:       candles[i].High,
				CreatedAtBar: i,
			})
		}
	}

	var result []Gap

	if gap, ok := nearestBullishBelow(bullish, candles, price); ok {
		result = append(result, gap)
	}
	if gap, ok := nearestBearishAbove(bearish, candles, price); ok {
		result = append(result, gap)
	}

	return result
}

// gapFilled 判断缺口是否已被后续K线影线回补。
// 看涨缺口：任一后续K线最低价触及缺口下沿；看跌缺口：最高价触及上沿。
func gapFilled(gap Gap, candles []market.Candle) bool {
	for j := gap.CreatedAtBar + 1; j < len(candles); j++ {
		switch gap.Type {
		case TypeBullish:
			if candles[j].Low <= gap.Bottom {
				return true
			}
		case TypeBearish:
			if candles[j].High >= gap.Top {
				return true
			}
		}
	}
	return false
}

func nearestBullishBelow(gaps []Gap, candles []market.Candle, price float64) (Gap, bool) {
	var best Gap
	bestDistance := 0.0
	found := false

	for _, gap := range gaps {
		distance := price - gap.Top
		if distance <= 0 {
			continue
		}
		if gapFilled(gap, candles) {
			continue
		}
		if !found || distance < bestDistance {
			best = gap
			bestDistance = distance
			found = true
		}
	}
	if !found {
		return Gap{}, false
	}

	best.Lo = best.Bottom
	best.Hi = best.Top
	return best, true
}

func nearestBearishAbove(gaps []Gap, candles []market.Candle, price float64) (Gap, bool) {
	var best Gap
	bestDistance := 0.0
	found := false

	for _, gap := range gaps {
		distance := gap.Bottom - price
		if distance <= 0 {
			continue
		}
		if gapFilled(gap, candles) {
			continue
		}
		if !found || distance < bestDistance {
			best = gap
			bestDistance = distance
			found = true
		}
	}
	if !found {
		return Gap{}, false
	}

	best.Type = GapTypeBearShort
	best.Lo = best.Bottom
	best.Hi = best.Top
	return best, true
}
