package structure

import (
	"time"

	"ict-scanner/internal/market"
)

// mkCandles builds an hourly candle sequence from [open, high, low, close] rows.
func mkCandles(rows [][4]float64) []market.Candle {
	base := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	candles := make([]market.Candle, len(rows))
	for i, row := range rows {
		candles[i] = market.Candle{
			Timestamp: base.Add(time.Duration(i) * time.Hour),
			Open:      row[0],
			High:      row[1],
			Low:       row[2],
			Close:     row[3],
		}
	}
	return candles
}

// flatCandles builds n candles whose closes are given and whose highs/lows
// hug the close, useful when only closes matter.
func flatCandles(closes []float64) []market.Candle {
	rows := make([][4]float64, len(closes))
	for i, c := range closes {
		rows[i] = [4]float64{c, c + 0.1, c - 0.1, c}
	}
	return mkCandles(rows)
}
