package replay

import (
	"context"
	"testing"
	"time"

	"ict-scanner/internal/market"
)

func zigzagCandles(n int) []market.Candle {
	start := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	candles := make([]market.Candle, n)
	price := 100.0
	for i := range candles {
		delta := 1.0
		if i%2 == 1 {
			delta = -0.6
		}
		open := price
		price += delta
		high := open
		low := price
		if price > open {
			high = price
			low = open
		}
		candles[i] = market.Candle{
			Timestamp: start.Add(time.Duration(i) * time.Hour),
			Open:      open,
			High:      high + 0.2,
			Low:       low - 0.2,
			Close:     price,
		}
	}
	return candles
}

func TestEngineRun(t *testing.T) {
	engine := NewEngine(Config{Window: 60, Horizon: 12, Stride: 12}, nil)

	stats, err := engine.Run(context.Background(), zigzagCandles(200))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if stats.WindowsScanned == 0 {
		t.Fatal("expected at least one window")
	}
	if stats.GapFillRate < 0 || stats.GapFillRate > 1 {
		t.Errorf("gap fill rate out of range: %v", stats.GapFillRate)
	}
	if stats.GapsFilled > stats.GapsDetected {
		t.Errorf("filled %d exceeds detected %d", stats.GapsFilled, stats.GapsDetected)
	}
	if stats.OrderBlocksMitigated > stats.OrderBlocksDetected {
		t.Errorf("mitigated %d exceeds detected %d", stats.OrderBlocksMitigated, stats.OrderBlocksDetected)
	}
	if stats.ShiftFollowThrough > stats.Shifts {
		t.Errorf("follow-through %d exceeds shifts %d", stats.ShiftFollowThrough, stats.Shifts)
	}
}

func TestEngineRun_TooFewCandles(t *testing.T) {
	engine := NewEngine(Config{Window: 60, Horizon: 12}, nil)
	if _, err := engine.Run(context.Background(), zigzagCandles(50)); err == nil {
		t.Fatal("expected error for insufficient candles")
	}
}

func TestEngineRun_Cancelled(t *testing.T) {
	engine := NewEngine(Config{Window: 60, Horizon: 12}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := engine.Run(ctx, zigzagCandles(200)); err == nil {
		t.Fatal("expected context error")
	}
}

func TestConfigNormalize(t *testing.T) {
	cfg := (&Config{}).normalize()
	if cfg.Window != 200 || cfg.Horizon != 24 || cfg.Stride != 24 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}
