package structure

import "testing"

func TestNearestGaps_BullishBelowPrice(t *testing.T) {
	candles := mkCandles([][4]float64{
		{95, 100, 90, 98},
		{98, 103, 97, 102},
		{103, 110, 105, 109}, // low 105 > candle0 high 100: bullish gap [100,105]
		{105, 112, 102, 111},
	})

	gaps := NearestGaps(candles, 120)
	if len(gaps) != 1 {
		t.Fatalf("expected 1 gap, got %d", len(gaps))
	}

	gap := gaps[0]
	if gap.Type != TypeBullish {
		t.Errorf("expected type %q, got %q", TypeBullish, gap.Type)
	}
	if gap.Top != 105 || gap.Bottom != 100 {
		t.Errorf("unexpected gap bounds: top=%v bottom=%v", gap.Top, gap.Bottom)
	}
	if gap.CreatedAtBar != 2 {
		t.Errorf("expected created_at_bar=2, got %d", gap.CreatedAtBar)
	}
	if gap.Lo != gap.Bottom || gap.Hi != gap.Top {
		t.Errorf("lo/hi aliases not populated: lo=%v hi=%v", gap.Lo, gap.Hi)
	}
}

func TestNearestGaps_FilledGapExcludedAfterAppend(t *testing.T) {
	candles := mkCandles([][4]float64{
		{95, 100, 90, 98},
		{98, 103, 97, 102},
		{103, 110, 105, 109},
		{105, 112, 102, 111},
	})

	if gaps := NearestGaps(candles, 120); len(gaps) != 1 {
		t.Fatalf("expected gap before fill, got %d", len(gaps))
	}

	// A wick down to 99 crosses the gap bottom (100) and fills it.
	candles = append(candles, mkCandles([][4]float64{{111, 112, 99, 101}})...)

	if gaps := NearestGaps(candles, 120); len(gaps) != 0 {
		t.Fatalf("expected no gaps after fill, got %d", len(gaps))
	}
}

func TestNearestGaps_BearishAboveGetsShortCode(t *testing.T) {
	candles := mkCandles([][4]float64{
		{105, 110, 100, 102},
		{102, 104, 97, 98},
		{94, 95, 88, 90}, // high 95 < candle0 low 100: bearish gap [95,100]
	})

	gaps := NearestGaps(candles, 80)
	if len(gaps) != 1 {
		t.Fatalf("expected 1 gap, got %d", len(gaps))
	}

	gap := gaps[0]
	if gap.Type != GapTypeBearShort {
		t.Errorf("expected type %q, got %q", GapTypeBearShort, gap.Type)
	}
	if gap.Top != 100 || gap.Bottom != 95 {
		t.Errorf("unexpected gap bounds: top=%v bottom=%v", gap.Top, gap.Bottom)
	}
	if gap.Lo != 95 || gap.Hi != 100 {
		t.Errorf("unexpected aliases: lo=%v hi=%v", gap.Lo, gap.Hi)
	}
}

func TestNearestGaps_NearestWins(t *testing.T) {
	// Several unfilled bullish gaps below price; the one with the highest top is nearest.
	candles := mkCandles([][4]float64{
		{50, 55, 45, 54},
		{54, 58, 53, 57},
		{59, 65, 60, 64}, // gap [55,60]
		{64, 68, 63, 67},
		{70, 78, 72, 77},
		{77, 80, 74, 79}, // gap [68,74] vs candle3 high
	})

	gaps := NearestGaps(candles, 100)
	if len(gaps) != 1 {
		t.Fatalf("expected 1 gap, got %d", len(gaps))
	}
	if gaps[0].Top != 74 || gaps[0].Bottom != 68 {
		t.Errorf("expected nearest gap [68,74], got [%v,%v]", gaps[0].Bottom, gaps[0].Top)
	}
}

func TestNearestGaps_TooFewCandles(t *testing.T) {
	candles := mkCandles([][4]float64{
		{95, 100, 90, 98},
		{98, 103, 97, 102},
	})
	if gaps := NearestGaps(candles, 120); len(gaps) != 0 {
		t.Fatalf("expected empty result for <3 candles, got %d", len(gaps))
	}
}
