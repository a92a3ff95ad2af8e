package structure

import "testing"

func TestFindLiquidityVoids_SingleBullishVoid(t *testing.T) {
	candles := mkCandles([][4]float64{
		{100, 101, 99, 100.5},
		{100, 110.5, 99.8, 110}, // body 10 of range 10.7
		{110, 111, 109.5, 110.2},
		{110.2, 111, 109.6, 110.5},
		{110.5, 111.2, 109.8, 110.6},
	})

	voids := FindLiquidityVoids(candles, 0)
	if len(voids) != 1 {
		t.Fatalf("expected 1 void, got %d: %+v", len(voids), voids)
	}
	got := voids[0]
	if got.Type != TypeBullish || got.Bottom != 100 || got.Top != 110 || got.BarIndex != 1 {
		t.Errorf("unexpected void: %+v", got)
	}
}

func TestFindLiquidityVoids_FilledWithinHorizon(t *testing.T) {
	candles := mkCandles([][4]float64{
		{100, 101, 99, 100.5},
		{100, 110.5, 99.8, 110},
		{110, 111, 99, 110.2}, // retrace below the void open fills it
		{110.2, 111, 109.6, 110.5},
		{110.5, 111.2, 109.8, 110.6},
	})

	voids := FindLiquidityVoids(candles, 0)
	if len(voids) != 0 {
		t.Errorf("expected no voids after retrace, got %+v", voids)
	}
}

func TestFindLiquidityVoids_BearishVoid(t *testing.T) {
	candles := mkCandles([][4]float64{
		{110, 111, 109, 110.2},
		{110, 110.2, 99.5, 100}, // body 10 of range 10.7
		{100, 101, 99, 100.3},
		{100.3, 101.2, 99.4, 100.1},
		{100.1, 100.9, 99.2, 100.4},
	})

	voids := FindLiquidityVoids(candles, 0)
	if len(voids) != 1 {
		t.Fatalf("expected 1 void, got %d: %+v", len(voids), voids)
	}
	got := voids[0]
	if got.Type != TypeBearish || got.Top != 110 || got.Bottom != 100 || got.BarIndex != 1 {
		t.Errorf("unexpected void: %+v", got)
	}
}

func TestFindLiquidityVoids_CapAtThreeMostRecent(t *testing.T) {
	rows := make([][4]float64, 12)
	for i := range rows {
		open := 100 + 5*float64(i)
		rows[i] = [4]float64{open, open + 4.5, open - 0.2, open + 4}
	}
	candles := mkCandles(rows)

	voids := FindLiquidityVoids(candles, 0)
	if len(voids) != maxVoids {
		t.Fatalf("expected %d voids, got %d", maxVoids, len(voids))
	}
	for n, wantBar := range []int{11, 10, 9} {
		got := voids[n]
		open := 100 + 5*float64(wantBar)
		if got.BarIndex != wantBar || got.Type != TypeBullish || got.Bottom != open || got.Top != open+4 {
			t.Errorf("void[%d] = %+v, want bullish bar %d [%v, %v]", n, got, wantBar, open, open+4)
		}
	}
}

func TestFindLiquidityVoids_LookbackWindow(t *testing.T) {
	candles := mkCandles([][4]float64{
		{100, 101, 99, 100.2},
		{100, 110.5, 99.8, 110}, // big body, but outside the lookback window
		{110, 111, 109.5, 110.2},
		{110.2, 111, 109.6, 110.5},
		{110.5, 121.2, 110.3, 121},
		{121, 122, 120.6, 121.3},
	})

	voids := FindLiquidityVoids(candles, 4)
	if len(voids) != 1 {
		t.Fatalf("expected 1 void, got %d: %+v", len(voids), voids)
	}
	got := voids[0]
	if got.BarIndex != 4 || got.Bottom != 110.5 || got.Top != 121 {
		t.Errorf("unexpected void: %+v", got)
	}
}

func TestFindLiquidityVoids_TooFewCandles(t *testing.T) {
	candles := mkCandles([][4]float64{{100, 110.5, 99.8, 110}, {110, 111, 109.5, 110.2}})
	if voids := FindLiquidityVoids(candles, 0); voids != nil {
		t.Errorf("expected nil for fewer than 3 candles, got %+v", voids)
	}
}
