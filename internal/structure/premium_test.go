package structure

import "testing"

func trendingRange() [][4]float64 {
	rows := make([][4]float64, 20)
	for i := range rows {
		high := float64(100 + i)
		low := float64(50 + i)
		rows[i] = [4]float64{low + 10, high, low, high - 10}
	}
	return rows
}

func TestAnalyzeRange_PremiumAndDiscount(t *testing.T) {
	candles := mkCandles(trendingRange())
	// range high 119, range low 50, equilibrium 84.5

	cases := []struct {
		name   string
		price  float64
		status string
	}{
		{"above equilibrium", 90, StatusPremium},
		{"below equilibrium", 80, StatusDiscount},
		{"at equilibrium", 84.5, StatusDiscount},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pos := AnalyzeRange(candles, tc.price, 200)
			if pos == nil {
				t.Fatal("expected a range position")
			}
			if pos.RangeHigh != 119 || pos.RangeLow != 50 {
				t.Errorf("unexpected range: high=%v low=%v", pos.RangeHigh, pos.RangeLow)
			}
			if pos.Equilibrium != 84.5 {
				t.Errorf("unexpected equilibrium: %v", pos.Equilibrium)
			}
			if pos.Status != tc.status {
				t.Errorf("expected status %q, got %q", tc.status, pos.Status)
			}
		})
	}
}

func TestAnalyzeRange_DegenerateRange(t *testing.T) {
	rows := make([][4]float64, 25)
	for i := range rows {
		rows[i] = [4]float64{100, 100, 100, 100}
	}
	if pos := AnalyzeRange(mkCandles(rows), 100, 200); pos != nil {
		t.Fatalf("expected nil for degenerate range, got %+v", pos)
	}
}

func TestAnalyzeRange_TooFewCandles(t *testing.T) {
	candles := mkCandles(trendingRange()[:10])
	if pos := AnalyzeRange(candles, 90, 200); pos != nil {
		t.Fatalf("expected nil for <20 candles, got %+v", pos)
	}
}
