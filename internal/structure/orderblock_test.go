package structure

import "testing"

func TestNearestOrderBlocks_BearishUnmitigated(t *testing.T) {
	candles := mkCandles([][4]float64{
		{100, 105, 99, 104},
		{104, 106, 103, 105},
		{105, 110, 104, 109}, // bullish body, broken by next close below its low
		{105, 106, 100, 101},
		{101, 103, 98, 99}, // high stays under the 50% level (107)
	})

	blocks := NearestOrderBlocks(candles, 100)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}

	block := blocks[0]
	if block.Type != OrderBlockBear {
		t.Errorf("expected type %q, got %q", OrderBlockBear, block.Type)
	}
	if block.Top != 110 || block.Bottom != 104 || block.BarIndex != 2 {
		t.Errorf("unexpected block: %+v", block)
	}
}

func TestNearestOrderBlocks_MitigatedExcluded(t *testing.T) {
	candles := mkCandles([][4]float64{
		{100, 105, 99, 104},
		{104, 106, 103, 105},
		{105, 110, 104, 109},
		{105, 106, 100, 101},
		{101, 108, 98, 99}, // wick to 108 crosses the 50% level (107)
	})

	if blocks := NearestOrderBlocks(candles, 100); len(blocks) != 0 {
		t.Fatalf("expected no blocks, got %d", len(blocks))
	}
}

func TestNearestOrderBlocks_BullishUnmitigated(t *testing.T) {
	candles := mkCandles([][4]float64{
		{100, 105, 99, 104},
		{104, 106, 103, 105},
		{109, 110, 104, 105}, // bearish body, broken by next close above its high
		{106, 112, 105, 111},
		{111, 113, 109, 112}, // low stays above the 50% level (107)
	})

	blocks := NearestOrderBlocks(candles, 100)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}

	block := blocks[0]
	if block.Type != OrderBlockBull {
		t.Errorf("expected type %q, got %q", OrderBlockBull, block.Type)
	}
	if block.Top != 110 || block.Bottom != 104 || block.BarIndex != 2 {
		t.Errorf("unexpected block: %+v", block)
	}
}

func TestNearestOrderBlocks_MostRecentCandidateWins(t *testing.T) {
	candles := mkCandles([][4]float64{
		{100, 105, 99, 104},
		{104, 106, 103, 105},
		{105, 110, 104, 109}, // older bearish candidate
		{105, 106, 95, 96},
		{96, 97, 90, 91},
		{91, 99, 90, 98}, // newer bearish candidate, 50% level 94.5
		{95, 96, 85, 86},
		{86, 88, 84, 85},
	})

	blocks := NearestOrderBlocks(candles, 100)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].BarIndex != 5 {
		t.Errorf("expected the newer candidate at bar 5, got bar %d", blocks[0].BarIndex)
	}
	if blocks[0].Top != 99 || blocks[0].Bottom != 90 {
		t.Errorf("unexpected block bounds: %+v", blocks[0])
	}
}

func TestNearestOrderBlocks_TooFewCandles(t *testing.T) {
	candles := mkCandles([][4]float64{
		{100, 105, 99, 104},
		{104, 106, 103, 105},
		{105, 110, 104, 109},
		{105, 106, 100, 101},
	})
	if blocks := NearestOrderBlocks(candles, 100); len(blocks) != 0 {
		t.Fatalf("expected empty result for <5 candles, got %d", len(blocks))
	}
}
