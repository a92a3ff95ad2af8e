package structure

import (
	"testing"
	"time"

	"ict-scanner/internal/market"
)

func testSchedule() Schedule {
	return Schedule{
		SessionAsia:      {Start: "00:00", End: "06:00"},
		SessionLondon:    {Start: "07:00", End: "10:00"},
		SessionNewYorkAM: {Start: "13:30", End: "16:00"},
	}
}

func sessionCandle(day time.Time, hour, minute int, high, low float64) market.Candle {
	ts := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC)
	return market.Candle{
		Timestamp: ts,
		Open:      (high + low) / 2,
		High:      high,
		Low:       low,
		Close:     (high + low) / 2,
	}
}

func TestSessionLiquidity_AsiaAfterLondonOpen(t *testing.T) {
	day := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	prevDay := day.AddDate(0, 0, -1)
	candles := []market.Candle{
		sessionCandle(prevDay, 23, 0, 200, 10), // previous day, must be ignored
		sessionCandle(day, 0, 0, 105, 95),
		sessionCandle(day, 1, 0, 107, 93),
		sessionCandle(day, 7, 0, 110, 100),
	}

	levels := SessionLiquidity(candles, testSchedule(), "08:00", day)

	if levels[KeyAsiaHigh] != 107 || levels[KeyAsiaLow] != 93 {
		t.Errorf("unexpected asia levels: %+v", levels)
	}
	if _, ok := levels[KeyLondonHigh]; ok {
		t.Errorf("london levels must not appear before newyork_am opens: %+v", levels)
	}
}

func TestSessionLiquidity_LondonAfterNewYorkOpen(t *testing.T) {
	day := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	candles := []market.Candle{
		sessionCandle(day, 0, 0, 105, 95),
		sessionCandle(day, 7, 0, 110, 100),
		sessionCandle(day, 9, 45, 112, 102),
		sessionCandle(day, 10, 0, 300, 1), // at london end, excluded by [start, end)
	}

	levels := SessionLiquidity(candles, testSchedule(), "14:00", day)

	if levels[KeyAsiaHigh] != 105 || levels[KeyAsiaLow] != 95 {
		t.Errorf("unexpected asia levels: %+v", levels)
	}
	if levels[KeyLondonHigh] != 112 || levels[KeyLondonLow] != 100 {
		t.Errorf("unexpected london levels: %+v", levels)
	}
}

func TestSessionLiquidity_BeforeLondonOpen(t *testing.T) {
	day := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	candles := []market.Candle{sessionCandle(day, 0, 0, 105, 95)}

	levels := SessionLiquidity(candles, testSchedule(), "06:30", day)
	if len(levels) != 0 {
		t.Errorf("expected no levels before london open, got %+v", levels)
	}
}

func TestSessionLiquidity_NoMatchingCandlesLeavesKeysAbsent(t *testing.T) {
	day := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	candles := []market.Candle{sessionCandle(day, 6, 30, 105, 95)} // outside every window

	levels := SessionLiquidity(candles, testSchedule(), "08:00", day)
	if _, ok := levels[KeyAsiaHigh]; ok {
		t.Errorf("asia_high must be absent, got %+v", levels)
	}
	if _, ok := levels[KeyAsiaLow]; ok {
		t.Errorf("asia_low must be absent, got %+v", levels)
	}
}

func TestSessionLiquidity_MissingScheduleEntryDisablesLookup(t *testing.T) {
	day := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	candles := []market.Candle{sessionCandle(day, 0, 0, 105, 95)}

	schedule := Schedule{SessionAsia: {Start: "00:00", End: "06:00"}}
	levels := SessionLiquidity(candles, schedule, "08:00", day)
	if len(levels) != 0 {
		t.Errorf("expected no levels without a london schedule entry, got %+v", levels)
	}
}

func TestSessionLiquidity_NoCandles(t *testing.T) {
	day := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	levels := SessionLiquidity(nil, testSchedule(), "14:00", day)
	if len(levels) != 0 {
		t.Errorf("expected empty mapping, got %+v", levels)
	}
}

func TestInSilverBulletWindow(t *testing.T) {
	schedule := Schedule{SessionNewYorkAM: {Start: "08:30", End: "11:00"}}

	cases := []struct {
		now  string
		want bool
	}{
		{"09:59", false},
		{"10:00", true},
		{"10:30", true},
		{"10:59", true},
		{"11:00", false},
	}
	for _, tc := range cases {
		if got := InSilverBulletWindow(tc.now, schedule, nil); got != tc.want {
			t.Errorf("InSilverBulletWindow(%q) = %v, want %v", tc.now, got, tc.want)
		}
	}
}

func TestInSilverBulletWindow_MissingOrMalformedSchedule(t *testing.T) {
	if InSilverBulletWindow("10:00", Schedule{}, nil) {
		t.Error("expected false without newyork_am entry")
	}
	if InSilverBulletWindow("10:00", Schedule{SessionNewYorkAM: {Start: "8h30"}}, nil) {
		t.Error("expected false for malformed start time")
	}
	if InSilverBulletWindow("later", Schedule{SessionNewYorkAM: {Start: "08:30"}}, nil) {
		t.Error("expected false for malformed current time")
	}
}
