package market

import "time"

const (
	// Timeframe15m 为日内缺口与时段流动性分析周期。
	Timeframe15m = "15m"
	// Timeframe1h 为结构分析主周期。
	Timeframe1h = "1h"
	// Timeframe4h 为溢价/折价区间参考周期。
	Timeframe4h = "4h"
)

// Candle 代表单根K线。
type Candle struct {
	Timestamp time.Time
	Open      float64
	High      float64
	Low       float64
	Close     float64
	Volume    float64
}

// Snapshot 聚合多个时间框架的K线数据。
type Snapshot struct {
	Symbol      string
	Candles15M  []Candle
	Candles1H   []Candle
	Candles4H   []Candle
	RetrievedAt time.Time
}

// SnapshotRequest 控制一次快照采集的参数。
type SnapshotRequest struct {
	Limit15M int
	Limit1H  int
	Limit4H  int
}

// DefaultSnapshotRequest 返回默认快照参数。
func DefaultSnapshotRequest() SnapshotRequest {
	return SnapshotRequest{
		Limit15M: 200,
		Limit1H:  300,
		Limit4H:  120,
	}
}

// LastClose 返回最新收盘价，无数据时返回0。
func (s Snapshot) LastClose() float64 {
	if len(s.Candles1H) > 0 {
		return s.Candles1H[len(s.Candles1H)-1].Close
	}
	if len(s.Candles15M) > 0 {
		return s.Candles15M[len(s.Candles15M)-1].Close
	}
	return 0
}
