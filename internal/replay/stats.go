package replay

// Stats 汇总重放统计结果。
type Stats struct {
	WindowsScanned int

	GapsDetected int
	GapsFilled   int
	GapFillRate  float64

	OrderBlocksDetected      int
	OrderBlocksMitigated     int
	OrderBlockMitigationRate float64

	Shifts                 int
	ShiftFollowThrough     int
	ShiftFollowThroughRate float64
}

func (s *Stats) finalize() {
	s.GapFillRate = rate(s.GapsFilled, s.GapsDetected)
	s.OrderBlockMitigationRate = rate(s.OrderBlocksMitigated, s.OrderBlocksDetected)
	s.ShiftFollowThroughRate = rate(s.ShiftFollowThrough, s.Shifts)
}

func rate(hits, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total)
}
