package structure

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

const (
	minutesPerDay           = 24 * 60
	silverBulletOffsetMin   = 90
	silverBulletDurationMin = 60
)

// InSilverBulletWindow 判断当前时间是否落在银弹窗口内：纽约上午
// killzone 开盘后90分钟起、持续1小时的固定窗口，区间为左闭右开。
// 调度表缺少 newyork_am 或时间解析失败时返回 false 并记录日志，不报错。
func InSilverBulletWindow(now string, schedule Schedule, logger *zap.Logger) bool {
	if logger == nil {
		logger = zap.NewNop()
	}

	window, exists := schedule[SessionNewYorkAM]
	if !exists || window.Start == "" {
		logger.Debug("银弹窗口检查跳过：缺少 newyork_am 时段配置")
		return false
	}

	openMinute, err := minuteOfDay(window.Start)
	if err != nil {
		logger.Warn("解析纽约上午时段开盘时间失败",
			zap.String("start", window.Start),
			zap.Error(err),
		)
		return false
	}

	nowMinute, err := minuteOfDay(now)
	if err != nil {
		logger.Warn("解析当前时间失败",
			zap.String("now", now),
			zap.Error(err),
		)
		return false
	}

	windowStart := (openMinute + silverBulletOffsetMin) % minutesPerDay
	windowEnd := (windowStart + silverBulletDurationMin) % minutesPerDay

	if windowStart < windowEnd {
		return nowMinute >= windowStart && nowMinute < windowEnd
	}
	// 窗口跨越午夜。
	return nowMinute >= windowStart || nowMinute < windowEnd
}

// minuteOfDay 将 "HH:MM" 解析为当日分钟数。
func minuteOfDay(value string) (int, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, fmt.Errorf("解析时间 %q 失败: %w", value, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}
