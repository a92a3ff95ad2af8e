package notify

import (
	"fmt"
	"strings"

	"ict-scanner/internal/ai"
	"ict-scanner/internal/report"
	"ict-scanner/internal/structure"
)

// FormatReport 将结构扫描报告渲染成 Telegram HTML 消息。
func FormatReport(snapshot report.Snapshot, commentary *ai.Commentary) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>ICT 结构扫描</b> | %s\n", snapshot.Symbol))
	b.WriteString(fmt.Sprintf("时间: %s UTC | 价格: %.2f\n\n", snapshot.GeneratedAt.Format("2006-01-02 15:04"), snapshot.Price))

	if snapshot.Range != nil {
		label := "折价区"
		if snapshot.Range.Status == structure.StatusPremium {
			label = "溢价区"
		}
		b.WriteString(fmt.Sprintf("🎯 区间位置: <b>%s</b>\n", label))
		b.WriteString(fmt.Sprintf("   区间 %.2f ~ %.2f | 中轴 %.2f\n", snapshot.Range.RangeLow, snapshot.Range.RangeHigh, snapshot.Range.Equilibrium))
	}

	if snapshot.Shift != nil {
		b.WriteString(fmt.Sprintf("🔀 结构转换: <b>%s</b> (%s) @ %.2f\n", snapshot.Shift.Event, directionLabel(snapshot.Shift.Type), snapshot.Shift.PriceLevel))
	}

	if len(snapshot.Gaps) > 0 {
		b.WriteString("\n🕳 <b>未回补缺口:</b>\n")
		for _, gap := range snapshot.Gaps {
			b.WriteString(fmt.Sprintf("  %s FVG: %.2f ~ %.2f\n", directionLabel(gap.Type), gap.Lo, gap.Hi))
		}
	}

	if len(snapshot.Liquidity.Highs) > 0 || len(snapshot.Liquidity.Lows) > 0 {
		b.WriteString("\n💧 <b>流动性水平:</b>\n")
		for _, point := range snapshot.Liquidity.Highs {
			b.WriteString(fmt.Sprintf("  BSL %.2f\n", point.Price))
		}
		for _, point := range snapshot.Liquidity.Lows {
			b.WriteString(fmt.Sprintf("  SSL %.2f\n", point.Price))
		}
	}

	if len(snapshot.OrderBlocks) > 0 {
		b.WriteString("\n📦 <b>未缓解订单块:</b>\n")
		for _, block := range snapshot.OrderBlocks {
			b.WriteString(fmt.Sprintf("  %s OB: %.2f ~ %.2f\n", directionLabel(block.Type), block.Bottom, block.Top))
		}
	}

	if len(snapshot.Sessions) > 0 {
		b.WriteString("\n🕐 <b>时段流动性:</b>\n")
		writeSessionLevel(&b, snapshot.Sessions, structure.KeyAsiaHigh, "亚洲高点")
		writeSessionLevel(&b, snapshot.Sessions, structure.KeyAsiaLow, "亚洲低点")
		writeSessionLevel(&b, snapshot.Sessions, structure.KeyLondonHigh, "伦敦高点")
		writeSessionLevel(&b, snapshot.Sessions, structure.KeyLondonLow, "伦敦低点")
	}

	if len(snapshot.Voids) > 0 {
		b.WriteString("\n🌫 <b>流动性真空:</b>\n")
		for _, void := range snapshot.Voids {
			b.WriteString(fmt.Sprintf("  %s: %.2f ~ %.2f\n", directionLabel(void.Type), void.Bottom, void.Top))
		}
	}

	if snapshot.SilverBullet {
		b.WriteString("\n⚡ <b>银弹窗口进行中</b>\n")
	}

	b.WriteString(fmt.Sprintf("\n📈 RSI %.1f | ADX %.1f | ATR %.2f (%.2f%%)\n",
		snapshot.Indicators.RSI,
		snapshot.Indicators.ADX,
		snapshot.Indicators.ATR.Absolute,
		snapshot.Indicators.ATR.Relative*100,
	))

	if commentary != nil {
		b.WriteString(fmt.Sprintf("\n🤖 <b>AI 解读:</b> %s (信心 %.0f%%)\n", commentary.Bias, commentary.Confidence*100))
		b.WriteString(fmt.Sprintf("   %s\n", commentary.Scenario))
		if commentary.InvalidationLevel != "" {
			b.WriteString(fmt.Sprintf("   失效位: %s\n", commentary.InvalidationLevel))
		}
		if commentary.RiskComment != "" {
			b.WriteString(fmt.Sprintf("   ⚠️ %s\n", commentary.RiskComment))
		}
	}

	return b.String()
}

func writeSessionLevel(b *strings.Builder, sessions map[string]float64, key, label string) {
	if price, ok := sessions[key]; ok {
		b.WriteString(fmt.Sprintf("  %s: %.2f\n", label, price))
	}
}

func directionLabel(value string) string {
	switch value {
	case structure.TypeBullish, structure.OrderBlockBull:
		return "看涨"
	case structure.TypeBearish, structure.GapTypeBearShort:
		return "看跌"
	default:
		return value
	}
}
