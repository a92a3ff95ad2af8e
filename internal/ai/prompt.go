package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"text/template"

	"ict-scanner/internal/report"
)

const commentaryTemplate = `
你是一个熟悉 ICT（Inner Circle Trader）方法论的市场结构分析师。你的任务是根据提供的结构扫描报告，给出客观的结构解读。不要给出任何下单建议。

当前结构扫描报告：
{{ .ReportJSON }}

解读时请遵循：
1. 先结合结构转换（BOS/CHoCH）与溢价/折价位置判断主要倾向；
2. 列出最关键的价格水平（未回补缺口、流动性高低点、未缓解订单块）；
3. 描述最可能的剧本：价格倾向于先扫哪侧流动性、在何处可能反应；
4. 给出使当前解读失效的价格水平；
5. 信号相互矛盾时保持中性，不要强行给出方向。

请严格输出唯一的 JSON 对象，格式如下：
{
  "symbol": "...",                                      // 交易对，与报告一致
  "bias": "BULLISH|BEARISH|NEUTRAL",                    // 结构倾向
  "key_levels": ["..."],                                // 关键价格水平及其含义
  "scenario": "...",                                    // 最可能的剧本描述
  "invalidation_level": "...",                          // 失效价格（NEUTRAL 时可为空）
  "confidence": 0.0-1.0,                                 // 解读信心度
  "risk_comment": "..."                                 // 特别风险提示或注意事项
}

注意事项：
- 所有价格必须来自报告中的数值，不要编造。
- bias 为 NEUTRAL 时请在 scenario 中说明双向的触发条件。
`

var tmpl = template.Must(template.New("commentary").Parse(commentaryTemplate))

// PromptContext 用于渲染提示词。
type PromptContext struct {
	Report     report.Snapshot
	ReportJSON string
}

// BuildPrompt 将结构报告渲染成提示词字符串。
func BuildPrompt(snapshot report.Snapshot) (string, error) {
	reportJSONBytes, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("序列化结构报告失败: %w", err)
	}

	ctx := PromptContext{
		Report:     snapshot,
		ReportJSON: string(reportJSONBytes),
	}

	var buf bytes.Buffer
	if err = tmpl.Execute(&buf, ctx); err != nil {
		return "", fmt.Errorf("渲染提示词失败: %w", err)
	}

	return buf.String(), nil
}
