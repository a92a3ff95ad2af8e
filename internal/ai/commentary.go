package ai

import (
	"errors"
	"fmt"
	"strings"
)

// Commentary 表示大模型返回的结构解读。
type Commentary struct {
	Symbol            string   `json:"symbol"`
	Bias              string   `json:"bias"`
	KeyLevels         []string `json:"key_levels"`
	Scenario          string   `json:"scenario"`
	InvalidationLevel string   `json:"invalidation_level"`
	Confidence        float64  `json:"confidence"`
	RiskComment       string   `json:"risk_comment"`
}

var validBiases = map[string]struct{}{
	"BULLISH": {},
	"BEARISH": {},
	"NEUTRAL": {},
}

// Validate 校验解读字段合法性。
func (c Commentary) Validate() error {
	if strings.TrimSpace(c.Symbol) == "" {
		return errors.New("symbol 不能为空")
	}

	bias := strings.ToUpper(strings.TrimSpace(c.Bias))
	if bias == "" {
		return errors.New("bias 不能为空")
	}
	if _, ok := validBiases[bias]; !ok {
		return fmt.Errorf("bias 字段取值非法: %s", c.Bias)
	}

	if c.Confidence < 0 || c.Confidence > 1 {
		return fmt.Errorf("confidence 必须在 [0,1] 区间，目前为 %f", c.Confidence)
	}

	if strings.TrimSpace(c.Scenario) == "" {
		return errors.New("scenario 不能为空")
	}

	if bias != "NEUTRAL" && strings.TrimSpace(c.InvalidationLevel) == "" {
		return errors.New("invalidation_level 不能为空 (BULLISH/BEARISH)")
	}

	return nil
}
