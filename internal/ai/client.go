package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"ict-scanner/internal/config"
	"ict-scanner/internal/report"
)

// Client 封装 OpenAI 调用逻辑。
type Client struct {
	cfg    config.OpenAIConfig
	logger *zap.Logger
	sdk    *openai.Client
}

// NewClient 使用给定配置创建 AI 客户端。
func NewClient(cfg config.OpenAIConfig, logger *zap.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai api_key 不能为空")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	sdkConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		sdkConfig.BaseURL = cfg.BaseURL
	}

	httpClient := &http.Client{
		Timeout: cfg.Timeout + 5*time.Second,
	}
	sdkConfig.HTTPClient = httpClient
	client := openai.NewClientWithConfig(sdkConfig)

	return &Client{
		cfg:    cfg,
		logger: logger,
		sdk:    client,
	}, nil
}

// GenerateCommentary 根据结构报告获取模型解读。
func (c *Client) GenerateCommentary(ctx context.Context, snapshot report.Snapshot) (Commentary, error) {
	if c.cfg.Model == "" {
		return Commentary{}, errors.New("openai model 不能为空")
	}

	prompt, err := BuildPrompt(snapshot)
	if err != nil {
		return Commentary{}, err
	}

	response, err := c.sdk.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: 0,
	})
	if err != nil {
		c.logger.Error("调用OpenAI失败", zap.Error(err))
		return Commentary{}, fmt.Errorf("调用OpenAI失败: %w", err)
	}

	if len(response.Choices) == 0 {
		return Commentary{}, errors.New("OpenAI 返回结果为空")
	}

	rawContent := strings.TrimSpace(response.Choices[0].Message.Content)
	if rawContent == "" {
		return Commentary{}, errors.New("OpenAI 返回内容为空")
	}

	commentary, err := parseCommentary(rawContent)
	if err != nil {
		c.logger.Error("解析模型解读失败",
			zap.Error(err),
			zap.String("raw_content", rawContent),
		)
		return Commentary{}, err
	}

	if err := commentary.Validate(); err != nil {
		return Commentary{}, err
	}

	c.logger.Info("AI 解读生成成功",
		zap.String("symbol", commentary.Symbol),
		zap.String("bias", commentary.Bias),
		zap.Float64("confidence", commentary.Confidence),
	)

	return commentary, nil
}

func parseCommentary(content string) (Commentary, error) {
	jsonPayload, err := extractJSON(content)
	if err != nil {
		return Commentary{}, err
	}

	var commentary Commentary
	if err = json.Unmarshal(jsonPayload, &commentary); err != nil {
		return Commentary{}, fmt.Errorf("解析解读JSON失败: %w", err)
	}

	return commentary, nil
}

func extractJSON(content string) ([]byte, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")

	if start == -1 || end == -1 || end <= start {
		return nil, fmt.Errorf("模型输出未找到有效JSON: %s", content)
	}

	return []byte(content[start : end+1]), nil
}
