package config

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/multierr"
)

// Config 聚合了系统运行所需的全部配置项。
type Config struct {
	App       AppConfig                `mapstructure:"app"`
	Exchange  ExchangeConfig           `mapstructure:"exchange"`
	OpenAI    OpenAIConfig             `mapstructure:"openai"`
	Analysis  AnalysisConfig           `mapstructure:"analysis"`
	Sessions  map[string]SessionConfig `mapstructure:"sessions"`
	Telegram  TelegramConfig           `mapstructure:"telegram"`
	Database  DatabaseConfig           `mapstructure:"database"`
	Logging   LoggingConfig            `mapstructure:"logging"`
	Scheduler SchedulerConfig          `mapstructure:"scheduler"`
	Monitor   MonitorConfig            `mapstructure:"monitor"`
}

// AppConfig 控制应用级参数。
type AppConfig struct {
	Environment string `mapstructure:"environment"`
}

// ExchangeConfig 描述行情数据源连接信息。
type ExchangeConfig struct {
	Name       string      `mapstructure:"name"`
	Markets    []string    `mapstructure:"markets"`
	APIKey     string      `mapstructure:"api_key"`
	APISecret  string      `mapstructure:"api_secret"`
	UseSandbox bool        `mapstructure:"use_sandbox"`
	Retry      RetryConfig `mapstructure:"retry"`
}

// RetryConfig 统一控制重试机制。
type RetryConfig struct {
	MaxAttempts int           `mapstructure:"max_attempts"`
	MinDelay    time.Duration `mapstructure:"min_delay"`
	MaxDelay    time.Duration `mapstructure:"max_delay"`
}

// OpenAIConfig 描述大模型调用参数。
type OpenAIConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	APIKey  string        `mapstructure:"api_key"`
	BaseURL string        `mapstructure:"base_url"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// AnalysisConfig 控制各结构识别器的回看深度。零值表示使用内置默认。
type AnalysisConfig struct {
	LiquidityLookback  int `mapstructure:"liquidity_lookback"`
	OrderblockLookback int `mapstructure:"orderblock_lookback"`
	RangeLookback      int `mapstructure:"range_lookback"`
	VoidLookback       int `mapstructure:"void_lookback"`
}

// SessionConfig 描述一个交易时段的起止时间，格式 "HH:MM"（24小时制）。
type SessionConfig struct {
	Start string `mapstructure:"start"`
	End   string `mapstructure:"end"`
}

// TelegramConfig 控制报告推送。
type TelegramConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	BotToken   string `mapstructure:"bot_token"`
	ChatID     string `mapstructure:"chat_id"`
	ProxyURL   string `mapstructure:"proxy_url"`
	MaxRetries int    `mapstructure:"max_retries"`
}

// DatabaseConfig 管理数据库连接。
type DatabaseConfig struct {
	Path            string        `mapstructure:"path"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	InMemory        bool          `mapstructure:"in_memory"`
}

// LoggingConfig 控制日志输出。
type LoggingConfig struct {
	Level            string   `mapstructure:"level"`
	Encoding         string   `mapstructure:"encoding"`
	Development      bool     `mapstructure:"development"`
	OutputPaths      []string `mapstructure:"output_paths"`
	ErrorOutputPaths []string `mapstructure:"error_output_paths"`
}

// SchedulerConfig 控制主循环节奏。
type SchedulerConfig struct {
	LoopInterval   time.Duration `mapstructure:"loop_interval"`
	ReportInterval time.Duration `mapstructure:"report_interval"`
}

// MonitorConfig 控制监控接口。
type MonitorConfig struct {
	Port int `mapstructure:"port"`
}

// Validate 对配置进行基本校验。
func (c *Config) Validate() error {
	var err error

	if c.App.Environment == "" {
		err = multierr.Append(err, errors.New("app.environment 不能为空"))
	}
	if c.Exchange.Name == "" {
		err = multierr.Append(err, errors.New("exchange.name 不能为空"))
	}
	if len(c.Exchange.Markets) == 0 {
		err = multierr.Append(err, errors.New("exchange.markets 至少包含一个交易对"))
	}
	for _, market := range c.Exchange.Markets {
		if market == "" {
			err = multierr.Append(err, errors.New("exchange.markets 不能包含空交易对"))
			break
		}
	}
	if c.Exchange.Retry.MaxAttempts <= 0 {
		err = multierr.Append(err, errors.New("exchange.retry.max_attempts 必须大于0"))
	}
	if c.Exchange.Retry.MinDelay <= 0 || c.Exchange.Retry.MaxDelay <= 0 {
		err = multierr.Append(err, errors.New("exchange.retry.delay 必须为正"))
	}
	if c.Exchange.Retry.MinDelay > c.Exchange.Retry.MaxDelay {
		err = multierr.Append(err, errors.New("exchange.retry.min_delay 不能大于 max_delay"))
	}
	if c.OpenAI.Enabled {
		if c.OpenAI.APIKey == "" {
			err = multierr.Append(err, errors.New("openai.api_key 不能为空"))
		}
		if c.OpenAI.Model == "" {
			err = multierr.Append(err, errors.New("openai.model 不能为空"))
		}
		if c.OpenAI.Timeout <= 0 {
			err = multierr.Append(err, errors.New("openai.timeout 必须大于0"))
		}
	}
	if c.Analysis.LiquidityLookback < 0 {
		err = multierr.Append(err, errors.New("analysis.liquidity_lookback 不能为负"))
	}
	if c.Analysis.OrderblockLookback < 0 {
		err = multierr.Append(err, errors.New("analysis.orderblock_lookback 不能为负"))
	}
	if c.Analysis.RangeLookback < 0 {
		err = multierr.Append(err, errors.New("analysis.range_lookback 不能为负"))
	}
	if c.Analysis.VoidLookback < 0 {
		err = multierr.Append(err, errors.New("analysis.void_lookback 不能为负"))
	}
	for name, session := range c.Sessions {
		if !validClock(session.Start) || !validClock(session.End) {
			err = multierr.Append(err, fmt.Errorf("sessions.%s 的时间必须为 HH:MM 格式", name))
		}
	}
	if c.Telegram.Enabled {
		if c.Telegram.BotToken == "" {
			err = multierr.Append(err, errors.New("telegram.bot_token 不能为空"))
		}
		if c.Telegram.ChatID == "" {
			err = multierr.Append(err, errors.New("telegram.chat_id 不能为空"))
		}
		if c.Telegram.MaxRetries <= 0 {
			err = multierr.Append(err, errors.New("telegram.max_retries 必须大于0"))
		}
	}
	if c.Database.Path == "" && !c.Database.InMemory {
		err = multierr.Append(err, errors.New("database.path 不能为空"))
	}
	if c.Database.MaxOpenConns <= 0 {
		err = multierr.Append(err, errors.New("database.max_open_conns 必须大于0"))
	}
	if c.Database.MaxIdleConns < 0 {
		err = multierr.Append(err, errors.New("database.max_idle_conns 不能为负"))
	}
	if c.Database.ConnMaxLifetime < 0 {
		err = multierr.Append(err, errors.New("database.conn_max_lifetime 不能为负"))
	}
	if c.Logging.Level == "" {
		err = multierr.Append(err, errors.New("logging.level 不能为空"))
	}
	if c.Logging.Encoding == "" {
		err = multierr.Append(err, errors.New("logging.encoding 不能为空"))
	}
	if len(c.Logging.OutputPaths) == 0 {
		err = multierr.Append(err, errors.New("logging.output_paths 至少包含一个输出目标"))
	}
	if len(c.Logging.ErrorOutputPaths) == 0 {
		err = multierr.Append(err, errors.New("logging.error_output_paths 至少包含一个输出目标"))
	}
	if c.Scheduler.LoopInterval <= 0 {
		err = multierr.Append(err, errors.New("scheduler.loop_interval 必须大于0"))
	}
	if c.Scheduler.ReportInterval <= 0 {
		err = multierr.Append(err, errors.New("scheduler.report_interval 必须大于0"))
	}
	if c.Scheduler.ReportInterval < c.Scheduler.LoopInterval {
		err = multierr.Append(err, errors.New("scheduler.report_interval 不应小于 loop_interval"))
	}
	if c.Monitor.Port <= 0 || c.Monitor.Port > 65535 {
		err = multierr.Append(err, errors.New("monitor.port 必须位于[1,65535]"))
	}

	if err != nil {
		return fmt.Errorf("配置校验失败: %w", err)
	}

	return nil
}

func validClock(value string) bool {
	_, err := time.Parse("15:04", value)
	return err == nil
}
