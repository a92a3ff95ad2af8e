package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"ict-scanner/internal/ai"
	"ict-scanner/internal/config"
	"ict-scanner/internal/market"
	"ict-scanner/internal/monitor"
	"ict-scanner/internal/notify"
	"ict-scanner/internal/report"
	"ict-scanner/internal/store"
	"ict-scanner/internal/structure"
)

type marketPipeline struct {
	symbol  string
	service *market.Service
}

type orchestrator struct {
	pipelines []marketPipeline
	builder   *report.Builder
	ai        *ai.Client       // 可为空，禁用AI解读
	notifier  *notify.Notifier // 可为空，禁用推送
	monitor   *monitor.Service
	logger    *zap.Logger

	reportInterval time.Duration
	lastReport     time.Time
}

func (o *orchestrator) Monitor() *monitor.Service {
	return o.monitor
}

type orchestratorConfig struct {
	exchange  config.ExchangeConfig
	openAI    config.OpenAIConfig
	analysis  config.AnalysisConfig
	sessions  map[string]config.SessionConfig
	telegram  config.TelegramConfig
	scheduler config.SchedulerConfig
}

func newOrchestrator(cfg orchestratorConfig, logger *zap.Logger, store *store.Store) (*orchestrator, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var aiClient *ai.Client
	if cfg.openAI.Enabled {
		client, err := ai.NewClient(cfg.openAI, logger)
		if err != nil {
			return nil, fmt.Errorf("初始化AI客户端失败: %w", err)
		}
		aiClient = client
	}

	var notifier *notify.Notifier
	if cfg.telegram.Enabled {
		notifier = notify.NewNotifier(cfg.telegram, logger)
	}

	monitorSvc, err := monitor.NewService(store, logger)
	if err != nil {
		return nil, fmt.Errorf("初始化监控服务失败: %w", err)
	}

	pipelines := make([]marketPipeline, 0, len(cfg.exchange.Markets))
	for _, symbol := range cfg.exchange.Markets {
		client, err := market.NewClient(cfg.exchange, symbol, logger)
		if err != nil {
			return nil, fmt.Errorf("初始化行情客户端失败 (%s): %w", symbol, err)
		}
		pipelines = append(pipelines, marketPipeline{
			symbol:  symbol,
			service: market.NewService(client, logger),
		})
	}

	builder := report.NewBuilder(report.Config{
		LiquidityLookback:  cfg.analysis.LiquidityLookback,
		OrderblockLookback: cfg.analysis.OrderblockLookback,
		RangeLookback:      cfg.analysis.RangeLookback,
		VoidLookback:       cfg.analysis.VoidLookback,
		Sessions:           scheduleFromConfig(cfg.sessions),
	}, logger)

	interval := cfg.scheduler.ReportInterval
	if interval <= 0 {
		interval = 15 * time.Minute
	}

	return &orchestrator{
		pipelines:      pipelines,
		builder:        builder,
		ai:             aiClient,
		notifier:       notifier,
		monitor:        monitorSvc,
		logger:         logger,
		reportInterval: interval,
	}, nil
}

func (o *orchestrator) Tick(ctx context.Context) error {
	now := time.Now().UTC()
	if !o.lastReport.IsZero() && now.Sub(o.lastReport) < o.reportInterval {
		return nil
	}

	for i := range o.pipelines {
		pipeline := &o.pipelines[i]

		snapshot, err := pipeline.service.GetSnapshot(ctx, market.DefaultSnapshotRequest())
		if err != nil {
			if errors.Is(err, market.ErrMaintenance) {
				o.logger.Warn("交易所维护中，跳过本轮扫描", zap.String("symbol", pipeline.symbol))
				return nil
			}
			o.monitor.RecordError(ctx, "拉取市场数据失败", err, map[string]interface{}{"symbol": pipeline.symbol})
			return err
		}

		result, err := o.builder.Build(ctx, snapshot)
		if err != nil {
			o.monitor.RecordError(ctx, "生成结构报告失败", err, map[string]interface{}{"symbol": pipeline.symbol})
			return err
		}
		o.monitor.RecordReport(ctx, result)

		var commentary *ai.Commentary
		if o.ai != nil {
			generated, err := o.ai.GenerateCommentary(ctx, result)
			if err != nil {
				// AI 解读失败不阻断报告推送。
				o.logger.Warn("AI 解读失败", zap.String("symbol", pipeline.symbol), zap.Error(err))
				o.monitor.RecordError(ctx, "AI 解读失败", err, map[string]interface{}{"symbol": pipeline.symbol})
			} else {
				commentary = &generated
				o.monitor.RecordCommentary(ctx, result, generated)
			}
		}

		if o.notifier != nil {
			text := notify.FormatReport(result, commentary)
			sendErr := o.notifier.SendWithRetry(ctx, text)
			o.monitor.RecordNotification(ctx, pipeline.symbol, sendErr)
			if sendErr != nil {
				o.logger.Warn("推送报告失败", zap.String("symbol", pipeline.symbol), zap.Error(sendErr))
			}
		}
	}

	o.lastReport = now
	return nil
}

func scheduleFromConfig(sessions map[string]config.SessionConfig) structure.Schedule {
	schedule := make(structure.Schedule, len(sessions))
	for name, window := range sessions {
		schedule[name] = structure.SessionWindow{
			Start: window.Start,
			End:   window.End,
		}
	}
	return schedule
}
