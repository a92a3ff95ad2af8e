package monitor

import (
	"time"

	"ict-scanner/internal/ai"
	"ict-scanner/internal/report"
)

// EventType 表示监控事件类型。
type EventType string

const (
	EventStructureReport EventType = "structure_report"
	EventAICommentary    EventType = "ai_commentary"
	EventNotification    EventType = "notification"
	EventError           EventType = "error"
)

// Event 封装通用监控事件。
type Event struct {
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// StructureReportPayload 记录一次结构扫描结果。
type StructureReportPayload struct {
	Report report.Snapshot `json:"report"`
}

// AICommentaryPayload 记录AI解读及其依据的报告。
type AICommentaryPayload struct {
	Commentary ai.Commentary   `json:"commentary"`
	Report     report.Snapshot `json:"report"`
}

// NotificationPayload 记录一次推送。
type NotificationPayload struct {
	Channel string `json:"channel"`
	Symbol  string `json:"symbol"`
	Sent    bool   `json:"sent"`
	Error   string `json:"error,omitempty"`
}

// ErrorPayload 记录异常。
type ErrorPayload struct {
	Message string                 `json:"message"`
	Error   string                 `json:"error"`
	Context map[string]interface{} `json:"context,omitempty"`
}
