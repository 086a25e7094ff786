package audit

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType classifies an audit event
type EventType string

const (
	EventChatTurn           EventType = "chat_turn"
	EventSessionCleared     EventType = "session_cleared"
	EventJDAnalyzed         EventType = "jd_analyzed"
	EventContentChanged     EventType = "content_changed"
	EventTranscriptExported EventType = "transcript_exported"
	EventRateLimitTriggered EventType = "rate_limit_triggered"
	EventUnauthorizedAccess EventType = "unauthorized_access"
)

// Event is one audit record. Subject values holding PII go through
// HashSubject before they reach the log.
type Event struct {
	Event     EventType
	SessionID string
	Subject   string
	IP        string
	UserAgent string
	RequestID string
	Details   map[string]interface{}
}

// Logger writes structured audit events to stdout
type Logger struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
}

var defaultLogger *Logger

// Init initializes the audit logger with Zap
func Init(serviceName, environment string) *Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.MessageKey = "message"
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build()
	if err != nil {
		logger, _ = zap.NewProduction()
	}

	defaultLogger = &Logger{
		zapLogger:   logger,
		serviceName: serviceName,
		environment: environment,
	}
	return defaultLogger
}

// Default returns the default audit logger, initializing a basic one
// if Init was never called.
func Default() *Logger {
	if defaultLogger == nil {
		return Init("airesume-backend", environment())
	}
	return defaultLogger
}

// Log writes one audit event
func (l *Logger) Log(event Event) {
	fields := []zap.Field{
		zap.String("service", l.serviceName),
		zap.String("env", l.environment),
		zap.String("event", string(event.Event)),
		zap.Time("at", time.Now().UTC()),
	}
	if event.SessionID != "" {
		fields = append(fields, zap.String("session_id", event.SessionID))
	}
	if event.Subject != "" {
		fields = append(fields, zap.String("subject", event.Subject))
	}
	if event.IP != "" {
		fields = append(fields, zap.String("ip", event.IP))
	}
	if event.UserAgent != "" {
		fields = append(fields, zap.String("user_agent", event.UserAgent))
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}
	if len(event.Details) > 0 {
		fields = append(fields, zap.Any("details", event.Details))
	}
	l.zapLogger.Info("audit_event", fields...)
}

// Sync flushes buffered log entries
func (l *Logger) Sync() {
	_ = l.zapLogger.Sync()
}

// HashSubject hashes a PII value so events stay correlatable without
// storing the raw value.
func HashSubject(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:8])
}

func environment() string {
	if env := os.Getenv("ENVIRONMENT"); env != "" {
		return env
	}
	if os.Getenv("GIN_MODE") == "release" {
		return "production"
	}
	return "development"
}
