package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Level string

const (
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

const (
	EventServiceStartup    = "SERVICE_STARTUP"
	EventServiceShutdown   = "SERVICE_SHUTDOWN"
	EventDBConnection      = "DB_CONNECTION"
	EventDBError           = "DB_ERROR"
	EventCacheConnection   = "CACHE_CONNECTION"
	EventCacheError        = "CACHE_ERROR"
	EventStorageConnection = "STORAGE_CONNECTION"
	EventLoginSuccess      = "LOGIN_SUCCESS"
	EventLoginFailure      = "LOGIN_FAILURE"
	EventInvalidToken      = "INVALID_TOKEN"
	EventAccessDenied      = "ACCESS_DENIED"
	EventValidation        = "VALIDATION_FAILURE"
	EventReviewMutation    = "REVIEW_MUTATION"
	EventSummarizerFailure = "SUMMARIZER_FAILURE"
	EventPublishFailure    = "EVENT_PUBLISH_FAILURE"
	EventConsume           = "EVENT_CONSUME"
	EventImagePurge        = "IMAGE_PURGE"
	EventMailFailure       = "MAIL_FAILURE"
	EventRateLimited       = "RATE_LIMITED"
	EventGeneral           = "GENERAL"
)

type Entry struct {
	Timestamp string                 `json:"timestamp"`
	Level     Level                  `json:"level"`
	Service   string                 `json:"service"`
	EventType string                 `json:"event_type"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
}

type Config struct {
	ServiceName string
	Environment string
	// LogFilePath empty means stdout only.
	LogFilePath string
	MaxSizeMB   int
	MaxBackups  int
	MaxAgeDays  int
}

type Logger struct {
	config Config
	writer io.Writer
	mu     sync.Mutex
}

var sensitiveFields = map[string]bool{
	"password":          true,
	"password_hash":     true,
	"token":             true,
	"access_token":      true,
	"authorization":     true,
	"secret":            true,
	"api_key":           true,
	"verification_code": true,
}

var emailRegex = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

var (
	instance   *Logger
	instanceMu sync.RWMutex
)

func Init(cfg Config) {
	l := New(cfg)
	instanceMu.Lock()
	instance = l
	instanceMu.Unlock()
}

func Get() *Logger {
	instanceMu.RLock()
	l := instance
	instanceMu.RUnlock()
	if l != nil {
		return l
	}
	return &Logger{
		config: Config{ServiceName: "unknown", Environment: "development"},
		writer: os.Stdout,
	}
}

func New(cfg Config) *Logger {
	if cfg.MaxSizeMB == 0 {
		cfg.MaxSizeMB = 100
	}
	if cfg.MaxBackups == 0 {
		cfg.MaxBackups = 5
	}
	if cfg.MaxAgeDays == 0 {
		cfg.MaxAgeDays = 30
	}

	writers := []io.Writer{os.Stdout}
	if cfg.LogFilePath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFilePath), 0o750); err != nil {
			fmt.Fprintf(os.Stderr, "WARNING: cannot create log directory for %s: %v, using stdout only\n", cfg.LogFilePath, err)
		} else {
			writers = append(writers, &lumberjack.Logger{
				Filename:   cfg.LogFilePath,
				MaxSize:    cfg.MaxSizeMB,
				MaxBackups: cfg.MaxBackups,
				MaxAge:     cfg.MaxAgeDays,
				Compress:   true,
			})
		}
	}

	return &Logger{config: cfg, writer: io.MultiWriter(writers...)}
}

// NewWithWriter is used by tests to capture output.
func NewWithWriter(cfg Config, w io.Writer) *Logger {
	return &Logger{config: cfg, writer: w}
}

func (l *Logger) log(level Level, eventType, message string, details map[string]interface{}) {
	entry := Entry{
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Level:     level,
		Service:   l.config.ServiceName,
		EventType: eventType,
		Message:   maskEmails(message),
		Details:   sanitizeDetails(details),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: failed to marshal log entry: %v\n", err)
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.writer.Write(append(data, '\n'))
}

func (l *Logger) Info(eventType, message string, details map[string]interface{}) {
	l.log(LevelInfo, eventType, message, details)
}

func (l *Logger) Warn(eventType, message string, details map[string]interface{}) {
	l.log(LevelWarn, eventType, message, details)
}

func (l *Logger) Error(eventType, message string, details map[string]interface{}) {
	l.log(LevelError, eventType, message, details)
}

func (l *Logger) Fatal(eventType, message string, details map[string]interface{}) {
	l.log(LevelError, eventType, message, details)
	os.Exit(1)
}

func Info(eventType, message string, details map[string]interface{}) {
	Get().Info(eventType, message, details)
}

func Warn(eventType, message string, details map[string]interface{}) {
	Get().Warn(eventType, message, details)
}

func Error(eventType, message string, details map[string]interface{}) {
	Get().Error(eventType, message, details)
}

func Fatal(eventType, message string, details map[string]interface{}) {
	Get().Fatal(eventType, message, details)
}

// Fields builds a details map from alternating keys and values.
func Fields(kv ...interface{}) map[string]interface{} {
	details := make(map[string]interface{}, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		details[key] = kv[i+1]
	}
	return details
}

func sanitizeDetails(details map[string]interface{}) map[string]interface{} {
	if details == nil {
		return nil
	}
	sanitized := make(map[string]interface{}, len(details))
	for k, v := range details {
		if sensitiveFields[strings.ToLower(k)] {
			sanitized[k] = "[REDACTED]"
			continue
		}
		switch value := v.(type) {
		case string:
			sanitized[k] = maskEmails(value)
		case map[string]interface{}:
			sanitized[k] = sanitizeDetails(value)
		default:
			sanitized[k] = value
		}
	}
	return sanitized
}

func maskEmails(s string) string {
	return emailRegex.ReplaceAllStringFunc(s, maskEmail)
}

func maskEmail(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return "[REDACTED_EMAIL]"
	}
	local := parts[0]
	if len(local) <= 2 {
		return "**@" + parts[1]
	}
	return local[:2] + "***@" + parts[1]
}
