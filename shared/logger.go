package shared

import (
	"go.uber.org/zap"
)

// LoggerConfig holds the configuration for the logger
type LoggerConfig struct {
	ServiceName string // e.g. "battle-prep"
	Development bool   // true for development mode
	Debug       bool   // true to emit per-attempt debug logs
}

// Logger wraps zap.Logger with additional context
type Logger struct {
	*zap.Logger
	serviceName string
	debug       bool
}

// NewLogger creates a new logger instance based on the configuration
func NewLogger(config LoggerConfig) (*Logger, error) {
	var zapLogger *zap.Logger
	var err error

	if config.Development {
		zapConfig := zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		zapLogger, err = zapConfig.Build()
	} else {
		// Production mode: structured JSON logging
		zapConfig := zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
		if config.Debug {
			zapConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		}
		zapLogger, err = zapConfig.Build()
	}

	if err != nil {
		return nil, err
	}

	zapLogger = zapLogger.With(
		zap.String("service", config.ServiceName),
	)

	return &Logger{
		Logger:      zapLogger,
		serviceName: config.ServiceName,
		debug:       config.Debug || config.Development,
	}, nil
}

// NewLoggerFromEnv creates a logger using environment variables
func NewLoggerFromEnv(serviceName string) (*Logger, error) {
	config := LoggerConfig{
		ServiceName: serviceName,
		Development: GetEnvBoolOrDefault("DEVELOPMENT", false),
		Debug:       GetEnvBoolOrDefault("DEBUG", false),
	}
	return NewLogger(config)
}

// NewNopLogger returns a logger that discards everything. Used by tests and
// as the fallback when no logger is supplied.
func NewNopLogger() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

// Request-aware logging methods
func (l *Logger) WithRequest(requestID string) *zap.Logger {
	if requestID == "" {
		return l.Logger
	}
	return l.Logger.With(zap.String("request_id", requestID))
}

// Program-aware logging methods
func (l *Logger) WithProgram(programID string) *zap.Logger {
	if programID == "" {
		return l.Logger
	}
	return l.Logger.With(zap.String("program_id", programID))
}

// Crypto-aware logging methods
func (l *Logger) WithCryptoOp(operation string) *zap.Logger {
	return l.Logger.With(zap.String("crypto_operation", operation))
}

// Conditional debug logging - only logs when debug is enabled
func (l *Logger) DebugIf(msg string, fields ...zap.Field) {
	if l.debug {
		l.Logger.Debug(msg, fields...)
	}
}

// Sync flushes any buffered log entries
func (l *Logger) Sync() error {
	return l.Logger.Sync()
}
