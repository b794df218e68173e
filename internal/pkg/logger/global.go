package logger

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	// globalLogger holds the singleton logger instance
	globalLogger *ZapLogger
	// once ensures the default logger is initialized only once
	once sync.Once
	// mu protects access to the global logger
	mu sync.RWMutex
)

// SetGlobalLogger sets the global logger instance.
// This should be called once during application startup.
func SetGlobalLogger(logger *ZapLogger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = logger
}

// GetGlobalLogger returns the global logger instance.
// If no logger is set, it returns a default logger.
func GetGlobalLogger() *ZapLogger {
	mu.RLock()
	defer mu.RUnlock()

	if globalLogger == nil {
		once.Do(func() {
			defaultLogger, _ := zap.NewProduction()
			globalLogger = &ZapLogger{
				Logger: defaultLogger,
				sugar:  defaultLogger.Sugar(),
			}
		})
	}

	return globalLogger
}

// Global logger convenience functions

// Info logs an info message using the global logger
func Info(msg string, fields ...Field) {
	GetGlobalLogger().Info(msg, fields...)
}

// Warn logs a warning message using the global logger
func Warn(msg string, fields ...Field) {
	GetGlobalLogger().Warn(msg, fields...)
}

// Debug logs a debug message using the global logger
func Debug(msg string, fields ...Field) {
	GetGlobalLogger().Debug(msg, fields...)
}

// Error logs an error message using the global logger
func Error(msg string, fields ...Field) {
	GetGlobalLogger().Error(msg, fields...)
}

// Fatal logs a fatal message and exits using the global logger
func Fatal(msg string, fields ...Field) {
	GetGlobalLogger().Fatal(msg, fields...)
}

// LogHTTPRequest logs an HTTP request with all relevant context
func (zl *ZapLogger) LogHTTPRequest(method, path, clientIP, userID, requestID string, statusCode int, latency time.Duration, err error) {
	fields := []Field{
		String("method", method),
		String("path", path),
		String("client_ip", clientIP),
		String("user_id", userID),
		String("request_id", requestID),
		Int("status", statusCode),
		Duration("latency", latency),
	}

	if err != nil {
		fields = append(fields, Err(err))
		zl.Logger.Error("HTTP request failed", fields...)
		return
	}

	switch {
	case statusCode >= 500:
		zl.Logger.Error("HTTP request", fields...)
	case statusCode >= 400:
		zl.Logger.Warn("HTTP request", fields...)
	default:
		zl.Logger.Info("HTTP request", fields...)
	}
}
