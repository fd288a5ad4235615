package logger

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const defaultLogDir = "logs"

var (
	logger   = zap.NewNop()
	logLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
)

// NewLogger 创建 root logger: 文件 JSON 输出 (lumberjack 轮转) + 控制台输出
func NewLogger(serviceName string) *zap.Logger {
	return NewLoggerWithDir(serviceName, defaultLogDir)
}

func NewLoggerWithDir(serviceName, logDir string) *zap.Logger {
	if logDir == "" {
		logDir = defaultLogDir
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		panic(err)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.LevelKey = "level"
	encoderConfig.MessageKey = "msg"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
	jsonEncoder := zapcore.NewJSONEncoder(encoderConfig)

	var writer io.Writer = &lumberjack.Logger{
		Filename:   filepath.Join(logDir, serviceName+".log"),
		MaxSize:    200, // megabytes
		MaxBackups: 7,
		MaxAge:     7, // days
		Compress:   true,
	}

	fileCore := zapcore.NewCore(jsonEncoder, zapcore.AddSync(writer), logLevel)
	consoleCore := zapcore.NewCore(zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()), zapcore.Lock(os.Stderr), logLevel)

	logger = zap.New(zapcore.NewTee(fileCore, consoleCore), zap.AddCaller()).
		With(zap.String("service", serviceName))
	return logger
}

// SetLogLevel 运行时调整日志级别, 非法级别忽略
func SetLogLevel(level string) {
	zapLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		return
	}
	if logLevel.Level() == zapLevel {
		return
	}
	logLevel.SetLevel(zapLevel)
	logger.Info("Log level set to", zap.String("level", level))
}

// WithTrace 注入当前 span 的 trace_id / span_id
func WithTrace(ctx context.Context, logger *zap.Logger) *zap.Logger {
	span := trace.SpanFromContext(ctx)
	sc := span.SpanContext()
	if !sc.IsValid() {
		return logger
	}

	return logger.With(
		zap.String("trace_id", sc.TraceID().String()),
		zap.String("span_id", sc.SpanID().String()),
	)
}
