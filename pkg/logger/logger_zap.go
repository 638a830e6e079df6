package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// nop until InitZap is called in bootstrap
var logger = zap.NewNop()

// InitZap with default production config
func InitZap(serviceName string) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(os.Stdout),
		zap.NewAtomicLevelAt(zapcore.InfoLevel),
	)
	logger = zap.New(core).With(zap.String("service", serviceName))
}

// Log func
func Log(level zapcore.Level, message, context, scope string) {
	entry := logger.With(
		zap.String("context", context),
		zap.String("scope", scope),
	)

	switch level {
	case zapcore.DebugLevel:
		entry.Debug(message)
	case zapcore.InfoLevel:
		entry.Info(message)
	case zapcore.WarnLevel:
		entry.Warn(message)
	case zapcore.ErrorLevel:
		entry.Error(message)
	case zapcore.FatalLevel:
		entry.Fatal(message)
	}
}

// LogE error level
func LogE(message string) {
	logger.Error(message)
}

// LogEf error level with format
func LogEf(format string, i ...interface{}) {
	logger.Sugar().Errorf(format, i...)
}

// LogI info level
func LogI(message string) {
	logger.Info(message)
}

// LogIf info level with format
func LogIf(format string, i ...interface{}) {
	logger.Sugar().Infof(format, i...)
}

// LogWithField info level with additional fields
func LogWithField(level zapcore.Level, fields map[string]interface{}) {
	var zapFields []zap.Field
	for k, v := range fields {
		zapFields = append(zapFields, zap.Any(k, v))
	}

	switch level {
	case zapcore.ErrorLevel:
		logger.Error("error", zapFields...)
	default:
		logger.Info("info", zapFields...)
	}
}
