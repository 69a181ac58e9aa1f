package services

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// DiagnosticSink receives form submissions that are not yet wired to a real collaborator
type DiagnosticSink interface {
	Record(ctx context.Context, event string, payload interface{}) error
}

// LogSink writes each payload as a JSON string field on a zap log line
type LogSink struct {
	logger *zap.Logger
}

// NewLogSink creates a sink writing to logger
func NewLogSink(logger *zap.Logger) *LogSink {
	return &LogSink{logger: logger.Named("diagnostics")}
}

// Record serialises payload and logs it under event
func (s *LogSink) Record(ctx context.Context, event string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", event, err)
	}

	s.logger.Info(event, zap.String("payload", string(data)))
	return nil
}
