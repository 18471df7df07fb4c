package listview

import (
	"context"
	"maps"
	"slices"

	charmlog "github.com/charmbracelet/log"
)

// Telemetry records list events for observability.
type Telemetry interface {
	Record(ctx context.Context, event string, payload map[string]any)
}

type noopTelemetry struct{}

func (noopTelemetry) Record(context.Context, string, map[string]any) {}

func normalizeTelemetry(t Telemetry) Telemetry {
	if t == nil {
		return noopTelemetry{}
	}
	return t
}

// LogTelemetry writes events as structured debug log lines.
type LogTelemetry struct {
	Logger *charmlog.Logger
}

// NewLogTelemetry wraps logger; nil uses the charmbracelet default logger.
func NewLogTelemetry(logger *charmlog.Logger) *LogTelemetry {
	if logger == nil {
		logger = charmlog.Default()
	}
	return &LogTelemetry{Logger: logger}
}

// Record logs event with payload as key/value pairs.
func (t *LogTelemetry) Record(_ context.Context, event string, payload map[string]any) {
	keyvals := make([]any, 0, len(payload)*2)
	for _, key := range slices.Sorted(maps.Keys(payload)) {
		keyvals = append(keyvals, key, payload[key])
	}
	t.Logger.Debug(event, keyvals...)
}
