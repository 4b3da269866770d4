package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"testing"

	lgbmerrors "github.com/Willdata/LightGBM/pkg/errors"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("invalid JSON line %q: %v", line, err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestZerologProviderWritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	provider := NewZerologProvider(&buf, LevelDebug)

	logger := provider.GetLoggerWithName("objective").With(ObjectiveNameKey, "huber")
	logger.Info("Objective initialized", SamplesKey, 3, WeightedKey, true)

	entries := decodeLines(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e["message"] != "Objective initialized" {
		t.Errorf("message = %v", e["message"])
	}
	if e["level"] != "info" {
		t.Errorf("level = %v, want info", e["level"])
	}
	if e[ComponentKey] != "objective" {
		t.Errorf("%s = %v, want objective", ComponentKey, e[ComponentKey])
	}
	if e[ObjectiveNameKey] != "huber" {
		t.Errorf("%s = %v, want huber", ObjectiveNameKey, e[ObjectiveNameKey])
	}
	if e[SamplesKey] != 3.0 {
		t.Errorf("%s = %v, want 3", SamplesKey, e[SamplesKey])
	}
	if e[WeightedKey] != true {
		t.Errorf("%s = %v, want true", WeightedKey, e[WeightedKey])
	}
}

func TestZerologProviderLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	provider := NewZerologProvider(&buf, LevelWarn)
	logger := provider.GetLogger()

	logger.Debug("hidden debug")
	logger.Info("hidden info")
	logger.Warn("visible warn")

	if strings.Contains(buf.String(), "hidden") {
		t.Errorf("records below the provider level were written: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "visible warn") {
		t.Error("warn record missing")
	}

	ctx := context.Background()
	if logger.Enabled(ctx, LevelInfo) {
		t.Error("Info should be disabled at warn level")
	}

	// SetLevel affects loggers handed out earlier.
	provider.SetLevel(LevelDebug)
	if !logger.Enabled(ctx, LevelDebug) {
		t.Error("Debug should be enabled after SetLevel(LevelDebug)")
	}
	logger.Debug("now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Error("debug record missing after SetLevel")
	}
}

func TestZerologProviderErrorStacktrace(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologProvider(&buf, LevelDebug).GetLogger()

	err := lgbmerrors.NewDimensionMismatchError("GetGradients", "score", 4, 3)
	logger.Error("gradient computation failed", err, OperationKey, OperationGradients)

	entries := decodeLines(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if !strings.Contains(fmt.Sprint(e["error"]), "length mismatch for score") {
		t.Errorf("error field = %v", e["error"])
	}
	if e[OperationKey] != OperationGradients {
		t.Errorf("%s = %v", OperationKey, e[OperationKey])
	}
	if _, ok := e[StacktraceKey]; !ok {
		t.Errorf("expected %s to be populated", StacktraceKey)
	}
	if e[ErrorTypeKey] != "DimensionMismatchError" {
		t.Errorf("%s = %v, want DimensionMismatchError", ErrorTypeKey, e[ErrorTypeKey])
	}
}

func TestErrorTypeLooksThroughWrappers(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{lgbmerrors.NewConfigurationError("fair_c", "must be positive", -1), "ConfigurationError"},
		{lgbmerrors.Wrapf(lgbmerrors.NewNotInitializedError("huber", "GetGradients"), "iteration %d", 3), "NotInitializedError"},
		{lgbmerrors.NewNumericalInstabilityError("hessians", []float64{0}, 1), "NumericalInstabilityError"},
	}
	for _, tt := range tests {
		if got := errorType(tt.err); got != tt.want {
			t.Errorf("errorType(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}

	logger, _ := NewTestLogger(LevelDebug)
	logger.Error("binding failed", lgbmerrors.NewDimensionMismatchError("Init", "label", 2, 1))
	if !logger.ContainsField(ErrorTypeKey, "DimensionMismatchError") {
		t.Errorf("TestLogger should record %s", ErrorTypeKey)
	}
}

func TestDefaultProviderSetters(t *testing.T) {
	var buf bytes.Buffer
	SetProvider(NewZerologProvider(&bytes.Buffer{}, LevelWarn))
	defer SetProvider(NewZerologProvider(&bytes.Buffer{}, LevelInfo))

	// SetOutput keeps the current level
	SetOutput(&buf)
	GetLogger().Info("hidden info")
	GetLogger().Warn("visible warn")

	SetLevel(LevelDebug)
	GetLogger().Debug("visible debug")

	entries := decodeLines(t, &buf)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d: %s", len(entries), buf.String())
	}
	if entries[0]["message"] != "visible warn" || entries[1]["message"] != "visible debug" {
		t.Errorf("unexpected messages: %v, %v", entries[0]["message"], entries[1]["message"])
	}
	if _, ok := entries[0][ComponentKey]; ok {
		t.Errorf("GetLogger should not set %s", ComponentKey)
	}
}

func TestWarningsRouteThroughDefaultProvider(t *testing.T) {
	var buf bytes.Buffer
	SetProvider(NewZerologProvider(&buf, LevelDebug))
	defer SetProvider(NewZerologProvider(&bytes.Buffer{}, LevelInfo))

	lgbmerrors.Warn(lgbmerrors.NewParameterWarning("learning_rate", "ignored"))

	entries := decodeLines(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	warning, ok := entries[0]["warning"].(map[string]interface{})
	if !ok {
		t.Fatalf("warning field should be an object, got %T", entries[0]["warning"])
	}
	if warning["param_name"] != "learning_rate" || warning["type"] != "ParameterWarning" {
		t.Errorf("unexpected warning object: %v", warning)
	}
	if entries[0][ComponentKey] != "warnings" {
		t.Errorf("%s = %v, want warnings", ComponentKey, entries[0][ComponentKey])
	}
}

func TestToLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{in: "debug", want: LevelDebug},
		{in: "INFO", want: LevelInfo},
		{in: "warning", want: LevelWarn},
		{in: "error", want: LevelError},
		{in: "verbose", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ToLogLevel(tt.in)
			if tt.wantErr {
				var cfgErr *lgbmerrors.ConfigurationError
				if !lgbmerrors.As(err, &cfgErr) {
					t.Fatalf("expected ConfigurationError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ToLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTestLoggerCapturesFields(t *testing.T) {
	testLogger, buffer := NewTestLogger(LevelInfo)

	testLogger.Debug("dropped")
	child := testLogger.With(ObjectiveNameKey, "fair")
	child.Info("Objective initialized", SamplesKey, 10)
	child.Error("failed", fmt.Errorf("boom"))

	if strings.Contains(buffer.String(), "dropped") {
		t.Error("debug record should be filtered at info level")
	}
	if !testLogger.ContainsField(ObjectiveNameKey, "fair") {
		t.Error("With fields missing from child records")
	}
	if !testLogger.ContainsField(SamplesKey, 10.0) {
		t.Error("expected samples field")
	}
	if !testLogger.ContainsField("error", "boom") {
		t.Error("bare error should be logged under the error key")
	}

	entries, err := testLogger.GetLogEntries()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("expected 2 entries, got %d", len(entries))
	}

	testLogger.Clear()
	if buffer.Len() != 0 {
		t.Error("Clear should empty the buffer")
	}
}

func TestTestLoggerConcurrent(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelDebug)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			logger := testLogger.With("worker", id)
			for i := 0; i < 50; i++ {
				logger.Debug("tick", IterationKey, i)
			}
		}(w)
	}
	wg.Wait()

	entries, err := testLogger.GetLogEntries()
	if err != nil {
		t.Fatalf("interleaved writes produced invalid JSON: %v", err)
	}
	if len(entries) != 400 {
		t.Errorf("expected 400 entries, got %d", len(entries))
	}
}

func BenchmarkZerologDisabledDebug(b *testing.B) {
	logger := NewZerologProvider(&bytes.Buffer{}, LevelInfo).GetLogger()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Debug("skipped", IterationKey, i)
	}
}

func TestTestLoggerProviderSetLevel(t *testing.T) {
	provider, _ := NewTestLoggerProvider(LevelWarn)
	derived := provider.GetLoggerWithName("objective")

	derived.Info("hidden info")
	provider.SetLevel(LevelDebug)
	derived.Debug("visible debug")

	root := provider.GetLogger().(*TestLogger)
	if root.ContainsMessage("hidden info") {
		t.Error("record below the initial level was written")
	}
	if !root.ContainsMessage("visible debug") {
		t.Error("derived logger should follow the provider's new level")
	}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				derived.Info("concurrent", "j", j)
			}
		}()
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				provider.SetLevel(Level(4 * ((i + j) % 2)))
			}
		}(i)
	}
	wg.Wait()
}
