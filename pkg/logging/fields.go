package logging

import (
	"context"
	"encoding/json"
	"fmt"
)

// Detail is a logging detail that enrich the logging message with additional contextual detail.
type Detail interface {
	addTo(ctx context.Context, l *Logger, r entry)
}

// Field creates a single key value pair based logging detail.
// It will enrich the log entry with a value in the key you gave.
func Field(key string, value any) Detail {
	return field{Key: key, Value: value}
}

type field struct {
	Key   string
	Value any
}

func (f field) addTo(ctx context.Context, l *Logger, e entry) {
	val := l.toFieldValue(ctx, f.Value)
	if _, ok := val.(nullLoggingDetail); ok {
		return
	}
	e[f.Key] = val
}

// LazyDetail lets you add logging details that aren’t evaluated until the log is actually created.
// This is useful when you want to add fields to a debug log that take effort to calculate,
// but would be skipped in a production environment because of the logging level.
type LazyDetail func() Detail

func (df LazyDetail) addTo(ctx context.Context, l *Logger, e entry) {
	if df == nil {
		return
	}
	d := df()
	if d == nil {
		return
	}
	d.addTo(ctx, l, e)
}

// Fields is a collection of field that you can add to your loggig record.
// It will enrich the log entry with a value in the key you gave.
type Fields map[string]any

func (fields Fields) addTo(ctx context.Context, l *Logger, e entry) {
	for k, v := range fields {
		Field(k, v).addTo(ctx, l, e)
	}
}

func ErrField(err error) Detail {
	if err == nil {
		return nullLoggingDetail{}
	}
	return Field("error", Fields{"message": err.Error()})
}

// toFieldValue keeps JSON friendly values as they are,
// and falls back to their fmt representation otherwise.
func (l *Logger) toFieldValue(ctx context.Context, val any) any {
	switch val := val.(type) {
	case nil:
		return nil
	case nullLoggingDetail:
		return val
	case Detail:
		sub := make(entry)
		val.addTo(ctx, l, sub)
		return map[string]any(sub)
	case fmt.Stringer:
		return val.String()
	case error:
		return val.Error()
	}
	if _, err := json.Marshal(val); err != nil {
		return fmt.Sprintf("%v", val)
	}
	return val
}

type entry map[string]any

type nullLoggingDetail struct{}

func (nullLoggingDetail) addTo(context.Context, *Logger, entry) {}
