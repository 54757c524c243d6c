package seqkit

import (
	"context"
	"fmt"

	"go.llib.dev/pullseq/pkg/logging"
	"go.llib.dev/pullseq/port/option"
)

type TraceConfig struct {
	Context context.Context
	Logger  *logging.Logger
	Level   logging.Level
	Message string
}

func (c *TraceConfig) Init() {
	c.Context = context.Background()
	c.Logger = &logging.Default
	c.Level = logging.LevelDebug
	c.Message = "sequence element"
}

func (c TraceConfig) Configure(t *TraceConfig) {
	if c.Context != nil {
		t.Context = c.Context
	}
	if c.Logger != nil {
		t.Logger = c.Logger
	}
	if c.Level != "" {
		t.Level = c.Level
	}
	if c.Message != "" {
		t.Message = c.Message
	}
}

type TraceOption option.Option[TraceConfig]

func TraceLogger(l *logging.Logger) TraceOption {
	return option.Func[TraceConfig](func(c *TraceConfig) { c.Logger = l })
}

func TraceContext(ctx context.Context) TraceOption {
	return option.Func[TraceConfig](func(c *TraceConfig) { c.Context = ctx })
}

func TraceLevel(level logging.Level) TraceOption {
	return option.Func[TraceConfig](func(c *TraceConfig) { c.Level = level })
}

func TraceMessage(msg string) TraceOption {
	return option.Func[TraceConfig](func(c *TraceConfig) { c.Message = msg })
}

// Trace is an Inspect tap that writes a structured log entry for every value passing through.
// Each entry carries the value in its "value" field and a running count in "index",
// which counts values observed by the tap regardless of the pull direction.
//
// By default, entries go to logging.Default at debug level,
// so a pipeline can keep its Trace calls and stay silent in production.
func Trace[T any](seq Seq[T], opts ...TraceOption) DoubleEnded[T] {
	c := option.Use[TraceConfig](opts)
	var index int
	return Inspect(seq, func(v T) {
		c.Logger.Log(c.Context, c.Level, c.Message,
			logging.Field("index", index),
			logging.LazyDetail(func() logging.Detail {
				return logging.Field("value", fmt.Sprintf("%v", v))
			}))
		index++
	})
}
