// Package option is the functional option plumbing used by pullseq's configurable operations.
package option

type Option[Config any] interface {
	// Configure will configure an option.
	Configure(*Config)
}

// Func (option.Func[Config]) is a default implementation for creating options.
type Func[Config any] func(*Config)

func (fn Func[Config]) Configure(c *Config) { fn(c) }

// Use builds a Config from its defaults and the given options.
// When *Config has an Init method, it runs before any option is applied.
func Use[Config any, Opt Option[Config]](opts []Opt) Config {
	var c Config
	if i, ok := any(&c).(initer); ok {
		i.Init()
	}
	for _, opt := range opts {
		opt.Configure(&c)
	}
	return c
}

type initer interface {
	Init()
}
