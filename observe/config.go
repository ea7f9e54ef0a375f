package observe

import (
	"strings"

	"github.com/kbukum/fiter/logger"
	"github.com/kbukum/fiter/validation"
)

// DefaultInstrumentationName names the meter and tracer when none is
// configured.
const DefaultInstrumentationName = "github.com/kbukum/fiter"

// Config selects which instruments NewHooks wires up.
type Config struct {
	LogSteps            bool   `yaml:"log_steps" mapstructure:"log_steps"`
	Metrics             bool   `yaml:"metrics" mapstructure:"metrics"`
	Spans               bool   `yaml:"spans" mapstructure:"spans"`
	InstrumentationName string `yaml:"instrumentation_name" mapstructure:"instrumentation_name"`
}

// ApplyDefaults fills in the instrumentation name.
func (c *Config) ApplyDefaults() {
	if c.InstrumentationName == "" {
		c.InstrumentationName = DefaultInstrumentationName
	}
}

// Validate checks that enabled instruments can be named.
func (c *Config) Validate() error {
	return validation.New().
		Custom(!(c.Metrics || c.Spans) || strings.TrimSpace(c.InstrumentationName) != "",
			"observe.instrumentation_name", "is required when metrics or spans are enabled").
		Err()
}

// NewHooks builds the instruments enabled in cfg. Step logs go to the
// logger registered as "fiter"; meter and tracer come from the global
// OpenTelemetry providers.
func NewHooks(cfg Config) (Hooks, error) {
	var h Hooks
	if cfg.LogSteps {
		h.Log = logger.Get("fiter")
	}
	if cfg.Metrics {
		m, err := NewMetrics(Meter(cfg.InstrumentationName))
		if err != nil {
			return Hooks{}, err
		}
		h.Metrics = m
	}
	if cfg.Spans {
		h.Tracer = Tracer(cfg.InstrumentationName)
	}
	return h, nil
}
