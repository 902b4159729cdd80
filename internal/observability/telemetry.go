// Package observability wires tracing (Uptrace), continuous profiling
// (Pyroscope) and the pprof debug listener from config.
package observability

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/riskibarqy/worldcup-analytics/internal/config"
	"github.com/riskibarqy/worldcup-analytics/internal/platform/logging"
)

type stopFunc func(context.Context) error

type component struct {
	name string
	stop stopFunc
}

// Telemetry holds whatever Start enabled. Components stop in reverse start order.
type Telemetry struct {
	logger     *logging.Logger
	components []component
}

// Start brings up every enabled component. If one fails, those already
// started are stopped before the error is returned.
func Start(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Telemetry, error) {
	if logger == nil {
		logger = logging.Default()
	}
	t := &Telemetry{logger: logger}

	steps := []struct {
		name  string
		start func(config.Config, *logging.Logger) (stopFunc, error)
	}{
		{name: "uptrace", start: startUptrace},
		{name: "pyroscope", start: startPyroscope},
		{name: "pprof", start: startPprof},
	}
	for _, step := range steps {
		stop, err := step.start(cfg, logger)
		if err != nil {
			_ = t.Shutdown(ctx)
			return nil, errors.Wrapf(err, "start %s", step.name)
		}
		if stop != nil {
			t.components = append(t.components, component{name: step.name, stop: stop})
		}
	}
	return t, nil
}

// Enabled lists the running components in start order.
func (t *Telemetry) Enabled() []string {
	if t == nil {
		return nil
	}
	names := make([]string, len(t.components))
	for i, c := range t.components {
		names[i] = c.name
	}
	return names
}

func (t *Telemetry) Shutdown(ctx context.Context) error {
	if t == nil {
		return nil
	}
	var combined error
	for i := len(t.components) - 1; i >= 0; i-- {
		c := t.components[i]
		if err := c.stop(ctx); err != nil {
			combined = errors.CombineErrors(combined, errors.Wrapf(err, "stop %s", c.name))
			continue
		}
		t.logger.Info("telemetry component stopped", "component", c.name)
	}
	t.components = nil
	return combined
}
