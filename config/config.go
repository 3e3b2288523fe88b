package config

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
)

const (
	DefaultAddr        = "0.0.0.0:4221"
	DefaultServiceName = "tinyhttpd"
)

type Config struct {
	// Directory is the root that /files/ names are resolved against.
	Directory string
	Addr      string

	ServiceName  string
	OTLPEndpoint string
	LogLevel     slog.Level
}

// TelemetryEnabled reports whether traces, metrics and logs are exported over OTLP.
func (cfg Config) TelemetryEnabled() bool {
	return cfg.OTLPEndpoint != ""
}

// Load reads the command line and the environment. A missing --directory is not an
// error; the caller decides how loudly to complain about it.
func Load(args []string, getenv func(string) string) (Config, error) {
	cfg := Config{
		Addr:        DefaultAddr,
		ServiceName: DefaultServiceName,
	}

	flags := flag.NewFlagSet(DefaultServiceName, flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.StringVar(&cfg.Directory, "directory", "", "directory to serve and store files in")

	if err := flags.Parse(args); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	if name := getenv("OTEL_SERVICE_NAME"); name != "" {
		cfg.ServiceName = name
	}
	cfg.OTLPEndpoint = getenv("OTEL_EXPORTER_OTLP_ENDPOINT")

	if level := getenv("LOG_LEVEL"); level != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
			return cfg, fmt.Errorf("config: LOG_LEVEL: %w", err)
		}
	}

	return cfg, nil
}
