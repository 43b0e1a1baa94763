package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP          string        `env:"HOST_IP" envDefault:"0.0.0.0"`      // Host IP both servers bind to
	GRPCPort        int           `env:"GRPC_PORT" envDefault:"50051"`      // Port for the gRPC game API
	RESTPort        int           `env:"REST_PORT" envDefault:"8080"`       // Port for the REST API
	GinMode         string        `env:"GIN_MODE" envDefault:"release"`     // Mode for the Gin framework (e.g., release, debug, test)
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`  // Grace period for in-flight requests on shutdown
	AppEnv          string        `env:"APP_ENV" envDefault:"development"` // Deployment environment reported in traces

	MapWidthMin   int `env:"MAP_WIDTH_MIN" envDefault:"10"`
	MapWidthMax   int `env:"MAP_WIDTH_MAX" envDefault:"200"`
	MapHeightMin  int `env:"MAP_HEIGHT_MIN" envDefault:"10"`
	MapHeightMax  int `env:"MAP_HEIGHT_MAX" envDefault:"200"`
	WallCountMin  int `env:"WALL_COUNT_MIN" envDefault:"10"`
	WallCountMax  int `env:"WALL_COUNT_MAX" envDefault:"40"`
	WallLengthMin int `env:"WALL_LENGTH_MIN" envDefault:"4"`

	TracesExporter    string  `env:"OTEL_TRACES_EXPORTER" envDefault:"none"`   // stdout|none
	TracesPrettyPrint bool    `env:"OTEL_PRETTY_PRINT" envDefault:"false"`     // Human readable stdout traces
	TracesSampleRatio float64 `env:"OTEL_TRACES_SAMPLER_RATIO" envDefault:"1"` // Fraction of root spans sampled
}

// LoadDotEnv loads .env style files into the environment, the working
// directory's .env when none are named. Variables already set win. The error
// is returned so the caller can decide whether a missing file matters.
func LoadDotEnv(filenames ...string) error {
	return godotenv.Load(filenames...)
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseFlags lets command-line flags override the loaded values.
func ParseFlags(cfg *Config, fs *flag.FlagSet, args []string) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	if fs == nil {
		return errors.New("flag parser is required")
	}

	fs.StringVar(&cfg.HostIP, "host", cfg.HostIP, "The host IP both servers bind to")
	fs.IntVar(&cfg.GRPCPort, "grpc-port", cfg.GRPCPort, "The gRPC game server port")
	fs.IntVar(&cfg.RESTPort, "rest-port", cfg.RESTPort, "The REST server port")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return cfg.Validate()
}

// Validate checks ports and map limits.
func (c Config) Validate() error {
	if err := validPort("GRPC_PORT", c.GRPCPort); err != nil {
		return err
	}
	if err := validPort("REST_PORT", c.RESTPort); err != nil {
		return err
	}
	if c.GRPCPort == c.RESTPort {
		return fmt.Errorf("GRPC_PORT and REST_PORT must differ, both are %d", c.GRPCPort)
	}
	if c.MapWidthMin <= 0 || c.MapWidthMin > c.MapWidthMax {
		return fmt.Errorf("MAP_WIDTH_MIN (%d) must be positive and not above MAP_WIDTH_MAX (%d)", c.MapWidthMin, c.MapWidthMax)
	}
	if c.MapHeightMin <= 0 || c.MapHeightMin > c.MapHeightMax {
		return fmt.Errorf("MAP_HEIGHT_MIN (%d) must be positive and not above MAP_HEIGHT_MAX (%d)", c.MapHeightMin, c.MapHeightMax)
	}
	if c.TracesSampleRatio < 0 || c.TracesSampleRatio > 1 {
		return fmt.Errorf("OTEL_TRACES_SAMPLER_RATIO must be within [0, 1], got %v", c.TracesSampleRatio)
	}
	return nil
}

// GRPCAddr is the listen address of the gRPC server.
func (c Config) GRPCAddr() string {
	return net.JoinHostPort(c.HostIP, strconv.Itoa(c.GRPCPort))
}

// RESTAddr is the listen address of the REST server.
func (c Config) RESTAddr() string {
	return net.JoinHostPort(c.HostIP, strconv.Itoa(c.RESTPort))
}

func validPort(name string, port int) error {
	if port <= 0 || port > 65535 {
		return fmt.Errorf("%s must be within [1, 65535], got %d", name, port)
	}
	return nil
}
