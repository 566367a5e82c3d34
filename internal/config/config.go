package config

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config describes runtime configuration for rsudo.
type Config struct {
	// ServiceName is the logger name attached to every log line.
	ServiceName string `env:"RSUDO_SERVICE_NAME" envDefault:"rsudo"`
	// Token is the Telegram bot token.
	Token string `env:"TELE_TOKEN,required,notEmpty"`
	// AdminUsername is the only Telegram username allowed to run commands.
	AdminUsername string `env:"ADMIN_USERNAME,required,notEmpty"`
	// LogLevel controls log verbosity (debug, info, warn, error).
	LogLevel string `env:"RSUDO_LOG_LEVEL" envDefault:"info"`
	// LogFile is the file log destination. Empty disables file logging.
	LogFile string `env:"RSUDO_LOG_FILE" envDefault:"rsudo.log"`
	// Lang selects the reply language (en or ru).
	Lang string `env:"RSUDO_LANG" envDefault:"en"`
	// PollInterval is the pause between two poll cycles.
	PollInterval time.Duration `env:"RSUDO_POLL_INTERVAL" envDefault:"2s"`
	// PollTimeout is the getUpdates long-poll timeout in seconds.
	PollTimeout int `env:"RSUDO_POLL_TIMEOUT" envDefault:"0"`
	// RequestTimeout bounds every outbound Telegram call.
	RequestTimeout time.Duration `env:"RSUDO_REQUEST_TIMEOUT" envDefault:"30s"`
	// SendAttempts is the number of tries for a single reply.
	SendAttempts int `env:"RSUDO_SEND_ATTEMPTS" envDefault:"3"`
	// RetryBackoff is the delay before the first reply retry, doubled afterwards.
	RetryBackoff time.Duration `env:"RSUDO_RETRY_BACKOFF" envDefault:"1s"`
	// HTTPHost enables the health server when set.
	HTTPHost string `env:"RSUDO_HTTP_HOST"`
	// HTTPPort is the health server port.
	HTTPPort int `env:"RSUDO_HTTP_PORT" envDefault:"8080"`
	// ShutdownTimeout is the graceful shutdown timeout.
	ShutdownTimeout time.Duration `env:"RSUDO_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load parses configuration from environment variables.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}
	return normalize(cfg)
}

func normalize(cfg Config) (Config, error) {
	cfg.Token = strings.TrimSpace(cfg.Token)
	if cfg.Token == "" {
		return Config{}, fmt.Errorf("telegram token is required")
	}
	cfg.AdminUsername = NormalizeUsername(cfg.AdminUsername)
	if cfg.AdminUsername == "" {
		return Config{}, fmt.Errorf("admin username is required")
	}

	cfg.Lang = strings.ToLower(strings.TrimSpace(cfg.Lang))
	if cfg.Lang == "" {
		cfg.Lang = "en"
	}
	cfg.ServiceName = strings.TrimSpace(cfg.ServiceName)
	if cfg.ServiceName == "" {
		cfg.ServiceName = "rsudo"
	}
	cfg.LogFile = strings.TrimSpace(cfg.LogFile)

	if cfg.PollInterval <= 0 {
		return Config{}, fmt.Errorf("poll interval must be positive")
	}
	if cfg.PollTimeout < 0 {
		return Config{}, fmt.Errorf("poll timeout must not be negative")
	}
	if cfg.RequestTimeout <= 0 {
		return Config{}, fmt.Errorf("request timeout must be positive")
	}
	if cfg.RequestTimeout <= time.Duration(cfg.PollTimeout)*time.Second {
		return Config{}, fmt.Errorf("request timeout must exceed poll timeout")
	}
	if cfg.SendAttempts < 1 {
		return Config{}, fmt.Errorf("send attempts must be at least 1")
	}
	if cfg.RetryBackoff < 0 {
		return Config{}, fmt.Errorf("retry backoff must not be negative")
	}
	if cfg.ShutdownTimeout <= 0 {
		return Config{}, fmt.Errorf("shutdown timeout must be positive")
	}

	cfg.HTTPHost = strings.TrimSpace(cfg.HTTPHost)
	if cfg.HTTPEnabled() && (cfg.HTTPPort < 1 || cfg.HTTPPort > 65535) {
		return Config{}, fmt.Errorf("http port must be between 1 and 65535")
	}

	return cfg, nil
}

// NormalizeUsername trims whitespace and a single leading "@".
func NormalizeUsername(value string) string {
	value = strings.TrimSpace(value)
	return strings.TrimPrefix(value, "@")
}

// HTTPEnabled reports whether the health server should be started.
func (c Config) HTTPEnabled() bool {
	return c.HTTPHost != ""
}

// HTTPAddr returns a listen address for the HTTP server.
func (c Config) HTTPAddr() string {
	return net.JoinHostPort(c.HTTPHost, fmt.Sprintf("%d", c.HTTPPort))
}
