package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	LlmProvider string        `env:"LLM_PROVIDER" envDefault:"gemini"`
	LlmModel    string        `env:"LLM_MODEL"`
	LlmBaseURL  string        `env:"LLM_BASE_URL"`
	LlmTimeout  time.Duration `env:"LLM_TIMEOUT" envDefault:"90s"`
	LlmRetries  int           `env:"LLM_RETRIES" envDefault:"0"`
	LlmParallel bool          `env:"LLM_PARALLEL" envDefault:"true"`
	// Used only when a session is opened without a key of its own.
	LlmAPIKey string `env:"LLM_API_KEY"`

	SessionTTL   time.Duration `env:"SESSION_TTL" envDefault:"2h"`
	SessionMax   int           `env:"SESSION_MAX" envDefault:"1024"`
	CookieSecure bool          `env:"COOKIE_SECURE" envDefault:"false"`

	WebDir string `env:"WEB_DIR" envDefault:"./web"`
	Debug  bool   `env:"DEBUG" envDefault:"false"`
	Addr   string `env:"ADDR" envDefault:":8080"`
}

func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
