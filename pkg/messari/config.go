package messari

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// DefaultBaseURL is the production Messari API host.
const DefaultBaseURL = "https://api.messari.io"

// EnvAPIKey is the environment variable consulted for the API key when no
// explicit key is set on the Config.
const EnvAPIKey = "MESSARI_API_KEY"

// DefaultTimeout bounds each HTTP round trip.
const DefaultTimeout = 15 * time.Second

// Config contains all configuration options for a Client. Fields are read
// once at construction; the resulting client holds an immutable copy and is
// safe to share across goroutines.
type Config struct {
	// APIKey authenticates requests. When empty, New falls back to the
	// MESSARI_API_KEY environment variable.
	APIKey string `json:"api_key"`
	// BaseURL overrides the API host, default DefaultBaseURL.
	BaseURL string `json:"base_url" validate:"required,url"`
	// Timeout is the maximum duration for one HTTP request.
	Timeout time.Duration `json:"timeout" validate:"min=1ms"`

	// RateLimitRequests and RateLimitPeriod enable optional client-side
	// throttling: at most RateLimitRequests calls per RateLimitPeriod.
	// Zero RateLimitRequests disables throttling.
	RateLimitRequests int           `json:"rate_limit_requests" validate:"min=0"`
	RateLimitPeriod   time.Duration `json:"rate_limit_period" validate:"min=0"`
}

// DefaultConfig returns a Config with the production base URL, a 15 second
// timeout, and client-side throttling disabled.
func DefaultConfig() *Config {
	return &Config{
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

var validate = validator.New()

// Validate checks the config against its struct tags.
func (c *Config) Validate() error {
	return validate.Struct(c)
}

// WithAPIKey sets the API key and returns the config for chaining.
func (c *Config) WithAPIKey(key string) *Config {
	c.APIKey = key
	return c
}

// WithBaseURL sets the API host and returns the config for chaining.
func (c *Config) WithBaseURL(url string) *Config {
	c.BaseURL = url
	return c
}

// WithTimeout sets the request timeout and returns the config for chaining.
func (c *Config) WithTimeout(timeout time.Duration) *Config {
	c.Timeout = timeout
	return c
}

// WithRateLimit sets the client-side throttle and returns the config for chaining.
func (c *Config) WithRateLimit(requests int, period time.Duration) *Config {
	c.RateLimitRequests = requests
	c.RateLimitPeriod = period
	return c
}
