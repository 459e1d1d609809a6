package quarry

import (
	"encoding/json"
	"net/url"
	"time"

	"github.com/quarrydata/quarry-go/helpers"
	"github.com/quarrydata/quarry-go/qerr"
)

const (
	defaultBaseURL = "https://api.quarrydata.dev/v3"
	defaultTimeout = 30 * time.Second
)

type SerializedConfig []byte

// Config carries everything the client needs to reach the read API. The
// API key is attached to every request; Timeout bounds each round trip.
type Config struct {
	BaseURL   string
	APIKey    string
	Timeout   time.Duration
	UserAgent string
}

// ConfigFromEnv reads QUARRY_BASE_URL, QUARRY_API_KEY, and QUARRY_TIMEOUT,
// falling back to the hosted endpoint defaults. QUARRY_TIMEOUT takes a
// duration string such as "30s".
func ConfigFromEnv() Config {
	return Config{
		BaseURL: helpers.GetEnv("QUARRY_BASE_URL", defaultBaseURL),
		APIKey:  helpers.GetEnv("QUARRY_API_KEY", ""),
		Timeout: helpers.GetEnvDuration("QUARRY_TIMEOUT", defaultTimeout),
	}
}

func (c Config) Serialized() SerializedConfig {
	config, err := json.Marshal(c)
	if err != nil {
		panic(err)
	}
	return config
}

func (c *Config) Deserialize(config SerializedConfig) error {
	err := json.Unmarshal(config, c)
	if err != nil {
		return qerr.NewInvalidConfigf("cannot parse serialized config: %v", err)
	}
	return nil
}

func (c Config) validate() error {
	if c.APIKey == "" {
		return qerr.NewMissingConfigEnv("QUARRY_API_KEY")
	}
	parsed, err := url.Parse(c.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return qerr.NewInvalidConfigf("base URL %q is not an absolute URL", c.BaseURL)
	}
	return nil
}
