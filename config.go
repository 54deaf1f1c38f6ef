package tabelle

import "time"

// DefaultBaseURL is the root of the statistics site all relative links
// resolve against.
const DefaultBaseURL = "https://www.transfermarkt.com.br"

// Config holds the politeness and retry knobs for the scraper. It is an
// immutable value injected into constructors, never ambient global state.
type Config struct {
	// BaseURL is the site root used for URL construction and for resolving
	// relative hrefs to absolute URLs.
	BaseURL string

	// MaxRetries is the number of additional attempts after the first for
	// transient failures. Zero disables retrying.
	MaxRetries int

	// BackoffFactor grows the inter-attempt delay as factor^attempt seconds.
	BackoffFactor float64

	// DelayMin and DelayMax bound the randomized politeness delay applied
	// before every request, including the first.
	DelayMin time.Duration
	DelayMax time.Duration

	// Timeout bounds each individual fetch attempt.
	Timeout time.Duration

	// Headers is the identifying header set sent with every request.
	Headers map[string]string
}

// DefaultConfig returns the production politeness settings: a 3-12s random
// delay per request, five retries with exponential backoff, and a standard
// browser header set.
func DefaultConfig() Config {
	return Config{
		BaseURL:       DefaultBaseURL,
		MaxRetries:    5,
		BackoffFactor: 2,
		DelayMin:      3 * time.Second,
		DelayMax:      12 * time.Second,
		Timeout:       20 * time.Second,
		Headers: map[string]string{
			"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.114 Safari/537.36",
			"Accept-Language": "en-US,en;q=0.9,pt;q=0.8",
		},
	}
}

// Validate returns an error if the configuration contains invalid fields.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return Errorf(EINVALID, "base URL required")
	}
	if c.MaxRetries < 0 {
		return Errorf(EINVALID, "max retries must be >= 0")
	}
	if c.BackoffFactor <= 1 {
		return Errorf(EINVALID, "backoff factor must be > 1")
	}
	if c.DelayMin < 0 {
		return Errorf(EINVALID, "minimum request delay must be >= 0")
	}
	if c.DelayMax < c.DelayMin {
		return Errorf(EINVALID, "maximum request delay must be >= minimum")
	}
	if c.Timeout <= 0 {
		return Errorf(EINVALID, "timeout must be > 0")
	}
	return nil
}
