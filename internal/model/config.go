package model

import "time"

// Config holds the complete legisearch configuration
type Config struct {
	Source       SourceConfig       `yaml:"source" mapstructure:"source"`
	Jurisdiction JurisdictionConfig `yaml:"jurisdiction" mapstructure:"jurisdiction"`
	HTTP         HTTPConfig         `yaml:"http" mapstructure:"http"`
	Robots       RobotsConfig       `yaml:"robots" mapstructure:"robots"`
	Rate         RateConfig         `yaml:"rate" mapstructure:"rate"`
	Extract      ExtractConfig      `yaml:"extract" mapstructure:"extract"`
	Output       OutputConfig       `yaml:"output" mapstructure:"output"`
	Log          LogConfig          `yaml:"log" mapstructure:"log"`
}

// SourceConfig locates the roster page and the per-member fragments in it
type SourceConfig struct {
	URL      string `yaml:"url" mapstructure:"url"`
	BaseURL  string `yaml:"base_url" mapstructure:"base_url"` // Resolves profile and photo links
	Selector string `yaml:"selector" mapstructure:"selector"` // CSS selector matching one contact box per member
}

// JurisdictionConfig holds the fixed values the extractor composes into records
type JurisdictionConfig struct {
	State         string `yaml:"state" mapstructure:"state"`
	AddressSuffix string `yaml:"address_suffix" mapstructure:"address_suffix"`
	EmailDomain   string `yaml:"email_domain" mapstructure:"email_domain"`
	HousePrefix   string `yaml:"house_prefix" mapstructure:"house_prefix"`
	SenatePrefix  string `yaml:"senate_prefix" mapstructure:"senate_prefix"`
}

// HTTPConfig configures the roster fetch
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent    string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	HTTPProxy    string        `yaml:"http_proxy,omitempty" mapstructure:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy,omitempty" mapstructure:"https_proxy"`
	InsecureTLS  bool          `yaml:"insecure_tls" mapstructure:"insecure_tls"`
}

// RobotsConfig controls robots.txt compliance
type RobotsConfig struct {
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
}

// RateConfig paces requests to the source host
type RateConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int     `yaml:"burst" mapstructure:"burst"`
}

// ExtractConfig controls how record parse failures are handled
type ExtractConfig struct {
	Strict bool `yaml:"strict" mapstructure:"strict"` // Abort the build on the first bad fragment
}

// OutputConfig controls interactive rendering
type OutputConfig struct {
	TypeDelay time.Duration `yaml:"type_delay" mapstructure:"type_delay"` // Per-character delay, 0 prints instantly
	Pause     time.Duration `yaml:"pause" mapstructure:"pause"`           // Pause between closing lines
	Verbose   bool          `yaml:"-" mapstructure:"-"`
}

// LogConfig configures the zap logger
type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
}

// DefaultConfig returns the Hawaii State Legislature defaults
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			URL:      "https://www.capitol.hawaii.gov/members/legislators.aspx",
			BaseURL:  "https://www.capitol.hawaii.gov/",
			Selector: `div[class="contact-box center-version active"]`,
		},
		Jurisdiction: JurisdictionConfig{
			State:         "hi",
			AddressSuffix: "415 S Beretania St, Honolulu, HI 96813",
			EmailDomain:   "capitol.hawaii.gov",
			HousePrefix:   "rep",
			SenatePrefix:  "sen",
		},
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			UserAgent:    "legisearch/0.1 (+https://github.com/ppiankov/legisearch)",
			MaxBodyBytes: 8_000_000,
		},
		Robots: RobotsConfig{
			Enabled: true,
		},
		Rate: RateConfig{
			RequestsPerSecond: 1,
			Burst:             1,
		},
		Output: OutputConfig{
			TypeDelay: 30 * time.Millisecond,
			Pause:     time.Second,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}
