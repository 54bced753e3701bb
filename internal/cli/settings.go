package cli

import (
	"strings"

	"github.com/ppiankov/legisearch/internal/model"
	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
)

// configure sets env handling and registers every key with its default,
// so LEGISEARCH_HTTP_TIMEOUT and friends work without a config file
func configure(v *viper.Viper) {
	// Read in environment variables that match LEGISEARCH_*
	v.SetEnvPrefix("LEGISEARCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	d := model.DefaultConfig()
	v.SetDefault("source.url", d.Source.URL)
	v.SetDefault("source.base_url", d.Source.BaseURL)
	v.SetDefault("source.selector", d.Source.Selector)
	v.SetDefault("jurisdiction.state", d.Jurisdiction.State)
	v.SetDefault("jurisdiction.address_suffix", d.Jurisdiction.AddressSuffix)
	v.SetDefault("jurisdiction.email_domain", d.Jurisdiction.EmailDomain)
	v.SetDefault("jurisdiction.house_prefix", d.Jurisdiction.HousePrefix)
	v.SetDefault("jurisdiction.senate_prefix", d.Jurisdiction.SenatePrefix)
	v.SetDefault("http.timeout", d.HTTP.Timeout)
	v.SetDefault("http.user_agent", d.HTTP.UserAgent)
	v.SetDefault("http.max_body_bytes", d.HTTP.MaxBodyBytes)
	v.SetDefault("http.http_proxy", d.HTTP.HTTPProxy)
	v.SetDefault("http.https_proxy", d.HTTP.HTTPSProxy)
	v.SetDefault("http.insecure_tls", d.HTTP.InsecureTLS)
	v.SetDefault("robots.enabled", d.Robots.Enabled)
	v.SetDefault("rate.requests_per_second", d.Rate.RequestsPerSecond)
	v.SetDefault("rate.burst", d.Rate.Burst)
	v.SetDefault("extract.strict", d.Extract.Strict)
	v.SetDefault("output.type_delay", d.Output.TypeDelay)
	v.SetDefault("output.pause", d.Output.Pause)
	v.SetDefault("log.level", d.Log.Level)
}

// loadConfig decodes v over the built-in defaults
func loadConfig(v *viper.Viper) (*model.Config, error) {
	c := model.DefaultConfig()
	if err := v.Unmarshal(c); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	if c.Source.URL == "" {
		return nil, eris.New("config: source.url is empty")
	}
	if c.Source.Selector == "" {
		return nil, eris.New("config: source.selector is empty")
	}
	if c.HTTP.Timeout <= 0 {
		return nil, eris.Errorf("config: http.timeout must be positive, got %s", c.HTTP.Timeout)
	}
	return c, nil
}
