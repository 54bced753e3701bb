package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ppiankov/legisearch/internal/model"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadConfig_Defaults(t *testing.T) {
	v := viper.New()
	configure(v)

	c, err := loadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultConfig(), c)
}

func TestLoadConfig_FromYAML(t *testing.T) {
	v := viper.New()
	configure(v)
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(`
source:
  url: https://example.test/roster
http:
  timeout: 45s
rate:
  requests_per_second: 0.5
extract:
  strict: true
output:
  type_delay: 0s
log:
  level: debug
`)))

	c, err := loadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, "https://example.test/roster", c.Source.URL)
	assert.Equal(t, 45*time.Second, c.HTTP.Timeout)
	assert.InDelta(t, 0.5, c.Rate.RequestsPerSecond, 0.001)
	assert.True(t, c.Extract.Strict)
	assert.Zero(t, c.Output.TypeDelay)
	assert.Equal(t, "debug", c.Log.Level)

	// untouched keys keep their defaults
	assert.Equal(t, "capitol.hawaii.gov", c.Jurisdiction.EmailDomain)
	assert.True(t, c.Robots.Enabled)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	t.Setenv("LEGISEARCH_HTTP_TIMEOUT", "10s")
	t.Setenv("LEGISEARCH_ROBOTS_ENABLED", "false")

	v := viper.New()
	configure(v)
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader("http:\n  timeout: 45s\n")))

	c, err := loadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, c.HTTP.Timeout)
	assert.False(t, c.Robots.Enabled)
}

func TestLoadConfig_Invalid(t *testing.T) {
	v := viper.New()
	configure(v)
	v.Set("http.timeout", "0s")

	_, err := loadConfig(v)
	assert.Error(t, err)

	v = viper.New()
	configure(v)
	v.Set("source.selector", "")

	_, err = loadConfig(v)
	assert.Error(t, err)
}

func TestInitConfigFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".legisearch")

	path, err := initConfigFile(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# legisearch configuration file")
	assert.Contains(t, string(data), "timeout: 30s")

	// the written file round-trips to the defaults
	v := viper.New()
	configure(v)
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())
	c, err := loadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultConfig(), c)

	_, err = initConfigFile(dir)
	assert.Error(t, err)
}

func TestInitLogger(t *testing.T) {
	require.NoError(t, initLogger(model.LogConfig{Level: "info"}, false))
	assert.NotNil(t, zap.L())

	require.NoError(t, initLogger(model.LogConfig{Level: "warn"}, true))
	assert.True(t, zap.L().Core().Enabled(zap.DebugLevel))

	assert.Error(t, initLogger(model.LogConfig{Level: "loud"}, false))
}

func TestBoundFlagsAreConfigKeys(t *testing.T) {
	known := viper.New()
	configure(known)

	for _, key := range viper.AllKeys() {
		assert.Contains(t, known.AllKeys(), key, "flag bound to a key no config field reads")
	}
	assert.Contains(t, viper.AllKeys(), "http.timeout")
	assert.NotContains(t, viper.AllKeys(), "verbose")
}
