package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ppiankov/legisearch/internal/model"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const version = "v0.1.0"

var (
	cfgFile  string
	verbose  bool
	noRobots bool

	// cfg is loaded once per invocation before any command runs
	cfg *model.Config
)

// rootCmd represents the base command; without a subcommand it starts
// the interactive search
var rootCmd = &cobra.Command{
	Use:   "legisearch",
	Short: "Hawaii State Legislator Search Tool",
	Long: `legisearch retrieves the Hawaii State Legislature member roster,
extracts a record for every member, and answers "who represents this
district?" for the House and the Senate.

Run without a subcommand for the interactive search, or use lookup and
list for one-shot queries.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
	RunE: runSearch,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "legisearch %s\n", version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	defaults := model.DefaultConfig()
	flags := rootCmd.PersistentFlags()

	// Global flags
	flags.StringVar(&cfgFile, "config", "", "config file (default: $HOME/.legisearch/config.yaml)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "verbose output and debug logging")

	// Fetch flags
	flags.String("url", defaults.Source.URL, "roster page URL")
	flags.Duration("timeout", defaults.HTTP.Timeout, "roster fetch timeout")
	flags.String("ua", defaults.HTTP.UserAgent, "HTTP User-Agent")
	flags.String("http-proxy", "", "HTTP proxy URL (default: $HTTP_PROXY)")
	flags.String("https-proxy", "", "HTTPS proxy URL (default: $HTTPS_PROXY)")
	flags.Bool("insecure", false, "skip TLS certificate verification")
	flags.BoolVar(&noRobots, "no-robots", false, "ignore robots.txt")
	flags.Bool("strict", false, "abort on the first member entry that cannot be parsed")

	// Output flags
	flags.Duration("type-delay", defaults.Output.TypeDelay, "per-character output delay (0 prints instantly)")

	// Bind flags to viper
	_ = viper.BindPFlag("source.url", flags.Lookup("url"))
	_ = viper.BindPFlag("http.timeout", flags.Lookup("timeout"))
	_ = viper.BindPFlag("http.user_agent", flags.Lookup("ua"))
	_ = viper.BindPFlag("http.http_proxy", flags.Lookup("http-proxy"))
	_ = viper.BindPFlag("http.https_proxy", flags.Lookup("https-proxy"))
	_ = viper.BindPFlag("http.insecure_tls", flags.Lookup("insecure"))
	_ = viper.BindPFlag("extract.strict", flags.Lookup("strict"))
	_ = viper.BindPFlag("output.type_delay", flags.Lookup("type-delay"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	configure(viper.GetViper())

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		// Search for config in home directory
		viper.AddConfigPath(filepath.Join(home, ".legisearch"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// setup resolves the effective configuration and installs the logger
func setup(cmd *cobra.Command, args []string) error {
	c, err := loadConfig(viper.GetViper())
	if err != nil {
		return eris.Wrap(err, "load config")
	}
	if noRobots {
		c.Robots.Enabled = false
	}
	c.Output.Verbose = verbose
	cfg = c

	if err := initLogger(cfg.Log, verbose); err != nil {
		return eris.Wrap(err, "init logger")
	}
	return nil
}
