package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipp01105/csplog/config"
)

// rootFlags holds the persistent flags shared by every subcommand
var rootFlags struct {
	configFile string
	logDir     string
	writer     string
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "csplog",
	Short: "Inspect and exercise the sentinel log base directory",
	Long: `csplog resolves the sentinel log base directory the same way a process
does at start-up and writes records through the rotating file handlers
bound to it.

The directory comes from --log-dir, $CSP_SENTINEL_LOG_DIR or the
csp.sentinel.log.dir property, and defaults to ~/logs/csp/.`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.configFile, "config", "", "YAML properties file (default $CSP_SENTINEL_CONFIG_FILE)")
	pf.StringVar(&rootFlags.logDir, "log-dir", "", "log base directory, overrides "+config.LogDirKey)
	pf.StringVar(&rootFlags.writer, "writer", "", "rotating writer: native, lumberjack or logrotate")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig merges the persistent flags over the environment and the
// properties file.
func loadConfig() (config.Config, error) {
	var opts []config.Option
	if rootFlags.configFile != "" {
		opts = append(opts, config.WithFile(rootFlags.configFile))
	}
	if rootFlags.logDir != "" {
		opts = append(opts, config.WithProperty(config.LogDirKey, rootFlags.logDir))
	}
	if rootFlags.writer != "" {
		opts = append(opts, config.WithProperty(config.WriterKey, rootFlags.writer))
	}
	return config.Load(opts...)
}
