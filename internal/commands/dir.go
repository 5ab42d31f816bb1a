package commands

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/philipp01105/csplog/logbase"
)

var dirCmd = &cobra.Command{
	Use:   "dir",
	Short: "Resolve and create the log base directory",
	Long: `Resolve the log base directory, create it if missing and print it
together with the rotation policy applied to every log file in it.

A directory that cannot be created is reported but still printed, exactly
as a starting process would keep using it.`,
	Example: `  # Default location under the home directory
  csplog dir

  # Explicit override
  csplog dir --log-dir=/var/log/app`,
	Args: cobra.NoArgs,
	RunE: runDir,
}

func init() {
	rootCmd.AddCommand(dirCmd)
}

func runDir(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	env := logbase.Init(cfg)
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, env.Dir)

	policy := env.Factory.Policy()
	fmt.Fprintf(out, "rotate at %s, keep %d backup(s), append=%t\n",
		humanize.IBytes(uint64(policy.MaxSize)), policy.MaxBackups, policy.Append)
	if env.DirErr != nil {
		fmt.Fprintf(out, "warning: %v\n", env.DirErr)
	}
	return nil
}
