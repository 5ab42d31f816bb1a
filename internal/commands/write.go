package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/philipp01105/csplog/logbase"
	"github.com/philipp01105/csplog/logger"
)

// writeFlags holds the flags for the 'write' command
var writeFlags struct {
	name  string
	level string
}

var writeCmd = &cobra.Command{
	Use:   "write MESSAGE...",
	Short: "Write one record to a named log",
	Long: `Build the rotating handler for a named log, write the joined arguments
as one record and report the resulting file size.`,
	Example: `  csplog write --name=sentinel-record.log "pass GET:/health"
  csplog write --name=command-center.log --level=warn "port in use"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWrite,
}

func init() {
	writeCmd.Flags().StringVar(&writeFlags.name, "name", logbase.RecordLogName, "log name")
	writeCmd.Flags().StringVar(&writeFlags.level, "level", "info", "record level: debug, info, warn or error")
	rootCmd.AddCommand(writeCmd)
}

func runWrite(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	env := logbase.Init(cfg)
	res := env.Handler(writeFlags.name)
	if !res.OK() {
		return res.Err
	}

	sink := logger.Get(writeFlags.name)
	sink.Log(logger.ParseLevel(writeFlags.level), strings.Join(args, " "))
	stats := sink.Stats()
	if err := res.Handler.Close(); err != nil {
		return fmt.Errorf("close %s: %w", res.Handler.Path(), err)
	}

	info, err := os.Stat(res.Handler.Path())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n%s written, %s failed\n", res.Handler.Path(),
		humanize.IBytes(uint64(info.Size())), humanize.Comma(int64(stats.ProcessedTotal)), humanize.Comma(int64(stats.FailedTotal)))
	return nil
}
