package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/philipp01105/csplog/logbase"
)

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "List the files in the log base directory",
	Args:  cobra.NoArgs,
	RunE:  runFiles,
}

func init() {
	rootCmd.AddCommand(filesCmd)
}

func runFiles(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	env := logbase.Init(cfg)
	entries, err := os.ReadDir(env.Dir)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIZE\tMODIFIED")
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name(), humanize.IBytes(uint64(info.Size())), humanize.Time(info.ModTime()))
	}
	return w.Flush()
}
