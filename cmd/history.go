package cmd

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/gapmap-cli/internal/workspace"
	"github.com/spf13/cobra"
)

var histLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List rendered plots recorded in the workspace",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := defaultWorkspaceDir()
		if err != nil {
			return err
		}
		w, err := workspace.Load(dir)
		if err != nil {
			return err
		}
		entries := w.Recent()
		if len(entries) == 0 {
			fmt.Println("(no renders recorded)")
			return nil
		}
		if histLimit > 0 && len(entries) > histLimit {
			entries = entries[:histLimit]
		}
		for _, e := range entries {
			fmt.Printf("- %s  %s\n", e.CreatedAt.Format("2006-01-02 15:04"), e.Plot)
			fmt.Printf("  dataset %s: %d records × %d fields (%s)\n",
				e.Dataset, e.Records, e.Fields, strings.Join(e.Suffixes, ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&histLimit, "limit", "n", 0, "show at most this many entries (0 = all)")
}
