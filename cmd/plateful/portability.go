package plateful

import (
	"fmt"
	"os"

	"github.com/plateful-app/plateful-cli/internal/store"
	"github.com/spf13/cobra"
)

var importMerge bool

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export all data as JSON (credentials are never exported)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			blob, err := s.ExportState()
			if err != nil {
				return err
			}
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), string(blob))
				return nil
			}
			if err := os.WriteFile(args[0], blob, 0o600); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", args[0])
			return nil
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a JSON export, replacing or merging the current data",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		blob, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		mode := store.ImportModeReplace
		if importMerge {
			mode = store.ImportModeMerge
		}
		return withStore(func(s *store.Store) error {
			if err := s.ImportState(blob, mode); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s (%s)\n", args[0], mode)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
	importCmd.Flags().BoolVar(&importMerge, "merge", false, "Merge into existing data instead of replacing it")
}
