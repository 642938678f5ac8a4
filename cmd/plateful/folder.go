package plateful

import (
	"fmt"

	"github.com/plateful-app/plateful-cli/internal/model"
	"github.com/plateful-app/plateful-cli/internal/store"
	"github.com/spf13/cobra"
)

var folderCmd = &cobra.Command{
	Use:   "folder",
	Short: "Organize recipes into folders",
}

var (
	folderColor  string
	folderIcon   string
	folderParent string
)

var folderAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a folder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			f := model.Folder{
				ID:       store.NewID(),
				Name:     args[0],
				Color:    folderColor,
				Icon:     folderIcon,
				ParentID: folderParent,
			}
			if err := s.AddFolder(f); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created folder %q (%s)\n", f.Name, f.ID)
			return nil
		})
	},
}

var folderListCmd = &cobra.Command{
	Use:   "list",
	Short: "List folders with recipe counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			folders := s.Folders()
			if len(folders) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No folders yet")
				return nil
			}
			for _, f := range folders {
				count := len(s.RecipesInFolder(f.ID))
				parent := ""
				if f.ParentID != "" {
					if p, ok := s.FolderByID(f.ParentID); ok {
						parent = "  (in " + p.Name + ")"
					}
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-24s %d recipe(s)%s\n", f.ID, f.Name, count, parent)
			}
			return nil
		})
	},
}

var folderDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a folder (its recipes become unfiled)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			if err := s.DeleteFolder(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(folderCmd)
	folderCmd.AddCommand(folderAddCmd, folderListCmd, folderDeleteCmd)

	folderAddCmd.Flags().StringVar(&folderColor, "color", "", "Display color")
	folderAddCmd.Flags().StringVar(&folderIcon, "icon", "", "Display icon")
	folderAddCmd.Flags().StringVar(&folderParent, "parent", "", "Parent folder ID")
}
