package plateful

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/plateful-app/plateful-cli/internal/ai"
	"github.com/plateful-app/plateful-cli/internal/model"
	"github.com/plateful-app/plateful-cli/internal/store"
	"github.com/spf13/cobra"
)

var recipeCmd = &cobra.Command{
	Use:   "recipe",
	Short: "Manage your recipe collection",
}

var (
	recipeServings     float64
	recipePrep         int
	recipeCook         int
	recipeCalories     int
	recipeProtein      int
	recipeCarbs        int
	recipeFat          int
	recipeFiber        int
	recipeIngredients  []string
	recipeInstructions []string
	recipeFolder       string
	recipeForce        bool
)

// saveGenerated runs the duplicate check shared by every recipe entry
// point, so AI-generated and manual recipes behave the same.
func saveGenerated(cmd *cobra.Command, s *store.Store, r model.Recipe) error {
	if dup, ok := s.FindDuplicateRecipe(r.Title); ok && !recipeForce {
		return fmt.Errorf("a recipe named %q already exists (%s); pass --force to add anyway", dup.Title, dup.ID)
	}
	if err := s.AddRecipe(r); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %q (%s): %d kcal/serving\n", r.Title, r.ID, r.PerServing.Calories)
	return nil
}

var recipeAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a recipe by hand",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r := model.Recipe{
			ID:       store.NewID(),
			Title:    args[0],
			Servings: recipeServings,
			PerServing: model.Nutrition{
				Calories: recipeCalories,
				ProteinG: recipeProtein,
				CarbsG:   recipeCarbs,
				FatG:     recipeFat,
				FiberG:   recipeFiber,
			},
			PrepMinutes:  recipePrep,
			CookMinutes:  recipeCook,
			FolderID:     recipeFolder,
			Instructions: recipeInstructions,
			Source:       model.SourceManual,
			CreatedAt:    time.Now().UnixMilli(),
		}
		for _, raw := range recipeIngredients {
			// "name:amount" with the amount optional.
			name, amount, _ := strings.Cut(raw, ":")
			r.Ingredients = append(r.Ingredients, model.Ingredient{Name: strings.TrimSpace(name), Amount: strings.TrimSpace(amount)})
		}
		return withStore(func(s *store.Store) error {
			return saveGenerated(cmd, s, r)
		})
	},
}

var recipeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recipes, optionally within a folder",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			recipes := s.Recipes()
			if cmd.Flags().Changed("folder") {
				recipes = s.RecipesInFolder(recipeFolder)
			}
			if len(recipes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No recipes yet")
				return nil
			}
			for _, r := range recipes {
				rating := ""
				if r.Rating > 0 {
					rating = fmt.Sprintf("  %.1f★", r.Rating)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-32s %4d kcal/serving%s\n", r.ID, r.Title, r.PerServing.Calories, rating)
			}
			return nil
		})
	},
}

var recipeShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one recipe in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			r, ok := s.RecipeByID(args[0])
			if !ok {
				return fmt.Errorf("recipe %s not found", args[0])
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", r.Title)
			fmt.Fprintf(out, "Servings: %.1f  Prep: %d min  Cook: %d min  Source: %s\n", r.Servings, r.PrepMinutes, r.CookMinutes, r.Source)
			fmt.Fprintf(out, "Per serving: %d kcal, %dg protein, %dg carbs, %dg fat, %dg fiber\n",
				r.PerServing.Calories, r.PerServing.ProteinG, r.PerServing.CarbsG, r.PerServing.FatG, r.PerServing.FiberG)
			if r.FolderID != "" {
				if f, ok := s.FolderByID(r.FolderID); ok {
					fmt.Fprintf(out, "Folder: %s\n", f.Name)
				}
			}
			if len(r.Ingredients) > 0 {
				fmt.Fprintln(out, "Ingredients:")
				for _, ing := range r.Ingredients {
					fmt.Fprintf(out, "  - %s %s\n", ing.Amount, ing.Name)
				}
			}
			if len(r.Instructions) > 0 {
				fmt.Fprintln(out, "Instructions:")
				for i, step := range r.Instructions {
					fmt.Fprintf(out, "  %d. %s\n", i+1, step)
				}
			}
			return nil
		})
	},
}

var recipeScanCmd = &cobra.Command{
	Use:   "scan <image-url>",
	Short: "Extract a recipe from a photo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			r, err := ai.ScanRecipeImage(cmd.Context(), aiClient(), args[0], s.Profile())
			if err != nil {
				return err
			}
			return saveGenerated(cmd, s, r)
		})
	},
}

var recipeImportCmd = &cobra.Command{
	Use:   "import <url>",
	Short: "Import a recipe from a web page",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			r, err := ai.ImportRecipeFromURL(cmd.Context(), aiClient(), args[0], s.Profile())
			if err != nil {
				return err
			}
			return saveGenerated(cmd, s, r)
		})
	},
}

var recipeDescribeCmd = &cobra.Command{
	Use:   "describe <text>",
	Short: "Generate a recipe from a free-text description",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			r, err := ai.RecipeFromDescription(cmd.Context(), aiClient(), args[0], s.Profile())
			if err != nil {
				return err
			}
			return saveGenerated(cmd, s, r)
		})
	},
}

var recipeRateCmd = &cobra.Command{
	Use:   "rate <id> <rating>",
	Short: "Rate a recipe from 0 to 5 in half-star steps",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rating, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid rating %q", args[1])
		}
		return withStore(func(s *store.Store) error {
			if err := s.RateRecipe(args[0], rating); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Rated %.1f\n", rating)
			return nil
		})
	},
}

var recipeMoveCmd = &cobra.Command{
	Use:   "move <id>",
	Short: "Move a recipe into a folder (empty --folder removes it)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			if err := s.MoveRecipeToFolder(args[0], recipeFolder); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Moved")
			return nil
		})
	},
}

var recipeDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a recipe (meal logs keep their snapshots)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			if err := s.DeleteRecipe(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(recipeCmd)
	recipeCmd.AddCommand(recipeAddCmd, recipeListCmd, recipeShowCmd, recipeScanCmd,
		recipeImportCmd, recipeDescribeCmd, recipeRateCmd, recipeMoveCmd, recipeDeleteCmd)

	recipeCmd.PersistentFlags().BoolVar(&recipeForce, "force", false, "Add even if a recipe with the same title exists")

	recipeAddCmd.Flags().Float64Var(&recipeServings, "servings", 1, "Servings the recipe makes")
	recipeAddCmd.Flags().IntVar(&recipePrep, "prep", 0, "Prep minutes")
	recipeAddCmd.Flags().IntVar(&recipeCook, "cook", 0, "Cook minutes")
	recipeAddCmd.Flags().IntVar(&recipeCalories, "calories", 0, "Calories per serving")
	recipeAddCmd.Flags().IntVar(&recipeProtein, "protein", 0, "Protein grams per serving")
	recipeAddCmd.Flags().IntVar(&recipeCarbs, "carbs", 0, "Carb grams per serving")
	recipeAddCmd.Flags().IntVar(&recipeFat, "fat", 0, "Fat grams per serving")
	recipeAddCmd.Flags().IntVar(&recipeFiber, "fiber", 0, "Fiber grams per serving")
	recipeAddCmd.Flags().StringSliceVar(&recipeIngredients, "ingredient", nil, "Ingredient as name:amount (repeatable)")
	recipeAddCmd.Flags().StringArrayVar(&recipeInstructions, "step", nil, "Instruction step (repeatable)")
	recipeAddCmd.Flags().StringVar(&recipeFolder, "folder", "", "Folder ID")
	_ = recipeAddCmd.MarkFlagRequired("calories")

	recipeListCmd.Flags().StringVar(&recipeFolder, "folder", "", "Only recipes in this folder ID")
	recipeMoveCmd.Flags().StringVar(&recipeFolder, "folder", "", "Destination folder ID")
}
