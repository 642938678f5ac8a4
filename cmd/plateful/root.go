package plateful

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var storePath string

var rootCmd = &cobra.Command{
	Use:   "plateful",
	Short: "plateful tracks recipes, meals, weight and macro goals from your terminal",
	Long:  "plateful is a local-first nutrition tracker: scan or describe recipes with AI assistance, log meals and weight, and watch daily macro goals derived from your profile.",
}

func Execute() {
	// A .env next to the binary is the conventional home for the AI
	// key; missing files are fine.
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", "Path to the plateful store file")
}
