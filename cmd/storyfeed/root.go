package cmd

import (
	"os"

	"github.com/danivela/storyfeed/pkg/app"
	"github.com/spf13/cobra"
)

var (
	dbPath  string
	density float64
	light   bool
)

var rootCmd = &cobra.Command{
	Use:   "storyfeed",
	Short: "A Pocket story feed for your terminal",
	Long:  "Browse recommended stories with a TUI, or manage the feed from the CLI",
	Run: func(cmd *cobra.Command, args []string) {
		// Launch TUI by default
		a := app.NewApp(app.Options{
			DBPath:  dbPath,
			Density: density,
			Light:   light,
		})
		if err := a.Run(); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "storyfeed.db", "path to the story database")
	rootCmd.PersistentFlags().Float64Var(&density, "density", 1.0, "display density used for thumbnail sizing")
	rootCmd.Flags().BoolVar(&light, "light", false, "use the light color scheme")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(refreshCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(exportCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
