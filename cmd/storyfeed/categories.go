package cmd

import (
	"fmt"

	"github.com/danivela/storyfeed/pkg/data"
	"github.com/spf13/cobra"
)

var toggleCategory string

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List or toggle story categories",
	Long:  "Show every known category with its selection state, or toggle one with --toggle",
	Run: func(cmd *cobra.Command, args []string) {
		repo := data.NewDuckDBRepository(dbPath)

		categories, err := repo.ListCategories()
		if err != nil {
			cobra.CheckErr(err)
		}

		if toggleCategory != "" {
			found := false
			for _, cat := range categories {
				if cat.Name == toggleCategory {
					if err := repo.SetCategorySelected(cat.Name, !cat.IsSelected); err != nil {
						cobra.CheckErr(err)
					}
					found = true
					break
				}
			}
			if !found {
				cobra.CheckErr(fmt.Errorf("unknown category %q", toggleCategory))
			}
			categories, err = repo.ListCategories()
			if err != nil {
				cobra.CheckErr(err)
			}
		}

		if len(categories) == 0 {
			fmt.Println("No categories yet. Run 'storyfeed refresh' first.")
			return
		}

		for _, cat := range categories {
			marker := " "
			if cat.IsSelected {
				marker = "✓"
			}
			fmt.Printf("[%s] %s\n", marker, cat.Name)
		}
	},
}

func init() {
	categoriesCmd.Flags().StringVar(&toggleCategory, "toggle", "", "flip the selection state of the named category")
}
