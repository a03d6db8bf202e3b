package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/danivela/storyfeed/pkg/data"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored stories",
	Long:  "Display every story in the local feed database in a formatted table",
	Run: func(cmd *cobra.Command, args []string) {
		repo := data.NewDuckDBRepository(dbPath)
		stories, err := repo.ListStories()
		if err != nil {
			cobra.CheckErr(err)
		}

		if len(stories) == 0 {
			fmt.Println("No stories stored yet. Run 'storyfeed refresh' to fetch some.")
			return
		}

		columns := []table.Column{
			{Title: "Title", Width: 40},
			{Title: "Publisher", Width: 20},
			{Title: "Category", Width: 14},
			{Title: "Min", Width: 5},
			{Title: "Shown", Width: 6},
		}

		rows := []table.Row{}
		for _, story := range stories {
			rows = append(rows, table.Row{
				truncateString(story.Title, 38),
				truncateString(story.Publisher, 18),
				story.Category,
				fmt.Sprintf("%d", story.TimeToRead),
				fmt.Sprintf("%d", story.TimesShown),
			})
		}

		t := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithFocused(false),
			table.WithHeight(len(rows)),
		)

		s := table.DefaultStyles()
		s.Header = s.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true)
		s.Selected = s.Selected.
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(false)
		t.SetStyles(s)

		fmt.Printf("\nFeed (%d stories)\n\n", len(stories))
		fmt.Println(t.View())
	},
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
