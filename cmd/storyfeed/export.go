package cmd

import (
	"fmt"

	"github.com/danivela/storyfeed/pkg/data"
	"github.com/danivela/storyfeed/pkg/integrations"
	"github.com/danivela/storyfeed/pkg/services"
	"github.com/danivela/storyfeed/pkg/sources"
	"github.com/spf13/cobra"
)

var exportDir string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the current feed as an EPUB",
	Long:  "Compile the stories the home feed would show into a single EPUB for offline reading",
	Run: func(cmd *cobra.Command, args []string) {
		repo := data.NewDuckDBRepository(dbPath)
		refresher := services.NewRefresher(sources.NewPocket(), repo, nil)

		stories, err := refresher.Feed(services.FeedSize)
		if err != nil {
			cobra.CheckErr(err)
		}
		if len(stories) == 0 {
			cobra.CheckErr(fmt.Errorf("nothing to export; run 'storyfeed refresh' first"))
		}

		builder := integrations.NewEPubBuilder(exportDir)
		path, err := builder.CreateEPub("Pocket stories", stories)
		if err != nil {
			cobra.CheckErr(err)
		}

		fmt.Printf("Wrote %s (%d stories)\n", path, len(stories))
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportDir, "out", ".", "directory to write the EPUB into")
}
