package cmd

import (
	"fmt"

	"github.com/danivela/storyfeed/pkg/data"
	"github.com/danivela/storyfeed/pkg/services"
	"github.com/danivela/storyfeed/pkg/sources"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var feedURL string

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Fetch the latest recommended stories",
	Long:  "Fetch recommendations from Pocket (or an RSS feed) and store them locally",
	Run: func(cmd *cobra.Command, args []string) {
		repo := data.NewDuckDBRepository(dbPath)

		var source sources.Source
		if feedURL != "" {
			source = sources.NewRSS(feedURL)
		} else {
			source = sources.NewPocket()
		}

		log := logrus.New()
		refresher := services.NewRefresher(source, repo, log)

		count, err := refresher.Refresh()
		if err != nil {
			cobra.CheckErr(err)
		}

		fmt.Printf("Stored %d stories\n", count)
	},
}

func init() {
	refreshCmd.Flags().StringVar(&feedURL, "feed", "", "fetch from an RSS/Atom feed instead of Pocket")
}
