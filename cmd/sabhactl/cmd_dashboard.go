package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"sabha/internal/announce"
	"sabha/internal/roster"
)

// dashboardCmd gives a one-shot overview: roster size and gender breakdown
// next to the latest announcements. The two fetches run concurrently.
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show roster and announcement summary",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := loadSession()
		if err != nil {
			return err
		}
		client := backendClient()

		var (
			entries []roster.Entry
			items   []announce.Announcement
		)
		g, ctx := errgroup.WithContext(cmd.Context())
		g.Go(func() error {
			var err error
			entries, err = client.ListPersonalDetails(ctx, sess.AccessToken, nil)
			return err
		})
		g.Go(func() error {
			var err error
			items, err = client.ListAnnouncements(ctx, sess.AccessToken)
			return err
		})
		if err := g.Wait(); err != nil {
			return err
		}

		color.Cyan("Members: %d", len(entries))
		byGender := map[string]int{}
		for _, e := range entries {
			key := strings.ToLower(e.Gender)
			if key == "" {
				key = "unspecified"
			}
			byGender[key]++
		}
		for gender, n := range byGender {
			fmt.Printf("  %s: %d\n", gender, n)
		}

		color.Cyan("\nAnnouncements: %d", len(items))
		const latest = 3
		for i, a := range items {
			if i == latest {
				break
			}
			fmt.Printf("  %s (%s)\n", a.Title, a.CreatedAt)
		}
		return nil
	},
}
