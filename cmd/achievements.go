package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "List achievements and unlock status",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, svc, _, client, err := services(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		catalog, err := client.AchievementCatalog(context.Background())
		if err != nil {
			return fmt.Errorf("fetch catalog: %w", err)
		}

		rec := svc.Load()
		unlocked := 0
		for _, a := range catalog {
			mark := " "
			if rec.HasAchievement(a.ID) {
				mark = "★"
				unlocked++
			}
			fmt.Printf("%s %s %-24s %s (+%d XP)\n", mark, a.Icon, a.Name, a.Description, a.Points)
		}
		fmt.Printf("\n%d of %d unlocked\n", unlocked, len(catalog))
		return nil
	},
}
