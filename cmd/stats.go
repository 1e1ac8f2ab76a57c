package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, svc, levels, _, err := services(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		rec := svc.Load()
		info, _ := levels.Refresh(context.Background())

		fmt.Printf("%s — Level %d %s\n", rec.Username, info.CurrentLevel, info.CurrentTitle)
		fmt.Printf("Total XP:           %d\n", rec.TotalXP)
		if info.XPNeeded > 0 {
			fmt.Printf("Next level in:      %d XP\n", info.XPNeeded)
		}
		fmt.Printf("Streak:             %d day(s)\n", rec.StreakDays)
		if rec.LastActivityDate != nil {
			fmt.Printf("Last activity:      %s\n", rec.LastActivityDate)
		}
		fmt.Printf("Courses completed:  %d\n", rec.CoursesCompleted)
		fmt.Printf("Quizzes attempted:  %d\n", rec.QuizzesAttempted)
		fmt.Printf("Quizzes passed:     %d\n", rec.QuizzesPassed)
		fmt.Printf("Perfect quizzes:    %d\n", rec.PerfectQuizzes)
		fmt.Printf("Skills learned:     %d\n", rec.UniqueSkills)
		fmt.Printf("Paths generated:    %d\n", rec.PathsGenerated)
		fmt.Printf("Achievements:       %d\n", len(rec.UnlockedAchievements))
		return nil
	},
}
