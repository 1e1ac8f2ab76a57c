package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pathpilot/pathpilot/internal/progress"
)

var (
	completeTitle      string
	completeDifficulty string
	completeSkills     []string
)

var completeCmd = &cobra.Command{
	Use:   "complete <course-id>",
	Short: "Record a course completion",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, svc, levels, _, err := services(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		result := svc.CompleteCourse(ctx, args[0], completeTitle, completeDifficulty, completeSkills)
		if result.AlreadyCompleted {
			fmt.Println("Course already completed; nothing recorded.")
			return nil
		}

		fmt.Printf("+%d XP (total %d)\n", result.XPResult.XPEarned, result.XPResult.TotalXP)
		for _, a := range result.NewAchievements {
			fmt.Printf("%s %s unlocked (+%d XP)\n", a.Icon, a.Name, a.Points)
		}
		if info, celebrate := levels.Refresh(ctx); celebrate {
			fmt.Printf("Level up! You are now level %d %s\n", info.CurrentLevel, info.CurrentTitle)
		}
		if result.SaveFailed {
			fmt.Println("Warning: progress could not be saved to disk.")
		}
		return nil
	},
}

func init() {
	completeCmd.Flags().StringVar(&completeTitle, "title", "", "Course title")
	completeCmd.Flags().StringVar(&completeDifficulty, "difficulty", progress.DifficultyBeginner, "Course difficulty (Beginner, Intermediate, Advanced)")
	completeCmd.Flags().StringSliceVar(&completeSkills, "skills", nil, "Skills taught by the course")
}
