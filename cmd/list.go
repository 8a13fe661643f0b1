package cmd

import (
	"fmt"

	"github.com/theirongolddev/habitrack/internal/cli"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Habit table with today's status, streaks and rates",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	s, err := openSession(false)
	if err != nil {
		return err
	}
	defer s.Close()

	all := s.tr.AllStats(s.window())
	if len(all) == 0 {
		fmt.Println("\n  No habits yet. Add one with `habitrack add NAME`.")
		return nil
	}

	sum := s.tr.Summary(s.window())

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("HABITS  %s", s.tr.Today().Format("Mon Jan 2, 2006"))))
	fmt.Println()

	rows := make([][]string, 0, len(all))
	for _, hs := range all {
		rows = append(rows, []string{
			cli.Truncate(hs.Name, 28),
			cli.Truncate(hs.Category, 16),
			hs.CreatedDate,
			cli.FormatCheck(hs.CompletedToday),
			cli.FormatNumber(int64(hs.Streak)),
			cli.FormatNumber(int64(hs.BestStreak)),
			cli.FormatRate(hs.Rate),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Habit", "Category", "Created", "Today", "Streak", "Best", fmt.Sprintf("Rate %dd", s.window())},
		Rows:    rows,
	}))

	fmt.Printf("\n  %d of %d done today\n\n", sum.CompletedToday, sum.TotalHabits)
	return nil
}
