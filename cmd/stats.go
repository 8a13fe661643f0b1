package cmd

import (
	"fmt"

	"github.com/theirongolddev/habitrack/internal/cli"
	"github.com/theirongolddev/habitrack/internal/tracker"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats [NAME]",
	Short: "Summary statistics, or one habit's statistics",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, args []string) error {
	s, err := openSession(false)
	if err != nil {
		return err
	}
	defer s.Close()

	if len(args) == 1 {
		return printHabitStats(s, args[0])
	}

	if s.tr.Len() == 0 {
		fmt.Println("\n  No habits yet.")
		return nil
	}

	w := s.window()
	sum := s.tr.Summary(w)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("HABIT STATS  Last %dd", w)))
	fmt.Println()

	best := "-"
	if sum.BestStreak > 0 {
		best = fmt.Sprintf("%s (%s)", cli.FormatStreak(sum.BestStreak), sum.BestStreakHabit)
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Habits", cli.FormatNumber(int64(sum.TotalHabits))},
			{"Done today", fmt.Sprintf("%d / %d", sum.CompletedToday, sum.TotalHabits)},
			{"Completions", cli.FormatNumber(int64(sum.TotalCompletions))},
			{"Average rate", cli.FormatRate(sum.AverageRate)},
			{"Best current streak", best},
		},
	}))
	fmt.Println()

	rows := make([][]string, 0, s.tr.Len())
	for _, hs := range s.tr.AllStats(w) {
		rows = append(rows, []string{
			cli.Truncate(hs.Name, 28),
			cli.RenderRateBar(hs.Rate, 20),
			cli.FormatRate(hs.Rate),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Habit", "", "Rate"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}

func printHabitStats(s *session, name string) error {
	w := s.window()
	hs, ok := s.tr.Stats(name, w)
	if !ok {
		return fmt.Errorf("%w: %q", tracker.ErrNotFound, name)
	}
	h, _ := s.tr.Get(name)

	fmt.Println()
	fmt.Println(cli.RenderTitle(cli.Truncate(hs.Name, 45)))
	fmt.Println()

	rows := [][]string{
		{"Category", orDash(hs.Category)},
		{"Description", orDash(cli.Truncate(h.Description, 40))},
		{"Created", hs.CreatedDate},
		{"Done today", cli.FormatCheck(hs.CompletedToday)},
		{"Current streak", cli.FormatStreak(hs.Streak)},
		{"Best streak", cli.FormatStreak(hs.BestStreak)},
		{fmt.Sprintf("Rate (%dd)", w), cli.FormatRate(hs.Rate)},
		{"Total completions", cli.FormatNumber(int64(hs.TotalCompletions))},
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
