package cmd

import (
	"fmt"

	"github.com/theirongolddev/habitrack/internal/cli"

	"github.com/spf13/cobra"
)

var flagHistoryDays int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Daily completions table",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryDays, "days", 0, "Days to show (default from config, 14)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	s, err := openSession(false)
	if err != nil {
		return err
	}
	defer s.Close()

	if s.tr.Len() == 0 {
		fmt.Println("\n  No habits yet.")
		return nil
	}

	n := flagHistoryDays
	if n <= 0 {
		n = s.cfg.General.HistoryDays
	}
	if n <= 0 {
		n = 14
	}
	days := s.tr.History(n)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("DAILY COMPLETIONS  Last %dd", n)))
	fmt.Println()

	rows := make([][]string, 0, len(days))
	counts := make([]float64, 0, len(days))
	for _, d := range days {
		rate := "-"
		if d.Total > 0 {
			rate = cli.FormatRate(float64(d.Completed) / float64(d.Total) * 100)
		}
		rows = append(rows, []string{
			d.Date.Format("2006-01-02"),
			cli.FormatDayOfWeek((int(d.Date.Weekday()) + 6) % 7),
			cli.FormatNumber(int64(d.Completed)),
			cli.FormatNumber(int64(d.Total)),
			rate,
		})
		counts = append(counts, float64(d.Completed))
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Day", "Done", "Habits", "Rate"},
		Rows:    rows,
	}))
	fmt.Printf("\n  %s\n\n", cli.RenderSparkline(counts))
	return nil
}
