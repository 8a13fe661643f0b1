package cmd

import (
	"fmt"

	"github.com/theirongolddev/habitrack/internal/calendar"
	"github.com/theirongolddev/habitrack/internal/cli"

	"github.com/spf13/cobra"
)

var flagCalendarMonth string

var calendarCmd = &cobra.Command{
	Use:   "calendar [NAME]",
	Short: "Month grid of a habit's completions",
	Long:  "Month grid of a habit's completions. Without NAME the first habit is shown.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCalendar,
}

func init() {
	calendarCmd.Flags().StringVar(&flagCalendarMonth, "month", "", "Month to show (YYYY-MM, default current)")
	rootCmd.AddCommand(calendarCmd)
}

func runCalendar(_ *cobra.Command, args []string) error {
	s, err := openSession(false)
	if err != nil {
		return err
	}
	defer s.Close()

	view := calendar.NewView(s.tr.Today())
	view.Sync(s.tr.Names())

	if len(args) == 1 {
		if err := view.Select(args[0]); err != nil {
			return err
		}
	}
	if flagCalendarMonth != "" {
		m, err := calendar.ParseMonth(flagCalendarMonth)
		if err != nil {
			return fmt.Errorf("invalid --month %q: want YYYY-MM", flagCalendarMonth)
		}
		view.ShowMonth(m)
	}

	grid, ok := view.Grid(s.tr)
	if !ok {
		fmt.Println("\n  No habits to show. Add one with `habitrack add NAME`.")
		return nil
	}
	name, _ := view.Selected()

	fmt.Println()
	fmt.Println(cli.RenderTitle(cli.Truncate(name, 45)))
	fmt.Println()
	fmt.Print(cli.RenderCalendar(grid))
	fmt.Println()
	fmt.Printf("  %d days done in %s · streak %s\n\n",
		grid.Completed(), grid.Month.Title(), cli.FormatStreak(s.tr.Streak(name)))
	return nil
}
