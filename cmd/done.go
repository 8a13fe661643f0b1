package cmd

import (
	"fmt"

	"github.com/theirongolddev/habitrack/internal/cli"
	"github.com/theirongolddev/habitrack/internal/model"

	"github.com/spf13/cobra"
)

var flagDoneDate string

var doneCmd = &cobra.Command{
	Use:   "done NAME",
	Short: "Toggle a habit's completion for today or --date",
	Args:  cobra.ExactArgs(1),
	RunE:  runDone,
}

func init() {
	doneCmd.Flags().StringVar(&flagDoneDate, "date", "", "Day to toggle (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(doneCmd)
}

func runDone(_ *cobra.Command, args []string) error {
	s, err := openSession(false)
	if err != nil {
		return err
	}
	defer s.Close()

	day := s.tr.Today()
	if flagDoneDate != "" {
		day, err = model.ParseDay(flagDoneDate)
		if err != nil {
			return fmt.Errorf("invalid --date %q: want YYYY-MM-DD", flagDoneDate)
		}
	}

	name := args[0]
	done, err := s.tr.Toggle(name, day)
	if err != nil {
		return err
	}

	state := "not done"
	if done {
		state = "done"
	}
	info("  %s %s %s on %s\n", cli.FormatCheck(done), name, state, model.DayKey(day))
	info("  Streak: %s\n", cli.FormatStreak(s.tr.Streak(name)))
	return nil
}
