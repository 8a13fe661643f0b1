package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/habitrack/internal/tracker"
	"github.com/theirongolddev/habitrack/internal/tui"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var flagDeleteYes bool

var deleteCmd = &cobra.Command{
	Use:     "delete NAME",
	Aliases: []string{"rm"},
	Short:   "Delete a habit and its completion history",
	Args:    cobra.ExactArgs(1),
	RunE:    runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&flagDeleteYes, "yes", "y", false, "Skip the confirmation")
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(_ *cobra.Command, args []string) error {
	s, err := openSession(false)
	if err != nil {
		return err
	}
	defer s.Close()

	name := args[0]
	if _, ok := s.tr.Get(name); !ok {
		return fmt.Errorf("%w: %q", tracker.ErrNotFound, name)
	}

	if !flagDeleteYes {
		if !interactive() {
			return fmt.Errorf("refusing to delete %q without --yes outside a terminal", name)
		}
		ok, err := tui.RunDeleteConfirm(name)
		if err != nil && !errors.Is(err, huh.ErrUserAborted) {
			return fmt.Errorf("confirm: %w", err)
		}
		if !ok {
			info("  Kept %q\n", name)
			return nil
		}
	}

	if err := s.tr.Delete(name); err != nil {
		return err
	}
	info("  Deleted %q\n", name)
	return nil
}
