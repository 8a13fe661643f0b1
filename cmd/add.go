package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/habitrack/internal/tui"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var (
	flagAddCategory    string
	flagAddDescription string
)

var addCmd = &cobra.Command{
	Use:   "add [NAME]",
	Short: "Add a habit",
	Long:  "Add a habit. Without NAME on a terminal, a form asks for the details.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&flagAddCategory, "category", "c", "", "Category")
	addCmd.Flags().StringVarP(&flagAddDescription, "description", "d", "", "Description")
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	s, err := openSession(false)
	if err != nil {
		return err
	}
	defer s.Close()

	in := tui.HabitInput{Category: flagAddCategory, Description: flagAddDescription}
	switch {
	case len(args) == 1:
		in.Name = args[0]
	case interactive():
		in, err = tui.RunAddForm(s.cfg, func(name string) bool {
			_, ok := s.tr.Get(name)
			return ok
		})
		if errors.Is(err, huh.ErrUserAborted) {
			info("  Cancelled.\n")
			return nil
		}
		if err != nil {
			return fmt.Errorf("add form: %w", err)
		}
	default:
		return errors.New("habit name required (habitrack add NAME)")
	}

	h, err := s.tr.Add(in.Name, in.Category, in.Description)
	if err != nil {
		return err
	}

	if h.Category != "" {
		info("  Added %q in %s\n", h.Name, h.Category)
	} else {
		info("  Added %q\n", h.Name)
	}
	return nil
}
