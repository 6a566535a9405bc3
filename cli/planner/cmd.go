package planner

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"tripgpt/internal/api"
	"tripgpt/internal/prefs"
	"tripgpt/internal/session"
)

// NewCmd instantiates and returns the plan command.
func NewCmd(client *api.Client, store prefs.Store) *cobra.Command {
	var opts struct {
		TripID int64
		New    bool
	}
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan trips interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			controller := session.NewController(client, store)
			if opts.New {
				controller.StartNewTrip()
			} else if opts.TripID != 0 {
				if err := prefs.SetLastActiveTrip(store, opts.TripID); err != nil {
					return err
				}
			}

			m, err := New(ctx, controller)
			if err != nil {
				return err
			}

			p := tea.NewProgram(
				m,
				tea.WithAltScreen(),
				tea.WithContext(ctx),
				tea.WithMouseCellMotion(),
			)

			if _, err := p.Run(); err != nil {
				return errors.Wrap(err, "running planner")
			}
			if m.err != nil && expiredSession(m.err) {
				return m.err
			}
			return nil
		},
	}
	cmd.Flags().Int64VarP(&opts.TripID, "id", "i", 0, "resume a specific trip")
	cmd.Flags().BoolVarP(&opts.New, "new", "n", false, "start with an empty trip")
	return cmd
}
