// Package plans implements the saved-plans listing, pinning and deletion
// commands.
package plans

import (
	"strconv"

	"github.com/scylladb/go-set/i64set"
	"github.com/spf13/cobra"

	"tripgpt/cli"
	"tripgpt/internal/api"
	"tripgpt/internal/prefs"
	"tripgpt/internal/sidebar"
)

// NewCmd instantiates and returns the plans command.
func NewCmd(client *api.Client, store prefs.Store) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plans",
		Short: "Manage saved travel plans",
	}
	cmd.AddCommand(newListCmd(client, store))
	cmd.AddCommand(newDeleteCmd(client, store))
	cmd.AddCommand(newPinCmd(store))
	return cmd
}

func newListCmd(client *api.Client, store prefs.Store) *cobra.Command {
	var opts struct {
		Search string
		Pinned bool
	}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved plans, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			plans, err := client.ListPlans(cmd.Context())
			if err != nil {
				return err
			}
			pins := i64set.New(prefs.PinnedPlans(store)...)
			plans = sidebar.FilterBySearch(plans, opts.Search)
			if opts.Pinned {
				plans = sidebar.DerivePinned(plans, pins)
			}
			if len(plans) == 0 {
				cli.Warn("No plans found\n")
				return nil
			}
			cli.Title("Travel Plans")
			for _, plan := range plans {
				marker := "  "
				if pins.Has(plan.ID) {
					marker = "📌"
				}
				cli.Label("%s #%d %s", marker, plan.ID, plan.Title)
				cli.Value("  %s, %d days\n", plan.Destination, plan.DurationDays)
			}
			cli.Separator()
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.Search, "search", "s", "", "filter by title or destination")
	cmd.Flags().BoolVarP(&opts.Pinned, "pinned", "p", false, "only show pinned plans")
	return cmd
}

func newDeleteCmd(client *api.Client, store prefs.Store) *cobra.Command {
	var opts struct {
		Force bool
	}
	cmd := &cobra.Command{
		Use:   "delete <plan-id>",
		Short: "Delete a plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			planID, err := strconv.ParseInt(args[0], 10, 64)
			cobra.CheckErr(err)

			if !opts.Force {
				confirmed, err := cli.Confirm("Delete this plan? This cannot be undone.")
				cobra.CheckErr(err)
				if !confirmed {
					return nil
				}
			}
			if err := client.DeletePlan(cmd.Context(), planID); err != nil {
				return err
			}
			// Server confirmed, now drop the local pin.
			pins := i64set.New(prefs.PinnedPlans(store)...)
			if pins.Has(planID) {
				pins.Remove(planID)
				ids := pins.List()
				if err := prefs.SetPinnedPlans(store, ids); err != nil {
					return err
				}
			}
			if prefs.LastActiveTrip(store) == planID {
				if err := prefs.ClearLastActiveTrip(store); err != nil {
					return err
				}
			}
			cli.Value("Deleted plan #%d\n", planID)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "skip the confirmation prompt")
	return cmd
}

func newPinCmd(store prefs.Store) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pin <plan-id>",
		Short: "Toggle a plan's pinned state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			planID, err := strconv.ParseInt(args[0], 10, 64)
			cobra.CheckErr(err)

			pins := i64set.New(prefs.PinnedPlans(store)...)
			if pins.Has(planID) {
				pins.Remove(planID)
				cli.Value("Unpinned plan #%d\n", planID)
			} else {
				pins.Add(planID)
				cli.Value("Pinned plan #%d\n", planID)
			}
			return prefs.SetPinnedPlans(store, pins.List())
		},
	}
	return cmd
}
