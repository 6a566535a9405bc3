// Package admin implements the admin panel commands.
package admin

import (
	"github.com/spf13/cobra"

	"tripgpt/cli"
	"tripgpt/internal/api"
)

// NewCmd instantiates and returns the admin command.
func NewCmd(client *api.Client) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrative statistics and maintenance",
	}
	cmd.AddCommand(newStatsCmd(client))
	cmd.AddCommand(newUsersCmd(client))
	cmd.AddCommand(newCleanupCmd(client))
	return cmd
}

func newStatsCmd(client *api.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show system-wide usage statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := client.AdminStats(cmd.Context())
			if err != nil {
				return err
			}
			cli.Title("System")
			cli.Label("Users: ")
			cli.Value("%d", stats.System.TotalUsers)
			cli.Label("   Plans: ")
			cli.Value("%d", stats.System.TotalPlans)
			cli.Label("   Queries: ")
			cli.Value("%d", stats.System.TotalQueries)
			cli.Label("   API requests: ")
			cli.Value("%d\n", stats.System.TotalAPIRequests)

			if len(stats.PopularDestinations) > 0 {
				cli.Title("Popular destinations")
				for _, destination := range stats.PopularDestinations {
					cli.Label("%s: ", destination.Destination)
					cli.Value("%d\n", destination.Count)
				}
			}

			cli.Title("Averages")
			cli.Label("Trip duration: ")
			cli.Value("%.1f days", stats.Averages.TripDuration)
			cli.Label("   Budget: ")
			cli.Value("%.0f\n", stats.Averages.Budget)

			if len(stats.APIEndpoints) > 0 {
				cli.Title("API endpoints")
				for _, endpoint := range stats.APIEndpoints {
					cli.Label("%s: ", endpoint.Endpoint)
					cli.Value("%d requests, %.0fms avg\n", endpoint.Requests, endpoint.AvgResponseTime)
				}
			}
			return nil
		},
	}
}

func newUsersCmd(client *api.Client) *cobra.Command {
	var opts struct {
		Limit int
	}
	cmd := &cobra.Command{
		Use:   "users",
		Short: "List recently active users",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := client.AdminUsers(cmd.Context(), opts.Limit)
			if err != nil {
				return err
			}
			cli.Title("Users")
			for _, user := range users {
				cli.Label("#%d %s ", user.ID, user.Username)
				cli.Value("%s  joined %s\n", user.Email, user.CreatedAt.Format("2006-01-02"))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&opts.Limit, "limit", "l", 20, "maximum number of users to list")
	return cmd
}

func newCleanupCmd(client *api.Client) *cobra.Command {
	var opts struct {
		Days  int
		Force bool
	}
	cmd := &cobra.Command{
		Use:       "cleanup <queries|api-usage>",
		Short:     "Delete old records",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"queries", "api-usage"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := args[0]
			if !opts.Force {
				confirmed, err := cli.Confirm("Permanently delete old records?")
				cobra.CheckErr(err)
				if !confirmed {
					return nil
				}
			}
			response, err := client.AdminCleanup(cmd.Context(), kind, opts.Days)
			if err != nil {
				return err
			}
			cli.Value("Deleted %d %s\n", response.Deleted, kind)
			return nil
		},
	}
	cmd.Flags().IntVarP(&opts.Days, "days", "d", 30, "delete records older than this many days")
	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "skip the confirmation prompt")
	return cmd
}
