// Package dashboard implements the dashboard, weather and currency commands.
package dashboard

import (
	"context"

	"github.com/spf13/cobra"

	"tripgpt/cli"
	"tripgpt/internal/api"
	"tripgpt/internal/configuration"
	"tripgpt/internal/prefs"
	"tripgpt/internal/weather"
)

const recentTripLimit = 5

// NewCmd instantiates and returns the dashboard command.
func NewCmd(client *api.Client, store prefs.Store, config *configuration.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the trip dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			session, err := prefs.LoadSession(store)
			if err != nil {
				return err
			}
			cli.Title("TripGPT")
			if session.Username != "" {
				cli.Label("Welcome back, %s!\n", session.Username)
			}

			printStats(ctx, client)
			printWeather(ctx, client, config.DefaultCity)
			printRecentTrips(ctx, client)
			return nil
		},
	}
	return cmd
}

func printStats(ctx context.Context, client *api.Client) {
	stats, err := client.MyStats(ctx)
	if err != nil {
		return
	}
	cli.Label("Trips planned: ")
	cli.Value("%d", stats.TotalPlans)
	cli.Label("   Queries: ")
	cli.Value("%d\n", stats.TotalQueries)
}

func printWeather(ctx context.Context, client *api.Client, city string) {
	var summary *weather.Summary
	report, err := client.CurrentWeather(ctx, city)
	if err != nil {
		summary = weather.Mock(city)
	} else {
		summary = weather.Summarize(report)
	}
	cli.Separator()
	cli.Label("%s %s: ", summary.Icon, summary.City)
	cli.Value("%s, %d°C\n", summary.Condition, summary.Temperature)
}

func printRecentTrips(ctx context.Context, client *api.Client) {
	plans, err := client.ListPlans(ctx)
	if err != nil {
		return
	}
	if len(plans) > recentTripLimit {
		plans = plans[:recentTripLimit]
	}
	cli.Separator()
	cli.Label("Recent trips\n")
	for _, plan := range plans {
		cli.Value("  #%d %s (%s, %d days)\n", plan.ID, plan.Title, plan.Destination, plan.DurationDays)
	}
}
