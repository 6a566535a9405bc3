package dashboard

import (
	"github.com/spf13/cobra"

	"tripgpt/cli"
	"tripgpt/internal/api"
	"tripgpt/internal/configuration"
	"tripgpt/internal/weather"
)

// NewWeatherCmd instantiates and returns the weather command.
func NewWeatherCmd(client *api.Client, config *configuration.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weather [city]",
		Short: "Show current weather for a city",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			city := config.DefaultCity
			if len(args) == 1 {
				city = args[0]
			}
			report, err := client.CurrentWeather(cmd.Context(), city)
			if err != nil {
				return err
			}
			summary := weather.Summarize(report)
			cli.Title("Weather in %s", summary.City)
			cli.Label("%s %s, ", summary.Icon, summary.Condition)
			cli.Value("%d°C\n", summary.Temperature)
			if summary.Description != "" {
				cli.Value("%s\n", summary.Description)
			}
			for _, day := range report.Forecast {
				cli.Label("%s: ", day.Date)
				cli.Value("%s\n", day.Description)
			}
			return nil
		},
	}
	return cmd
}
