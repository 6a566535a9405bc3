// Package maps implements the map command, listing places around a plan's
// destination.
package maps

import (
	"strconv"

	"github.com/spf13/cobra"

	"tripgpt/cli"
	"tripgpt/internal/api"
)

// NewCmd instantiates and returns the map command.
func NewCmd(client *api.Client) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "map <plan-id>",
		Short: "Show places around a plan's destination",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			planID, err := strconv.ParseInt(args[0], 10, 64)
			cobra.CheckErr(err)

			data, err := client.MapData(cmd.Context(), planID)
			if err != nil {
				return err
			}
			if data.Center != nil {
				cli.Label("Center: ")
				cli.Value("%.4f, %.4f\n", data.Center.Lat, data.Center.Lng)
			}
			printPlaces("Attractions", data.Attractions)
			printPlaces("Restaurants", data.Restaurants)
			printPlaces("Hotels", data.Hotels)
			return nil
		},
	}
	return cmd
}

func printPlaces(heading string, places []api.Place) {
	if len(places) == 0 {
		return
	}
	cli.Title("%s", heading)
	for _, place := range places {
		cli.Label("%s", place.Name)
		if place.Rating > 0 {
			cli.Warn(" ★%.1f", place.Rating)
		}
		if place.Address != "" {
			cli.Value("  %s", place.Address)
		}
		cli.Value("\n")
	}
}
