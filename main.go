package main

import (
	"time"

	"github.com/spf13/cobra"

	"tripgpt/cli/admin"
	"tripgpt/cli/auth"
	"tripgpt/cli/dashboard"
	"tripgpt/cli/maps"
	"tripgpt/cli/planner"
	"tripgpt/cli/plans"
	"tripgpt/internal/api"
	"tripgpt/internal/configuration"
	"tripgpt/internal/prefs"
)

const configFilepath = "~/.tripgpt/config.json"

var rootCmd = &cobra.Command{
	Use:   "tripgpt",
	Short: "A CLI for AI-assisted trip planning",
}

func main() {
	config, err := configuration.Parse(configFilepath)
	if err != nil {
		panic(err)
	}

	// Instantiate the local preference store.
	store, err := prefs.New(config.PreferencesPath)
	if err != nil {
		panic(err)
	}
	defer store.Close()

	// Instantiate the API client.
	client := api.New(config.APIBaseURL, time.Duration(config.RequestTimeout)*time.Second, prefs.Tokens{Store: store})

	rootCmd.AddCommand(auth.NewLoginCmd(client, store))
	rootCmd.AddCommand(auth.NewSignupCmd(client, store))
	rootCmd.AddCommand(auth.NewLogoutCmd(store))
	rootCmd.AddCommand(auth.NewWhoamiCmd(client))
	rootCmd.AddCommand(planner.NewCmd(client, store))
	rootCmd.AddCommand(plans.NewCmd(client, store))
	rootCmd.AddCommand(dashboard.NewCmd(client, store, config))
	rootCmd.AddCommand(dashboard.NewWeatherCmd(client, config))
	rootCmd.AddCommand(dashboard.NewCurrencyCmd(client, config))
	rootCmd.AddCommand(maps.NewCmd(client))
	rootCmd.AddCommand(admin.NewCmd(client))
	rootCmd.Execute()
}
