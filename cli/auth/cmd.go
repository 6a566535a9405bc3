// Package auth implements the login, signup, logout and whoami commands.
package auth

import (
	"github.com/spf13/cobra"

	"tripgpt/cli"
	"tripgpt/internal/api"
	"tripgpt/internal/prefs"
)

// NewLoginCmd instantiates and returns the login command.
func NewLoginCmd(client *api.Client, store prefs.Store) *cobra.Command {
	var opts struct {
		Email string
	}
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and cache a session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if opts.Email == "" {
				opts.Email, err = cli.Ask("Email:")
				cobra.CheckErr(err)
			}
			password, err := cli.AskPassword("Password:")
			cobra.CheckErr(err)

			response, err := client.Login(cmd.Context(), &api.Credentials{
				Email:    opts.Email,
				Password: password,
			})
			if err != nil {
				return err
			}
			if err := prefs.SaveSession(store, &prefs.Session{
				Token:        response.AccessToken,
				Username:     response.Username,
				Email:        response.Email,
				ProfileImage: response.ProfileImage,
			}); err != nil {
				return err
			}
			cli.Value("Logged in as %s\n", response.Username)
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.Email, "email", "e", "", "email to log in with")
	return cmd
}

// NewSignupCmd instantiates and returns the signup command.
func NewSignupCmd(client *api.Client, store prefs.Store) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and log in",
		RunE: func(cmd *cobra.Command, args []string) error {
			username, err := cli.Ask("Username:")
			cobra.CheckErr(err)
			email, err := cli.Ask("Email:")
			cobra.CheckErr(err)
			password, err := cli.AskPassword("Password:")
			cobra.CheckErr(err)

			response, err := client.Signup(cmd.Context(), &api.SignupRequest{
				Username: username,
				Email:    email,
				Password: password,
			})
			if err != nil {
				return err
			}
			if err := prefs.SaveSession(store, &prefs.Session{
				Token:        response.AccessToken,
				Username:     response.Username,
				Email:        response.Email,
				ProfileImage: response.ProfileImage,
			}); err != nil {
				return err
			}
			cli.Value("Welcome, %s\n", response.Username)
			return nil
		},
	}
	return cmd
}

// NewLogoutCmd instantiates and returns the logout command. Pinned plans and
// the last active trip survive logout.
func NewLogoutCmd(store prefs.Store) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the cached session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := prefs.ClearSession(store); err != nil {
				return err
			}
			cli.Value("Logged out\n")
			return nil
		},
	}
}

// NewWhoamiCmd instantiates and returns the whoami command.
func NewWhoamiCmd(client *api.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the authenticated account",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := client.Me(cmd.Context())
			if err != nil {
				return err
			}
			cli.Label("Username: ")
			cli.Value("%s\n", user.Username)
			cli.Label("Email:    ")
			cli.Value("%s\n", user.Email)
			if !user.CreatedAt.IsZero() {
				cli.Label("Member since: ")
				cli.Value("%s\n", user.CreatedAt.Format("2006-01-02"))
			}
			if user.IsAdmin {
				cli.Warn("Administrator account\n")
			}
			return nil
		},
	}
}
