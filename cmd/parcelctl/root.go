package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"parcelhub/internal/client"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	flagConfig   = "config"
	flagServer   = "server"
	flagToken    = "token"
	flagEmail    = "email"
	flagPassword = "password"
	flagJSON     = "json"
)

func newRootCommand(v *viper.Viper) *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:           "parcelctl",
		Short:         "Operate the parcel API from the command line",
		Long:          `parcelctl lists, tracks and advances parcels, shows stats and seeds demo data through the parcel HTTP API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(v, cmd, cfgFile)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, flagConfig, "", "config file (default is $HOME/.parcelctl.yaml)")
	flags.String(flagServer, "http://localhost:8080", "Base URL of the parcel API")
	flags.String(flagToken, "", "Session token; signs in with --email and --password when empty")
	flags.String(flagEmail, "", "Email to sign in with")
	flags.String(flagPassword, "", "Password to sign in with")
	flags.Bool(flagJSON, false, "Print JSON instead of a table")

	root.AddCommand(
		newListCommand(v),
		newTrackCommand(v),
		newStatsCommand(v),
		newAdvanceCommand(v),
		newSeedCommand(v),
	)
	return root
}

func initConfig(v *viper.Viper, cmd *cobra.Command, cfgFile string) error {
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	v.SetEnvPrefix("PARCELCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", cfgFile, err)
		}
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	v.AddConfigPath(home)
	v.SetConfigType("yaml")
	v.SetConfigName(".parcelctl")

	var notFound viper.ConfigFileNotFoundError
	if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
		return err
	}
	return nil
}

// apiClient returns a client for --server without signing in.
func apiClient(v *viper.Viper) (*client.Client, error) {
	return client.New(v.GetString(flagServer))
}

// signedInClient uses --token, or signs in with --email and --password.
func signedInClient(ctx context.Context, v *viper.Viper) (*client.Client, error) {
	c, err := apiClient(v)
	if err != nil {
		return nil, err
	}

	if token := v.GetString(flagToken); token != "" {
		return c.WithToken(token), nil
	}

	email, password := v.GetString(flagEmail), v.GetString(flagPassword)
	if email == "" || password == "" {
		return nil, errors.New("either --token or --email and --password are required")
	}
	session, err := c.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}
	return c.WithToken(session.Token), nil
}
