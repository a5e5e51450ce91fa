package main

import (
	"errors"
	"fmt"
	"strings"

	"parcelhub/internal/client"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newListCommand(v *viper.Viper) *cobra.Command {
	var filter client.ParcelFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List parcels, newest last",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := signedInClient(cmd.Context(), v)
			if err != nil {
				return err
			}

			parcels, err := c.ListParcels(cmd.Context(), filter)
			if err != nil {
				// the list is still printed, empty, so scripts keep working
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: could not load parcels: %v\n", err)
			}

			if v.GetBool(flagJSON) {
				return printJSON(cmd.OutOrStdout(), parcels)
			}
			return printParcels(cmd.OutOrStdout(), parcels)
		},
	}

	cmd.Flags().StringVar(&filter.Search, "search", "", "Match customer name, tracking ID or phone")
	cmd.Flags().StringSliceVar(&filter.Statuses, "status", nil, "Only these statuses, e.g. pending,in_transit")
	cmd.Flags().StringVar(&filter.DriverID, "driver", "", "Only parcels assigned to this driver")
	cmd.Flags().StringVar(&filter.VendorID, "vendor", "", "Only parcels of this vendor")
	return cmd
}

func newTrackCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "track TRACKING_ID",
		Short: "Show a parcel by tracking ID; no sign in needed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := apiClient(v)
			if err != nil {
				return err
			}

			trackingID := strings.ToUpper(strings.TrimSpace(args[0]))
			p, found, err := c.TrackParcel(cmd.Context(), trackingID)
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("no parcel with tracking ID %s", trackingID)
			}

			if v.GetBool(flagJSON) {
				return printJSON(cmd.OutOrStdout(), p)
			}
			return printParcel(cmd.OutOrStdout(), p)
		},
	}
}

func newStatsCommand(v *viper.Viper) *cobra.Command {
	var vendorID string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show parcel counts and revenue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := signedInClient(cmd.Context(), v)
			if err != nil {
				return err
			}

			stats, err := c.Stats(cmd.Context(), vendorID)
			if err != nil {
				return err
			}

			if v.GetBool(flagJSON) {
				return printJSON(cmd.OutOrStdout(), stats)
			}
			return printStats(cmd.OutOrStdout(), stats)
		},
	}

	cmd.Flags().StringVar(&vendorID, "vendor", "", "Only parcels of this vendor")
	return cmd
}

func newAdvanceCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "advance PARCEL_ID|TRACKING_ID",
		Short: "Move a parcel one step along the delivery path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := signedInClient(cmd.Context(), v)
			if err != nil {
				return err
			}

			id, err := uuid.Parse(args[0])
			if err != nil {
				// not a store ID, so look it up as a tracking ID
				p, found, trackErr := c.TrackParcel(cmd.Context(), strings.ToUpper(args[0]))
				if trackErr != nil {
					return trackErr
				}
				if !found {
					return errors.New("argument is neither a parcel ID nor a known tracking ID")
				}
				id = p.Id
			}

			p, err := c.AdvanceParcel(cmd.Context(), id)
			if err != nil {
				return err
			}

			if v.GetBool(flagJSON) {
				return printJSON(cmd.OutOrStdout(), p)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", p.TrackingId, p.Status)
			return nil
		},
	}
}
