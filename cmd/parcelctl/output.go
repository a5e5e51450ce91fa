package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"parcelhub/internal/generated/servers"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printParcels(w io.Writer, parcels []servers.Parcel) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TRACKING ID\tSTATUS\tCUSTOMER\tPINCODE\tSIZE\tFEE\tDRIVER")
	for _, p := range parcels {
		driver := "-"
		if p.AssignedDriverId != nil {
			driver = *p.AssignedDriverId
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%.2f\t%s\n",
			p.TrackingId, p.Status, p.CustomerName, p.Pincode, p.ParcelSize, p.DeliveryFee, driver)
	}
	return tw.Flush()
}

func printParcel(w io.Writer, p servers.Parcel) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Tracking ID:\t%s\n", p.TrackingId)
	fmt.Fprintf(tw, "Status:\t%s\n", p.Status)
	fmt.Fprintf(tw, "Customer:\t%s (%s)\n", p.CustomerName, p.CustomerPhone)
	fmt.Fprintf(tw, "From:\t%s\n", p.PickupAddress)
	fmt.Fprintf(tw, "To:\t%s %s\n", p.DeliveryAddress, p.Pincode)
	fmt.Fprintf(tw, "Size / weight:\t%s / %.2f kg\n", p.ParcelSize, p.Weight)
	fmt.Fprintf(tw, "Fee:\t%.2f\n", p.DeliveryFee)
	return tw.Flush()
}

func printStats(w io.Writer, s servers.ParcelStats) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Total:\t%d\n", s.Total)
	fmt.Fprintf(tw, "Pending:\t%d\n", s.Pending)
	fmt.Fprintf(tw, "In transit:\t%d\n", s.InTransit)
	fmt.Fprintf(tw, "Delivered:\t%d\n", s.Delivered)
	fmt.Fprintf(tw, "Cancelled:\t%d\n", s.Cancelled)
	fmt.Fprintf(tw, "Revenue:\t%.2f\n", s.Revenue)
	return tw.Flush()
}
