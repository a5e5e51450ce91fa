package services

import (
	"parcelhub/internal/core/domain/model/parcel"
)

// DriverReport is the delivery tally shown on a driver's dashboard.
// Failed counts cancelled parcels; everything not yet delivered or cancelled is Pending.
type DriverReport struct {
	DriverID  string
	Delivered int
	Pending   int
	Failed    int
}

type DriverReporter struct{}

func NewDriverReporter() DriverReporter {
	return DriverReporter{}
}

// Report tallies the parcels assigned to driverID and ignores the rest.
func (DriverReporter) Report(driverID string, parcels []*parcel.Parcel) DriverReport {
	report := DriverReport{DriverID: driverID}

	for _, p := range parcels {
		if p == nil || p.AssignedDriverID() != driverID {
			continue
		}
		switch p.Status() {
		case parcel.StatusDelivered:
			report.Delivered++
		case parcel.StatusCancelled:
			report.Failed++
		default:
			report.Pending++
		}
	}

	return report
}
