package queries

import (
	"errors"
	"strings"

	"parcelhub/internal/pkg/errs"
	"parcelhub/internal/pkg/guard"
)

var ErrGetDriverReportQueryIsNotConstructed = errors.New(
	"GetDriverReportQuery must be created via NewGetDriverReportQuery constructor",
)

type GetDriverReportQuery struct {
	driverID string

	guard guard.ConstructorGuard
}

func NewGetDriverReportQuery(driverID string) (GetDriverReportQuery, error) {
	driverID = strings.TrimSpace(driverID)
	if driverID == "" {
		return GetDriverReportQuery{}, errs.NewValueIsRequiredError("driverId")
	}
	return GetDriverReportQuery{driverID: driverID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDriverReportQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverReportQueryIsNotConstructed)
}

func (q GetDriverReportQuery) DriverID() string {
	return q.driverID
}
