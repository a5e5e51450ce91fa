package queries

import (
	"context"

	"parcelhub/internal/core/domain/services"
	"parcelhub/internal/core/ports"
)

type GetDriverReportQueryHandler struct {
	reader   ParcelReader
	reporter services.DriverReporter
}

func NewGetDriverReportQueryHandler(reader ParcelReader) GetDriverReportQueryHandler {
	return GetDriverReportQueryHandler{reader: reader, reporter: services.NewDriverReporter()}
}

func (h GetDriverReportQueryHandler) Handle(ctx context.Context, query GetDriverReportQuery) (services.DriverReport, error) {
	if err := query.Validate(); err != nil {
		return services.DriverReport{}, err
	}

	parcels, err := h.reader.List(ctx, ports.ParcelFilter{DriverID: query.DriverID()})
	if err != nil {
		return services.DriverReport{}, err
	}

	return h.reporter.Report(query.DriverID(), parcels), nil
}
