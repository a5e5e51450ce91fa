package commands

import (
	"errors"
	"strconv"
	"strings"

	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/pkg/errs"
	"parcelhub/internal/pkg/guard"
)

var ErrCreateDeliveryOrderCommandIsNotConstructed = errors.New(
	"CreateDeliveryOrderCommand must be created via NewCreateDeliveryOrderCommand constructor",
)

// CreateDeliveryOrderCommand registers a vendor batch together with its parcels.
type CreateDeliveryOrderCommand struct { //nolint:recvcheck //using for validation
	vendorID   string
	vendorName string
	fileURL    string
	parcels    []parcel.Details

	guard guard.ConstructorGuard
}

// NewCreateDeliveryOrderCommand checks the vendor fields and every parcel. Parcel field
// names in the resulting errs.ValidationError are prefixed with their index, e.g.
// "parcels[1].weight".
func NewCreateDeliveryOrderCommand(
	vendorID, vendorName, fileURL string,
	parcels []parcel.Details,
) (CreateDeliveryOrderCommand, error) {
	vendorID = strings.TrimSpace(vendorID)
	vendorName = strings.TrimSpace(vendorName)

	var problems []error
	if vendorID == "" {
		problems = append(problems, errs.NewValueIsRequiredError("vendorId"))
	}
	if vendorName == "" {
		problems = append(problems, errs.NewValueIsRequiredError("vendorName"))
	}
	if len(parcels) == 0 {
		problems = append(problems, errs.NewValueIsRequiredError("parcels"))
	}
	for i, details := range parcels {
		var verr *errs.ValidationError
		if err := parcel.ValidateDetails(details); errors.As(err, &verr) {
			for _, field := range verr.Fields() {
				problems = append(problems, errs.NewValueIsInvalidError(indexedField(i, field)))
			}
		}
	}
	if err := errs.NewValidationError("deliveryOrder", errors.Join(problems...)); err != nil {
		return CreateDeliveryOrderCommand{}, err
	}

	batch := append([]parcel.Details(nil), parcels...)
	for i := range batch {
		batch[i].VendorID = vendorID
	}

	return CreateDeliveryOrderCommand{
		vendorID:   vendorID,
		vendorName: vendorName,
		fileURL:    strings.TrimSpace(fileURL),
		parcels:    batch,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreateDeliveryOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryOrderCommandIsNotConstructed)
}

func (c CreateDeliveryOrderCommand) VendorID() string { return c.vendorID }
func (c CreateDeliveryOrderCommand) VendorName() string { return c.vendorName }
func (c CreateDeliveryOrderCommand) FileURL() string { return c.fileURL }

func (c CreateDeliveryOrderCommand) Parcels() []parcel.Details {
	return append([]parcel.Details(nil), c.parcels...)
}

func indexedField(i int, field string) string {
	return "parcels[" + strconv.Itoa(i) + "]." + field
}
