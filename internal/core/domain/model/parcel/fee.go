package parcel

import (
	"math"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"
)

const (
	// SurchargeFreeWeightKg is the weight up to which only the base fee applies.
	SurchargeFreeWeightKg = 10.0
	// SurchargePerKg is charged for every kilogram above SurchargeFreeWeightKg.
	SurchargePerKg = 0.5
	// MaxWeightKg is the heaviest parcel accepted for delivery.
	MaxWeightKg = 1000.0
)

// BaseFee returns the size-dependent part of the delivery fee.
// Unrecognised sizes are charged as medium.
func BaseFee(size Size) float64 {
	switch size {
	case SizeSmall:
		return 5.00
	case SizeMedium:
		return 8.00
	case SizeLarge:
		return 12.00
	case SizeExtraLarge:
		return 18.00
	default:
		return 8.00
	}
}

// ComputeFee returns BaseFee(size) plus SurchargePerKg for each kilogram above
// SurchargeFreeWeightKg, rounded half-up to cents. A weight that is not finite or is
// above MaxWeightKg fails with a ValueIsOutOfRangeError on "weight".
//
//	ComputeFee(SizeSmall, 1)  // 5.00
//	ComputeFee(SizeLarge, 12) // 13.00
func ComputeFee(size Size, weightKg float64) (kernel.Money, error) {
	if math.IsNaN(weightKg) || math.IsInf(weightKg, 0) || weightKg > MaxWeightKg {
		return kernel.Money{}, errs.NewValueIsOutOfRangeError("weight", weightKg, 0, MaxWeightKg)
	}

	fee := BaseFee(size)
	if weightKg > SurchargeFreeWeightKg {
		fee += (weightKg - SurchargeFreeWeightKg) * SurchargePerKg
	}
	return kernel.NewMoneyFromFloat(fee)
}
