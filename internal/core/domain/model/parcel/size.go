package parcel

import (
	"fmt"

	"parcelhub/internal/pkg/errs"
)

// Size is the physical size category of a parcel.
type Size int

const (
	SizeUnknown Size = iota
	SizeSmall
	SizeMedium
	SizeLarge
	SizeExtraLarge
)

func getSizeStrings() map[Size]string {
	return map[Size]string{
		SizeUnknown:    "unknown",
		SizeSmall:      "small",
		SizeMedium:     "medium",
		SizeLarge:      "large",
		SizeExtraLarge: "extra_large",
	}
}

// ParseSize converts the wire form into a Size. Unrecognised input yields SizeUnknown
// together with an error; the fee calculator still accepts SizeUnknown.
func ParseSize(s string) (Size, error) {
	for size, str := range getSizeStrings() {
		if str == s && size != SizeUnknown {
			return size, nil
		}
	}
	return SizeUnknown, errs.NewValueIsInvalidErrorWithCause("parcelSize", fmt.Errorf("%q is not a valid size", s))
}

func (s Size) String() string {
	if str, ok := getSizeStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate accepts only the four enumerated categories.
func (s Size) Validate() error {
	if s < SizeSmall || s > SizeExtraLarge {
		return errs.NewValueIsInvalidErrorWithCause("parcelSize", fmt.Errorf("%d is not a valid size", s))
	}
	return nil
}
