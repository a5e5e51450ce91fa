package services

import (
	"parcelhub/internal/core/domain/model/parcel"
)

// PincodeGroup is one stop on a driver's route: every parcel bound for the same pincode.
type PincodeGroup struct {
	Pincode string
	Parcels []*parcel.Parcel
}

// RoutePlanner partitions parcels by delivery pincode. It does no route optimisation.
type RoutePlanner struct{}

func NewRoutePlanner() RoutePlanner {
	return RoutePlanner{}
}

// GroupByPincode returns groups in order of each pincode's first appearance.
// Within a group parcels keep their input order, so [A, B, A] yields
// A: {1st, 3rd} followed by B: {2nd}.
func (RoutePlanner) GroupByPincode(parcels []*parcel.Parcel) []PincodeGroup {
	groups := make([]PincodeGroup, 0)
	index := make(map[string]int)

	for _, p := range parcels {
		if p == nil {
			continue
		}
		i, ok := index[p.Pincode()]
		if !ok {
			i = len(groups)
			index[p.Pincode()] = i
			groups = append(groups, PincodeGroup{Pincode: p.Pincode()})
		}
		groups[i].Parcels = append(groups[i].Parcels, p)
	}

	return groups
}
