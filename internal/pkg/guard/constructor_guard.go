package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller supplies no error of its own.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in values whose zero value is not usable.
//
//	type GetParcelByTrackingIDQuery struct {
//	    trackingID parcel.TrackingID
//	    guard      guard.ConstructorGuard
//	}
//
//	func (q GetParcelByTrackingIDQuery) Validate() error {
//	    return q.guard.Validate(ErrGetParcelByTrackingIDQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError, or ErrDefaultConstructorGuard when it is nil,
// if the guard was not created by NewConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
