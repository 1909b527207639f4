package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrDataUnavailable indicates a collaborator read failed and the data
	// needed for a decision is missing. Callers must fail closed.
	ErrDataUnavailable = errors.New("data unavailable")
)

// CouponReason discriminates why a coupon was rejected.
type CouponReason string

const (
	CouponNotFound     CouponReason = "not_found"
	CouponNotYetValid  CouponReason = "not_yet_valid"
	CouponExpired      CouponReason = "expired"
	CouponExhausted    CouponReason = "exhausted"
	CouponBelowMinimum CouponReason = "below_minimum"
	CouponOutOfScope   CouponReason = "out_of_scope"
)

// CouponError is a coupon rejection with a user-facing message. It never
// alters cart state.
type CouponError struct {
	Reason  CouponReason
	Message string
}

func (e *CouponError) Error() string {
	return e.Message
}

// AsCouponError unwraps err into a CouponError if it is one.
func AsCouponError(err error) (*CouponError, bool) {
	var ce *CouponError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
