package payment

import (
	"fmt"

	"foodtruck/internal/pkg/errs"
)

// Method represents how a payment was taken.
type Method int

const (
	// MethodUnknown represents an invalid or undefined method.
	MethodUnknown Method = iota

	// Cash payments may carry a tendered amount and compute change.
	Cash

	// Card payments never compute change.
	Card
)

func getMethodStrings() map[Method]string {
	return map[Method]string{
		MethodUnknown: "unknown",
		Cash:          "cash",
		Card:          "card",
	}
}

// MethodFromString parses a wire-format method string ("cash" or "card").
func MethodFromString(s string) (Method, error) {
	for method, str := range getMethodStrings() {
		if str == s && method != MethodUnknown {
			return method, nil
		}
	}
	return MethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"method",
		fmt.Errorf("%q is not a valid payment method", s),
	)
}

// Validate checks if the Method value is valid.
func (m Method) Validate() error {
	if m != Cash && m != Card {
		return errs.NewValueIsInvalidErrorWithCause(
			"method",
			fmt.Errorf("%d is not a valid payment method", m),
		)
	}
	return nil
}

// String returns the wire-format name of the method.
// Implements fmt.Stringer and is safe on any Method value.
func (m Method) String() string {
	if str, ok := getMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}
