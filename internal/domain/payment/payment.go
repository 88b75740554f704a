// Package payment models the ways a customer can pay. Every method takes an
// amount and returns a Receipt; callers treat them all through Method.
package payment

import (
	"math"
)

// Kind tells the methods apart. The value reads naturally in a sentence.
type Kind string

const (
	KindCreditCard Kind = "credit card"
	KindPayPal     Kind = "PayPal"
)

// Method is implemented only by the methods of this package.
type Method interface {
	Kind() Kind
	// Pay charges amount. amount must be positive and finite.
	Pay(amount float64) (Receipt, error)

	sealed()
}

// Receipt is the outcome of a successful Pay.
type Receipt struct {
	Method  Kind
	Amount  float64
	// Account names the payer without exposing secrets:
	// a masked card number or an email.
	Account string
}

// Credential checks a secret without revealing it. password.Hash
// satisfies it.
type Credential interface {
	Matches(plain string) bool
}

func validAmount(amount float64) bool {
	return amount > 0 && !math.IsInf(amount, 1)
}
