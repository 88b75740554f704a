package presenter

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/alem-hub/gradebook/internal/domain/payment"
	"github.com/alem-hub/gradebook/internal/domain/shared"
	"github.com/alem-hub/gradebook/internal/domain/vehicle"
)

// ══════════════════════════════════════════════════════════════════════════════
// SHOWCASE PRESENTER
// Lines for the fleet, media and payment demo.
// ══════════════════════════════════════════════════════════════════════════════

// Section returns a demo heading.
func Section(title string) string {
	return "=== " + title + " ==="
}

// Vehicle lists a vehicle's description followed by how it moves.
func Vehicle(v vehicle.Vehicle) []string {
	return append(v.Describe(), v.Move())
}

// FormatMoney prints an amount with two decimals.
func FormatMoney(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}

// Payment confirms a charge: "Paying 250.00 with credit card (**** 3456)".
func Payment(r payment.Receipt) string {
	return fmt.Sprintf("Paying %s with %s (%s)", FormatMoney(r.Amount), r.Method, r.Account)
}

// PaymentError explains why a charge did not happen.
func PaymentError(kind payment.Kind, amount float64, err error) string {
	switch {
	case errors.Is(err, shared.ErrInvalidAmount):
		return fmt.Sprintf("Cannot pay %s with %s: the amount must be positive.", FormatMoney(amount), kind)
	case errors.Is(err, shared.ErrNotSignedIn):
		return fmt.Sprintf("Cannot pay with %s: sign in first.", kind)
	case errors.Is(err, shared.ErrCardExpired):
		return fmt.Sprintf("Cannot pay with %s: the card has expired.", kind)
	default:
		return fmt.Sprintf("Cannot pay with %s: %v", kind, err)
	}
}
