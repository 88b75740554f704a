package payment

import (
	"strings"
	"time"

	"github.com/alem-hub/gradebook/internal/domain/shared"
)

// CreditCard pays from a card. The CVV is checked for shape when the card is
// created and is not retained.
type CreditCard struct {
	holder  string
	number  string
	expires time.Time // first instant after the last valid month
	now     func() time.Time
}

// CardOption configures a CreditCard.
type CardOption func(*CreditCard)

// WithClock replaces time.Now for expiry checks.
func WithClock(now func() time.Time) CardOption {
	return func(c *CreditCard) { c.now = now }
}

// NewCreditCard validates the card. number may contain spaces or dashes;
// expiry is "MM/YY" or "MM/YYYY".
func NewCreditCard(holder, number, expiry, cvv string, opts ...CardOption) (*CreditCard, error) {
	holder = strings.TrimSpace(holder)
	if holder == "" {
		return nil, shared.ErrEmptyCardholder
	}

	digits := strings.NewReplacer(" ", "", "-", "").Replace(number)
	if len(digits) < 12 || len(digits) > 19 || !allDigits(digits) {
		return nil, shared.ErrInvalidCardNumber
	}

	cvv = strings.TrimSpace(cvv)
	if (len(cvv) != 3 && len(cvv) != 4) || !allDigits(cvv) {
		return nil, shared.ErrInvalidCVV
	}

	expires, err := parseExpiry(expiry)
	if err != nil {
		return nil, err
	}

	c := &CreditCard{holder: holder, number: digits, expires: expires, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func parseExpiry(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"01/06", "01/2006"} {
		if month, err := time.Parse(layout, s); err == nil {
			return month.AddDate(0, 1, 0), nil
		}
	}
	return time.Time{}, shared.ErrInvalidExpiry
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (c *CreditCard) Kind() Kind     { return KindCreditCard }
func (c *CreditCard) Holder() string { return c.holder }
func (c *CreditCard) sealed()        {}

// Masked returns the number with all but the last four digits hidden.
func (c *CreditCard) Masked() string {
	return "**** " + c.number[len(c.number)-4:]
}

// IsExpired reports whether the card's last valid month is over at t.
func (c *CreditCard) IsExpired(t time.Time) bool {
	return !t.Before(c.expires)
}

// Pay implements Method.
func (c *CreditCard) Pay(amount float64) (Receipt, error) {
	if !validAmount(amount) {
		return Receipt{}, shared.ErrInvalidAmount
	}
	if c.IsExpired(c.now()) {
		return Receipt{}, shared.ErrCardExpired
	}
	return Receipt{Method: KindCreditCard, Amount: amount, Account: c.Masked()}, nil
}
