package payment

import (
	"net/mail"
	"strings"

	"github.com/alem-hub/gradebook/internal/domain/shared"
)

// PayPal pays from an online account. The account must be signed in first.
type PayPal struct {
	email      string
	credential Credential
	signedIn   bool
}

// NewPayPal validates the email. credential is usually a password.Hash.
func NewPayPal(email string, credential Credential) (*PayPal, error) {
	email = strings.TrimSpace(email)
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return nil, shared.ErrInvalidEmail
	}
	if credential == nil {
		return nil, shared.ErrNilCredential
	}
	return &PayPal{email: email, credential: credential}, nil
}

func (p *PayPal) Kind() Kind       { return KindPayPal }
func (p *PayPal) Email() string    { return p.email }
func (p *PayPal) IsSignedIn() bool { return p.signedIn }
func (p *PayPal) sealed()          {}

// SignIn unlocks payments. A wrong password leaves the account locked.
func (p *PayPal) SignIn(plain string) error {
	if !p.credential.Matches(plain) {
		p.signedIn = false
		return shared.ErrWrongPassword
	}
	p.signedIn = true
	return nil
}

// SignOut locks the account again.
func (p *PayPal) SignOut() { p.signedIn = false }

// Pay implements Method.
func (p *PayPal) Pay(amount float64) (Receipt, error) {
	if !validAmount(amount) {
		return Receipt{}, shared.ErrInvalidAmount
	}
	if !p.signedIn {
		return Receipt{}, shared.ErrNotSignedIn
	}
	return Receipt{Method: KindPayPal, Amount: amount, Account: p.email}, nil
}

var (
	_ Method = (*CreditCard)(nil)
	_ Method = (*PayPal)(nil)
)
