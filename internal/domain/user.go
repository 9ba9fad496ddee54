package domain

import "time"

// Payer is the donating user. Anonymous donors get a record with an unusable
// credential token so their donation history is preserved, but the account
// cannot independently log in.
type Payer struct {
	ID              string
	Email           string
	FirstName       string
	LastName        string
	CredentialToken string
	Registered      bool
	CreatedAt       time.Time
}

func (p *Payer) FullName() string {
	if p.FirstName == "" {
		return p.LastName
	}
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}
