package domain

import "time"

// QuoteStatusNew is forced onto every quote at creation, regardless of what
// the submitter sent.
const QuoteStatusNew = "new"

// Quote is a customer-submitted request for a shipping price estimate.
// It has no event ledger; status is a plain mutable label.
type Quote struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	Service     string    `json:"service"`
	Weight      string    `json:"weight"`
	Details     string    `json:"details"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}
