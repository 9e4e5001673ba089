package domain

import (
	"errors"
	"time"
)

// Default status labels. Status is a free-form label, not an enum: the
// operator may write any value through patch or event append. These are only
// the defaults applied when the caller supplies none.
const (
	StatusCreated   = "Created"
	StatusInTransit = "In Transit"
)

var ErrShipmentNotFound = errors.New("shipment not found")
var ErrQuoteNotFound = errors.New("quote not found")
var ErrMissingFields = errors.New("missing fields")
var ErrRegistrationClosed = errors.New("registration closed")
var ErrInvalidCredentials = errors.New("invalid credentials")

// Event is a timestamped status checkpoint embedded in a shipment's ledger.
// Its ID is unique within the parent ledger and never reused.
type Event struct {
	ID       string    `json:"id"`
	Time     time.Time `json:"time"`
	Status   string    `json:"status"`
	Location string    `json:"location"`
	Note     string    `json:"note"`
}

// Shipment is the core aggregate: a tracked freight movement with an
// append-ordered event ledger.
//
// Events holds the ledger newest first. It is never empty after creation:
// a synthetic Created event seeds it when the caller supplies none.
type Shipment struct {
	ID             string    `json:"id"`
	TrackingNumber string    `json:"trackingNumber"`
	Customer       string    `json:"customer"`
	Email          string    `json:"email"`
	Origin         string    `json:"origin"`
	Destination    string    `json:"destination"`
	Service        string    `json:"service"`
	Weight         string    `json:"weight"`
	Status         string    `json:"status"`
	Events         []Event   `json:"events"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
