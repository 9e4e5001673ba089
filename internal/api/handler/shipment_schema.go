package handler

import (
	"time"

	"github.com/swiftcargo/tracking-api/internal/core/ports"
)

// okResponse acknowledges a delete.
type okResponse struct {
	OK bool `json:"ok"`
}

// --- Request types ---
//
// Shipment fields are free-form operator text; nothing is required on write.
// Responses serialize the domain records directly, so no response mirror
// types are needed here.

type eventRequest struct {
	ID       string    `json:"id"`
	Time     time.Time `json:"time"`
	Status   string    `json:"status"`
	Location string    `json:"location"`
	Note     string    `json:"note"`
}

type createShipmentRequest struct {
	Customer    string         `json:"customer"`
	Email       string         `json:"email"`
	Origin      string         `json:"origin"`
	Destination string         `json:"destination"`
	Service     string         `json:"service"`
	Weight      string         `json:"weight"`
	Status      string         `json:"status"`
	Events      []eventRequest `json:"events"`
}

// patchShipmentRequest distinguishes "absent" from "set to empty" with
// pointers; only non-nil fields are merged. A non-nil Events replaces the
// ledger wholesale.
type patchShipmentRequest struct {
	Customer    *string         `json:"customer"`
	Email       *string         `json:"email"`
	Origin      *string         `json:"origin"`
	Destination *string         `json:"destination"`
	Service     *string         `json:"service"`
	Weight      *string         `json:"weight"`
	Status      *string         `json:"status"`
	Events      *[]eventRequest `json:"events"`
}

type appendEventRequest struct {
	Time     time.Time `json:"time"`
	Status   string    `json:"status"`
	Location string    `json:"location"`
	Note     string    `json:"note"`
}

// --- Request → service input mapping ---

func toCreateShipmentInput(req createShipmentRequest) ports.CreateShipmentInput {
	return ports.CreateShipmentInput{
		Customer:    req.Customer,
		Email:       req.Email,
		Origin:      req.Origin,
		Destination: req.Destination,
		Service:     req.Service,
		Weight:      req.Weight,
		Status:      req.Status,
		Events:      toEventInputs(req.Events),
	}
}

func toShipmentPatch(req patchShipmentRequest) ports.ShipmentPatch {
	patch := ports.ShipmentPatch{
		Customer:    req.Customer,
		Email:       req.Email,
		Origin:      req.Origin,
		Destination: req.Destination,
		Service:     req.Service,
		Weight:      req.Weight,
		Status:      req.Status,
	}
	if req.Events != nil {
		events := toEventInputs(*req.Events)
		patch.Events = &events
	}
	return patch
}

func toAppendEventInput(req appendEventRequest) ports.AppendEventInput {
	return ports.AppendEventInput{
		Time:     req.Time,
		Status:   req.Status,
		Location: req.Location,
		Note:     req.Note,
	}
}

func toEventInputs(reqs []eventRequest) []ports.EventInput {
	if reqs == nil {
		return nil
	}
	out := make([]ports.EventInput, len(reqs))
	for i, r := range reqs {
		out[i] = ports.EventInput{
			ID:       r.ID,
			Time:     r.Time,
			Status:   r.Status,
			Location: r.Location,
			Note:     r.Note,
		}
	}
	return out
}
