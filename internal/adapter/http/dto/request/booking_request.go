package request

import (
	"strings"

	"buffet_pizzas/internal/domain/entities"
)

// QuoteRequest is the payload of the public quote form. Prices are never part
// of it; the quote is always computed server-side from the stored config.
type QuoteRequest struct {
	ClientName         string `json:"client_name" binding:"required"`
	ClientCPF          string `json:"client_cpf"`
	ResidentialAddress string `json:"residential_address"`
	EventAddress       string `json:"event_address"`
	EventDate          string `json:"event_date" binding:"required"`
	StartTime          string `json:"start_time"`
	Adults             int    `json:"adults"`
	Children           int    `json:"children"`
	Notes              string `json:"notes"`
}

func (r QuoteRequest) ToBooking() entities.Booking {
	return entities.Booking{
		ClientName:         strings.TrimSpace(r.ClientName),
		ClientCPF:          strings.TrimSpace(r.ClientCPF),
		ResidentialAddress: strings.TrimSpace(r.ResidentialAddress),
		EventAddress:       strings.TrimSpace(r.EventAddress),
		EventDate:          strings.TrimSpace(r.EventDate),
		StartTime:          strings.TrimSpace(r.StartTime),
		Adults:             r.Adults,
		Children:           r.Children,
		Notes:              strings.TrimSpace(r.Notes),
	}
}

// BookingUpdateRequest carries staff edits to an existing booking. Status and
// deposit override are managed through their dedicated endpoints and are not
// accepted here.
type BookingUpdateRequest struct {
	ClientName         string `json:"client_name" binding:"required"`
	ClientCPF          string `json:"client_cpf"`
	ResidentialAddress string `json:"residential_address"`
	EventAddress       string `json:"event_address"`
	EventDate          string `json:"event_date" binding:"required"`
	StartTime          string `json:"start_time"`
	Adults             int    `json:"adults"`
	Children           int    `json:"children"`
	Notes              string `json:"notes"`
}

func (r BookingUpdateRequest) ToBooking(id string) entities.Booking {
	return entities.Booking{
		ID:                 strings.TrimSpace(id),
		ClientName:         strings.TrimSpace(r.ClientName),
		ClientCPF:          strings.TrimSpace(r.ClientCPF),
		ResidentialAddress: strings.TrimSpace(r.ResidentialAddress),
		EventAddress:       strings.TrimSpace(r.EventAddress),
		EventDate:          strings.TrimSpace(r.EventDate),
		StartTime:          strings.TrimSpace(r.StartTime),
		Adults:             r.Adults,
		Children:           r.Children,
		Notes:              strings.TrimSpace(r.Notes),
	}
}

// DepositOverrideRequest carries the manually typed deposit. The value stays a
// raw string until the usecase parses it, so malformed input can be rejected
// without any partial write.
type DepositOverrideRequest struct {
	Value string `json:"value"`
}
