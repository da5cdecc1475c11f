package response

import (
	"time"

	"buffet_pizzas/internal/domain/entities"
	"buffet_pizzas/internal/domain/pricing"
)

type BookingResponse struct {
	ID                 string    `json:"id"`
	ClientName         string    `json:"client_name"`
	ClientCPF          string    `json:"client_cpf"`
	ResidentialAddress string    `json:"residential_address"`
	EventAddress       string    `json:"event_address"`
	EventDate          string    `json:"event_date"`
	StartTime          string    `json:"start_time"`
	Adults             int       `json:"adults"`
	Children           int       `json:"children"`
	Guests             int       `json:"guests"`
	Notes              string    `json:"notes,omitempty"`
	Status             string    `json:"status"`
	DepositOverride    string    `json:"deposit_override,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	Quote *QuoteSummary `json:"quote,omitempty"`
}

// QuoteSummary is the money breakdown attached to booking reads. Values are
// pre-formatted strings in the Brazilian convention (comma decimal).
type QuoteSummary struct {
	Total          string `json:"total"`
	DepositAmount  string `json:"deposit_amount"`
	DepositPercent int    `json:"deposit_percent"`
	Remaining      string `json:"remaining"`
	Overridden     bool   `json:"overridden"`
}

func FromBooking(b entities.Booking) BookingResponse {
	resp := BookingResponse{
		ID:                 b.ID,
		ClientName:         b.ClientName,
		ClientCPF:          b.ClientCPF,
		ResidentialAddress: b.ResidentialAddress,
		EventAddress:       b.EventAddress,
		EventDate:          b.EventDate,
		StartTime:          b.StartTime,
		Adults:             b.Adults,
		Children:           b.Children,
		Guests:             b.Guests(),
		Notes:              b.Notes,
		Status:             string(b.Status),
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
	if b.DepositOverride > 0 {
		resp.DepositOverride = b.DepositOverride.Format()
	}
	return resp
}

// FromBookingWithQuote attaches the computed quote to the booking payload.
func FromBookingWithQuote(b entities.Booking, q pricing.Quote) BookingResponse {
	resp := FromBooking(b)
	resp.Quote = &QuoteSummary{
		Total:          q.Total.Format(),
		DepositAmount:  q.DepositAmount.Format(),
		DepositPercent: q.DepositPercent,
		Remaining:      q.Remaining.Format(),
		Overridden:     q.DepositOverride,
	}
	return resp
}

func FromBookings(bs []entities.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bs))
	for _, b := range bs {
		out = append(out, FromBooking(b))
	}
	return out
}
