package response

import (
	"time"

	"buffet_pizzas/internal/domain/entities"
)

type DepositPaymentResponse struct {
	ID        string    `json:"id"`
	BookingID string    `json:"booking_id"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromDepositPayment(p entities.DepositPayment) DepositPaymentResponse {
	return DepositPaymentResponse{
		ID:                 p.ID,
		BookingID:          p.BookingID,
		Date:               p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}

func FromDepositPayments(ps []entities.DepositPayment) []DepositPaymentResponse {
	out := make([]DepositPaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromDepositPayment(p))
	}
	return out
}
