package interfaces

import "buffet_pizzas/internal/domain/entities"

// IMailSender abstracts the outbound notification channel. A new quote from
// the public form triggers a staff alert; delivery is best effort and never
// blocks the booking flow.
type IMailSender interface {
	SendNewQuoteAlert(b entities.Booking) error
}
