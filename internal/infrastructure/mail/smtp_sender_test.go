package mail

import (
	"strings"
	"testing"

	"buffet_pizzas/internal/domain/entities"
)

func TestQuoteAlertMessage(t *testing.T) {
	b := entities.Booking{
		ID:           "book-1",
		ClientName:   "  Maria da Silva  ",
		EventDate:    "2026-10-03",
		StartTime:    "19:00",
		EventAddress: "Rua das Flores, 100",
		Adults:       40,
		Children:     10,
		Notes:        "Sem cebola",
	}

	t.Run("Subject", func(t *testing.T) {
		got := quoteAlertSubject(b)
		want := "Novo orçamento: Maria da Silva - 03/10/2026"
		if got != want {
			t.Fatalf("expected subject %q, got %q", want, got)
		}
	})

	t.Run("SubjectStripsCRLF", func(t *testing.T) {
		crafted := b
		crafted.ClientName = "Maria\r\nBcc: spam@example.com"
		got := quoteAlertSubject(crafted)
		if strings.Contains(got, "\r\n") {
			t.Fatalf("subject must not carry CRLF: %q", got)
		}
	})

	t.Run("Body", func(t *testing.T) {
		got := quoteAlertBody(b)
		for _, want := range []string{
			"Cliente: Maria da Silva",
			"Data do evento: 03/10/2026",
			"Horário: 19:00",
			"Convidados: 40 adulto(s) e 10 criança(s)",
			"Observações: Sem cebola",
		} {
			if !strings.Contains(got, want) {
				t.Fatalf("expected body to contain %q, got:\n%s", want, got)
			}
		}
	})
}
