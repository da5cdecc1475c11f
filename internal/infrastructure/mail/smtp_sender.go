package mail

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"

	"buffet_pizzas/internal/domain/document"
	"buffet_pizzas/internal/domain/entities"
	"buffet_pizzas/internal/usecase/interfaces"
)

// SMTPSender notifies staff when a new quote arrives from the public form.
//
// Config comes from env vars (SMTP_HOST, SMTP_PORT, SMTP_USERNAME,
// SMTP_PASSWORD, QUOTE_ALERT_TO). With incomplete config the alert is logged
// instead of sent, which keeps local runs working without a relay.

type SMTPSender struct{}

var _ interfaces.IMailSender = (*SMTPSender)(nil)

func NewSMTPSender() *SMTPSender {
	return &SMTPSender{}
}

// safeHeader keeps operator-supplied values from smuggling extra headers into
// the message.
func safeHeader(v string) string {
	return strings.ReplaceAll(strings.TrimSpace(v), "\r\n", " ")
}

func quoteAlertSubject(b entities.Booking) string {
	return fmt.Sprintf("Novo orçamento: %s - %s", safeHeader(b.ClientName), document.FormatISODateBR(b.EventDate))
}

func quoteAlertBody(b entities.Booking) string {
	return fmt.Sprintf(
		"Novo pedido de orçamento recebido pelo site.\n\n"+
			"Cliente: %s\n"+
			"Data do evento: %s\n"+
			"Horário: %s\n"+
			"Endereço do evento: %s\n"+
			"Convidados: %d adulto(s) e %d criança(s)\n\n"+
			"Observações: %s\n",
		safeHeader(b.ClientName),
		document.FormatISODateBR(b.EventDate),
		safeHeader(b.StartTime),
		safeHeader(b.EventAddress),
		b.Adults, b.Children,
		safeHeader(b.Notes),
	)
}

func (s *SMTPSender) SendNewQuoteAlert(b entities.Booking) error {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USERNAME")
	smtpPass := os.Getenv("SMTP_PASSWORD")
	recipient := os.Getenv("QUOTE_ALERT_TO")

	if smtpUser == "" || smtpPass == "" || smtpHost == "" || smtpPort == "" || recipient == "" {
		log.Printf("[MOCK EMAIL] new quote booking_id=%s client=%s date=%s guests=%d", b.ID, b.ClientName, b.EventDate, b.Guests())
		return nil
	}

	subject := quoteAlertSubject(b)
	body := quoteAlertBody(b)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", smtpUser))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", recipient))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(body)

	auth := smtp.PlainAuth("", smtpUser, smtpPass, smtpHost)
	addr := fmt.Sprintf("%s:%s", smtpHost, smtpPort)

	if err := smtp.SendMail(addr, auth, smtpUser, []string{recipient}, []byte(sb.String())); err != nil {
		log.Printf("[mail] quote alert send failed booking_id=%s err=%v", b.ID, err)
		return err
	}
	log.Printf("[mail] quote alert sent booking_id=%s to=%s", b.ID, recipient)
	return nil
}
