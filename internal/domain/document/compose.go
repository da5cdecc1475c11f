// Package document composes the contract and receipt texts for a booking and
// lays them out into fixed-size pages for the PDF writer.
//
// The legal boilerplate lives in versioned constant templates; interpolation
// is concentrated in buildView so the two document variants cannot drift apart
// in how they format the same values.
package document

import (
	"bytes"
	"regexp"
	"strings"
	"text/template"
	"time"

	"buffet_pizzas/internal/domain/entities"
	"buffet_pizzas/internal/domain/extenso"
	"buffet_pizzas/internal/domain/pricing"
)

// Fixed contractor party. These identify the business on every generated
// document.
const (
	ContractorName    = "Forno & Festa Buffet de Pizzas Ltda."
	ContractorCNPJ    = "23.456.789/0001-05"
	ContractorAddress = "Rua dos Fornos, 112, Vila Mariana, São Paulo/SP"
	ContractorCity    = "São Paulo"
)

// PageBreak is the explicit page-break marker embedded in composed text. The
// paginator starts a fresh page at every occurrence.
const PageBreak = "\f"

// Input carries everything a document interpolates. It is assembled by the
// caller from already-fetched values; composition itself performs no I/O.
type Input struct {
	Booking      entities.Booking
	Quote        pricing.Quote
	Items        []entities.AdditionalItem
	Installments []entities.Installment
	GeneratedAt  time.Time
}

// ComposeContract builds the full contract text. Deterministic: identical
// inputs produce byte-identical text apart from the generation-date stamp.
func ComposeContract(in Input) string {
	return execute(contratoTemplate, buildView(in))
}

// ComposeReceipt builds the deposit receipt text, including the amount written
// out por extenso and the short receipt identifier.
func ComposeReceipt(in Input) string {
	return execute(reciboTemplate, buildView(in))
}

// Compose selects the variant by kind.
func Compose(kind entities.DocumentKind, in Input) string {
	if kind == entities.DocumentKindRecibo {
		return ComposeReceipt(in)
	}
	return ComposeContract(in)
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// FileName derives the download filename: document prefix plus the client name
// with whitespace runs collapsed to underscores.
func FileName(kind entities.DocumentKind, clientName string) string {
	prefix := "contrato_"
	if kind == entities.DocumentKindRecibo {
		prefix = "recibo_"
	}
	name := whitespaceRun.ReplaceAllString(strings.TrimSpace(clientName), "_")
	return prefix + name + ".pdf"
}

// ReceiptID is the short identifier printed on receipts: the first eight
// characters of the booking id, upper-cased.
func ReceiptID(bookingID string) string {
	id := bookingID
	if len(id) > 8 {
		id = id[:8]
	}
	return strings.ToUpper(id)
}

type itemView struct {
	Label       string
	Description string
	UnitValue   string
	Quantity    int
	LineTotal   string
}

type installmentView struct {
	Seq     int
	Amount  string
	DueDate string
}

type view struct {
	ContractorName    string
	ContractorCNPJ    string
	ContractorAddress string
	City              string

	ClientName         string
	ClientCPF          string
	ResidentialAddress string
	EventAddress       string

	EventDate string
	StartTime string
	EndTime   string

	Adults   int
	Children int
	Guests   int
	Waiters  int

	Items []itemView

	Total          string
	Deposit        string
	DepositPercent int
	DepositWords   string
	Remaining      string

	Installments []installmentView

	ReceiptID   string
	GeneratedAt string
}

func buildView(in Input) view {
	b := in.Booking
	v := view{
		ContractorName:    ContractorName,
		ContractorCNPJ:    ContractorCNPJ,
		ContractorAddress: ContractorAddress,
		City:              ContractorCity,

		ClientName:         b.ClientName,
		ClientCPF:          b.ClientCPF,
		ResidentialAddress: b.ResidentialAddress,
		EventAddress:       b.EventAddress,

		EventDate: FormatISODateBR(b.EventDate),
		StartTime: FormatTimeHHMM(b.StartTime),
		EndTime:   EndTime(b.StartTime),

		Adults:   b.Adults,
		Children: b.Children,
		Guests:   b.Guests(),
		Waiters:  pricing.RequiredWaiters(b.Adults, b.Children),

		Total:          in.Quote.Total.Format(),
		Deposit:        in.Quote.DepositAmount.Format(),
		DepositPercent: in.Quote.DepositPercent,
		DepositWords:   extenso.AmountToWords(in.Quote.DepositAmount),
		Remaining:      in.Quote.Remaining.Format(),

		ReceiptID:   ReceiptID(b.ID),
		GeneratedAt: FormatGenerationDate(in.GeneratedAt),
	}

	for _, it := range in.Items {
		label := "Item"
		if it.IsDiscount() {
			label = "Desconto"
		}
		v.Items = append(v.Items, itemView{
			Label:       label,
			Description: it.Description,
			UnitValue:   it.UnitValue.Format(),
			Quantity:    it.Quantity,
			LineTotal:   it.LineTotal().Format(),
		})
	}

	for _, inst := range pricing.SortInstallments(in.Installments) {
		v.Installments = append(v.Installments, installmentView{
			Seq:     inst.Seq,
			Amount:  inst.Amount.Format(),
			DueDate: FormatISODateBR(inst.DueDate),
		})
	}

	return v
}

func execute(tpl *template.Template, v view) string {
	var buf bytes.Buffer
	// Templates are constants parsed at init; execution over a plain struct
	// cannot fail.
	_ = tpl.Execute(&buf, v)
	return buf.String()
}
