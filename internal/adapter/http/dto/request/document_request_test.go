package request

import (
	"testing"

	"buffet_pizzas/internal/domain/money"
)

func TestDocumentRequest_ToItems(t *testing.T) {
	r := DocumentRequest{
		Items: []DocumentItemRequest{
			{Description: " Mesa de doces ", UnitValue: 300, Quantity: 1},
			{Description: "Desconto fidelidade", UnitValue: -50, Quantity: 0},
		},
	}

	items := r.ToItems()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Description != "Mesa de doces" {
		t.Fatalf("expected trimmed description, got %q", items[0].Description)
	}
	if items[0].UnitValue != money.Centavos(30000) {
		t.Fatalf("expected 30000 centavos, got %d", items[0].UnitValue)
	}
	if items[1].Quantity != 1 {
		t.Fatalf("expected zero quantity to default to 1, got %d", items[1].Quantity)
	}
	if !items[1].IsDiscount() {
		t.Fatalf("expected negative line to be a discount")
	}

	if got := (DocumentRequest{}).ToItems(); got != nil {
		t.Fatalf("expected nil for empty items, got %v", got)
	}
}

func TestDocumentRequest_ToInstallments(t *testing.T) {
	r := DocumentRequest{
		Installments: []DocumentInstallmentRequest{
			{Seq: 2, Amount: 741, DueDate: "2026-09-20"},
			{Seq: 1, Amount: 741.01, DueDate: "2026-09-05"},
		},
	}

	installments := r.ToInstallments()
	if len(installments) != 2 {
		t.Fatalf("expected 2 installments, got %d", len(installments))
	}
	// order is preserved here; sorting happens in the pricing domain
	if installments[0].Seq != 2 {
		t.Fatalf("expected caller order preserved, got seq %d first", installments[0].Seq)
	}
	if installments[1].Amount != money.Centavos(74101) {
		t.Fatalf("expected rounded centavos, got %d", installments[1].Amount)
	}
}
