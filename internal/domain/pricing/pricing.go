// Package pricing implements the quote computation: guest counts and itemized
// add-ons/discounts priced against the configured unit values, plus the
// deposit (entrada) rule with manual override.
package pricing

import (
	"sort"

	"buffet_pizzas/internal/domain/entities"
	"buffet_pizzas/internal/domain/money"
)

// ComputeTotal prices an event:
//
//	total = adults*adultPrice + children*childPrice + sum(item.value*item.qty)
//
// Pure and linear over its inputs. Zero guests with no items yields zero; the
// function never errors.
func ComputeTotal(adults, children int, items []entities.AdditionalItem, cfg entities.PricingConfig) money.Centavos {
	total := money.Centavos(adults)*cfg.AdultPrice + money.Centavos(children)*cfg.ChildPrice
	for _, it := range items {
		total += it.LineTotal()
	}
	return total
}

// Quote is the derived financial breakdown carried into the documents.
//
// DepositPercent is always consistent with DepositAmount: under the percentage
// rule it is the configured percent, under a manual override it is recomputed
// backward from the override so documents never show a percent that
// contradicts the amount next to it.

type Quote struct {
	Total           money.Centavos
	DepositAmount   money.Centavos
	DepositPercent  int
	Remaining       money.Centavos
	DepositOverride bool
}

// ComputeQuote derives the deposit and remaining balance for a total. A manual
// override > 0 takes precedence over the configured percentage; the displayed
// percent is then round(override/total*100), degrading to 0 when the total is
// zero. Remaining = total - deposit holds exactly in centavos.
func ComputeQuote(total money.Centavos, cfg entities.PricingConfig, override money.Centavos) Quote {
	q := Quote{Total: total}
	if override > 0 {
		q.DepositAmount = override
		q.DepositPercent = override.PercentOf(total)
		q.DepositOverride = true
	} else {
		q.DepositAmount = total.Percent(cfg.DepositPercent)
		q.DepositPercent = cfg.DepositPercent
	}
	q.Remaining = total - q.DepositAmount
	return q
}

// SortInstallments returns the installments in display order (by Seq). The
// input slice is not modified.
func SortInstallments(installments []entities.Installment) []entities.Installment {
	out := make([]entities.Installment, len(installments))
	copy(out, installments)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })
	return out
}

// RequiredWaiters is the staffing formula: one waiter per 30 guests, rounded
// up, at least one for any non-empty party. The pizzaiolo is stated separately
// and is always one.
func RequiredWaiters(adults, children int) int {
	guests := adults + children
	if guests <= 0 {
		return 1
	}
	return (guests + 29) / 30
}
