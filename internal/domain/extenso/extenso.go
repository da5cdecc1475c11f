// Package extenso converts monetary amounts into their Brazilian-Portuguese
// written form (valor por extenso), as required in the receipt's legal text.
// The composition is pure string building; no locale library is involved.
package extenso

import (
	"strings"

	"buffet_pizzas/internal/domain/money"
)

var unidades = [10]string{"", "um", "dois", "três", "quatro", "cinco", "seis", "sete", "oito", "nove"}

var dezADezenove = [10]string{"dez", "onze", "doze", "treze", "quatorze", "quinze", "dezesseis", "dezessete", "dezoito", "dezenove"}

var dezenas = [10]string{"", "", "vinte", "trinta", "quarenta", "cinquenta", "sessenta", "setenta", "oitenta", "noventa"}

var centenas = [10]string{"", "cento", "duzentos", "trezentos", "quatrocentos", "quinhentos", "seiscentos", "setecentos", "oitocentos", "novecentos"}

// AmountToWords renders a non-negative amount ending in "real"/"reais" plus,
// when there are cents, "e N centavo(s)".
//
// Examples:
//
//	0       -> "zero reais"
//	1       -> "um real"
//	100     -> "cem reais"
//	150.50  -> "cento e cinquenta reais e cinquenta centavos"
func AmountToWords(amount money.Centavos) string {
	if amount < 0 {
		amount = -amount
	}
	reais, centavos := amount.Reais()

	var b strings.Builder
	switch {
	case reais == 0:
		b.WriteString("zero reais")
	case reais == 1:
		b.WriteString("um real")
	default:
		b.WriteString(intToWords(reais))
		if reais >= 1_000_000 && reais%1_000_000 == 0 {
			// "um milhão de reais", never "um milhão reais"
			b.WriteString(" de reais")
		} else {
			b.WriteString(" reais")
		}
	}

	if centavos > 0 {
		b.WriteString(" e ")
		b.WriteString(sub999(int(centavos)))
		if centavos == 1 {
			b.WriteString(" centavo")
		} else {
			b.WriteString(" centavos")
		}
	}
	return b.String()
}

// intToWords composes an integer across three-digit magnitude bands. When a
// thousands band divides the number exactly the "e" connector is dropped; a
// non-zero remainder under 1000 is joined with "e".
func intToWords(n int64) string {
	if n == 0 {
		return "zero"
	}

	var parts []string
	milhoes := n / 1_000_000
	n %= 1_000_000
	if milhoes > 0 {
		if milhoes == 1 {
			parts = append(parts, "um milhão")
		} else {
			parts = append(parts, sub999(int(milhoes))+" milhões")
		}
	}

	milhares := n / 1000
	n %= 1000
	if milhares > 0 {
		if milhares == 1 {
			parts = append(parts, "mil")
		} else {
			parts = append(parts, sub999(int(milhares))+" mil")
		}
	}

	joined := strings.Join(parts, " ")
	if n > 0 {
		if joined != "" {
			return joined + " e " + sub999(int(n))
		}
		return sub999(int(n))
	}
	return joined
}

// sub999 converts 0-999. 100 is the irregular short form "cem"; 101-199 use
// "cento".
func sub999(n int) string {
	if n == 0 {
		return ""
	}
	if n == 100 {
		return "cem"
	}

	var parts []string
	if c := n / 100; c > 0 {
		parts = append(parts, centenas[c])
	}
	resto := n % 100
	switch {
	case resto == 0:
	case resto < 10:
		parts = append(parts, unidades[resto])
	case resto < 20:
		parts = append(parts, dezADezenove[resto-10])
	default:
		d := dezenas[resto/10]
		if u := resto % 10; u > 0 {
			d += " e " + unidades[u]
		}
		parts = append(parts, d)
	}
	return strings.Join(parts, " e ")
}
