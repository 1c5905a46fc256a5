// Package frwords spells out integer FCFA amounts in French.
//
// The spelled-out total is legally expected on fee invoices, so the
// output must match the convention already embedded in printed and
// archived documents. In particular 71 is rendered "soixante-onze",
// not the grammatically conventional "soixante et onze"; do not
// "correct" this without a migration plan for historical invoices.
package frwords

import "strings"

var units = [10]string{"", "un", "deux", "trois", "quatre", "cinq", "six", "sept", "huit", "neuf"}

var teens = [10]string{"dix", "onze", "douze", "treize", "quatorze", "quinze", "seize", "dix-sept", "dix-huit", "dix-neuf"}

var tens = [7]string{"", "dix", "vingt", "trente", "quarante", "cinquante", "soixante"}

// scales are consumed in one left-to-right pass, largest first.
var scales = []struct {
	value uint64
	word  string
}{
	{1_000_000_000, "milliard"},
	{1_000_000, "million"},
	{1_000, "mille"},
}

// ToWords renders n in French, lowercase, with single spaces between
// groups and hyphens inside a group. It is total over int64: zero is
// "zéro" and negatives get a "moins " prefix.
func ToWords(n int64) string {
	if n == 0 {
		return "zéro"
	}
	if n < 0 {
		// two's-complement safe for math.MinInt64
		return "moins " + render(uint64(-(n+1))+1)
	}
	return render(uint64(n))
}

// AmountInWords suffixes the spelled-out amount with the currency name,
// as printed on the invoice ("arrêtée à la somme de ...").
func AmountInWords(n int64, currency string) string {
	return ToWords(n) + " " + currency
}

func render(n uint64) string {
	var parts []string
	for _, s := range scales {
		if n < s.value {
			continue
		}
		count := n / s.value
		n %= s.value
		switch {
		case s.word == "mille" && count == 1:
			// "mille", never "un mille"
			parts = append(parts, "mille")
		case s.word == "mille":
			// "mille" never takes a plural s
			parts = append(parts, render(count)+" mille")
		case count == 1:
			parts = append(parts, "un "+s.word)
		default:
			parts = append(parts, render(count)+" "+s.word+"s")
		}
	}
	if n > 0 {
		parts = append(parts, belowThousand(n))
	}
	return strings.Join(parts, " ")
}

func belowThousand(n uint64) string {
	h, r := n/100, n%100
	if h == 0 {
		return belowHundred(r)
	}
	head := "cent"
	if h > 1 {
		head = units[h] + " cent"
	}
	if r == 0 {
		// "trois cents" but "cent" and "trois cent un"
		if h > 1 {
			return head + "s"
		}
		return head
	}
	return head + " " + belowHundred(r)
}

func belowHundred(n uint64) string {
	switch {
	case n < 10:
		return units[n]
	case n < 20:
		return teens[n-10]
	case n < 70:
		w := tens[n/10]
		if u := n % 10; u != 0 {
			w += "-" + units[u]
		}
		return w
	case n < 80:
		// 70-79 reuse the teens table: "soixante-dix" ... "soixante-dix-neuf"
		return "soixante-" + teens[n-70]
	default:
		r := n - 80
		switch {
		case r == 0:
			return "quatre-vingts"
		case r < 10:
			return "quatre-vingt-" + units[r]
		default:
			// 90-99 stay on the quatre-vingt base, no trailing s
			return "quatre-vingt-" + teens[r-10]
		}
	}
}
