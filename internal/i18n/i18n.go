// Package i18n translates the validation codes returned by the billing
// core into user-facing messages. French is the firm's working
// language and the default; English is kept for the API clients that
// ask for it.
package i18n

import (
	"context"
	"strings"
)

type ctxKey struct{}

// WithLang stores the request language in the context.
func WithLang(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, ctxKey{}, lang)
}

// LangFromContext returns the request language, defaulting to French.
func LangFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKey{}).(string); ok && v != "" {
		return v
	}
	return "fr"
}

// DetectLanguage picks a supported language from an Accept-Language
// header value. Anything that is not English falls back to French.
func DetectLanguage(header string) string {
	h := strings.ToLower(strings.TrimSpace(header))
	if strings.HasPrefix(h, "en") {
		return "en"
	}
	return "fr"
}

var translations = map[string]map[string]string{
	"fr": {
		"negative_amount":         "Le montant ne peut pas être négatif",
		"invalid_numeric_input":   "La valeur saisie n'est pas un nombre",
		"provision_exceeds_total": "La provision dépasse le total TTC de la facture",
		"invalid_payment_method":  "Mode de paiement inconnu",
		"required":                "Requis",
		"must_be_positive":        "Doit être positif",
		"not_found":               "Introuvable",
		"invoice_not_editable":    "La facture n'est plus modifiable",
	},
	"en": {
		"negative_amount":         "Amount cannot be negative",
		"invalid_numeric_input":   "Value is not a number",
		"provision_exceeds_total": "Provision exceeds the invoice total",
		"invalid_payment_method":  "Unknown payment method",
		"required":                "Required",
		"must_be_positive":        "Must be positive",
		"not_found":               "Not found",
		"invoice_not_editable":    "Invoice can no longer be edited",
	},
}

// T translates a message code. Unknown languages fall back to French;
// unknown codes fall back to the code itself so a missing translation
// never hides an error.
func T(lang, code string) string {
	if m, ok := translations[lang]; ok {
		if msg, ok := m[code]; ok {
			return msg
		}
	}
	if lang != "fr" {
		return T("fr", code)
	}
	return code
}
