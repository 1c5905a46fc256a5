// Package billing computes the authoritative figures of a fee invoice:
// category subtotals over disbursement and honoraria line items, TVA,
// the tax-inclusive total and the balance due after an optional
// provision. Everything here is a pure function over value types; the
// surrounding application recomputes on every edit and persists the
// resulting snapshot.
package billing

// Fiscal policy for the jurisdiction. Fixed constants: changing either
// means redeploying, there is no runtime configuration surface.
const (
	// TaxRatePercent is the TVA rate applied to the pre-tax subtotal.
	TaxRatePercent = 18
	// CurrencyName is the printed currency label. FCFA has no
	// fractional subdivision, so every amount in this package is an
	// integer number of francs.
	CurrencyName = "francs CFA"
)

// PaymentMethod identifies how the client settles the invoice.
type PaymentMethod string

const (
	PaymentVirement      PaymentMethod = "virement"
	PaymentCheque        PaymentMethod = "cheque"
	PaymentCarteBancaire PaymentMethod = "carte_bancaire"
	PaymentEspeces       PaymentMethod = "especes"
	PaymentAutre         PaymentMethod = "autre"
)

// Valid reports whether m is one of the known payment methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentVirement, PaymentCheque, PaymentCarteBancaire, PaymentEspeces, PaymentAutre:
		return true
	}
	return false
}

// Disbursements are the out-of-pocket costs advanced for the client
// (débours): interview, case-file, pleading, bailiff and travel costs.
type Disbursements struct {
	Entrevue    int64 `json:"entrevue"`
	Dossier     int64 `json:"dossier"`
	Plaidoirie  int64 `json:"plaidoirie"`
	Huissier    int64 `json:"huissier"`
	Deplacement int64 `json:"deplacement"`
}

// Honoraria are the lawyer's own fees (honoraires): flat fee, hourly,
// base and result-based components.
type Honoraria struct {
	Forfait     int64 `json:"forfait"`
	TauxHoraire int64 `json:"taux_horaire"`
	Base        int64 `json:"base"`
	Resultat    int64 `json:"resultat"`
}

// FeeComponents is the raw fee input of an invoice, in francs.
type FeeComponents struct {
	Disbursements Disbursements `json:"debours"`
	Honoraria     Honoraria     `json:"honoraires"`
}

// Payment carries the settlement method and the optional provision
// (deposit) requested against the invoice. ProvisionAmount is only
// meaningful when ProvisionRequested is true.
type Payment struct {
	Method             PaymentMethod `json:"mode"`
	ProvisionRequested bool          `json:"provision_demandee"`
	ProvisionAmount    int64         `json:"montant_provision"`
}

// InvoiceTotals is the immutable result of an assembly: the figures
// printed, displayed and stored for one invoice. Downstream consumers
// read these fields by name and never re-derive them, so screen, PDF
// and database always agree.
type InvoiceTotals struct {
	TotalDisbursements int64   `json:"total_debours"`
	TotalHonoraria     int64   `json:"total_honoraires"`
	SubtotalExclTax    int64   `json:"total_ht"`
	Tax                int64   `json:"tva"`
	TotalInclTax       int64   `json:"total_ttc"`
	BalanceDue         int64   `json:"reste_a_payer"`
	Payment            Payment `json:"paiement"`
}
