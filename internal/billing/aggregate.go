package billing

// Aggregate sums the fee line items into their category subtotals.
// Inputs are integers already (francs), so no rounding happens here.
// A negative line item is reported as a NegativeAmountError and kept
// out of the sum; callers must not use the subtotals when errs is
// non-empty.
func Aggregate(c FeeComponents) (totalDisbursements, totalHonoraria int64, errs ValidationErrors) {
	add := func(field string, amount int64, total *int64) {
		if amount < 0 {
			errs = append(errs, &NegativeAmountError{Field: field})
			return
		}
		*total += amount
	}

	add("entrevue", c.Disbursements.Entrevue, &totalDisbursements)
	add("dossier", c.Disbursements.Dossier, &totalDisbursements)
	add("plaidoirie", c.Disbursements.Plaidoirie, &totalDisbursements)
	add("huissier", c.Disbursements.Huissier, &totalDisbursements)
	add("deplacement", c.Disbursements.Deplacement, &totalDisbursements)

	add("forfait", c.Honoraria.Forfait, &totalHonoraria)
	add("taux_horaire", c.Honoraria.TauxHoraire, &totalHonoraria)
	add("base", c.Honoraria.Base, &totalHonoraria)
	add("resultat", c.Honoraria.Resultat, &totalHonoraria)

	return totalDisbursements, totalHonoraria, errs
}
