package billing

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// DecodeFeeComponents builds FeeComponents from the loosely typed JSON
// or form payload the editing UI sends. Coercion rules:
//
//   - missing or null field        -> 0 (documented coercion, not data loss)
//   - JSON number or numeric string -> its integer value
//   - anything else (object, array, bool, fractional number)
//     -> InvalidNumericInputError for that field
//
// The expected shape is {"debours": {...}, "honoraires": {...}} with
// the field names of Disbursements and Honoraria.
func DecodeFeeComponents(raw map[string]any) (FeeComponents, ValidationErrors) {
	var c FeeComponents
	var errs ValidationErrors

	get := func(group map[string]any, field string, dst *int64) {
		v, ok := group[field]
		if !ok || v == nil {
			return
		}
		n, err := coerceInt64(v)
		if err != nil {
			errs = append(errs, &InvalidNumericInputError{Field: field})
			return
		}
		*dst = n
	}

	deb := subObject(raw, "debours", &errs)
	hon := subObject(raw, "honoraires", &errs)

	get(deb, "entrevue", &c.Disbursements.Entrevue)
	get(deb, "dossier", &c.Disbursements.Dossier)
	get(deb, "plaidoirie", &c.Disbursements.Plaidoirie)
	get(deb, "huissier", &c.Disbursements.Huissier)
	get(deb, "deplacement", &c.Disbursements.Deplacement)

	get(hon, "forfait", &c.Honoraria.Forfait)
	get(hon, "taux_horaire", &c.Honoraria.TauxHoraire)
	get(hon, "base", &c.Honoraria.Base)
	get(hon, "resultat", &c.Honoraria.Resultat)

	return c, errs
}

// subObject extracts a nested group; a present non-object group is an
// invalid input, a missing one is simply empty.
func subObject(raw map[string]any, key string, errs *ValidationErrors) map[string]any {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		*errs = append(*errs, &InvalidNumericInputError{Field: key})
		return nil
	}
	return m
}

func coerceInt64(v any) (int64, error) {
	switch x := v.(type) {
	case float64:
		// encoding/json default for numbers; FCFA has no fractions
		n := int64(x)
		if float64(n) != x {
			return 0, errors.New("not an integer")
		}
		return n, nil
	case json.Number:
		return x.Int64()
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, nil
		}
		return strconv.ParseInt(s, 10, 64)
	case int:
		return int64(x), nil
	case int64:
		return x, nil
	default:
		return 0, errors.New("not a number")
	}
}
