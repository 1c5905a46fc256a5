package validation

import "strings"

type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Basic validators
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

func NonNegativeInt(field string, val int64, v Violations) {
	if val < 0 {
		v[field] = "must_be_positive"
	}
}

func OneOf(field, value string, v Violations, allowed ...string) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v[field] = "out_of_range"
}
