package currency

import (
	"fmt"
	"strings"
)

const maxSuggestions = 3

// Normalize resolves free-text input to a canonical currency code.
// Resolution order: colloquial alias, exact code (case-insensitive), exact
// full name (case-insensitive). Normalizing an already-canonical code is a
// no-op. The second return value is false when nothing matched.
func Normalize(raw string) (string, bool) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return "", false
	}

	if code, ok := aliases[value]; ok {
		return code, true
	}

	upper := strings.ToUpper(value)
	if _, ok := names[upper]; ok {
		return upper, true
	}

	for _, code := range sortedCodes {
		if strings.ToLower(names[code]) == value {
			return code, true
		}
	}

	return "", false
}

// Suggest returns up to three table entries whose name contains the input as
// a substring (case-insensitive) or whose code matches exactly. Results
// follow table order and are always valid entries.
func Suggest(raw string) []string {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return nil
	}

	var suggestions []string
	for _, code := range sortedCodes {
		if strings.Contains(strings.ToLower(names[code]), value) || strings.ToLower(code) == value {
			suggestions = append(suggestions, names[code])
			if len(suggestions) == maxSuggestions {
				break
			}
		}
	}
	return suggestions
}

// FieldErrors collects normalization failures per request field.
type FieldErrors map[string]string

// NormalizePair normalizes the base and target fields of a request in place.
// Both fields are evaluated independently so a caller correcting one field
// sees all problems at once; failures are aggregated into the returned map,
// which is empty on success.
func NormalizePair(base, target *string) FieldErrors {
	errs := FieldErrors{}

	fields := map[string]*string{
		"base":   base,
		"target": target,
	}
	for _, key := range []string{"base", "target"} {
		field := fields[key]
		if field == nil || strings.TrimSpace(*field) == "" {
			errs[key] = fmt.Sprintf("Invalid currency input for %q.", key)
			continue
		}

		if code, ok := Normalize(*field); ok {
			*field = code
			continue
		}

		if suggestions := Suggest(*field); len(suggestions) > 0 {
			errs[key] = fmt.Sprintf("Invalid currency: %q. Did you mean %s?", *field, strings.Join(suggestions, ", "))
		} else {
			errs[key] = fmt.Sprintf("Invalid currency: %q. No similar currencies found.", *field)
		}
	}

	return errs
}
