package dto

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// fieldMessages maps "field:tag" pairs to client-facing messages, mirroring
// the declarative per-constraint messages of the request schemas.
var fieldMessages = map[string]string{
	"Base:required":      "Base currency code is required",
	"Target:required":    "Target currency code is required",
	"Amount:required":    "Amount must be a number",
	"StartDate:required": "Start date is required",
	"EndDate:required":   "End date is required",
	"StartDate:datetime": "Start date must be in YYYY-MM-DD format",
	"EndDate:datetime":   "End date must be in YYYY-MM-DD format",
	"Email:required":     "Email is required",
	"Email:email":        "Email must be a valid email address",
	"Password:required":  "Password is required",
	"Password:min":       "Password must be at least 8 characters",
	"FirstName:required": "First name is required",
	"LastName:required":  "Last name is required",
}

// ValidationMessages flattens a binding error into the full list of violated
// constraints, one message per failed field. Validation is collect-all: every
// problem is reported in a single response, not just the first.
func ValidationMessages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{"Invalid request body"}
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		key := fe.Field() + ":" + fe.Tag()
		if msg, ok := fieldMessages[key]; ok {
			messages = append(messages, msg)
			continue
		}
		messages = append(messages, fmt.Sprintf("%s failed validation on %s", fe.Field(), fe.Tag()))
	}
	return messages
}
