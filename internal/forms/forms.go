// Package forms implements the record editors: each form holds the raw
// text and toggle input for one entity kind, validates it, and constructs
// the record handed to the store. Validation failures collapse into the
// single generic ErrInvalidForm so callers surface one "missing or
// invalid fields" alert and keep the in-progress edit.
package forms

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidForm reports that one or more required fields were missing or
// failed to parse. No per-field detail is carried.
var ErrInvalidForm = errors.New("missing or invalid fields")

func blank(s string) bool { return strings.TrimSpace(s) == "" }

// optionalInt parses s or returns nil, mirroring the original editors'
// lenient optional numeric fields.
func optionalInt(s string) *int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &v
}

// intOrZero parses s, defaulting to 0 on failure.
func intOrZero(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}

func parseInt(s string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	return v, err == nil
}

func parseDecimal(s string) (decimal.Decimal, bool) {
	v, err := decimal.NewFromString(strings.TrimSpace(s))
	return v, err == nil
}

// splitTags turns a comma separated string into trimmed, non-empty tags.
func splitTags(s string) []string {
	var tags []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func joinTags(tags []string) string { return strings.Join(tags, ", ") }

func fromPtr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func intString(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}
