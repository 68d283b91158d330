// Package primitives provides the shared field validators that the section
// schemas are built from.
package primitives

import (
	"fmt"
	"net/mail"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-schema/internal/types"
)

// Date layouts accepted by date-valued fields.
const (
	dateLayoutMonth = "2006-01"
	dateLayoutDay   = "2006-01-02"
)

// Date validates a date string in YYYY-MM or YYYY-MM-DD form. Empty values
// are absent and therefore valid; required date fields pair this with
// RequiredString.
func Date(path, name, value string) *types.Violation {
	if value == "" {
		return nil
	}
	if _, err := ParseDate(value); err != nil {
		return &types.Violation{
			Path:       path,
			Kind:       types.KindInvalidFormat,
			Constraint: "YYYY-MM or YYYY-MM-DD",
			Message:    fmt.Sprintf("%s %q is not a valid date", name, value),
		}
	}
	return nil
}

// ParseDate parses a date-valued field into a time.Time.
func ParseDate(value string) (time.Time, error) {
	layout := dateLayoutMonth
	if len(value) == len(dateLayoutDay) {
		layout = dateLayoutDay
	}
	return time.Parse(layout, value)
}

// URL validates an absolute http(s) URL. Empty values are absent and
// therefore valid.
func URL(path, name, value string) *types.Violation {
	if value == "" {
		return nil
	}
	u, err := url.Parse(value)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return &types.Violation{
			Path:       path,
			Kind:       types.KindInvalidFormat,
			Constraint: "absolute http(s) URL",
			Message:    fmt.Sprintf("%s %q is not a valid URL", name, value),
		}
	}
	return nil
}

// Email validates an RFC 5322 address. Empty values are absent and therefore
// valid.
func Email(path, name, value string) *types.Violation {
	if value == "" {
		return nil
	}
	if _, err := mail.ParseAddress(value); err != nil {
		return &types.Violation{
			Path:       path,
			Kind:       types.KindInvalidFormat,
			Constraint: "RFC 5322 email address",
			Message:    fmt.Sprintf("%s %q is not a valid email address", name, value),
		}
	}
	return nil
}

// ItemID validates an optional item id as an RFC 4122 UUID.
func ItemID(path, value string) *types.Violation {
	if value == "" {
		return nil
	}
	if _, err := uuid.Parse(value); err != nil {
		return &types.Violation{
			Path:       path,
			Kind:       types.KindInvalidFormat,
			Constraint: "RFC 4122 UUID",
			Message:    fmt.Sprintf("id %q is not a valid UUID", value),
		}
	}
	return nil
}
