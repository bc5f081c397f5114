package schedule

import (
	"strings"
	"time"

	"github.com/norteboa/barberpos/internal/httperr"
)

const (
	isoDateLayout = "2006-01-02"
	brDateLen     = 10 // DD/MM/YYYY
)

// FormatDateInput aplica a máscara DD/MM/YYYY conforme os dígitos chegam.
// Non-digits are stripped; separators appear after the 2nd and 4th digit;
// output never exceeds 10 characters.
func FormatDateInput(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	d := digits.String()
	if len(d) > 8 {
		d = d[:8]
	}

	switch {
	case len(d) <= 2:
		return d
	case len(d) <= 4:
		return d[:2] + "/" + d[2:]
	default:
		return d[:2] + "/" + d[2:4] + "/" + d[4:]
	}
}

// ToISODate converte DD/MM/YYYY em YYYY-MM-DD.
// Intentionally a string rewrite only: "31/02/2024" passes here and is
// rejected later, when booking parses the ISO date against the calendar.
func ToISODate(br string) (string, error) {
	if len(br) != brDateLen {
		return "", httperr.ErrBusinessDetail("invalid_input", "date must be DD/MM/YYYY")
	}

	parts := strings.Split(br, "/")
	if len(parts) != 3 || len(parts[0]) != 2 || len(parts[1]) != 2 || len(parts[2]) != 4 {
		return "", httperr.ErrBusinessDetail("invalid_input", "date must be DD/MM/YYYY")
	}
	for _, p := range parts {
		for _, r := range p {
			if r < '0' || r > '9' {
				return "", httperr.ErrBusinessDetail("invalid_input", "date must be DD/MM/YYYY")
			}
		}
	}

	return parts[2] + "-" + parts[1] + "-" + parts[0], nil
}

// FromISODate é o inverso, para exibição.
func FromISODate(iso string) (string, error) {
	if len(iso) != brDateLen {
		return "", httperr.ErrBusinessDetail("invalid_input", "date must be YYYY-MM-DD")
	}
	parts := strings.Split(iso, "-")
	if len(parts) != 3 || len(parts[0]) != 4 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return "", httperr.ErrBusinessDetail("invalid_input", "date must be YYYY-MM-DD")
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0], nil
}

// ParseISODate valida a data contra o calendário.
func ParseISODate(iso string) (time.Time, error) {
	t, err := time.Parse(isoDateLayout, iso)
	if err != nil {
		return time.Time{}, httperr.ErrBusinessDetail("invalid_input", "invalid calendar date")
	}
	return t, nil
}
