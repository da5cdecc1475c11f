package document

import (
	"fmt"
	"strings"
	"time"
)

// FormatISODateBR formats an ISO calendar date (YYYY-MM-DD, optionally with a
// time suffix) as DD/MM/YYYY. The tokens are split manually instead of going
// through time.Parse: the stored date means "that calendar day", and
// locale-aware parsing has produced off-by-one-day results when the server
// timezone sits behind UTC.
func FormatISODateBR(iso string) string {
	tokens := strings.FieldsFunc(iso, func(r rune) bool {
		return r == '-' || r == 'T' || r == ':' || r == ' '
	})
	if len(tokens) < 3 {
		return iso
	}
	return fmt.Sprintf("%s/%s/%s", tokens[2], tokens[1], tokens[0])
}

// FormatTimeHHMM truncates a time value to HH:MM.
func FormatTimeHHMM(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 5 {
		return s[:5]
	}
	return s
}

// eventDurationHours is the contracted service window.
const eventDurationHours = 3

// EndTime returns the start time plus the contracted duration. Hours past 23
// are not wrapped to the next day; a 22:00 start yields "25:00". Known
// boundary case, kept as documented behavior.
func EndTime(start string) string {
	start = FormatTimeHHMM(start)
	parts := strings.SplitN(start, ":", 2)
	if len(parts) != 2 {
		return start
	}
	var hour, minute int
	if _, err := fmt.Sscanf(start, "%d:%d", &hour, &minute); err != nil {
		return start
	}
	return fmt.Sprintf("%02d:%02d", hour+eventDurationHours, minute)
}

// FormatGenerationDate formats the document generation stamp as DD/MM/YYYY in
// local calendar terms.
func FormatGenerationDate(t time.Time) string {
	return t.Format("02/01/2006")
}
