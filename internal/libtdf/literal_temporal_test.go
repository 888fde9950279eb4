package libtdf

import (
	"testing"

	"github.com/globalmentor/go-urf/internal/testutil/assert"
)

// Each of the ten temporal subtypes must survive a parse and re-render
// with its surface form unchanged (spec.md §8, "temporal subtype fidelity").
func Test_temporalSubtypeFidelity(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		subtype TemporalSubtype
	}{
		{"year", "2024", Year},
		{"year-month", "2024-05", YearMonth},
		{"month-day", "--05-17", MonthDay},
		{"local date", "2024-05-17", LocalDate},
		{"local time", "14:30:00", LocalTime},
		{"offset time", "14:30:00+02:00", OffsetTime},
		{"local date-time", "2024-05-17T14:30:00", LocalDateTime},
		{"instant", "2024-05-17T14:30:00Z", Instant},
		{"offset date-time", "2024-05-17T14:30:00+02:00", OffsetDateTime},
		{"zoned date-time", "2024-05-17T14:30:00+02:00[Europe/Paris]", ZonedDateTime},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			roots := parseRoots(t, "@"+tc.text)
			lit := roots[0].Literal
			assert.Equal(t, LiteralTemporal, lit.Kind)
			assert.Equal(t, tc.subtype, lit.Temporal.Subtype)
			assert.Equal(t, tc.text, lit.Temporal.String())

			out, err := Serialize(roots)
			assert.NoError(t, err)
			assert.Equal(t, "@"+tc.text, out)
		})
	}
}

func Test_temporalFractionalSeconds(t *testing.T) {
	roots := parseRoots(t, "@14:30:00.250")
	lit := roots[0].Literal
	assert.Equal(t, LiteralTemporal, lit.Kind)
	assert.Equal(t, 250000000, lit.Temporal.Nanosecond)
	assert.Equal(t, "14:30:00.25", lit.Temporal.String())
}
