package intern

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateInternID_FirstIntern(t *testing.T) {
	now := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "OM12024001", GenerateInternID(now, ""))
}

func TestGenerateInternID_IncrementsSequence(t *testing.T) {
	now := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)

	first := GenerateInternID(now, "")
	second := GenerateInternID(now, first)
	third := GenerateInternID(now, second)

	assert.Equal(t, "OM12024002", second)
	assert.Equal(t, "OM12024003", third)
}

func TestGenerateInternID_SequencePadding(t *testing.T) {
	now := time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "OM122024100", GenerateInternID(now, "OM122024099"))
}

func TestGenerateInternID_MonthNotPadded(t *testing.T) {
	march := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "OM32025001", GenerateInternID(march, ""))
}

// The "last" id comes from a string sort, so after a rollover the sequence
// continues from whichever id sorts highest, not the newest row.
func TestGenerateInternID_ContinuesFromStringMax(t *testing.T) {
	feb := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "OM22025008", GenerateInternID(feb, "OM92024007"))
}

func TestGenerateInternID_MalformedLastID(t *testing.T) {
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	// Non-numeric suffix restarts the sequence
	assert.Equal(t, "OM62024001", GenerateInternID(now, "OMXYZ"))
}
