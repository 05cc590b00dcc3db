package intern

import (
	"fmt"
	"strconv"
	"time"
)

// GenerateInternID derives the next business id as OM<month><year><NNN>.
// The sequence continues from the trailing three digits of lastInternID,
// which callers obtain by a lexicographic sort of existing ids; that sort
// order, not creation time, decides which id is "last". The month is not
// zero-padded.
func GenerateInternID(now time.Time, lastInternID string) string {
	nextSequence := 1

	if len(lastInternID) >= 3 {
		if lastSequence, err := strconv.Atoi(lastInternID[len(lastInternID)-3:]); err == nil {
			nextSequence = lastSequence + 1
		}
	}

	return fmt.Sprintf("OM%d%d%03d", int(now.Month()), now.Year(), nextSequence)
}
