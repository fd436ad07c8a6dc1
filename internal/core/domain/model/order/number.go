package order

import (
	"fmt"
	"time"
)

// numberPrefix starts every order number issued by this storefront.
const numberPrefix = "AM"

// NumberFor formats an order number from the submission date and the value
// drawn from the durable order sequence: the "AM" prefix, the date as YYMMDD,
// and the sequence zero-padded to three digits (wider once past 999).
//
// Uniqueness comes entirely from the sequence; the date part is cosmetic, so
// numbers stay unique even across restarts and day boundaries as long as the
// sequence itself is durably stored. Gaps in the visible sequence are expected:
// a drawn number is never reused, even when the submission later fails.
//
// Example: NumberFor(2026-01-21, 1) == "AM260121001".
func NumberFor(date time.Time, sequence int64) string {
	return fmt.Sprintf("%s%s%03d", numberPrefix, date.Format("060102"), sequence)
}
