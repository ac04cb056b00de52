// Package period classifies transaction dates against a reporting period.
//
// Dates that fail to parse are excluded from every non-"all" period
// (fail-closed) but stay visible under "all": a malformed record must not
// hide from the complete listing, yet it must never leak into a month, year,
// or range it cannot be proven to belong to.
package period

import (
	"strings"
	"time"

	"github.com/Bikash4JP/tally-for-mobile/internal/shared"
)

const dateLayout = "2006-01-02"

// Kind selects how transactions are bucketed by date.
type Kind string

const (
	KindAll    Kind = "all"
	KindMonth  Kind = "month"
	KindYear   Kind = "year"
	KindCustom Kind = "custom"
)

// Period is the date-range filter applied before folding transactions into
// a report. From and To are inclusive YYYY-MM-DD bounds and only meaningful
// for KindCustom.
type Period struct {
	Kind Kind
	From string
	To   string
}

// All matches every transaction, malformed dates included.
func All() Period { return Period{Kind: KindAll} }

// ThisMonth matches the calendar month containing "now".
func ThisMonth() Period { return Period{Kind: KindMonth} }

// ThisYear matches the calendar year containing "now".
func ThisYear() Period { return Period{Kind: KindYear} }

// Custom matches the inclusive [from, to] range.
func Custom(from, to string) Period { return Period{Kind: KindCustom, From: from, To: to} }

// Parse builds a Period from request parameters. Custom periods require both
// bounds in parseable form.
func Parse(kind, from, to string) (Period, error) {
	switch Kind(strings.TrimSpace(kind)) {
	case KindAll, "":
		return All(), nil
	case KindMonth:
		return ThisMonth(), nil
	case KindYear:
		return ThisYear(), nil
	case KindCustom:
		if _, ok := ParseDate(from); !ok {
			return Period{}, shared.Validationf("invalid period start %q", from)
		}
		if _, ok := ParseDate(to); !ok {
			return Period{}, shared.Validationf("invalid period end %q", to)
		}
		return Custom(from, to), nil
	}
	return Period{}, shared.Validationf("unknown period kind %q", kind)
}

// ParseDate interprets a transaction date, tolerating "." and "/" as
// separators. The second return is false for anything that does not parse
// as a calendar date.
func ParseDate(s string) (time.Time, bool) {
	clean := strings.TrimSpace(s)
	clean = strings.ReplaceAll(clean, ".", "-")
	clean = strings.ReplaceAll(clean, "/", "-")
	d, err := time.Parse(dateLayout, clean)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// Contains reports whether a transaction dated s falls inside the period
// relative to now.
func (p Period) Contains(s string, now time.Time) bool {
	if p.Kind == KindAll {
		return true
	}
	d, ok := ParseDate(s)
	if !ok {
		return false
	}
	switch p.Kind {
	case KindMonth:
		return d.Year() == now.Year() && d.Month() == now.Month()
	case KindYear:
		return d.Year() == now.Year()
	case KindCustom:
		from, ok := ParseDate(p.From)
		if !ok {
			return false
		}
		to, ok := ParseDate(p.To)
		if !ok {
			return false
		}
		return !d.Before(from) && !d.After(to)
	}
	return false
}
