package salesforce

import (
	"fmt"
	"strconv"
	"time"
)

// Employee headcounts above this would overflow the target numeric column.
const maxEmployeeCount int64 = 10_000_000_000

// Salesforce timestamp layouts: SystemModstamp/CreatedDate carry an offset
// without a colon, CloseDate/LastActivityDate are date-only.
var timeLayouts = []string{
	"2006-01-02T15:04:05.000-0700",
	time.RFC3339,
	"2006-01-02",
}

func parseBool(s string) bool {
	// Exact match only. "True", "1" etc. all map to false.
	return s == "true"
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func parseOptionalTime(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := parseRequiredTime(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseRequiredTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", s)
}

func parseClampedInt(s string, max int64) (*int64, error) {
	if s == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("unparseable integer %q", s)
	}
	if n > max {
		n = max
	}
	return &n, nil
}

func parseOptionalFloat(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("unparseable number %q", s)
	}
	return &f, nil
}
