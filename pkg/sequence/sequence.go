package sequence

import (
	"fmt"
	"regexp"
	"strconv"
)

// Well-known code prefixes used across the application.
const (
	OrderPrefix    = "ORD"
	CustomerPrefix = "CUST"
	HSNPrefix      = "HSN"
)

var codePattern = regexp.MustCompile(`^([A-Z]+)-(\d+)$`)

// Next returns the code that follows last for the given prefix.
// Codes look like "ORD-001"; the numeric part is zero-padded to at
// least three digits and keeps growing past 999 ("ORD-1000").
// An empty or unparseable last code restarts the sequence at
// "<PREFIX>-001" rather than failing.
func Next(prefix, last string) string {
	if last == "" {
		return fmt.Sprintf("%s-%03d", prefix, 1)
	}

	matches := codePattern.FindStringSubmatch(last)
	if matches == nil || matches[1] != prefix {
		return fmt.Sprintf("%s-%03d", prefix, 1)
	}

	n, err := strconv.Atoi(matches[2])
	if err != nil {
		// Digits too large for int; restart rather than overflow.
		return fmt.Sprintf("%s-%03d", prefix, 1)
	}

	return fmt.Sprintf("%s-%03d", prefix, n+1)
}
