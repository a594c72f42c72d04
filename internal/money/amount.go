package money

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// amountPattern accepts "20", "20.16" and ".16" but never a bare "." or "".
var amountPattern = regexp.MustCompile(`^(\d*)(?:\.(\d{2}))?$`)

// AmountParsingError is returned when a user supplied amount is not of the
// form "<digits>", "<digits>.<two digits>" or ".<two digits>".
type AmountParsingError struct {
	Input string
}

func (e *AmountParsingError) Error() string {
	return fmt.Sprintf("could not parse amount %q", e.Input)
}

// ParseAmount converts a decimal amount string into whole cents.
func ParseAmount(text string) (int64, error) {
	match := amountPattern.FindStringSubmatch(text)
	if match == nil {
		return 0, &AmountParsingError{Input: text}
	}

	units, cents := match[1], match[2]
	if units == "" && cents == "" {
		return 0, &AmountParsingError{Input: text}
	}

	var total int64
	if units != "" {
		parsed, err := strconv.ParseInt(units, 10, 64)
		if err != nil || parsed > math.MaxInt64/100 {
			return 0, &AmountParsingError{Input: text}
		}
		total = parsed * 100
	}

	if cents != "" {
		parsed, err := strconv.ParseInt(cents, 10, 64)
		if err != nil || total > math.MaxInt64-parsed {
			return 0, &AmountParsingError{Input: text}
		}
		total += parsed
	}

	return total, nil
}
