package tcp

import (
	"strconv"
	"strings"

	"github.com/ormanli/interest-te/internal/app/interest"
)

// parseRequest parses a string representation of a calculation request and returns the account input along with any error encountered during parsing.
// The expected format is CALC|principal|rate|years|compoundings.
func parseRequest(s string) (interest.Input, error) {
	parts := strings.Split(s, "|")
	if len(parts) != 5 || parts[0] != "CALC" {
		return interest.Input{}, interest.ErrInvalidRequest
	}

	principal, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return interest.Input{}, interest.ErrInvalidPrincipal
	}

	rate, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return interest.Input{}, interest.ErrInvalidRate
	}

	years, err := strconv.Atoi(parts[3])
	if err != nil {
		return interest.Input{}, interest.ErrInvalidYears
	}

	compoundings, err := strconv.Atoi(parts[4])
	if err != nil {
		return interest.Input{}, interest.ErrInvalidCompounding
	}

	return interest.Input{
		Principal:           principal,
		AnnualRate:          rate,
		Years:               years,
		CompoundingsPerYear: compoundings,
	}, nil
}
